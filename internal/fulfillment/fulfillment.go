// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package fulfillment provides the notifiers a completed sale talks to.

Implementations:

  - Console: prints the classic "Quantum book store" lines to a writer.
  - RedisStream: appends a message per notification to a Redis stream so an
    external shipping or mailing worker can consume it.
  - Tee: fans one notification out to several notifiers.

Every notifier satisfies both book.Shipper and book.Mailer. None of them
report failures to the caller; problems are logged and dropped.
*/
package fulfillment

import "context"

// Channel names the kind of notification sent.
type Channel string

const (
	ChannelShipping Channel = "shipping"
	ChannelEmail    Channel = "email"
)

// Notifier is satisfied by every type in this package.
type Notifier interface {
	NotifyShipping(ctx context.Context, address string)
	NotifyEmail(ctx context.Context, recipient string)
}

// Tee forwards each notification to every member in order.
type Tee []Notifier

func (t Tee) NotifyShipping(ctx context.Context, address string) {
	for _, n := range t {
		n.NotifyShipping(ctx, address)
	}
}

func (t Tee) NotifyEmail(ctx context.Context, recipient string) {
	for _, n := range t {
		n.NotifyEmail(ctx, recipient)
	}
}
