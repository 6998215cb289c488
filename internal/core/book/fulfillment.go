// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package book

import "context"

// Shipper is told where to ship a physical order. It has no failure contract.
type Shipper interface {
	NotifyShipping(ctx context.Context, address string)
}

// Mailer is told where to email a digital order. It has no failure contract.
type Mailer interface {
	NotifyEmail(ctx context.Context, recipient string)
}

// Fulfillment bundles the notifiers a purchase may trigger.
type Fulfillment struct {
	Shipper Shipper
	Mailer  Mailer
}

// ship and email run after the sale is committed, so notifiers get a context
// that keeps the caller's values but not its cancellation.
func (f Fulfillment) ship(ctx context.Context, address string) {
	if f.Shipper != nil {
		f.Shipper.NotifyShipping(context.WithoutCancel(ctx), address)
	}
}

func (f Fulfillment) email(ctx context.Context, recipient string) {
	if f.Mailer != nil {
		f.Mailer.NotifyEmail(context.WithoutCancel(ctx), recipient)
	}
}
