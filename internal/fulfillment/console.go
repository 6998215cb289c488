// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package fulfillment

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
)

// Prefix starts every line the console notifier prints.
const Prefix = "Quantum book store: "

// Console prints one line per notification. It is safe for concurrent use.
type Console struct {
	mu     sync.Mutex
	out    io.Writer
	logger *slog.Logger
}

// NewConsole returns a [Console] printing to out.
func NewConsole(out io.Writer, logger *slog.Logger) *Console {
	return &Console{out: out, logger: logger}
}

func (c *Console) NotifyShipping(ctx context.Context, address string) {
	c.print(ctx, ChannelShipping, address, "Shipping to "+address)
}

func (c *Console) NotifyEmail(ctx context.Context, recipient string) {
	c.print(ctx, ChannelEmail, recipient, "Email sent to "+recipient)
}

func (c *Console) print(ctx context.Context, channel Channel, target, message string) {
	c.mu.Lock()
	_, err := fmt.Fprintln(c.out, Prefix+message)
	c.mu.Unlock()

	if err != nil {
		c.logger.WarnContext(ctx, "console_notify_failed",
			slog.String("channel", string(channel)),
			slog.Any("error", err),
		)
		return
	}

	c.logger.DebugContext(ctx, "fulfillment_notified",
		slog.String("channel", string(channel)),
		slog.String("target", target),
	)
}
