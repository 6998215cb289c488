// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package fulfillment

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/quantumbooks/internal/platform/clock"
)

// Stream message fields.
const (
	FieldChannel = "channel"
	FieldTarget  = "target"
	FieldSentAt  = "sent_at"
)

// DefaultStreamMaxLen is the approximate length cap passed to XADD.
const DefaultStreamMaxLen = 10_000

// PublishTimeout bounds a single XADD. The caller's cancellation is ignored.
const PublishTimeout = 2 * time.Second

// RedisStream appends one XADD entry per notification.
type RedisStream struct {
	client redis.Cmdable
	stream string
	clock  clock.Clock
	logger *slog.Logger
}

// NewRedisStream returns a notifier writing to stream through client.
func NewRedisStream(client redis.Cmdable, stream string, clk clock.Clock, logger *slog.Logger) *RedisStream {
	return &RedisStream{
		client: client,
		stream: stream,
		clock:  clk,
		logger: logger,
	}
}

func (r *RedisStream) NotifyShipping(ctx context.Context, address string) {
	r.publish(ctx, ChannelShipping, address)
}

func (r *RedisStream) NotifyEmail(ctx context.Context, recipient string) {
	r.publish(ctx, ChannelEmail, recipient)
}

func (r *RedisStream) publish(parent context.Context, channel Channel, target string) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(parent), PublishTimeout)
	defer cancel()

	id, err := r.client.XAdd(ctx, &redis.XAddArgs{
		Stream: r.stream,
		MaxLen: DefaultStreamMaxLen,
		Approx: true,
		Values: map[string]any{
			FieldChannel: string(channel),
			FieldTarget:  target,
			FieldSentAt:  r.clock.Now().UTC().Format(time.RFC3339Nano),
		},
	}).Result()

	// Errors are logged and dropped.
	if err != nil {
		r.logger.ErrorContext(ctx, "fulfillment_publish_failed",
			slog.String("stream", r.stream),
			slog.String("channel", string(channel)),
			slog.Any("error", err),
		)
		return
	}

	r.logger.DebugContext(ctx, "fulfillment_published",
		slog.String("stream", r.stream),
		slog.String("channel", string(channel)),
		slog.String("message_id", id),
	)
}
