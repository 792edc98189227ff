package service

import (
	"context"
)

// MessageQueue is the durable dispatch queue. Enqueue hands a serialized
// message to a worker; retry and backoff policy for transient dispatch
// failures belong to the queue's configuration, not to the core.
type MessageQueue interface {
	// Enqueue publishes one serialized message. messageID is attached as a
	// queue attribute for tracing and idempotency bookkeeping.
	Enqueue(ctx context.Context, messageID string, payload []byte) error

	// Close releases any resources held by the queue client.
	Close() error
}
