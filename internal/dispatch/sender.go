// Package dispatch submits messages for delivery and drives the delivery of
// dequeued messages against the push provider.
package dispatch

import (
	"context"
	"log/slog"

	domainerrors "pushgate/internal/domain/errors"
	"pushgate/internal/domain/message"
	"pushgate/internal/domain/repository"
	"pushgate/internal/domain/service"
	"pushgate/internal/errors"
)

// Sender validates a message against the device registry and hands it to
// the delivery queue. Validation is a cheap existence probe; the full
// fan-out happens later on the consuming side.
type Sender struct {
	devices repository.DeviceRepository
	topics  repository.TopicRepository
	queue   service.MessageQueue
	logger  *slog.Logger
}

// NewSender creates a Sender.
func NewSender(
	devices repository.DeviceRepository,
	topics repository.TopicRepository,
	queue service.MessageQueue,
	logger *slog.Logger,
) *Sender {
	return &Sender{
		devices: devices,
		topics:  topics,
		queue:   queue,
		logger:  logger,
	}
}

// Send checks that the message can reach at least one recipient and
// enqueues it. Topic targets are created on first use, so sending to a new
// topic before any device subscribes is not an error.
func (s *Sender) Send(ctx context.Context, msg message.Message) error {
	spec := msg.Targets()
	if spec.Empty() {
		return domainerrors.ErrNoTarget
	}

	switch {
	case len(spec.Users) > 0:
		ok, err := s.devices.ExistsForUsers(ctx, spec.Users)
		if err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to probe user devices")
		}
		if !ok {
			return domainerrors.ErrNoMatchingUsers
		}
	case len(spec.Topics) > 0:
		for _, name := range spec.Topics {
			if _, err := s.topics.GetOrCreate(ctx, name); err != nil {
				return domainerrors.NewDatabaseExecuteError(err, "failed to resolve topic")
			}
		}
	case len(spec.Devices) > 0:
		ok, err := s.devices.ExistsEnabledSubscribed(ctx, spec.Devices, spec.EffectiveTopic())
		if err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to probe device tokens")
		}
		if !ok {
			return domainerrors.ErrNoMatchingDevices
		}
	}

	raw, err := message.Marshal(msg)
	if err != nil {
		return errors.Wrap(err, "serialize message")
	}

	if err := s.queue.Enqueue(ctx, msg.ID().String(), raw); err != nil {
		s.logger.Error("enqueue failed",
			slog.String("message_id", msg.ID().String()),
			slog.Any("error", err),
		)

		return domainerrors.ErrEnqueueFailed
	}

	s.logger.Info("message enqueued",
		slog.String("message_id", msg.ID().String()),
		slog.String("kind", msg.Kind()),
	)

	return nil
}
