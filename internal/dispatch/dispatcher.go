package dispatch

import (
	"context"
	"fmt"
	"log/slog"

	"pushgate/internal/domain/entity"
	"pushgate/internal/domain/message"
	"pushgate/internal/domain/repository"
	"pushgate/internal/domain/service"
	"pushgate/internal/errors"
	"pushgate/internal/fanout"
)

// RetryableError wraps an error to indicate the message should be
// redelivered by the queue.
type RetryableError struct {
	err error
}

func (e *RetryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *RetryableError) Unwrap() error {
	return e.err
}

// NewRetryableError wraps an error as retryable.
func NewRetryableError(err error) error {
	return &RetryableError{err: err}
}

// IsRetryable checks if an error should trigger a queue redelivery.
func IsRetryable(err error) bool {
	var re *RetryableError

	return errors.As(err, &re)
}

// Dispatcher consumes a serialized message, fans it out and delivers to
// each recipient through the push provider, updating the audit entry of
// every attempt.
type Dispatcher struct {
	resolver *fanout.Resolver
	provider service.PushProvider
	history  repository.HistoryRepository
	devices  repository.DeviceRepository
	logger   *slog.Logger
}

// NewDispatcher creates a Dispatcher.
func NewDispatcher(
	resolver *fanout.Resolver,
	provider service.PushProvider,
	history repository.HistoryRepository,
	devices repository.DeviceRepository,
	logger *slog.Logger,
) *Dispatcher {
	return &Dispatcher{
		resolver: resolver,
		provider: provider,
		history:  history,
		devices:  devices,
		logger:   logger,
	}
}

// Dispatch decodes and delivers one queued message. Recipients fail
// independently: one rejected token never blocks the rest. The returned
// error is retryable only when at least one delivery failed transiently;
// transient failures leave their audit entry pending, so a redelivery
// retries exactly the devices whose entries never reached a terminal state.
func (d *Dispatcher) Dispatch(ctx context.Context, raw []byte) error {
	msg, err := message.Unmarshal(raw)
	if err != nil {
		// A payload that cannot be decoded will never succeed.
		return errors.Wrap(err, "decode queued message")
	}

	resolution, err := d.resolver.Resolve(ctx, msg)
	if err != nil {
		return NewRetryableError(errors.Wrap(err, "resolve targets"))
	}

	transient := 0
	for _, delivery := range resolution.Deliveries {
		if err := d.deliver(ctx, resolution, delivery); err != nil {
			transient++
		}
	}

	if transient > 0 {
		return NewRetryableError(errors.Errorf("%d of %d deliveries failed transiently",
			transient, len(resolution.Deliveries)))
	}

	return nil
}

// deliver sends to a single recipient and settles its audit entry. The
// returned error is non-nil only for transient failures.
func (d *Dispatcher) deliver(ctx context.Context, resolution *fanout.Resolution, delivery fanout.Delivery) error {
	entry := delivery.Entry

	send := *resolution.Payload
	send.Token = delivery.Token

	receipt, err := d.provider.Send(ctx, &send)
	if err == nil {
		entry.Status = entity.HistoryStatusSent
		entry.ErrorDetail = receipt
		d.settle(ctx, entry)

		return nil
	}

	var provErr *service.ProviderError
	if !errors.As(err, &provErr) {
		entry.Status = entity.HistoryStatusFailed
		entry.ErrorDetail = fmt.Sprintf("%+v", err)
		d.settle(ctx, entry)
		d.logger.Error("delivery failed with unclassified error",
			slog.String("history_id", entry.ID.String()),
			slog.Any("error", err),
		)

		return nil
	}

	switch provErr.Kind {
	case service.ProviderErrorPermanent:
		// The token is dead. Drop the device and detach it from the audit
		// entry so the record outlives the registration.
		deviceID := entry.DeviceID
		entry.Status = entity.HistoryStatusFailed
		entry.ErrorDetail = provErr.Error()
		entry.DeviceID = nil
		d.settle(ctx, entry)
		if deviceID != nil {
			if err := d.devices.Delete(ctx, *deviceID); err != nil {
				d.logger.Warn("failed to delete rejected device",
					slog.String("device_id", deviceID.String()),
					slog.Any("error", err),
				)
			} else {
				d.logger.Info("deleted permanently rejected device",
					slog.String("device_id", deviceID.String()),
				)
			}
		}

		return nil
	case service.ProviderErrorTransient:
		// Stay pending: the queue redelivers the message and the resolver
		// resumes this entry, so the device gets another attempt.
		entry.ErrorDetail = provErr.Error()
		d.settle(ctx, entry)

		return provErr
	default:
		entry.Status = entity.HistoryStatusFailed
		entry.ErrorDetail = fmt.Sprintf("%+v", provErr)
		d.settle(ctx, entry)
		d.logger.Error("delivery failed with unknown provider error",
			slog.String("history_id", entry.ID.String()),
			slog.Any("error", provErr),
		)

		return nil
	}
}

func (d *Dispatcher) settle(ctx context.Context, entry *entity.HistoryEntry) {
	if err := d.history.Update(ctx, entry); err != nil {
		d.logger.Error("failed to update delivery history",
			slog.String("history_id", entry.ID.String()),
			slog.Any("error", err),
		)
	}
}
