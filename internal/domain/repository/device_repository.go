// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"pushgate/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for device persistence.
var (
	// ErrDeviceNotFound is returned when a device is not found.
	ErrDeviceNotFound = errors.New("device not found")
	// ErrDuplicateDevice is returned when trying to create a device that already exists.
	ErrDuplicateDevice = errors.New("device already exists")
)

// DeviceRepository is the Target Registry view of registered devices. The
// fan-out resolver only reads; disablement and deletion are reserved for the
// dispatcher (permanent provider rejection) and the maintenance policies.
type DeviceRepository interface {
	// Upsert creates the device or, when the registration token already
	// exists, refreshes its owner, platform, app version and re-enables it.
	Upsert(ctx context.Context, device *entity.Device) error

	// FindByToken retrieves a device by its registration token.
	FindByToken(ctx context.Context, token string) (*entity.Device, error)

	// FindActiveByUserAndTopic retrieves all enabled devices of a user that
	// subscribe to the named topic.
	FindActiveByUserAndTopic(ctx context.Context, userID, topic string) ([]*entity.Device, error)

	// FindActiveByTopic retrieves all enabled devices subscribed to the named topic.
	FindActiveByTopic(ctx context.Context, topic string) ([]*entity.Device, error)

	// ExistsForUsers reports whether any of the given users owns at least one device.
	ExistsForUsers(ctx context.Context, userIDs []string) (bool, error)

	// ExistsEnabledSubscribed reports whether any of the given tokens belongs
	// to an enabled device subscribed to the named topic.
	ExistsEnabledSubscribed(ctx context.Context, tokens []string, topic string) (bool, error)

	// ReplaceTopics replaces the device's topic subscriptions.
	ReplaceTopics(ctx context.Context, deviceID uuid.UUID, topicIDs []uuid.UUID) error

	// Delete removes a device. History entries referencing it keep their rows
	// with the device reference set to null.
	Delete(ctx context.Context, id uuid.UUID) error

	// DisableStale disables devices not updated since the given time and
	// returns the number of devices disabled.
	DisableStale(ctx context.Context, before time.Time) (int64, error)

	// DeleteDisabledBefore removes devices that have been disabled since
	// before the given time and returns the number of devices removed.
	DeleteDisabledBefore(ctx context.Context, before time.Time) (int64, error)
}
