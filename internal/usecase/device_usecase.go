// Package usecase defines the application-facing operation interfaces.
package usecase

import (
	"context"

	"pushgate/internal/domain/entity"
)

// DeviceInfo carries the registration attributes supplied by a client.
type DeviceInfo struct {
	Token      string
	Platform   string
	AppVersion string
	Topics     []string
}

// DeviceUsecase covers the device registry operations exposed over the API.
type DeviceUsecase interface {
	// RegisterDevice creates or refreshes the registration for a token and
	// replaces its topic subscriptions. Every device is subscribed to the
	// default topic.
	RegisterDevice(ctx context.Context, userID string, info *DeviceInfo) (*entity.Device, error)

	// UnregisterDevice removes the caller's device registration.
	UnregisterDevice(ctx context.Context, userID, token string) error

	// UpdateSubscriptions replaces the topic subscriptions of the caller's
	// device. The default topic subscription is always retained.
	UpdateSubscriptions(ctx context.Context, userID, token string, topics []string) (*entity.Device, error)
}
