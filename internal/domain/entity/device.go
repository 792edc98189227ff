// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Platform identifies the client platform a device runs on.
type Platform string

const (
	PlatformAndroid Platform = "android"
	PlatformIOS     Platform = "ios"
	PlatformWeb     Platform = "web"
	PlatformUnknown Platform = "unknown"
)

// ParsePlatform maps an arbitrary string onto a known platform tag.
func ParsePlatform(s string) Platform {
	switch Platform(s) {
	case PlatformAndroid, PlatformIOS, PlatformWeb:
		return Platform(s)
	default:
		return PlatformUnknown
	}
}

// Device represents a recipient endpoint registered for push notifications.
// The registration token is provider-assigned and globally unique; a device
// with a non-nil DisabledAt is excluded from all fan-out resolution.
type Device struct {
	ID         uuid.UUID  `json:"id"`          // The Global Unique Identifier (GUID) for the device.
	Token      string     `json:"token"`       // Provider-issued registration token (unique).
	UserID     string     `json:"user_id"`     // Opaque identifier of the user who owns this device.
	Platform   Platform   `json:"platform"`    // Device platform (android, ios, web, unknown).
	AppVersion string     `json:"app_version"` // Client application version reported at registration.
	Topics     []string   `json:"topics"`      // Names of the topics this device subscribes to.
	DisabledAt *time.Time `json:"disabled_at"` // Set when the device is disabled; nil means active.
	CreatedAt  time.Time  `json:"created_at"`  // Timestamp of when this device was registered.
	UpdatedAt  time.Time  `json:"updated_at"`  // Timestamp of the last modification.
}

// Enabled reports whether the device participates in fan-out resolution.
func (d *Device) Enabled() bool {
	return d.DisabledAt == nil
}

// SubscribesTo reports whether the device subscribes to the named topic.
func (d *Device) SubscribesTo(topic string) bool {
	for _, name := range d.Topics {
		if name == topic {
			return true
		}
	}

	return false
}
