// Package service defines the interfaces for external collaborators consumed
// by the core: the push provider, the message queue and the identity resolver.
package service

import (
	"context"
	"fmt"

	"firebase.google.com/go/v4/messaging"
)

// ProviderErrorKind classifies a provider failure into the recovery action it
// drives: permanent rejections deregister the device, transient faults retry
// the whole job, everything else is recorded and left alone.
type ProviderErrorKind string

const (
	// ProviderErrorPermanent means the provider reported the token as
	// unregistered or invalid; it will never succeed again.
	ProviderErrorPermanent ProviderErrorKind = "permanent_rejection"
	// ProviderErrorTransient means a retry of the delivery may succeed.
	ProviderErrorTransient ProviderErrorKind = "transient"
	// ProviderErrorUnknown is anything the classifier could not categorize.
	ProviderErrorUnknown ProviderErrorKind = "unknown"
)

// ProviderError is a classified push-provider failure for a single token.
type ProviderError struct {
	Kind  ProviderErrorKind
	Token string
	Err   error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("push provider error (%s): %v", e.Kind, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// PushProvider sends one rendered payload to the push network. On success it
// returns the provider-issued receipt id; on failure the error is a
// *ProviderError carrying the classification.
type PushProvider interface {
	Send(ctx context.Context, payload *messaging.Message) (receipt string, err error)
}
