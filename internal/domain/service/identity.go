package service

import (
	"context"
	"errors"
)

// ErrInvalidIdentity is returned when a requesting user cannot be resolved.
var ErrInvalidIdentity = errors.New("invalid identity")

// IdentityResolver resolves the requesting user from transport credentials.
// User identifiers are opaque to the core.
type IdentityResolver interface {
	ResolveRequestingUser(ctx context.Context, credential string) (userID string, err error)
}
