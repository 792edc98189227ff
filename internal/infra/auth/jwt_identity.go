// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"context"

	"pushgate/config"
	"pushgate/internal/domain/service"
	"pushgate/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

// jwtIdentityResolver resolves the requesting user from an HS256 bearer
// token issued by the surrounding platform.
type jwtIdentityResolver struct {
	secret string
}

// NewJWTIdentityResolver is the constructor for jwtIdentityResolver.
func NewJWTIdentityResolver(cfg *config.Config) (service.IdentityResolver, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	return &jwtIdentityResolver{secret: cfg.SecretKey.Access}, nil
}

// ResolveRequestingUser validates the credential and returns the subject claim.
func (r *jwtIdentityResolver) ResolveRequestingUser(_ context.Context, credential string) (string, error) {
	token, err := jwt.Parse(credential, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(r.secret), nil
	})
	if err != nil || !token.Valid {
		return "", service.ErrInvalidIdentity
	}

	subject, err := token.Claims.GetSubject()
	if err != nil || subject == "" {
		return "", service.ErrInvalidIdentity
	}

	return subject, nil
}
