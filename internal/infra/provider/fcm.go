// Package provider implements the push provider on Firebase Cloud Messaging.
package provider

import (
	"context"
	"log/slog"

	"pushgate/config"
	"pushgate/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

type fcmProvider struct {
	client *messaging.Client
	logger *slog.Logger
}

// Params holds dependencies for the FCM provider
type Params struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewFCMProvider creates the Firebase Cloud Messaging push provider
func NewFCMProvider(params Params) (service.PushProvider, error) {
	cfg := params.Config.Firebase
	if cfg == nil {
		return nil, errors.New("firebase configuration is required")
	}

	var opts []option.ClientOption
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	app, err := firebase.NewApp(params.Ctx, &firebase.Config{ProjectID: cfg.ProjectID}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(params.Ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &fcmProvider{
		client: client,
		logger: params.Logger,
	}, nil
}

// Send delivers one rendered payload and classifies any failure.
func (p *fcmProvider) Send(ctx context.Context, payload *messaging.Message) (string, error) {
	receipt, err := p.client.Send(ctx, payload)
	if err != nil {
		return "", &service.ProviderError{
			Kind:  classify(err),
			Token: payload.Token,
			Err:   err,
		}
	}

	return receipt, nil
}

// classify maps an FCM error onto the recovery action it drives.
func classify(err error) service.ProviderErrorKind {
	switch {
	case messaging.IsUnregistered(err), messaging.IsInvalidArgument(err):
		// The token will never work again.
		return service.ProviderErrorPermanent
	case messaging.IsUnavailable(err), messaging.IsInternal(err), messaging.IsQuotaExceeded(err):
		return service.ProviderErrorTransient
	default:
		return service.ProviderErrorUnknown
	}
}
