// Package pubsub implements the dispatch queue on top of Google Cloud
// Pub/Sub, with a local HTTP stand-in for development.
package pubsub

import (
	"context"
	"log/slog"

	"pushgate/config"
	"pushgate/internal/domain/constants"
	"pushgate/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// noopQueue drops messages when no queue is configured
type noopQueue struct {
	logger *slog.Logger
}

func (q *noopQueue) Enqueue(_ context.Context, messageID string, _ []byte) error {
	q.logger.Debug("[NoopQueue] Queue disabled, dropping message",
		slog.String("message_id", messageID),
	)

	return nil
}

func (q *noopQueue) Close() error {
	return nil
}

// QueueParams holds dependencies for the MessageQueue, injected by Fx
type QueueParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewMessageQueue creates a MessageQueue based on configuration
func NewMessageQueue(params QueueParams) (service.MessageQueue, error) {
	cfg := params.Config.PubSub
	logger := params.Logger

	if cfg == nil || cfg.Provider == "" || cfg.Provider == constants.PubSubProviderNoop {
		logger.Info("PubSub not configured, using no-op queue")

		return &noopQueue{logger: logger}, nil
	}

	var queue service.MessageQueue
	var err error

	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("local endpoint is required for local provider")
		}
		logger.Info("Using local HTTP queue for Pub/Sub",
			slog.String("endpoint", cfg.LocalEndpoint),
		)

		queue = NewLocalHTTPQueue(cfg.LocalEndpoint, logger)

	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" {
			return nil, errors.New("project ID is required for google provider")
		}
		if cfg.TopicID == "" {
			return nil, errors.New("topic ID is required for google provider")
		}
		logger.Info("Using Google Pub/Sub queue",
			slog.String("project_id", cfg.ProjectID),
			slog.String("topic_id", cfg.TopicID),
		)

		queue, err = NewGooglePubSubQueue(params.Ctx, cfg.ProjectID, cfg.TopicID, logger)
		if err != nil {
			return nil, err
		}

	default:
		return nil, errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing MessageQueue")

			return queue.Close()
		},
	})

	return queue, nil
}

// Module provides the Pub/Sub FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewMessageQueue),
)
