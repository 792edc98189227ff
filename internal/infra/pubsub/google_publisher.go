package pubsub

import (
	"context"
	"fmt"
	"log/slog"

	deliverycontext "pushgate/internal/delivery/context"
	"pushgate/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

// googlePubSubQueue implements MessageQueue using Google Cloud Pub/Sub
type googlePubSubQueue struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	logger    *slog.Logger
}

// NewGooglePubSubQueue creates a new Google Pub/Sub backed queue
func NewGooglePubSubQueue(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.MessageQueue, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	// Check if topic exists using TopicAdminClient
	topicPath := fmt.Sprintf("projects/%s/topics/%s", projectID, topicID)
	_, err = client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{
		Topic: topicPath,
	})
	if err != nil {
		client.Close()

		return nil, errors.Wrapf(err, "failed to get topic %s", topicID)
	}

	publisher := client.Publisher(topicID)

	logger.Info("Google Pub/Sub queue initialized",
		slog.String("project_id", projectID),
		slog.String("topic_id", topicID),
	)

	return &googlePubSubQueue{
		client:    client,
		publisher: publisher,
		logger:    logger,
	}, nil
}

// Enqueue publishes one serialized message to the topic
func (q *googlePubSubQueue) Enqueue(ctx context.Context, messageID string, payload []byte) error {
	attributes := map[string]string{
		"message_id": messageID,
	}
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		attributes["request_id"] = requestID
	}

	msg := &pubsub.Message{
		Data:       payload,
		Attributes: attributes,
	}

	result := q.publisher.Publish(ctx, msg)

	serverID, err := result.Get(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	q.logger.Info("[GooglePubSub] Message published",
		slog.String("message_id", messageID),
		slog.String("server_id", serverID),
	)

	return nil
}

// Close releases Pub/Sub client resources
func (q *googlePubSubQueue) Close() error {
	if q.publisher != nil {
		q.publisher.Stop()
	}
	if q.client != nil {
		return errors.WithStack(q.client.Close())
	}

	return nil
}
