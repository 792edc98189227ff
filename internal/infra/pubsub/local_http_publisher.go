package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	deliverycontext "pushgate/internal/delivery/context"
	"pushgate/internal/domain/service"

	"github.com/pkg/errors"
)

// localHTTPQueue implements MessageQueue by sending HTTP POST requests to a
// local worker endpoint, simulating Pub/Sub push behavior for development
type localHTTPQueue struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// PubSubPushMessage represents the structure of a Pub/Sub push message
// This mimics the format Google Pub/Sub uses when pushing to HTTP endpoints
type PubSubPushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// NewLocalHTTPQueue creates a new local HTTP queue for development
func NewLocalHTTPQueue(endpoint string, logger *slog.Logger) service.MessageQueue {
	return &localHTTPQueue{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

// Enqueue posts one serialized message to the local worker endpoint wrapped
// in the Pub/Sub push envelope.
func (q *localHTTPQueue) Enqueue(ctx context.Context, messageID string, payload []byte) error {
	pushMsg := PubSubPushMessage{
		Subscription: "projects/local/subscriptions/push-dispatch-sub",
	}
	pushMsg.Message.Data = base64.StdEncoding.EncodeToString(payload)
	pushMsg.Message.MessageID = messageID
	pushMsg.Message.PublishTime = time.Now().UTC().Format(time.RFC3339)

	attributes := map[string]string{
		"message_id": messageID,
	}
	requestID := deliverycontext.GetRequestIDFromContext(ctx)
	if requestID != "" {
		attributes["request_id"] = requestID
	}
	pushMsg.Message.Attributes = attributes

	body, err := json.Marshal(pushMsg)
	if err != nil {
		return errors.WithStack(err)
	}

	q.logger.Info("[LocalPubSub] Publishing message",
		slog.String("endpoint", q.endpoint),
		slog.String("message_id", messageID),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, q.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if requestID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, requestID)
	}

	resp, err := q.httpClient.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.Errorf("worker returned non-success status: %d", resp.StatusCode)
	}

	return nil
}

// Close releases resources (no-op for HTTP client)
func (q *localHTTPQueue) Close() error {
	return nil
}
