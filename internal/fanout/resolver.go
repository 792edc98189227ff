// Package fanout expands a message's target spec into the concrete set of
// recipient devices and records a pending audit entry for each one before
// any delivery is attempted.
package fanout

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"pushgate/internal/domain/entity"
	"pushgate/internal/domain/message"
	"pushgate/internal/domain/repository"
	"pushgate/internal/errors"

	"firebase.google.com/go/v4/messaging"
	"github.com/google/uuid"
)

// Delivery is one planned send: the audit entry and the registration token
// it will be delivered to.
type Delivery struct {
	Entry *entity.HistoryEntry
	Token string
}

// Resolution is the outcome of expanding a message: the shared token-less
// payload and the per-device deliveries, each already recorded as pending.
type Resolution struct {
	Payload    *messaging.Message
	Deliveries []Delivery
}

// Resolver expands target specs against the device registry. Target
// categories are evaluated in priority order: users, then topics, then raw
// device tokens; only the highest non-empty category counts.
type Resolver struct {
	devices repository.DeviceRepository
	topics  repository.TopicRepository
	history repository.HistoryRepository
	logger  *slog.Logger
}

// NewResolver creates a Resolver.
func NewResolver(
	devices repository.DeviceRepository,
	topics repository.TopicRepository,
	history repository.HistoryRepository,
	logger *slog.Logger,
) *Resolver {
	return &Resolver{
		devices: devices,
		topics:  topics,
		history: history,
		logger:  logger,
	}
}

type pairKey struct {
	deviceID uuid.UUID
	topicID  uuid.UUID
}

type candidate struct {
	device *entity.Device
	topic  *entity.Topic
}

// Resolve renders the message once, expands its targets into devices and
// bulk-inserts one pending history entry per recipient. Devices whose entry
// for this message already reached a terminal state are skipped, and devices
// with a still-pending entry (an interrupted or transiently failed attempt)
// resume that entry instead of drafting a duplicate row, so a redelivered
// message retries exactly the recipients that never settled.
func (r *Resolver) Resolve(ctx context.Context, msg message.Message) (*Resolution, error) {
	payload, err := msg.Render()
	if err != nil {
		return nil, errors.Wrap(err, "render message")
	}

	resolution := &Resolution{Payload: payload}
	candidates, err := r.expand(ctx, msg.Targets())
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		r.logger.Info("message resolved to no recipients",
			slog.String("message_id", msg.ID().String()),
		)

		return resolution, nil
	}

	prior, err := r.attempted(ctx, msg.ID())
	if err != nil {
		return nil, err
	}

	now := time.Now()
	entries := make([]*entity.HistoryEntry, 0, len(candidates))
	for _, c := range candidates {
		if existing, ok := prior[pairKey{deviceID: c.device.ID, topicID: c.topic.ID}]; ok {
			if existing.Terminal() {
				continue
			}
			resolution.Deliveries = append(resolution.Deliveries, Delivery{
				Entry: existing,
				Token: c.device.Token,
			})

			continue
		}

		send := *payload
		send.Token = c.device.Token
		data, err := json.Marshal(&send)
		if err != nil {
			return nil, errors.Wrap(err, "snapshot payload")
		}

		deviceID := c.device.ID
		topicID := c.topic.ID
		entry := &entity.HistoryEntry{
			ID:          uuid.New(),
			MessageID:   msg.ID(),
			MessageData: data,
			DeviceID:    &deviceID,
			UserID:      c.device.UserID,
			TopicID:     &topicID,
			Status:      entity.HistoryStatusPending,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		entries = append(entries, entry)
		resolution.Deliveries = append(resolution.Deliveries, Delivery{
			Entry: entry,
			Token: c.device.Token,
		})
	}

	// Every delivery is on record as pending before the first network call,
	// so a crash mid-send leaves a visible trace rather than silence.
	if len(entries) > 0 {
		if err := r.history.BulkInsert(ctx, entries); err != nil {
			return nil, errors.Wrap(err, "record pending deliveries")
		}
	}

	r.logger.Info("message resolved",
		slog.String("message_id", msg.ID().String()),
		slog.Int("deliveries", len(resolution.Deliveries)),
		slog.Int("skipped", len(candidates)-len(resolution.Deliveries)),
	)

	return resolution, nil
}

func (r *Resolver) expand(ctx context.Context, spec *message.TargetSpec) ([]candidate, error) {
	switch {
	case len(spec.Users) > 0:
		return r.expandUsers(ctx, spec)
	case len(spec.Topics) > 0:
		return r.expandTopics(ctx, spec)
	case len(spec.Devices) > 0:
		return r.expandDevices(ctx, spec)
	default:
		// No target is not a fault at this layer; send() already rejects
		// empty specs, so a queued message without targets just resolves
		// to nothing instead of cycling through the queue.
		return nil, nil
	}
}

// expandUsers resolves user targets: every enabled device of each targeted
// user that subscribes to the effective topic.
func (r *Resolver) expandUsers(ctx context.Context, spec *message.TargetSpec) ([]candidate, error) {
	topicName := spec.EffectiveTopic()
	topic, err := r.topics.GetOrCreate(ctx, topicName)
	if err != nil {
		return nil, errors.Wrapf(err, "resolve topic %q", topicName)
	}

	var out []candidate
	for _, userID := range dedup(spec.Users) {
		devices, err := r.devices.FindActiveByUserAndTopic(ctx, userID, topicName)
		if err != nil {
			return nil, errors.Wrapf(err, "find devices of user %q", userID)
		}
		for _, d := range devices {
			out = append(out, candidate{device: d, topic: topic})
		}
	}

	return dedupCandidates(out), nil
}

// expandTopics resolves topic targets: every enabled device subscribing to
// any of the named topics.
func (r *Resolver) expandTopics(ctx context.Context, spec *message.TargetSpec) ([]candidate, error) {
	var out []candidate
	for _, name := range dedup(spec.Topics) {
		topic, err := r.topics.GetOrCreate(ctx, name)
		if err != nil {
			return nil, errors.Wrapf(err, "resolve topic %q", name)
		}
		devices, err := r.devices.FindActiveByTopic(ctx, name)
		if err != nil {
			return nil, errors.Wrapf(err, "find devices of topic %q", name)
		}
		for _, d := range devices {
			out = append(out, candidate{device: d, topic: topic})
		}
	}

	return dedupCandidates(out), nil
}

// expandDevices resolves raw token targets. Unknown, disabled and
// unsubscribed tokens are dropped with a log line instead of failing the
// whole message.
func (r *Resolver) expandDevices(ctx context.Context, spec *message.TargetSpec) ([]candidate, error) {
	topicName := spec.EffectiveTopic()
	topic, err := r.topics.GetOrCreate(ctx, topicName)
	if err != nil {
		return nil, errors.Wrapf(err, "resolve topic %q", topicName)
	}

	var out []candidate
	for _, token := range dedup(spec.Devices) {
		device, err := r.devices.FindByToken(ctx, token)
		if err != nil {
			if errors.Is(err, repository.ErrDeviceNotFound) {
				r.logger.Warn("targeted device is not registered", slog.String("token", token))

				continue
			}

			return nil, errors.Wrap(err, "find device by token")
		}
		if !device.Enabled() {
			r.logger.Debug("skipping disabled device", slog.String("device_id", device.ID.String()))

			continue
		}
		if !device.SubscribesTo(topicName) {
			r.logger.Debug("skipping unsubscribed device",
				slog.String("device_id", device.ID.String()),
				slog.String("topic", topicName),
			)

			continue
		}
		out = append(out, candidate{device: device, topic: topic})
	}

	return dedupCandidates(out), nil
}

// attempted loads the entries already recorded for this message, keyed by
// their device/topic pair.
func (r *Resolver) attempted(ctx context.Context, messageID uuid.UUID) (map[pairKey]*entity.HistoryEntry, error) {
	existing, err := r.history.FindByMessageID(ctx, messageID)
	if err != nil {
		return nil, errors.Wrap(err, "load previous delivery attempts")
	}

	prior := make(map[pairKey]*entity.HistoryEntry, len(existing))
	for _, e := range existing {
		if e.DeviceID == nil || e.TopicID == nil {
			continue
		}
		prior[pairKey{deviceID: *e.DeviceID, topicID: *e.TopicID}] = e
	}

	return prior, nil
}

func dedup(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}

	return out
}

func dedupCandidates(candidates []candidate) []candidate {
	seen := make(map[pairKey]struct{}, len(candidates))
	out := make([]candidate, 0, len(candidates))
	for _, c := range candidates {
		key := pairKey{deviceID: c.device.ID, topicID: c.topic.ID}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, c)
	}

	return out
}
