package fanout

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"pushgate/internal/domain/entity"
	"pushgate/internal/domain/message"
	"pushgate/internal/domain/repository"
	mockRepo "pushgate/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type resolverFixtures struct {
	resolver *Resolver
	devices  *mockRepo.MockDeviceRepository
	topics   *mockRepo.MockTopicRepository
	history  *mockRepo.MockHistoryRepository
}

func createTestResolver(t *testing.T) resolverFixtures {
	devices := mockRepo.NewMockDeviceRepository(t)
	topics := mockRepo.NewMockTopicRepository(t)
	history := mockRepo.NewMockHistoryRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return resolverFixtures{
		resolver: NewResolver(devices, topics, history, logger),
		devices:  devices,
		topics:   topics,
		history:  history,
	}
}

func testDevice(userID, token string, topics ...string) *entity.Device {
	return &entity.Device{
		ID:       uuid.New(),
		Token:    token,
		UserID:   userID,
		Platform: entity.PlatformAndroid,
		Topics:   topics,
	}
}

func TestResolver_Resolve_UserTargets(t *testing.T) {
	fx := createTestResolver(t)
	ctx := context.Background()

	topic := &entity.Topic{ID: uuid.New(), Name: message.DefaultTopic}
	deviceA := testDevice("user-1", "token-a", message.DefaultTopic)
	deviceB := testDevice("user-2", "token-b", message.DefaultTopic)

	msg := message.NewPushMessage("t", "b")
	msg.AddUser("user-1")
	msg.AddUser("user-2")

	fx.topics.EXPECT().
		GetOrCreate(ctx, message.DefaultTopic).
		Return(topic, nil)
	fx.devices.EXPECT().
		FindActiveByUserAndTopic(ctx, "user-1", message.DefaultTopic).
		Return([]*entity.Device{deviceA}, nil)
	fx.devices.EXPECT().
		FindActiveByUserAndTopic(ctx, "user-2", message.DefaultTopic).
		Return([]*entity.Device{deviceB}, nil)
	fx.history.EXPECT().
		FindByMessageID(ctx, msg.ID()).
		Return(nil, nil)
	fx.history.EXPECT().
		BulkInsert(ctx, mock.AnythingOfType("[]*entity.HistoryEntry")).
		Return(nil)

	resolution, err := fx.resolver.Resolve(ctx, msg)
	require.NoError(t, err)
	require.Len(t, resolution.Deliveries, 2)

	first := resolution.Deliveries[0]
	assert.Equal(t, "token-a", first.Token)
	assert.Equal(t, msg.ID(), first.Entry.MessageID)
	assert.Equal(t, "user-1", first.Entry.UserID)
	assert.Equal(t, entity.HistoryStatusPending, first.Entry.Status)
	require.NotNil(t, first.Entry.DeviceID)
	assert.Equal(t, deviceA.ID, *first.Entry.DeviceID)
	require.NotNil(t, first.Entry.TopicID)
	assert.Equal(t, topic.ID, *first.Entry.TopicID)
	assert.NotEmpty(t, first.Entry.MessageData)

	assert.Equal(t, "token-b", resolution.Deliveries[1].Token)
	assert.Empty(t, resolution.Payload.Token)
}

func TestResolver_Resolve_TopicTargets_DedupNames(t *testing.T) {
	fx := createTestResolver(t)
	ctx := context.Background()

	topic := &entity.Topic{ID: uuid.New(), Name: "news"}
	device := testDevice("user-1", "token-a", "news")

	msg := message.NewPushMessage("t", "b")
	msg.AddTopic("news")
	msg.AddTopic("news")

	fx.topics.EXPECT().
		GetOrCreate(ctx, "news").
		Return(topic, nil).
		Once()
	fx.devices.EXPECT().
		FindActiveByTopic(ctx, "news").
		Return([]*entity.Device{device}, nil).
		Once()
	fx.history.EXPECT().
		FindByMessageID(ctx, msg.ID()).
		Return(nil, nil)
	fx.history.EXPECT().
		BulkInsert(ctx, mock.AnythingOfType("[]*entity.HistoryEntry")).
		Return(nil)

	resolution, err := fx.resolver.Resolve(ctx, msg)
	require.NoError(t, err)
	assert.Len(t, resolution.Deliveries, 1)
}

func TestResolver_Resolve_UsersTakePriorityOverTopics(t *testing.T) {
	fx := createTestResolver(t)
	ctx := context.Background()

	topic := &entity.Topic{ID: uuid.New(), Name: "news"}
	device := testDevice("user-1", "token-a", "news")

	msg := message.NewPushMessage("t", "b")
	msg.AddUser("user-1")
	msg.AddTopic("news")

	// The topic list only supplies the effective topic context; the user
	// branch alone determines the recipients.
	fx.topics.EXPECT().
		GetOrCreate(ctx, "news").
		Return(topic, nil)
	fx.devices.EXPECT().
		FindActiveByUserAndTopic(ctx, "user-1", "news").
		Return([]*entity.Device{device}, nil)
	fx.history.EXPECT().
		FindByMessageID(ctx, msg.ID()).
		Return(nil, nil)
	fx.history.EXPECT().
		BulkInsert(ctx, mock.AnythingOfType("[]*entity.HistoryEntry")).
		Return(nil)

	resolution, err := fx.resolver.Resolve(ctx, msg)
	require.NoError(t, err)
	assert.Len(t, resolution.Deliveries, 1)
}

func TestResolver_Resolve_DeviceTargets_SkipsUnusable(t *testing.T) {
	fx := createTestResolver(t)
	ctx := context.Background()

	topic := &entity.Topic{ID: uuid.New(), Name: message.DefaultTopic}
	good := testDevice("user-1", "token-good", message.DefaultTopic)
	disabled := testDevice("user-2", "token-disabled", message.DefaultTopic)
	now := time.Now()
	disabled.DisabledAt = &now
	unsubscribed := testDevice("user-3", "token-unsubscribed", "other")

	msg := message.NewPushMessage("t", "b")
	msg.AddDevice("token-good")
	msg.AddDevice("token-disabled")
	msg.AddDevice("token-unsubscribed")
	msg.AddDevice("token-unknown")

	fx.topics.EXPECT().
		GetOrCreate(ctx, message.DefaultTopic).
		Return(topic, nil)
	fx.devices.EXPECT().
		FindByToken(ctx, "token-good").
		Return(good, nil)
	fx.devices.EXPECT().
		FindByToken(ctx, "token-disabled").
		Return(disabled, nil)
	fx.devices.EXPECT().
		FindByToken(ctx, "token-unsubscribed").
		Return(unsubscribed, nil)
	fx.devices.EXPECT().
		FindByToken(ctx, "token-unknown").
		Return(nil, repository.ErrDeviceNotFound)
	fx.history.EXPECT().
		FindByMessageID(ctx, msg.ID()).
		Return(nil, nil)
	fx.history.EXPECT().
		BulkInsert(ctx, mock.AnythingOfType("[]*entity.HistoryEntry")).
		Return(nil)

	resolution, err := fx.resolver.Resolve(ctx, msg)
	require.NoError(t, err)
	require.Len(t, resolution.Deliveries, 1)
	assert.Equal(t, "token-good", resolution.Deliveries[0].Token)
}

func TestResolver_Resolve_SkipsAlreadyAttempted(t *testing.T) {
	fx := createTestResolver(t)
	ctx := context.Background()

	topic := &entity.Topic{ID: uuid.New(), Name: message.DefaultTopic}
	attempted := testDevice("user-1", "token-a", message.DefaultTopic)
	fresh := testDevice("user-1", "token-b", message.DefaultTopic)

	msg := message.NewPushMessage("t", "b")
	msg.AddUser("user-1")

	attemptedID := attempted.ID
	topicID := topic.ID
	previous := []*entity.HistoryEntry{{
		ID:        uuid.New(),
		MessageID: msg.ID(),
		DeviceID:  &attemptedID,
		TopicID:   &topicID,
		Status:    entity.HistoryStatusSent,
	}}

	fx.topics.EXPECT().
		GetOrCreate(ctx, message.DefaultTopic).
		Return(topic, nil)
	fx.devices.EXPECT().
		FindActiveByUserAndTopic(ctx, "user-1", message.DefaultTopic).
		Return([]*entity.Device{attempted, fresh}, nil)
	fx.history.EXPECT().
		FindByMessageID(ctx, msg.ID()).
		Return(previous, nil)
	fx.history.EXPECT().
		BulkInsert(ctx, mock.AnythingOfType("[]*entity.HistoryEntry")).
		Return(nil)

	resolution, err := fx.resolver.Resolve(ctx, msg)
	require.NoError(t, err)
	require.Len(t, resolution.Deliveries, 1)
	assert.Equal(t, "token-b", resolution.Deliveries[0].Token)
}

func TestResolver_Resolve_AllAttempted_NoInsert(t *testing.T) {
	fx := createTestResolver(t)
	ctx := context.Background()

	topic := &entity.Topic{ID: uuid.New(), Name: message.DefaultTopic}
	attempted := testDevice("user-1", "token-a", message.DefaultTopic)

	msg := message.NewPushMessage("t", "b")
	msg.AddUser("user-1")

	attemptedID := attempted.ID
	topicID := topic.ID
	previous := []*entity.HistoryEntry{{
		ID:        uuid.New(),
		MessageID: msg.ID(),
		DeviceID:  &attemptedID,
		TopicID:   &topicID,
		Status:    entity.HistoryStatusSent,
	}}

	fx.topics.EXPECT().
		GetOrCreate(ctx, message.DefaultTopic).
		Return(topic, nil)
	fx.devices.EXPECT().
		FindActiveByUserAndTopic(ctx, "user-1", message.DefaultTopic).
		Return([]*entity.Device{attempted}, nil)
	fx.history.EXPECT().
		FindByMessageID(ctx, msg.ID()).
		Return(previous, nil)

	resolution, err := fx.resolver.Resolve(ctx, msg)
	require.NoError(t, err)
	assert.Empty(t, resolution.Deliveries)
}

func TestResolver_Resolve_ResumesPendingEntry(t *testing.T) {
	fx := createTestResolver(t)
	ctx := context.Background()

	topic := &entity.Topic{ID: uuid.New(), Name: message.DefaultTopic}
	interrupted := testDevice("user-1", "token-a", message.DefaultTopic)
	fresh := testDevice("user-1", "token-b", message.DefaultTopic)

	msg := message.NewPushMessage("t", "b")
	msg.AddUser("user-1")

	interruptedID := interrupted.ID
	topicID := topic.ID
	pending := &entity.HistoryEntry{
		ID:        uuid.New(),
		MessageID: msg.ID(),
		DeviceID:  &interruptedID,
		TopicID:   &topicID,
		Status:    entity.HistoryStatusPending,
	}

	fx.topics.EXPECT().
		GetOrCreate(ctx, message.DefaultTopic).
		Return(topic, nil)
	fx.devices.EXPECT().
		FindActiveByUserAndTopic(ctx, "user-1", message.DefaultTopic).
		Return([]*entity.Device{interrupted, fresh}, nil)
	fx.history.EXPECT().
		FindByMessageID(ctx, msg.ID()).
		Return([]*entity.HistoryEntry{pending}, nil)

	var inserted []*entity.HistoryEntry
	fx.history.EXPECT().
		BulkInsert(ctx, mock.AnythingOfType("[]*entity.HistoryEntry")).
		Run(func(_ context.Context, entries []*entity.HistoryEntry) {
			inserted = entries
		}).
		Return(nil)

	resolution, err := fx.resolver.Resolve(ctx, msg)
	require.NoError(t, err)
	require.Len(t, resolution.Deliveries, 2)

	// The interrupted device resumes its recorded entry rather than getting
	// a duplicate row; only the fresh device is inserted.
	assert.Same(t, pending, resolution.Deliveries[0].Entry)
	assert.Equal(t, "token-a", resolution.Deliveries[0].Token)
	require.Len(t, inserted, 1)
	assert.Equal(t, fresh.ID, *inserted[0].DeviceID)
}

func TestResolver_Resolve_NoTarget(t *testing.T) {
	fx := createTestResolver(t)

	msg := message.NewPushMessage("t", "b")

	resolution, err := fx.resolver.Resolve(context.Background(), msg)
	require.NoError(t, err)
	assert.Empty(t, resolution.Deliveries)
}
