package dispatch

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"pushgate/internal/domain/entity"
	"pushgate/internal/domain/message"
	"pushgate/internal/domain/service"
	"pushgate/internal/fanout"
	mockRepo "pushgate/internal/mocks/repository"
	mockSvc "pushgate/internal/mocks/service"

	"firebase.google.com/go/v4/messaging"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type dispatcherFixtures struct {
	dispatcher *Dispatcher
	devices    *mockRepo.MockDeviceRepository
	topics     *mockRepo.MockTopicRepository
	history    *mockRepo.MockHistoryRepository
	provider   *mockSvc.MockPushProvider
}

func createTestDispatcher(t *testing.T) dispatcherFixtures {
	devices := mockRepo.NewMockDeviceRepository(t)
	topics := mockRepo.NewMockTopicRepository(t)
	history := mockRepo.NewMockHistoryRepository(t)
	provider := mockSvc.NewMockPushProvider(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	resolver := fanout.NewResolver(devices, topics, history, logger)

	return dispatcherFixtures{
		dispatcher: NewDispatcher(resolver, provider, history, devices, logger),
		devices:    devices,
		topics:     topics,
		history:    history,
		provider:   provider,
	}
}

// expectResolution wires the repository mocks so the message fans out to the
// given devices through the default topic.
func expectResolution(fx dispatcherFixtures, ctx context.Context, msg message.Message, devices ...*entity.Device) {
	topic := &entity.Topic{ID: uuid.New(), Name: message.DefaultTopic}
	fx.topics.EXPECT().
		GetOrCreate(ctx, message.DefaultTopic).
		Return(topic, nil)
	fx.devices.EXPECT().
		FindActiveByUserAndTopic(ctx, "user-1", message.DefaultTopic).
		Return(devices, nil)
	fx.history.EXPECT().
		FindByMessageID(ctx, msg.ID()).
		Return(nil, nil)
	fx.history.EXPECT().
		BulkInsert(ctx, mock.AnythingOfType("[]*entity.HistoryEntry")).
		Return(nil)
}

func marshalFor(t *testing.T, msg message.Message) []byte {
	raw, err := message.Marshal(msg)
	require.NoError(t, err)

	return raw
}

func TestDispatcher_Dispatch_Success(t *testing.T) {
	fx := createTestDispatcher(t)
	ctx := context.Background()

	device := &entity.Device{ID: uuid.New(), Token: "token-a", UserID: "user-1", Topics: []string{message.DefaultTopic}}
	msg := message.NewPushMessage("t", "b")
	msg.AddUser("user-1")
	expectResolution(fx, ctx, msg, device)

	var settled *entity.HistoryEntry
	fx.provider.EXPECT().
		Send(ctx, mock.AnythingOfType("*messaging.Message")).
		Return("projects/p/messages/1", nil)
	fx.history.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.HistoryEntry")).
		Run(func(_ context.Context, entry *entity.HistoryEntry) {
			settled = entry
		}).
		Return(nil)

	err := fx.dispatcher.Dispatch(ctx, marshalFor(t, msg))
	require.NoError(t, err)

	require.NotNil(t, settled)
	assert.Equal(t, entity.HistoryStatusSent, settled.Status)
	assert.Equal(t, "projects/p/messages/1", settled.ErrorDetail)
	require.NotNil(t, settled.DeviceID)
	assert.Equal(t, device.ID, *settled.DeviceID)
}

func TestDispatcher_Dispatch_PermanentRejectionDeletesDevice(t *testing.T) {
	fx := createTestDispatcher(t)
	ctx := context.Background()

	device := &entity.Device{ID: uuid.New(), Token: "token-dead", UserID: "user-1", Topics: []string{message.DefaultTopic}}
	msg := message.NewPushMessage("t", "b")
	msg.AddUser("user-1")
	expectResolution(fx, ctx, msg, device)

	rejection := &service.ProviderError{
		Kind:  service.ProviderErrorPermanent,
		Token: "token-dead",
		Err:   errors.New("registration-token-not-registered"),
	}

	var settled *entity.HistoryEntry
	fx.provider.EXPECT().
		Send(ctx, mock.AnythingOfType("*messaging.Message")).
		Return("", rejection)
	fx.history.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.HistoryEntry")).
		Run(func(_ context.Context, entry *entity.HistoryEntry) {
			settled = entry
		}).
		Return(nil)
	fx.devices.EXPECT().
		Delete(ctx, device.ID).
		Return(nil)

	err := fx.dispatcher.Dispatch(ctx, marshalFor(t, msg))
	require.NoError(t, err)

	require.NotNil(t, settled)
	assert.Equal(t, entity.HistoryStatusFailed, settled.Status)
	assert.Contains(t, settled.ErrorDetail, "permanent_rejection")
	// The audit row outlives the registration.
	assert.Nil(t, settled.DeviceID)
}

func TestDispatcher_Dispatch_TransientFailureIsRetryable(t *testing.T) {
	fx := createTestDispatcher(t)
	ctx := context.Background()

	device := &entity.Device{ID: uuid.New(), Token: "token-a", UserID: "user-1", Topics: []string{message.DefaultTopic}}
	msg := message.NewPushMessage("t", "b")
	msg.AddUser("user-1")
	expectResolution(fx, ctx, msg, device)

	var settled *entity.HistoryEntry
	fx.provider.EXPECT().
		Send(ctx, mock.AnythingOfType("*messaging.Message")).
		Return("", &service.ProviderError{
			Kind:  service.ProviderErrorTransient,
			Token: "token-a",
			Err:   errors.New("unavailable"),
		})
	fx.history.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.HistoryEntry")).
		Run(func(_ context.Context, entry *entity.HistoryEntry) {
			settled = entry
		}).
		Return(nil)

	err := fx.dispatcher.Dispatch(ctx, marshalFor(t, msg))
	require.Error(t, err)
	assert.True(t, IsRetryable(err))

	// The entry stays pending so a redelivery picks the device up again.
	require.NotNil(t, settled)
	assert.Equal(t, entity.HistoryStatusPending, settled.Status)
	assert.Contains(t, settled.ErrorDetail, "unavailable")
}

func TestDispatcher_Dispatch_TransientFailureRetriedOnRedelivery(t *testing.T) {
	fx := createTestDispatcher(t)
	ctx := context.Background()

	device := &entity.Device{ID: uuid.New(), Token: "token-a", UserID: "user-1", Topics: []string{message.DefaultTopic}}
	msg := message.NewPushMessage("t", "b")
	msg.AddUser("user-1")
	raw := marshalFor(t, msg)

	topic := &entity.Topic{ID: uuid.New(), Name: message.DefaultTopic}
	fx.topics.EXPECT().
		GetOrCreate(ctx, message.DefaultTopic).
		Return(topic, nil)
	fx.devices.EXPECT().
		FindActiveByUserAndTopic(ctx, "user-1", message.DefaultTopic).
		Return([]*entity.Device{device}, nil)

	// The audit log accumulates across both dispatches: one pending entry is
	// inserted on the first pass and resumed, not re-inserted, on the second.
	var recorded []*entity.HistoryEntry
	fx.history.EXPECT().
		FindByMessageID(ctx, msg.ID()).
		RunAndReturn(func(context.Context, uuid.UUID) ([]*entity.HistoryEntry, error) {
			return recorded, nil
		})
	fx.history.EXPECT().
		BulkInsert(ctx, mock.AnythingOfType("[]*entity.HistoryEntry")).
		Run(func(_ context.Context, entries []*entity.HistoryEntry) {
			recorded = append(recorded, entries...)
		}).
		Return(nil).
		Once()
	fx.history.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.HistoryEntry")).
		Return(nil)

	fx.provider.EXPECT().
		Send(ctx, mock.AnythingOfType("*messaging.Message")).
		Return("", &service.ProviderError{
			Kind:  service.ProviderErrorTransient,
			Token: "token-a",
			Err:   errors.New("unavailable"),
		}).
		Once()
	fx.provider.EXPECT().
		Send(ctx, mock.AnythingOfType("*messaging.Message")).
		Return("projects/p/messages/1", nil).
		Once()

	err := fx.dispatcher.Dispatch(ctx, raw)
	require.Error(t, err)
	assert.True(t, IsRetryable(err))

	// The queue redelivers; the same device must be attempted again.
	err = fx.dispatcher.Dispatch(ctx, raw)
	require.NoError(t, err)

	require.Len(t, recorded, 1)
	assert.Equal(t, entity.HistoryStatusSent, recorded[0].Status)
	assert.Equal(t, "projects/p/messages/1", recorded[0].ErrorDetail)
}

func TestDispatcher_Dispatch_NoTargetMessageIsDropped(t *testing.T) {
	fx := createTestDispatcher(t)

	msg := message.NewPushMessage("t", "b")

	// A message without targets never reaches the provider and must not be
	// redelivered by the queue.
	err := fx.dispatcher.Dispatch(context.Background(), marshalFor(t, msg))
	require.NoError(t, err)
}

func TestDispatcher_Dispatch_UnknownFailureIsNotRetryable(t *testing.T) {
	fx := createTestDispatcher(t)
	ctx := context.Background()

	device := &entity.Device{ID: uuid.New(), Token: "token-a", UserID: "user-1", Topics: []string{message.DefaultTopic}}
	msg := message.NewPushMessage("t", "b")
	msg.AddUser("user-1")
	expectResolution(fx, ctx, msg, device)

	var settled *entity.HistoryEntry
	fx.provider.EXPECT().
		Send(ctx, mock.AnythingOfType("*messaging.Message")).
		Return("", errors.New("something odd"))
	fx.history.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.HistoryEntry")).
		Run(func(_ context.Context, entry *entity.HistoryEntry) {
			settled = entry
		}).
		Return(nil)

	err := fx.dispatcher.Dispatch(ctx, marshalFor(t, msg))
	require.NoError(t, err)

	require.NotNil(t, settled)
	assert.Equal(t, entity.HistoryStatusFailed, settled.Status)
	assert.Contains(t, settled.ErrorDetail, "something odd")
}

func TestDispatcher_Dispatch_RecipientsFailIndependently(t *testing.T) {
	fx := createTestDispatcher(t)
	ctx := context.Background()

	dead := &entity.Device{ID: uuid.New(), Token: "token-dead", UserID: "user-1", Topics: []string{message.DefaultTopic}}
	alive := &entity.Device{ID: uuid.New(), Token: "token-alive", UserID: "user-1", Topics: []string{message.DefaultTopic}}
	msg := message.NewPushMessage("t", "b")
	msg.AddUser("user-1")
	expectResolution(fx, ctx, msg, dead, alive)

	var statuses []entity.HistoryStatus
	fx.provider.EXPECT().
		Send(ctx, mock.MatchedBy(func(m *messaging.Message) bool {
			return m.Token == "token-dead"
		})).
		Return("", &service.ProviderError{
			Kind:  service.ProviderErrorPermanent,
			Token: "token-dead",
			Err:   errors.New("unregistered"),
		})
	fx.provider.EXPECT().
		Send(ctx, mock.MatchedBy(func(m *messaging.Message) bool {
			return m.Token == "token-alive"
		})).
		Return("receipt-2", nil)
	fx.history.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.HistoryEntry")).
		Run(func(_ context.Context, entry *entity.HistoryEntry) {
			statuses = append(statuses, entry.Status)
		}).
		Return(nil)
	fx.devices.EXPECT().
		Delete(ctx, dead.ID).
		Return(nil)

	err := fx.dispatcher.Dispatch(ctx, marshalFor(t, msg))
	require.NoError(t, err)
	assert.Equal(t, []entity.HistoryStatus{entity.HistoryStatusFailed, entity.HistoryStatusSent}, statuses)
}

func TestDispatcher_Dispatch_UndecodablePayload(t *testing.T) {
	fx := createTestDispatcher(t)

	err := fx.dispatcher.Dispatch(context.Background(), []byte("not json"))
	require.Error(t, err)
	assert.False(t, IsRetryable(err))
}
