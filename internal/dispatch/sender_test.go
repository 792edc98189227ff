package dispatch

import (
	"context"
	"io"
	"log/slog"
	"testing"

	domainerrors "pushgate/internal/domain/errors"
	"pushgate/internal/domain/entity"
	"pushgate/internal/domain/message"
	mockRepo "pushgate/internal/mocks/repository"
	mockSvc "pushgate/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type senderFixtures struct {
	sender  *Sender
	devices *mockRepo.MockDeviceRepository
	topics  *mockRepo.MockTopicRepository
	queue   *mockSvc.MockMessageQueue
}

func createTestSender(t *testing.T) senderFixtures {
	devices := mockRepo.NewMockDeviceRepository(t)
	topics := mockRepo.NewMockTopicRepository(t)
	queue := mockSvc.NewMockMessageQueue(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return senderFixtures{
		sender:  NewSender(devices, topics, queue, logger),
		devices: devices,
		topics:  topics,
		queue:   queue,
	}
}

func TestSender_Send_NoTarget(t *testing.T) {
	fx := createTestSender(t)

	msg := message.NewPushMessage("t", "b")

	err := fx.sender.Send(context.Background(), msg)
	assert.Equal(t, domainerrors.ErrNoTarget, err)
}

func TestSender_Send_UserTarget(t *testing.T) {
	fx := createTestSender(t)
	ctx := context.Background()

	msg := message.NewPushMessage("t", "b")
	msg.AddUser("user-1")

	fx.devices.EXPECT().
		ExistsForUsers(ctx, []string{"user-1"}).
		Return(true, nil)

	var enqueued []byte
	fx.queue.EXPECT().
		Enqueue(ctx, msg.ID().String(), mock.AnythingOfType("[]uint8")).
		Run(func(_ context.Context, _ string, payload []byte) {
			enqueued = payload
		}).
		Return(nil)

	err := fx.sender.Send(ctx, msg)
	require.NoError(t, err)

	decoded, err := message.Unmarshal(enqueued)
	require.NoError(t, err)
	assert.Equal(t, msg.ID(), decoded.ID())
}

func TestSender_Send_NoMatchingUsers(t *testing.T) {
	fx := createTestSender(t)
	ctx := context.Background()

	msg := message.NewPushMessage("t", "b")
	msg.AddUser("user-1")

	fx.devices.EXPECT().
		ExistsForUsers(ctx, []string{"user-1"}).
		Return(false, nil)

	err := fx.sender.Send(ctx, msg)
	assert.Equal(t, domainerrors.ErrNoMatchingUsers, err)
}

func TestSender_Send_TopicTargetCreatesTopic(t *testing.T) {
	fx := createTestSender(t)
	ctx := context.Background()

	msg := message.NewPushMessage("t", "b")
	msg.AddTopic("brand-new")

	// A topic nobody subscribes to yet is still a valid target.
	fx.topics.EXPECT().
		GetOrCreate(ctx, "brand-new").
		Return(&entity.Topic{ID: uuid.New(), Name: "brand-new"}, nil)
	fx.queue.EXPECT().
		Enqueue(ctx, msg.ID().String(), mock.AnythingOfType("[]uint8")).
		Return(nil)

	err := fx.sender.Send(ctx, msg)
	require.NoError(t, err)
}

func TestSender_Send_DeviceTarget_NoMatch(t *testing.T) {
	fx := createTestSender(t)
	ctx := context.Background()

	msg := message.NewPushMessage("t", "b")
	msg.AddDevice("token-a")

	fx.devices.EXPECT().
		ExistsEnabledSubscribed(ctx, []string{"token-a"}, message.DefaultTopic).
		Return(false, nil)

	err := fx.sender.Send(ctx, msg)
	assert.Equal(t, domainerrors.ErrNoMatchingDevices, err)
}

func TestSender_Send_EnqueueFailure(t *testing.T) {
	fx := createTestSender(t)
	ctx := context.Background()

	msg := message.NewPushMessage("t", "b")
	msg.AddUser("user-1")

	fx.devices.EXPECT().
		ExistsForUsers(ctx, []string{"user-1"}).
		Return(true, nil)
	fx.queue.EXPECT().
		Enqueue(ctx, msg.ID().String(), mock.AnythingOfType("[]uint8")).
		Return(errors.New("broker down"))

	err := fx.sender.Send(ctx, msg)
	assert.Equal(t, domainerrors.ErrEnqueueFailed, err)
}
