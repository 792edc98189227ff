package impl

import (
	"context"
	"testing"

	"pushgate/internal/domain/entity"
	domainerrors "pushgate/internal/domain/errors"
	"pushgate/internal/domain/message"
	"pushgate/internal/domain/repository"
	mockRepo "pushgate/internal/mocks/repository"
	"pushgate/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// deviceServiceFixtures holds all test dependencies for device service tests.
type deviceServiceFixtures struct {
	service    usecase.DeviceUsecase
	deviceRepo *mockRepo.MockDeviceRepository
	topicRepo  *mockRepo.MockTopicRepository
}

func createTestDeviceService(t *testing.T) deviceServiceFixtures {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	topicRepo := mockRepo.NewMockTopicRepository(t)
	service := NewDeviceService(deviceRepo, topicRepo)

	return deviceServiceFixtures{
		service:    service,
		deviceRepo: deviceRepo,
		topicRepo:  topicRepo,
	}
}

func expectTopic(fx deviceServiceFixtures, ctx context.Context, name string) *entity.Topic {
	topic := &entity.Topic{ID: uuid.New(), Name: name}
	fx.topicRepo.EXPECT().
		GetOrCreate(ctx, name).
		Return(topic, nil)

	return topic
}

func TestDeviceService_RegisterDevice(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	deviceInfo := &usecase.DeviceInfo{
		Token:      "test-fcm-token",
		Platform:   "android",
		AppVersion: "1.4.0",
		Topics:     []string{"news"},
	}

	deviceID := uuid.New()
	fx.deviceRepo.EXPECT().
		Upsert(ctx, mock.AnythingOfType("*entity.Device")).
		Run(func(_ context.Context, device *entity.Device) {
			device.ID = deviceID
		}).
		Return(nil)

	defaultTopic := expectTopic(fx, ctx, message.DefaultTopic)
	newsTopic := expectTopic(fx, ctx, "news")

	fx.deviceRepo.EXPECT().
		ReplaceTopics(ctx, deviceID, []uuid.UUID{defaultTopic.ID, newsTopic.ID}).
		Return(nil)

	device, err := fx.service.RegisterDevice(ctx, "user-1", deviceInfo)
	require.NoError(t, err)
	assert.Equal(t, "user-1", device.UserID)
	assert.Equal(t, "test-fcm-token", device.Token)
	assert.Equal(t, entity.PlatformAndroid, device.Platform)
	assert.Equal(t, []string{message.DefaultTopic, "news"}, device.Topics)
}

func TestDeviceService_RegisterDevice_AlwaysSubscribesDefault(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	deviceInfo := &usecase.DeviceInfo{
		Token:    "test-fcm-token",
		Platform: "ios",
	}

	deviceID := uuid.New()
	fx.deviceRepo.EXPECT().
		Upsert(ctx, mock.AnythingOfType("*entity.Device")).
		Run(func(_ context.Context, device *entity.Device) {
			device.ID = deviceID
		}).
		Return(nil)

	defaultTopic := expectTopic(fx, ctx, message.DefaultTopic)

	fx.deviceRepo.EXPECT().
		ReplaceTopics(ctx, deviceID, []uuid.UUID{defaultTopic.ID}).
		Return(nil)

	device, err := fx.service.RegisterDevice(ctx, "user-1", deviceInfo)
	require.NoError(t, err)
	assert.Equal(t, []string{message.DefaultTopic}, device.Topics)
}

func TestDeviceService_RegisterDevice_UpsertError(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	deviceInfo := &usecase.DeviceInfo{
		Token:    "test-fcm-token",
		Platform: "ios",
	}

	expectedErr := errors.New("database error")
	fx.deviceRepo.EXPECT().
		Upsert(ctx, mock.AnythingOfType("*entity.Device")).
		Return(expectedErr)

	device, err := fx.service.RegisterDevice(ctx, "user-1", deviceInfo)
	assert.Error(t, err)
	assert.Nil(t, device)
	assert.Contains(t, err.Error(), "failed to upsert device")
}

func TestDeviceService_UnregisterDevice_Success(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	deviceID := uuid.New()

	fx.deviceRepo.EXPECT().
		FindByToken(ctx, "test-fcm-token").
		Return(&entity.Device{ID: deviceID, Token: "test-fcm-token", UserID: "user-1"}, nil)

	fx.deviceRepo.EXPECT().
		Delete(ctx, deviceID).
		Return(nil)

	err := fx.service.UnregisterDevice(ctx, "user-1", "test-fcm-token")
	require.NoError(t, err)
}

func TestDeviceService_UnregisterDevice_NotFound(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()

	fx.deviceRepo.EXPECT().
		FindByToken(ctx, "missing-token").
		Return(nil, repository.ErrDeviceNotFound)

	err := fx.service.UnregisterDevice(ctx, "user-1", "missing-token")
	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrDeviceNotFound))
}

func TestDeviceService_UnregisterDevice_Unauthorized(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()

	fx.deviceRepo.EXPECT().
		FindByToken(ctx, "test-fcm-token").
		Return(&entity.Device{ID: uuid.New(), Token: "test-fcm-token", UserID: "other-user"}, nil)

	err := fx.service.UnregisterDevice(ctx, "user-1", "test-fcm-token")
	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrDeviceNotOwned))
}

func TestDeviceService_UpdateSubscriptions_Success(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	deviceID := uuid.New()

	fx.deviceRepo.EXPECT().
		FindByToken(ctx, "test-fcm-token").
		Return(&entity.Device{ID: deviceID, Token: "test-fcm-token", UserID: "user-1"}, nil)

	defaultTopic := expectTopic(fx, ctx, message.DefaultTopic)
	promoTopic := expectTopic(fx, ctx, "promotions")

	fx.deviceRepo.EXPECT().
		ReplaceTopics(ctx, deviceID, []uuid.UUID{defaultTopic.ID, promoTopic.ID}).
		Return(nil)

	device, err := fx.service.UpdateSubscriptions(ctx, "user-1", "test-fcm-token", []string{"promotions"})
	require.NoError(t, err)
	assert.Equal(t, []string{message.DefaultTopic, "promotions"}, device.Topics)
}

func TestDeviceService_UpdateSubscriptions_DedupsAndRetainsDefault(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	deviceID := uuid.New()

	fx.deviceRepo.EXPECT().
		FindByToken(ctx, "test-fcm-token").
		Return(&entity.Device{ID: deviceID, Token: "test-fcm-token", UserID: "user-1"}, nil)

	defaultTopic := expectTopic(fx, ctx, message.DefaultTopic)
	newsTopic := expectTopic(fx, ctx, "news")

	fx.deviceRepo.EXPECT().
		ReplaceTopics(ctx, deviceID, []uuid.UUID{defaultTopic.ID, newsTopic.ID}).
		Return(nil)

	device, err := fx.service.UpdateSubscriptions(ctx, "user-1", "test-fcm-token",
		[]string{"news", message.DefaultTopic, "", "news"})
	require.NoError(t, err)
	assert.Equal(t, []string{message.DefaultTopic, "news"}, device.Topics)
}

func TestDeviceService_UpdateSubscriptions_Unauthorized(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()

	fx.deviceRepo.EXPECT().
		FindByToken(ctx, "test-fcm-token").
		Return(&entity.Device{ID: uuid.New(), Token: "test-fcm-token", UserID: "other-user"}, nil)

	device, err := fx.service.UpdateSubscriptions(ctx, "user-1", "test-fcm-token", []string{"news"})
	assert.Error(t, err)
	assert.Nil(t, device)
	assert.True(t, errors.Is(err, domainerrors.ErrDeviceNotOwned))
}

func TestDeviceService_UpdateSubscriptions_TopicError(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()

	fx.deviceRepo.EXPECT().
		FindByToken(ctx, "test-fcm-token").
		Return(&entity.Device{ID: uuid.New(), Token: "test-fcm-token", UserID: "user-1"}, nil)

	expectedErr := errors.New("database error")
	fx.topicRepo.EXPECT().
		GetOrCreate(ctx, message.DefaultTopic).
		Return(nil, expectedErr)

	device, err := fx.service.UpdateSubscriptions(ctx, "user-1", "test-fcm-token", nil)
	assert.Error(t, err)
	assert.Nil(t, device)
	assert.Contains(t, err.Error(), "failed to resolve topic")
}
