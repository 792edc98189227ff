package impl

import (
	"context"
	"fmt"
	"slices"

	"pushgate/internal/domain/entity"
	domainerrors "pushgate/internal/domain/errors"
	"pushgate/internal/domain/message"
	"pushgate/internal/domain/repository"
	"pushgate/internal/errors"
	"pushgate/internal/usecase"

	"github.com/google/uuid"
)

type deviceService struct {
	deviceRepo repository.DeviceRepository
	topicRepo  repository.TopicRepository
}

// NewDeviceService creates a new device service instance
func NewDeviceService(deviceRepo repository.DeviceRepository, topicRepo repository.TopicRepository) usecase.DeviceUsecase {
	return &deviceService{
		deviceRepo: deviceRepo,
		topicRepo:  topicRepo,
	}
}

// RegisterDevice registers a new device or refreshes an existing registration.
// Re-registering a token claims it for the calling user and re-enables it.
func (s *deviceService) RegisterDevice(ctx context.Context, userID string, info *usecase.DeviceInfo) (*entity.Device, error) {
	device := &entity.Device{
		Token:      info.Token,
		UserID:     userID,
		Platform:   entity.ParsePlatform(info.Platform),
		AppVersion: info.AppVersion,
	}

	if err := s.deviceRepo.Upsert(ctx, device); err != nil {
		return nil, fmt.Errorf("failed to upsert device: %w", err)
	}

	if err := s.replaceSubscriptions(ctx, device, info.Topics); err != nil {
		return nil, err
	}

	return device, nil
}

// UnregisterDevice removes the caller's device registration.
func (s *deviceService) UnregisterDevice(ctx context.Context, userID, token string) error {
	device, err := s.findOwnedDevice(ctx, userID, token)
	if err != nil {
		return err
	}

	if err := s.deviceRepo.Delete(ctx, device.ID); err != nil {
		return fmt.Errorf("failed to delete device: %w", err)
	}

	return nil
}

// UpdateSubscriptions replaces the topic subscriptions of the caller's device.
func (s *deviceService) UpdateSubscriptions(ctx context.Context, userID, token string, topics []string) (*entity.Device, error) {
	device, err := s.findOwnedDevice(ctx, userID, token)
	if err != nil {
		return nil, err
	}

	if err := s.replaceSubscriptions(ctx, device, topics); err != nil {
		return nil, err
	}

	return device, nil
}

func (s *deviceService) findOwnedDevice(ctx context.Context, userID, token string) (*entity.Device, error) {
	device, err := s.deviceRepo.FindByToken(ctx, token)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return nil, errors.Wrap(domainerrors.ErrDeviceNotFound, "no device registered for token")
		}

		return nil, fmt.Errorf("failed to find device by token: %w", err)
	}

	if device.UserID != userID {
		return nil, errors.Wrap(domainerrors.ErrDeviceNotOwned, "device belongs to another user")
	}

	return device, nil
}

// replaceSubscriptions resolves the topic names, always including the
// default topic, and replaces the device's subscriptions.
func (s *deviceService) replaceSubscriptions(ctx context.Context, device *entity.Device, topics []string) error {
	names := make([]string, 0, len(topics)+1)
	names = append(names, message.DefaultTopic)
	for _, name := range topics {
		if name == "" || slices.Contains(names, name) {
			continue
		}
		names = append(names, name)
	}

	topicIDs := make([]uuid.UUID, 0, len(names))
	for _, name := range names {
		topic, err := s.topicRepo.GetOrCreate(ctx, name)
		if err != nil {
			return fmt.Errorf("failed to resolve topic %q: %w", name, err)
		}
		topicIDs = append(topicIDs, topic.ID)
	}

	if err := s.deviceRepo.ReplaceTopics(ctx, device.ID, topicIDs); err != nil {
		return fmt.Errorf("failed to replace device topics: %w", err)
	}

	device.Topics = names

	return nil
}
