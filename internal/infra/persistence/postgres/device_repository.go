// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"pushgate/internal/domain/entity"
	domainerrors "pushgate/internal/domain/errors"
	"pushgate/internal/domain/repository"
	"pushgate/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// deviceRepository implements the repository.DeviceRepository interface.
type deviceRepository struct {
	db *gorm.DB
}

// NewDeviceRepository is the constructor for deviceRepository.
func NewDeviceRepository(db *gorm.DB) repository.DeviceRepository {
	return &deviceRepository{
		db: db,
	}
}

// Upsert creates the device or refreshes an existing registration. A
// re-registered token changes owner, clears the disabled flag and keeps its
// topic subscriptions.
func (repo *deviceRepository) Upsert(ctx context.Context, device *entity.Device) error {
	deviceM := fromDeviceDomain(device)

	if err := repo.db.WithContext(ctx).
		Omit("Topics").
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "token"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"user_id", "platform", "app_version", "disabled_at", "updated_at",
			}),
		}).
		Create(deviceM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrDeviceRegistrationFailed.WrapMessage("invalid reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrDeviceRegistrationFailed.WrapMessage("missing required device information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert device")
	}

	// The conflict path keeps the existing primary key; reload to expose it.
	var stored model.DeviceModel
	if err := repo.db.WithContext(ctx).
		Preload("Topics").
		Where("token = ?", device.Token).
		First(&stored).Error; err != nil {
		return errors.Wrap(err, "failed to reload upserted device")
	}

	*device = *toDeviceDomain(&stored)

	return nil
}

// FindByToken retrieves a device by its registration token.
func (repo *deviceRepository) FindByToken(ctx context.Context, token string) (*entity.Device, error) {
	var deviceM model.DeviceModel

	if err := repo.db.WithContext(ctx).
		Preload("Topics").
		Where("token = ?", token).
		First(&deviceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeviceNotFound
		}

		return nil, errors.Wrap(err, "failed to find device by token")
	}

	return toDeviceDomain(&deviceM), nil
}

// FindActiveByUserAndTopic retrieves all enabled devices of a user that
// subscribe to the named topic.
func (repo *deviceRepository) FindActiveByUserAndTopic(ctx context.Context, userID, topic string) ([]*entity.Device, error) {
	var deviceModels []*model.DeviceModel

	if err := repo.activeSubscribedQuery(ctx, topic).
		Where("devices.user_id = ?", userID).
		Find(&deviceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find active devices by user and topic")
	}

	return toDeviceDomainList(deviceModels), nil
}

// FindActiveByTopic retrieves all enabled devices subscribed to the named topic.
func (repo *deviceRepository) FindActiveByTopic(ctx context.Context, topic string) ([]*entity.Device, error) {
	var deviceModels []*model.DeviceModel

	if err := repo.activeSubscribedQuery(ctx, topic).
		Find(&deviceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find active devices by topic")
	}

	return toDeviceDomainList(deviceModels), nil
}

// ExistsForUsers reports whether any of the given users owns at least one device.
func (repo *deviceRepository) ExistsForUsers(ctx context.Context, userIDs []string) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.DeviceModel{}).
		Where("user_id IN ?", userIDs).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to count devices of users")
	}

	return count > 0, nil
}

// ExistsEnabledSubscribed reports whether any of the given tokens belongs to
// an enabled device subscribed to the named topic.
func (repo *deviceRepository) ExistsEnabledSubscribed(ctx context.Context, tokens []string, topic string) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.DeviceModel{}).
		Joins("JOIN device_topics ON device_topics.device_id = devices.id").
		Joins("JOIN topics ON topics.id = device_topics.topic_id").
		Where("devices.token IN ? AND devices.disabled_at IS NULL AND topics.name = ?", tokens, topic).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to count enabled subscribed devices")
	}

	return count > 0, nil
}

// ReplaceTopics replaces the device's topic subscriptions.
func (repo *deviceRepository) ReplaceTopics(ctx context.Context, deviceID uuid.UUID, topicIDs []uuid.UUID) error {
	topics := make([]*model.TopicModel, 0, len(topicIDs))
	for _, id := range topicIDs {
		topics = append(topics, &model.TopicModel{ID: id})
	}

	deviceM := &model.DeviceModel{ID: deviceID}
	if err := repo.db.WithContext(ctx).
		Model(deviceM).
		Association("Topics").
		Replace(topics); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to replace device topics")
	}

	return nil
}

// Delete removes a device together with its join-table rows.
func (repo *deviceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Select(clause.Associations).
		Delete(&model.DeviceModel{ID: id})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete device")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

// DisableStale disables devices whose registration has not been refreshed
// since the given time.
func (repo *deviceRepository) DisableStale(ctx context.Context, before time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.DeviceModel{}).
		Where("updated_at < ? AND disabled_at IS NULL", before).
		Update("disabled_at", time.Now())

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to disable stale devices")
	}

	return result.RowsAffected, nil
}

// DeleteDisabledBefore removes devices disabled since before the given time.
func (repo *deviceRepository) DeleteDisabledBefore(ctx context.Context, before time.Time) (int64, error) {
	// Join rows first; the device delete below is a plain bulk statement.
	if err := repo.db.WithContext(ctx).
		Exec("DELETE FROM device_topics WHERE device_id IN (SELECT id FROM devices WHERE disabled_at IS NOT NULL AND disabled_at < ?)", before).
		Error; err != nil {
		return 0, errors.Wrap(err, "failed to delete subscriptions of disabled devices")
	}

	result := repo.db.WithContext(ctx).
		Where("disabled_at IS NOT NULL AND disabled_at < ?", before).
		Delete(&model.DeviceModel{})

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete disabled devices")
	}

	return result.RowsAffected, nil
}

func (repo *deviceRepository) activeSubscribedQuery(ctx context.Context, topic string) *gorm.DB {
	return repo.db.WithContext(ctx).
		Preload("Topics").
		Joins("JOIN device_topics ON device_topics.device_id = devices.id").
		Joins("JOIN topics ON topics.id = device_topics.topic_id").
		Where("devices.disabled_at IS NULL AND topics.name = ?", topic).
		Order("devices.created_at")
}

// --- Mapper Functions ---

// toDeviceDomain converts a GORM DeviceModel to a domain Device entity.
func toDeviceDomain(data *model.DeviceModel) *entity.Device {
	if data == nil {
		return nil
	}

	topics := make([]string, 0, len(data.Topics))
	for _, topic := range data.Topics {
		topics = append(topics, topic.Name)
	}

	return &entity.Device{
		ID:         data.ID,
		Token:      data.Token,
		UserID:     data.UserID,
		Platform:   entity.ParsePlatform(data.Platform),
		AppVersion: data.AppVersion,
		Topics:     topics,
		DisabledAt: data.DisabledAt,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

func toDeviceDomainList(data []*model.DeviceModel) []*entity.Device {
	devices := make([]*entity.Device, 0, len(data))
	for _, deviceM := range data {
		devices = append(devices, toDeviceDomain(deviceM))
	}

	return devices
}

// fromDeviceDomain converts a domain Device entity to a GORM DeviceModel.
func fromDeviceDomain(data *entity.Device) *model.DeviceModel {
	if data == nil {
		return nil
	}

	return &model.DeviceModel{
		ID:         data.ID,
		Token:      data.Token,
		UserID:     data.UserID,
		Platform:   string(data.Platform),
		AppVersion: data.AppVersion,
		DisabledAt: data.DisabledAt,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}
