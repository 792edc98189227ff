package postgres

import (
	"context"
	"time"

	"pushgate/internal/domain/entity"
	"pushgate/internal/domain/repository"
	"pushgate/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const historyInsertBatchSize = 100

// historyRepository implements the repository.HistoryRepository interface.
type historyRepository struct {
	db *gorm.DB
}

// NewHistoryRepository is the constructor for historyRepository.
func NewHistoryRepository(db *gorm.DB) repository.HistoryRepository {
	return &historyRepository{
		db: db,
	}
}

// BulkInsert persists the drafted entries in batches.
func (repo *historyRepository) BulkInsert(ctx context.Context, entries []*entity.HistoryEntry) error {
	if len(entries) == 0 {
		return nil
	}

	models := make([]*model.HistoryModel, 0, len(entries))
	for _, entry := range entries {
		models = append(models, fromHistoryDomain(entry))
	}

	if err := repo.db.WithContext(ctx).
		CreateInBatches(models, historyInsertBatchSize).Error; err != nil {
		return errors.Wrap(err, "failed to bulk insert history entries")
	}

	return nil
}

// Update persists a single entry's status transition.
func (repo *historyRepository) Update(ctx context.Context, entry *entity.HistoryEntry) error {
	entry.UpdatedAt = time.Now()

	result := repo.db.WithContext(ctx).
		Model(&model.HistoryModel{}).
		Where("id = ?", entry.ID).
		Updates(map[string]any{
			"device_id":    entry.DeviceID,
			"status":       string(entry.Status),
			"error_detail": entry.ErrorDetail,
			"updated_at":   entry.UpdatedAt,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update history entry")
	}

	if result.RowsAffected == 0 {
		return repository.ErrHistoryNotFound
	}

	return nil
}

// FindByMessageID retrieves all entries recorded for a logical send.
func (repo *historyRepository) FindByMessageID(ctx context.Context, messageID uuid.UUID) ([]*entity.HistoryEntry, error) {
	var models []*model.HistoryModel

	if err := repo.db.WithContext(ctx).
		Where("message_id = ?", messageID).
		Order("created_at").
		Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find history entries by message")
	}

	entries := make([]*entity.HistoryEntry, 0, len(models))
	for _, historyM := range models {
		entries = append(entries, toHistoryDomain(historyM))
	}

	return entries, nil
}

// PurgeBefore removes entries last updated before the given time, counting
// the removals per status.
func (repo *historyRepository) PurgeBefore(ctx context.Context, before time.Time) (repository.HistoryPurgeResult, error) {
	var result repository.HistoryPurgeResult

	statuses := []struct {
		status string
		count  *int64
	}{
		{string(entity.HistoryStatusPending), &result.Pending},
		{string(entity.HistoryStatusSent), &result.Sent},
		{string(entity.HistoryStatusFailed), &result.Failed},
	}

	for _, s := range statuses {
		res := repo.db.WithContext(ctx).
			Where("status = ? AND updated_at < ?", s.status, before).
			Delete(&model.HistoryModel{})
		if res.Error != nil {
			return repository.HistoryPurgeResult{}, errors.Wrapf(res.Error, "failed to purge %s history entries", s.status)
		}
		*s.count = res.RowsAffected
	}

	return result, nil
}

// --- Mapper Functions ---

func toHistoryDomain(data *model.HistoryModel) *entity.HistoryEntry {
	if data == nil {
		return nil
	}

	return &entity.HistoryEntry{
		ID:          data.ID,
		MessageID:   data.MessageID,
		MessageData: data.MessageData,
		DeviceID:    data.DeviceID,
		UserID:      data.UserID,
		TopicID:     data.TopicID,
		Status:      entity.HistoryStatus(data.Status),
		ErrorDetail: data.ErrorDetail,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromHistoryDomain(data *entity.HistoryEntry) *model.HistoryModel {
	if data == nil {
		return nil
	}

	return &model.HistoryModel{
		ID:          data.ID,
		MessageID:   data.MessageID,
		MessageData: data.MessageData,
		DeviceID:    data.DeviceID,
		UserID:      data.UserID,
		TopicID:     data.TopicID,
		Status:      string(data.Status),
		ErrorDetail: data.ErrorDetail,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
