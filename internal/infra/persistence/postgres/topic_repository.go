package postgres

import (
	"context"

	"pushgate/internal/domain/entity"
	domainerrors "pushgate/internal/domain/errors"
	"pushgate/internal/domain/repository"
	"pushgate/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// topicRepository implements the repository.TopicRepository interface.
type topicRepository struct {
	db *gorm.DB
}

// NewTopicRepository is the constructor for topicRepository.
func NewTopicRepository(db *gorm.DB) repository.TopicRepository {
	return &topicRepository{
		db: db,
	}
}

// GetOrCreate returns the topic with the given name, creating it on first
// use. Concurrent creations of the same name race on the unique index; the
// loser re-reads the winner's row.
func (repo *topicRepository) GetOrCreate(ctx context.Context, name string) (*entity.Topic, error) {
	var topicM model.TopicModel

	err := repo.db.WithContext(ctx).
		Where("name = ?", name).
		First(&topicM).Error
	if err == nil {
		return toTopicDomain(&topicM), nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errors.Wrap(err, "failed to find topic")
	}

	created := &model.TopicModel{Name: name}
	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoNothing: true,
		}).
		Create(created).Error; err != nil && !isUniqueConstraintViolation(err) {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create topic")
	}

	if err := repo.db.WithContext(ctx).
		Where("name = ?", name).
		First(&topicM).Error; err != nil {
		return nil, errors.Wrap(err, "failed to reload topic")
	}

	return toTopicDomain(&topicM), nil
}

// toTopicDomain converts a GORM TopicModel to a domain Topic entity.
func toTopicDomain(data *model.TopicModel) *entity.Topic {
	if data == nil {
		return nil
	}

	return &entity.Topic{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
	}
}
