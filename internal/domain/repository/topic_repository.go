package repository

import (
	"context"

	"pushgate/internal/domain/entity"
)

// TopicRepository manages the topic rows of the Target Registry.
type TopicRepository interface {
	// GetOrCreate returns the topic with the given name, creating it if it
	// does not exist yet (lazy topic creation, never an error for a new name).
	GetOrCreate(ctx context.Context, name string) (*entity.Topic, error)
}
