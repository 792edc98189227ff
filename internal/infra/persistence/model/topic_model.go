package model

import (
	"time"

	"github.com/google/uuid"
)

// TopicModel is the GORM-specific struct for the 'topics' table.
type TopicModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name        string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Description string    `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (TopicModel) TableName() string {
	return "topics"
}
