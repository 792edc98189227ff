package model

import (
	"time"

	"github.com/google/uuid"
)

// HistoryModel is the GORM-specific struct for the 'push_histories' table.
// Device and topic references are nullable so that audit rows survive the
// deletion of the device or topic they pointed at.
type HistoryModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key"`
	MessageID   uuid.UUID  `gorm:"type:uuid;not null;index"`
	MessageData []byte     `gorm:"type:jsonb"`
	DeviceID    *uuid.UUID   `gorm:"type:uuid;index"`
	Device      *DeviceModel `gorm:"constraint:OnDelete:SET NULL"`
	UserID      string       `gorm:"type:varchar(255);index"`
	TopicID     *uuid.UUID   `gorm:"type:uuid"`
	Topic       *TopicModel  `gorm:"constraint:OnDelete:SET NULL"`
	Status      string `gorm:"type:varchar(20);not null;index"`
	ErrorDetail string `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (HistoryModel) TableName() string {
	return "push_histories"
}
