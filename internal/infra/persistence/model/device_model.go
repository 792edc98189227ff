package model

import (
	"time"

	"github.com/google/uuid"
)

// DeviceModel is the GORM-specific struct for the 'devices' table. One row
// per registration token; topic subscriptions live in the join table.
type DeviceModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Token      string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	UserID     string    `gorm:"type:varchar(255);not null;index"`
	Platform   string    `gorm:"type:varchar(50);not null"`
	AppVersion string    `gorm:"type:varchar(50)"`
	DisabledAt *time.Time
	Topics     []*TopicModel `gorm:"many2many:device_topics;joinForeignKey:DeviceID;joinReferences:TopicID"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (DeviceModel) TableName() string {
	return "devices"
}
