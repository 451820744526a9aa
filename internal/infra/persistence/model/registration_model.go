package model

import (
	"time"

	"github.com/google/uuid"
)

// RegistrationModel is the GORM-specific struct for the 'registrations' table.
// The composite unique index on (device_id, pass_id) is the storage-level
// enforcement that concurrent registration attempts for the same pair never
// produce two rows.
type RegistrationModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	DeviceID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_registrations_device_pass"`
	PassID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_registrations_device_pass;index"`
	CreatedAt time.Time

	Device *DeviceModel `gorm:"foreignKey:DeviceID;constraint:OnDelete:CASCADE"`
	Pass   *PassModel   `gorm:"foreignKey:PassID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (RegistrationModel) TableName() string {
	return "registrations"
}
