package model

import (
	"time"

	"github.com/google/uuid"
)

// DeviceModel is the GORM-specific struct for the 'devices' table.
// A device is addressed by the exact (device_library_identifier, push_token)
// pair; the composite unique index enforces that identity.
type DeviceModel struct {
	ID                      uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	DeviceLibraryIdentifier string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_devices_library_token"`
	PushToken               string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_devices_library_token"`
	CreatedAt               time.Time
}

// TableName explicitly sets the table name for GORM.
func (DeviceModel) TableName() string {
	return "devices"
}
