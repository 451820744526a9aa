package model

import (
	"time"

	"github.com/google/uuid"
)

// PassModel is the GORM-specific struct for the 'passes' table.
// The (pass_type_identifier, serial_number) pair is the durable external key
// used by conditional fetch and delta sync.
type PassModel struct {
	ID                 uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	PassTypeIdentifier string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_passes_type_serial"`
	SerialNumber       string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_passes_type_serial"`
	Modified           *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (PassModel) TableName() string {
	return "passes"
}
