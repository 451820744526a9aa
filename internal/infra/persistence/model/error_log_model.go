package model

import (
	"time"

	"github.com/google/uuid"
)

// ErrorLogModel is the GORM-specific struct for the 'error_logs' table.
type ErrorLogModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Message   string    `gorm:"type:text;not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ErrorLogModel) TableName() string {
	return "error_logs"
}
