// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ErrorLog is a free-text diagnostic report submitted by a device. It has no
// relationships and is only ever deleted by an administrative purge.
type ErrorLog struct {
	ID        uuid.UUID `json:"id"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
