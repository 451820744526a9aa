// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Pass represents a versioned wallet credential identified by its pass type
// identifier and serial number. Content is owned by the embedding system; this
// service only reads it and reacts to Modified changes.
type Pass struct {
	ID                 uuid.UUID  `json:"id"`                   // The Global Unique Identifier (GUID) for the pass.
	PassTypeIdentifier string     `json:"pass_type_identifier"` // Pass type namespace, e.g. "pass.com.example.loyalty".
	SerialNumber       string     `json:"serial_number"`        // Opaque serial number, unique within the pass type.
	Modified           *time.Time `json:"modified,omitempty"`   // Last content change; nil means never explicitly stamped.
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

// ModifiedOr returns the pass's Modified timestamp, or fallback when the pass
// has never been stamped. An unstamped pass sorts earlier than any watermark.
func (p *Pass) ModifiedOr(fallback time.Time) time.Time {
	if p.Modified == nil {
		return fallback
	}

	return *p.Modified
}
