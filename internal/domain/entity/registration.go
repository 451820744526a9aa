// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Registration links a device to a pass it wants update notifications for.
// It is a pure join entity: at most one registration exists per (device, pass)
// pair, and it must never outlive either endpoint. Deleting a registration
// never cascades to its device or pass.
type Registration struct {
	ID        uuid.UUID `json:"id"`        // The Global Unique Identifier (GUID) for the registration.
	DeviceID  uuid.UUID `json:"device_id"` // The device that registered.
	PassID    uuid.UUID `json:"pass_id"`   // The pass the device wants updates for.
	CreatedAt time.Time `json:"created_at"`

	// Eagerly loaded endpoints, populated by the repository when requested.
	Device *Device `json:"device,omitempty"`
	Pass   *Pass   `json:"pass,omitempty"`
}
