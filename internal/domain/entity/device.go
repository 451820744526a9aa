// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Device represents a client endpoint that holds passes and receives push
// notifications. The (DeviceLibraryIdentifier, PushToken) pair is the effective
// identity: the same library identifier with a new token is a new device. Rows
// are never mutated; a device is deleted when the push transport permanently
// rejects its token.
type Device struct {
	ID                      uuid.UUID `json:"id"`                        // The Global Unique Identifier (GUID) for the device.
	DeviceLibraryIdentifier string    `json:"device_library_identifier"` // Client-supplied identifier, not globally unique by itself.
	PushToken               string    `json:"push_token"`                // Opaque push-transport delivery address.
	CreatedAt               time.Time `json:"created_at"`
}
