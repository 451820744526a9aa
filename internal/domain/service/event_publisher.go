package service

import (
	"context"
)

// BroadcastEvent summarizes one completed push fan-out for downstream
// consumers (audit trails, operator dashboards).
type BroadcastEvent struct {
	RequestID          string `json:"request_id,omitempty"` // For distributed tracing
	PassTypeIdentifier string `json:"pass_type_identifier"`
	SerialNumber       string `json:"serial_number"`
	Attempted          int    `json:"attempted"` // Registrations dispatch was attempted for.
	Delivered          int    `json:"delivered"` // Dispatches the transport accepted.
	Pruned             int    `json:"pruned"`    // Registrations removed for bad tokens.
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishBroadcastEvent publishes a fan-out summary for async consumers.
	PublishBroadcastEvent(ctx context.Context, event *BroadcastEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
