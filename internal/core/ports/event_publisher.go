package ports

import (
	"context"
	"time"
)

// StatusChangedEvent notifies external consumers that a shipment's status
// changed. It carries the public tracking number rather than the internal
// id so downstream systems can correlate without database access.
type StatusChangedEvent struct {
	TrackingNumber string    `json:"tracking_number"`
	TenantID       string    `json:"tenant_id"`
	OldStatus      string    `json:"old_status"`
	NewStatus      string    `json:"new_status"`
	Location       string    `json:"location,omitempty"`
	OccurredAt     time.Time `json:"occurred_at"`
}

// EventPublisher publishes shipment lifecycle events to the message broker.
// Publishing happens after the owning transaction commits; a publish
// failure is logged and never rolls back the committed state.
type EventPublisher interface {
	PublishStatusChanged(ctx context.Context, event StatusChangedEvent) error
}
