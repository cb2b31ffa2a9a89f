// Package ports defines the contracts between the application core and the
// infrastructure adapters: repositories, the unit of work, and the outbound
// event publisher. These interfaces enable dependency inversion and
// testability.
package ports

import (
	"context"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/shipment"
)

// ShipmentRepository defines the persistence contract for shipment
// aggregates. Every read and mutation is tenant-scoped: a shipment outside
// the given tenant behaves exactly like a missing one, so handlers can never
// operate on a bare id.
type ShipmentRepository interface {
	// Add persists a new shipment aggregate, including its seeded timeline.
	// Fails with errs.ErrValueIsInvalid when the tracking number collides
	// with an existing one (the caller regenerates and retries).
	Add(ctx context.Context, aggregate *shipment.Shipment) error

	// Update persists changes to an existing shipment. The status field and
	// the timeline are written together in one atomic update. Fails with
	// errs.ErrVersionIsInvalid when the aggregate's version no longer
	// matches the stored row (concurrent update).
	Update(ctx context.Context, aggregate *shipment.Shipment) error

	// Get retrieves a shipment by id within the tenant's scope.
	// Returns errs.ErrObjectNotFound when absent or owned by another tenant.
	Get(ctx context.Context, tenantID, id kernel.UUID) (*shipment.Shipment, error)

	// Delete hard-deletes a shipment and its embedded timeline within the
	// tenant's scope. Returns errs.ErrObjectNotFound when absent or owned
	// by another tenant.
	Delete(ctx context.Context, tenantID, id kernel.UUID) error
}
