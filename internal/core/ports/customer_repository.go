package ports

import (
	"context"

	"tracking/internal/core/domain/model/customer"
	"tracking/internal/core/domain/model/kernel"
)

// CustomerRepository defines the persistence contract for customers.
// Reads are tenant-scoped like shipment reads.
type CustomerRepository interface {
	// Add persists a new customer.
	Add(ctx context.Context, aggregate *customer.Customer) error

	// Get retrieves a customer by id within the tenant's scope.
	// Returns errs.ErrObjectNotFound when absent or owned by another tenant.
	Get(ctx context.Context, tenantID, id kernel.UUID) (*customer.Customer, error)
}
