package queries

import (
	"errors"
	"time"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/guard"
)

var ErrListShipmentsQueryIsNotConstructed = errors.New(
	"ListShipmentsQuery must be created via NewListShipmentsQuery constructor",
)

// ListShipmentsQuery retrieves the tenant's shipment dashboard: every
// shipment the tenant owns, newest first.
type ListShipmentsQuery struct {
	tenantID kernel.UUID

	guard guard.ConstructorGuard
}

// NewListShipmentsQuery creates a query to list all shipments of a tenant.
func NewListShipmentsQuery(tenantID kernel.UUID) (ListShipmentsQuery, error) {
	if err := tenantID.Validate(); err != nil {
		return ListShipmentsQuery{}, err
	}

	return ListShipmentsQuery{
		tenantID: tenantID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListShipmentsQuery) Validate() error {
	return q.guard.Validate(ErrListShipmentsQueryIsNotConstructed)
}

// TenantID returns the owning tenant's identifier.
func (q ListShipmentsQuery) TenantID() kernel.UUID {
	return q.tenantID
}

// ListShipmentsQueryResponse is one dashboard row. It carries the customer's
// display name instead of the full contact card.
type ListShipmentsQueryResponse struct {
	ID                kernel.UUID
	TrackingNumber    string
	Status            string
	StatusLabel       string
	Origin            string
	Destination       string
	CurrentLocation   string
	EstimatedDelivery *time.Time
	CustomerName      string
	CreatedAt         time.Time
}
