package queries

import (
	"errors"
	"time"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/guard"
)

var (
	ErrListOverdueShipmentsQueryIsNotConstructed = errors.New(
		"ListOverdueShipmentsQuery must be created via NewListOverdueShipmentsQuery constructor",
	)
	ErrAsOfIsRequired = errors.New("asOf time is required")
)

// ListOverdueShipmentsQuery retrieves shipments across all tenants whose
// estimated delivery date has passed while the shipment is still in a
// non-terminal status. The overdue sweep job runs it on a schedule.
type ListOverdueShipmentsQuery struct {
	asOf time.Time

	guard guard.ConstructorGuard
}

// NewListOverdueShipmentsQuery creates an overdue query evaluated against
// the given reference time.
func NewListOverdueShipmentsQuery(asOf time.Time) (ListOverdueShipmentsQuery, error) {
	if asOf.IsZero() {
		return ListOverdueShipmentsQuery{}, ErrAsOfIsRequired
	}

	return ListOverdueShipmentsQuery{
		asOf:  asOf,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOverdueShipmentsQuery) Validate() error {
	return q.guard.Validate(ErrListOverdueShipmentsQueryIsNotConstructed)
}

// AsOf returns the reference time overdue is evaluated against.
func (q ListOverdueShipmentsQuery) AsOf() time.Time {
	return q.asOf
}

// ListOverdueShipmentsQueryResponse is one overdue shipment.
type ListOverdueShipmentsQueryResponse struct {
	ID                kernel.UUID
	TenantID          kernel.UUID
	TrackingNumber    string
	Status            string
	EstimatedDelivery time.Time
}
