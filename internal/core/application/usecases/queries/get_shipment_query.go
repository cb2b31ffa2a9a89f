// Package queries contains read-only operations over the shipment store.
// Implements the Query side of the CQRS architecture: handlers read
// denormalized rows directly with SQL and never load aggregates.
package queries

import (
	"errors"
	"time"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/guard"
)

var ErrGetShipmentQueryIsNotConstructed = errors.New(
	"GetShipmentQuery must be created via NewGetShipmentQuery constructor",
)

// GetShipmentQuery retrieves the internal view of a single shipment:
// every stored field, the customer's contact details, and the full timeline.
//
// Example:
//
//	query, err := NewGetShipmentQuery(tenantID, shipmentID)
//	if err != nil {
//	    return err
//	}
//	view, err := handler.Handle(ctx, query)
type GetShipmentQuery struct {
	tenantID   kernel.UUID
	shipmentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetShipmentQuery creates a query for a shipment within the tenant's
// scope.
func NewGetShipmentQuery(tenantID, shipmentID kernel.UUID) (GetShipmentQuery, error) {
	if err := errors.Join(tenantID.Validate(), shipmentID.Validate()); err != nil {
		return GetShipmentQuery{}, err
	}

	return GetShipmentQuery{
		tenantID:   tenantID,
		shipmentID: shipmentID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetShipmentQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentQueryIsNotConstructed)
}

// TenantID returns the owning tenant's identifier.
func (q GetShipmentQuery) TenantID() kernel.UUID {
	return q.tenantID
}

// ShipmentID returns the shipment to read.
func (q GetShipmentQuery) ShipmentID() kernel.UUID {
	return q.shipmentID
}

// TimelineEntryResponse is one status event in a shipment's history,
// enriched with the status display label. Tagged for JSON because the public
// tracking view embeds it when cached.
type TimelineEntryResponse struct {
	Status      string    `json:"status"`
	StatusLabel string    `json:"statusLabel"`
	Timestamp   time.Time `json:"timestamp"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	Notes       string    `json:"notes,omitempty"`
	Images      []string  `json:"images,omitempty"`
}

// CustomerResponse carries the customer contact details shown on the
// internal shipment view.
type CustomerResponse struct {
	ID      kernel.UUID
	Name    string
	Email   string
	Phone   string
	Address string
}

// GetShipmentQueryResponse is the internal (operator-facing) view of a
// shipment. StatusStep is -1 for statuses outside the main progression.
type GetShipmentQueryResponse struct {
	ID                kernel.UUID
	TrackingNumber    string
	Status            string
	StatusLabel       string
	StatusStep        int
	Origin            string
	Destination       string
	CurrentLocation   string
	EstimatedDelivery *time.Time
	ActualDelivery    *time.Time
	ShipmentType      string
	TransportMethod   string
	CargoType         string
	CargoQuantity     int
	Notes             string
	Version           int
	CreatedAt         time.Time
	Customer          CustomerResponse
	Timeline          []TimelineEntryResponse
}
