package queries

import (
	"errors"
	"time"

	"tracking/internal/pkg/errs"
	"tracking/internal/pkg/guard"
)

var ErrTrackShipmentQueryIsNotConstructed = errors.New(
	"TrackShipmentQuery must be created via NewTrackShipmentQuery constructor",
)

// TrackShipmentQuery retrieves the public tracking view by tracking number.
// Unauthenticated callers use it from the tracking page and the embeddable
// widget; the optional tenant id narrows the lookup for embedded widgets so
// one tenant's page can never surface another tenant's shipment.
type TrackShipmentQuery struct {
	trackingNumber string
	tenantID       string

	guard guard.ConstructorGuard
}

// NewTrackShipmentQuery creates a public tracking query. The tracking number
// is kept verbatim; malformed values simply find nothing. tenantID may be
// empty for a global lookup.
func NewTrackShipmentQuery(trackingNumber, tenantID string) (TrackShipmentQuery, error) {
	if trackingNumber == "" {
		return TrackShipmentQuery{}, errs.NewValueIsRequiredError("trackingNumber")
	}

	return TrackShipmentQuery{
		trackingNumber: trackingNumber,
		tenantID:       tenantID,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q TrackShipmentQuery) Validate() error {
	return q.guard.Validate(ErrTrackShipmentQueryIsNotConstructed)
}

// TrackingNumber returns the tracking number to look up.
func (q TrackShipmentQuery) TrackingNumber() string {
	return q.trackingNumber
}

// TenantID returns the optional tenant scope, empty for a global lookup.
func (q TrackShipmentQuery) TenantID() string {
	return q.tenantID
}

// TrackShipmentQueryResponse is the public tracking view. It exposes the
// customer and company display names only, never contact details or internal
// identifiers.
type TrackShipmentQueryResponse struct {
	TrackingNumber    string                  `json:"trackingNumber"`
	Status            string                  `json:"status"`
	StatusLabel       string                  `json:"statusLabel"`
	StatusStep        int                     `json:"statusStep"`
	Origin            string                  `json:"origin"`
	Destination       string                  `json:"destination"`
	CurrentLocation   string                  `json:"currentLocation"`
	EstimatedDelivery *time.Time              `json:"estimatedDelivery,omitempty"`
	ActualDelivery    *time.Time              `json:"actualDelivery,omitempty"`
	ShipmentType      string                  `json:"shipmentType,omitempty"`
	TransportMethod   string                  `json:"transportMethod,omitempty"`
	CargoType         string                  `json:"cargoType,omitempty"`
	CargoQuantity     int                     `json:"cargoQuantity,omitempty"`
	CustomerName      string                  `json:"customerName"`
	CompanyName       string                  `json:"companyName"`
	CreatedAt         time.Time               `json:"createdAt"`
	Timeline          []TimelineEntryResponse `json:"timeline"`
}
