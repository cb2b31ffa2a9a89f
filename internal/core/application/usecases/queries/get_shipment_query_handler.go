package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetShipmentQueryHandler reads the internal shipment view straight from the
// database, joining the customer row for contact details.
type GetShipmentQueryHandler struct {
	db *gorm.DB
}

// NewGetShipmentQueryHandler creates a handler for internal shipment view
// queries. Requires a GORM database connection for query execution.
func NewGetShipmentQueryHandler(db *gorm.DB) GetShipmentQueryHandler {
	return GetShipmentQueryHandler{db: db}
}

// Handle executes the query. Returns errs.ErrObjectNotFound when the
// shipment does not exist or belongs to another tenant.
func (h GetShipmentQueryHandler) Handle(
	ctx context.Context,
	query GetShipmentQuery,
) (*GetShipmentQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			s.id,
			s.tracking_number,
			s.status,
			s.origin,
			s.destination,
			s.current_location,
			s.estimated_delivery,
			s.actual_delivery,
			s.shipment_type,
			s.transport_method,
			s.cargo_type,
			s.cargo_quantity,
			s.notes,
			s.version,
			s.created_at,
			s.timeline,
			c.id,
			c.name,
			c.email,
			c.phone,
			c.address
		FROM shipments s
		JOIN customers c ON c.id = s.customer_id
		WHERE s.id = ? AND s.tenant_id = ?
	`, query.ShipmentID().String(), query.TenantID().String()).Row()

	var (
		resp              GetShipmentQueryResponse
		id                uuid.UUID
		customerID        uuid.UUID
		estimatedDelivery sql.NullTime
		actualDelivery    sql.NullTime
		cargoType         sql.NullString
		cargoQuantity     sql.NullInt64
		rawTimeline       []byte
	)

	err := row.Scan(
		&id,
		&resp.TrackingNumber,
		&resp.Status,
		&resp.Origin,
		&resp.Destination,
		&resp.CurrentLocation,
		&estimatedDelivery,
		&actualDelivery,
		&resp.ShipmentType,
		&resp.TransportMethod,
		&cargoType,
		&cargoQuantity,
		&resp.Notes,
		&resp.Version,
		&resp.CreatedAt,
		&rawTimeline,
		&customerID,
		&resp.Customer.Name,
		&resp.Customer.Email,
		&resp.Customer.Phone,
		&resp.Customer.Address,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errs.NewObjectNotFoundError("shipmentId", query.ShipmentID())
	}
	if err != nil {
		return nil, err
	}

	resp.ID, err = kernel.UUIDFromBytes(id[:])
	if err != nil {
		return nil, err
	}
	resp.Customer.ID, err = kernel.UUIDFromBytes(customerID[:])
	if err != nil {
		return nil, err
	}

	resp.EstimatedDelivery = nullableTime(estimatedDelivery)
	resp.ActualDelivery = nullableTime(actualDelivery)
	if cargoType.Valid {
		resp.CargoType = cargoType.String
		resp.CargoQuantity = int(cargoQuantity.Int64)
	}

	resp.StatusLabel, resp.StatusStep, err = statusView(resp.Status)
	if err != nil {
		return nil, err
	}

	resp.Timeline, err = decodeTimeline(rawTimeline)
	if err != nil {
		return nil, err
	}

	return &resp, nil
}

func nullableTime(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	value := t.Time
	return &value
}
