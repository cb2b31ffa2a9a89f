package queries

import (
	"context"
	"database/sql"

	"tracking/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListShipmentsQueryHandler reads the tenant's shipment dashboard from the
// database.
type ListShipmentsQueryHandler struct {
	db *gorm.DB
}

// NewListShipmentsQueryHandler creates a handler for dashboard list queries.
// Requires a GORM database connection for query execution.
func NewListShipmentsQueryHandler(db *gorm.DB) ListShipmentsQueryHandler {
	return ListShipmentsQueryHandler{db: db}
}

// Handle executes the query. Results are ordered by creation time, newest
// first; an empty tenant yields an empty slice.
func (h ListShipmentsQueryHandler) Handle(
	ctx context.Context,
	query ListShipmentsQuery,
) ([]ListShipmentsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	shipments := make([]ListShipmentsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			s.id,
			s.tracking_number,
			s.status,
			s.origin,
			s.destination,
			s.current_location,
			s.estimated_delivery,
			s.created_at,
			c.name
		FROM shipments s
		JOIN customers c ON c.id = s.customer_id
		WHERE s.tenant_id = ?
		ORDER BY s.created_at DESC
	`, query.TenantID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp ListShipmentsQueryResponse
		var id uuid.UUID
		var estimatedDelivery sql.NullTime

		err = rows.Scan(
			&id,
			&resp.TrackingNumber,
			&resp.Status,
			&resp.Origin,
			&resp.Destination,
			&resp.CurrentLocation,
			&estimatedDelivery,
			&resp.CreatedAt,
			&resp.CustomerName,
		)
		if err != nil {
			return nil, err
		}

		resp.ID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}
		resp.EstimatedDelivery = nullableTime(estimatedDelivery)

		resp.StatusLabel, _, err = statusView(resp.Status)
		if err != nil {
			return nil, err
		}

		shipments = append(shipments, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return shipments, nil
}
