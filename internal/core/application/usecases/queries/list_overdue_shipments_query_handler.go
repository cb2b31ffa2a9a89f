package queries

import (
	"context"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/shipment"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListOverdueShipmentsQueryHandler reads overdue shipments from the
// database. Terminal statuses (Delivered, Cancelled, Returned) never count
// as overdue regardless of their estimated delivery date.
type ListOverdueShipmentsQueryHandler struct {
	db *gorm.DB
}

// NewListOverdueShipmentsQueryHandler creates a handler for overdue
// shipment queries. Requires a GORM database connection for query execution.
func NewListOverdueShipmentsQueryHandler(db *gorm.DB) ListOverdueShipmentsQueryHandler {
	return ListOverdueShipmentsQueryHandler{db: db}
}

// Handle executes the query across all tenants, oldest estimate first.
func (h ListOverdueShipmentsQueryHandler) Handle(
	ctx context.Context,
	query ListOverdueShipmentsQuery,
) ([]ListOverdueShipmentsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	overdue := make([]ListOverdueShipmentsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			tenant_id,
			tracking_number,
			status,
			estimated_delivery
		FROM shipments
		WHERE estimated_delivery IS NOT NULL
		  AND estimated_delivery < ?
		  AND status NOT IN (?, ?, ?)
		ORDER BY estimated_delivery
	`, query.AsOf(),
		shipment.Delivered.String(),
		shipment.Cancelled.String(),
		shipment.Returned.String(),
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp ListOverdueShipmentsQueryResponse
		var id, tenantID uuid.UUID

		err = rows.Scan(
			&id,
			&tenantID,
			&resp.TrackingNumber,
			&resp.Status,
			&resp.EstimatedDelivery,
		)
		if err != nil {
			return nil, err
		}

		resp.ID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}
		resp.TenantID, err = kernel.UUIDFromBytes(tenantID[:])
		if err != nil {
			return nil, err
		}

		overdue = append(overdue, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return overdue, nil
}
