package queries

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"tracking/internal/metrics"
	"tracking/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TrackingCache caches public tracking responses. Get returns (nil, nil) on
// a miss; cache failures must never fail the lookup, so implementations
// should degrade to misses instead of returning infrastructure errors.
type TrackingCache interface {
	Get(ctx context.Context, trackingNumber string) (*TrackShipmentQueryResponse, error)
	Set(ctx context.Context, trackingNumber string, response *TrackShipmentQueryResponse) error
}

// TrackShipmentQueryHandler serves the public tracking endpoint. Responses
// are cached per tracking number; entries expire on a short TTL, so a status
// update becomes publicly visible within that window.
//
// The handler answers every miss with the same not-found error regardless of
// whether the tracking number is malformed, unknown, or scoped to a
// different tenant.
type TrackShipmentQueryHandler struct {
	db     *gorm.DB
	cache  TrackingCache
	logger *slog.Logger
}

// NewTrackShipmentQueryHandler creates a handler for public tracking
// queries. The cache may be nil to serve every lookup from the database.
func NewTrackShipmentQueryHandler(
	db *gorm.DB, cache TrackingCache, logger *slog.Logger,
) TrackShipmentQueryHandler {
	return TrackShipmentQueryHandler{
		db:     db,
		cache:  cache,
		logger: logger.With("component", "track_shipment_handler"),
	}
}

// Handle executes the public tracking lookup. Cache is consulted only for
// unscoped lookups; tenant-scoped widget lookups always hit the database so
// the scope filter cannot be bypassed by a previously cached global entry.
func (h TrackShipmentQueryHandler) Handle(
	ctx context.Context,
	query TrackShipmentQuery,
) (*TrackShipmentQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	metrics.PublicLookups.Inc()

	useCache := h.cache != nil && query.TenantID() == ""
	if useCache {
		cached, err := h.cache.Get(ctx, query.TrackingNumber())
		if err != nil {
			h.logger.Warn("tracking cache read failed",
				"trackingNumber", query.TrackingNumber(), "error", err)
		} else if cached != nil {
			metrics.TrackingCacheHits.Inc()
			return cached, nil
		}
	}

	resp, err := h.load(ctx, query)
	if err != nil {
		return nil, err
	}

	if useCache {
		if err = h.cache.Set(ctx, query.TrackingNumber(), resp); err != nil {
			h.logger.Warn("tracking cache write failed",
				"trackingNumber", query.TrackingNumber(), "error", err)
		}
	}

	return resp, nil
}

func (h TrackShipmentQueryHandler) load(
	ctx context.Context,
	query TrackShipmentQuery,
) (*TrackShipmentQueryResponse, error) {
	notFound := errs.NewObjectNotFoundError("trackingNumber", query.TrackingNumber())

	args := []any{query.TrackingNumber()}
	tenantFilter := ""
	if query.TenantID() != "" {
		tenantID, err := uuid.Parse(query.TenantID())
		if err != nil {
			return nil, notFound
		}
		tenantFilter = "AND s.tenant_id = ?"
		args = append(args, tenantID.String())
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
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
			s.created_at,
			s.timeline,
			c.name,
			t.company_name
		FROM shipments s
		JOIN customers c ON c.id = s.customer_id
		JOIN tenants t ON t.id = s.tenant_id
		WHERE s.tracking_number = ? `+tenantFilter, args...).Row()

	var (
		resp              TrackShipmentQueryResponse
		estimatedDelivery sql.NullTime
		actualDelivery    sql.NullTime
		cargoType         sql.NullString
		cargoQuantity     sql.NullInt64
		rawTimeline       []byte
	)

	err := row.Scan(
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
		&resp.CreatedAt,
		&rawTimeline,
		&resp.CustomerName,
		&resp.CompanyName,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound
	}
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
