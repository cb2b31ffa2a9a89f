package commands

import (
	"context"
	"errors"
	"time"

	"tracking/internal/core/domain/model/shipment"
	"tracking/internal/metrics"
	"tracking/internal/pkg/errs"
)

// trackingNumberAttempts bounds the regeneration loop when a freshly issued
// tracking number collides with an existing row.
const trackingNumberAttempts = 3

// CreateShipmentCommandHandler handles the business logic for shipment
// registration. Verifies the customer exists, issues a tracking number, and
// persists the new aggregate with its seeded timeline.
//
// Example:
//
//	handler := NewCreateShipmentCommandHandler(uowFactory)
//	cmd, _ := NewCreateShipmentCommand(shipmentID, tenantID, customerID,
//	    "Shanghai", "Rotterdam", shipment.Details{})
//
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("shipment creation failed: %w", err)
//	}
//	// created.TrackingNumber() is ready to hand out to the customer
type CreateShipmentCommandHandler struct {
	uowFactory CreateShipmentUoWFactory
}

// NewCreateShipmentCommandHandler creates a handler for shipment creation
// operations. Requires a CreateShipmentUoWFactory so the customer check and
// the insert share one transaction.
func NewCreateShipmentCommandHandler(uowFactory CreateShipmentUoWFactory) CreateShipmentCommandHandler {
	return CreateShipmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the shipment creation command.
// Loads the referenced customer within the tenant's scope (a foreign
// customer surfaces as errs.ErrObjectNotFound), generates a tracking number,
// and inserts the aggregate. On a tracking number collision the number is
// regenerated and the whole insert retried; the collision never reaches the
// caller. Returns the created aggregate so callers can read the issued
// tracking number.
func (h CreateShipmentCommandHandler) Handle(
	ctx context.Context, cmd CreateShipmentCommand,
) (*shipment.Shipment, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	var created *shipment.Shipment
	for attempt := 0; ; attempt++ {
		var err error
		created, err = h.createShipment(ctx, cmd)
		if err == nil {
			break
		}
		if !errors.Is(err, errs.ErrValueIsInvalid) || attempt+1 >= trackingNumberAttempts {
			return nil, err
		}
	}

	metrics.ShipmentsCreated.Inc()
	return created, nil
}

// createShipment runs a single insert attempt in its own transaction.
// A unique violation aborts the whole Postgres transaction, so a collision
// retry must start a fresh one instead of re-issuing the insert.
func (h CreateShipmentCommandHandler) createShipment(
	ctx context.Context, cmd CreateShipmentCommand,
) (*shipment.Shipment, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	customerRepo := uow.CustomerRepository()
	if _, err := customerRepo.Get(ctx, cmd.TenantID(), cmd.CustomerID()); err != nil {
		return nil, err
	}

	trackingNumber, err := shipment.NewTrackingNumber()
	if err != nil {
		return nil, err
	}

	created, err := shipment.NewShipment(
		cmd.ShipmentID(), cmd.TenantID(), cmd.CustomerID(),
		trackingNumber,
		cmd.Origin(), cmd.Destination(),
		cmd.Details(),
		time.Now().UTC(),
	)
	if err != nil {
		return nil, err
	}

	if err := uow.ShipmentRepository().Add(ctx, created); err != nil {
		return nil, err
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}
