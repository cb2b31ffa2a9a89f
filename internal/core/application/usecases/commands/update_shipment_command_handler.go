package commands

import (
	"context"
	"log/slog"
	"time"

	"tracking/internal/core/domain/model/shipment"
	"tracking/internal/core/ports"
	"tracking/internal/metrics"
)

// UpdateShipmentCommandHandler handles the business logic for shipment
// updates. Applies the partial update to the aggregate (appending a timeline
// entry when the status changes), persists it with an optimistic concurrency
// check, and publishes a status-changed event after the transaction commits.
//
// Example:
//
//	handler := NewUpdateShipmentCommandHandler(uowFactory, publisher,
//	    shipment.AllowAnyTransition, logger)
//	updated, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    // shipment missing or owned by another tenant
//	case errors.Is(err, errs.ErrVersionIsInvalid):
//	    // lost a concurrent update race, caller may retry
//	case err != nil:
//	    // infrastructure failure
//	}
type UpdateShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
	publisher  ports.EventPublisher
	policy     shipment.TransitionPolicy
	logger     *slog.Logger
}

// NewUpdateShipmentCommandHandler creates a handler for shipment update
// operations. The publisher may be nil when event publishing is disabled;
// the policy may be nil for unrestricted status transitions.
func NewUpdateShipmentCommandHandler(
	uowFactory ShipmentUoWFactory,
	publisher ports.EventPublisher,
	policy shipment.TransitionPolicy,
	logger *slog.Logger,
) UpdateShipmentCommandHandler {
	return UpdateShipmentCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		policy:     policy,
		logger:     logger.With("component", "update_shipment_handler"),
	}
}

// Handle processes the shipment update command.
// Loads the aggregate within the tenant's scope, applies the update, and
// persists the new state and timeline in one atomic write. When the status
// changed, a status-changed event is published after commit; a publish
// failure is logged and does not fail the already-committed update.
// Returns the updated aggregate.
func (h UpdateShipmentCommandHandler) Handle(
	ctx context.Context, cmd UpdateShipmentCommand,
) (*shipment.Shipment, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	shipmentRepo := uow.ShipmentRepository()

	aggregate, err := shipmentRepo.Get(ctx, cmd.TenantID(), cmd.ShipmentID())
	if err != nil {
		return nil, err
	}

	oldStatus := aggregate.Status()
	now := time.Now().UTC()

	statusChanged, err := aggregate.Apply(cmd.Update(), h.policy, now)
	if err != nil {
		return nil, err
	}

	if err = shipmentRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	if statusChanged {
		metrics.StatusUpdates.Inc()
	}

	if statusChanged && h.publisher != nil {
		event := ports.StatusChangedEvent{
			TrackingNumber: aggregate.TrackingNumber().String(),
			TenantID:       aggregate.TenantID().String(),
			OldStatus:      oldStatus.String(),
			NewStatus:      aggregate.Status().String(),
			Location:       aggregate.CurrentLocation(),
			OccurredAt:     now,
		}
		if err = h.publisher.PublishStatusChanged(ctx, event); err != nil {
			h.logger.Error("failed to publish status changed event",
				"trackingNumber", event.TrackingNumber, "error", err)
		}
	}

	return aggregate, nil
}
