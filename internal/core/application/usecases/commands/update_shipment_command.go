package commands

import (
	"errors"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/shipment"
	"tracking/internal/pkg/guard"
)

var ErrUpdateShipmentCommandIsNotConstructed = errors.New(
	"UpdateShipmentCommand must be created via NewUpdateShipmentCommand constructor",
)

// UpdateShipmentCommand represents a partial update of a shipment. An empty
// update is valid and leaves the aggregate untouched; when the update
// carries a status change the handler appends a timeline entry and publishes
// a status-changed event after commit.
//
// Example:
//
//	status := shipment.InTransit
//	location := "Suez Canal"
//	cmd, err := NewUpdateShipmentCommand(tenantID, shipmentID, shipment.Update{
//	    Status:          &status,
//	    CurrentLocation: &location,
//	})
//	if err != nil {
//	    return err
//	}
//	updated, err := handler.Handle(ctx, cmd)
type UpdateShipmentCommand struct { //nolint:recvcheck //using for validation
	tenantID   kernel.UUID
	shipmentID kernel.UUID
	update     shipment.Update

	guard guard.ConstructorGuard
}

// NewUpdateShipmentCommand creates a command to update a shipment within the
// tenant's scope. Validates the identifiers and, when a status is present,
// that it names a known status value. All other update fields are validated
// by the aggregate when applied.
func NewUpdateShipmentCommand(
	tenantID, shipmentID kernel.UUID, update shipment.Update,
) (UpdateShipmentCommand, error) {
	updateCommand := UpdateShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		updateCommand.setTenantID(tenantID),
		updateCommand.setShipmentID(shipmentID),
		updateCommand.setUpdate(update),
	); err != nil {
		return UpdateShipmentCommand{}, err
	}

	return updateCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateShipmentCommandIsNotConstructed if validation fails.
func (c UpdateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrUpdateShipmentCommandIsNotConstructed)
}

// TenantID returns the owning tenant's identifier.
func (c UpdateShipmentCommand) TenantID() kernel.UUID {
	return c.tenantID
}

// ShipmentID returns the shipment to update.
func (c UpdateShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// Update returns the partial update to apply.
func (c UpdateShipmentCommand) Update() shipment.Update {
	return c.update
}

func (c *UpdateShipmentCommand) setTenantID(tenantID kernel.UUID) error {
	if err := tenantID.Validate(); err != nil {
		return err
	}

	c.tenantID = tenantID
	return nil
}

func (c *UpdateShipmentCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	c.shipmentID = shipmentID
	return nil
}

func (c *UpdateShipmentCommand) setUpdate(update shipment.Update) error {
	if update.Status != nil {
		if err := update.Status.Validate(); err != nil {
			return err
		}
	}

	c.update = update
	return nil
}
