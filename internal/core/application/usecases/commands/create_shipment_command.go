package commands

import (
	"errors"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/shipment"
	"tracking/internal/pkg/guard"
)

var (
	ErrCreateShipmentCommandIsNotConstructed = errors.New(
		"CreateShipmentCommand must be created via NewCreateShipmentCommand constructor",
	)
	ErrOriginIsRequired      = errors.New("origin is required")
	ErrDestinationIsRequired = errors.New("destination is required")
)

// CreateShipmentCommand represents a request to register a new shipment for
// a customer. Encapsulates the route endpoints and the optional attributes
// (estimated delivery, transport method, cargo units, notes).
//
// Example:
//
//	shipmentID := kernel.NewUUID()
//	cmd, err := NewCreateShipmentCommand(shipmentID, tenantID, customerID,
//	    "Shanghai", "Rotterdam", shipment.Details{})
//	if err != nil {
//	    return fmt.Errorf("invalid shipment data: %w", err)
//	}
//
//	handler := NewCreateShipmentCommandHandler(uowFactory)
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to create shipment: %w", err)
//	}
//	fmt.Printf("Shipment %s created", created.TrackingNumber())
type CreateShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID  kernel.UUID
	tenantID    kernel.UUID
	customerID  kernel.UUID
	origin      string
	destination string
	details     shipment.Details

	guard guard.ConstructorGuard
}

// NewCreateShipmentCommand creates a command to register a new shipment.
// Validates that all identifiers are valid, both route endpoints are
// non-empty, and the optional details pass domain validation.
func NewCreateShipmentCommand(
	shipmentID, tenantID, customerID kernel.UUID,
	origin, destination string,
	details shipment.Details,
) (CreateShipmentCommand, error) {
	shipmentCommand := CreateShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		shipmentCommand.setShipmentID(shipmentID),
		shipmentCommand.setTenantID(tenantID),
		shipmentCommand.setCustomerID(customerID),
		shipmentCommand.setOrigin(origin),
		shipmentCommand.setDestination(destination),
		shipmentCommand.setDetails(details),
	); err != nil {
		return CreateShipmentCommand{}, err
	}

	return shipmentCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateShipmentCommandIsNotConstructed if validation fails.
func (c CreateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateShipmentCommandIsNotConstructed)
}

// ShipmentID returns the unique identifier for the new shipment.
func (c CreateShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// TenantID returns the owning tenant's identifier.
func (c CreateShipmentCommand) TenantID() kernel.UUID {
	return c.tenantID
}

// CustomerID returns the referenced customer's identifier.
func (c CreateShipmentCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Origin returns the free-text origin location.
func (c CreateShipmentCommand) Origin() string {
	return c.origin
}

// Destination returns the free-text destination location.
func (c CreateShipmentCommand) Destination() string {
	return c.destination
}

// Details returns the optional shipment attributes.
func (c CreateShipmentCommand) Details() shipment.Details {
	return c.details
}

func (c *CreateShipmentCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	c.shipmentID = shipmentID
	return nil
}

func (c *CreateShipmentCommand) setTenantID(tenantID kernel.UUID) error {
	if err := tenantID.Validate(); err != nil {
		return err
	}

	c.tenantID = tenantID
	return nil
}

func (c *CreateShipmentCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *CreateShipmentCommand) setOrigin(origin string) error {
	if origin == "" {
		return ErrOriginIsRequired
	}

	c.origin = origin
	return nil
}

func (c *CreateShipmentCommand) setDestination(destination string) error {
	if destination == "" {
		return ErrDestinationIsRequired
	}

	c.destination = destination
	return nil
}

func (c *CreateShipmentCommand) setDetails(details shipment.Details) error {
	if err := details.TransportMethod.Validate(); err != nil {
		return err
	}
	if details.CargoUnits != nil {
		if err := details.CargoUnits.Validate(); err != nil {
			return err
		}
	}

	c.details = details
	return nil
}
