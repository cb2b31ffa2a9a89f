// Package customer provides the Customer entity: the party a shipment is
// delivered to. Customers belong to one tenant and are referenced by
// shipments; the public tracking projection exposes only the display name.
package customer

import (
	"errors"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/errs"
)

// ErrCustomerIsNotConstructed is returned when a Customer instance was not
// created through NewCustomer or RestoreCustomer.
var ErrCustomerIsNotConstructed = errors.New(
	"Customer must be created via NewCustomer or RestoreCustomer")

// Customer is a tenant-owned contact record referenced by shipments.
type Customer struct {
	id       kernel.UUID
	tenantID kernel.UUID

	name    string
	email   string
	phone   string
	address string

	isConstructed bool
}

// NewCustomer creates a validated Customer. Name is required; contact
// fields are optional.
func NewCustomer(id, tenantID kernel.UUID, name, email, phone, address string) (*Customer, error) {
	if err := errors.Join(id.Validate(), tenantID.Validate()); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}

	return &Customer{
		id:            id,
		tenantID:      tenantID,
		name:          name,
		email:         email,
		phone:         phone,
		address:       address,
		isConstructed: true,
	}, nil
}

// RestoreCustomer reconstructs a Customer from persisted state.
func RestoreCustomer(id, tenantID kernel.UUID, name, email, phone, address string) (*Customer, error) {
	return NewCustomer(id, tenantID, name, email, phone, address)
}

// Validate ensures the Customer was created through a factory method.
func (c *Customer) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCustomerIsNotConstructed
	}
	return nil
}

// ID returns the customer's identifier.
func (c *Customer) ID() kernel.UUID { return c.id }

// TenantID returns the owning tenant's identifier.
func (c *Customer) TenantID() kernel.UUID { return c.tenantID }

// Name returns the display name.
func (c *Customer) Name() string { return c.name }

// Email returns the contact email, possibly empty.
func (c *Customer) Email() string { return c.email }

// Phone returns the contact phone, possibly empty.
func (c *Customer) Phone() string { return c.phone }

// Address returns the postal address, possibly empty.
func (c *Customer) Address() string { return c.address }
