// Package tenant provides the Tenant entity: the company that owns
// customers and shipments. A tenant carries the company display name
// surfaced on public tracking pages and the API token its dashboard
// authenticates with.
package tenant

import (
	"errors"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/errs"
)

// ErrTenantIsNotConstructed is returned when a Tenant instance was not
// created through NewTenant or RestoreTenant.
var ErrTenantIsNotConstructed = errors.New(
	"Tenant must be created via NewTenant or RestoreTenant")

// Tenant is an owning company in the multi-tenant system.
type Tenant struct {
	id          kernel.UUID
	companyName string
	apiToken    string

	isConstructed bool
}

// NewTenant creates a validated Tenant.
func NewTenant(id kernel.UUID, companyName, apiToken string) (*Tenant, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if companyName == "" {
		return nil, errs.NewValueIsRequiredError("companyName")
	}
	if apiToken == "" {
		return nil, errs.NewValueIsRequiredError("apiToken")
	}

	return &Tenant{
		id:            id,
		companyName:   companyName,
		apiToken:      apiToken,
		isConstructed: true,
	}, nil
}

// RestoreTenant reconstructs a Tenant from persisted state.
func RestoreTenant(id kernel.UUID, companyName, apiToken string) (*Tenant, error) {
	return NewTenant(id, companyName, apiToken)
}

// Validate ensures the Tenant was created through a factory method.
func (t *Tenant) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTenantIsNotConstructed
	}
	return nil
}

// ID returns the tenant's identifier.
func (t *Tenant) ID() kernel.UUID { return t.id }

// CompanyName returns the company display name.
func (t *Tenant) CompanyName() string { return t.companyName }

// APIToken returns the token the tenant's dashboard authenticates with.
func (t *Tenant) APIToken() string { return t.apiToken }
