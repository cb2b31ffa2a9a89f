package commands

import (
	"errors"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/guard"
)

var (
	ErrCreateTenantCommandIsNotConstructed = errors.New(
		"CreateTenantCommand must be created via NewCreateTenantCommand constructor",
	)
	ErrCompanyNameIsRequired = errors.New("company name is required")
	ErrAPITokenIsRequired    = errors.New("api token is required")
)

// CreateTenantCommand represents a request to onboard a new tenant with its
// API token. Tenants are provisioned out of band, not through the tenant API.
type CreateTenantCommand struct { //nolint:recvcheck //using for validation
	tenantID    kernel.UUID
	companyName string
	apiToken    string

	guard guard.ConstructorGuard
}

// NewCreateTenantCommand creates a command to onboard a new tenant.
func NewCreateTenantCommand(
	tenantID kernel.UUID, companyName, apiToken string,
) (CreateTenantCommand, error) {
	tenantCommand := CreateTenantCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		tenantCommand.setTenantID(tenantID),
		tenantCommand.setCompanyName(companyName),
		tenantCommand.setAPIToken(apiToken),
	); err != nil {
		return CreateTenantCommand{}, err
	}

	return tenantCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateTenantCommand) Validate() error {
	return c.guard.Validate(ErrCreateTenantCommandIsNotConstructed)
}

// TenantID returns the unique identifier for the new tenant.
func (c CreateTenantCommand) TenantID() kernel.UUID {
	return c.tenantID
}

// CompanyName returns the tenant's display name.
func (c CreateTenantCommand) CompanyName() string {
	return c.companyName
}

// APIToken returns the token the tenant will authenticate with.
func (c CreateTenantCommand) APIToken() string {
	return c.apiToken
}

func (c *CreateTenantCommand) setTenantID(tenantID kernel.UUID) error {
	if err := tenantID.Validate(); err != nil {
		return err
	}

	c.tenantID = tenantID
	return nil
}

func (c *CreateTenantCommand) setCompanyName(companyName string) error {
	if companyName == "" {
		return ErrCompanyNameIsRequired
	}

	c.companyName = companyName
	return nil
}

func (c *CreateTenantCommand) setAPIToken(apiToken string) error {
	if apiToken == "" {
		return ErrAPITokenIsRequired
	}

	c.apiToken = apiToken
	return nil
}
