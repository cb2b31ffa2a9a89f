package ports

import (
	"context"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/tenant"
)

// TenantRepository defines the persistence contract for tenants. The token
// lookup backs the session middleware: it is how an incoming request is
// resolved to the current tenant.
type TenantRepository interface {
	// Add persists a new tenant.
	Add(ctx context.Context, aggregate *tenant.Tenant) error

	// Get retrieves a tenant by id.
	Get(ctx context.Context, id kernel.UUID) (*tenant.Tenant, error)

	// GetByAPIToken retrieves the tenant owning the given API token.
	// Returns errs.ErrObjectNotFound for unknown tokens.
	GetByAPIToken(ctx context.Context, token string) (*tenant.Tenant, error)
}
