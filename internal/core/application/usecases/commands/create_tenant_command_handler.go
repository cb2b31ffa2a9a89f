package commands

import (
	"context"

	"tracking/internal/core/domain/model/tenant"
)

// CreateTenantCommandHandler handles the business logic for tenant
// onboarding.
type CreateTenantCommandHandler struct {
	uowFactory TenantUoWFactory
}

// NewCreateTenantCommandHandler creates a handler for tenant onboarding
// operations.
func NewCreateTenantCommandHandler(uowFactory TenantUoWFactory) CreateTenantCommandHandler {
	return CreateTenantCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the tenant onboarding command and returns the created
// entity.
func (h CreateTenantCommandHandler) Handle(
	ctx context.Context, cmd CreateTenantCommand,
) (*tenant.Tenant, error) {
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

	created, err := tenant.NewTenant(cmd.TenantID(), cmd.CompanyName(), cmd.APIToken())
	if err != nil {
		return nil, err
	}

	tenantRepo := uow.TenantRepository()
	if err = tenantRepo.Add(ctx, created); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}
