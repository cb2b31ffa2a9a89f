package commands

import (
	"context"

	"tracking/internal/core/domain/model/customer"
)

// CreateCustomerCommandHandler handles the business logic for customer
// registration.
type CreateCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
}

// NewCreateCustomerCommandHandler creates a handler for customer creation
// operations.
func NewCreateCustomerCommandHandler(uowFactory CustomerUoWFactory) CreateCustomerCommandHandler {
	return CreateCustomerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the customer creation command and returns the created
// entity.
func (h CreateCustomerCommandHandler) Handle(
	ctx context.Context, cmd CreateCustomerCommand,
) (*customer.Customer, error) {
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

	created, err := customer.NewCustomer(
		cmd.CustomerID(), cmd.TenantID(),
		cmd.Name(), cmd.Email(), cmd.Phone(), cmd.Address(),
	)
	if err != nil {
		return nil, err
	}

	customerRepo := uow.CustomerRepository()
	if err = customerRepo.Add(ctx, created); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}
