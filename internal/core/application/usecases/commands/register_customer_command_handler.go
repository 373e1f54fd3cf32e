package commands

import (
	"context"
	"time"

	"catering/internal/core/domain/model/customer"
	"catering/internal/core/domain/model/kernel"
)

// RegisterCustomerCommandHandler creates customer accounts. The password is
// bcrypt-hashed before the aggregate is constructed; a duplicate email
// surfaces as errs.ErrObjectAlreadyExists from the repository.
type RegisterCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
	hasher     PasswordHasher
}

// NewRegisterCustomerCommandHandler creates a handler for customer registration.
func NewRegisterCustomerCommandHandler(
	uowFactory CustomerUoWFactory,
	hasher PasswordHasher,
) RegisterCustomerCommandHandler {
	return RegisterCustomerCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
	}
}

// Handle processes the registration command and returns the created customer.
func (h RegisterCustomerCommandHandler) Handle(
	ctx context.Context,
	cmd RegisterCustomerCommand,
) (*customer.Customer, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	hash, err := h.hasher.Hash(cmd.Password())
	if err != nil {
		return nil, err
	}

	newCustomer, err := customer.NewCustomer(
		kernel.NewUUID(),
		cmd.Name(),
		cmd.Email(),
		hash,
		cmd.Phone(),
		cmd.Birthdate(),
		cmd.Address(),
		time.Now(),
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.CustomerRepository().Add(ctx, newCustomer); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newCustomer, nil
}
