package commands

import (
	"context"
	"fmt"
	"time"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/staff"
	"catering/internal/pkg/errs"
)

// CreateStaffCommandHandler creates back-office accounts. Only admin and
// owner principals may create staff.
type CreateStaffCommandHandler struct {
	uowFactory StaffUoWFactory
	hasher     PasswordHasher
}

// NewCreateStaffCommandHandler creates a handler for staff account creation.
func NewCreateStaffCommandHandler(
	uowFactory StaffUoWFactory,
	hasher PasswordHasher,
) CreateStaffCommandHandler {
	return CreateStaffCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
	}
}

// Handle processes the command and returns the created staff account.
func (h CreateStaffCommandHandler) Handle(
	ctx context.Context,
	cmd CreateStaffCommand,
) (*staff.Staff, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if !cmd.Actor().Role.IsAdmin() {
		return nil, fmt.Errorf("%w: staff accounts are managed by admins", errs.ErrForbidden)
	}

	hash, err := h.hasher.Hash(cmd.Password())
	if err != nil {
		return nil, err
	}

	account, err := staff.NewStaff(
		kernel.NewUUID(),
		cmd.Name(),
		cmd.Email(),
		hash,
		cmd.StaffRole(),
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

	if err = uow.StaffRepository().Add(ctx, account); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return account, nil
}
