package commands

import (
	"context"
	"fmt"

	"catering/internal/pkg/errs"
)

// UpdateOrderStatusCommandHandler sets an order's status. Restricted to
// admin and owner principals; a missing order surfaces as
// errs.ErrObjectNotFound.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateOrderStatusCommandHandler creates a handler for order status updates.
func NewUpdateOrderStatusCommandHandler(uowFactory OrderUoWFactory) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status update.
func (h UpdateOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateOrderStatusCommand,
) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !cmd.Actor().Role.IsAdmin() {
		return fmt.Errorf("%w: order status is managed by admins", errs.ErrForbidden)
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	ord, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = ord.SetStatus(cmd.Status()); err != nil {
		return err
	}

	if err = repo.Update(ctx, ord); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
