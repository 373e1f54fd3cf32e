package commands

import (
	"context"
	"fmt"
	"time"

	"catering/internal/core/domain/model/delivery"
	"catering/internal/pkg/errs"
)

// CompleteDeliveryCommandHandler marks a courier's delivery as arrived.
// The delivery must exist for the order and belong to the acting courier;
// an order without a delivery surfaces as errs.ErrObjectNotFound.
type CompleteDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewCompleteDeliveryCommandHandler creates a handler for delivery completion.
func NewCompleteDeliveryCommandHandler(uowFactory DeliveryUoWFactory) CompleteDeliveryCommandHandler {
	return CompleteDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the completion and returns the updated delivery.
func (h CompleteDeliveryCommandHandler) Handle(
	ctx context.Context,
	cmd CompleteDeliveryCommand,
) (*delivery.Delivery, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if !cmd.Actor().Role.IsCourier() {
		return nil, fmt.Errorf("%w: deliveries are handled by couriers", errs.ErrForbidden)
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.DeliveryRepository()
	del, err := repo.GetByOrderID(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if !del.IsAssignedTo(cmd.Actor().ID) {
		return nil, fmt.Errorf("%w: delivery belongs to another courier", errs.ErrForbidden)
	}

	if err = del.Complete(time.Now()); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, del); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return del, nil
}
