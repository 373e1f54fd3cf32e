package commands

import (
	"context"
	"fmt"
	"time"

	"catering/internal/core/domain/model/delivery"
	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/errs"
)

// PickupDeliveryCommandHandler claims an order for a courier by creating its
// delivery record. At most one delivery exists per order: when two couriers
// race for the same order the database unique index lets exactly one insert
// through, and the loser gets errs.ErrObjectAlreadyExists. The order's own
// status is not touched here.
type PickupDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewPickupDeliveryCommandHandler creates a handler for delivery pickups.
func NewPickupDeliveryCommandHandler(uowFactory DeliveryUoWFactory) PickupDeliveryCommandHandler {
	return PickupDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the pickup and returns the created delivery.
func (h PickupDeliveryCommandHandler) Handle(
	ctx context.Context,
	cmd PickupDeliveryCommand,
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

	if _, err := uow.OrderRepository().Get(ctx, cmd.OrderID()); err != nil {
		return nil, err
	}

	newDelivery, err := delivery.NewDelivery(
		kernel.NewUUID(),
		cmd.OrderID(),
		cmd.Actor().ID,
		time.Now(),
	)
	if err != nil {
		return nil, err
	}

	if err = uow.DeliveryRepository().Add(ctx, newDelivery); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newDelivery, nil
}
