package commands

import (
	"context"
	"fmt"
	"time"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/order"
	"catering/internal/pkg/errs"
)

// PlaceOrderCommandHandler performs checkout for a customer. Inside one
// transaction it verifies the payment method, snapshots the current price of
// every ordered package into a line subtotal, and persists the order with
// all of its lines. Either the whole order lands or nothing does; later
// price changes never affect an existing order's total.
type PlaceOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	codes      TrackingCodeGenerator
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
func NewPlaceOrderCommandHandler(
	uowFactory OrderUoWFactory,
	codes TrackingCodeGenerator,
) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		codes:      codes,
	}
}

// Handle processes the checkout and returns the created order.
func (h PlaceOrderCommandHandler) Handle(
	ctx context.Context,
	cmd PlaceOrderCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if !cmd.Actor().Role.IsCustomer() {
		return nil, fmt.Errorf("%w: only customers place orders", errs.ErrForbidden)
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.PaymentMethodRepository().Get(ctx, cmd.PaymentMethodID()); err != nil {
		return nil, err
	}

	packageRepo := uow.PackageRepository()
	lines := make([]order.Line, 0, len(cmd.PackageIDs()))
	for _, packageID := range cmd.PackageIDs() {
		pkg, err := packageRepo.Get(ctx, packageID)
		if err != nil {
			return nil, err
		}

		line, err := order.NewLine(kernel.NewUUID(), pkg.ID(), pkg.Price())
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	newOrder, err := order.NewOrder(
		kernel.NewUUID(),
		cmd.Actor().ID,
		cmd.PaymentMethodID(),
		h.codes.Generate(),
		time.Now(),
		lines,
	)
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newOrder, nil
}
