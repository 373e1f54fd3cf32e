package http

import (
	"net/http"

	"catering/internal/core/application/usecases/commands"
	"catering/internal/core/application/usecases/queries"
	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/order"
	"catering/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

type placeOrderRequest struct {
	PaymentMethodID string   `json:"paymentMethodId"`
	PackageIDs      []string `json:"packageIds"`
}

type orderStatusRequest struct {
	Status string `json:"status"`
}

// ListOrders handles GET /api/v1/orders - orders visible to the principal.
func (s *Server) ListOrders(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return respondError(c, s.logger, err)
	}

	query, err := queries.NewListOrdersQuery(principal)
	if err != nil {
		return respondError(c, s.logger, err)
	}

	orders, err := s.queries.ListOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, s.logger, err)
	}

	data := make([]OrderData, 0, len(orders))
	for _, o := range orders {
		data = append(data, orderSummaryToData(o))
	}

	return c.JSON(http.StatusOK, response{Success: true, Data: data})
}

// PlaceOrder handles POST /api/v1/orders - a customer checkout.
func (s *Server) PlaceOrder(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return respondError(c, s.logger, err)
	}

	var req placeOrderRequest
	if err = c.Bind(&req); err != nil {
		return respondError(c, s.logger, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	paymentMethodID, err := kernel.UUIDFromString(req.PaymentMethodID)
	if err != nil {
		return respondError(c, s.logger, errs.NewValueIsInvalidErrorWithCause("paymentMethodId", err))
	}

	packageIDs := make([]kernel.UUID, 0, len(req.PackageIDs))
	for _, raw := range req.PackageIDs {
		id, idErr := kernel.UUIDFromString(raw)
		if idErr != nil {
			return respondError(c, s.logger, errs.NewValueIsInvalidErrorWithCause("packageIds", idErr))
		}
		packageIDs = append(packageIDs, id)
	}

	cmd, err := commands.NewPlaceOrderCommand(principal, paymentMethodID, packageIDs)
	if err != nil {
		return respondError(c, s.logger, err)
	}

	placed, err := s.commands.PlaceOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return respondError(c, s.logger, err)
	}

	return c.JSON(http.StatusCreated, response{Success: true, Data: orderToData(placed)})
}

// GetOrder handles GET /api/v1/orders/:id - a single order with its lines.
func (s *Server) GetOrder(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return respondError(c, s.logger, err)
	}

	id, err := pathUUID(c, "id")
	if err != nil {
		return respondError(c, s.logger, err)
	}

	query, err := queries.NewGetOrderQuery(principal, id)
	if err != nil {
		return respondError(c, s.logger, err)
	}

	detail, err := s.queries.GetOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, s.logger, err)
	}

	return c.JSON(http.StatusOK, response{Success: true, Data: orderDetailToData(detail)})
}

// UpdateOrderStatus handles PATCH /api/v1/orders/:id/status - sets an
// order's status.
func (s *Server) UpdateOrderStatus(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return respondError(c, s.logger, err)
	}

	id, err := pathUUID(c, "id")
	if err != nil {
		return respondError(c, s.logger, err)
	}

	var req orderStatusRequest
	if err = c.Bind(&req); err != nil {
		return respondError(c, s.logger, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	status, err := order.StatusFromString(req.Status)
	if err != nil {
		return respondError(c, s.logger, err)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(principal, id, status)
	if err != nil {
		return respondError(c, s.logger, err)
	}

	if err = s.commands.UpdateOrderStatus.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, s.logger, err)
	}

	return c.JSON(http.StatusOK, response{Success: true, Message: "order status updated"})
}
