package http

import (
	"net/http"

	"catering/internal/core/application/usecases/commands"
	"catering/internal/core/application/usecases/queries"
	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

type deliveryActionRequest struct {
	OrderID string `json:"orderId"`
	Action  string `json:"action"`
}

// ListDeliveryTasks handles GET /api/v1/deliveries/tasks - the courier
// worklist of unclaimed orders and the courier's own deliveries.
func (s *Server) ListDeliveryTasks(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return respondError(c, s.logger, err)
	}

	query, err := queries.NewListDeliveryTasksQuery(principal)
	if err != nil {
		return respondError(c, s.logger, err)
	}

	tasks, err := s.queries.ListDeliveryTasks.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, s.logger, err)
	}

	data := make([]DeliveryTaskData, 0, len(tasks))
	for _, task := range tasks {
		data = append(data, deliveryTaskToData(task))
	}

	return c.JSON(http.StatusOK, response{Success: true, Data: data})
}

// ActOnDelivery handles POST /api/v1/deliveries - a courier picking up an
// order or completing a delivery, selected by the action field.
func (s *Server) ActOnDelivery(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return respondError(c, s.logger, err)
	}

	var req deliveryActionRequest
	if err = c.Bind(&req); err != nil {
		return respondError(c, s.logger, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	orderID, err := kernel.UUIDFromString(req.OrderID)
	if err != nil {
		return respondError(c, s.logger, errs.NewValueIsInvalidErrorWithCause("orderId", err))
	}

	switch req.Action {
	case "pickup":
		cmd, cmdErr := commands.NewPickupDeliveryCommand(principal, orderID)
		if cmdErr != nil {
			return respondError(c, s.logger, cmdErr)
		}

		picked, cmdErr := s.commands.PickupDelivery.Handle(c.Request().Context(), cmd)
		if cmdErr != nil {
			return respondError(c, s.logger, cmdErr)
		}

		return c.JSON(http.StatusCreated, response{Success: true, Data: deliveryToData(picked)})
	case "complete":
		cmd, cmdErr := commands.NewCompleteDeliveryCommand(principal, orderID)
		if cmdErr != nil {
			return respondError(c, s.logger, cmdErr)
		}

		completed, cmdErr := s.commands.CompleteDelivery.Handle(c.Request().Context(), cmd)
		if cmdErr != nil {
			return respondError(c, s.logger, cmdErr)
		}

		return c.JSON(http.StatusOK, response{Success: true, Data: deliveryToData(completed)})
	default:
		return respondError(c, s.logger, errs.NewValueIsInvalidError("action"))
	}
}
