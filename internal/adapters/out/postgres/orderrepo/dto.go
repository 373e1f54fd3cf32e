// Package orderrepo persists order aggregates together with their lines.
// The order-lines association is created in the same statement batch as the
// order row, so a failed line insert rolls the whole order back.
package orderrepo

import (
	"time"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO is the database representation of an order. The tracking code
// carries a unique index; the generator makes collisions unlikely and the
// index makes them loud.
type OrderDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID      uuid.UUID `gorm:"type:uuid;index"`
	PaymentMethodID uuid.UUID `gorm:"type:uuid"`
	TrackingCode    string    `gorm:"uniqueIndex"`
	OrderDate       time.Time `gorm:"index"`
	Total           decimal.Decimal `gorm:"type:numeric"`
	Status          string          `gorm:"index"`
	Lines           []OrderLineDTO  `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt       time.Time
}

// TableName specifies the database table for orders.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderLineDTO is the database representation of one order line with its
// creation-time price snapshot.
type OrderLineDTO struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID       `gorm:"type:uuid;index"`
	PackageID uuid.UUID       `gorm:"type:uuid"`
	Subtotal  decimal.Decimal `gorm:"type:numeric"`
}

// TableName specifies the database table for order lines.
func (OrderLineDTO) TableName() string {
	return "order_lines"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	lines := make([]OrderLineDTO, 0, len(aggregate.Lines()))
	for _, line := range aggregate.Lines() {
		lines = append(lines, OrderLineDTO{
			ID:        line.ID().Bytes(),
			OrderID:   aggregate.ID().Bytes(),
			PackageID: line.PackageID().Bytes(),
			Subtotal:  line.Subtotal().Decimal(),
		})
	}

	return OrderDTO{
		ID:              aggregate.ID().Bytes(),
		CustomerID:      aggregate.CustomerID().Bytes(),
		PaymentMethodID: aggregate.PaymentMethodID().Bytes(),
		TrackingCode:    aggregate.TrackingCode(),
		OrderDate:       aggregate.OrderDate(),
		Total:           aggregate.Total().Decimal(),
		Status:          aggregate.Status().String(),
		Lines:           lines,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	paymentMethodID, err := kernel.UUIDFromBytes(dto.PaymentMethodID[:])
	if err != nil {
		return nil, err
	}

	total, err := kernel.NewMoney(dto.Total)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	lines := make([]order.Line, 0, len(dto.Lines))
	for _, lineDTO := range dto.Lines {
		line, lineErr := toDomainLine(lineDTO)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	return order.RestoreOrder(
		id,
		customerID,
		paymentMethodID,
		dto.TrackingCode,
		dto.OrderDate,
		total,
		status,
		lines,
	)
}

func toDomainLine(dto OrderLineDTO) (order.Line, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return order.Line{}, err
	}

	packageID, err := kernel.UUIDFromBytes(dto.PackageID[:])
	if err != nil {
		return order.Line{}, err
	}

	subtotal, err := kernel.NewMoney(dto.Subtotal)
	if err != nil {
		return order.Line{}, err
	}

	return order.RestoreLine(id, packageID, subtotal)
}
