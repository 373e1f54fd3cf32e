// Package deliveryrepo persists delivery records. The unique index on
// order_id is the concurrency guard for pickups: two couriers racing for one
// order produce exactly one row and one duplicate-key error.
package deliveryrepo

import (
	"time"

	"catering/internal/core/domain/model/delivery"
	"catering/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DeliveryDTO is the database representation of a delivery record.
type DeliveryDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	CourierID   uuid.UUID `gorm:"type:uuid;index"`
	PickupTime  time.Time
	ArrivalTime *time.Time
	Status      string
}

// TableName specifies the database table for deliveries.
func (DeliveryDTO) TableName() string {
	return "deliveries"
}

func fromDomain(aggregate *delivery.Delivery) DeliveryDTO {
	return DeliveryDTO{
		ID:          aggregate.ID().Bytes(),
		OrderID:     aggregate.OrderID().Bytes(),
		CourierID:   aggregate.CourierID().Bytes(),
		PickupTime:  aggregate.PickupTime(),
		ArrivalTime: aggregate.ArrivalTime(),
		Status:      aggregate.Status().String(),
	}
}

func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	courierID, err := kernel.UUIDFromBytes(dto.CourierID[:])
	if err != nil {
		return nil, err
	}

	status, err := delivery.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return delivery.RestoreDelivery(id, orderID, courierID, dto.PickupTime, dto.ArrivalTime, status)
}
