// Package paymentrepo persists payment methods together with their account
// detail records.
package paymentrepo

import (
	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/payment"

	"github.com/google/uuid"
)

// PaymentMethodDTO is the database representation of a payment method.
type PaymentMethodDTO struct {
	ID      uuid.UUID                `gorm:"type:uuid;primaryKey"`
	Name    string                   `gorm:"uniqueIndex"`
	Details []PaymentMethodDetailDTO `gorm:"foreignKey:PaymentMethodID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table for payment methods.
func (PaymentMethodDTO) TableName() string {
	return "payment_methods"
}

// PaymentMethodDetailDTO is the database representation of one account
// record under a payment method.
type PaymentMethodDetailDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	PaymentMethodID uuid.UUID `gorm:"type:uuid;index"`
	AccountNumber   string
	AccountPlace    string
	Logo            string
}

// TableName specifies the database table for payment method details.
func (PaymentMethodDetailDTO) TableName() string {
	return "payment_method_details"
}

func fromDomain(aggregate *payment.Method) PaymentMethodDTO {
	details := make([]PaymentMethodDetailDTO, 0, len(aggregate.Details()))
	for _, d := range aggregate.Details() {
		details = append(details, PaymentMethodDetailDTO{
			ID:              d.ID().Bytes(),
			PaymentMethodID: aggregate.ID().Bytes(),
			AccountNumber:   d.AccountNumber(),
			AccountPlace:    d.AccountPlace(),
			Logo:            d.Logo(),
		})
	}

	return PaymentMethodDTO{
		ID:      aggregate.ID().Bytes(),
		Name:    aggregate.Name(),
		Details: details,
	}
}

func toDomain(dto PaymentMethodDTO) (*payment.Method, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	details := make([]payment.Detail, 0, len(dto.Details))
	for _, d := range dto.Details {
		detailID, err := kernel.UUIDFromBytes(d.ID[:])
		if err != nil {
			return nil, err
		}

		detail, err := payment.RestoreDetail(detailID, d.AccountNumber, d.AccountPlace, d.Logo)
		if err != nil {
			return nil, err
		}
		details = append(details, detail)
	}

	return payment.RestoreMethod(id, dto.Name, details)
}
