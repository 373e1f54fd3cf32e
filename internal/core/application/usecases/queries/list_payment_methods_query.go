package queries

import (
	"errors"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/guard"
)

var ErrListPaymentMethodsQueryIsNotConstructed = errors.New(
	"ListPaymentMethodsQuery must be created via NewListPaymentMethodsQuery constructor",
)

// ListPaymentMethodsQuery retrieves the payment methods with their account
// details. The storefront shows these at checkout, so the listing is public.
type ListPaymentMethodsQuery struct {
	guard guard.ConstructorGuard
}

// NewListPaymentMethodsQuery creates a parameterless payment method listing.
func NewListPaymentMethodsQuery() ListPaymentMethodsQuery {
	return ListPaymentMethodsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ListPaymentMethodsQuery) Validate() error {
	return q.guard.Validate(ErrListPaymentMethodsQueryIsNotConstructed)
}

// PaymentMethodDetailResponse is the read model for one account record.
type PaymentMethodDetailResponse struct {
	ID            kernel.UUID
	AccountNumber string
	AccountPlace  string
	Logo          string
}

// PaymentMethodResponse is the read model for one payment method.
type PaymentMethodResponse struct {
	ID      kernel.UUID
	Name    string
	Details []PaymentMethodDetailResponse
}
