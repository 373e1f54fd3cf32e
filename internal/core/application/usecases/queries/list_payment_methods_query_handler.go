package queries

import (
	"context"

	"catering/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListPaymentMethodsQueryHandler reads payment methods joined with their
// detail records and regroups the rows per method.
type ListPaymentMethodsQueryHandler struct {
	db *gorm.DB
}

// NewListPaymentMethodsQueryHandler creates a handler for payment method listings.
func NewListPaymentMethodsQueryHandler(db *gorm.DB) ListPaymentMethodsQueryHandler {
	return ListPaymentMethodsQueryHandler{db: db}
}

// Handle executes the query. Methods come back in name order with their
// details attached; a method with no details has an empty detail slice.
func (h ListPaymentMethodsQueryHandler) Handle(
	ctx context.Context,
	query ListPaymentMethodsQuery,
) ([]PaymentMethodResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	methods := make([]PaymentMethodResponse, 0)
	index := make(map[kernel.UUID]int)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			m.id,
			m.name,
			d.id,
			d.account_number,
			d.account_place,
			d.logo
		FROM payment_methods m
		LEFT JOIN payment_method_details d ON d.payment_method_id = m.id
		ORDER BY m.name, d.account_place
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var methodID uuid.UUID
		var methodName string
		var detailID uuid.NullUUID
		var accountNumber, accountPlace, logo *string

		if err = rows.Scan(
			&methodID,
			&methodName,
			&detailID,
			&accountNumber,
			&accountPlace,
			&logo,
		); err != nil {
			return nil, err
		}

		mid, idErr := kernel.UUIDFromBytes(methodID[:])
		if idErr != nil {
			return nil, idErr
		}

		pos, seen := index[mid]
		if !seen {
			methods = append(methods, PaymentMethodResponse{
				ID:      mid,
				Name:    methodName,
				Details: make([]PaymentMethodDetailResponse, 0),
			})
			pos = len(methods) - 1
			index[mid] = pos
		}

		if !detailID.Valid {
			continue
		}

		did, idErr := kernel.UUIDFromBytes(detailID.UUID[:])
		if idErr != nil {
			return nil, idErr
		}

		detail := PaymentMethodDetailResponse{ID: did}
		if accountNumber != nil {
			detail.AccountNumber = *accountNumber
		}
		if accountPlace != nil {
			detail.AccountPlace = *accountPlace
		}
		if logo != nil {
			detail.Logo = *logo
		}
		methods[pos].Details = append(methods[pos].Details, detail)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return methods, nil
}
