package paymentrepo

import (
	"context"
	"errors"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/payment"
	"catering/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormPaymentMethodRepository implements ports.PaymentMethodRepository using GORM.
type GormPaymentMethodRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormPaymentMethodRepository creates a new GORM payment method repository.
func NewGormPaymentMethodRepository(db *gorm.DB, tracker aggregateTracker) *GormPaymentMethodRepository {
	return &GormPaymentMethodRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new payment method with its details. A taken name surfaces as
// a conflict error.
func (r *GormPaymentMethodRepository) Add(ctx context.Context, aggregate *payment.Method) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewObjectAlreadyExistsErrorWithCause("name", aggregate.Name(), err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing payment method. Detail records are replaced as a
// whole: the aggregate owns them.
func (r *GormPaymentMethodRepository) Update(ctx context.Context, aggregate *payment.Method) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&PaymentMethodDTO{}).
		Where("id = ?", dto.ID).Omit("Details").Updates(&dto)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return errs.NewObjectAlreadyExistsErrorWithCause("name", aggregate.Name(), result.Error)
		}
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("paymentMethod", aggregate.ID().String())
	}

	if err := r.db.WithContext(ctx).
		Where("payment_method_id = ?", dto.ID).
		Delete(&PaymentMethodDetailDTO{}).Error; err != nil {
		return err
	}

	if len(dto.Details) > 0 {
		if err := r.db.WithContext(ctx).Create(&dto.Details).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a payment method with its details by ID.
func (r *GormPaymentMethodRepository) Get(ctx context.Context, id kernel.UUID) (*payment.Method, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PaymentMethodDTO
	if err := r.db.WithContext(ctx).Preload("Details").First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("paymentMethod", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
