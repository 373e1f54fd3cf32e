package postgres

import (
	"catering/internal/adapters/out/postgres/customerrepo"
	"catering/internal/adapters/out/postgres/deliveryrepo"
	"catering/internal/adapters/out/postgres/orderrepo"
	"catering/internal/adapters/out/postgres/packagerepo"
	"catering/internal/adapters/out/postgres/paymentrepo"
	"catering/internal/adapters/out/postgres/staffrepo"

	"gorm.io/gorm"
)

// Migrate creates or updates the full schema. The unique indexes declared on
// the DTOs (staff/customer email, order tracking code, delivery order id)
// are what turn write races into duplicate-key conflicts.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&staffrepo.StaffDTO{},
		&customerrepo.CustomerDTO{},
		&packagerepo.PackageDTO{},
		&paymentrepo.PaymentMethodDTO{},
		&paymentrepo.PaymentMethodDetailDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderLineDTO{},
		&deliveryrepo.DeliveryDTO{},
	)
}
