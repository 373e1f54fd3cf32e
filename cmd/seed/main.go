// Command seed loads demo data: staff accounts for each role, a demo
// customer, the payment methods offered at checkout, and a starter catalog.
// Existing records are left alone, so the command is safe to rerun.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"catering/cmd"
	"catering/internal/adapters/out/postgres"
	"catering/internal/core/application/auth"
	"catering/internal/core/domain/model/catalog"
	"catering/internal/core/domain/model/customer"
	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/payment"
	"catering/internal/core/domain/model/role"
	"catering/internal/core/domain/model/staff"
	"catering/internal/core/ports"
	"catering/internal/pkg/errs"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const seedPassword = "password123"

func main() {
	configs := getConfigs()

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	if err := postgres.Migrate(gormDB); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	ctx := context.Background()

	// No transaction on purpose: each insert runs in auto-commit so a
	// duplicate on rerun does not poison the statements after it.
	uow := postgres.NewGormUnitOfWorkFactory(gormDB).Create()

	hash, err := auth.NewPasswordHasher().Hash(seedPassword)
	if err != nil {
		log.Fatalf("Error hashing seed password: %v", err)
	}

	if err := errors.Join(
		seedStaff(ctx, uow, hash),
		seedCustomer(ctx, uow, hash),
		seedPaymentMethods(ctx, uow),
		seedPackages(ctx, gormDB, uow),
	); err != nil {
		log.Fatalf("Error seeding: %v", err)
	}

	log.Info("Seed OK")
}

func getConfigs() cmd.Config {
	return cmd.Config{
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),
	}
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func seedStaff(ctx context.Context, uow ports.UnitOfWork, hash string) error {
	accounts := []struct {
		name  string
		email string
		role  role.Role
	}{
		{"Admin", "admin@catering.test", role.Admin},
		{"Owner", "owner@catering.test", role.Owner},
		{"Kurir", "kurir@catering.test", role.Courier},
	}

	for _, a := range accounts {
		account, err := staff.NewStaff(kernel.NewUUID(), a.name, a.email, hash, a.role, time.Now().UTC())
		if err != nil {
			return err
		}
		if err := ignoreExisting(uow.StaffRepository().Add(ctx, account)); err != nil {
			return err
		}
	}
	return nil
}

func seedCustomer(ctx context.Context, uow ports.UnitOfWork, hash string) error {
	demo, err := customer.NewCustomer(
		kernel.NewUUID(),
		"Pelanggan Demo",
		"pelanggan@demo.test",
		hash,
		"",
		nil,
		"",
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}
	return ignoreExisting(uow.CustomerRepository().Add(ctx, demo))
}

func seedPaymentMethods(ctx context.Context, uow ports.UnitOfWork) error {
	bcaDetail, err := payment.NewDetail(kernel.NewUUID(), "1234567890", "BCA - A/N Catering P1", "bca.png")
	if err != nil {
		return err
	}
	briDetail, err := payment.NewDetail(kernel.NewUUID(), "9876543210", "BRI - A/N Catering P1", "bri.png")
	if err != nil {
		return err
	}

	transfer, err := payment.NewMethod(kernel.NewUUID(), "Transfer Bank", []payment.Detail{bcaDetail, briDetail})
	if err != nil {
		return err
	}
	cash, err := payment.NewMethod(kernel.NewUUID(), "Cash", nil)
	if err != nil {
		return err
	}

	return errors.Join(
		ignoreExisting(uow.PaymentMethodRepository().Add(ctx, transfer)),
		ignoreExisting(uow.PaymentMethodRepository().Add(ctx, cash)),
	)
}

func seedPackages(ctx context.Context, gormDB *gorm.DB, uow ports.UnitOfWork) error {
	// Package names carry no unique index, so reruns guard on emptiness
	// instead of conflicts.
	var count int64
	if err := gormDB.Table("packages").Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	entries := []struct {
		name        string
		kind        string
		category    string
		minPax      int
		price       int64
		description string
	}{
		{"Prasmanan Hemat", "Prasmanan", "Rapat", 50, 15000000, "Paket prasmanan hemat untuk event rapat."},
		{"Prasmanan Premium", "Prasmanan", "Pernikahan", 200, 85000000, "Prasmanan premium lengkap untuk wedding."},
		{"Box Meeting", "Box", "Rapat", 30, 4500000, "Nasi box untuk meeting (30 pax)."},
		{"Box Selamatan", "Box", "Selamatan", 60, 9000000, "Nasi box untuk selamatan (60 pax)."},
		{"Prasmanan Ulang Tahun", "Prasmanan", "Ulang_Tahun", 80, 26000000, "Prasmanan komplit untuk ulang tahun."},
	}

	for _, e := range entries {
		price, err := kernel.NewMoneyFromInt(e.price)
		if err != nil {
			return err
		}

		pkg, err := catalog.NewPackage(
			kernel.NewUUID(),
			e.name,
			e.kind,
			e.category,
			e.minPax,
			price,
			e.description,
			nil,
			time.Now().UTC(),
		)
		if err != nil {
			return err
		}
		if err := ignoreExisting(uow.PackageRepository().Add(ctx, pkg)); err != nil {
			return err
		}
	}
	return nil
}

// ignoreExisting makes inserts idempotent across reruns.
func ignoreExisting(err error) error {
	if errors.Is(err, errs.ErrObjectAlreadyExists) {
		return nil
	}
	return err
}
