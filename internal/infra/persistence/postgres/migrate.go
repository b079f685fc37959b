package postgres

import (
	"context"
	"log/slog"
	"time"

	"ledger/internal/domain/entity"
	"ledger/internal/domain/service"
	"ledger/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Migrate creates or updates the schema for all tables.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&model.UserModel{},
		&model.CompanyModel{},
		&model.TransferModel{},
	)

	return errors.Wrap(err, "failed to migrate schema")
}

// Rollback drops all tables. Transfers go first because of the foreign
// key on companies.
func Rollback(db *gorm.DB) error {
	for _, m := range []any{
		&model.TransferModel{},
		&model.CompanyModel{},
		&model.UserModel{},
	} {
		if err := db.Migrator().DropTable(m); err != nil {
			return errors.Wrap(err, "failed to drop table")
		}
	}

	return nil
}

// Seed loads the demo accounts, companies and transfers. Users and
// companies upsert on their natural keys so reruns leave existing rows
// untouched; transfers have no natural key and are only inserted into an
// empty table.
func Seed(ctx context.Context, db *gorm.DB, hasher service.PasswordHasher, logger *slog.Logger) error {
	if err := seedUsers(ctx, db, hasher); err != nil {
		return err
	}

	if err := seedCompanies(ctx, db); err != nil {
		return err
	}

	if err := seedTransfers(ctx, db); err != nil {
		return err
	}

	logger.Info("Seed completed")

	return nil
}

func seedUsers(ctx context.Context, db *gorm.DB, hasher service.PasswordHasher) error {
	accounts := []struct {
		username string
		email    string
		password string
		role     entity.Role
	}{
		{"admin", "admin@example.com", "admin123", entity.RoleAdmin},
		{"user", "user@example.com", "user123", entity.RoleUser},
	}

	users := make([]model.UserModel, 0, len(accounts))
	for _, account := range accounts {
		hash, err := hasher.Hash(account.password)
		if err != nil {
			return errors.Wrapf(err, "failed to hash seed password for %s", account.username)
		}

		users = append(users, model.UserModel{
			Username:     account.username,
			Email:        account.email,
			PasswordHash: hash,
			Role:         account.role.String(),
		})
	}

	err := db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "username"}},
			DoNothing: true,
		}).
		Create(&users).Error

	return errors.Wrap(err, "failed to seed users")
}

func seedCompanies(ctx context.Context, db *gorm.DB) error {
	now := time.Now()
	companies := []model.CompanyModel{
		{CUIT: "30-12345678-0", BusinessName: "Empresa Antigua SA", AdhesionDate: now.AddDate(0, -3, 0)},
		{CUIT: "30-23456789-1", BusinessName: "Comercial Reciente SRL", AdhesionDate: now.AddDate(0, -2, 0)},
		{CUIT: "30-34567890-2", BusinessName: "Servicios Modernos SA", AdhesionDate: midOfLastMonth(now)},
		{CUIT: "30-45678901-3", BusinessName: "Nueva Empresa SA", AdhesionDate: now},
	}

	err := db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "cuit"}},
			DoNothing: true,
		}).
		Create(&companies).Error

	return errors.Wrap(err, "failed to seed companies")
}

func seedTransfers(ctx context.Context, db *gorm.DB) error {
	var count int64
	if err := db.WithContext(ctx).Model(&model.TransferModel{}).Count(&count).Error; err != nil {
		return errors.Wrap(err, "failed to count transfers")
	}
	if count > 0 {
		return nil
	}

	now := time.Now()
	lastMonth := midOfLastMonth(now)

	samples := []struct {
		cuit          string
		amount        float64
		debitAccount  string
		creditAccount string
		transferDate  time.Time
	}{
		{"30-12345678-0", 10000.50, "1234567890", "0987654321", lastMonth},
		{"30-12345678-0", 15000.75, "1234567890", "5678901234", now},
		{"30-23456789-1", 25000.30, "2345678901", "1098765432", lastMonth.AddDate(0, 0, 5)},
		{"30-34567890-2", 35000.25, "3456789012", "2109876543", now},
	}

	for _, sample := range samples {
		var company model.CompanyModel
		if err := db.WithContext(ctx).First(&company, "cuit = ?", sample.cuit).Error; err != nil {
			return errors.Wrapf(err, "failed to find seed company %s", sample.cuit)
		}

		transfer := model.TransferModel{
			Amount:        sample.amount,
			CompanyID:     company.ID,
			DebitAccount:  sample.debitAccount,
			CreditAccount: sample.creditAccount,
			TransferDate:  sample.transferDate,
		}
		if err := db.WithContext(ctx).Create(&transfer).Error; err != nil {
			return errors.Wrap(err, "failed to seed transfer")
		}
	}

	return nil
}

// midOfLastMonth pins seed dates to the 15th of the previous month so
// they always land inside the last-month reporting window.
func midOfLastMonth(now time.Time) time.Time {
	firstOfThisMonth := time.Date(now.Year(), now.Month(), 1, 12, 0, 0, 0, now.Location())

	return firstOfThisMonth.AddDate(0, -1, 14)
}
