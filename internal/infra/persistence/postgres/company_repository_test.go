package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	pgDriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"ledger/internal/domain/entity"
	domainerrors "ledger/internal/domain/errors"
	"ledger/internal/domain/repository"
	"ledger/internal/errors"
)

func adheredCompanyEntity(cuit string) *entity.Company {
	return &entity.Company{
		CUIT:         cuit,
		BusinessName: "Empresa SA",
		AdhesionDate: time.Now(),
	}
}

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(pgDriver.New(pgDriver.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	return db, mock
}

func companyColumns() []string {
	return []string{"id", "cuit", "business_name", "adhesion_date", "created_at", "updated_at"}
}

func companyRow(rows *sqlmock.Rows, cuit string) *sqlmock.Rows {
	now := time.Now()

	return rows.AddRow(uuid.New(), cuit, "Empresa SA", now, now, now)
}

func TestCompanyRepository_FindByCUIT_Found(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCompanyRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "companies" WHERE cuit = \$1`).
		WithArgs("30-12345678-0", 1).
		WillReturnRows(companyRow(sqlmock.NewRows(companyColumns()), "30-12345678-0"))

	company, err := repo.FindByCUIT(context.Background(), "30-12345678-0")

	require.NoError(t, err)
	assert.Equal(t, "30-12345678-0", company.CUIT)
	assert.Equal(t, "Empresa SA", company.BusinessName)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCompanyRepository_FindByCUIT_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCompanyRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "companies" WHERE cuit = \$1`).
		WithArgs("30-99999999-9", 1).
		WillReturnRows(sqlmock.NewRows(companyColumns()))

	company, err := repo.FindByCUIT(context.Background(), "30-99999999-9")

	require.Error(t, err)
	assert.Nil(t, company)
	assert.True(t, errors.Is(err, repository.ErrCompanyNotFound))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCompanyRepository_Create_DuplicateCUITMapsToConflict(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCompanyRepository(db)

	mock.ExpectExec(`INSERT INTO "companies"`).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "idx_companies_cuit"})

	err := repo.Create(context.Background(), adheredCompanyEntity("30-12345678-0"))

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrCompanyAlreadyAdhered))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCompanyRepository_ListAdheredLastMonth_UsesStoreMonthWindow(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCompanyRepository(db)

	rows := sqlmock.NewRows(companyColumns())
	companyRow(rows, "30-12345678-0")
	companyRow(rows, "30-23456789-1")

	mock.ExpectQuery(`SELECT \* FROM "companies" WHERE adhesion_date >= date_trunc\('month', current_date - interval '1 month'\) AND adhesion_date < date_trunc\('month', current_date\)`).
		WillReturnRows(rows)

	companies, err := repo.ListAdheredLastMonth(context.Background())

	require.NoError(t, err)
	assert.Len(t, companies, 2)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCompanyRepository_ListWithTransfersLastMonth_JoinsTransfers(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCompanyRepository(db)

	rows := sqlmock.NewRows(companyColumns())
	companyRow(rows, "30-12345678-0")

	mock.ExpectQuery(`SELECT DISTINCT companies\.\* FROM "companies" JOIN transfers ON transfers\.company_id = companies\.id`).
		WillReturnRows(rows)

	companies, err := repo.ListWithTransfersLastMonth(context.Background())

	require.NoError(t, err)
	assert.Len(t, companies, 1)
	require.NoError(t, mock.ExpectationsWereMet())
}
