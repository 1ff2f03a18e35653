package persistence

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shoplytics/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newMockCustomerRepository creates a GormCustomerRepository with a mocked SQL connection
func newMockCustomerRepository(t *testing.T) (*GormCustomerRepository, sqlmock.Sqlmock, *sql.DB) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return NewGormCustomerRepository(gormDB), mock, mockDB
}

func TestGormCustomerRepository_FindByID(t *testing.T) {
	t.Run("finds existing customer", func(t *testing.T) {
		repo, mock, mockDB := newMockCustomerRepository(t)
		defer mockDB.Close()

		rows := sqlmock.NewRows([]string{"id", "name", "email"}).
			AddRow(int64(7), "Alice Smith", "alice@example.com")

		mock.ExpectQuery(`SELECT \* FROM "customers" WHERE "customers"."id" = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(int64(7), 1).
			WillReturnRows(rows)

		customer, err := repo.FindByID(context.Background(), 7)

		require.NoError(t, err)
		assert.Equal(t, int64(7), customer.ID)
		assert.Equal(t, "Alice Smith", customer.Name)
		assert.Equal(t, "alice@example.com", customer.Email)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("maps missing record to not found", func(t *testing.T) {
		repo, mock, mockDB := newMockCustomerRepository(t)
		defer mockDB.Close()

		mock.ExpectQuery(`SELECT \* FROM "customers" WHERE "customers"."id" = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(int64(99), 1).
			WillReturnError(gorm.ErrRecordNotFound)

		customer, err := repo.FindByID(context.Background(), 99)

		assert.Nil(t, customer)
		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("passes driver errors through", func(t *testing.T) {
		repo, mock, mockDB := newMockCustomerRepository(t)
		defer mockDB.Close()

		dbErr := errors.New("connection reset")
		mock.ExpectQuery(`SELECT \* FROM "customers"`).WillReturnError(dbErr)

		customer, err := repo.FindByID(context.Background(), 1)

		assert.Nil(t, customer)
		assert.ErrorIs(t, err, dbErr)
	})
}

func TestGormCustomerRepository_GetStats(t *testing.T) {
	db := setupAnalyticsTestDB(t)
	seedAnalyticsData(t, db)
	repo := NewGormCustomerRepository(db)
	ctx := context.Background()

	t.Run("sums spend and finds latest order date", func(t *testing.T) {
		stats, err := repo.GetStats(ctx, 1)
		require.NoError(t, err)

		assert.True(t, decimal.NewFromInt(1700).Equal(stats.TotalSpent), "got %s", stats.TotalSpent)
		require.NotNil(t, stats.LastOrderDate)
		assert.Equal(t, "2024-02-15", stats.LastOrderDate.Format("2006-01-02"))
	})

	t.Run("customer without orders", func(t *testing.T) {
		stats, err := repo.GetStats(ctx, 4)
		require.NoError(t, err)

		assert.True(t, stats.TotalSpent.IsZero())
		assert.Nil(t, stats.LastOrderDate)
	})
}
