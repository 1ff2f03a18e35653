package persistence

import (
	"testing"
	"time"

	"github.com/shoplytics/backend/internal/domain/trade"
	"github.com/shoplytics/backend/internal/infrastructure/persistence/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupAnalyticsTestDB opens an in-memory SQLite database with the analytics schema.
// The pool is pinned to one connection because every new :memory: connection is a new database.
func setupAnalyticsTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(models.AllModels()...))
	return db
}

func day(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func newProduct(id int64, brand, name string, price int64, stock int) *models.ProductModel {
	return &models.ProductModel{
		BaseModel: models.BaseModel{ID: id},
		Brand:     brand,
		Name:      name,
		Price:     decimal.NewFromInt(price),
		Stock:     stock,
	}
}

func newCustomer(id int64, name, email string) *models.CustomerModel {
	return &models.CustomerModel{
		BaseModel: models.BaseModel{ID: id},
		Name:      name,
		Email:     email,
	}
}

func newOrder(id, customerID, productID int64, qty int, total int64, date string) *models.OrderModel {
	return &models.OrderModel{
		BaseModel:  models.BaseModel{ID: id},
		CustomerID: customerID,
		ProductID:  productID,
		Quantity:   qty,
		TotalPrice: decimal.NewFromInt(total),
		OrderDate:  day(date),
	}
}

// seedAnalyticsData loads a small fixed dataset:
//
//	products:  1 Apple iPhone 15 (500, stock 5), 2 Apple MacBook Pro (1500, stock 50),
//	           3 Samsung Galaxy Tab (300, stock 8), 4 Sony WH-1000 Headphones (200, stock 100),
//	           5 Logitech MX Mouse (50, stock 20, never ordered)
//	customers: 1 Alice Smith, 2 Bob Jones, 3 Carol White, 4 Dan Brown (never ordered)
//	orders:    id customer product qty total date
//	           1  2        1       3   300   2024-01-10
//	           2  1        1       2   200   2024-01-31
//	           3  1        3       5   1500  2024-02-15
//	           4  3        2       1   1500  2024-02-01
//	           5  2        4       4   800   2024-03-05
//	           6  3        3       1   300   2023-12-20
func seedAnalyticsData(t *testing.T, db *gorm.DB) {
	t.Helper()

	products := []*models.ProductModel{
		newProduct(1, "Apple", "iPhone 15", 500, 5),
		newProduct(2, "Apple", "MacBook Pro", 1500, 50),
		newProduct(3, "Samsung", "Galaxy Tab", 300, 8),
		newProduct(4, "Sony", "WH-1000 Headphones", 200, 100),
		newProduct(5, "Logitech", "MX Mouse", 50, 20),
	}
	customers := []*models.CustomerModel{
		newCustomer(1, "Alice Smith", "alice@example.com"),
		newCustomer(2, "Bob Jones", "bob@example.com"),
		newCustomer(3, "Carol White", "carol@shop.test"),
		newCustomer(4, "Dan Brown", "dan@example.org"),
	}
	orders := []*models.OrderModel{
		newOrder(1, 2, 1, 3, 300, "2024-01-10"),
		newOrder(2, 1, 1, 2, 200, "2024-01-31"),
		newOrder(3, 1, 3, 5, 1500, "2024-02-15"),
		newOrder(4, 3, 2, 1, 1500, "2024-02-01"),
		newOrder(5, 2, 4, 4, 800, "2024-03-05"),
		newOrder(6, 3, 3, 1, 300, "2023-12-20"),
	}

	require.NoError(t, db.Create(products).Error)
	require.NoError(t, db.Create(customers).Error)
	require.NoError(t, db.Create(orders).Error)
}

func orderIDs(orders []trade.Order) []int64 {
	ids := make([]int64, len(orders))
	for i := range orders {
		ids[i] = orders[i].ID
	}
	return ids
}
