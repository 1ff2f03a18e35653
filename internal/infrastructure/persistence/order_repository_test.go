package persistence

import (
	"context"
	"testing"

	"github.com/shoplytics/backend/internal/domain/trade"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustSearchTerm(t *testing.T, raw string) trade.SearchTerm {
	t.Helper()
	term, err := trade.NewSearchTerm(raw)
	require.NoError(t, err)
	return term
}

func TestGormOrderRepository_Search(t *testing.T) {
	db := setupAnalyticsTestDB(t)
	seedAnalyticsData(t, db)
	repo := NewGormOrderRepository(db)
	ctx := context.Background()

	tests := []struct {
		name  string
		query string
		want  []int64
	}{
		{"exact order id", "6", []int64{6}},
		{"id matches order and product", "4", []int64{5, 4}},
		{"product name substring", "galaxy", []int64{3, 6}},
		{"brand", "Apple", []int64{4, 2, 1}},
		{"customer name", "bob", []int64{5, 1}},
		{"customer email", "example.com", []int64{5, 3, 2, 1}},
		{"no match", "nothing-matches", []int64{}},
		{"wildcard is literal", "%", []int64{}},
		{"underscore is literal", "_", []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orders, err := repo.Search(ctx, mustSearchTerm(t, tt.query))
			require.NoError(t, err)
			assert.Equal(t, tt.want, orderIDs(orders))
		})
	}
}

func TestGormOrderRepository_SearchLoadsRelations(t *testing.T) {
	db := setupAnalyticsTestDB(t)
	seedAnalyticsData(t, db)
	repo := NewGormOrderRepository(db)

	orders, err := repo.Search(context.Background(), mustSearchTerm(t, "1"))
	require.NoError(t, err)
	require.NotEmpty(t, orders)

	var order trade.Order
	for _, o := range orders {
		if o.ID == 1 {
			order = o
		}
	}
	require.Equal(t, int64(1), order.ID)
	assert.Equal(t, 3, order.Quantity)
	assert.True(t, decimal.NewFromInt(300).Equal(order.TotalPrice))
	assert.Equal(t, "2024-01-10", order.OrderDate.Format("2006-01-02"))
	require.NotNil(t, order.Product)
	assert.Equal(t, "iPhone 15", order.Product.Name)
	require.NotNil(t, order.Customer)
	assert.Equal(t, "bob@example.com", order.Customer.Email)
}

func TestGormOrderRepository_FindRecent(t *testing.T) {
	db := setupAnalyticsTestDB(t)
	repo := NewGormOrderRepository(db)
	ctx := context.Background()

	orders, err := repo.FindRecent(ctx, trade.DefaultRecentLimit)
	require.NoError(t, err)
	assert.Empty(t, orders)

	seedAnalyticsData(t, db)

	orders, err = repo.FindRecent(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, []int64{5, 3, 4}, orderIDs(orders))
	require.NotNil(t, orders[0].Product)
	assert.Equal(t, "Sony", orders[0].Product.Brand)
	require.NotNil(t, orders[0].Customer)
	assert.Equal(t, "Bob Jones", orders[0].Customer.Name)

	orders, err = repo.FindRecent(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, orders, 6)
}
