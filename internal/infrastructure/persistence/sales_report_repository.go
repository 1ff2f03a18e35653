package persistence

import (
	"context"

	"github.com/shoplytics/backend/internal/domain/report"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormSalesReportRepository implements SalesReportRepository using GORM
type GormSalesReportRepository struct {
	db *gorm.DB
}

// NewGormSalesReportRepository creates a new GormSalesReportRepository
func NewGormSalesReportRepository(db *gorm.DB) *GormSalesReportRepository {
	return &GormSalesReportRepository{db: db}
}

// scopedOrders starts an order query joined to products and customers with the scope applied
func (r *GormSalesReportRepository) scopedOrders(ctx context.Context, scope report.OrderScope) *gorm.DB {
	query := r.db.WithContext(ctx).
		Table("orders").
		Joins("JOIN products ON products.id = orders.product_id").
		Joins("JOIN customers ON customers.id = orders.customer_id")

	if scope.DateRange != nil {
		query = query.Scopes(OrdersBetweenDates(scope.DateRange.Start, scope.DateRange.End))
	}
	if scope.Brand != "" {
		query = query.Scopes(ProductsBrandContains(scope.Brand))
	}
	if scope.ProductID != nil {
		query = query.Scopes(OrdersForProduct(*scope.ProductID))
	}
	if scope.CustomerID != nil {
		query = query.Scopes(OrdersForCustomer(*scope.CustomerID))
	} else if scope.CustomerName != "" {
		query = query.Where(containsClause("customers.name"), containsPattern(scope.CustomerName))
	}

	return query
}

// CountOrders counts orders in scope
func (r *GormSalesReportRepository) CountOrders(ctx context.Context, scope report.OrderScope) (int64, error) {
	var count int64
	if err := r.scopedOrders(ctx, scope).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// SumRevenue sums total_price of orders in scope
func (r *GormSalesReportRepository) SumRevenue(ctx context.Context, scope report.OrderScope) (decimal.Decimal, error) {
	var result struct {
		TotalRevenue decimal.Decimal
	}

	err := r.scopedOrders(ctx, scope).
		Select("COALESCE(SUM(orders.total_price), 0) AS total_revenue").
		Scan(&result).Error
	if err != nil {
		return decimal.Zero, err
	}

	return result.TotalRevenue, nil
}

// TopProducts returns per-product totals ordered by quantity sold, ties in first-encounter order
func (r *GormSalesReportRepository) TopProducts(ctx context.Context, scope report.OrderScope, limit int) ([]report.ProductAggregate, error) {
	type productResult struct {
		ProductID    int64
		Brand        string
		Name         string
		Price        decimal.Decimal
		TotalSold    int64
		TotalRevenue decimal.Decimal
	}

	if limit <= 0 {
		limit = report.TopProductsLimit
	}

	var results []productResult

	err := r.scopedOrders(ctx, scope).
		Select(`
			orders.product_id AS product_id,
			products.brand AS brand,
			products.name AS name,
			products.price AS price,
			COALESCE(SUM(orders.quantity), 0) AS total_sold,
			COALESCE(SUM(orders.total_price), 0) AS total_revenue
		`).
		Group("orders.product_id, products.brand, products.name, products.price").
		Order("total_sold DESC").
		Order("MIN(orders.id) ASC").
		Limit(limit).
		Scan(&results).Error
	if err != nil {
		return nil, err
	}

	aggregates := make([]report.ProductAggregate, len(results))
	for i, res := range results {
		aggregates[i] = report.ProductAggregate{
			ProductID:    res.ProductID,
			Brand:        res.Brand,
			Name:         res.Name,
			Price:        res.Price,
			TotalSold:    res.TotalSold,
			TotalRevenue: res.TotalRevenue,
		}
	}

	return aggregates, nil
}

// SalesByCustomer returns per-customer totals in first-encounter order
func (r *GormSalesReportRepository) SalesByCustomer(ctx context.Context, scope report.OrderScope) ([]report.CustomerSales, error) {
	type customerResult struct {
		CustomerID    int64
		CustomerName  string
		CustomerEmail string
		TotalOrders   int64
		TotalSpent    decimal.Decimal
	}

	var results []customerResult

	err := r.scopedOrders(ctx, scope).
		Select(`
			orders.customer_id AS customer_id,
			customers.name AS customer_name,
			customers.email AS customer_email,
			COUNT(orders.id) AS total_orders,
			COALESCE(SUM(orders.total_price), 0) AS total_spent
		`).
		Group("orders.customer_id, customers.name, customers.email").
		Order("MIN(orders.id) ASC").
		Scan(&results).Error
	if err != nil {
		return nil, err
	}

	sales := make([]report.CustomerSales, len(results))
	for i, res := range results {
		sales[i] = report.CustomerSales{
			CustomerID:    res.CustomerID,
			CustomerName:  res.CustomerName,
			CustomerEmail: res.CustomerEmail,
			TotalOrders:   res.TotalOrders,
			TotalSpent:    res.TotalSpent,
		}
	}

	return sales, nil
}

// Ensure GormSalesReportRepository implements SalesReportRepository
var _ report.SalesReportRepository = (*GormSalesReportRepository)(nil)
