package persistence

import (
	"context"

	"github.com/shoplytics/backend/internal/domain/trade"
	"github.com/shoplytics/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GormOrderRepository
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Search finds orders matching the term on their ids, product or customer,
// newest order date first
func (r *GormOrderRepository) Search(ctx context.Context, term trade.SearchTerm) ([]trade.Order, error) {
	pattern := containsPattern(term.Text)

	match := r.db.Where(containsClause("products.name"), pattern).
		Or(containsClause("products.brand"), pattern).
		Or(containsClause("customers.name"), pattern).
		Or(containsClause("customers.email"), pattern)
	if term.ID != nil {
		match = match.
			Or("orders.id = ?", *term.ID).
			Or("orders.customer_id = ?", *term.ID).
			Or("orders.product_id = ?", *term.ID)
	}

	var rows []models.OrderModel
	err := r.db.WithContext(ctx).
		Select("orders.*").
		Joins("JOIN products ON products.id = orders.product_id").
		Joins("JOIN customers ON customers.id = orders.customer_id").
		Where(match).
		Preload("Product").
		Preload("Customer").
		Order("orders.order_date DESC").
		Order("orders.id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	return toDomainOrders(rows), nil
}

// FindRecent returns up to limit orders, newest order date first
func (r *GormOrderRepository) FindRecent(ctx context.Context, limit int) ([]trade.Order, error) {
	if limit <= 0 {
		limit = trade.DefaultRecentLimit
	}

	var rows []models.OrderModel
	err := r.db.WithContext(ctx).
		Preload("Product").
		Preload("Customer").
		Order("orders.order_date DESC").
		Order("orders.id DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	return toDomainOrders(rows), nil
}

func toDomainOrders(rows []models.OrderModel) []trade.Order {
	orders := make([]trade.Order, len(rows))
	for i := range rows {
		orders[i] = *rows[i].ToDomain()
	}
	return orders
}

// Ensure GormOrderRepository implements OrderRepository
var _ trade.OrderRepository = (*GormOrderRepository)(nil)
