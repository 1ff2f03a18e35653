package persistence

import (
	"context"
	"errors"

	"github.com/shoplytics/backend/internal/domain/partner"
	"github.com/shoplytics/backend/internal/domain/shared"
	"github.com/shoplytics/backend/internal/infrastructure/persistence/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormCustomerRepository implements CustomerRepository using GORM
type GormCustomerRepository struct {
	db *gorm.DB
}

// NewGormCustomerRepository creates a new GormCustomerRepository
func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

// FindByID finds a customer by its ID
func (r *GormCustomerRepository) FindByID(ctx context.Context, id int64) (*partner.Customer, error) {
	var model models.CustomerModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// GetStats returns the total spent and the most recent order date of a customer
func (r *GormCustomerRepository) GetStats(ctx context.Context, id int64) (*partner.CustomerStats, error) {
	var total struct {
		TotalSpent decimal.Decimal
	}

	err := r.db.WithContext(ctx).
		Model(&models.OrderModel{}).
		Scopes(OrdersForCustomer(id)).
		Select("COALESCE(SUM(orders.total_price), 0) AS total_spent").
		Scan(&total).Error
	if err != nil {
		return nil, err
	}

	stats := &partner.CustomerStats{TotalSpent: total.TotalSpent}

	var latest models.OrderModel
	err = r.db.WithContext(ctx).
		Select("order_date").
		Scopes(OrdersForCustomer(id)).
		Order("orders.order_date DESC").
		Take(&latest).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return stats, nil
	case err != nil:
		return nil, err
	}

	stats.LastOrderDate = &latest.OrderDate
	return stats, nil
}

// Ensure GormCustomerRepository implements CustomerRepository
var _ partner.CustomerRepository = (*GormCustomerRepository)(nil)
