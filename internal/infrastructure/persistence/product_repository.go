package persistence

import (
	"context"
	"errors"

	"github.com/shoplytics/backend/internal/domain/catalog"
	"github.com/shoplytics/backend/internal/domain/shared"
	"github.com/shoplytics/backend/internal/infrastructure/persistence/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormProductRepository implements ProductRepository using GORM
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GormProductRepository
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// FindByID finds a product by its ID
func (r *GormProductRepository) FindByID(ctx context.Context, id int64) (*catalog.Product, error) {
	var model models.ProductModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// GetStats returns revenue and quantity sold across all orders of a product
func (r *GormProductRepository) GetStats(ctx context.Context, id int64) (*catalog.ProductStats, error) {
	var result struct {
		TotalRevenue      decimal.Decimal
		TotalQuantitySold int64
	}

	err := r.db.WithContext(ctx).
		Model(&models.OrderModel{}).
		Scopes(OrdersForProduct(id)).
		Select("COALESCE(SUM(orders.total_price), 0) AS total_revenue, COALESCE(SUM(orders.quantity), 0) AS total_quantity_sold").
		Scan(&result).Error
	if err != nil {
		return nil, err
	}

	return &catalog.ProductStats{
		TotalRevenue:      result.TotalRevenue,
		TotalQuantitySold: result.TotalQuantitySold,
	}, nil
}

// Count counts products matching every supplied field of the filter
func (r *GormProductRepository) Count(ctx context.Context, filter catalog.SummaryFilter) (int64, error) {
	query := r.db.WithContext(ctx).
		Model(&models.ProductModel{}).
		Scopes(ProductsBrandContains(filter.Brand))

	if filter.MinPrice != nil {
		query = query.Where("products.price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("products.price <= ?", *filter.MaxPrice)
	}
	if filter.MinStock != nil {
		query = query.Where("products.stock >= ?", *filter.MinStock)
	}
	if filter.MaxStock != nil {
		query = query.Where("products.stock <= ?", *filter.MaxStock)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountByBrand groups products by brand, ordered by brand name
func (r *GormProductRepository) CountByBrand(ctx context.Context, brand string) ([]catalog.BrandCount, error) {
	type brandResult struct {
		Brand string
		Count int64
	}

	var results []brandResult

	err := r.db.WithContext(ctx).
		Model(&models.ProductModel{}).
		Scopes(ProductsBrandContains(brand)).
		Select("products.brand AS brand, COUNT(*) AS count").
		Group("products.brand").
		Order("products.brand ASC").
		Scan(&results).Error
	if err != nil {
		return nil, err
	}

	counts := make([]catalog.BrandCount, len(results))
	for i, res := range results {
		counts[i] = catalog.BrandCount{Brand: res.Brand, Count: res.Count}
	}
	return counts, nil
}

// FindLowStock finds products with stock below threshold, optionally restricted by brand.
// Only id, name, brand and stock are loaded.
func (r *GormProductRepository) FindLowStock(ctx context.Context, brand string, threshold int) ([]catalog.Product, error) {
	var rows []models.ProductModel

	err := r.db.WithContext(ctx).
		Select("id", "name", "brand", "stock").
		Scopes(ProductsLowStock(threshold), ProductsBrandContains(brand)).
		Order("products.id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	products := make([]catalog.Product, len(rows))
	for i := range rows {
		products[i] = *rows[i].ToDomain()
	}
	return products, nil
}

// CountDistinctBrands counts distinct brand values across all products
func (r *GormProductRepository) CountDistinctBrands(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.ProductModel{}).
		Distinct("brand").
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

// Ensure GormProductRepository implements ProductRepository
var _ catalog.ProductRepository = (*GormProductRepository)(nil)
