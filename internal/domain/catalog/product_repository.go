package catalog

import (
	"context"
)

// ProductRepository defines the read operations the analytics API needs on products
type ProductRepository interface {
	// FindByID finds a product by its ID
	FindByID(ctx context.Context, id int64) (*Product, error)

	// GetStats returns revenue and quantity sold across all orders of a product
	GetStats(ctx context.Context, id int64) (*ProductStats, error)

	// Count counts products matching every supplied field of the filter
	Count(ctx context.Context, filter SummaryFilter) (int64, error)

	// CountByBrand groups products by brand, optionally restricted to brands containing brand
	CountByBrand(ctx context.Context, brand string) ([]BrandCount, error)

	// FindLowStock finds products with stock below threshold, optionally restricted by brand
	FindLowStock(ctx context.Context, brand string, threshold int) ([]Product, error)

	// CountDistinctBrands counts distinct brand values across all products
	CountDistinctBrands(ctx context.Context) (int64, error)
}
