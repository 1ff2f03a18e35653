package catalog

import (
	"strings"

	"github.com/shoplytics/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// LowStockThreshold is the stock level below which a product is reported as low stock
const LowStockThreshold = 10

// Product represents a sellable item in the catalog
type Product struct {
	shared.BaseEntity
	Brand string
	Name  string
	Price decimal.Decimal
	Stock int
}

// IsLowStock reports whether the product's stock is under LowStockThreshold
func (p *Product) IsLowStock() bool {
	return p.Stock < LowStockThreshold
}

// ProductStats holds figures derived from a product's orders
type ProductStats struct {
	TotalRevenue      decimal.Decimal
	TotalQuantitySold int64
}

// BrandCount is the number of products carrying a brand
type BrandCount struct {
	Brand string
	Count int64
}

// SummaryFilter narrows the product set used by the inventory summary.
// All fields are optional; nil pointers and an empty brand mean "not supplied".
type SummaryFilter struct {
	Brand    string
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
	MinStock *int
	MaxStock *int
}

// HasBrand reports whether a brand filter was supplied
func (f SummaryFilter) HasBrand() bool {
	return strings.TrimSpace(f.Brand) != ""
}

