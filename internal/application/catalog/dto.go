package catalog

import (
	"time"

	"github.com/shoplytics/backend/internal/domain/catalog"
	"github.com/shopspring/decimal"
)

// ProductResponse represents a product in API responses
type ProductResponse struct {
	ID        int64           `json:"id"`
	Brand     string          `json:"brand"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Stock     int             `json:"stock"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ProductDetailResponse is a product with its lifetime sales figures
type ProductDetailResponse struct {
	Product           ProductResponse `json:"product"`
	TotalRevenue      decimal.Decimal `json:"total_revenue"`
	TotalQuantitySold int64           `json:"total_quantity_sold"`
}

// ProductSummaryFilter holds the optional product summary filters.
// Only supplied fields are serialized, so the value doubles as filters_used.
type ProductSummaryFilter struct {
	Brand    *string          `json:"brand,omitempty"`
	MinPrice *decimal.Decimal `json:"min_price,omitempty"`
	MaxPrice *decimal.Decimal `json:"max_price,omitempty"`
	MinStock *int             `json:"min_stock,omitempty"`
	MaxStock *int             `json:"max_stock,omitempty"`
}

// BrandCountResponse is the number of products carrying a brand
type BrandCountResponse struct {
	Brand string `json:"brand"`
	Count int64  `json:"count"`
}

// LowStockProductResponse is the projection used for the low stock list
type LowStockProductResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Brand string `json:"brand"`
	Stock int    `json:"stock"`
}

// ProductSummaryResponse is the inventory summary.
// DistinctBrands is present only when no brand filter was supplied.
type ProductSummaryResponse struct {
	FiltersUsed      ProductSummaryFilter      `json:"filters_used"`
	TotalProducts    int64                     `json:"total_products"`
	ProductsByBrand  []BrandCountResponse      `json:"products_by_brand"`
	LowStockProducts []LowStockProductResponse `json:"low_stock_products"`
	DistinctBrands   *int64                    `json:"distinct_brands,omitempty"`
}

// ToProductResponse converts a domain Product to ProductResponse
func ToProductResponse(p *catalog.Product) ProductResponse {
	return ProductResponse{
		ID:        p.ID,
		Brand:     p.Brand,
		Name:      p.Name,
		Price:     p.Price,
		Stock:     p.Stock,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func toBrandCountResponses(counts []catalog.BrandCount) []BrandCountResponse {
	out := make([]BrandCountResponse, len(counts))
	for i, c := range counts {
		out[i] = BrandCountResponse{Brand: c.Brand, Count: c.Count}
	}
	return out
}

func toLowStockResponses(products []catalog.Product) []LowStockProductResponse {
	out := make([]LowStockProductResponse, len(products))
	for i := range products {
		p := &products[i]
		out[i] = LowStockProductResponse{ID: p.ID, Name: p.Name, Brand: p.Brand, Stock: p.Stock}
	}
	return out
}
