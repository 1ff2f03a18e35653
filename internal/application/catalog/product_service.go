package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/shoplytics/backend/internal/domain/catalog"
	"github.com/shoplytics/backend/internal/infrastructure/telemetry"
	"go.uber.org/zap"
)

// ProductService answers product lookups and the inventory summary
type ProductService struct {
	productRepo catalog.ProductRepository
	logger      *zap.Logger
}

// NewProductService creates a new ProductService
func NewProductService(productRepo catalog.ProductRepository, logger *zap.Logger) *ProductService {
	return &ProductService{
		productRepo: productRepo,
		logger:      logger,
	}
}

// GetByID returns a product with its revenue and quantity sold.
// A missing product yields shared.ErrNotFound.
func (s *ProductService) GetByID(ctx context.Context, id int64) (*ProductDetailResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	stats, err := s.productRepo.GetStats(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load stats for product %d: %w", id, err)
	}

	return &ProductDetailResponse{
		Product:           ToProductResponse(product),
		TotalRevenue:      stats.TotalRevenue,
		TotalQuantitySold: stats.TotalQuantitySold,
	}, nil
}

// Summarize builds the inventory summary.
// total_products honours every filter; the by-brand and low stock lists honour the brand only.
func (s *ProductService) Summarize(ctx context.Context, filter ProductSummaryFilter) (*ProductSummaryResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "product", "summarize")
	defer span.End()

	filter = normalizeSummaryFilter(filter)

	domainFilter := catalog.SummaryFilter{
		MinPrice: filter.MinPrice,
		MaxPrice: filter.MaxPrice,
		MinStock: filter.MinStock,
		MaxStock: filter.MaxStock,
	}
	if filter.Brand != nil {
		domainFilter.Brand = *filter.Brand
	}

	total, err := s.productRepo.Count(ctx, domainFilter)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, fmt.Errorf("failed to count products: %w", err)
	}

	byBrand, err := s.productRepo.CountByBrand(ctx, domainFilter.Brand)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, fmt.Errorf("failed to count products by brand: %w", err)
	}

	lowStock, err := s.productRepo.FindLowStock(ctx, domainFilter.Brand, catalog.LowStockThreshold)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, fmt.Errorf("failed to load low stock products: %w", err)
	}

	resp := &ProductSummaryResponse{
		FiltersUsed:      filter,
		TotalProducts:    total,
		ProductsByBrand:  toBrandCountResponses(byBrand),
		LowStockProducts: toLowStockResponses(lowStock),
	}

	if !domainFilter.HasBrand() {
		distinct, err := s.productRepo.CountDistinctBrands(ctx)
		if err != nil {
			telemetry.RecordError(span, err)
			return nil, fmt.Errorf("failed to count distinct brands: %w", err)
		}
		resp.DistinctBrands = &distinct
	}

	telemetry.SetAttributes(span, "result.total_products", total)
	return resp, nil
}

// normalizeSummaryFilter trims the brand and treats a blank brand as not supplied
func normalizeSummaryFilter(f ProductSummaryFilter) ProductSummaryFilter {
	if f.Brand != nil {
		brand := strings.TrimSpace(*f.Brand)
		if brand == "" {
			f.Brand = nil
		} else {
			f.Brand = &brand
		}
	}
	return f
}
