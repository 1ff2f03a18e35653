package dto

import (
	"fmt"
	"strconv"

	catalogapp "github.com/shoplytics/backend/internal/application/catalog"
	reportapp "github.com/shoplytics/backend/internal/application/report"
	"github.com/shopspring/decimal"
)

// ProductSummaryRequest holds the product summary filters
type ProductSummaryRequest struct {
	Brand    Scalar `form:"brand" json:"brand" binding:"omitempty,max=255"`
	MinPrice Scalar `form:"min_price" json:"min_price" binding:"omitempty,numeric"`
	MaxPrice Scalar `form:"max_price" json:"max_price" binding:"omitempty,numeric"`
	MinStock Scalar `form:"min_stock" json:"min_stock" binding:"omitempty,integer"`
	MaxStock Scalar `form:"max_stock" json:"max_stock" binding:"omitempty,integer"`
}

// ToFilter converts the validated request into service filters.
// Values that pass the tags but do not fit the target type are reported per field.
func (r ProductSummaryRequest) ToFilter() (catalogapp.ProductSummaryFilter, ValidationErrors) {
	var f catalogapp.ProductSummaryFilter
	errs := ValidationErrors{}

	if r.Brand.IsSet() {
		brand := r.Brand.String()
		f.Brand = &brand
	}
	f.MinPrice = parseDecimal(errs, "min_price", r.MinPrice)
	f.MaxPrice = parseDecimal(errs, "max_price", r.MaxPrice)
	f.MinStock = parseInt(errs, "min_stock", r.MinStock)
	f.MaxStock = parseInt(errs, "max_stock", r.MaxStock)

	if len(errs) > 0 {
		return catalogapp.ProductSummaryFilter{}, errs
	}
	return f, nil
}

func parseDecimal(errs ValidationErrors, field string, v Scalar) *decimal.Decimal {
	if !v.IsSet() {
		return nil
	}
	d, err := decimal.NewFromString(v.String())
	if err != nil {
		errs.Add(field, fmt.Sprintf("The %s field must be a number.", field))
		return nil
	}
	return &d
}

func parseInt(errs ValidationErrors, field string, v Scalar) *int {
	if !v.IsSet() {
		return nil
	}
	n, err := strconv.Atoi(v.String())
	if err != nil {
		errs.Add(field, fmt.Sprintf("The %s field must be an integer.", field))
		return nil
	}
	return &n
}

// OrderSearchRequest holds the free-text order search token
type OrderSearchRequest struct {
	Search Scalar `form:"search" json:"search" binding:"required,max=255"`
}

// SearchFilters echoes the search token in the response
type SearchFilters struct {
	Search string `json:"search"`
}

// SalesSummaryRequest holds the sales report filters. They are parsed by the
// report application layer, so no tags reject them here.
type SalesSummaryRequest struct {
	StartDate    Scalar `form:"start_date" json:"start_date"`
	EndDate      Scalar `form:"end_date" json:"end_date"`
	Brand        Scalar `form:"brand" json:"brand"`
	ProductID    Scalar `form:"product_id" json:"product_id"`
	CustomerID   Scalar `form:"customer_id" json:"customer_id"`
	CustomerName Scalar `form:"customer_name" json:"customer_name"`
}

// ToRaw converts the request into the report layer's raw filter
func (r SalesSummaryRequest) ToRaw() reportapp.RawSalesReportFilter {
	return reportapp.RawSalesReportFilter{
		StartDate:    r.StartDate.String(),
		EndDate:      r.EndDate.String(),
		Brand:        r.Brand.String(),
		ProductID:    r.ProductID.String(),
		CustomerID:   r.CustomerID.String(),
		CustomerName: r.CustomerName.String(),
	}
}

// IDRequest represents a request with a numeric ID path parameter
type IDRequest struct {
	ID string `uri:"id" binding:"required,integer"`
}

// Int64 returns the parsed id. Values outside the int64 range fail.
func (r IDRequest) Int64() (int64, error) {
	return strconv.ParseInt(r.ID, 10, 64)
}
