package report

import (
	"github.com/shoplytics/backend/internal/domain/report"
	"github.com/shopspring/decimal"
)

// ProductAggregateResponse is one product's sales totals
type ProductAggregateResponse struct {
	ProductID    int64           `json:"product_id"`
	Brand        string          `json:"brand"`
	Name         string          `json:"name"`
	Price        decimal.Decimal `json:"price"`
	TotalSold    int64           `json:"total_sold"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
}

// CustomerSummary identifies the customer in a user report entry
type CustomerSummary struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// CustomerSalesResponse is one customer's sales totals
type CustomerSalesResponse struct {
	Customer    CustomerSummary `json:"customer"`
	TotalOrders int64           `json:"total_orders"`
	TotalSpent  decimal.Decimal `json:"total_spent"`
}

// FullReportResponse is the unfiltered overview
type FullReportResponse struct {
	TotalSalesCount int64                      `json:"total_sales_count"`
	TotalRevenue    decimal.Decimal            `json:"total_revenue"`
	TopProducts     []ProductAggregateResponse `json:"top_products"`
}

// SalesReport is the result of one generation. Exactly one of the
// payload fields is set, matching Type.
type SalesReport struct {
	Type      report.ReportType
	Full      *FullReportResponse
	Products  []ProductAggregateResponse
	Customers []CustomerSalesResponse
}

// Summary returns the payload rendered under "summary"
func (r *SalesReport) Summary() any {
	switch r.Type {
	case report.ReportTypeProduct:
		return r.Products
	case report.ReportTypeUser:
		return r.Customers
	default:
		return r.Full
	}
}

func toProductAggregateResponses(aggs []report.ProductAggregate) []ProductAggregateResponse {
	out := make([]ProductAggregateResponse, len(aggs))
	for i, a := range aggs {
		out[i] = ProductAggregateResponse{
			ProductID:    a.ProductID,
			Brand:        a.Brand,
			Name:         a.Name,
			Price:        a.Price,
			TotalSold:    a.TotalSold,
			TotalRevenue: a.TotalRevenue,
		}
	}
	return out
}

func toCustomerSalesResponses(sales []report.CustomerSales) []CustomerSalesResponse {
	out := make([]CustomerSalesResponse, len(sales))
	for i, s := range sales {
		out[i] = CustomerSalesResponse{
			Customer: CustomerSummary{
				ID:    s.CustomerID,
				Name:  s.CustomerName,
				Email: s.CustomerEmail,
			},
			TotalOrders: s.TotalOrders,
			TotalSpent:  s.TotalSpent,
		}
	}
	return out
}
