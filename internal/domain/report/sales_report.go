package report

import (
	"context"
	"time"

	"github.com/shoplytics/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// ReportType selects both the filter policy and the output shape of a sales report
type ReportType string

const (
	ReportTypeFull    ReportType = "full"
	ReportTypeProduct ReportType = "product"
	ReportTypeUser    ReportType = "user"
)

// TopProductsLimit caps the number of product aggregates in a report
const TopProductsLimit = 10

// ParseReportType maps a raw type to a ReportType.
// Unknown or empty values fall back to ReportTypeFull; it never fails.
func ParseReportType(raw string) ReportType {
	switch ReportType(raw) {
	case ReportTypeProduct:
		return ReportTypeProduct
	case ReportTypeUser:
		return ReportTypeUser
	default:
		return ReportTypeFull
	}
}

// SalesReportFilter is the full set of filters a caller may supply.
// Which of them take effect depends on the report type, see ScopeFor.
type SalesReportFilter struct {
	StartDate    *time.Time
	EndDate      *time.Time
	Brand        string
	ProductID    *int64
	CustomerID   *int64
	CustomerName string
}

// DateRange is an inclusive range of calendar days
type DateRange struct {
	Start time.Time
	End   time.Time
}

// OrderScope is the subset of filters applied to the order set for one report.
// The zero value matches every order.
type OrderScope struct {
	DateRange    *DateRange
	Brand        string
	ProductID    *int64
	CustomerID   *int64
	CustomerName string
}

// IsEmpty reports whether the scope applies no filter at all
func (s OrderScope) IsEmpty() bool {
	return s.DateRange == nil && s.Brand == "" && s.ProductID == nil &&
		s.CustomerID == nil && s.CustomerName == ""
}

// Validate rejects scopes that cannot match anything because of malformed bounds
func (s OrderScope) Validate() error {
	if s.DateRange != nil && s.DateRange.Start.After(s.DateRange.End) {
		return shared.NewInvalidInputError("start_date must not be after end_date")
	}
	return nil
}

// ScopeFor selects the filters that apply to a report type:
//   - product: date range (only when both ends are set), brand substring, product id
//   - user: customer id, or customer name substring when no id is given
//   - full: nothing
func (f SalesReportFilter) ScopeFor(t ReportType) OrderScope {
	var scope OrderScope

	switch t {
	case ReportTypeProduct:
		if f.StartDate != nil && f.EndDate != nil {
			scope.DateRange = &DateRange{Start: *f.StartDate, End: *f.EndDate}
		}
		scope.Brand = f.Brand
		scope.ProductID = f.ProductID
	case ReportTypeUser:
		if f.CustomerID != nil {
			scope.CustomerID = f.CustomerID
		} else {
			scope.CustomerName = f.CustomerName
		}
	}

	return scope
}

// ProductAggregate is the sales total of one product over a set of orders
type ProductAggregate struct {
	ProductID    int64
	Brand        string
	Name         string
	Price        decimal.Decimal
	TotalSold    int64
	TotalRevenue decimal.Decimal
}

// CustomerSales is the sales total of one customer over a set of orders
type CustomerSales struct {
	CustomerID    int64
	CustomerName  string
	CustomerEmail string
	TotalOrders   int64
	TotalSpent    decimal.Decimal
}

// SalesReportRepository defines the aggregate queries behind sales reports.
// Every method applies the given scope before aggregating.
type SalesReportRepository interface {
	// CountOrders counts orders in scope
	CountOrders(ctx context.Context, scope OrderScope) (int64, error)

	// SumRevenue sums total_price of orders in scope
	SumRevenue(ctx context.Context, scope OrderScope) (decimal.Decimal, error)

	// TopProducts groups orders in scope by product, ordered by quantity sold
	// descending with ties kept in first-encounter (lowest order id) order,
	// and returns at most limit entries
	TopProducts(ctx context.Context, scope OrderScope, limit int) ([]ProductAggregate, error)

	// SalesByCustomer groups orders in scope by customer, in the order each
	// customer is first encountered (lowest order id)
	SalesByCustomer(ctx context.Context, scope OrderScope) ([]CustomerSales, error)
}
