package report

import (
	"strconv"
	"strings"
	"time"

	"github.com/shoplytics/backend/internal/domain/report"
	"github.com/shoplytics/backend/internal/domain/shared"
)

// DateLayout is the accepted format of start_date and end_date
const DateLayout = "2006-01-02"

// RawSalesReportFilter carries the filters exactly as received.
// Empty strings mean the filter was not supplied.
type RawSalesReportFilter struct {
	StartDate    string
	EndDate      string
	Brand        string
	ProductID    string
	CustomerID   string
	CustomerName string
}

// ParseSalesReportFilter validates and converts the raw filters a report type
// reads. Filters the type ignores are dropped unparsed, so a full report never
// fails on its input. Malformed values yield an INVALID_INPUT domain error
// naming the field.
func ParseSalesReportFilter(t report.ReportType, raw RawSalesReportFilter) (report.SalesReportFilter, error) {
	var (
		f   report.SalesReportFilter
		err error
	)

	switch t {
	case report.ReportTypeProduct:
		if f.StartDate, err = parseDate("start_date", raw.StartDate); err != nil {
			return report.SalesReportFilter{}, err
		}
		if f.EndDate, err = parseDate("end_date", raw.EndDate); err != nil {
			return report.SalesReportFilter{}, err
		}
		if f.ProductID, err = parseID("product_id", raw.ProductID); err != nil {
			return report.SalesReportFilter{}, err
		}
		f.Brand = strings.TrimSpace(raw.Brand)
	case report.ReportTypeUser:
		if f.CustomerID, err = parseID("customer_id", raw.CustomerID); err != nil {
			return report.SalesReportFilter{}, err
		}
		f.CustomerName = strings.TrimSpace(raw.CustomerName)
	}

	return f, nil
}

func parseDate(field, value string) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(DateLayout, value, time.UTC)
	if err != nil {
		return nil, shared.NewInvalidInputError(field + " must be a valid date in YYYY-MM-DD format")
	}
	return &t, nil
}

func parseID(field, value string) (*int64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return nil, shared.NewInvalidInputError(field + " must be an integer")
	}
	return &id, nil
}
