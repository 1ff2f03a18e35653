package report

import (
	"context"
	"fmt"
	"time"

	"github.com/shoplytics/backend/internal/domain/report"
	"github.com/shoplytics/backend/internal/infrastructure/logger"
	"github.com/shoplytics/backend/internal/infrastructure/telemetry"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.uber.org/zap"
)

// SalesReportEngine produces sales reports. It is stateless and safe for concurrent use.
type SalesReportEngine struct {
	repo        report.SalesReportRepository
	logger      *zap.Logger
	generations *telemetry.Counter
	duration    *telemetry.Histogram
}

// NewSalesReportEngine creates the engine. A nil logger discards logs and a
// nil meter disables metrics.
func NewSalesReportEngine(repo report.SalesReportRepository, log *zap.Logger, meter metric.Meter) (*SalesReportEngine, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if meter == nil {
		meter = noop.NewMeterProvider().Meter(telemetry.TracerName)
	}

	generations, err := telemetry.NewCounter(meter,
		"sales_report_generations_total",
		"Sales reports generated, by type and outcome",
		"{report}")
	if err != nil {
		return nil, err
	}
	duration, err := telemetry.NewHistogram(meter, telemetry.HistogramOpts{
		Name:        "sales_report_generation_duration_seconds",
		Description: "Time spent generating a sales report",
		Unit:        "s",
		Boundaries:  telemetry.HTTPDurationBuckets,
	})
	if err != nil {
		return nil, err
	}

	return &SalesReportEngine{
		repo:        repo,
		logger:      log,
		generations: generations,
		duration:    duration,
	}, nil
}

// Generate builds the report for rawType. Unknown types produce the full report.
//
// Malformed filters return an INVALID_INPUT domain error; every failure after
// that is returned as *GenerationError with no partial result.
func (e *SalesReportEngine) Generate(ctx context.Context, rawType string, filter report.SalesReportFilter) (*SalesReport, error) {
	reportType := report.ParseReportType(rawType)
	scope := filter.ScopeFor(reportType)
	log := e.logger.With(
		zap.String("report_type", string(reportType)),
		zap.String("request_id", logger.GetRequestID(ctx)),
	)

	if err := scope.Validate(); err != nil {
		log.Warn("Invalid sales report filter", zap.Error(err))
		e.generations.Inc(ctx, telemetry.AttrReportType.String(string(reportType)), telemetry.AttrOutcome.String("invalid"))
		return nil, err
	}

	ctx, span := telemetry.StartServiceSpan(ctx, "sales_report", "generate", "report.type", string(reportType))
	defer span.End()

	start := time.Now()
	result, err := e.build(ctx, reportType, scope)
	e.duration.RecordDuration(ctx, time.Since(start), telemetry.AttrReportType.String(string(reportType)))

	if err != nil {
		log.Error("Sales report generation failed", zap.Error(err))
		telemetry.RecordError(span, err)
		e.generations.Inc(ctx, telemetry.AttrReportType.String(string(reportType)), telemetry.AttrOutcome.String("error"))
		return nil, &GenerationError{ReportType: reportType, Err: err}
	}

	e.generations.Inc(ctx, telemetry.AttrReportType.String(string(reportType)), telemetry.AttrOutcome.String("success"))
	return result, nil
}

func (e *SalesReportEngine) build(ctx context.Context, reportType report.ReportType, scope report.OrderScope) (*SalesReport, error) {
	switch reportType {
	case report.ReportTypeProduct:
		top, err := e.repo.TopProducts(ctx, scope, report.TopProductsLimit)
		if err != nil {
			return nil, fmt.Errorf("top products: %w", err)
		}
		return &SalesReport{Type: reportType, Products: toProductAggregateResponses(top)}, nil

	case report.ReportTypeUser:
		sales, err := e.repo.SalesByCustomer(ctx, scope)
		if err != nil {
			return nil, fmt.Errorf("sales by customer: %w", err)
		}
		return &SalesReport{Type: reportType, Customers: toCustomerSalesResponses(sales)}, nil

	default:
		count, err := e.repo.CountOrders(ctx, scope)
		if err != nil {
			return nil, fmt.Errorf("count orders: %w", err)
		}
		revenue, err := e.repo.SumRevenue(ctx, scope)
		if err != nil {
			return nil, fmt.Errorf("sum revenue: %w", err)
		}
		top, err := e.repo.TopProducts(ctx, scope, report.TopProductsLimit)
		if err != nil {
			return nil, fmt.Errorf("top products: %w", err)
		}
		return &SalesReport{
			Type: reportType,
			Full: &FullReportResponse{
				TotalSalesCount: count,
				TotalRevenue:    revenue,
				TopProducts:     toProductAggregateResponses(top),
			},
		}, nil
	}
}
