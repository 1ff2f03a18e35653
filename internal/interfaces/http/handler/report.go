package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	reportapp "github.com/shoplytics/backend/internal/application/report"
	"github.com/shoplytics/backend/internal/domain/report"
	"github.com/shoplytics/backend/internal/domain/shared"
	"github.com/shoplytics/backend/internal/interfaces/http/dto"
	"go.uber.org/zap"
)

// SalesReporter generates sales reports
type SalesReporter interface {
	Generate(ctx context.Context, rawType string, filter report.SalesReportFilter) (*reportapp.SalesReport, error)
}

// ReportHandler handles the sales report endpoint
type ReportHandler struct {
	BaseHandler
	reports SalesReporter
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(base BaseHandler, reports SalesReporter) *ReportHandler {
	return &ReportHandler{
		BaseHandler: base,
		reports:     reports,
	}
}

// SalesSummary godoc
// @ID           getSalesSummary
// @Summary      Sales report
// @Description  type=full (default) ignores every filter and returns the whole-store report.
// @Description  type=product aggregates per product; type=user aggregates per customer.
// @Description  The type is read from the query string only.
// @Tags         analytics
// @Accept       json
// @Produce      json
// @Param        type          query string  false "Report type" Enums(full, product, user)
// @Param        start_date    query string  false "Inclusive start date, YYYY-MM-DD"
// @Param        end_date      query string  false "Inclusive end date, YYYY-MM-DD"
// @Param        brand         query string  false "Brand, case-insensitive substring"
// @Param        product_id    query integer false "Product ID (product report)"
// @Param        customer_id   query integer false "Customer ID (user report)"
// @Param        customer_name query string  false "Customer name substring (user report)"
// @Success      200 {object} dto.SalesSummaryResponse
// @Failure      400 {object} dto.ErrorResponse
// @Failure      401 {object} dto.MessageResponse
// @Failure      429 {object} dto.MessageResponse
// @Failure      500 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /analytics/sales-summary [get]
// @Router       /analytics/sales-summary [post]
func (h *ReportHandler) SalesSummary(c *gin.Context) {
	var req dto.SalesSummaryRequest
	if err := bindInput(c, &req); err != nil {
		if isMaxBytesError(err) {
			h.Message(c, http.StatusRequestEntityTooLarge, dto.MsgRequestTooLarge)
			return
		}
		h.reportFailed(c, shared.NewInvalidInputError(err.Error()))
		return
	}

	filter, err := reportapp.ParseSalesReportFilter(report.ParseReportType(c.Query("type")), req.ToRaw())
	if err != nil {
		h.reportFailed(c, err)
		return
	}

	result, err := h.reports.Generate(c.Request.Context(), c.Query("type"), filter)
	if err != nil {
		h.reportFailed(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SalesSummaryResponse{
		Status:  dto.StatusSuccess,
		Summary: result.Summary(),
	})
}

func (h *ReportHandler) reportFailed(c *gin.Context, err error) {
	var genErr *reportapp.GenerationError
	switch {
	case errors.As(err, &genErr):
		h.Failure(c, http.StatusInternalServerError, dto.MsgReportFailed, err)
	case errors.Is(err, shared.ErrInvalidInput):
		h.logger(c).Warn("Invalid sales report input", zap.Error(err))
		h.Failure(c, http.StatusBadRequest, dto.MsgInvalidFilter, err)
	default:
		h.logger(c).Error("Unexpected sales report failure", zap.Error(err))
		h.Failure(c, http.StatusInternalServerError, dto.MsgReportUnexpected, err)
	}
}
