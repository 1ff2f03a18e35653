package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	catalogapp "github.com/shoplytics/backend/internal/application/catalog"
	"github.com/shoplytics/backend/internal/domain/shared"
	"github.com/shoplytics/backend/internal/interfaces/http/dto"
	"go.uber.org/zap"
)

// ProductReader is the product service as seen by ProductHandler
type ProductReader interface {
	Summarize(ctx context.Context, filter catalogapp.ProductSummaryFilter) (*catalogapp.ProductSummaryResponse, error)
	GetByID(ctx context.Context, id int64) (*catalogapp.ProductDetailResponse, error)
}

// ProductHandler handles product analytics endpoints
type ProductHandler struct {
	BaseHandler
	products ProductReader
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(base BaseHandler, products ProductReader) *ProductHandler {
	return &ProductHandler{
		BaseHandler: base,
		products:    products,
	}
}

// Summary godoc
// @ID           getProductSummary
// @Summary      Product inventory summary
// @Description  Counts products matching the filters and lists products per brand and low stock products.
// @Description  Price and stock filters narrow total_products only. distinct_brands is present when no brand is given.
// @Tags         analytics
// @Accept       json
// @Produce      json
// @Param        brand     query string false "Brand, case-insensitive substring"
// @Param        min_price query number false "Minimum price"
// @Param        max_price query number false "Maximum price"
// @Param        min_stock query integer false "Minimum stock"
// @Param        max_stock query integer false "Maximum stock"
// @Success      200 {object} dto.ProductSummaryEnvelope
// @Failure      401 {object} dto.MessageResponse
// @Failure      422 {object} dto.ProductSummaryValidationResponse
// @Failure      429 {object} dto.MessageResponse
// @Failure      500 {object} dto.ProductSummaryErrorResponse
// @Security     BearerAuth
// @Router       /analytics/all_products [get]
// @Router       /analytics/all_products [post]
func (h *ProductHandler) Summary(c *gin.Context) {
	var req dto.ProductSummaryRequest
	if err := bindInput(c, &req); err != nil {
		if isMaxBytesError(err) {
			h.Message(c, http.StatusRequestEntityTooLarge, dto.MsgRequestTooLarge)
			return
		}
		h.summaryValidationFailed(c, validationErrors(err))
		return
	}

	filter, errs := req.ToFilter()
	if errs != nil {
		h.summaryValidationFailed(c, errs)
		return
	}

	summary, err := h.products.Summarize(c.Request.Context(), filter)
	if err != nil {
		h.logger(c).Error("Failed to fetch product summary", zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.ProductSummaryErrorResponse{
			Status:  false,
			Message: dto.MsgProductSummaryFailed,
			Error:   h.disclose(err),
		})
		return
	}

	c.JSON(http.StatusOK, dto.ProductSummaryEnvelope{
		Status:  true,
		Message: dto.MsgProductsSummary,
		Data:    summary,
	})
}

func (h *ProductHandler) summaryValidationFailed(c *gin.Context, errs dto.ValidationErrors) {
	h.logger(c).Warn("Invalid product summary filter", zap.Strings("fields", errs.Fields()))
	c.JSON(http.StatusUnprocessableEntity, dto.ProductSummaryValidationResponse{
		Status:  false,
		Message: dto.MsgValidationFailed,
		Errors:  errs,
	})
}

// GetByID godoc
// @ID           getProductByID
// @Summary      Get product by ID
// @Description  Returns a product with its total revenue and quantity sold
// @Tags         analytics
// @Produce      json
// @Param        id path integer true "Product ID"
// @Success      200 {object} dto.ProductDetailEnvelope
// @Failure      400 {object} dto.MessageResponse
// @Failure      401 {object} dto.MessageResponse
// @Failure      404 {object} dto.MessageResponse
// @Failure      500 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /analytics/products/{id} [get]
func (h *ProductHandler) GetByID(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	product, err := h.products.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			h.Message(c, http.StatusNotFound, dto.MsgProductNotFound)
			return
		}
		h.logger(c).Error("Failed to fetch product", zap.Int64("product_id", id), zap.Error(err))
		h.Failure(c, http.StatusInternalServerError, dto.MsgProductLookupFailed, err)
		return
	}

	c.JSON(http.StatusOK, dto.ProductDetailEnvelope{
		Status: dto.StatusSuccess,
		Data:   product,
	})
}
