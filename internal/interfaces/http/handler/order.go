package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	tradeapp "github.com/shoplytics/backend/internal/application/trade"
	"github.com/shoplytics/backend/internal/domain/shared"
	"github.com/shoplytics/backend/internal/interfaces/http/dto"
	"go.uber.org/zap"
)

// OrderReader is the order service as seen by OrderHandler
type OrderReader interface {
	Search(ctx context.Context, raw string) ([]tradeapp.OrderResponse, error)
	Recent(ctx context.Context) ([]tradeapp.OrderResponse, error)
}

// OrderHandler handles order search endpoints
type OrderHandler struct {
	BaseHandler
	orders OrderReader
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(base BaseHandler, orders OrderReader) *OrderHandler {
	return &OrderHandler{
		BaseHandler: base,
		orders:      orders,
	}
}

// Search godoc
// @ID           searchOrders
// @Summary      Search orders
// @Description  A numeric token matches the order id exactly. Any token also matches product name or brand
// @Description  and customer name or email as a case-insensitive substring. Results are newest first.
// @Tags         analytics
// @Accept       json
// @Produce      json
// @Param        search query string true "Search token, at most 255 characters"
// @Success      200 {object} dto.OrderSearchResponse
// @Failure      401 {object} dto.MessageResponse
// @Failure      422 {object} dto.ValidationErrorResponse
// @Failure      429 {object} dto.MessageResponse
// @Failure      500 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /analytics/search-orders [get]
// @Router       /analytics/search-orders [post]
func (h *OrderHandler) Search(c *gin.Context) {
	var req dto.OrderSearchRequest
	if err := bindInput(c, &req); err != nil {
		if isMaxBytesError(err) {
			h.Message(c, http.StatusRequestEntityTooLarge, dto.MsgRequestTooLarge)
			return
		}
		h.ValidationFailed(c, validationErrors(err))
		return
	}

	search := req.Search.String()
	orders, err := h.orders.Search(c.Request.Context(), search)
	if err != nil {
		var domainErr *shared.DomainError
		if errors.Is(err, shared.ErrInvalidInput) && errors.As(err, &domainErr) {
			errs := dto.ValidationErrors{}
			errs.Add("search", domainErr.Message)
			h.ValidationFailed(c, errs)
			return
		}
		h.logger(c).Error("Failed to search orders", zap.String("search", search), zap.Error(err))
		h.Failure(c, http.StatusInternalServerError, dto.MsgSearchFailed, err)
		return
	}

	c.JSON(http.StatusOK, dto.OrderSearchResponse{
		Status:      dto.StatusSuccess,
		FiltersUsed: dto.SearchFilters{Search: search},
		Count:       len(orders),
		Data:        orders,
	})
}

// Recent godoc
// @ID           getRecentOrders
// @Summary      Recent orders
// @Description  Returns the ten newest orders with their product and customer
// @Tags         analytics
// @Produce      json
// @Success      200 {object} dto.RecentOrdersResponse
// @Failure      401 {object} dto.MessageResponse
// @Failure      429 {object} dto.MessageResponse
// @Failure      500 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /analytics/recent-orders [get]
func (h *OrderHandler) Recent(c *gin.Context) {
	orders, err := h.orders.Recent(c.Request.Context())
	if err != nil {
		h.logger(c).Error("Failed to fetch recent orders", zap.Error(err))
		h.Failure(c, http.StatusInternalServerError, dto.MsgRecentFailed, err)
		return
	}

	resp := dto.RecentOrdersResponse{
		Status:       dto.StatusSuccess,
		RecentOrders: orders,
	}
	if len(orders) == 0 {
		resp.Message = dto.MsgNoRecentOrders
		resp.RecentOrders = []tradeapp.OrderResponse{}
	}
	c.JSON(http.StatusOK, resp)
}
