package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	partnerapp "github.com/shoplytics/backend/internal/application/partner"
	"github.com/shoplytics/backend/internal/domain/shared"
	"github.com/shoplytics/backend/internal/interfaces/http/dto"
	"go.uber.org/zap"
)

// CustomerReader is the customer service as seen by CustomerHandler
type CustomerReader interface {
	GetByID(ctx context.Context, id int64) (*partnerapp.CustomerDetailResponse, error)
}

// CustomerHandler handles customer lookups
type CustomerHandler struct {
	BaseHandler
	customers CustomerReader
}

// NewCustomerHandler creates a new CustomerHandler
func NewCustomerHandler(base BaseHandler, customers CustomerReader) *CustomerHandler {
	return &CustomerHandler{
		BaseHandler: base,
		customers:   customers,
	}
}

// GetByID godoc
// @ID           getCustomerByID
// @Summary      Get customer by ID
// @Description  Returns a customer with total spent and last order date
// @Tags         analytics
// @Produce      json
// @Param        id path integer true "Customer ID"
// @Success      200 {object} dto.CustomerDetailEnvelope
// @Failure      400 {object} dto.MessageResponse
// @Failure      401 {object} dto.MessageResponse
// @Failure      404 {object} dto.MessageResponse
// @Failure      500 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /analytics/customers/{id} [get]
func (h *CustomerHandler) GetByID(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	customer, err := h.customers.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			h.Message(c, http.StatusNotFound, dto.MsgCustomerNotFound)
			return
		}
		h.logger(c).Error("Failed to fetch customer", zap.Int64("customer_id", id), zap.Error(err))
		h.Failure(c, http.StatusInternalServerError, dto.MsgCustomerLookupFailed, err)
		return
	}

	c.JSON(http.StatusOK, dto.CustomerDetailEnvelope{
		Status: dto.StatusSuccess,
		Data:   customer,
	})
}
