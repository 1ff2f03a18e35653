// Package handler implements the analytics HTTP endpoints.
package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/shoplytics/backend/internal/infrastructure/logger"
	"github.com/shoplytics/backend/internal/interfaces/http/dto"
	"github.com/shoplytics/backend/internal/interfaces/http/middleware"
	"go.uber.org/zap"
)

// BaseHandler provides common handler utilities
type BaseHandler struct {
	log   *zap.Logger
	debug bool
}

// NewBaseHandler creates a BaseHandler. In debug mode failure envelopes
// carry the underlying error message.
func NewBaseHandler(log *zap.Logger, debug bool) BaseHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return BaseHandler{log: log, debug: debug}
}

// logger returns a logger tagged with the request's id, principal and trace
func (h *BaseHandler) logger(c *gin.Context) *logger.ContextLogger {
	return logger.WithLogger(c.Request.Context(), h.log)
}

// disclose returns the error message for the envelope's error field
func (h *BaseHandler) disclose(err error) *string {
	return dto.Disclose(err, h.debug)
}

// Message sends a bare status and message envelope
func (h *BaseHandler) Message(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.MessageResponse{
		Status:  dto.StatusError,
		Message: message,
	})
}

// Failure sends an error envelope with the disclosed cause
func (h *BaseHandler) Failure(c *gin.Context, statusCode int, message string, err error) {
	c.JSON(statusCode, dto.ErrorResponse{
		Status:  dto.StatusError,
		Message: message,
		Error:   h.disclose(err),
	})
}

// ValidationFailed sends a 422 envelope with per-field messages
func (h *BaseHandler) ValidationFailed(c *gin.Context, errs dto.ValidationErrors) {
	c.JSON(http.StatusUnprocessableEntity, dto.ValidationErrorResponse{
		Status:  dto.StatusError,
		Message: dto.MsgValidationFailed,
		Errors:  errs,
	})
}

// bindInput fills req from the query string and, for POST requests, the body.
// JSON bodies are layered over the query string; form bodies are merged with
// it by gin. Validation tags run once over the merged input.
func bindInput(c *gin.Context, req any) error {
	if c.Request.Method == http.MethodPost && isJSONBody(c) {
		if err := binding.MapFormWithTag(req, c.Request.URL.Query(), "form"); err != nil {
			return err
		}
		return c.ShouldBindJSON(req)
	}
	return c.ShouldBindWith(req, binding.Form)
}

func isJSONBody(c *gin.Context) bool {
	if c.Request.ContentLength == 0 {
		return false
	}
	return strings.HasPrefix(c.ContentType(), binding.MIMEJSON)
}

// bindID parses the :id path parameter. Non-integer ids fail with 400.
func (h *BaseHandler) bindID(c *gin.Context) (int64, bool) {
	var req dto.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		h.Message(c, http.StatusBadRequest, dto.MsgInvalidID)
		return 0, false
	}
	id, err := req.Int64()
	if err != nil {
		h.Message(c, http.StatusBadRequest, dto.MsgInvalidID)
		return 0, false
	}
	return id, true
}

// validationErrors formats a binding failure as per-field messages
func validationErrors(err error) dto.ValidationErrors {
	return middleware.FormatValidationErrors(err)
}

// isMaxBytesError reports whether the body exceeded the configured limit
func isMaxBytesError(err error) bool {
	var maxErr *http.MaxBytesError
	return errors.As(err, &maxErr)
}
