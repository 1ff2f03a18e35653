package dto

import (
	catalogapp "github.com/shoplytics/backend/internal/application/catalog"
	partnerapp "github.com/shoplytics/backend/internal/application/partner"
	tradeapp "github.com/shoplytics/backend/internal/application/trade"
)

// MessageResponse is a bare status and message, used for 401, 404 and 429
// @Description Status and message
type MessageResponse struct {
	Status  string `json:"status" example:"error"`
	Message string `json:"message" example:"Token is invalid"`
}

// ErrorResponse is a failure with an optional underlying error.
// Error is null unless the server runs in debug mode.
// @Description Failure envelope
type ErrorResponse struct {
	Status  string  `json:"status" example:"error"`
	Message string  `json:"message" example:"Failed to fetch orders"`
	Error   *string `json:"error"`
}

// ValidationErrorResponse carries per-field validation messages
// @Description Validation failure envelope
type ValidationErrorResponse struct {
	Status  string           `json:"status" example:"error"`
	Message string           `json:"message" example:"Validation failed"`
	Errors  ValidationErrors `json:"errors"`
}

// ProductSummaryEnvelope wraps the product summary. Its status is a boolean.
// @Description Product summary envelope
type ProductSummaryEnvelope struct {
	Status  bool                               `json:"status" example:"true"`
	Message string                             `json:"message" example:"Products summary fetched"`
	Data    *catalogapp.ProductSummaryResponse `json:"data"`
}

// ProductSummaryErrorResponse is the product summary failure envelope
// @Description Product summary failure
type ProductSummaryErrorResponse struct {
	Status  bool    `json:"status" example:"false"`
	Message string  `json:"message" example:"Failed to fetch product summary"`
	Error   *string `json:"error"`
}

// ProductSummaryValidationResponse is the product summary validation envelope
// @Description Product summary validation failure
type ProductSummaryValidationResponse struct {
	Status  bool             `json:"status" example:"false"`
	Message string           `json:"message" example:"Validation failed"`
	Errors  ValidationErrors `json:"errors"`
}

// OrderSearchResponse lists the orders matching a search token
// @Description Order search result
type OrderSearchResponse struct {
	Status      string                   `json:"status" example:"success"`
	FiltersUsed SearchFilters            `json:"filters_used"`
	Count       int                      `json:"count" example:"2"`
	Data        []tradeapp.OrderResponse `json:"data"`
}

// SalesSummaryResponse wraps a sales report. Summary is a FullReportResponse
// for type=full, a list of product aggregates for type=product and a list of
// customer sales for type=user.
// @Description Sales report envelope
type SalesSummaryResponse struct {
	Status  string `json:"status" example:"success"`
	Summary any    `json:"summary"`
}

// RecentOrdersResponse lists the latest orders
// @Description Recent orders
type RecentOrdersResponse struct {
	Status       string                   `json:"status" example:"success"`
	Message      string                   `json:"message,omitempty"`
	RecentOrders []tradeapp.OrderResponse `json:"recent_orders"`
}

// ProductDetailEnvelope wraps a product lookup
// @Description Product with sales figures
type ProductDetailEnvelope struct {
	Status string                            `json:"status" example:"success"`
	Data   *catalogapp.ProductDetailResponse `json:"data"`
}

// CustomerDetailEnvelope wraps a customer lookup
// @Description Customer with spending figures
type CustomerDetailEnvelope struct {
	Status string                             `json:"status" example:"success"`
	Data   *partnerapp.CustomerDetailResponse `json:"data"`
}

// HealthResponse reports service liveness
// @Description Health check
type HealthResponse struct {
	Status   string     `json:"status" example:"ok"`
	Database string     `json:"database" example:"ok"`
	Pool     *PoolStats `json:"pool,omitempty"`
}

// PoolStats is a snapshot of the database connection pool
type PoolStats struct {
	MaxOpen      int    `json:"max_open_connections" example:"25"`
	Open         int    `json:"open_connections" example:"3"`
	InUse        int    `json:"in_use" example:"1"`
	Idle         int    `json:"idle" example:"2"`
	WaitCount    int64  `json:"wait_count" example:"0"`
	WaitDuration string `json:"wait_duration" example:"0s"`
}
