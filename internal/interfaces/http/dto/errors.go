package dto

import "sort"

// Response status values
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Envelope messages returned to clients
const (
	MsgValidationFailed     = "Validation failed"
	MsgProductsSummary      = "Products summary fetched"
	MsgProductSummaryFailed = "Failed to fetch product summary"
	MsgSearchFailed         = "Failed to fetch orders"
	MsgRecentFailed         = "Failed to fetch recent orders"
	MsgNoRecentOrders       = "No recent orders found"
	MsgInvalidFilter        = "Invalid input or filter."
	MsgReportFailed         = "Failed to generate sales report"
	MsgReportUnexpected     = "Unexpected error occurred while generating report."
	MsgProductNotFound      = "Product not found"
	MsgCustomerNotFound     = "Customer not found"
	MsgProductLookupFailed  = "Failed to fetch product"
	MsgCustomerLookupFailed = "Failed to fetch customer"
	MsgInvalidID            = "The id must be an integer."
	MsgTooManyAttempts      = "Too Many Attempts."
	MsgRequestTooLarge      = "Request body too large."
	MsgInternalServerError  = "Internal server error"
	MsgServiceUnavailable   = "Service unavailable"
	MsgTokenNotProvided     = "Authorization token not found"
	MsgTokenInvalid         = "Token is invalid"
	MsgTokenExpired         = "Token has expired"
	MsgTokenNotYetValid     = "Token is not yet valid"
	MsgTokenRevoked         = "Token has been revoked"
	MsgSessionInvalidated   = "User session has been invalidated"
	MsgBearerRequired       = "Authorization header must use the Bearer scheme"
)

// ValidationErrors maps a field name to its validation messages,
// serialized as errors: {field: [messages]}
type ValidationErrors map[string][]string

// Add appends a message for field
func (v ValidationErrors) Add(field, message string) {
	v[field] = append(v[field], message)
}

// Fields returns the failing field names in sorted order
func (v ValidationErrors) Fields() []string {
	fields := make([]string, 0, len(v))
	for f := range v {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fields
}

// Disclose returns the error message when debug is on, and nil otherwise.
// The result fills the error field of failure envelopes.
func Disclose(err error, debug bool) *string {
	if err == nil || !debug {
		return nil
	}
	msg := err.Error()
	return &msg
}
