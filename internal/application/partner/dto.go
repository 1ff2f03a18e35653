package partner

import (
	"time"

	"github.com/shoplytics/backend/internal/domain/partner"
	"github.com/shopspring/decimal"
)

// DateLayout formats calendar dates in responses
const DateLayout = "2006-01-02"

// CustomerResponse represents a customer in API responses
type CustomerResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CustomerDetailResponse is a customer with lifetime spending.
// LastOrderDate is null for a customer without orders.
type CustomerDetailResponse struct {
	Customer      CustomerResponse `json:"customer"`
	TotalSpent    decimal.Decimal  `json:"total_spent"`
	LastOrderDate *string          `json:"last_order_date"`
}

// ToCustomerResponse converts a domain Customer to CustomerResponse
func ToCustomerResponse(c *partner.Customer) CustomerResponse {
	return CustomerResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
