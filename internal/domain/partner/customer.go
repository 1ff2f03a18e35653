package partner

import (
	"time"

	"github.com/shoplytics/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Customer represents a buyer. Email is unique across customers.
type Customer struct {
	shared.BaseEntity
	Name  string
	Email string
}

// CustomerStats holds figures derived from a customer's orders.
// LastOrderDate is nil when the customer has never ordered.
type CustomerStats struct {
	TotalSpent    decimal.Decimal
	LastOrderDate *time.Time
}
