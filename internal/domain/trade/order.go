package trade

import (
	"strconv"
	"strings"
	"time"

	"github.com/shoplytics/backend/internal/domain/catalog"
	"github.com/shoplytics/backend/internal/domain/partner"
	"github.com/shoplytics/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// DateLayout is the calendar-date format used for order dates
const DateLayout = "2006-01-02"

// Order is a single purchase of one product by one customer.
// Product and Customer are populated only when the repository loads them.
type Order struct {
	shared.BaseEntity
	CustomerID int64
	ProductID  int64
	Quantity   int
	TotalPrice decimal.Decimal
	OrderDate  time.Time
	Product    *catalog.Product
	Customer   *partner.Customer
}

// UnitPrice returns total price divided by quantity, or zero for a non-positive quantity
func (o *Order) UnitPrice() decimal.Decimal {
	if o.Quantity <= 0 {
		return decimal.Zero
	}
	return o.TotalPrice.Div(decimal.NewFromInt(int64(o.Quantity)))
}

// MaxSearchLength is the longest accepted order search token
const MaxSearchLength = 255

// SearchTerm is a parsed order search token.
// ID is set when the token is an integer literal and may match record ids exactly.
type SearchTerm struct {
	Text string
	ID   *int64
}

// NewSearchTerm builds a SearchTerm from raw user input
func NewSearchTerm(raw string) (SearchTerm, error) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return SearchTerm{}, shared.NewInvalidInputError("search term is required")
	}
	if len([]rune(text)) > MaxSearchLength {
		return SearchTerm{}, shared.NewInvalidInputError("search term must be at most 255 characters")
	}

	term := SearchTerm{Text: text}
	if id, err := strconv.ParseInt(text, 10, 64); err == nil {
		term.ID = &id
	}
	return term, nil
}
