package trade

import (
	"time"

	catalogapp "github.com/shoplytics/backend/internal/application/catalog"
	partnerapp "github.com/shoplytics/backend/internal/application/partner"
	"github.com/shoplytics/backend/internal/domain/trade"
	"github.com/shopspring/decimal"
)

// OrderResponse represents an order with its product and customer
type OrderResponse struct {
	ID         int64                        `json:"id"`
	CustomerID int64                        `json:"customer_id"`
	ProductID  int64                        `json:"product_id"`
	Quantity   int                          `json:"quantity"`
	TotalPrice decimal.Decimal              `json:"total_price"`
	UnitPrice  decimal.Decimal              `json:"unit_price"`
	OrderDate  string                       `json:"order_date"`
	CreatedAt  time.Time                    `json:"created_at"`
	UpdatedAt  time.Time                    `json:"updated_at"`
	Product    *catalogapp.ProductResponse  `json:"product"`
	Customer   *partnerapp.CustomerResponse `json:"customer"`
}

// ToOrderResponse converts a domain Order to OrderResponse
func ToOrderResponse(o *trade.Order) OrderResponse {
	resp := OrderResponse{
		ID:         o.ID,
		CustomerID: o.CustomerID,
		ProductID:  o.ProductID,
		Quantity:   o.Quantity,
		TotalPrice: o.TotalPrice,
		UnitPrice:  o.UnitPrice().Round(2),
		OrderDate:  o.OrderDate.Format(trade.DateLayout),
		CreatedAt:  o.CreatedAt,
		UpdatedAt:  o.UpdatedAt,
	}
	if o.Product != nil {
		p := catalogapp.ToProductResponse(o.Product)
		resp.Product = &p
	}
	if o.Customer != nil {
		c := partnerapp.ToCustomerResponse(o.Customer)
		resp.Customer = &c
	}
	return resp
}

// ToOrderResponses converts orders, always returning a non-nil slice
func ToOrderResponses(orders []trade.Order) []OrderResponse {
	out := make([]OrderResponse, len(orders))
	for i := range orders {
		out[i] = ToOrderResponse(&orders[i])
	}
	return out
}
