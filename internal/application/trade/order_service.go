package trade

import (
	"context"
	"fmt"

	"github.com/shoplytics/backend/internal/domain/trade"
	"github.com/shoplytics/backend/internal/infrastructure/telemetry"
)

// OrderService handles order search and the recent orders listing
type OrderService struct {
	orderRepo trade.OrderRepository
}

// NewOrderService creates a new OrderService
func NewOrderService(orderRepo trade.OrderRepository) *OrderService {
	return &OrderService{orderRepo: orderRepo}
}

// Search finds orders matching a free text token.
// A blank or over-long token yields shared.ErrInvalidInput.
func (s *OrderService) Search(ctx context.Context, raw string) ([]OrderResponse, error) {
	term, err := trade.NewSearchTerm(raw)
	if err != nil {
		return nil, err
	}

	ctx, span := telemetry.StartServiceSpan(ctx, "order", "search", "search.numeric", term.ID != nil)
	defer span.End()

	orders, err := s.orderRepo.Search(ctx, term)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, fmt.Errorf("failed to search orders: %w", err)
	}

	telemetry.SetAttributes(span, "result.count", len(orders))
	return ToOrderResponses(orders), nil
}

// Recent returns the newest orders, at most trade.DefaultRecentLimit
func (s *OrderService) Recent(ctx context.Context) ([]OrderResponse, error) {
	orders, err := s.orderRepo.FindRecent(ctx, trade.DefaultRecentLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent orders: %w", err)
	}
	return ToOrderResponses(orders), nil
}
