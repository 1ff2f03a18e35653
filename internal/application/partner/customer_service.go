package partner

import (
	"context"
	"fmt"

	"github.com/shoplytics/backend/internal/domain/partner"
)

// CustomerService answers customer lookups
type CustomerService struct {
	customerRepo partner.CustomerRepository
}

// NewCustomerService creates a new CustomerService
func NewCustomerService(customerRepo partner.CustomerRepository) *CustomerService {
	return &CustomerService{customerRepo: customerRepo}
}

// GetByID returns a customer with total spent and last order date.
// A missing customer yields shared.ErrNotFound.
func (s *CustomerService) GetByID(ctx context.Context, id int64) (*CustomerDetailResponse, error) {
	customer, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	stats, err := s.customerRepo.GetStats(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load stats for customer %d: %w", id, err)
	}

	resp := &CustomerDetailResponse{
		Customer:   ToCustomerResponse(customer),
		TotalSpent: stats.TotalSpent,
	}
	if stats.LastOrderDate != nil {
		last := stats.LastOrderDate.Format(DateLayout)
		resp.LastOrderDate = &last
	}
	return resp, nil
}
