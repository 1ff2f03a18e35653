package partner

import (
	"context"
)

// CustomerRepository defines read access to customers
type CustomerRepository interface {
	// FindByID finds a customer by its ID
	FindByID(ctx context.Context, id int64) (*Customer, error)

	// GetStats returns the total spent and the most recent order date of a customer
	GetStats(ctx context.Context, id int64) (*CustomerStats, error)
}
