package trade

import "context"

// DefaultRecentLimit is how many orders the recent-orders listing returns.
const DefaultRecentLimit = 10

// OrderRepository reads orders together with their product and customer.
type OrderRepository interface {
	// Search returns orders whose product or customer matches term, newest first.
	Search(ctx context.Context, term SearchTerm) ([]Order, error)
	// FindRecent returns at most limit orders by order date descending.
	// A non-positive limit falls back to DefaultRecentLimit.
	FindRecent(ctx context.Context, limit int) ([]Order, error)
}
