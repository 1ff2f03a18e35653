package router

import (
	"net/http"

	"github.com/shoplytics/backend/internal/interfaces/http/handler"
)

// AnalyticsHandlers are the handlers mounted under /analytics
type AnalyticsHandlers struct {
	Product  *handler.ProductHandler
	Order    *handler.OrderHandler
	Report   *handler.ReportHandler
	Customer *handler.CustomerHandler
}

var getAndPost = []string{http.MethodGet, http.MethodPost}

// NewAnalyticsRoutes builds the analytics route group
func NewAnalyticsRoutes(h AnalyticsHandlers) *DomainGroup {
	g := NewDomainGroup("/analytics")

	g.Match(getAndPost, "/all_products", h.Product.Summary)
	g.Match(getAndPost, "/search-orders", h.Order.Search)
	g.Match(getAndPost, "/sales-summary", h.Report.SalesSummary)
	g.GET("/recent-orders", h.Order.Recent)
	g.GET("/products/:id", h.Product.GetByID)
	g.GET("/customers/:id", h.Customer.GetByID)

	return g
}
