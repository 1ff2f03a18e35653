package persistence

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// likeEscaper escapes LIKE wildcards so user input is matched literally
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds a lower-cased LIKE pattern matching s anywhere in a value
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(s)) + "%"
}

// containsClause returns a case-insensitive substring condition on column
func containsClause(column string) string {
	return "LOWER(" + column + `) LIKE ? ESCAPE '\'`
}

// ProductsLowStock keeps products with stock strictly below threshold
func ProductsLowStock(threshold int) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("products.stock < ?", threshold)
	}
}

// ProductsBrandContains keeps products whose brand contains brand, ignoring case.
// An empty brand leaves the query unchanged.
func ProductsBrandContains(brand string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if strings.TrimSpace(brand) == "" {
			return db
		}
		return db.Where(containsClause("products.brand"), containsPattern(brand))
	}
}

// OrdersBetweenDates keeps orders placed on any day from start to end inclusive
func OrdersBetweenDates(start, end time.Time) func(*gorm.DB) *gorm.DB {
	from := truncateToDay(start)
	until := truncateToDay(end).AddDate(0, 0, 1)
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("orders.order_date >= ? AND orders.order_date < ?", from, until)
	}
}

// OrdersForProduct keeps orders of one product
func OrdersForProduct(productID int64) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("orders.product_id = ?", productID)
	}
}

// OrdersForCustomer keeps orders of one customer
func OrdersForCustomer(customerID int64) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("orders.customer_id = ?", customerID)
	}
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
