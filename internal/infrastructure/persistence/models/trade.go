package models

import (
	"time"

	"github.com/shoplytics/backend/internal/domain/trade"
	"github.com/shopspring/decimal"
)

// OrderModel is the persistence model for the Order domain entity.
type OrderModel struct {
	BaseModel
	CustomerID int64           `gorm:"not null;index"`
	ProductID  int64           `gorm:"not null;index"`
	Quantity   int             `gorm:"not null"`
	TotalPrice decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	OrderDate  time.Time       `gorm:"type:date;not null;index"`
	Product    *ProductModel   `gorm:"foreignKey:ProductID"`
	Customer   *CustomerModel  `gorm:"foreignKey:CustomerID"`
}

// TableName returns the table name for GORM
func (OrderModel) TableName() string {
	return "orders"
}

// ToDomain converts the persistence model to a domain Order entity,
// including the product and customer when they were preloaded.
func (m *OrderModel) ToDomain() *trade.Order {
	o := &trade.Order{
		BaseEntity: m.BaseModel.ToDomain(),
		CustomerID: m.CustomerID,
		ProductID:  m.ProductID,
		Quantity:   m.Quantity,
		TotalPrice: m.TotalPrice,
		OrderDate:  m.OrderDate,
	}
	if m.Product != nil {
		o.Product = m.Product.ToDomain()
	}
	if m.Customer != nil {
		o.Customer = m.Customer.ToDomain()
	}
	return o
}

// FromDomain populates the persistence model from a domain Order entity.
// Associations are not copied; they are written through their own models.
func (m *OrderModel) FromDomain(o *trade.Order) {
	m.FromDomainBaseEntity(o.BaseEntity)
	m.CustomerID = o.CustomerID
	m.ProductID = o.ProductID
	m.Quantity = o.Quantity
	m.TotalPrice = o.TotalPrice
	m.OrderDate = o.OrderDate
}

// OrderModelFromDomain creates a new persistence model from domain entity
func OrderModelFromDomain(o *trade.Order) *OrderModel {
	m := &OrderModel{}
	m.FromDomain(o)
	return m
}

// AllModels lists every persistence model, in dependency order, for AutoMigrate in tests
func AllModels() []any {
	return []any{
		&ProductModel{},
		&CustomerModel{},
		&OrderModel{},
	}
}
