// Package store holds the sample document model the shipped example
// rulesets map into. It doubles as the fixture model for the end-to-end
// tests.
package store

import "time"

// Order represents one purchase parsed from an order document.
type Order struct {
	ID         int64
	Status     OrderStatus
	TotalCents int64 // total in cents (minor currency unit) to avoid floating-point errors
	Customer   Customer
	Items      []OrderItem
	OrderedAt  time.Time
}

// Customer is the person placing the order.
type Customer struct {
	Email    string
	FullName string
	Active   bool
}

// OrderItem is a product line within an order, snapshotting the price at
// the time of purchase.
type OrderItem struct {
	SKU            string
	Quantity       int
	UnitPriceCents int64
}

// OrderStatus is a custom type for type-safe status handling.
type OrderStatus string

const (
	StatusPending   OrderStatus = "PENDING"
	StatusPaid      OrderStatus = "PAID"
	StatusShipped   OrderStatus = "SHIPPED"
	StatusCancelled OrderStatus = "CANCELLED"
)
