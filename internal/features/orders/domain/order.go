package domain

import (
	"time"

	addressdomain "storefront-client/internal/features/addresses/domain"
	productdomain "storefront-client/internal/features/products/domain"
)

// OrderStatus is the fulfilment state of an order as reported by the server.
type OrderStatus string

const (
	StatusPending        OrderStatus = "Pending"
	StatusDispatched     OrderStatus = "Dispatched"
	StatusOutForDelivery OrderStatus = "Out for delivery"
	StatusDelivered      OrderStatus = "Delivered"
	StatusCancelled      OrderStatus = "Cancelled"
)

// OrderItem is one line of an order. Unlike a cart line it embeds a snapshot
// of the product as it was priced at purchase time, so later catalog edits
// never rewrite order history.
type OrderItem struct {
	// Product is the point-of-sale product snapshot.
	Product productdomain.Product `json:"product"`
	// Quantity is the purchased unit count.
	Quantity int `json:"quantity"`
}

// Order is a placed order.
type Order struct {
	// ID is the server-assigned identifier.
	ID string `json:"_id"`
	// UserID references the purchasing user.
	UserID string `json:"user"`
	// Items are the purchased lines.
	Items []OrderItem `json:"item"`
	// Address is the shipping address snapshot.
	Address addressdomain.Address `json:"address"`
	// PaymentMode records how the order was paid, e.g. "COD" or "CARD".
	PaymentMode string `json:"paymentMode"`
	// Total is the charged amount including delivery.
	Total float64 `json:"total"`
	// Status is the current fulfilment state.
	Status OrderStatus `json:"status"`
	// CreatedAt is the server-side creation timestamp.
	CreatedAt time.Time `json:"createdAt"`
}

// OrderInput carries an order submission.
type OrderInput struct {
	UserID      string                `json:"user" validate:"required"`
	Items       []OrderItem           `json:"item" validate:"required,min=1"`
	Address     addressdomain.Address `json:"address" validate:"required"`
	PaymentMode string                `json:"paymentMode" validate:"required,oneof=COD CARD"`
	Total       float64               `json:"total" validate:"gte=0"`
}

// StatusPatch carries an admin status change.
type StatusPatch struct {
	Status OrderStatus `json:"status" validate:"required,oneof=Pending Dispatched 'Out for delivery' Delivered Cancelled"`
}
