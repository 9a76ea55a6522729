package models

import "github.com/shopspring/decimal"

type OrderStatus string

const (
	OrderStatusProcessing     OrderStatus = "Processing"
	OrderStatusShipped        OrderStatus = "Shipped"
	OrderStatusOutForDelivery OrderStatus = "Out for Delivery"
	OrderStatusDelivered      OrderStatus = "Delivered"
)

// Next returns the forward-only successor status. The terminal status maps to
// itself.
func (s OrderStatus) Next() OrderStatus {
	switch s {
	case OrderStatusProcessing:
		return OrderStatusShipped
	case OrderStatusShipped:
		return OrderStatusOutForDelivery
	case OrderStatusOutForDelivery:
		return OrderStatusDelivered
	default:
		return s
	}
}

type OrderItem struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Size      string          `json:"size"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// Order is an immutable checkout snapshot. Items are deep-copied at creation
// so later cart mutations never reach order history.
type Order struct {
	ID     string          `json:"id"`
	Date   string          `json:"date"`
	Items  []OrderItem     `json:"items"`
	Total  decimal.Decimal `json:"total"`
	Status OrderStatus     `json:"status"`
}

type PaymentMethod string

const (
	PaymentMethodCOD PaymentMethod = "COD"
	PaymentMethodUPI PaymentMethod = "UPI"
)

// BuyNowRequest is the single-item checkout from the product detail view. It
// carries its own delivery details and payment choice; the cart is not
// involved.
type BuyNowRequest struct {
	ProductID     string        `json:"product_id" validate:"required"`
	Size          string        `json:"size" validate:"required"`
	PaymentMethod PaymentMethod `json:"payment_method" validate:"required,oneof=COD UPI"`
	Name          string        `json:"name" validate:"required"`
	Phone         string        `json:"phone" validate:"required,numeric,min=10"`
	Address       string        `json:"address" validate:"required"`
}

type OrderResponse struct {
	Order *Order `json:"order"`
}

type OrderHistoryResponse struct {
	Orders []Order `json:"orders"`
	Total  int     `json:"total"`
}
