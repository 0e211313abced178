package domain

import "time"

// OrderStatus is the server-assigned lifecycle state of an order. The
// client never infers a status, it displays what the server returned.
type OrderStatus string

const (
	OrderPendingPayment OrderStatus = "pending_payment"
	OrderPaid           OrderStatus = "paid"
	OrderShipped        OrderStatus = "shipped"
	OrderDelivered      OrderStatus = "delivered"
	OrderCancelled      OrderStatus = "cancelled"
)

// OrderItem mirrors CartItem at the moment the order was placed.
type OrderItem struct {
	BookID   int64 `json:"bookId"`
	Quantity int   `json:"quantity"`
}

// Order is created by a single place-order call that consumes the current
// cart server-side. Pricing, stock decrement and cart clearing are the
// server's responsibility.
type Order struct {
	OrderID   int64       `json:"orderId"`
	UserID    int64       `json:"userId"`
	Items     []OrderItem `json:"items"`
	TotalCost float64     `json:"totalCost"`
	Currency  string      `json:"currency"`
	Status    OrderStatus `json:"status"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}
