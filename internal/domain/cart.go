package domain

import "time"

// CartItem is one line of a cart. Quantity bounds are enforced by the
// server; the client displays whatever the server returns.
type CartItem struct {
	BookID   int64 `json:"bookId"`
	Quantity int   `json:"quantity"`
}

// Cart is the server-owned shopping cart, one per authenticated user.
// The client never computes a cart locally: every mutation round-trips
// and the whole cart is replaced with the server's response.
type Cart struct {
	ID        string     `json:"id"`
	UserID    int64      `json:"userId"`
	Items     []CartItem `json:"items"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// ItemCount returns the total quantity across all lines.
func (c *Cart) ItemCount() int {
	total := 0
	for _, item := range c.Items {
		total += item.Quantity
	}
	return total
}

// Quantity returns the quantity for bookID, zero when absent.
func (c *Cart) Quantity(bookID int64) int {
	for _, item := range c.Items {
		if item.BookID == bookID {
			return item.Quantity
		}
	}
	return 0
}
