package gateway

import (
	"context"

	"github.com/LakhiniVoshadee/litshelf-storefront/internal/domain"
)

// AddCartItemRequest is the body of POST /cart/add. The request is
// additive: the server merges it into the current cart and returns the
// full post-mutation cart.
type AddCartItemRequest struct {
	BookID   int64 `json:"bookId"`
	Quantity int   `json:"quantity"`
}

// GetCart fetches the authenticated user's cart.
func (c *Client) GetCart(ctx context.Context) (*domain.Cart, error) {
	var cart domain.Cart
	if err := c.get(ctx, "/cart", nil, &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

// AddCartItem sends an additive cart mutation and returns the server's
// authoritative post-mutation cart.
func (c *Client) AddCartItem(ctx context.Context, bookID int64, quantity int) (*domain.Cart, error) {
	var cart domain.Cart
	req := AddCartItemRequest{BookID: bookID, Quantity: quantity}
	if err := c.post(ctx, "/cart/add", req, &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}
