package gateway

import (
	"context"

	"github.com/LakhiniVoshadee/litshelf-storefront/internal/domain"
)

// PlaceOrder places an order for the authenticated user's current cart.
// No body: the server derives the user from the bearer token and is
// solely responsible for pricing, stock decrement and cart clearing.
// The call carries no idempotency key, so it is never retried here.
func (c *Client) PlaceOrder(ctx context.Context) (*domain.Order, error) {
	var order domain.Order
	if err := c.post(ctx, "/orders/place", nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}
