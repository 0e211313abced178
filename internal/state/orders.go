package state

import (
	"context"
	"errors"
	"sync"

	"github.com/LakhiniVoshadee/litshelf-storefront/internal/domain"
)

// ErrPlacementInFlight rejects a second placement while one is pending.
// The place-order call has no idempotency key in the external contract,
// so a duplicate submission could create two orders server-side; the
// slice at least refuses to start one while another is in flight.
var ErrPlacementInFlight = errors.New("an order placement is already in progress")

// OrdersAPI is the slice's view of the gateway.
type OrdersAPI interface {
	PlaceOrder(ctx context.Context) (*domain.Order, error)
}

// CartClearer is the one cart operation order placement needs.
type CartClearer interface {
	ClearLocally()
}

// OrderState owns the single irreversible transition from cart to
// order. On success the returned order becomes the current order and
// joins the history, and the cart is dropped locally (the server
// already emptied it). On failure the current order is untouched and
// the user must retry manually; there is no automatic retry.
type OrderState struct {
	api  OrdersAPI
	cart CartClearer

	mu      sync.Mutex
	history []domain.Order
	current *domain.Order
	placing bool
	err     error
}

// NewOrderState creates an order slice over api. cart may be nil in
// tests that don't exercise the cart handoff.
func NewOrderState(api OrdersAPI, cart CartClearer) *OrderState {
	return &OrderState{api: api, cart: cart}
}

// Place places an order for the current authenticated user's cart.
func (s *OrderState) Place(ctx context.Context) (*domain.Order, error) {
	s.mu.Lock()
	if s.placing {
		s.mu.Unlock()
		return nil, ErrPlacementInFlight
	}
	s.placing = true
	s.err = nil
	s.mu.Unlock()

	order, err := s.api.PlaceOrder(ctx)

	s.mu.Lock()
	s.placing = false
	if err != nil {
		s.err = err
		s.mu.Unlock()
		return nil, err
	}
	s.current = order
	s.history = append(s.history, *order)
	s.mu.Unlock()

	if s.cart != nil {
		s.cart.ClearLocally()
	}
	return order, nil
}

// Current returns the most recent successfully placed order, nil if
// none.
func (s *OrderState) Current() *domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil
	}
	o := *s.current
	return &o
}

// ClearCurrent drops the current order from the view, keeping history.
func (s *OrderState) ClearCurrent() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
}

// History returns a copy of all orders placed this session.
func (s *OrderState) History() []domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Order, len(s.history))
	copy(out, s.history)
	return out
}

// Placing reports whether a placement is in flight.
func (s *OrderState) Placing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.placing
}

// Err returns the surfaced error, nil after a success or dismissal.
func (s *OrderState) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// DismissError clears the surfaced error.
func (s *OrderState) DismissError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = nil
}
