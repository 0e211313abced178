package state

import (
	"context"
	"sync"

	"github.com/LakhiniVoshadee/litshelf-storefront/internal/domain"
)

// CartAPI is the slice's view of the gateway.
type CartAPI interface {
	GetCart(ctx context.Context) (*domain.Cart, error)
	AddCartItem(ctx context.Context, bookID int64, quantity int) (*domain.Cart, error)
}

// CartState keeps the displayed cart consistent with server state. The
// local cart is only ever replaced wholesale with a server response,
// never incremented speculatively, so server-side business rules the
// client doesn't know about (stock clamping, merging) can't cause
// divergence.
//
// Concurrent mutations are all sent; each response carries the sequence
// number assigned when its request started, and a response is applied
// only if it is newer than the last applied one. Stale responses are
// discarded rather than overwriting fresher state.
type CartState struct {
	api CartAPI

	mu          sync.Mutex
	cart        *domain.Cart
	inFlight    int
	err         error
	nextSeq     uint64
	lastApplied uint64
}

// NewCartState creates a cart slice over api.
func NewCartState(api CartAPI) *CartState {
	return &CartState{api: api}
}

// Fetch replaces the local cart wholesale with the server's. On failure
// the prior cart stays displayed and the error is surfaced.
func (s *CartState) Fetch(ctx context.Context) error {
	seq := s.begin()
	cart, err := s.api.GetCart(ctx)
	return s.finish(seq, cart, err)
}

// AddItem sends an additive mutation and applies the server's
// authoritative post-mutation cart. A rejected add leaves the previous
// cart displayed; it is never retried automatically.
func (s *CartState) AddItem(ctx context.Context, bookID int64, quantity int) error {
	if quantity < 1 {
		return domain.ErrOutOfStock
	}
	seq := s.begin()
	cart, err := s.api.AddCartItem(ctx, bookID, quantity)
	return s.finish(seq, cart, err)
}

// ClearLocally drops the just-consumed cart from the view without a
// round trip. Only valid after a successful order placement, when the
// server has already emptied the cart as part of placing the order.
func (s *CartState) ClearLocally() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextSeq++
	s.lastApplied = s.nextSeq
	if s.cart != nil {
		empty := *s.cart
		empty.Items = nil
		s.cart = &empty
	} else {
		s.cart = &domain.Cart{}
	}
	s.err = nil
}

func (s *CartState) begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inFlight++
	s.nextSeq++
	return s.nextSeq
}

func (s *CartState) finish(seq uint64, cart *domain.Cart, err error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inFlight--
	if err != nil {
		s.err = err
		return err
	}
	if seq > s.lastApplied {
		s.cart = cart
		s.lastApplied = seq
		s.err = nil
	}
	return nil
}

// Cart returns a copy of the displayed cart, nil before the first
// successful fetch.
func (s *CartState) Cart() *domain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cart == nil {
		return nil
	}
	c := *s.cart
	c.Items = make([]domain.CartItem, len(s.cart.Items))
	copy(c.Items, s.cart.Items)
	return &c
}

// ItemCount returns the displayed cart's total quantity.
func (s *CartState) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cart == nil {
		return 0
	}
	return s.cart.ItemCount()
}

// Loading reports whether a cart call is in flight.
func (s *CartState) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inFlight > 0
}

// Err returns the surfaced error, nil after a success or dismissal.
func (s *CartState) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// DismissError clears the surfaced error without touching the cart.
func (s *CartState) DismissError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = nil
}
