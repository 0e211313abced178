package state

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LakhiniVoshadee/litshelf-storefront/internal/domain"
)

type ordersAPIMock struct {
	placeOrder func(ctx context.Context) (*domain.Order, error)
}

func (m *ordersAPIMock) PlaceOrder(ctx context.Context) (*domain.Order, error) {
	return m.placeOrder(ctx)
}

type cartClearerMock struct {
	mu      sync.Mutex
	cleared int
}

func (m *cartClearerMock) ClearLocally() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cleared++
}

func (m *cartClearerMock) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cleared
}

func TestPlace_Success(t *testing.T) {
	api := &ordersAPIMock{placeOrder: func(context.Context) (*domain.Order, error) {
		return &domain.Order{OrderID: 101, TotalCost: 29.98, Status: domain.OrderPendingPayment}, nil
	}}
	cart := &cartClearerMock{}
	s := NewOrderState(api, cart)

	order, err := s.Place(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(101), order.OrderID)

	require.NotNil(t, s.Current())
	assert.Equal(t, int64(101), s.Current().OrderID)
	assert.Len(t, s.History(), 1)
	assert.Equal(t, 1, cart.count(), "a placed order consumes the cart")
	assert.NoError(t, s.Err())
}

func TestPlace_FailureLeavesEverythingUntouched(t *testing.T) {
	api := &ordersAPIMock{placeOrder: func(context.Context) (*domain.Order, error) {
		return nil, errors.New("cart is empty")
	}}
	cart := &cartClearerMock{}
	s := NewOrderState(api, cart)

	_, err := s.Place(context.Background())
	require.Error(t, err)

	assert.Nil(t, s.Current())
	assert.Empty(t, s.History())
	assert.Equal(t, 0, cart.count(), "a failed placement must not drop the cart")
	assert.Error(t, s.Err())
	assert.False(t, s.Placing())
}

// Only one placement may be in flight. Without an idempotency key in
// the contract, the guard is the only thing between a double submit and
// a double order.
func TestPlace_RejectsConcurrentPlacement(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	api := &ordersAPIMock{placeOrder: func(context.Context) (*domain.Order, error) {
		close(started)
		<-release
		return &domain.Order{OrderID: 101}, nil
	}}
	s := NewOrderState(api, nil)

	done := make(chan error, 1)
	go func() {
		_, err := s.Place(context.Background())
		done <- err
	}()
	<-started

	assert.True(t, s.Placing())
	_, err := s.Place(context.Background())
	assert.ErrorIs(t, err, ErrPlacementInFlight)

	close(release)
	require.NoError(t, <-done)
	assert.Len(t, s.History(), 1, "exactly one order from the pair")
}

func TestPlace_RetryAfterFailureIsAllowed(t *testing.T) {
	calls := 0
	api := &ordersAPIMock{placeOrder: func(context.Context) (*domain.Order, error) {
		calls++
		if calls == 1 {
			return nil, errors.New("timeout")
		}
		return &domain.Order{OrderID: 102}, nil
	}}
	s := NewOrderState(api, &cartClearerMock{})

	_, err := s.Place(context.Background())
	require.Error(t, err)

	order, err := s.Place(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(102), order.OrderID)
	assert.NoError(t, s.Err())
}

func TestClearCurrent_KeepsHistory(t *testing.T) {
	api := &ordersAPIMock{placeOrder: func(context.Context) (*domain.Order, error) {
		return &domain.Order{OrderID: 101}, nil
	}}
	s := NewOrderState(api, nil)

	_, err := s.Place(context.Background())
	require.NoError(t, err)

	s.ClearCurrent()
	assert.Nil(t, s.Current())
	assert.Len(t, s.History(), 1)
}

func TestHistory_AccumulatesPerSession(t *testing.T) {
	n := 0
	api := &ordersAPIMock{placeOrder: func(context.Context) (*domain.Order, error) {
		n++
		return &domain.Order{OrderID: int64(n)}, nil
	}}
	s := NewOrderState(api, nil)

	for i := 0; i < 3; i++ {
		_, err := s.Place(context.Background())
		require.NoError(t, err)
	}
	assert.Len(t, s.History(), 3)
}
