package mockapi

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/LakhiniVoshadee/litshelf-storefront/internal/domain"
)

// Store is the mock backend's in-memory state. Everything is guarded by
// one RWMutex and handed out as copies so handlers can't alias shared
// state. Order placement holds the write lock across pricing, stock
// decrement and cart clearing, which is what makes it atomic.
type Store struct {
	mu         sync.RWMutex
	books      map[int64]*domain.Book
	users      map[int64]*domain.User
	passwords  map[int64]string // userID -> bcrypt hash
	byUsername map[string]int64
	carts      map[int64]*domain.Cart // userID -> cart
	orders     []*domain.Order
	contacts   []*domain.ContactMessage

	nextBookID  int64
	nextUserID  int64
	nextOrderID int64
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		books:      make(map[int64]*domain.Book),
		users:      make(map[int64]*domain.User),
		passwords:  make(map[int64]string),
		byUsername: make(map[string]int64),
		carts:      make(map[int64]*domain.Cart),
	}
}

// ---- books ----

// ListBooks returns all books ordered by id.
func (s *Store) ListBooks(ctx context.Context) []domain.Book {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Book, 0, len(s.books))
	for _, b := range s.books {
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// GetBook returns the book with the given id.
func (s *Store) GetBook(ctx context.Context, id int64) (*domain.Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.books[id]
	if !ok {
		return nil, domain.ErrBookNotFound
	}
	out := *b
	return &out, nil
}

// SaveBook stores a new book and assigns its id.
func (s *Store) SaveBook(ctx context.Context, book *domain.Book) (*domain.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextBookID++
	now := time.Now().UTC()
	b := *book
	b.ID = s.nextBookID
	b.CreatedAt = now
	b.UpdatedAt = now
	s.books[b.ID] = &b

	out := b
	return &out, nil
}

// UpdateBook replaces the mutable fields of an existing book.
func (s *Store) UpdateBook(ctx context.Context, id int64, book *domain.Book) (*domain.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.books[id]
	if !ok {
		return nil, domain.ErrBookNotFound
	}

	updated := *book
	updated.ID = id
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now().UTC()
	s.books[id] = &updated

	out := updated
	return &out, nil
}

// DeleteBook removes a book.
func (s *Store) DeleteBook(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.books[id]; !ok {
		return domain.ErrBookNotFound
	}
	delete(s.books, id)
	return nil
}

// SearchByTitle returns books whose title contains the query,
// case-insensitive.
func (s *Store) SearchByTitle(ctx context.Context, title string) []domain.Book {
	s.mu.RLock()
	defer s.mu.RUnlock()

	needle := strings.ToLower(title)
	var out []domain.Book
	for _, b := range s.books {
		if strings.Contains(strings.ToLower(b.Title), needle) {
			out = append(out, *b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// SearchByGenre returns books with an exact genre match,
// case-insensitive.
func (s *Store) SearchByGenre(ctx context.Context, genre string) []domain.Book {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.Book
	for _, b := range s.books {
		if strings.EqualFold(b.Genre, genre) {
			out = append(out, *b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// ---- users ----

// CreateUser stores a new account with a bcrypt-hashed password.
func (s *Store) CreateUser(ctx context.Context, username, password string, role domain.Role) (*domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byUsername[username]; exists {
		return nil, domain.ErrUserExists
	}

	s.nextUserID++
	now := time.Now().UTC()
	u := &domain.User{
		ID:        s.nextUserID,
		Username:  username,
		Role:      role,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.users[u.ID] = u
	s.passwords[u.ID] = string(hash)
	s.byUsername[username] = u.ID

	out := *u
	return &out, nil
}

// Authenticate verifies credentials and returns the matching user.
func (s *Store) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	s.mu.RLock()
	id, ok := s.byUsername[username]
	var hash string
	var user domain.User
	if ok {
		hash = s.passwords[id]
		user = *s.users[id]
	}
	s.mu.RUnlock()

	if !ok {
		return nil, domain.ErrBadCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return nil, domain.ErrBadCredentials
	}
	return &user, nil
}

// ListUsers returns all accounts ordered by id.
func (s *Store) ListUsers(ctx context.Context) []domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// GetUser returns the account with the given id.
func (s *Store) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	out := *u
	return &out, nil
}

// UpdateUser updates username, role and optionally the password.
func (s *Store) UpdateUser(ctx context.Context, id int64, username, password string, role domain.Role) (*domain.User, error) {
	var hash string
	if password != "" {
		h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		hash = string(h)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	if username != "" && username != u.Username {
		if _, taken := s.byUsername[username]; taken {
			return nil, domain.ErrUserExists
		}
		delete(s.byUsername, u.Username)
		u.Username = username
		s.byUsername[username] = id
	}
	if role.Valid() {
		u.Role = role
	}
	if hash != "" {
		s.passwords[id] = hash
	}
	u.UpdatedAt = time.Now().UTC()

	out := *u
	return &out, nil
}

// DeleteUser removes an account and its cart.
func (s *Store) DeleteUser(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	delete(s.byUsername, u.Username)
	delete(s.users, id)
	delete(s.passwords, id)
	delete(s.carts, id)
	return nil
}

// ---- cart ----

func (s *Store) cartLocked(userID int64) *domain.Cart {
	cart, ok := s.carts[userID]
	if !ok {
		now := time.Now().UTC()
		cart = &domain.Cart{
			ID:        fmt.Sprintf("cart-%d", userID),
			UserID:    userID,
			CreatedAt: now,
			UpdatedAt: now,
		}
		s.carts[userID] = cart
	}
	return cart
}

func copyCart(cart *domain.Cart) *domain.Cart {
	c := *cart
	c.Items = make([]domain.CartItem, len(cart.Items))
	copy(c.Items, cart.Items)
	return &c
}

// GetCart returns the user's cart, creating an empty one on first use.
func (s *Store) GetCart(ctx context.Context, userID int64) *domain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyCart(s.cartLocked(userID))
}

// AddCartItem merges an additive request into the cart. The resulting
// quantity is clamped to the book's stock; the full post-mutation cart
// is returned.
func (s *Store) AddCartItem(ctx context.Context, userID, bookID int64, quantity int) (*domain.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	book, ok := s.books[bookID]
	if !ok {
		return nil, domain.ErrBookNotFound
	}
	if book.Stock < 1 {
		return nil, domain.ErrOutOfStock
	}

	cart := s.cartLocked(userID)
	merged := false
	for i := range cart.Items {
		if cart.Items[i].BookID == bookID {
			cart.Items[i].Quantity += quantity
			if cart.Items[i].Quantity > book.Stock {
				cart.Items[i].Quantity = book.Stock
			}
			merged = true
			break
		}
	}
	if !merged {
		q := quantity
		if q > book.Stock {
			q = book.Stock
		}
		cart.Items = append(cart.Items, domain.CartItem{BookID: bookID, Quantity: q})
	}
	cart.UpdatedAt = time.Now().UTC()

	return copyCart(cart), nil
}

// ---- orders ----

// PlaceOrder consumes the user's cart atomically: prices it, decrements
// stock and empties the cart under one lock. An empty cart is rejected.
func (s *Store) PlaceOrder(ctx context.Context, userID int64) (*domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.cartLocked(userID)
	if len(cart.Items) == 0 {
		return nil, domain.ErrEmptyCart
	}

	total := 0.0
	currency := ""
	items := make([]domain.OrderItem, 0, len(cart.Items))
	for _, item := range cart.Items {
		book, ok := s.books[item.BookID]
		if !ok {
			return nil, domain.ErrBookNotFound
		}
		if book.Stock < item.Quantity {
			return nil, domain.ErrOutOfStock
		}
		total += book.Price * float64(item.Quantity)
		if currency == "" {
			currency = book.Currency
		}
		items = append(items, domain.OrderItem{BookID: item.BookID, Quantity: item.Quantity})
	}

	// All lines validated, now commit: decrement stock and clear the cart.
	for _, item := range cart.Items {
		s.books[item.BookID].Stock -= item.Quantity
	}
	cart.Items = nil
	cart.UpdatedAt = time.Now().UTC()

	s.nextOrderID++
	now := time.Now().UTC()
	order := &domain.Order{
		OrderID:   s.nextOrderID,
		UserID:    userID,
		Items:     items,
		TotalCost: total,
		Currency:  currency,
		Status:    domain.OrderPendingPayment,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.orders = append(s.orders, order)

	out := *order
	return &out, nil
}

// ---- contacts ----

// SaveContact stores a contact-form submission.
func (s *Store) SaveContact(ctx context.Context, msg *domain.ContactMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m := *msg
	s.contacts = append(s.contacts, &m)
}
