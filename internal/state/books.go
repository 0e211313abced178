// Package state holds the client-side caches of server data: for each
// resource, the last-known response plus loading/error flags, and the
// operations that refresh it. The server is the single source of truth;
// nothing here is ever computed locally and then merged.
package state

import (
	"context"
	"sync"

	"github.com/LakhiniVoshadee/litshelf-storefront/internal/domain"
)

// BooksAPI is the slice's view of the gateway.
type BooksAPI interface {
	GetAllBooks(ctx context.Context) ([]domain.Book, error)
	SearchBooksByTitle(ctx context.Context, title string) ([]domain.Book, error)
	SearchBooksByGenre(ctx context.Context, genre string) ([]domain.Book, error)
}

// BookState caches the last successful catalog fetch. A failed fetch
// leaves the previous list intact and surfaces an error flag instead of
// clearing data: stale-but-available beats empty.
type BookState struct {
	api BooksAPI

	mu       sync.RWMutex
	list     []domain.Book
	inFlight int
	err      error
}

// NewBookState creates a book slice over api.
func NewBookState(api BooksAPI) *BookState {
	return &BookState{api: api}
}

// FetchAll refreshes the cached catalog.
func (s *BookState) FetchAll(ctx context.Context) error {
	return s.refresh(func() ([]domain.Book, error) {
		return s.api.GetAllBooks(ctx)
	})
}

// SearchByTitle replaces the cached list with the title search result.
func (s *BookState) SearchByTitle(ctx context.Context, title string) error {
	return s.refresh(func() ([]domain.Book, error) {
		return s.api.SearchBooksByTitle(ctx, title)
	})
}

// SearchByGenre replaces the cached list with the genre search result.
func (s *BookState) SearchByGenre(ctx context.Context, genre string) error {
	return s.refresh(func() ([]domain.Book, error) {
		return s.api.SearchBooksByGenre(ctx, genre)
	})
}

func (s *BookState) refresh(fetch func() ([]domain.Book, error)) error {
	s.mu.Lock()
	s.inFlight++
	s.err = nil
	s.mu.Unlock()

	books, err := fetch()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.inFlight--
	if err != nil {
		s.err = err
		return err
	}
	// Last response to resolve wins; independent fetches are not ordered.
	s.list = books
	s.err = nil
	return nil
}

// Books returns a copy of the last successful list.
func (s *BookState) Books() []domain.Book {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Book, len(s.list))
	copy(out, s.list)
	return out
}

// Find returns the cached book with the given id, if present.
func (s *BookState) Find(id int64) (*domain.Book, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.list {
		if s.list[i].ID == id {
			b := s.list[i]
			return &b, true
		}
	}
	return nil, false
}

// Loading reports whether a fetch is in flight.
func (s *BookState) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.inFlight > 0
}

// Err returns the error from the most recent attempt, nil after a
// success.
func (s *BookState) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

// DismissError clears the surfaced error without touching data.
func (s *BookState) DismissError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = nil
}
