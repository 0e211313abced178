package state

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LakhiniVoshadee/litshelf-storefront/internal/domain"
)

type booksAPIMock struct {
	getAll        func(ctx context.Context) ([]domain.Book, error)
	searchByTitle func(ctx context.Context, title string) ([]domain.Book, error)
	searchByGenre func(ctx context.Context, genre string) ([]domain.Book, error)
}

func (m *booksAPIMock) GetAllBooks(ctx context.Context) ([]domain.Book, error) {
	return m.getAll(ctx)
}

func (m *booksAPIMock) SearchBooksByTitle(ctx context.Context, title string) ([]domain.Book, error) {
	return m.searchByTitle(ctx, title)
}

func (m *booksAPIMock) SearchBooksByGenre(ctx context.Context, genre string) ([]domain.Book, error) {
	return m.searchByGenre(ctx, genre)
}

func catalog(n int) []domain.Book {
	books := make([]domain.Book, n)
	for i := range books {
		books[i] = domain.Book{ID: int64(i + 1), Title: "Book", Price: 9.99}
	}
	return books
}

func TestFetchAll_ReplacesList(t *testing.T) {
	api := &booksAPIMock{getAll: func(context.Context) ([]domain.Book, error) {
		return catalog(3), nil
	}}
	s := NewBookState(api)

	require.NoError(t, s.FetchAll(context.Background()))
	assert.Len(t, s.Books(), 3)
	assert.NoError(t, s.Err())
	assert.False(t, s.Loading())
}

// A failed refresh keeps showing the list we already had. Ten books on
// screen plus a network blip must not become an empty shop.
func TestFetchAll_FailureKeepsStaleList(t *testing.T) {
	calls := 0
	api := &booksAPIMock{getAll: func(context.Context) ([]domain.Book, error) {
		calls++
		if calls == 1 {
			return catalog(10), nil
		}
		return nil, errors.New("connection refused")
	}}
	s := NewBookState(api)

	require.NoError(t, s.FetchAll(context.Background()))
	require.Len(t, s.Books(), 10)

	err := s.FetchAll(context.Background())
	require.Error(t, err)
	assert.Len(t, s.Books(), 10, "stale-but-available beats empty")
	assert.Error(t, s.Err())
}

func TestSearch_ReplacesListWholesale(t *testing.T) {
	api := &booksAPIMock{
		getAll: func(context.Context) ([]domain.Book, error) {
			return catalog(5), nil
		},
		searchByTitle: func(_ context.Context, title string) ([]domain.Book, error) {
			return []domain.Book{{ID: 42, Title: title}}, nil
		},
	}
	s := NewBookState(api)
	require.NoError(t, s.FetchAll(context.Background()))

	require.NoError(t, s.SearchByTitle(context.Background(), "Educated"))
	books := s.Books()
	require.Len(t, books, 1)
	assert.Equal(t, int64(42), books[0].ID)
}

func TestSearch_EmptyResultIsValid(t *testing.T) {
	api := &booksAPIMock{
		getAll: func(context.Context) ([]domain.Book, error) {
			return catalog(5), nil
		},
		searchByGenre: func(context.Context, string) ([]domain.Book, error) {
			return []domain.Book{}, nil
		},
	}
	s := NewBookState(api)
	require.NoError(t, s.FetchAll(context.Background()))

	// No matches is a successful response, not an error, and it does
	// replace the list.
	require.NoError(t, s.SearchByGenre(context.Background(), "Microfiction"))
	assert.Empty(t, s.Books())
	assert.NoError(t, s.Err())
}

func TestFind(t *testing.T) {
	api := &booksAPIMock{getAll: func(context.Context) ([]domain.Book, error) {
		return []domain.Book{{ID: 7, Title: "Project Hail Mary"}}, nil
	}}
	s := NewBookState(api)
	require.NoError(t, s.FetchAll(context.Background()))

	book, ok := s.Find(7)
	require.True(t, ok)
	assert.Equal(t, "Project Hail Mary", book.Title)

	_, ok = s.Find(999)
	assert.False(t, ok)
}

func TestBooks_ReturnsCopy(t *testing.T) {
	api := &booksAPIMock{getAll: func(context.Context) ([]domain.Book, error) {
		return catalog(2), nil
	}}
	s := NewBookState(api)
	require.NoError(t, s.FetchAll(context.Background()))

	got := s.Books()
	got[0].Title = "mutated"
	assert.NotEqual(t, "mutated", s.Books()[0].Title)
}

func TestDismissError(t *testing.T) {
	api := &booksAPIMock{getAll: func(context.Context) ([]domain.Book, error) {
		return nil, errors.New("boom")
	}}
	s := NewBookState(api)

	require.Error(t, s.FetchAll(context.Background()))
	require.Error(t, s.Err())

	s.DismissError()
	assert.NoError(t, s.Err())
}
