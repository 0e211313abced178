package gateway

import (
	"context"
	"fmt"
	"net/url"

	"github.com/LakhiniVoshadee/litshelf-storefront/internal/domain"
)

// GetAllBooks fetches the whole catalog.
func (c *Client) GetAllBooks(ctx context.Context) ([]domain.Book, error) {
	var books []domain.Book
	if err := c.get(ctx, "/books/all", nil, &books); err != nil {
		return nil, err
	}
	return books, nil
}

// GetBook fetches a single book by id.
func (c *Client) GetBook(ctx context.Context, id int64) (*domain.Book, error) {
	var book domain.Book
	if err := c.get(ctx, fmt.Sprintf("/books/%d", id), nil, &book); err != nil {
		return nil, err
	}
	return &book, nil
}

// SearchBooksByTitle searches the catalog by title. The query parameter
// name is an external contract.
func (c *Client) SearchBooksByTitle(ctx context.Context, title string) ([]domain.Book, error) {
	var books []domain.Book
	q := url.Values{"title": {title}}
	if err := c.get(ctx, "/books/search", q, &books); err != nil {
		return nil, err
	}
	return books, nil
}

// SearchBooksByGenre searches the catalog by genre.
func (c *Client) SearchBooksByGenre(ctx context.Context, genre string) ([]domain.Book, error) {
	var books []domain.Book
	q := url.Values{"genre": {genre}}
	if err := c.get(ctx, "/books/search", q, &books); err != nil {
		return nil, err
	}
	return books, nil
}

// SaveBook creates a book (admin).
func (c *Client) SaveBook(ctx context.Context, book *domain.Book) (*domain.Book, error) {
	var saved domain.Book
	if err := c.post(ctx, "/books/save", book, &saved); err != nil {
		return nil, err
	}
	return &saved, nil
}

// UpdateBook updates a book by id (admin).
func (c *Client) UpdateBook(ctx context.Context, id int64, book *domain.Book) (*domain.Book, error) {
	var updated domain.Book
	if err := c.put(ctx, fmt.Sprintf("/books/update/%d", id), book, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteBook deletes a book by id (admin).
func (c *Client) DeleteBook(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/books/delete/%d", id))
}
