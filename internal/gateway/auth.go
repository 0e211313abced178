package gateway

import (
	"context"
	"fmt"

	"github.com/LakhiniVoshadee/litshelf-storefront/internal/domain"
)

// LoginRequest carries the credentials for POST /auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is the login payload. The field names are the backend's,
// not ours. The refresh token is persisted but never used: this client
// implements no refresh rotation.
type LoginResponse struct {
	AccessToken  string `json:"accesstoken"`
	RefreshToken string `json:"refreshtoken"`
}

// RegisterRequest carries a new account for POST /auth/register.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login exchanges credentials for tokens.
func (c *Client) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	var resp LoginResponse
	if err := c.post(ctx, "/auth/login", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Register creates a new customer account.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*domain.User, error) {
	var user domain.User
	if err := c.post(ctx, "/auth/register", req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// GetAllUsers lists accounts (admin).
func (c *Client) GetAllUsers(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	if err := c.get(ctx, "/auth/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// GetUser fetches one account by id (admin).
func (c *Client) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	var user domain.User
	if err := c.get(ctx, fmt.Sprintf("/auth/users/%d", id), nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateUser updates an account by id (admin).
func (c *Client) UpdateUser(ctx context.Context, id int64, user *domain.User) (*domain.User, error) {
	var updated domain.User
	if err := c.put(ctx, fmt.Sprintf("/auth/users/%d", id), user, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteUser deletes an account by id (admin).
func (c *Client) DeleteUser(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/auth/users/%d", id))
}
