package domain

import "errors"

var (
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrForbidden        = errors.New("admin access required")
	ErrInvalidToken     = errors.New("invalid token")
	ErrTokenExpired     = errors.New("token expired")
	ErrBookNotFound     = errors.New("book not found")
	ErrUserNotFound     = errors.New("user not found")
	ErrEmptyCart        = errors.New("cart is empty")
	ErrOutOfStock       = errors.New("not enough stock")
	ErrUserExists       = errors.New("user already exists")
	ErrBadCredentials   = errors.New("invalid credentials")
)
