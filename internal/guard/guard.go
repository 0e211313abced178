// Package guard gates role-restricted views. It inspects the persisted
// role synchronously on every invocation, no network round-trip. This
// is UI convenience, not a security boundary: the persisted role is
// client-controlled, and real authorization happens server-side on
// every admin API call.
package guard

import (
	"github.com/LakhiniVoshadee/litshelf-storefront/internal/domain"
	"github.com/LakhiniVoshadee/litshelf-storefront/internal/session"
)

// RoleSource exposes the persisted session state the guard checks.
type RoleSource interface {
	Status() session.Status
	Role() domain.Role
}

// Guard wraps view entry points with role checks.
type Guard struct {
	session RoleSource
}

// New creates a guard over the given session.
func New(s RoleSource) *Guard {
	return &Guard{session: s}
}

// RequireAuthenticated rejects anonymous sessions. Status() re-derives
// the state, so an expired token fails here even if it was valid when
// the process started.
func (g *Guard) RequireAuthenticated() error {
	if g.session.Status() != session.Authenticated {
		return domain.ErrNotAuthenticated
	}
	return nil
}

// RequireAdmin rejects everything but an authenticated admin session.
// Callers bounce the user to the home view instead of rendering the
// protected content.
func (g *Guard) RequireAdmin() error {
	if err := g.RequireAuthenticated(); err != nil {
		return err
	}
	if g.session.Role() != domain.RoleAdmin {
		return domain.ErrForbidden
	}
	return nil
}
