package guard

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/LakhiniVoshadee/litshelf-storefront/internal/domain"
	"github.com/LakhiniVoshadee/litshelf-storefront/internal/session"
)

type roleSourceMock struct {
	status session.Status
	role   domain.Role
}

func (m *roleSourceMock) Status() session.Status { return m.status }
func (m *roleSourceMock) Role() domain.Role      { return m.role }

func TestRequireAuthenticated(t *testing.T) {
	tests := []struct {
		name    string
		status  session.Status
		wantErr error
	}{
		{"anonymous", session.Anonymous, domain.ErrNotAuthenticated},
		{"mid-login", session.Authenticating, domain.ErrNotAuthenticated},
		{"authenticated", session.Authenticated, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New(&roleSourceMock{status: tt.status, role: domain.RoleCustomer})
			err := g.RequireAuthenticated()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestRequireAdmin(t *testing.T) {
	tests := []struct {
		name    string
		status  session.Status
		role    domain.Role
		wantErr error
	}{
		{"anonymous", session.Anonymous, "", domain.ErrNotAuthenticated},
		{"customer", session.Authenticated, domain.RoleCustomer, domain.ErrForbidden},
		{"admin", session.Authenticated, domain.RoleAdmin, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New(&roleSourceMock{status: tt.status, role: tt.role})
			err := g.RequireAdmin()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

// The guard consults the source on every call, so a session that
// expires between two invocations is rejected on the second.
func TestGuard_ReChecksEveryInvocation(t *testing.T) {
	src := &roleSourceMock{status: session.Authenticated, role: domain.RoleAdmin}
	g := New(src)

	assert.NoError(t, g.RequireAdmin())

	src.status = session.Anonymous
	src.role = ""
	assert.ErrorIs(t, g.RequireAdmin(), domain.ErrNotAuthenticated)
}
