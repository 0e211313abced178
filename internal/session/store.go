package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/LakhiniVoshadee/litshelf-storefront/internal/domain"
)

// Status is the client's authentication state.
type Status int

const (
	Anonymous Status = iota
	Authenticating
	Authenticated
)

func (s Status) String() string {
	switch s {
	case Authenticating:
		return "authenticating"
	case Authenticated:
		return "authenticated"
	default:
		return "anonymous"
	}
}

// Session is what gets persisted between runs: the analog of the
// browser's local storage in the web storefront. Cleared wholesale on
// logout.
type Session struct {
	Token         string      `json:"token"`
	RefreshToken  string      `json:"refreshToken,omitempty"`
	Username      string      `json:"username"`
	Role          domain.Role `json:"role"`
	Authenticated bool        `json:"isAuthenticated"`
}

// Store is the single source of truth for who the current user is and
// whether they are still authenticated. All mutation goes through its
// methods; views only read snapshots.
type Store struct {
	mu      sync.RWMutex
	path    string
	status  Status
	current Session
}

const sessionFileName = "session.json"

// NewStore creates a store persisting to sessionFileName under dir. The
// persisted session is not read until Load is called.
func NewStore(dir string) *Store {
	return &Store{path: filepath.Join(dir, sessionFileName)}
}

// Load derives the initial state from persisted storage: Authenticated
// if a non-expired token is present, Anonymous otherwise. An expired or
// unreadable session file is discarded.
func (s *Store) Load() Status {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		s.status = Anonymous
		s.current = Session{}
		return s.status
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil || sess.Token == "" || IsExpired(sess.Token) {
		_ = os.Remove(s.path)
		s.status = Anonymous
		s.current = Session{}
		return s.status
	}

	s.current = sess
	s.status = Authenticated
	return s.status
}

// BeginAuthentication marks a login attempt in progress.
func (s *Store) BeginAuthentication() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = Authenticating
}

// FailAuthentication returns to Anonymous after a rejected login.
func (s *Store) FailAuthentication() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = Anonymous
	s.current = Session{}
}

// Establish persists the tokens from a successful login together with
// the username and role derived from the access token's claims, and
// moves the store to Authenticated.
func (s *Store) Establish(accessToken, refreshToken string) error {
	claims, err := ParseClaims(accessToken)
	if err != nil {
		return err
	}
	if IsExpired(accessToken) {
		return domain.ErrTokenExpired
	}

	sess := Session{
		Token:         accessToken,
		RefreshToken:  refreshToken,
		Username:      claims.Username,
		Role:          claims.Role,
		Authenticated: true,
	}

	data, err := json.MarshalIndent(sess, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}

	s.mu.Lock()
	s.current = sess
	s.status = Authenticated
	s.mu.Unlock()
	return nil
}

// Teardown forgets the session. Logout is a pure client-side forget,
// the server is never called.
func (s *Store) Teardown() error {
	s.mu.Lock()
	s.current = Session{}
	s.status = Anonymous
	s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

// Status re-derives the current state, demoting to Anonymous when the
// held token has expired since the last check. The guard calls this on
// every invocation, not just once.
func (s *Store) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status == Authenticated && IsExpired(s.current.Token) {
		s.current = Session{}
		s.status = Anonymous
		_ = os.Remove(s.path)
	}
	return s.status
}

// Token returns the current bearer token, empty when anonymous. Read by
// the gateway immediately before each outbound request.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.Token
}

// Username returns the current username, empty when anonymous.
func (s *Store) Username() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.Username
}

// Role returns the persisted role. Absence of a valid session reads as
// no role at all, so role-gated UI stays hidden.
func (s *Store) Role() domain.Role {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.current.Authenticated {
		return ""
	}
	return s.current.Role
}
