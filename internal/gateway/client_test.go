package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LakhiniVoshadee/litshelf-storefront/internal/domain"
)

// staticTokens is a swappable token source.
type staticTokens struct {
	mu    sync.Mutex
	token string
}

func (s *staticTokens) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

func (s *staticTokens) set(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
}

func newTestClient(t *testing.T, handler http.Handler, tokens TokenSource, onAuthRejection func()) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewClient(Config{
		BaseURL:         srv.URL + "/api",
		Tokens:          tokens,
		OnAuthRejection: onAuthRejection,
	})
	require.NoError(t, err)
	return client
}

func TestNewClient_RequiresBaseURL(t *testing.T) {
	_, err := NewClient(Config{})
	assert.Error(t, err)
}

func TestTokenAttachedWhenPresent(t *testing.T) {
	var gotAuth, gotRequestID string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-ID")
		json.NewEncoder(w).Encode([]domain.Book{})
	})

	tokens := &staticTokens{token: "tok-123"}
	client := newTestClient(t, handler, tokens, nil)

	_, err := client.GetAllBooks(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", gotAuth)
	assert.NotEmpty(t, gotRequestID)
}

func TestNoTokenMeansNoAuthHeader(t *testing.T) {
	var gotAuth string
	var hadHeader bool
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, hadHeader = r.Header["Authorization"]
		json.NewEncoder(w).Encode([]domain.Book{})
	})

	client := newTestClient(t, handler, &staticTokens{}, nil)

	_, err := client.GetAllBooks(context.Background())
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
	assert.False(t, hadHeader, "request must be sent without an Authorization header")
}

// The token source is consulted per call, so a login between two calls
// shows up on the second one.
func TestTokenReadAtCallTime(t *testing.T) {
	var headers []string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		headers = append(headers, r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode([]domain.Book{})
	})

	tokens := &staticTokens{}
	client := newTestClient(t, handler, tokens, nil)

	_, err := client.GetAllBooks(context.Background())
	require.NoError(t, err)

	tokens.set("fresh-token")
	_, err = client.GetAllBooks(context.Background())
	require.NoError(t, err)

	require.Len(t, headers, 2)
	assert.Empty(t, headers[0])
	assert.Equal(t, "Bearer fresh-token", headers[1])
}

func TestServerRejectionBecomesAPIError(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"message": "cart is empty"})
	})

	client := newTestClient(t, handler, &staticTokens{}, nil)

	_, err := client.PlaceOrder(context.Background())
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "cart is empty", apiErr.Message)
	assert.False(t, apiErr.IsAuthRejection())
}

func TestEnvelopedErrorBody(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":{"code":"NOT_FOUND","message":"no such book"}}`))
	})

	client := newTestClient(t, handler, &staticTokens{}, nil)

	_, err := client.GetBook(context.Background(), 99)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "NOT_FOUND", apiErr.Code)
	assert.Equal(t, "no such book", apiErr.Message)
}

func TestUnparseableErrorBodyFallsBackToStatusText(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("<html>boom</html>"))
	})

	client := newTestClient(t, handler, &staticTokens{}, nil)

	_, err := client.GetAllBooks(context.Background())
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusText(http.StatusInternalServerError), apiErr.Message)
}

func TestAuthRejectionTriggersCallback(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"message": "invalid or expired token"})
	})

	torn := false
	client := newTestClient(t, handler, &staticTokens{token: "stale"}, func() { torn = true })

	_, err := client.GetCart(context.Background())
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.True(t, apiErr.IsAuthRejection())
	assert.True(t, torn, "a 401 must tear the session down")
}

func TestNoRetries(t *testing.T) {
	calls := 0
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	client := newTestClient(t, handler, &staticTokens{}, nil)

	_, err := client.GetAllBooks(context.Background())
	require.Error(t, err)
	assert.Equal(t, 1, calls, "the gateway is a one-shot pass-through")
}

func TestSearchQueryParameters(t *testing.T) {
	var gotQuery string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		json.NewEncoder(w).Encode([]domain.Book{})
	})

	client := newTestClient(t, handler, &staticTokens{}, nil)

	_, err := client.SearchBooksByTitle(context.Background(), "dune")
	require.NoError(t, err)
	assert.Equal(t, "title=dune", gotQuery)

	_, err = client.SearchBooksByGenre(context.Background(), "Fantasy")
	require.NoError(t, err)
	assert.Equal(t, "genre=Fantasy", gotQuery)
}

func TestTransportFailureIsNotAPIError(t *testing.T) {
	client, err := NewClient(Config{BaseURL: "http://127.0.0.1:1/api"})
	require.NoError(t, err)

	_, err = client.GetAllBooks(context.Background())
	require.Error(t, err)

	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr))
}
