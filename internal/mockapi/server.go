// Package mockapi is an in-memory implementation of the bookstore API
// contract the storefront client consumes. It backs local development
// and the integration tests; the real backend remains the system of
// record in every deployed environment.
package mockapi

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/LakhiniVoshadee/litshelf-storefront/internal/domain"
)

const (
	contextKeyUserID   = "user_id"
	contextKeyUsername = "username"
	contextKeyRole     = "role"
)

// Config holds mock server settings
type Config struct {
	JWTSecret string
	TokenTTL  time.Duration
}

// Server is the mock bookstore API.
type Server struct {
	cfg    Config
	store  *Store
	log    *zap.Logger
	engine *gin.Engine
}

// NewServer builds the server with a seeded store.
func NewServer(cfg Config, log *zap.Logger) *Server {
	if cfg.TokenTTL == 0 {
		cfg.TokenTTL = time.Hour
	}
	if log == nil {
		log = zap.NewNop()
	}

	s := &Server{
		cfg:   cfg,
		store: NewStore(),
		log:   log,
	}
	Seed(s.store)
	s.engine = s.buildRouter()
	return s
}

// Store exposes the backing store, used by tests to arrange state.
func (s *Server) Store() *Store {
	return s.store
}

// Engine returns the gin engine, usable directly with httptest.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) buildRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(s.requestLogger())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")

	books := api.Group("/books")
	{
		books.GET("/all", s.listBooks)
		books.GET("/search", s.searchBooks)
		books.GET("/:id", s.getBook)
		books.POST("/save", s.requireRole(domain.RoleAdmin), s.saveBook)
		books.PUT("/update/:id", s.requireRole(domain.RoleAdmin), s.updateBook)
		books.DELETE("/delete/:id", s.requireRole(domain.RoleAdmin), s.deleteBook)
	}

	auth := api.Group("/auth")
	{
		auth.POST("/login", s.login)
		auth.POST("/register", s.register)
		auth.GET("/users", s.requireRole(domain.RoleAdmin), s.listUsers)
		auth.GET("/users/:id", s.requireRole(domain.RoleAdmin), s.getUser)
		auth.PUT("/users/:id", s.requireRole(domain.RoleAdmin), s.updateUser)
		auth.DELETE("/users/:id", s.requireRole(domain.RoleAdmin), s.deleteUser)
	}

	cart := api.Group("/cart", s.requireAuth())
	{
		cart.GET("", s.getCart)
		cart.POST("/add", s.addCartItem)
	}

	api.POST("/orders/place", s.requireAuth(), s.placeOrder)
	api.POST("/contacts/save", s.saveContact)

	return router
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.log.Debug("handled request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.String("request_id", c.GetHeader("X-Request-ID")),
			zap.Duration("elapsed", time.Since(start)))
	}
}

// authenticate verifies the bearer token and stashes the caller's
// identity in the request context. It never advances the handler chain;
// on failure it writes the 401 and aborts. Callers decide when to call
// c.Next().
func (s *Server) authenticate(c *gin.Context) bool {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		fail(c, http.StatusUnauthorized, "missing bearer token")
		c.Abort()
		return false
	}
	claims, err := s.verifyToken(strings.TrimPrefix(header, "Bearer "))
	if err != nil {
		fail(c, http.StatusUnauthorized, "invalid or expired token")
		c.Abort()
		return false
	}
	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		fail(c, http.StatusUnauthorized, "invalid token subject")
		c.Abort()
		return false
	}
	c.Set(contextKeyUserID, userID)
	c.Set(contextKeyUsername, claims.Username)
	c.Set(contextKeyRole, claims.Role)
	return true
}

func (s *Server) requireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !s.authenticate(c) {
			return
		}
		c.Next()
	}
}

// requireRole is authentication plus a server-side role check, both
// before the protected handler runs. This is the real authorization
// boundary; the client's route guard is cosmetic.
func (s *Server) requireRole(role domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !s.authenticate(c) {
			return
		}
		if got, _ := c.Get(contextKeyRole); got != role {
			fail(c, http.StatusForbidden, "insufficient role")
			c.Abort()
			return
		}
		c.Next()
	}
}

func (s *Server) currentUserID(c *gin.Context) int64 {
	v, _ := c.Get(contextKeyUserID)
	id, _ := v.(int64)
	return id
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		fail(c, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return id, true
}
