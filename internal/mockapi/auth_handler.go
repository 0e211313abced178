package mockapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/LakhiniVoshadee/litshelf-storefront/internal/domain"
)

type credentials struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (s *Server) login(c *gin.Context) {
	var req credentials
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "username and password are required")
		return
	}

	user, err := s.store.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		failFor(c, err)
		return
	}

	access, err := s.issueToken(user, s.cfg.TokenTTL)
	if err != nil {
		failFor(c, err)
		return
	}
	// The refresh token is issued for contract parity; the storefront
	// never exercises it.
	refresh, err := s.issueToken(user, 7*24*s.cfg.TokenTTL)
	if err != nil {
		failFor(c, err)
		return
	}

	s.log.Info("user logged in",
		zap.String("username", user.Username),
		zap.String("role", string(user.Role)))

	c.JSON(http.StatusOK, gin.H{
		"accesstoken":  access,
		"refreshtoken": refresh,
	})
}

func (s *Server) register(c *gin.Context) {
	var req credentials
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "username and password are required")
		return
	}

	user, err := s.store.CreateUser(c.Request.Context(), req.Username, req.Password, domain.RoleCustomer)
	if err != nil {
		failFor(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

func (s *Server) listUsers(c *gin.Context) {
	c.JSON(http.StatusOK, s.store.ListUsers(c.Request.Context()))
}

func (s *Server) getUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	user, err := s.store.GetUser(c.Request.Context(), id)
	if err != nil {
		failFor(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (s *Server) updateUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req domain.User
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "invalid user payload")
		return
	}
	updated, err := s.store.UpdateUser(c.Request.Context(), id, req.Username, req.Password, req.Role)
	if err != nil {
		failFor(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (s *Server) deleteUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := s.store.DeleteUser(c.Request.Context(), id); err != nil {
		failFor(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "user deleted"})
}
