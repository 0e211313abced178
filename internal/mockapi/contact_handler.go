package mockapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/LakhiniVoshadee/litshelf-storefront/internal/domain"
)

type contactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

func (s *Server) saveContact(c *gin.Context) {
	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "name, email, subject and message are required")
		return
	}

	s.store.SaveContact(c.Request.Context(), &domain.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
	})
	c.JSON(http.StatusCreated, gin.H{"message": "message received"})
}
