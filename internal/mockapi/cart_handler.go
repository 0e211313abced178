package mockapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type addItemRequest struct {
	BookID   int64 `json:"bookId" binding:"required"`
	Quantity int   `json:"quantity" binding:"required,min=1"`
}

func (s *Server) getCart(c *gin.Context) {
	cart := s.store.GetCart(c.Request.Context(), s.currentUserID(c))
	c.JSON(http.StatusOK, cart)
}

func (s *Server) addCartItem(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "bookId and a positive quantity are required")
		return
	}

	cart, err := s.store.AddCartItem(c.Request.Context(), s.currentUserID(c), req.BookID, req.Quantity)
	if err != nil {
		failFor(c, err)
		return
	}
	c.JSON(http.StatusOK, cart)
}
