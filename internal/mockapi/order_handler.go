package mockapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (s *Server) placeOrder(c *gin.Context) {
	order, err := s.store.PlaceOrder(c.Request.Context(), s.currentUserID(c))
	if err != nil {
		failFor(c, err)
		return
	}

	s.log.Info("order placed",
		zap.Int64("order_id", order.OrderID),
		zap.Int64("user_id", order.UserID),
		zap.Float64("total", order.TotalCost))

	c.JSON(http.StatusCreated, order)
}
