package mockapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/LakhiniVoshadee/litshelf-storefront/internal/domain"
)

// fail writes the backend's flat error shape.
func fail(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"message": message})
}

// failFor maps domain errors to the status the real backend uses.
func failFor(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrBookNotFound), errors.Is(err, domain.ErrUserNotFound):
		fail(c, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrBadCredentials):
		fail(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, domain.ErrUserExists):
		fail(c, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrEmptyCart), errors.Is(err, domain.ErrOutOfStock):
		fail(c, http.StatusBadRequest, err.Error())
	default:
		fail(c, http.StatusInternalServerError, err.Error())
	}
}
