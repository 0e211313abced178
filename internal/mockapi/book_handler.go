package mockapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/LakhiniVoshadee/litshelf-storefront/internal/domain"
)

func (s *Server) listBooks(c *gin.Context) {
	c.JSON(http.StatusOK, s.store.ListBooks(c.Request.Context()))
}

func (s *Server) getBook(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	book, err := s.store.GetBook(c.Request.Context(), id)
	if err != nil {
		failFor(c, err)
		return
	}
	c.JSON(http.StatusOK, book)
}

// searchBooks serves both search variants; title takes precedence when
// both parameters are present, matching the original backend.
func (s *Server) searchBooks(c *gin.Context) {
	if title, ok := c.GetQuery("title"); ok {
		c.JSON(http.StatusOK, s.store.SearchByTitle(c.Request.Context(), title))
		return
	}
	if genre, ok := c.GetQuery("genre"); ok {
		c.JSON(http.StatusOK, s.store.SearchByGenre(c.Request.Context(), genre))
		return
	}
	fail(c, http.StatusBadRequest, "title or genre query parameter required")
}

func (s *Server) saveBook(c *gin.Context) {
	var book domain.Book
	if err := c.ShouldBindJSON(&book); err != nil {
		fail(c, http.StatusBadRequest, "invalid book payload")
		return
	}
	saved, err := s.store.SaveBook(c.Request.Context(), &book)
	if err != nil {
		failFor(c, err)
		return
	}
	c.JSON(http.StatusCreated, saved)
}

func (s *Server) updateBook(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var book domain.Book
	if err := c.ShouldBindJSON(&book); err != nil {
		fail(c, http.StatusBadRequest, "invalid book payload")
		return
	}
	updated, err := s.store.UpdateBook(c.Request.Context(), id, &book)
	if err != nil {
		failFor(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (s *Server) deleteBook(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := s.store.DeleteBook(c.Request.Context(), id); err != nil {
		failFor(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "book deleted"})
}
