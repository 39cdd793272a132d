package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/lynossweets/storefront-server/internal/logger"
	"github.com/lynossweets/storefront-server/internal/model"
)

// handleError maps service errors onto the HTTP error taxonomy. Anything
// unrecognized is a 500 with a generic message; details stay in the server
// log.
func handleError(c *gin.Context, log *logger.Logger, err error) {
	switch {
	case errors.Is(err, model.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
	case errors.Is(err, model.ErrEmailTaken):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email already exists"})
	case errors.Is(err, model.ErrSlugTaken):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Slug already exists"})
	case errors.Is(err, model.ErrProductReferenced):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Product has recorded sales"})
	case errors.Is(err, model.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	default:
		log.Error("handler: request failed",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// parseID parses a positive integer path parameter, writing a 400 on
// failure.
func parseID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return 0, false
	}
	return id, true
}
