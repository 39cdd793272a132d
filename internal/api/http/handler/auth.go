package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lynossweets/storefront-server/internal/api/http/middleware"
	"github.com/lynossweets/storefront-server/internal/logger"
	"github.com/lynossweets/storefront-server/internal/model"
)

// sessionMaxAge matches the token TTL so the cookie and the signature
// expire together.
const sessionMaxAge = 7 * 24 * 60 * 60

// AuthService defines login operations.
type AuthService interface {
	Login(ctx context.Context, email, password string) (model.AuthUser, string, error)
}

// Auth handles HTTP endpoints for session management.
type Auth struct {
	authService AuthService
	logger      *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(authService AuthService, logger *logger.Logger) *Auth {
	return &Auth{
		authService: authService,
		logger:      logger,
	}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login verifies credentials and sets the session cookie.
func (h *Auth) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required"})
		return
	}

	user, tokenString, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.SetCookie(middleware.SessionCookie, tokenString, sessionMaxAge, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"user": user})
}

// Logout clears the session cookie. The token itself stays valid until
// expiry; there is no server-side session to revoke.
func (h *Auth) Logout(c *gin.Context) {
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Me returns the resolved session user.
func (h *Auth) Me(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}
