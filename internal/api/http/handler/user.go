package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lynossweets/storefront-server/internal/logger"
	"github.com/lynossweets/storefront-server/internal/model"
	"github.com/lynossweets/storefront-server/internal/service"
)

// UserService defines account administration operations.
type UserService interface {
	List(ctx context.Context) ([]model.User, error)
	Create(ctx context.Context, input service.UserInput) (model.User, error)
	Update(ctx context.Context, id int64, update service.UserUpdate) (model.User, error)
	Delete(ctx context.Context, id int64) error
}

// User handles HTTP endpoints for account administration.
type User struct {
	userService UserService
	logger      *logger.Logger
}

// NewUser creates a new User handler.
func NewUser(userService UserService, logger *logger.Logger) *User {
	return &User{
		userService: userService,
		logger:      logger,
	}
}

type userCreateRequest struct {
	Email    string  `json:"email" binding:"required,email"`
	Name     *string `json:"name"`
	Password string  `json:"password" binding:"required,min=6"`
	Role     string  `json:"role" binding:"omitempty,oneof=ADMIN USER"`
}

type userUpdateRequest struct {
	Email    string  `json:"email" binding:"required,email"`
	Name     *string `json:"name"`
	Role     string  `json:"role" binding:"required,oneof=ADMIN USER"`
	IsActive bool    `json:"isActive"`
	Password *string `json:"password" binding:"omitempty,min=6"`
}

// List returns all accounts.
func (h *User) List(c *gin.Context) {
	users, err := h.userService.List(c.Request.Context())
	if err != nil {
		handleError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// Create adds an account. The role defaults to USER.
func (h *User) Create(c *gin.Context) {
	var req userCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user payload"})
		return
	}

	user, err := h.userService.Create(c.Request.Context(), service.UserInput{
		Email:    req.Email,
		Name:     req.Name,
		Password: req.Password,
		Role:     model.Role(req.Role),
	})
	if err != nil {
		handleError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

// Update edits an account; the password changes only when one is sent.
func (h *User) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req userUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user payload"})
		return
	}

	user, err := h.userService.Update(c.Request.Context(), id, service.UserUpdate{
		Email:    req.Email,
		Name:     req.Name,
		Role:     model.Role(req.Role),
		IsActive: req.IsActive,
		Password: req.Password,
	})
	if err != nil {
		handleError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// Delete removes an account.
func (h *User) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.userService.Delete(c.Request.Context(), id); err != nil {
		handleError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
