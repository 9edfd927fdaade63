package handlers

import (
	"errors"
	"net/http"
	"time"

	"article-hub/helper"
	"article-hub/middleware"
	"article-hub/models"
	"article-hub/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthHandler struct {
	authService services.AuthService
	Helper      *helper.HTTPHelper
}

func NewAuthHandler(authService services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBindingError(c, err)
		return
	}

	user, err := h.authService.Register(req)
	if err != nil {
		if errors.Is(err, models.ErrDuplicateEmail) {
			h.Helper.SendConflict(c, "Email already exists")
			return
		}
		h.Helper.SendServerError(c, "Signup error")
		return
	}

	h.Helper.SendCreated(c, gin.H{"user": user})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBindingError(c, err)
		return
	}

	response, err := h.authService.Login(req)
	if err != nil {
		if errors.Is(err, models.ErrInvalidCreds) {
			h.Helper.SendUnauthorized(c, err.Error())
			return
		}
		h.Helper.SendServerError(c, "Signin error")
		return
	}

	h.Helper.SendSuccess(c, gin.H{"token": response.Token, "user": response.User})
}

// Logout revokes the presented token for its remaining lifetime and
// sends the caller back to the login destination.
func (h *AuthHandler) Logout(c *gin.Context) {
	jti := c.GetString("jti")

	exp := time.Now()
	if v, exists := c.Get("token_exp"); exists {
		if t, ok := v.(time.Time); ok {
			exp = t
		}
	}

	h.authService.Logout(jti, exp)

	c.Redirect(http.StatusSeeOther, "/login")
}

// GetProfile serves the current-user endpoint.
func (h *AuthHandler) GetProfile(c *gin.Context) {
	userID := middleware.ContextUserID(c)
	if userID == uuid.Nil {
		h.Helper.SendUnauthorized(c, "Unauthorized")
		return
	}

	user, err := h.authService.GetUserByID(userID)
	if err != nil {
		h.Helper.SendServerError(c, "Failed to load users")
		return
	}

	h.Helper.SendSuccess(c, gin.H{"data": models.ProfileResponse{
		ID:        user.ID.String(),
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
	}})
}
