package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"venture-link.backend/internal/domain/entities"
	domainerrors "venture-link.backend/internal/domain/errors"
	"venture-link.backend/internal/interfaces/http/middleware"
	"venture-link.backend/internal/interfaces/http/response"
	"venture-link.backend/internal/usecases"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authUsecase *usecases.AuthUsecase
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUsecase *usecases.AuthUsecase) *AuthHandler {
	return &AuthHandler{authUsecase: authUsecase}
}

// Register handles member registration
// POST /api/v1/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var input entities.RegisterInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	profile, err := h.authUsecase.Register(c.Request.Context(), &input)
	if err != nil {
		if err == domainerrors.ErrAlreadyExists {
			response.Error(c, domainerrors.Conflict("Email already registered"))
			return
		}
		if err == domainerrors.ErrInvalidInput {
			response.Error(c, domainerrors.BadRequest("Role payload does not match the requested role"))
			return
		}
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"message": "Registration successful",
		"profile": profile,
	})
}

// Login handles member login
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var input entities.LoginInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	authResponse, err := h.authUsecase.Login(c.Request.Context(), &input)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, authResponse)
}

// Refresh exchanges a refresh token for a new token pair
// POST /api/v1/auth/refresh
func (h *AuthHandler) Refresh(c *gin.Context) {
	var input struct {
		RefreshToken string `json:"refresh_token" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	pair, err := h.authUsecase.Refresh(c.Request.Context(), input.RefreshToken)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, pair)
}

// Logout drops the redis session when session auth is in use
// POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	sessionID := c.GetHeader(middleware.SessionIDHeader)

	if err := h.authUsecase.Logout(c.Request.Context(), sessionID); err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Logged out"})
}

// ChangePassword replaces the caller's password
// POST /api/v1/auth/change-password
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var input entities.ChangePasswordInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	profileID, ok := middleware.GetProfileID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Not authenticated"))
		return
	}

	if err := h.authUsecase.ChangePassword(c.Request.Context(), profileID, &input); err != nil {
		if err == domainerrors.ErrInvalidCredentials {
			response.Error(c, domainerrors.Unauthorized("Current password is incorrect"))
			return
		}
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Password changed"})
}
