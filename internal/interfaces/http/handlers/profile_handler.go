package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"venture-link.backend/internal/domain/entities"
	domainerrors "venture-link.backend/internal/domain/errors"
	"venture-link.backend/internal/interfaces/http/middleware"
	"venture-link.backend/internal/interfaces/http/response"
	"venture-link.backend/internal/usecases"
)

// ProfileHandler handles profile and discovery endpoints
type ProfileHandler struct {
	profileUsecase *usecases.ProfileUsecase
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(profileUsecase *usecases.ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{profileUsecase: profileUsecase}
}

// GetMe returns the caller's own profile
// GET /api/v1/profiles/me
func (h *ProfileHandler) GetMe(c *gin.Context) {
	profileID, ok := middleware.GetProfileID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Not authenticated"))
		return
	}

	profile, err := h.profileUsecase.Get(c.Request.Context(), profileID)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, profile)
}

// UpdateMe applies partial changes to the caller's profile
// PUT /api/v1/profiles/me
func (h *ProfileHandler) UpdateMe(c *gin.Context) {
	var input entities.UpdateProfileInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	profileID, ok := middleware.GetProfileID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Not authenticated"))
		return
	}

	profile, err := h.profileUsecase.Update(c.Request.Context(), profileID, &input)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, profile)
}

// GetByID returns another member's profile
// GET /api/v1/profiles/:id
func (h *ProfileHandler) GetByID(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	profile, err := h.profileUsecase.Get(c.Request.Context(), id)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("Profile not found"))
			return
		}
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, profile)
}

// Browse lists profiles filtered by role and free-text search
// GET /api/v1/profiles?role=mentor&search=fintech
func (h *ProfileHandler) Browse(c *gin.Context) {
	limit, offset := pagination(c)
	role := entities.ProfileRole(c.Query("role"))
	search := c.Query("search")

	profiles, total, err := h.profileUsecase.Browse(c.Request.Context(), role, search, limit, offset)
	if err != nil {
		if err == domainerrors.ErrInvalidInput {
			response.Error(c, domainerrors.BadRequest("Unknown role filter"))
			return
		}
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"profiles":   profiles,
		"pagination": paginationMeta(c, total, limit),
	})
}

// Recommendations suggests unconnected counterparts for the caller
// GET /api/v1/profiles/recommendations?limit=10
func (h *ProfileHandler) Recommendations(c *gin.Context) {
	profileID, ok := middleware.GetProfileID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Not authenticated"))
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	profiles, err := h.profileUsecase.Recommendations(c.Request.Context(), profileID, limit)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"recommendations": profiles})
}
