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

// AdminHandler handles the back-office endpoints. Routes using it sit behind
// the admin role middleware.
type AdminHandler struct {
	adminUsecase *usecases.AdminUsecase
	eventUsecase *usecases.EventUsecase
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(adminUsecase *usecases.AdminUsecase, eventUsecase *usecases.EventUsecase) *AdminHandler {
	return &AdminHandler{adminUsecase: adminUsecase, eventUsecase: eventUsecase}
}

// Stats returns platform-wide counters
// GET /api/v1/admin/stats
func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.adminUsecase.Stats(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, stats)
}

// ListUsers returns a filtered page of profiles
// GET /api/v1/admin/users?role=startup&search=acme
func (h *AdminHandler) ListUsers(c *gin.Context) {
	limit, offset := pagination(c)
	role := entities.ProfileRole(c.Query("role"))
	search := c.Query("search")

	users, total, err := h.adminUsecase.ListUsers(c.Request.Context(), role, search, limit, offset)
	if err != nil {
		if err == domainerrors.ErrInvalidInput {
			response.Error(c, domainerrors.BadRequest("Unknown role filter"))
			return
		}
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"users":      users,
		"pagination": paginationMeta(c, total, limit),
	})
}

// UpdateUserStatus suspends, bans or reactivates a profile
// PUT /api/v1/admin/users/:id/status
func (h *AdminHandler) UpdateUserStatus(c *gin.Context) {
	userID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	var input struct {
		Status entities.ProfileStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	actorID, ok := middleware.GetProfileID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Not authenticated"))
		return
	}

	profile, err := h.adminUsecase.UpdateUserStatus(c.Request.Context(), actorID, userID, input.Status)
	if err != nil {
		if err == domainerrors.ErrForbidden {
			response.Error(c, domainerrors.Forbidden("Admin accounts cannot be moderated"))
			return
		}
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, profile)
}

// DeleteUser soft deletes a profile
// DELETE /api/v1/admin/users/:id
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	userID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	actorID, ok := middleware.GetProfileID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Not authenticated"))
		return
	}

	if err := h.adminUsecase.DeleteUser(c.Request.Context(), actorID, userID); err != nil {
		if err == domainerrors.ErrForbidden {
			response.Error(c, domainerrors.Forbidden("Admin accounts cannot be deleted"))
			return
		}
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "User deleted"})
}

// ListEvents returns every event regardless of status
// GET /api/v1/admin/events
func (h *AdminHandler) ListEvents(c *gin.Context) {
	limit, offset := pagination(c)

	events, total, err := h.adminUsecase.ListEvents(c.Request.Context(), limit, offset)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"events":     events,
		"pagination": paginationMeta(c, total, limit),
	})
}

// DeleteEvent removes an event
// DELETE /api/v1/admin/events/:id
func (h *AdminHandler) DeleteEvent(c *gin.Context) {
	eventID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	actorID, ok := middleware.GetProfileID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Not authenticated"))
		return
	}

	if err := h.eventUsecase.Delete(c.Request.Context(), actorID, eventID); err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Event deleted"})
}

// ListActivity returns the platform-wide audit trail
// GET /api/v1/admin/activity
func (h *AdminHandler) ListActivity(c *gin.Context) {
	limit, offset := pagination(c)

	entries, total, err := h.adminUsecase.ListActivity(c.Request.Context(), limit, offset)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"activity":   entries,
		"pagination": paginationMeta(c, total, limit),
	})
}
