package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	domainerrors "venture-link.backend/internal/domain/errors"
	"venture-link.backend/internal/interfaces/http/middleware"
	"venture-link.backend/internal/interfaces/http/response"
	"venture-link.backend/internal/usecases"
)

// NotificationHandler handles the caller's notification feed
type NotificationHandler struct {
	notificationUsecase *usecases.NotificationUsecase
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(notificationUsecase *usecases.NotificationUsecase) *NotificationHandler {
	return &NotificationHandler{notificationUsecase: notificationUsecase}
}

// List returns a page of the caller's notifications with unread counters
// GET /api/v1/notifications
func (h *NotificationHandler) List(c *gin.Context) {
	profileID, ok := middleware.GetProfileID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Not authenticated"))
		return
	}

	limit, offset := pagination(c)

	feed, err := h.notificationUsecase.List(c.Request.Context(), profileID, limit, offset)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, feed)
}

// MarkRead marks one notification read
// POST /api/v1/notifications/:id/read
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	notificationID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	profileID, ok := middleware.GetProfileID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Not authenticated"))
		return
	}

	if err := h.notificationUsecase.MarkRead(c.Request.Context(), profileID, notificationID); err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("Notification not found"))
			return
		}
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Marked read"})
}

// MarkAllRead marks every notification of the caller read
// POST /api/v1/notifications/read-all
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	profileID, ok := middleware.GetProfileID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Not authenticated"))
		return
	}

	if err := h.notificationUsecase.MarkAllRead(c.Request.Context(), profileID); err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "All marked read"})
}
