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

// EventHandler handles event and registration endpoints
type EventHandler struct {
	eventUsecase *usecases.EventUsecase
}

// NewEventHandler creates a new event handler
func NewEventHandler(eventUsecase *usecases.EventUsecase) *EventHandler {
	return &EventHandler{eventUsecase: eventUsecase}
}

func isAdmin(c *gin.Context) bool {
	role, ok := middleware.GetProfileRole(c)
	return ok && role == string(entities.ProfileRoleAdmin)
}

// Create creates a draft event owned by the caller
// POST /api/v1/events
func (h *EventHandler) Create(c *gin.Context) {
	var input entities.CreateEventInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	profileID, ok := middleware.GetProfileID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Not authenticated"))
		return
	}

	event, err := h.eventUsecase.Create(c.Request.Context(), profileID, &input)
	if err != nil {
		if err == domainerrors.ErrInvalidInput {
			response.Error(c, domainerrors.BadRequest("Event dates are inconsistent"))
			return
		}
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, event)
}

// Update applies partial changes to an event
// PUT /api/v1/events/:id
func (h *EventHandler) Update(c *gin.Context) {
	eventID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	var input entities.UpdateEventInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	profileID, ok := middleware.GetProfileID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Not authenticated"))
		return
	}

	event, err := h.eventUsecase.Update(c.Request.Context(), profileID, eventID, &input, isAdmin(c))
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, event)
}

// Cancel cancels an event and notifies registrants
// POST /api/v1/events/:id/cancel
func (h *EventHandler) Cancel(c *gin.Context) {
	eventID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	profileID, ok := middleware.GetProfileID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Not authenticated"))
		return
	}

	if err := h.eventUsecase.CancelEvent(c.Request.Context(), profileID, eventID, isAdmin(c)); err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Event cancelled"})
}

// Get returns an event with its confirmed attendance count
// GET /api/v1/events/:id
func (h *EventHandler) Get(c *gin.Context) {
	eventID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	event, err := h.eventUsecase.Get(c.Request.Context(), eventID)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("Event not found"))
			return
		}
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, event)
}

// List lists published events visible to the caller's role
// GET /api/v1/events
func (h *EventHandler) List(c *gin.Context) {
	limit, offset := pagination(c)

	role, _ := middleware.GetProfileRole(c)

	events, total, err := h.eventUsecase.ListPublished(c.Request.Context(), entities.ProfileRole(role), limit, offset)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"events":     events,
		"pagination": paginationMeta(c, total, limit),
	})
}

// Register registers the caller for an event
// POST /api/v1/events/:id/register
func (h *EventHandler) Register(c *gin.Context) {
	eventID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	profileID, ok := middleware.GetProfileID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Not authenticated"))
		return
	}

	reg, err := h.eventUsecase.Register(c.Request.Context(), profileID, eventID)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("Event not found"))
			return
		}
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, reg)
}

// CancelRegistration withdraws the caller's registration
// DELETE /api/v1/registrations/:id
func (h *EventHandler) CancelRegistration(c *gin.Context) {
	registrationID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	profileID, ok := middleware.GetProfileID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Not authenticated"))
		return
	}

	if err := h.eventUsecase.CancelRegistration(c.Request.Context(), profileID, registrationID); err != nil {
		if err == domainerrors.ErrEventStarted {
			response.Error(c, domainerrors.BadRequest("Cannot cancel registration for events that have already started"))
			return
		}
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Registration cancelled"})
}

// ReviewRegistration confirms or rejects a pending registration
// POST /api/v1/registrations/:id/review
func (h *EventHandler) ReviewRegistration(c *gin.Context) {
	registrationID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	var input struct {
		Approve bool `json:"approve"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	profileID, ok := middleware.GetProfileID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Not authenticated"))
		return
	}

	if err := h.eventUsecase.ReviewRegistration(c.Request.Context(), profileID, registrationID, input.Approve, isAdmin(c)); err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Registration reviewed"})
}

// MyRegistrations lists the caller's registrations
// GET /api/v1/registrations
func (h *EventHandler) MyRegistrations(c *gin.Context) {
	profileID, ok := middleware.GetProfileID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Not authenticated"))
		return
	}

	regs, err := h.eventUsecase.ListMyRegistrations(c.Request.Context(), profileID)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"registrations": regs})
}

// Roster lists an event's registrations for its organizer
// GET /api/v1/events/:id/registrations
func (h *EventHandler) Roster(c *gin.Context) {
	eventID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	profileID, ok := middleware.GetProfileID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Not authenticated"))
		return
	}

	regs, err := h.eventUsecase.Roster(c.Request.Context(), profileID, eventID, isAdmin(c))
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"registrations": regs})
}
