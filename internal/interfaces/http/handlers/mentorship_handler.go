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

// MentorshipHandler handles mentorship request endpoints
type MentorshipHandler struct {
	mentorshipUsecase *usecases.MentorshipUsecase
}

// NewMentorshipHandler creates a new mentorship handler
func NewMentorshipHandler(mentorshipUsecase *usecases.MentorshipUsecase) *MentorshipHandler {
	return &MentorshipHandler{mentorshipUsecase: mentorshipUsecase}
}

// Send sends a mentorship request to a mentor
// POST /api/v1/mentorship-requests
func (h *MentorshipHandler) Send(c *gin.Context) {
	var input entities.SendMentorshipInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	profileID, ok := middleware.GetProfileID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Not authenticated"))
		return
	}

	req, err := h.mentorshipUsecase.Send(c.Request.Context(), profileID, &input)
	if err != nil {
		if err == domainerrors.ErrForbidden {
			response.Error(c, domainerrors.Forbidden("Mentorship requests go from a startup to a mentor"))
			return
		}
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, req)
}

// Respond accepts or rejects a pending mentorship request
// POST /api/v1/mentorship-requests/:id/respond
func (h *MentorshipHandler) Respond(c *gin.Context) {
	requestID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	var input entities.RespondInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	profileID, ok := middleware.GetProfileID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Not authenticated"))
		return
	}

	req, err := h.mentorshipUsecase.Respond(c.Request.Context(), profileID, requestID, &input)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, req)
}

// Cancel withdraws the caller's own pending request
// DELETE /api/v1/mentorship-requests/:id
func (h *MentorshipHandler) Cancel(c *gin.Context) {
	requestID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	profileID, ok := middleware.GetProfileID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Not authenticated"))
		return
	}

	if err := h.mentorshipUsecase.Cancel(c.Request.Context(), profileID, requestID); err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Request cancelled"})
}

// ListSent lists the caller's outgoing mentorship requests
// GET /api/v1/mentorship-requests/sent
func (h *MentorshipHandler) ListSent(c *gin.Context) {
	profileID, ok := middleware.GetProfileID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Not authenticated"))
		return
	}

	reqs, err := h.mentorshipUsecase.ListSent(c.Request.Context(), profileID)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"requests": reqs})
}

// ListReceived lists mentorship requests addressed to the caller
// GET /api/v1/mentorship-requests/received
func (h *MentorshipHandler) ListReceived(c *gin.Context) {
	profileID, ok := middleware.GetProfileID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Not authenticated"))
		return
	}

	reqs, err := h.mentorshipUsecase.ListReceived(c.Request.Context(), profileID)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"requests": reqs})
}
