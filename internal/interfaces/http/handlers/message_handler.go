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

// MessageHandler handles direct messaging endpoints
type MessageHandler struct {
	messageUsecase *usecases.MessageUsecase
}

// NewMessageHandler creates a new message handler
func NewMessageHandler(messageUsecase *usecases.MessageUsecase) *MessageHandler {
	return &MessageHandler{messageUsecase: messageUsecase}
}

// Send sends a direct message to a connected peer
// POST /api/v1/messages
func (h *MessageHandler) Send(c *gin.Context) {
	var input entities.SendMessageInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	profileID, ok := middleware.GetProfileID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Not authenticated"))
		return
	}

	msg, err := h.messageUsecase.Send(c.Request.Context(), profileID, &input)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, msg)
}

// Thread returns the message history with one peer, newest first
// GET /api/v1/messages/:peerId
func (h *MessageHandler) Thread(c *gin.Context) {
	peerID, ok := uuidParam(c, "peerId")
	if !ok {
		return
	}

	profileID, ok := middleware.GetProfileID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Not authenticated"))
		return
	}

	limit, offset := pagination(c)

	msgs, err := h.messageUsecase.Thread(c.Request.Context(), profileID, peerID, limit, offset)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"messages": msgs})
}

// Conversations summarizes the caller's threads
// GET /api/v1/messages
func (h *MessageHandler) Conversations(c *gin.Context) {
	profileID, ok := middleware.GetProfileID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Not authenticated"))
		return
	}

	conversations, err := h.messageUsecase.Conversations(c.Request.Context(), profileID)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"conversations": conversations})
}
