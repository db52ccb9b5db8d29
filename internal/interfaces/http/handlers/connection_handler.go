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

// ConnectionHandler handles connection request endpoints
type ConnectionHandler struct {
	connectionUsecase *usecases.ConnectionUsecase
}

// NewConnectionHandler creates a new connection handler
func NewConnectionHandler(connectionUsecase *usecases.ConnectionUsecase) *ConnectionHandler {
	return &ConnectionHandler{connectionUsecase: connectionUsecase}
}

// Send sends a connection request
// POST /api/v1/connections
func (h *ConnectionHandler) Send(c *gin.Context) {
	var input entities.SendConnectionInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	profileID, ok := middleware.GetProfileID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Not authenticated"))
		return
	}

	conn, err := h.connectionUsecase.Send(c.Request.Context(), profileID, &input)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, conn)
}

// Respond accepts or rejects a pending connection request
// POST /api/v1/connections/:id/respond
func (h *ConnectionHandler) Respond(c *gin.Context) {
	connectionID, ok := uuidParam(c, "id")
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

	conn, err := h.connectionUsecase.Respond(c.Request.Context(), profileID, connectionID, &input)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, conn)
}

// Cancel withdraws the caller's own pending request
// DELETE /api/v1/connections/:id
func (h *ConnectionHandler) Cancel(c *gin.Context) {
	connectionID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	profileID, ok := middleware.GetProfileID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Not authenticated"))
		return
	}

	if err := h.connectionUsecase.Cancel(c.Request.Context(), profileID, connectionID); err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Request cancelled"})
}

// List lists the caller's accepted connections
// GET /api/v1/connections
func (h *ConnectionHandler) List(c *gin.Context) {
	profileID, ok := middleware.GetProfileID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Not authenticated"))
		return
	}

	limit, offset := pagination(c)

	conns, err := h.connectionUsecase.ListConnections(c.Request.Context(), profileID, limit, offset)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"connections": conns})
}

// ListIncoming lists pending requests awaiting the caller's response
// GET /api/v1/connections/incoming
func (h *ConnectionHandler) ListIncoming(c *gin.Context) {
	profileID, ok := middleware.GetProfileID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Not authenticated"))
		return
	}

	conns, err := h.connectionUsecase.ListIncoming(c.Request.Context(), profileID)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"requests": conns})
}

// ListOutgoing lists the caller's pending requests
// GET /api/v1/connections/outgoing
func (h *ConnectionHandler) ListOutgoing(c *gin.Context) {
	profileID, ok := middleware.GetProfileID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Not authenticated"))
		return
	}

	conns, err := h.connectionUsecase.ListOutgoing(c.Request.Context(), profileID)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"requests": conns})
}
