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

// InvestmentHandler handles investment request endpoints
type InvestmentHandler struct {
	investmentUsecase *usecases.InvestmentUsecase
}

// NewInvestmentHandler creates a new investment handler
func NewInvestmentHandler(investmentUsecase *usecases.InvestmentUsecase) *InvestmentHandler {
	return &InvestmentHandler{investmentUsecase: investmentUsecase}
}

// Send sends an investment request to an investor
// POST /api/v1/investment-requests
func (h *InvestmentHandler) Send(c *gin.Context) {
	var input entities.SendInvestmentInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	profileID, ok := middleware.GetProfileID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Not authenticated"))
		return
	}

	req, err := h.investmentUsecase.Send(c.Request.Context(), profileID, &input)
	if err != nil {
		if err == domainerrors.ErrForbidden {
			response.Error(c, domainerrors.Forbidden("Investment requests go from a startup to an investor"))
			return
		}
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, req)
}

// Respond accepts or rejects a pending investment request
// POST /api/v1/investment-requests/:id/respond
func (h *InvestmentHandler) Respond(c *gin.Context) {
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

	req, err := h.investmentUsecase.Respond(c.Request.Context(), profileID, requestID, &input)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, req)
}

// Cancel withdraws the caller's own pending request
// DELETE /api/v1/investment-requests/:id
func (h *InvestmentHandler) Cancel(c *gin.Context) {
	requestID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	profileID, ok := middleware.GetProfileID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Not authenticated"))
		return
	}

	if err := h.investmentUsecase.Cancel(c.Request.Context(), profileID, requestID); err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Request cancelled"})
}

// ListSent lists the caller's outgoing investment requests
// GET /api/v1/investment-requests/sent
func (h *InvestmentHandler) ListSent(c *gin.Context) {
	profileID, ok := middleware.GetProfileID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Not authenticated"))
		return
	}

	reqs, err := h.investmentUsecase.ListSent(c.Request.Context(), profileID)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"requests": reqs})
}

// ListReceived lists investment requests addressed to the caller
// GET /api/v1/investment-requests/received
func (h *InvestmentHandler) ListReceived(c *gin.Context) {
	profileID, ok := middleware.GetProfileID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Not authenticated"))
		return
	}

	reqs, err := h.investmentUsecase.ListReceived(c.Request.Context(), profileID)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"requests": reqs})
}
