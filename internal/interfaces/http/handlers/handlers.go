package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	domainerrors "venture-link.backend/internal/domain/errors"
	"venture-link.backend/internal/interfaces/http/response"
	"venture-link.backend/pkg/utils"
)

// handleError translates domain sentinels into HTTP error responses.
// Handlers special-case errors that need a bespoke message before falling
// through to this mapping.
func handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domainerrors.ErrNotFound):
		response.Error(c, domainerrors.NotFound("Resource not found"))
	case errors.Is(err, domainerrors.ErrInvalidInput):
		response.Error(c, domainerrors.BadRequest("Invalid input"))
	case errors.Is(err, domainerrors.ErrUnauthorized):
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
	case errors.Is(err, domainerrors.ErrForbidden):
		response.Error(c, domainerrors.Forbidden("You are not allowed to perform this action"))
	case errors.Is(err, domainerrors.ErrInvalidCredentials):
		response.Error(c, domainerrors.Unauthorized("Invalid email or password"))
	case errors.Is(err, domainerrors.ErrTokenExpired):
		response.Error(c, domainerrors.Unauthorized("Token has expired"))
	case errors.Is(err, domainerrors.ErrAccountSuspended):
		response.Error(c, domainerrors.Forbidden("Account is suspended"))
	case errors.Is(err, domainerrors.ErrAccountBanned):
		response.Error(c, domainerrors.Forbidden("Account is banned"))
	case errors.Is(err, domainerrors.ErrSelfRequest):
		response.Error(c, domainerrors.BadRequest("Cannot send a request to yourself"))
	case errors.Is(err, domainerrors.ErrAlreadyExists):
		response.Error(c, domainerrors.Conflict("Resource already exists"))
	case errors.Is(err, domainerrors.ErrAlreadyConnected):
		response.Error(c, domainerrors.Conflict("Already connected"))
	case errors.Is(err, domainerrors.ErrRequestPending):
		response.Error(c, domainerrors.Conflict("A request is already pending"))
	case errors.Is(err, domainerrors.ErrRequestNotPending):
		response.Error(c, domainerrors.Conflict("Request is no longer pending"))
	case errors.Is(err, domainerrors.ErrAlreadyRegistered):
		response.Error(c, domainerrors.Conflict("Already registered for this event"))
	case errors.Is(err, domainerrors.ErrEventFull):
		response.Error(c, domainerrors.Conflict("Event has reached maximum participants"))
	case errors.Is(err, domainerrors.ErrDeadlinePassed):
		response.Error(c, domainerrors.BadRequest("Registration deadline has passed"))
	case errors.Is(err, domainerrors.ErrEventStarted):
		response.Error(c, domainerrors.BadRequest("Event has already started"))
	case errors.Is(err, domainerrors.ErrNotConnected):
		response.Error(c, domainerrors.Forbidden("You can only message your connections"))
	default:
		response.Error(c, err)
	}
}

// pagination reads ?page= and ?limit= with sane defaults
func pagination(c *gin.Context) (limit, offset int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	params := utils.GetPaginationParams(page, limit)
	return params.Limit, params.CalculateOffset()
}

func paginationMeta(c *gin.Context, total int64, limit int) utils.PaginationMeta {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	return utils.CalculateMeta(total, page, limit)
}

// uuidParam parses a path parameter as a UUID
func uuidParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid "+name))
		return uuid.Nil, false
	}
	return id, true
}
