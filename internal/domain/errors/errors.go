package errors

import (
	"errors"
	"net/http"
)

// Domain errors
var (
	ErrNotFound           = errors.New("resource not found")
	ErrAlreadyExists      = errors.New("resource already exists")
	ErrInvalidInput       = errors.New("invalid input")
	ErrBadRequest         = errors.New("bad request")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrAccountSuspended   = errors.New("account suspended")
	ErrAccountBanned      = errors.New("account banned")
	ErrSelfRequest        = errors.New("cannot send a request to yourself")
	ErrRequestNotPending  = errors.New("request is not pending")
	ErrAlreadyConnected   = errors.New("already connected")
	ErrRequestPending     = errors.New("request already pending")
	ErrEventFull          = errors.New("event has reached maximum participants")
	ErrDeadlinePassed     = errors.New("registration deadline has passed")
	ErrEventStarted       = errors.New("event has already started")
	ErrAlreadyRegistered  = errors.New("already registered for this event")
	ErrNotConnected       = errors.New("users are not connected")
	ErrRateLimited        = errors.New("rate limit exceeded")
)

// AppError represents an application error with its HTTP status
type AppError struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new app error
func NewAppError(status int, message string, err error) *AppError {
	return &AppError{
		Status:  status,
		Message: message,
		Err:     err,
	}
}

// Common error constructors
func NotFound(message string) *AppError {
	return NewAppError(http.StatusNotFound, message, ErrNotFound)
}

func BadRequest(message string) *AppError {
	return NewAppError(http.StatusBadRequest, message, ErrInvalidInput)
}

func Unauthorized(message string) *AppError {
	return NewAppError(http.StatusUnauthorized, message, ErrUnauthorized)
}

func Forbidden(message string) *AppError {
	return NewAppError(http.StatusForbidden, message, ErrForbidden)
}

func Conflict(message string) *AppError {
	return NewAppError(http.StatusConflict, message, ErrAlreadyExists)
}

func TooManyRequests(message string) *AppError {
	return NewAppError(http.StatusTooManyRequests, message, ErrRateLimited)
}

func InternalError(err error) *AppError {
	return NewAppError(http.StatusInternalServerError, "internal server error", err)
}

// NewError creates a new error with a custom message wrapping an existing error
func NewError(message string, err error) error {
	return &AppError{
		Status:  http.StatusBadRequest,
		Message: message,
		Err:     err,
	}
}
