package apierrors

import (
	"errors"

	"loyalty-server/internal/domain"
	"loyalty-server/internal/store"
)

// MapError converts domain and store errors to APIErrors.
// If the error is already an APIError, it is returned as-is.
// Unknown errors become a sanitized InternalError (500).
func MapError(err error) *APIError {
	if err == nil {
		return nil
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	var validationErr *domain.ValidationError
	var notFoundErr *domain.NotFoundError
	var balanceErr *domain.InsufficientBalanceError
	var queueErr *domain.NoActiveQueueEntryError
	var upstreamErr *domain.UpstreamTransportError

	switch {
	case errors.As(err, &validationErr):
		return BadRequest(CodeInvalidInput, validationErr.Error())

	case errors.As(err, &notFoundErr):
		return NotFound(CodeNotFound, notFoundErr.Error())

	case errors.As(err, &balanceErr):
		return Conflict(CodeInsufficientBalance, balanceErr.Error())

	case errors.As(err, &queueErr):
		return Conflict(CodeNoActiveQueueEntry, queueErr.Error())

	case errors.As(err, &upstreamErr):
		return BadGateway(upstreamErr.Service+" is temporarily unavailable", err)

	// Map store errors
	case errors.Is(err, store.ErrNotFound):
		return NotFound(CodeNotFound, "Resource not found")

	case errors.Is(err, store.ErrDuplicate):
		return Conflict(CodeConflict, "Resource already exists")

	default:
		return InternalError(err)
	}
}
