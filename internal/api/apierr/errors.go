package apierr

import (
	"errors"
	"net/http"

	"github.com/mcoot/leaguebot-go/internal/model"
)

// HTTPError is an error with an associated HTTP status code and a stable
// machine-readable code for clients.
type HTTPError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewInvalidRequestError builds a 400 for malformed request input.
func NewInvalidRequestError(message string) *HTTPError {
	return &HTTPError{
		StatusCode: http.StatusBadRequest,
		Code:       "INVALID_REQUEST",
		Message:    message,
	}
}

// NewUnauthorizedError builds a 401 for missing or bad credentials.
func NewUnauthorizedError(message string) *HTTPError {
	return &HTTPError{
		StatusCode: http.StatusUnauthorized,
		Code:       "UNAUTHORIZED",
		Message:    message,
	}
}

// NewInternalError builds a 500 wrapping an unexpected failure.
func NewInternalError(err error) *HTTPError {
	return &HTTPError{
		StatusCode: http.StatusInternalServerError,
		Code:       "INTERNAL_ERROR",
		Message:    err.Error(),
	}
}

// ToHTTPError maps domain errors onto HTTP errors. Unknown errors become
// a 500 so handlers never leak raw error taxonomy decisions.
func ToHTTPError(err error) *HTTPError {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	switch {
	case errors.Is(err, model.ErrPlayerNotFound):
		return &HTTPError{
			StatusCode: http.StatusNotFound,
			Code:       "PLAYER_NOT_FOUND",
			Message:    err.Error(),
		}
	case errors.Is(err, model.ErrTeamNotFound):
		return &HTTPError{
			StatusCode: http.StatusNotFound,
			Code:       "TEAM_NOT_FOUND",
			Message:    err.Error(),
		}
	case errors.Is(err, model.ErrProfileNotFound):
		return &HTTPError{
			StatusCode: http.StatusNotFound,
			Code:       "PROFILE_NOT_FOUND",
			Message:    err.Error(),
		}
	case errors.Is(err, model.ErrAlreadyFreeAgent):
		return &HTTPError{
			StatusCode: http.StatusConflict,
			Code:       "ALREADY_FREE_AGENT",
			Message:    err.Error(),
		}
	case errors.Is(err, model.ErrAlreadyAffiliated):
		return &HTTPError{
			StatusCode: http.StatusConflict,
			Code:       "ALREADY_AFFILIATED",
			Message:    err.Error(),
		}
	case errors.Is(err, model.ErrChannelUnavailable):
		return &HTTPError{
			StatusCode: http.StatusBadGateway,
			Code:       "CHANNEL_UNAVAILABLE",
			Message:    err.Error(),
		}
	default:
		return NewInternalError(err)
	}
}
