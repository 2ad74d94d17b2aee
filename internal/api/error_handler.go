package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/yourplaces/places-api/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Message string `json:"message"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"message": "<message>"}.
//
// Handlers forward failures here instead of writing responses themselves, so
// this is the single terminal stage of the request pipeline.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Message: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Router-level 404 (no handler matched).
	if errors.Is(err, echo.ErrNotFound) {
		return http.StatusNotFound, "Could not find this route."
	}

	// Echo's own errors (bind failures, auth middleware rejections, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrPlaceNotFound):
		return http.StatusNotFound, "Could not find a place with the given id."
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "Could not find a user with the given id."
	case errors.Is(err, domain.ErrLocationNotFound):
		return http.StatusNotFound, "Could not find location for the address given."
	case errors.Is(err, domain.ErrNotOwner):
		return http.StatusUnauthorized, "You are not authorized to modify this place."
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusForbidden, "Invalid credentials, please try again."
	case errors.Is(err, domain.ErrEmailTaken):
		return http.StatusUnprocessableEntity, "User already exists, please sign in."
	case errors.Is(err, domain.ErrWriteFailed):
		return http.StatusInternalServerError, "Could not save changes, please try again."
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "An unknown error occurred."
}
