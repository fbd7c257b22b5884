package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/receptionhq/queue-calling/internal/core/domain"
)

// errorEnvelope is the canonical error shape: a machine-readable code under a
// mandatory ok flag.
type errorEnvelope struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}

// codeFor maps domain sentinel errors to their HTTP status and wire code.
var codeFor = map[error]struct {
	status int
	code   string
}{
	domain.ErrMissingFields:     {http.StatusBadRequest, "MISSING_FIELDS"},
	domain.ErrInvalidLogin:      {http.StatusUnauthorized, "INVALID_LOGIN"},
	domain.ErrUnauthorized:      {http.StatusUnauthorized, "UNAUTHORIZED"},
	domain.ErrForbidden:         {http.StatusForbidden, "FORBIDDEN"},
	domain.ErrUserExists:        {http.StatusConflict, "USER_EXISTS"},
	domain.ErrInvalidRole:       {http.StatusBadRequest, "INVALID_ROLE"},
	domain.ErrInvalidUsername:   {http.StatusBadRequest, "INVALID_USERNAME"},
	domain.ErrInvalidPassword:   {http.StatusBadRequest, "INVALID_PASSWORD"},
	domain.ErrUserNotFound:      {http.StatusNotFound, "NOT_FOUND"},
	domain.ErrCannotDeleteAdmin: {http.StatusBadRequest, "CANNOT_DELETE_ADMIN"},
	domain.ErrNoPrevious:        {http.StatusBadRequest, "NO_PREVIOUS"},
	domain.ErrInvalidImage:      {http.StatusBadRequest, "INVALID_IMAGE"},
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps domain sentinel errors to their HTTP status and error code.
//   - Folds Echo's own routing errors into the same envelope.
//   - Logs unexpected errors internally without leaking details to the client.
//
// Nothing escapes the request boundary unconverted.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, code := resolveError(err, log, c)
		_ = c.JSON(status, errorEnvelope{OK: false, Error: code})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	for sentinel, mapped := range codeFor {
		if errors.Is(err, sentinel) {
			return mapped.status, mapped.code
		}
	}

	// Echo's own errors: unknown routes, method mismatches, bind failures.
	var he *echo.HTTPError
	if errors.As(err, &he) {
		switch he.Code {
		case http.StatusNotFound, http.StatusMethodNotAllowed:
			return http.StatusNotFound, "NOT_FOUND"
		case http.StatusUnauthorized:
			return http.StatusUnauthorized, "UNAUTHORIZED"
		case http.StatusForbidden:
			return http.StatusForbidden, "FORBIDDEN"
		case http.StatusBadRequest:
			return http.StatusBadRequest, "MISSING_FIELDS"
		}
	}

	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "INTERNAL"
}
