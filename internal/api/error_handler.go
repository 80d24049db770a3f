package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/shopkit/commerce-api/internal/api/metrics"
	"github.com/shopkit/commerce-api/internal/core/domain"
)

// errorItem is one tagged failure on the wire: a stable name identifying
// the error category plus a human-readable message.
type errorItem struct {
	Name    string `json:"name"`
	Message string `json:"message"`
}

// errorEnvelope is the canonical shape of every non-2xx JSON body.
type errorEnvelope struct {
	Errors []errorItem `json:"errors"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their HTTP status codes and wire names.
//   - Expands validation failures into one item per violated rule.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"errors": [{"name", "message"}]}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, env := normalizeError(err, log, c)
		for _, item := range env.Errors {
			metrics.RequestErrorsTotal.WithLabelValues(item.Name).Inc()
		}
		_ = c.JSON(code, env)
	}
}

func normalizeError(err error, log zerolog.Logger, c echo.Context) (int, errorEnvelope) {
	// Aggregate validation failures: one item per violated rule, in rule order.
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		items := make([]errorItem, len(ve.Items))
		for i, it := range ve.Items {
			items[i] = errorItem{Name: it.Name, Message: it.Message}
		}
		return http.StatusBadRequest, errorEnvelope{Errors: items}
	}

	var nf *domain.NotFoundError
	if errors.As(err, &nf) {
		return http.StatusNotFound, singleError(nf.Kind(), nf.Error())
	}

	code, env, known := knownError(err)
	if known {
		// A route-level override (the authorization gate answers 403 while the
		// shared table maps the bare error to 401) wins over the table status.
		var se *domain.StatusError
		if errors.As(err, &se) {
			code = se.Status
		}
		return code, env
	}

	// Echo's own errors (bind failures, 404 from the router, etc.) keep their
	// status but are forced into the envelope shape.
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, singleError(statusName(he.Code), fmt.Sprintf("%v", he.Message))
	}

	// Unexpected error: log the real cause, return a generic message. The
	// original text never reaches the client.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, singleError("InternalServerError", "Internal server error")
}

// knownError is the fixed dispatch table for terminal single-item errors.
func knownError(err error) (int, errorEnvelope, bool) {
	switch {
	case errors.Is(err, domain.ErrInvalidLogin):
		return http.StatusBadRequest, singleError("invalidLogin", "Invalid email or password!"), true
	case errors.Is(err, domain.ErrNotAuthorized):
		return http.StatusUnauthorized, singleError("notAuthorizedUser", "User not authorized perform this action"), true
	case errors.Is(err, domain.ErrNotAuthenticated):
		return http.StatusUnauthorized, singleError("notAuthenticated", "User not authenticated"), true
	}
	return 0, errorEnvelope{}, false
}

func singleError(name, message string) errorEnvelope {
	return errorEnvelope{Errors: []errorItem{{Name: name, Message: message}}}
}

// statusName maps an echo-originated status to a wire error name so router
// and bind failures still speak the envelope dialect.
func statusName(code int) string {
	switch code {
	case http.StatusBadRequest:
		return "badRequest"
	case http.StatusNotFound:
		return "notFound"
	case http.StatusMethodNotAllowed:
		return "methodNotAllowed"
	default:
		return "InternalServerError"
	}
}
