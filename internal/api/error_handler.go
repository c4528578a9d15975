package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/portfolio/contact-api/internal/api/handler"
	"github.com/portfolio/contact-api/internal/core/domain"
)

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps domain errors to their HTTP status codes.
//   - Logs every failure with the request that caused it.
//   - Hides 5xx details from clients when production is set.
func NewHTTPErrorHandler(log zerolog.Logger, production bool) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, body := resolveError(err, c)

		evt := log.Warn()
		if code >= http.StatusInternalServerError {
			evt = log.Error()
			if production {
				body.Error = ""
			}
		}
		evt.Err(err).
			Int("status", code).
			Str("method", c.Request().Method).
			Str("path", c.Path()).
			Str("request_id", c.Response().Header().Get(echo.HeaderXRequestID)).
			Msg("request failed")

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, body)
	}
}

func resolveError(err error, c echo.Context) (int, handler.ErrorResponse) {
	detail := err.Error()
	var op *handler.OpError
	if errors.As(err, &op) {
		detail = op.Err.Error()
	}

	switch {
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidStatus),
		errors.Is(err, domain.ErrInvalidRole):
		return http.StatusBadRequest, handler.ErrorResponse{Message: "Validation failed", Error: detail}
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, handler.ErrorResponse{Message: "User not found"}
	case errors.Is(err, domain.ErrMessageNotFound):
		return http.StatusNotFound, handler.ErrorResponse{Message: "Message not found"}
	case errors.Is(err, domain.ErrUserExists):
		return http.StatusConflict, handler.ErrorResponse{Message: "User already exists", Error: detail}
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, handler.ErrorResponse{Message: "Invalid credentials"}
	case errors.Is(err, domain.ErrTokenMissing):
		return http.StatusUnauthorized, handler.ErrorResponse{Message: "Not authorized, no token"}
	case errors.Is(err, domain.ErrTokenExpired):
		return http.StatusUnauthorized, handler.ErrorResponse{Message: "Not authorized, token expired"}
	case errors.Is(err, domain.ErrTokenInvalid):
		return http.StatusUnauthorized, handler.ErrorResponse{Message: "Not authorized, invalid token"}
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, handler.ErrorResponse{Message: "Forbidden: insufficient role"}
	}

	// Echo's own errors: unknown routes, wrong methods, oversized bodies.
	var he *echo.HTTPError
	if errors.As(err, &he) {
		if he.Code == http.StatusNotFound {
			return he.Code, handler.ErrorResponse{Message: "Not Found - " + c.Request().URL.Path}
		}
		return he.Code, handler.ErrorResponse{Message: fmt.Sprintf("%v", he.Message)}
	}

	message := "Internal server error"
	if op != nil {
		message = op.Message
	}
	return http.StatusInternalServerError, handler.ErrorResponse{Message: message, Error: detail}
}
