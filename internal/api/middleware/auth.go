package middleware

import (
	"errors"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/portfolio/contact-api/internal/api/metrics"
	"github.com/portfolio/contact-api/internal/core/domain"
	"github.com/portfolio/contact-api/internal/core/ports"
)

// ClaimsKey is the echo.Context key holding the verified *domain.Claims.
const ClaimsKey = "claims"

// Auth verifies the bearer token and stores its claims in the context.
// Errors are domain token errors; the HTTP error handler renders them as 401.
func Auth(tokens ports.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw, ok := bearer(c.Request().Header.Get(echo.HeaderAuthorization))
			if !ok {
				metrics.AuthRejectionsTotal.WithLabelValues("no_token").Inc()
				return domain.ErrTokenMissing
			}

			claims, err := tokens.Verify(raw)
			if err != nil {
				reason := "invalid"
				if errors.Is(err, domain.ErrTokenExpired) {
					reason = "expired"
				}
				metrics.AuthRejectionsTotal.WithLabelValues(reason).Inc()
				return err
			}

			c.Set(ClaimsKey, claims)
			return next(c)
		}
	}
}

// ClaimsFrom returns the claims stored by Auth, or nil.
func ClaimsFrom(c echo.Context) *domain.Claims {
	claims, _ := c.Get(ClaimsKey).(*domain.Claims)
	return claims
}

func bearer(header string) (string, bool) {
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
