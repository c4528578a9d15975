package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/portfolio/contact-api/internal/api/metrics"
	"github.com/portfolio/contact-api/internal/core/domain"
)

// RBAC admits only callers whose token role is one of allowedRoles.
// It must run after Auth.
func RBAC(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[domain.Role]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims := ClaimsFrom(c)
			if claims == nil {
				metrics.AuthRejectionsTotal.WithLabelValues("no_token").Inc()
				return domain.ErrTokenMissing
			}
			if _, ok := allowed[claims.Role]; !ok {
				metrics.AuthRejectionsTotal.WithLabelValues("forbidden").Inc()
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}
