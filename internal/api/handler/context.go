package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/portfolio/contact-api/internal/api/middleware"
	"github.com/portfolio/contact-api/internal/core/domain"
	"github.com/portfolio/contact-api/internal/core/ports"
)

// actor returns the caller identity admitted by the Auth middleware.
// A route reached without claims is treated as unauthenticated.
func actor(c echo.Context) (ports.Actor, error) {
	claims := middleware.ClaimsFrom(c)
	if claims == nil || claims.UserID == "" {
		return ports.Actor{}, domain.ErrTokenMissing
	}
	return ports.Actor{UserID: claims.UserID, Role: claims.Role}, nil
}
