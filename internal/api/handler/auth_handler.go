package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/portfolio/contact-api/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// VerifyUser checks credentials and returns an access token.
//
// @Summary      Verify user credentials
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      credentialsRequest  true  "Credentials"
// @Success      200   {object}  verifyUserResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      401   {object}  ErrorResponse
// @Failure      404   {object}  ErrorResponse
// @Router       /verifyUser [post]
func (h *AuthHandler) VerifyUser(c echo.Context) error {
	var req credentialsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	token, _, err := h.authService.VerifyUser(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return fail("Error occurred while verifying user with username: "+req.Username, err)
	}
	return c.JSON(http.StatusOK, verifyUserResponse{Message: true, Token: token})
}

// AdminLogin issues a token to an admin account.
//
// @Summary      Admin login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      credentialsRequest  true  "Admin credentials"
// @Success      200   {object}  tokenResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      401   {object}  ErrorResponse
// @Router       /admin/login [post]
func (h *AuthHandler) AdminLogin(c echo.Context) error {
	var req credentialsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	token, err := h.authService.AdminLogin(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return fail("Error occurred during admin login", err)
	}
	return c.JSON(http.StatusOK, tokenResponse{Token: token})
}
