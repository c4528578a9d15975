package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/portfolio/contact-api/internal/core/domain"
	"github.com/portfolio/contact-api/internal/core/ports"
)

// UserHandler handles HTTP requests for user accounts.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// Create registers a new user.
//
// @Summary      Create a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      createUserRequest  true  "User details"
// @Success      201   {object}  userResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      409   {object}  ErrorResponse
// @Failure      500   {object}  ErrorResponse
// @Router       /users [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.service.Create(c.Request().Context(), ports.CreateUserInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Username:  req.Username,
		Password:  req.Password,
	})
	if err != nil {
		return fail("Failed to create user", err)
	}
	return c.JSON(http.StatusCreated, toUserResponse(user))
}

// List returns every user.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   userResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.service.List(c.Request().Context())
	if err != nil {
		return fail("Error occurred while trying to retrieve all users", err)
	}
	return c.JSON(http.StatusOK, toUserListResponse(users))
}

// Get returns a single user.
//
// @Summary      Get a user by id
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  userResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	id := c.Param("id")
	user, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return fail(fmt.Sprintf("Error occurred while trying to retrieve user with ID: %s", id), err)
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}

// Search finds users by exact username.
//
// @Summary      Search users by username
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        username  query     string  true  "Username"
// @Success      200       {array}   userResponse
// @Failure      400       {object}  ErrorResponse
// @Failure      404       {object}  ErrorResponse
// @Router       /searchUser [get]
func (h *UserHandler) Search(c echo.Context) error {
	username := c.QueryParam("username")
	users, err := h.service.Search(c.Request().Context(), username)
	if err != nil {
		return fail(fmt.Sprintf("Error occurred while trying to retrieve user with username: %s", username), err)
	}
	return c.JSON(http.StatusOK, toUserListResponse(users))
}

// Update changes profile fields and, when given, the password.
//
// @Summary      Update a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "User id"
// @Param        body  body      updateUserRequest  true  "Fields to change"
// @Success      200   {object}  userResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      403   {object}  ErrorResponse
// @Failure      404   {object}  ErrorResponse
// @Failure      409   {object}  ErrorResponse
// @Router       /users/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	who, err := actor(c)
	if err != nil {
		return err
	}

	var req updateUserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	id := c.Param("id")
	user, err := h.service.Update(c.Request().Context(), who, id, ports.UpdateUserInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Username:  req.Username,
		Password:  req.Password,
	})
	if err != nil {
		return fail(fmt.Sprintf("Error occurred while trying to update user with ID: %s", id), err)
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}

// ChangeRole sets a user's role. Admin only.
//
// @Summary      Change a user's role
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "User id"
// @Param        body  body      changeRoleRequest  true  "New role"
// @Success      200   {object}  userResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      403   {object}  ErrorResponse
// @Failure      404   {object}  ErrorResponse
// @Router       /users/{id}/role [patch]
func (h *UserHandler) ChangeRole(c echo.Context) error {
	var req changeRoleRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	id := c.Param("id")
	user, err := h.service.ChangeRole(c.Request().Context(), id, domain.Role(req.Role))
	if err != nil {
		return fail(fmt.Sprintf("Error occurred while trying to change role of user with ID: %s", id), err)
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}

// Delete removes a user.
//
// @Summary      Delete a user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  messageResponse
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	who, err := actor(c)
	if err != nil {
		return err
	}

	id := c.Param("id")
	user, err := h.service.Delete(c.Request().Context(), who, id)
	if err != nil {
		return fail(fmt.Sprintf("Error occurred while trying to delete user with ID: %s", id), err)
	}
	return c.JSON(http.StatusOK, messageResponse{
		Message: fmt.Sprintf("Successfully deleted user with username: %s and ID: %s", user.Username, id),
	})
}

// bindAndValidate decodes the request into req and runs the struct
// validation. Both failures wrap domain.ErrValidation.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return fmt.Errorf("%w: invalid payload", domain.ErrValidation)
	}
	return c.Validate(req)
}
