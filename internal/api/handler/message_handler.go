package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/portfolio/contact-api/internal/core/domain"
	"github.com/portfolio/contact-api/internal/core/ports"
)

// MessageHandler handles HTTP requests for contact messages.
type MessageHandler struct {
	service ports.MessageService
}

func NewMessageHandler(service ports.MessageService) *MessageHandler {
	return &MessageHandler{service: service}
}

// Create stores a contact form submission. Public.
//
// @Summary      Submit a contact message
// @Tags         messages
// @Accept       json
// @Produce      json
// @Param        body  body      createMessageRequest  true  "Contact form"
// @Success      201   {object}  contactMessageResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      500   {object}  ErrorResponse
// @Router       /messages [post]
func (h *MessageHandler) Create(c echo.Context) error {
	var req createMessageRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	msg, err := h.service.Create(c.Request().Context(), ports.CreateMessageInput{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Body:    req.Message,
	})
	if err != nil {
		return fail("Failed to create message", err)
	}
	return c.JSON(http.StatusCreated, toMessageResponse(msg))
}

// List returns contact messages, newest first.
//
// @Summary      List contact messages
// @Tags         messages
// @Produce      json
// @Security     BearerAuth
// @Param        status  query     string  false  "pending, read or responded"
// @Param        limit   query     int     false  "Page size (default 50, max 100)"
// @Param        offset  query     int     false  "Items to skip"
// @Success      200     {array}   contactMessageResponse
// @Failure      401     {object}  ErrorResponse
// @Failure      403     {object}  ErrorResponse
// @Router       /messages [get]
func (h *MessageHandler) List(c echo.Context) error {
	var q listMessagesQuery
	if err := bindAndValidate(c, &q); err != nil {
		return err
	}

	msgs, err := h.service.List(c.Request().Context(), domain.MessageFilter{
		Status: domain.MessageStatus(q.Status),
		Limit:  q.Limit,
		Offset: q.Offset,
	})
	if err != nil {
		return fail("Error occurred while retrieving messages", err)
	}
	return c.JSON(http.StatusOK, toMessageListResponse(msgs))
}

// Get returns a single contact message.
//
// @Summary      Get a contact message
// @Tags         messages
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Message id"
// @Success      200  {object}  contactMessageResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /messages/{id} [get]
func (h *MessageHandler) Get(c echo.Context) error {
	id := c.Param("id")
	msg, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return fail(fmt.Sprintf("Error occurred while trying to retrieve message with ID: %s", id), err)
	}
	return c.JSON(http.StatusOK, toMessageResponse(msg))
}

// UpdateStatus marks a message as pending, read or responded.
//
// @Summary      Update a message's status
// @Tags         messages
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string               true  "Message id"
// @Param        body  body      updateStatusRequest  true  "New status"
// @Success      200   {object}  contactMessageResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      404   {object}  ErrorResponse
// @Router       /messages/{id}/status [patch]
func (h *MessageHandler) UpdateStatus(c echo.Context) error {
	var req updateStatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	id := c.Param("id")
	msg, err := h.service.UpdateStatus(c.Request().Context(), id, domain.MessageStatus(req.Status))
	if err != nil {
		return fail(fmt.Sprintf("Error occurred while trying to update message with ID: %s", id), err)
	}
	return c.JSON(http.StatusOK, toMessageResponse(msg))
}

// Delete removes a contact message.
//
// @Summary      Delete a contact message
// @Tags         messages
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Message id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /messages/{id} [delete]
func (h *MessageHandler) Delete(c echo.Context) error {
	id := c.Param("id")
	msg, err := h.service.Delete(c.Request().Context(), id)
	if err != nil {
		return fail(fmt.Sprintf("Error occurred while trying to delete message with ID: %s", id), err)
	}
	return c.JSON(http.StatusOK, messageResponse{
		Message: fmt.Sprintf("Successfully deleted message from %s (%s)", msg.Name, msg.Email),
	})
}
