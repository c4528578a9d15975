package handler

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/portfolio/contact-api/internal/api/middleware"
	"github.com/portfolio/contact-api/internal/core/domain"
	"github.com/portfolio/contact-api/internal/core/ports"
)

func newTestContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()

	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func withClaims(c echo.Context, userID string, role domain.Role) {
	c.Set(middleware.ClaimsKey, &domain.Claims{UserID: userID, Username: "caller", Role: role})
}

type stubAuthService struct {
	verifyFn func(ctx context.Context, username, password string) (string, *domain.User, error)
	adminFn  func(ctx context.Context, username, password string) (string, error)
}

func (s *stubAuthService) VerifyUser(ctx context.Context, username, password string) (string, *domain.User, error) {
	return s.verifyFn(ctx, username, password)
}

func (s *stubAuthService) AdminLogin(ctx context.Context, username, password string) (string, error) {
	return s.adminFn(ctx, username, password)
}

type stubUserService struct {
	createFn     func(ctx context.Context, in ports.CreateUserInput) (*domain.User, error)
	listFn       func(ctx context.Context) ([]*domain.User, error)
	getFn        func(ctx context.Context, id string) (*domain.User, error)
	searchFn     func(ctx context.Context, username string) ([]*domain.User, error)
	updateFn     func(ctx context.Context, actor ports.Actor, id string, in ports.UpdateUserInput) (*domain.User, error)
	changeRoleFn func(ctx context.Context, id string, role domain.Role) (*domain.User, error)
	deleteFn     func(ctx context.Context, actor ports.Actor, id string) (*domain.User, error)
}

func (s *stubUserService) Create(ctx context.Context, in ports.CreateUserInput) (*domain.User, error) {
	return s.createFn(ctx, in)
}

func (s *stubUserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.listFn(ctx)
}

func (s *stubUserService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.getFn(ctx, id)
}

func (s *stubUserService) Search(ctx context.Context, username string) ([]*domain.User, error) {
	return s.searchFn(ctx, username)
}

func (s *stubUserService) Update(ctx context.Context, actor ports.Actor, id string, in ports.UpdateUserInput) (*domain.User, error) {
	return s.updateFn(ctx, actor, id, in)
}

func (s *stubUserService) ChangeRole(ctx context.Context, id string, role domain.Role) (*domain.User, error) {
	return s.changeRoleFn(ctx, id, role)
}

func (s *stubUserService) Delete(ctx context.Context, actor ports.Actor, id string) (*domain.User, error) {
	return s.deleteFn(ctx, actor, id)
}

type stubMessageService struct {
	createFn       func(ctx context.Context, in ports.CreateMessageInput) (*domain.ContactMessage, error)
	listFn         func(ctx context.Context, filter domain.MessageFilter) ([]*domain.ContactMessage, error)
	getFn          func(ctx context.Context, id string) (*domain.ContactMessage, error)
	updateStatusFn func(ctx context.Context, id string, status domain.MessageStatus) (*domain.ContactMessage, error)
	deleteFn       func(ctx context.Context, id string) (*domain.ContactMessage, error)
}

func (s *stubMessageService) Create(ctx context.Context, in ports.CreateMessageInput) (*domain.ContactMessage, error) {
	return s.createFn(ctx, in)
}

func (s *stubMessageService) List(ctx context.Context, filter domain.MessageFilter) ([]*domain.ContactMessage, error) {
	return s.listFn(ctx, filter)
}

func (s *stubMessageService) Get(ctx context.Context, id string) (*domain.ContactMessage, error) {
	return s.getFn(ctx, id)
}

func (s *stubMessageService) UpdateStatus(ctx context.Context, id string, status domain.MessageStatus) (*domain.ContactMessage, error) {
	return s.updateStatusFn(ctx, id, status)
}

func (s *stubMessageService) Delete(ctx context.Context, id string) (*domain.ContactMessage, error) {
	return s.deleteFn(ctx, id)
}
