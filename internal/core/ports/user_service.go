package ports

import (
	"context"

	"github.com/portfolio/contact-api/internal/core/domain"
)

// CreateUserInput carries the registration form.
type CreateUserInput struct {
	FirstName string
	LastName  string
	Email     string
	Username  string
	Password  string
}

// UpdateUserInput carries a partial update. Empty strings are ignored.
type UpdateUserInput struct {
	FirstName string
	LastName  string
	Email     string
	Username  string
	Password  string
}

// Actor is the authenticated caller of a user-management operation.
type Actor struct {
	UserID string
	Role   domain.Role
}

// UserService defines use-case operations for users.
type UserService interface {
	Create(ctx context.Context, in CreateUserInput) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	Search(ctx context.Context, username string) ([]*domain.User, error)
	Update(ctx context.Context, actor Actor, id string, in UpdateUserInput) (*domain.User, error)
	ChangeRole(ctx context.Context, id string, role domain.Role) (*domain.User, error)
	Delete(ctx context.Context, actor Actor, id string) (*domain.User, error)
}
