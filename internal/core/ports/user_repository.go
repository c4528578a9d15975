package ports

import (
	"context"

	"github.com/portfolio/contact-api/internal/core/domain"
)

// UserRepository defines persistence operations for users.
// Uniqueness of email and username is enforced by the store; violations
// surface as domain.ErrUserExists.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	// Update applies patch (password already hashed) and returns the updated user.
	Update(ctx context.Context, id string, patch domain.UserPatch) (*domain.User, error)
	UpdateRole(ctx context.Context, id string, role domain.Role) (*domain.User, error)
	// Delete removes the user and returns the removed record.
	Delete(ctx context.Context, id string) (*domain.User, error)
}
