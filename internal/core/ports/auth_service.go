package ports

import (
	"context"

	"github.com/portfolio/contact-api/internal/core/domain"
)

// AuthService verifies credentials and issues access tokens.
type AuthService interface {
	// VerifyUser checks username/password and returns a token for the user.
	VerifyUser(ctx context.Context, username, password string) (string, *domain.User, error)
	// AdminLogin is VerifyUser restricted to accounts holding the admin role.
	AdminLogin(ctx context.Context, username, password string) (string, error)
}
