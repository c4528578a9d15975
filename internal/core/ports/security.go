package ports

import (
	"context"

	"github.com/portfolio/contact-api/internal/core/domain"
)

// PasswordHasher hashes and checks passwords. Compare never fails on a
// mismatch; it returns false.
type PasswordHasher interface {
	Hash(ctx context.Context, plaintext string) (string, error)
	Compare(ctx context.Context, plaintext, hash string) bool
}

// TokenService issues and verifies signed access tokens.
// Verify returns domain.ErrTokenExpired or domain.ErrTokenInvalid.
type TokenService interface {
	Issue(user *domain.User) (string, *domain.Claims, error)
	Verify(token string) (*domain.Claims, error)
}
