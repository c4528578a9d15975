// Package security holds the credential hasher and the access-token service.
package security

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/portfolio/contact-api/internal/core/domain"
)

// DefaultCost is the bcrypt work factor used for every stored password.
const DefaultCost = 10

// MaxPasswordBytes is the longest password bcrypt accepts.
const MaxPasswordBytes = 72

// Runner executes fn and waits for it to complete. *queue.Pool satisfies it.
type Runner interface {
	Submit(ctx context.Context, fn func()) error
}

// BcryptHasher implements ports.PasswordHasher with bcrypt. When a Runner is
// configured the hashing work is executed on it; otherwise inline.
type BcryptHasher struct {
	cost   int
	runner Runner
}

func NewBcryptHasher(runner Runner) *BcryptHasher {
	return &BcryptHasher{cost: DefaultCost, runner: runner}
}

// Hash returns the salted bcrypt hash of plaintext. A password longer than
// MaxPasswordBytes is rejected with domain.ErrValidation.
func (h *BcryptHasher) Hash(ctx context.Context, plaintext string) (string, error) {
	if len(plaintext) > MaxPasswordBytes {
		return "", fmt.Errorf("%w: password must be at most %d bytes", domain.ErrValidation, MaxPasswordBytes)
	}

	var (
		hash []byte
		err  error
	)
	if runErr := h.run(ctx, func() {
		hash, err = bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	}); runErr != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrHashing, runErr)
	}
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", fmt.Errorf("%w: password must be at most %d bytes", domain.ErrValidation, MaxPasswordBytes)
	}
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrHashing, err)
	}
	return string(hash), nil
}

// Compare reports whether plaintext matches hash. Any failure, including a
// malformed hash, is reported as a mismatch.
func (h *BcryptHasher) Compare(ctx context.Context, plaintext, hash string) bool {
	var err error
	if runErr := h.run(ctx, func() {
		err = bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext))
	}); runErr != nil {
		return false
	}
	return err == nil
}

// run executes fn on the runner. The caller's cancellation is dropped: a
// started hash always finishes, only a stopped runner fails it.
func (h *BcryptHasher) run(ctx context.Context, fn func()) error {
	if h.runner == nil {
		fn()
		return nil
	}
	return h.runner.Submit(context.WithoutCancel(ctx), fn)
}
