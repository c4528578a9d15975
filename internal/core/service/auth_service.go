package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/portfolio/contact-api/internal/core/domain"
	"github.com/portfolio/contact-api/internal/core/ports"
)

// dummyPassword is hashed once and compared against when a username is
// unknown, so both failure paths spend one bcrypt comparison.
const dummyPassword = "timing-equaliser"

// AuthService implements credential verification and admin login.
type AuthService struct {
	users   ports.UserRepository
	hasher  ports.PasswordHasher
	tokens  ports.TokenService
	log     zerolog.Logger
	metrics ports.ServiceMetrics

	dummyOnce sync.Once
	dummyHash string
}

func NewAuthService(users ports.UserRepository, hasher ports.PasswordHasher, tokens ports.TokenService, log zerolog.Logger) *AuthService {
	return &AuthService{users: users, hasher: hasher, tokens: tokens, log: log, metrics: nopMetrics{}}
}

// WithMetrics reports login outcomes to m.
func (s *AuthService) WithMetrics(m ports.ServiceMetrics) *AuthService {
	s.metrics = orNop(m)
	return s
}

// VerifyUser checks the credentials and issues a token on success.
// An unknown username yields domain.ErrUserNotFound, a wrong password
// domain.ErrInvalidCredentials.
func (s *AuthService) VerifyUser(ctx context.Context, username, password string) (string, *domain.User, error) {
	user, err := s.authenticate(ctx, username, password)
	if err != nil {
		return "", nil, err
	}

	token, _, err := s.tokens.Issue(user)
	if err != nil {
		return "", nil, err
	}

	s.metrics.LoginAttempt(ports.LoginSuccess)
	s.log.Info().Str("user_id", user.ID).Str("role", string(user.Role)).Msg("user verified")
	return token, user, nil
}

// AdminLogin verifies credentials of an admin account. Every failure,
// including a valid non-admin account, is domain.ErrInvalidCredentials.
// No token is issued unless the account holds the admin role.
func (s *AuthService) AdminLogin(ctx context.Context, username, password string) (string, error) {
	user, err := s.authenticate(ctx, username, password)
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		return "", domain.ErrInvalidCredentials
	case err != nil:
		return "", err
	case user.Role != domain.RoleAdmin:
		s.metrics.LoginAttempt(ports.LoginNotAdmin)
		s.log.Warn().Str("user_id", user.ID).Msg("admin login attempted by non-admin")
		return "", domain.ErrInvalidCredentials
	}

	token, _, err := s.tokens.Issue(user)
	if err != nil {
		return "", err
	}

	s.metrics.LoginAttempt(ports.LoginSuccess)
	s.log.Info().Str("user_id", user.ID).Msg("admin logged in")
	return token, nil
}

// authenticate looks the user up and checks the password. Unknown usernames
// still spend one bcrypt comparison.
func (s *AuthService) authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	if username == "" || password == "" {
		return nil, fmt.Errorf("%w: username and password are required", domain.ErrValidation)
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.equalise(ctx, password)
			s.metrics.LoginAttempt(ports.LoginNotFound)
		}
		return nil, err
	}

	if !s.hasher.Compare(ctx, password, user.Password) {
		s.metrics.LoginAttempt(ports.LoginBadPassword)
		s.log.Info().Str("user_id", user.ID).Msg("password mismatch")
		return nil, domain.ErrInvalidCredentials
	}
	return user, nil
}

// BootstrapAdmin makes sure an admin account named username exists. An
// existing admin is left untouched. An existing non-admin account is never
// promoted; the conflict is logged and startup continues without an admin.
func (s *AuthService) BootstrapAdmin(ctx context.Context, username, email, password string) error {
	existing, err := s.users.FindByUsername(ctx, username)
	switch {
	case err == nil:
		if existing.Role != domain.RoleAdmin {
			s.log.Error().
				Str("user_id", existing.ID).
				Str("username", username).
				Msg("bootstrap admin skipped: username belongs to a non-admin account")
		}
		return nil
	case !errors.Is(err, domain.ErrUserNotFound):
		return fmt.Errorf("lookup admin: %w", err)
	}

	hash, err := s.hasher.Hash(ctx, password)
	if err != nil {
		return err
	}
	if email == "" {
		email = username + "@localhost"
	}

	created, err := s.users.Create(ctx, &domain.User{
		FirstName: "Admin",
		LastName:  "Admin",
		Email:     email,
		Username:  username,
		Password:  hash,
		Role:      domain.RoleAdmin,
	})
	if err != nil {
		return fmt.Errorf("create admin: %w", err)
	}
	s.log.Info().Str("user_id", created.ID).Msg("bootstrap admin created")
	return nil
}

func (s *AuthService) equalise(ctx context.Context, password string) {
	s.dummyOnce.Do(func() {
		hash, err := s.hasher.Hash(ctx, dummyPassword)
		if err != nil {
			s.log.Warn().Err(err).Msg("timing equaliser hash unavailable")
			return
		}
		s.dummyHash = hash
	})
	if s.dummyHash != "" {
		_ = s.hasher.Compare(ctx, password, s.dummyHash)
	}
}
