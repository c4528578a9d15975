package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/portfolio/contact-api/internal/core/domain"
	"github.com/portfolio/contact-api/internal/core/ports"
)

type UserService struct {
	repo    ports.UserRepository
	hasher  ports.PasswordHasher
	log     zerolog.Logger
	metrics ports.ServiceMetrics
}

func NewUserService(repo ports.UserRepository, hasher ports.PasswordHasher, log zerolog.Logger) *UserService {
	return &UserService{repo: repo, hasher: hasher, log: log, metrics: nopMetrics{}}
}

// WithMetrics reports service events to m.
func (s *UserService) WithMetrics(m ports.ServiceMetrics) *UserService {
	s.metrics = orNop(m)
	return s
}

// Create registers a new user with the default role. The password is hashed
// before it reaches the repository.
func (s *UserService) Create(ctx context.Context, in ports.CreateUserInput) (*domain.User, error) {
	if in.FirstName == "" || in.LastName == "" || in.Email == "" || in.Username == "" || in.Password == "" {
		return nil, fmt.Errorf("%w: all fields are required", domain.ErrValidation)
	}

	hash, err := s.hasher.Hash(ctx, in.Password)
	if err != nil {
		return nil, err
	}

	user, err := s.repo.Create(ctx, &domain.User{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Username:  in.Username,
		Password:  hash,
		Role:      domain.RoleUser,
	})
	if err != nil {
		s.log.Warn().Err(err).Str("username", in.Username).Msg("create user failed")
		return nil, err
	}

	s.metrics.UserCreated()
	s.log.Info().Str("user_id", user.ID).Str("username", user.Username).Msg("user created")
	return user, nil
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.repo.List(ctx)
}

func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

// Search returns the users whose username equals username.
func (s *UserService) Search(ctx context.Context, username string) ([]*domain.User, error) {
	if username == "" {
		return nil, fmt.Errorf("%w: username query parameter is required", domain.ErrValidation)
	}
	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return []*domain.User{user}, nil
}

// Update applies the non-empty fields of in. Only the account owner or an
// admin may update; the role is never changed here.
func (s *UserService) Update(ctx context.Context, actor ports.Actor, id string, in ports.UpdateUserInput) (*domain.User, error) {
	if err := authorizeSelfOrAdmin(actor, id); err != nil {
		return nil, err
	}

	patch := domain.UserPatch{
		FirstName: nonEmpty(in.FirstName),
		LastName:  nonEmpty(in.LastName),
		Email:     nonEmpty(in.Email),
		Username:  nonEmpty(in.Username),
	}
	if in.Password != "" {
		hash, err := s.hasher.Hash(ctx, in.Password)
		if err != nil {
			return nil, err
		}
		patch.Password = &hash
	}
	if patch.Empty() {
		return nil, fmt.Errorf("%w: can't update with empty body", domain.ErrValidation)
	}

	user, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("user_id", id).
		Str("actor_id", actor.UserID).
		Bool("password_changed", patch.Password != nil).
		Msg("user updated")
	return user, nil
}

// ChangeRole sets the role of user id. Callers must have checked that the
// actor is an admin.
func (s *UserService) ChangeRole(ctx context.Context, id string, role domain.Role) (*domain.User, error) {
	if !role.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidRole, role)
	}

	user, err := s.repo.UpdateRole(ctx, id, role)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("user_id", id).Str("role", string(role)).Msg("user role changed")
	return user, nil
}

func (s *UserService) Delete(ctx context.Context, actor ports.Actor, id string) (*domain.User, error) {
	if err := authorizeSelfOrAdmin(actor, id); err != nil {
		return nil, err
	}

	user, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("user_id", id).Str("actor_id", actor.UserID).Msg("user deleted")
	return user, nil
}

func authorizeSelfOrAdmin(actor ports.Actor, id string) error {
	if actor.Role == domain.RoleAdmin || (actor.UserID != "" && actor.UserID == id) {
		return nil
	}
	return domain.ErrForbidden
}

func nonEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
