package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/portfolio/contact-api/internal/core/domain"
	"github.com/portfolio/contact-api/internal/core/ports"
)

const (
	defaultListLimit = 50
	maxListLimit     = 100
)

type MessageService struct {
	repo  ports.MessageRepository
	dedup   ports.MessageDedup
	log     zerolog.Logger
	metrics ports.ServiceMetrics
}

// NewMessageService returns a MessageService. dedup may be nil, in which case
// every submission is stored.
func NewMessageService(repo ports.MessageRepository, dedup ports.MessageDedup, log zerolog.Logger) *MessageService {
	return &MessageService{repo: repo, dedup: dedup, log: log, metrics: nopMetrics{}}
}

// WithMetrics reports service events to m.
func (s *MessageService) WithMetrics(m ports.ServiceMetrics) *MessageService {
	s.metrics = orNop(m)
	return s
}

// Create stores a contact form submission. A resubmission of the same form
// within the dedup window returns the message stored the first time.
func (s *MessageService) Create(ctx context.Context, in ports.CreateMessageInput) (*domain.ContactMessage, error) {
	if in.Name == "" || in.Email == "" || in.Subject == "" || in.Body == "" {
		return nil, fmt.Errorf("%w: all fields are required", domain.ErrValidation)
	}

	if existing := s.replay(ctx, in); existing != nil {
		return existing, nil
	}

	msg, err := s.repo.Create(ctx, &domain.ContactMessage{
		Name:    in.Name,
		Email:   in.Email,
		Subject: in.Subject,
		Body:    in.Body,
		Status:  domain.MessagePending,
	})
	if err != nil {
		return nil, err
	}

	if s.dedup != nil {
		if err := s.dedup.Remember(ctx, in.Email, in.Subject, in.Body, msg.ID); err != nil {
			s.log.Warn().Err(err).Str("message_id", msg.ID).Msg("failed to set dedup key")
		}
	}

	s.metrics.MessageCreated()
	s.log.Info().Str("message_id", msg.ID).Msg("contact message stored")
	return msg, nil
}

// replay returns the previously stored message for in, or nil. Dedup store
// failures are logged and treated as a miss.
func (s *MessageService) replay(ctx context.Context, in ports.CreateMessageInput) *domain.ContactMessage {
	if s.dedup == nil {
		return nil
	}

	id, err := s.dedup.Lookup(ctx, in.Email, in.Subject, in.Body)
	if err != nil {
		s.log.Warn().Err(err).Msg("dedup check failed, storing anyway")
		return nil
	}
	if id == "" {
		s.metrics.MessageDedup(false)
		return nil
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if !errors.Is(err, domain.ErrMessageNotFound) {
			s.log.Warn().Err(err).Str("message_id", id).Msg("dedup replay lookup failed")
		}
		s.metrics.MessageDedup(false)
		return nil
	}

	s.metrics.MessageDedup(true)
	s.log.Debug().Str("message_id", id).Msg("duplicate submission replayed")
	return existing
}

// List returns messages newest first. The limit defaults to 50 and is
// capped at 100.
func (s *MessageService) List(ctx context.Context, filter domain.MessageFilter) ([]*domain.ContactMessage, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidStatus, filter.Status)
	}
	if filter.Limit <= 0 {
		filter.Limit = defaultListLimit
	}
	if filter.Limit > maxListLimit {
		filter.Limit = maxListLimit
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	return s.repo.List(ctx, filter)
}

func (s *MessageService) Get(ctx context.Context, id string) (*domain.ContactMessage, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *MessageService) UpdateStatus(ctx context.Context, id string, status domain.MessageStatus) (*domain.ContactMessage, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidStatus, status)
	}

	msg, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("message_id", id).Str("status", string(status)).Msg("message status updated")
	return msg, nil
}

func (s *MessageService) Delete(ctx context.Context, id string) (*domain.ContactMessage, error) {
	msg, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("message_id", id).Msg("message deleted")
	return msg, nil
}
