package ports

import (
	"context"

	"github.com/portfolio/contact-api/internal/core/domain"
)

// CreateMessageInput carries a contact form submission.
type CreateMessageInput struct {
	Name    string
	Email   string
	Subject string
	Body    string
}

// MessageService defines use-case operations for contact messages.
type MessageService interface {
	Create(ctx context.Context, in CreateMessageInput) (*domain.ContactMessage, error)
	List(ctx context.Context, filter domain.MessageFilter) ([]*domain.ContactMessage, error)
	Get(ctx context.Context, id string) (*domain.ContactMessage, error)
	UpdateStatus(ctx context.Context, id string, status domain.MessageStatus) (*domain.ContactMessage, error)
	Delete(ctx context.Context, id string) (*domain.ContactMessage, error)
}
