package ports

import (
	"context"

	"github.com/portfolio/contact-api/internal/core/domain"
)

// MessageRepository defines persistence operations for contact messages.
type MessageRepository interface {
	Create(ctx context.Context, msg *domain.ContactMessage) (*domain.ContactMessage, error)
	FindByID(ctx context.Context, id string) (*domain.ContactMessage, error)
	List(ctx context.Context, filter domain.MessageFilter) ([]*domain.ContactMessage, error)
	UpdateStatus(ctx context.Context, id string, status domain.MessageStatus) (*domain.ContactMessage, error)
	Delete(ctx context.Context, id string) (*domain.ContactMessage, error)
}

// MessageDedup remembers recent contact form submissions so a resubmitted
// form resolves to the message already stored.
type MessageDedup interface {
	// Lookup returns the id stored for this submission, or "" when unseen.
	Lookup(ctx context.Context, email, subject, body string) (string, error)
	Remember(ctx context.Context, email, subject, body, messageID string) error
}
