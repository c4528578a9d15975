package domain

import "time"

// MessageStatus represents the handling state of a contact message.
type MessageStatus string

const (
	MessagePending   MessageStatus = "pending"
	MessageRead      MessageStatus = "read"
	MessageResponded MessageStatus = "responded"
)

// Valid reports whether s is one of the known statuses.
func (s MessageStatus) Valid() bool {
	switch s {
	case MessagePending, MessageRead, MessageResponded:
		return true
	}
	return false
}

// ContactMessage is a message submitted through the public contact form.
type ContactMessage struct {
	ID        string
	Name      string
	Email     string
	Subject   string
	Body      string
	Status    MessageStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// MessageFilter narrows a message listing. Zero values mean "no filter".
type MessageFilter struct {
	Status MessageStatus
	Limit  int
	Offset int
}
