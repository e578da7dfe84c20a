package event

import (
	"time"

	"github.com/google/uuid"
)

const ContactQueue string = "contact_events"

type ContactEventType string

const ContactSubmitted ContactEventType = "contact_submitted"

// ContactEvent announces a stored contact form submission.
type ContactEvent struct {
	ID         string           `json:"id"`
	EventType  ContactEventType `json:"event_type"`
	MessageID  int64            `json:"message_id"`
	Name       string           `json:"name"`
	Email      string           `json:"email"`
	Subject    string           `json:"subject"`
	Message    string           `json:"message"`
	ReceivedAt time.Time        `json:"received_at"`
}

func NewContactEvent(messageID int64, name, email, subject, message string, receivedAt time.Time) ContactEvent {
	return ContactEvent{
		ID:         uuid.NewString(),
		EventType:  ContactSubmitted,
		MessageID:  messageID,
		Name:       name,
		Email:      email,
		Subject:    subject,
		Message:    message,
		ReceivedAt: receivedAt,
	}
}
