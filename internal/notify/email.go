package notify

import (
	"fmt"
	"time"

	"github.com/tanziljws/tanipintar-website/internal/config"
	"gopkg.in/gomail.v2"
)

type EmailService struct {
	dialer    *gomail.Dialer
	from      string
	recipient string
}

func NewEmailService(cfg config.MailConfig) *EmailService {
	return &EmailService{
		dialer:    gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:      cfg.From,
		recipient: cfg.Recipient,
	}
}

// ContactMessage builds the notification for one contact submission. Replies
// go to the visitor.
func (e *EmailService) ContactMessage(name, email, subject, message string, receivedAt time.Time) *gomail.Message {
	m := gomail.NewMessage()
	m.SetHeader("From", e.from)
	m.SetHeader("To", e.recipient)
	m.SetAddressHeader("Reply-To", email, name)
	m.SetHeader("Subject", contactSubject(subject))
	m.SetBody("text/html", ContactTemplate(name, email, subject, message, receivedAt))
	return m
}

func (e *EmailService) SendContactNotification(name, email, subject, message string, receivedAt time.Time) error {
	if err := e.dialer.DialAndSend(e.ContactMessage(name, email, subject, message, receivedAt)); err != nil {
		return fmt.Errorf("failed to send contact notification: %w", err)
	}
	return nil
}
