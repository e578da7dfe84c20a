package services

import (
	"context"
	"log/slog"

	"github.com/tanziljws/tanipintar-website/internal/event"
	"github.com/tanziljws/tanipintar-website/internal/models"
	"github.com/tanziljws/tanipintar-website/internal/repository"
	"github.com/tanziljws/tanipintar-website/internal/utils"
)

type ContactEventPublisher interface {
	PublishContactEvent(ctx context.Context, e event.ContactEvent) error
}

type ContactService struct {
	repo      repository.IContactRepository
	publisher ContactEventPublisher
}

// NewContactService accepts a nil publisher; submissions are then only stored.
func NewContactService(repo repository.IContactRepository, publisher ContactEventPublisher) *ContactService {
	return &ContactService{repo: repo, publisher: publisher}
}

// Submit stores the message and announces it. A failed publish is logged and
// does not fail the submission.
func (s *ContactService) Submit(ctx context.Context, req models.ContactRequest) (*models.ContactMessage, error) {
	utils.TrimStringFields(&req)
	if req.Name == "" || req.Message == "" {
		return nil, validationError("name and message are required")
	}
	if ok, _ := utils.ValidateEmail(req.Email); !ok {
		return nil, validationError("email %q is not valid", req.Email)
	}

	msg := &models.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}
	if err := s.repo.CreateMessage(ctx, msg); err != nil {
		return nil, err
	}

	if s.publisher != nil {
		e := event.NewContactEvent(msg.ID, msg.Name, msg.Email, msg.Subject, msg.Message, msg.CreatedAt)
		if err := s.publisher.PublishContactEvent(ctx, e); err != nil {
			slog.Error("failed to publish contact event", "message_id", msg.ID, "error", err)
		}
	}
	return msg, nil
}

func (s *ContactService) ListMessages(ctx context.Context) ([]models.ContactMessage, error) {
	return s.repo.ListMessages(ctx)
}
