package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tanziljws/tanipintar-website/internal/models"
	"github.com/tanziljws/tanipintar-website/internal/repository"
)

type SessionService struct {
	sessionRepo repository.ISessionRepository
}

func NewSessionService(sessionRepo repository.ISessionRepository) *SessionService {
	return &SessionService{sessionRepo: sessionRepo}
}

func (s *SessionService) CreateSession(ctx context.Context, admin *models.AdminUser) (*models.AdminSession, error) {
	session := &models.AdminSession{
		ID:        uuid.New().String(),
		AdminID:   admin.ID,
		Username:  admin.Username,
		CreatedAt: time.Now(),
	}

	if err := s.sessionRepo.CreateSession(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	return session, nil
}

// ValidateSession checks that the session exists and belongs to adminID.
func (s *SessionService) ValidateSession(ctx context.Context, sessionID string, adminID int64) (*models.AdminSession, error) {
	session, err := s.sessionRepo.GetSession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("invalid session: %w", err)
	}
	if session.AdminID != adminID {
		return nil, fmt.Errorf("session does not belong to admin %d", adminID)
	}
	return session, nil
}

func (s *SessionService) InvalidateSession(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return fmt.Errorf("session ID cannot be empty")
	}
	return s.sessionRepo.DeleteSession(ctx, sessionID)
}

func (s *SessionService) InvalidateAdminSessions(ctx context.Context, adminID int64) error {
	return s.sessionRepo.DeleteAdminSessions(ctx, adminID)
}
