package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/tanziljws/tanipintar-website/internal/models"
	"github.com/tanziljws/tanipintar-website/internal/repository"
)

type AuthService struct {
	adminRepo      repository.IAdminUserRepository
	sessionService *SessionService
	jwtService     *JWTService
}

func NewAuthService(adminRepo repository.IAdminUserRepository, sessionService *SessionService, jwtService *JWTService) *AuthService {
	return &AuthService{
		adminRepo:      adminRepo,
		sessionService: sessionService,
		jwtService:     jwtService,
	}
}

// Login checks the credentials and opens a session. Unknown users and wrong
// passwords both yield ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, username, password string) (*models.LoginResponse, error) {
	admin, err := s.adminRepo.GetAdminByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up admin: %w", err)
	}

	if !s.adminRepo.CheckPasswordHash(password, admin.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	session, err := s.sessionService.CreateSession(ctx, admin)
	if err != nil {
		return nil, err
	}

	token, err := s.jwtService.GenerateNewToken(session)
	if err != nil {
		_ = s.sessionService.InvalidateSession(ctx, session.ID)
		return nil, err
	}

	slog.Info("admin logged in", "admin_id", admin.ID, "username", admin.Username)
	return &models.LoginResponse{Token: token, ExpiresAt: session.ExpiresAt}, nil
}

// Authenticate verifies a bearer token and its backing session.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*models.Claims, error) {
	claims, err := s.jwtService.VerifyToken(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnauthorized, err)
	}

	if _, err := s.sessionService.ValidateSession(ctx, claims.SessionID, claims.AdminID); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnauthorized, err)
	}
	return claims, nil
}

func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	return s.sessionService.InvalidateSession(ctx, sessionID)
}

// LogoutAll revokes every session of the admin, including the caller's own.
func (s *AuthService) LogoutAll(ctx context.Context, adminID int64) error {
	if err := s.sessionService.InvalidateAdminSessions(ctx, adminID); err != nil {
		return fmt.Errorf("failed to revoke sessions of admin %d: %w", adminID, err)
	}
	slog.Info("revoked all admin sessions", "admin_id", adminID)
	return nil
}

// EnsureDefaultAdmin creates the configured admin account when it does not
// exist yet. An empty password disables seeding.
func (s *AuthService) EnsureDefaultAdmin(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		slog.Info("default admin seeding disabled")
		return nil
	}

	_, err := s.adminRepo.GetAdminByUsername(ctx, username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("failed to look up default admin: %w", err)
	}

	admin := &models.AdminUser{Username: username, PasswordHash: password}
	if err := s.adminRepo.CreateAdmin(ctx, admin); err != nil {
		return fmt.Errorf("failed to create default admin: %w", err)
	}
	slog.Info("default admin created", "username", username)
	return nil
}
