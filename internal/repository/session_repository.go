package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/tanziljws/tanipintar-website/internal/models"
	"github.com/tanziljws/tanipintar-website/internal/utils"
)

const keyPrefix = "tanipintar:"

// ISessionRepository stores admin sessions in Redis.
type ISessionRepository interface {
	CreateSession(ctx context.Context, session *models.AdminSession) error
	GetSession(ctx context.Context, sessionID string) (*models.AdminSession, error)
	DeleteSession(ctx context.Context, sessionID string) error
	DeleteAdminSessions(ctx context.Context, adminID int64) error
}

type SessionRepository struct {
	client     *redis.Client
	expiration time.Duration
}

func NewSessionRepository(client *redis.Client, expiration time.Duration) *SessionRepository {
	return &SessionRepository{
		client:     client,
		expiration: expiration,
	}
}

func (r *SessionRepository) CreateSession(ctx context.Context, session *models.AdminSession) error {
	if session.ID == "" {
		return fmt.Errorf("session ID cannot be empty")
	}

	session.ExpiresAt = session.CreatedAt.Add(r.expiration)

	sessionData, err := utils.SerializeModel(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	adminSessionsKey := AdminSessionsKey(session.AdminID)

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, SessionKey(session.ID), sessionData, r.expiration)
	pipe.SAdd(ctx, adminSessionsKey, session.ID)
	pipe.Expire(ctx, adminSessionsKey, r.expiration)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}
	return nil
}

// GetSession returns ErrNotFound for unknown or expired sessions.
func (r *SessionRepository) GetSession(ctx context.Context, sessionID string) (*models.AdminSession, error) {
	if sessionID == "" {
		return nil, ErrNotFound
	}

	data, err := r.client.Get(ctx, SessionKey(sessionID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	var session models.AdminSession
	if err := utils.DeserializeModel(data, &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	if time.Now().After(session.ExpiresAt) {
		_ = r.DeleteSession(ctx, sessionID)
		return nil, ErrNotFound
	}
	return &session, nil
}

func (r *SessionRepository) DeleteSession(ctx context.Context, sessionID string) error {
	data, err := r.client.Get(ctx, SessionKey(sessionID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil
		}
		return fmt.Errorf("failed to get session: %w", err)
	}

	var session models.AdminSession
	if err := utils.DeserializeModel(data, &session); err != nil {
		return fmt.Errorf("failed to unmarshal session: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, SessionKey(sessionID))
	pipe.SRem(ctx, AdminSessionsKey(session.AdminID), sessionID)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

func (r *SessionRepository) DeleteAdminSessions(ctx context.Context, adminID int64) error {
	adminSessionsKey := AdminSessionsKey(adminID)

	sessionIDs, err := r.client.SMembers(ctx, adminSessionsKey).Result()
	if err != nil {
		return fmt.Errorf("failed to get admin sessions: %w", err)
	}

	pipe := r.client.TxPipeline()
	for _, sessionID := range sessionIDs {
		pipe.Del(ctx, SessionKey(sessionID))
	}
	pipe.Del(ctx, adminSessionsKey)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete admin sessions: %w", err)
	}
	return nil
}

func SessionKey(sessionID string) string {
	return keyPrefix + "session:" + sessionID
}

func AdminSessionsKey(adminID int64) string {
	return keyPrefix + "admin_sessions:" + strconv.FormatInt(adminID, 10)
}
