package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tanziljws/tanipintar-website/internal/models"
)

func newTestAuthService(t *testing.T) (*AuthService, *fakeAdminRepo, *fakeSessionRepo) {
	t.Helper()
	adminRepo := newFakeAdminRepo()
	sessionRepo := newFakeSessionRepo(time.Hour)
	auth := NewAuthService(adminRepo, NewSessionService(sessionRepo), NewJWTService("test-secret", time.Hour))
	require.NoError(t, auth.EnsureDefaultAdmin(context.Background(), "admin", "rahasia123"))
	return auth, adminRepo, sessionRepo
}

func TestJWTService_RoundTrip(t *testing.T) {
	svc := NewJWTService("secret", time.Hour)
	session := &models.AdminSession{
		ID:        "sess-1",
		AdminID:   42,
		Username:  "admin",
		CreatedAt: time.Now(),
		ExpiresAt: time.Now().Add(time.Hour),
	}

	token, err := svc.GenerateNewToken(session)
	require.NoError(t, err)

	claims, err := svc.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "sess-1", claims.SessionID)
	assert.Equal(t, int64(42), claims.AdminID)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, "42", claims.Subject)
}

func TestJWTService_RejectsWrongSecretAndExpiry(t *testing.T) {
	session := &models.AdminSession{
		ID:        "sess-1",
		AdminID:   1,
		CreatedAt: time.Now(),
		ExpiresAt: time.Now().Add(time.Hour),
	}
	token, err := NewJWTService("one", time.Hour).GenerateNewToken(session)
	require.NoError(t, err)

	_, err = NewJWTService("two", time.Hour).VerifyToken(token)
	assert.Error(t, err)

	session.CreatedAt = time.Now().Add(-2 * time.Hour)
	session.ExpiresAt = time.Now().Add(-time.Hour)
	expired, err := NewJWTService("one", time.Hour).GenerateNewToken(session)
	require.NoError(t, err)
	_, err = NewJWTService("one", time.Hour).VerifyToken(expired)
	assert.Error(t, err)

	_, err = NewJWTService("one", time.Hour).VerifyToken("not-a-token")
	assert.Error(t, err)
}

func TestAuthService_LoginAndAuthenticate(t *testing.T) {
	auth, _, sessionRepo := newTestAuthService(t)
	ctx := context.Background()

	resp, err := auth.Login(ctx, "admin", "rahasia123")
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.True(t, resp.ExpiresAt.After(time.Now()))
	assert.Len(t, sessionRepo.sessions, 1)

	claims, err := auth.Authenticate(ctx, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)

	require.NoError(t, auth.Logout(ctx, claims.SessionID))
	_, err = auth.Authenticate(ctx, resp.Token)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestAuthService_LoginFailures(t *testing.T) {
	auth, adminRepo, _ := newTestAuthService(t)
	ctx := context.Background()

	_, err := auth.Login(ctx, "admin", "salah")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = auth.Login(ctx, "tidak-ada", "rahasia123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	adminRepo.err = errors.New("db down")
	_, err = auth.Login(ctx, "admin", "rahasia123")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_AuthenticateRejectsForeignSession(t *testing.T) {
	auth, _, sessionRepo := newTestAuthService(t)
	ctx := context.Background()

	resp, err := auth.Login(ctx, "admin", "rahasia123")
	require.NoError(t, err)

	for _, s := range sessionRepo.sessions {
		s.AdminID = 999
	}
	_, err = auth.Authenticate(ctx, resp.Token)
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = auth.Authenticate(ctx, "garbage")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestAuthService_EnsureDefaultAdmin(t *testing.T) {
	adminRepo := newFakeAdminRepo()
	auth := NewAuthService(adminRepo, NewSessionService(newFakeSessionRepo(time.Hour)), NewJWTService("s", time.Hour))
	ctx := context.Background()

	require.NoError(t, auth.EnsureDefaultAdmin(ctx, "admin", ""))
	assert.Empty(t, adminRepo.admins)

	require.NoError(t, auth.EnsureDefaultAdmin(ctx, "admin", "pw"))
	require.Len(t, adminRepo.admins, 1)
	hash := adminRepo.admins["admin"].PasswordHash
	assert.NotEqual(t, "pw", hash)

	require.NoError(t, auth.EnsureDefaultAdmin(ctx, "admin", "other"))
	assert.Equal(t, hash, adminRepo.admins["admin"].PasswordHash)
}

func TestAuthService_LogoutAllRevokesEveryToken(t *testing.T) {
	auth, _, _ := newTestAuthService(t)
	ctx := context.Background()

	first, err := auth.Login(ctx, "admin", "rahasia123")
	require.NoError(t, err)
	second, err := auth.Login(ctx, "admin", "rahasia123")
	require.NoError(t, err)

	claims, err := auth.Authenticate(ctx, second.Token)
	require.NoError(t, err)

	require.NoError(t, auth.LogoutAll(ctx, claims.AdminID))

	_, err = auth.Authenticate(ctx, first.Token)
	assert.ErrorIs(t, err, ErrUnauthorized)
	_, err = auth.Authenticate(ctx, second.Token)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestSessionService_InvalidateSession(t *testing.T) {
	repo := newFakeSessionRepo(time.Hour)
	svc := NewSessionService(repo)
	ctx := context.Background()

	assert.Error(t, svc.InvalidateSession(ctx, ""))

	a, err := svc.CreateSession(ctx, &models.AdminUser{ID: 1, Username: "a"})
	require.NoError(t, err)
	_, err = svc.CreateSession(ctx, &models.AdminUser{ID: 1, Username: "a"})
	require.NoError(t, err)
	b, err := svc.CreateSession(ctx, &models.AdminUser{ID: 2, Username: "b"})
	require.NoError(t, err)

	require.NoError(t, svc.InvalidateAdminSessions(ctx, 1))
	_, err = svc.ValidateSession(ctx, a.ID, 1)
	assert.Error(t, err)
	_, err = svc.ValidateSession(ctx, b.ID, 2)
	assert.NoError(t, err)
}
