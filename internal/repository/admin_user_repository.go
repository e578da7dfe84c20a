package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/tanziljws/tanipintar-website/internal/models"
	"golang.org/x/crypto/bcrypt"
)

type IAdminUserRepository interface {
	CreateAdmin(ctx context.Context, admin *models.AdminUser) error
	GetAdminByUsername(ctx context.Context, username string) (*models.AdminUser, error)
	CheckPasswordHash(password, hash string) bool
}

type AdminUserRepository struct {
	db *sqlx.DB
}

func NewAdminUserRepository(db *sqlx.DB) *AdminUserRepository {
	return &AdminUserRepository{db: db}
}

// CreateAdmin stores a new admin. PasswordHash carries the plain password on
// the way in and is replaced by its bcrypt hash.
func (r *AdminUserRepository) CreateAdmin(ctx context.Context, admin *models.AdminUser) error {
	hashedPassword, err := HashPassword(admin.PasswordHash)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	admin.PasswordHash = hashedPassword
	admin.CreatedAt = time.Now()

	query := `
		INSERT INTO admin_users (username, password_hash, created_at)
		VALUES ($1, $2, $3)
		RETURNING id`

	if err := r.db.QueryRowxContext(ctx, query, admin.Username, admin.PasswordHash, admin.CreatedAt).Scan(&admin.ID); err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}
	return nil
}

func (r *AdminUserRepository) GetAdminByUsername(ctx context.Context, username string) (*models.AdminUser, error) {
	var admin models.AdminUser
	query := `SELECT id, username, password_hash, created_at FROM admin_users WHERE username = $1`

	if err := r.db.GetContext(ctx, &admin, query, username); err != nil {
		if err = notFound(err); err == ErrNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get admin by username: %w", err)
	}
	return &admin, nil
}

func (r *AdminUserRepository) CheckPasswordHash(password, hash string) bool {
	return CheckPasswordHash(password, hash)
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
