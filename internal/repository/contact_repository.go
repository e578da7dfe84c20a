package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/tanziljws/tanipintar-website/internal/models"
)

type IContactRepository interface {
	CreateMessage(ctx context.Context, msg *models.ContactMessage) error
	ListMessages(ctx context.Context) ([]models.ContactMessage, error)
}

type ContactRepository struct {
	db *sqlx.DB
}

func NewContactRepository(db *sqlx.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

func (r *ContactRepository) CreateMessage(ctx context.Context, msg *models.ContactMessage) error {
	msg.CreatedAt = time.Now()

	query := `
		INSERT INTO contact_messages (name, email, subject, message, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	err := r.db.QueryRowxContext(ctx, query, msg.Name, msg.Email, msg.Subject, msg.Message, msg.CreatedAt).Scan(&msg.ID)
	if err != nil {
		return fmt.Errorf("failed to store contact message: %w", err)
	}
	return nil
}

func (r *ContactRepository) ListMessages(ctx context.Context) ([]models.ContactMessage, error) {
	messages := []models.ContactMessage{}
	if err := r.db.SelectContext(ctx, &messages, `SELECT * FROM contact_messages ORDER BY created_at DESC, id DESC`); err != nil {
		return nil, fmt.Errorf("failed to list contact messages: %w", err)
	}
	return messages, nil
}
