package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/tanziljws/tanipintar-website/internal/models"
	"github.com/tanziljws/tanipintar-website/internal/utils"
)

type IEducationRepository interface {
	ListContent(ctx context.Context) ([]models.EducationContent, error)
	GetContentByID(ctx context.Context, id int64) (*models.EducationContent, error)
	CreateContent(ctx context.Context, content *models.EducationContent) error
	UpdateContent(ctx context.Context, id int64, updates map[string]any) error
	DeleteContent(ctx context.Context, id int64) error
}

var educationUpdatableFields = map[string]bool{
	"title":     true,
	"content":   true,
	"image_url": true,
	"author":    true,
	"category":  true,
	"featured":  true,
	"read_time": true,
	"is_video":  true,
}

type EducationRepository struct {
	db *sqlx.DB
}

func NewEducationRepository(db *sqlx.DB) *EducationRepository {
	return &EducationRepository{db: db}
}

func (r *EducationRepository) ListContent(ctx context.Context) ([]models.EducationContent, error) {
	contents := []models.EducationContent{}
	query := `SELECT * FROM education_content ORDER BY created_at DESC, id DESC`

	if err := r.db.SelectContext(ctx, &contents, query); err != nil {
		return nil, fmt.Errorf("failed to list education content: %w", err)
	}
	return contents, nil
}

func (r *EducationRepository) GetContentByID(ctx context.Context, id int64) (*models.EducationContent, error) {
	var content models.EducationContent
	if err := r.db.GetContext(ctx, &content, `SELECT * FROM education_content WHERE id = $1`, id); err != nil {
		if err = notFound(err); err == ErrNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get education content %d: %w", id, err)
	}
	return &content, nil
}

func (r *EducationRepository) CreateContent(ctx context.Context, content *models.EducationContent) error {
	now := time.Now()
	content.CreatedAt = now
	content.UpdatedAt = now

	query := `
		INSERT INTO education_content (title, content, image_url, author, category, featured, read_time, is_video, created_at, updated_at)
		VALUES (:title, :content, :image_url, :author, :category, :featured, :read_time, :is_video, :created_at, :updated_at)
		RETURNING id`

	stmt, err := r.db.PrepareNamedContext(ctx, query)
	if err != nil {
		return fmt.Errorf("failed to prepare education insert: %w", err)
	}
	defer stmt.Close()

	if err := stmt.GetContext(ctx, &content.ID, content); err != nil {
		return fmt.Errorf("failed to create education content: %w", err)
	}
	return nil
}

// UpdateContent applies a partial update; only the given columns change.
func (r *EducationRepository) UpdateContent(ctx context.Context, id int64, updates map[string]any) error {
	result, err := utils.BuildDynamicUpdateQuery("education_content", updates, educationUpdatableFields, "id", id, true)
	if err != nil {
		return fmt.Errorf("failed to build education update: %w", err)
	}

	if err := utils.ExecWithCheck(ctx, r.db, result.Query, utils.ExecUpdate, result.Args...); err != nil {
		if err = notFound(err); err == ErrNotFound {
			return err
		}
		return fmt.Errorf("failed to update education content %d: %w", id, err)
	}
	return nil
}

func (r *EducationRepository) DeleteContent(ctx context.Context, id int64) error {
	err := utils.ExecWithCheck(ctx, r.db, `DELETE FROM education_content WHERE id = $1`, utils.ExecDelete, id)
	if err != nil {
		if err = notFound(err); err == ErrNotFound {
			return err
		}
		return fmt.Errorf("failed to delete education content %d: %w", id, err)
	}
	return nil
}
