package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/tanziljws/tanipintar-website/internal/models"
	"github.com/tanziljws/tanipintar-website/internal/utils"
)

type IGalleryRepository interface {
	ListImages(ctx context.Context) ([]models.GalleryImage, error)
	GetImageByID(ctx context.Context, id int64) (*models.GalleryImage, error)
	CreateImage(ctx context.Context, image *models.GalleryImage) error
	DeleteImage(ctx context.Context, id int64) error
}

type GalleryRepository struct {
	db *sqlx.DB
}

func NewGalleryRepository(db *sqlx.DB) *GalleryRepository {
	return &GalleryRepository{db: db}
}

func (r *GalleryRepository) ListImages(ctx context.Context) ([]models.GalleryImage, error) {
	images := []models.GalleryImage{}
	if err := r.db.SelectContext(ctx, &images, `SELECT * FROM gallery_images ORDER BY created_at DESC, id DESC`); err != nil {
		return nil, fmt.Errorf("failed to list gallery images: %w", err)
	}
	return images, nil
}

func (r *GalleryRepository) GetImageByID(ctx context.Context, id int64) (*models.GalleryImage, error) {
	var image models.GalleryImage
	if err := r.db.GetContext(ctx, &image, `SELECT * FROM gallery_images WHERE id = $1`, id); err != nil {
		if err = notFound(err); err == ErrNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get gallery image %d: %w", id, err)
	}
	return &image, nil
}

func (r *GalleryRepository) CreateImage(ctx context.Context, image *models.GalleryImage) error {
	image.CreatedAt = time.Now()

	query := `
		INSERT INTO gallery_images (title, object_key, url, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	if err := r.db.QueryRowxContext(ctx, query, image.Title, image.ObjectKey, image.URL, image.CreatedAt).Scan(&image.ID); err != nil {
		return fmt.Errorf("failed to create gallery image: %w", err)
	}
	return nil
}

func (r *GalleryRepository) DeleteImage(ctx context.Context, id int64) error {
	err := utils.ExecWithCheck(ctx, r.db, `DELETE FROM gallery_images WHERE id = $1`, utils.ExecDelete, id)
	if err != nil {
		if err = notFound(err); err == ErrNotFound {
			return err
		}
		return fmt.Errorf("failed to delete gallery image %d: %w", id, err)
	}
	return nil
}
