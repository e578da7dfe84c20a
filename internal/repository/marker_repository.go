package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/tanziljws/tanipintar-website/internal/models"
	"github.com/tanziljws/tanipintar-website/internal/utils"
)

type IMarkerRepository interface {
	ListMarkers(ctx context.Context) ([]models.MapMarker, error)
	CreateMarker(ctx context.Context, marker *models.MapMarker) error
	UpdateMarker(ctx context.Context, marker *models.MapMarker) error
	DeleteMarker(ctx context.Context, id int64) error
}

type MarkerRepository struct {
	db *sqlx.DB
}

func NewMarkerRepository(db *sqlx.DB) *MarkerRepository {
	return &MarkerRepository{db: db}
}

func (r *MarkerRepository) ListMarkers(ctx context.Context) ([]models.MapMarker, error) {
	markers := []models.MapMarker{}
	query := `SELECT * FROM map_markers ORDER BY created_at DESC, id DESC`

	if err := r.db.SelectContext(ctx, &markers, query); err != nil {
		return nil, fmt.Errorf("failed to list map markers: %w", err)
	}
	return markers, nil
}

func (r *MarkerRepository) CreateMarker(ctx context.Context, marker *models.MapMarker) error {
	now := time.Now()
	marker.CreatedAt = now
	marker.UpdatedAt = now

	query := `
		INSERT INTO map_markers (title, description, latitude, longitude, marker_type, created_at, updated_at)
		VALUES (:title, :description, :latitude, :longitude, :marker_type, :created_at, :updated_at)
		RETURNING id`

	stmt, err := r.db.PrepareNamedContext(ctx, query)
	if err != nil {
		return fmt.Errorf("failed to prepare marker insert: %w", err)
	}
	defer stmt.Close()

	if err := stmt.GetContext(ctx, &marker.ID, marker); err != nil {
		return fmt.Errorf("failed to create map marker: %w", err)
	}
	return nil
}

func (r *MarkerRepository) UpdateMarker(ctx context.Context, marker *models.MapMarker) error {
	marker.UpdatedAt = time.Now()

	query := `
		UPDATE map_markers
		SET title = $1, description = $2, latitude = $3, longitude = $4, marker_type = $5, updated_at = $6
		WHERE id = $7`

	err := utils.ExecWithCheck(ctx, r.db, query, utils.ExecUpdate,
		marker.Title, marker.Description, marker.Latitude, marker.Longitude, marker.MarkerType, marker.UpdatedAt, marker.ID)
	if err != nil {
		if err = notFound(err); err == ErrNotFound {
			return err
		}
		return fmt.Errorf("failed to update map marker %d: %w", marker.ID, err)
	}
	return nil
}

func (r *MarkerRepository) DeleteMarker(ctx context.Context, id int64) error {
	err := utils.ExecWithCheck(ctx, r.db, `DELETE FROM map_markers WHERE id = $1`, utils.ExecDelete, id)
	if err != nil {
		if err = notFound(err); err == ErrNotFound {
			return err
		}
		return fmt.Errorf("failed to delete map marker %d: %w", id, err)
	}
	return nil
}
