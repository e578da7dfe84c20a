package services

import (
	"context"
	"fmt"

	"github.com/tanziljws/tanipintar-website/internal/models"
	"github.com/tanziljws/tanipintar-website/internal/repository"
	"github.com/tanziljws/tanipintar-website/internal/utils"
)

type MarkerService struct {
	repo repository.IMarkerRepository
}

func NewMarkerService(repo repository.IMarkerRepository) *MarkerService {
	return &MarkerService{repo: repo}
}

func (s *MarkerService) ListMarkers(ctx context.Context) ([]models.MapMarker, error) {
	return s.repo.ListMarkers(ctx)
}

func (s *MarkerService) CreateMarker(ctx context.Context, req models.MapMarkerRequest) (*models.MapMarker, error) {
	marker, err := s.validate(&req)
	if err != nil {
		return nil, err
	}
	if err := s.repo.CreateMarker(ctx, &marker); err != nil {
		return nil, err
	}
	return &marker, nil
}

func (s *MarkerService) UpdateMarker(ctx context.Context, id int64, req models.MapMarkerRequest) (*models.MapMarker, error) {
	marker, err := s.validate(&req)
	if err != nil {
		return nil, err
	}
	marker.ID = id
	if err := s.repo.UpdateMarker(ctx, &marker); err != nil {
		return nil, err
	}
	return &marker, nil
}

func (s *MarkerService) DeleteMarker(ctx context.Context, id int64) error {
	return s.repo.DeleteMarker(ctx, id)
}

func (s *MarkerService) validate(req *models.MapMarkerRequest) (models.MapMarker, error) {
	utils.TrimStringFields(req)
	if req.Title == "" {
		return models.MapMarker{}, validationError("title is required")
	}
	if req.Latitude == nil || req.Longitude == nil {
		return models.MapMarker{}, validationError("latitude and longitude are required")
	}
	if err := utils.ValidateCoordinates(*req.Latitude, *req.Longitude); err != nil {
		return models.MapMarker{}, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return req.ToMarker(), nil
}
