package services

import (
	"context"
	"strings"

	"github.com/tanziljws/tanipintar-website/internal/models"
	"github.com/tanziljws/tanipintar-website/internal/repository"
	"github.com/tanziljws/tanipintar-website/internal/utils"
)

type EducationService struct {
	repo repository.IEducationRepository
}

func NewEducationService(repo repository.IEducationRepository) *EducationService {
	return &EducationService{repo: repo}
}

// ListItems returns the public listing, newest first.
func (s *EducationService) ListItems(ctx context.Context) ([]models.EducationItem, error) {
	contents, err := s.repo.ListContent(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]models.EducationItem, len(contents))
	for i, c := range contents {
		items[i] = c.ToItem()
	}
	return items, nil
}

func (s *EducationService) ListContent(ctx context.Context) ([]models.EducationContent, error) {
	return s.repo.ListContent(ctx)
}

func (s *EducationService) CreateContent(ctx context.Context, req models.CreateEducationRequest) (*models.EducationContent, error) {
	utils.TrimStringFields(&req)
	if req.Title == "" {
		return nil, validationError("title is required")
	}

	content := req.ToContent()
	if err := s.repo.CreateContent(ctx, &content); err != nil {
		return nil, err
	}
	return &content, nil
}

func (s *EducationService) UpdateContent(ctx context.Context, id int64, req models.UpdateEducationRequest) (*models.EducationContent, error) {
	utils.TrimStringFields(&req)
	if req.Title != nil && *req.Title == "" {
		return nil, validationError("title cannot be empty")
	}

	updates := req.ToUpdateMap()
	if len(updates) == 0 {
		return nil, validationError("no fields to update")
	}
	if url, ok := updates["image_url"].(string); ok && strings.TrimSpace(url) == "" {
		updates["image_url"] = nil
	}

	if err := s.repo.UpdateContent(ctx, id, updates); err != nil {
		return nil, err
	}
	return s.repo.GetContentByID(ctx, id)
}

func (s *EducationService) DeleteContent(ctx context.Context, id int64) error {
	return s.repo.DeleteContent(ctx, id)
}
