package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/tanziljws/tanipintar-website/internal/analytics"
	"github.com/tanziljws/tanipintar-website/internal/models"
	"github.com/tanziljws/tanipintar-website/internal/repository"
	"github.com/tanziljws/tanipintar-website/internal/utils"
)

// FarmerService owns farmer data. It is the record and district source of the
// analytics pipeline and keeps the Redis record cache coherent with admin
// writes.
type FarmerService struct {
	repo  repository.IFarmerRepository
	cache repository.IRecordCacheRepository

	mu        sync.Mutex
	listeners []func()
}

func NewFarmerService(repo repository.IFarmerRepository, cache repository.IRecordCacheRepository) *FarmerService {
	return &FarmerService{repo: repo, cache: cache}
}

// OnChange registers fn to run after every successful farmer write.
func (s *FarmerService) OnChange(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// FetchFarmerRecords serves records from the cache when possible and falls
// back to Postgres. Cache failures are logged and never surface.
func (s *FarmerService) FetchFarmerRecords(ctx context.Context) ([]analytics.FarmerRecord, error) {
	if s.cache != nil {
		records, ok, err := s.cache.GetRecords(ctx)
		if err != nil {
			slog.Warn("record cache read failed", "error", err)
		}
		if ok {
			return records, nil
		}
	}

	rows, err := s.repo.ListFarmerRows(ctx)
	if err != nil {
		return nil, err
	}

	records := make([]analytics.FarmerRecord, len(rows))
	for i, row := range rows {
		records[i] = row.ToRecord()
	}

	if s.cache != nil {
		if err := s.cache.SetRecords(ctx, records); err != nil {
			slog.Warn("record cache write failed", "error", err)
		}
	}
	return records, nil
}

func (s *FarmerService) FetchDistrictCounts(ctx context.Context) ([]analytics.DistrictCount, error) {
	return s.repo.GetDistrictDistribution(ctx)
}

func (s *FarmerService) GetCommodityTypeCounts(ctx context.Context) ([]models.CommodityTypeCount, error) {
	return s.repo.GetCommodityTypeCounts(ctx)
}

func (s *FarmerService) ListDistricts(ctx context.Context) ([]string, error) {
	return s.repo.ListDistricts(ctx)
}

func (s *FarmerService) ListCommodityTypes(ctx context.Context) ([]string, error) {
	return s.repo.ListCommodityTypes(ctx)
}

func (s *FarmerService) ListTables(ctx context.Context) ([]string, error) {
	return s.repo.ListTables(ctx)
}

func (s *FarmerService) ListFarmers(ctx context.Context, filter models.FarmerFilter) ([]models.FarmerRow, error) {
	return s.repo.ListFarmers(ctx, filter)
}

func (s *FarmerService) CreateFarmer(ctx context.Context, req models.FarmerRequest) (*models.FarmerRow, error) {
	farmer, commodity, err := s.validateRequest(&req)
	if err != nil {
		return nil, err
	}

	if err := s.repo.CreateFarmer(ctx, &farmer, &commodity); err != nil {
		return nil, err
	}
	s.changed(ctx)

	return s.repo.GetFarmerByID(ctx, farmer.ID)
}

func (s *FarmerService) UpdateFarmer(ctx context.Context, id int64, req models.FarmerRequest) (*models.FarmerRow, error) {
	farmer, commodity, err := s.validateRequest(&req)
	if err != nil {
		return nil, err
	}

	if err := s.repo.UpdateFarmer(ctx, id, &farmer, &commodity); err != nil {
		return nil, err
	}
	s.changed(ctx)

	return s.repo.GetFarmerByID(ctx, id)
}

func (s *FarmerService) DeleteFarmer(ctx context.Context, id int64) error {
	if err := s.repo.DeleteFarmer(ctx, id); err != nil {
		return err
	}
	s.changed(ctx)
	return nil
}

func (s *FarmerService) validateRequest(req *models.FarmerRequest) (models.Farmer, models.Commodity, error) {
	utils.TrimStringFields(req)

	if req.Latitude == nil || req.Longitude == nil {
		return models.Farmer{}, models.Commodity{}, validationError("latitude and longitude are required")
	}
	if err := utils.ValidateCoordinates(*req.Latitude, *req.Longitude); err != nil {
		return models.Farmer{}, models.Commodity{}, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if req.Contact != "" {
		if ok, _ := utils.ValidatePhone(strings.ReplaceAll(req.Contact, " ", "")); !ok {
			return models.Farmer{}, models.Commodity{}, validationError("contact %q is not a valid phone number", req.Contact)
		}
	}

	var harvestDate *time.Time
	if req.HarvestDate != "" {
		at, err := time.Parse("2006-01-02", req.HarvestDate)
		if err != nil {
			return models.Farmer{}, models.Commodity{}, validationError("harvest_date must be YYYY-MM-DD")
		}
		harvestDate = &at
	}

	return req.ToFarmer(), req.ToCommodity(harvestDate), nil
}

// changed drops the record cache and notifies listeners.
func (s *FarmerService) changed(ctx context.Context) {
	if s.cache != nil {
		if err := s.cache.Invalidate(ctx); err != nil && !errors.Is(err, context.Canceled) {
			slog.Warn("failed to invalidate record cache", "error", err)
		}
	}

	s.mu.Lock()
	listeners := append([]func(){}, s.listeners...)
	s.mu.Unlock()
	for _, fn := range listeners {
		fn()
	}
}
