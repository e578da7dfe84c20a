package services

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/tanziljws/tanipintar-website/internal/analytics"
	"github.com/tanziljws/tanipintar-website/internal/report"
)

// AnalyticsView is the payload of the map analytics endpoint.
type AnalyticsView struct {
	analytics.DerivedAnalytics
	DistrictDistribution []analytics.DistrictCount `json:"districtDistribution"`
	Options              analytics.FilterOptions   `json:"options"`
	CommodityCounts      map[string]int            `json:"commodityCounts"`
	Warning              string                    `json:"warning,omitempty"`
}

type AnalyticsService struct {
	records   analytics.RecordSource
	districts analytics.DistrictSource
	store     *analytics.Store
	memo      *analytics.Memo
	now       func() time.Time

	loadMu sync.Mutex
	stale  atomic.Bool
}

func NewAnalyticsService(records analytics.RecordSource, districts analytics.DistrictSource) *AnalyticsService {
	return &AnalyticsService{
		records:   records,
		districts: districts,
		store:     analytics.NewStore(),
		memo:      analytics.NewMemo(),
		now:       time.Now,
	}
}

// MarkStale makes the next read re-fetch the record set.
func (s *AnalyticsService) MarkStale() {
	s.stale.Store(true)
}

// Refresh re-fetches the record set and returns the fallback warning, if any.
func (s *AnalyticsService) Refresh(ctx context.Context) string {
	s.loadMu.Lock()
	defer s.loadMu.Unlock()
	s.stale.Store(false)
	return s.store.Load(ctx, s.records)
}

// Records returns the current record set, loading it on first use or after
// MarkStale.
func (s *AnalyticsService) Records(ctx context.Context) ([]analytics.FarmerRecord, string) {
	if !s.store.Loaded() || s.stale.Load() {
		s.loadMu.Lock()
		if !s.store.Loaded() || s.stale.Swap(false) {
			s.store.Load(ctx, s.records)
		}
		s.loadMu.Unlock()
	}
	return s.store.Snapshot()
}

func (s *AnalyticsService) Derived(ctx context.Context, filter analytics.FilterState) AnalyticsView {
	records, warning := s.Records(ctx)
	derived := s.memo.Compute(records, filter)

	return AnalyticsView{
		DerivedAnalytics:     derived,
		DistrictDistribution: analytics.ResolveDistrictCounts(ctx, s.districts, records),
		Options:              analytics.Options(records),
		CommodityCounts:      analytics.CommodityCounts(records),
		Warning:              warning,
	}
}

// Export serializes the filtered, sorted records.
func (s *AnalyticsService) Export(ctx context.Context, filter analytics.FilterState, format analytics.Format) (*analytics.Artifact, error) {
	records, _ := s.Records(ctx)
	derived := s.memo.Compute(records, filter)
	return analytics.ExportRecords(derived.FilteredRecords, format, s.now())
}

func (s *AnalyticsService) MonthlyChart(ctx context.Context, filter analytics.FilterState) ([]byte, error) {
	records, _ := s.Records(ctx)
	derived := s.memo.Compute(records, filter)
	return report.MonthlyHarvestChart(derived.MonthlySeries, derived.Trend)
}

func (s *AnalyticsService) MemoStats() (hits, misses int) {
	return s.memo.Stats()
}
