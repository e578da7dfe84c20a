package analytics

import (
	"context"
	"log/slog"
	"slices"
	"sort"
	"sync"
	"time"
)

// FallbackWarning is surfaced to visitors when the record source failed and
// the built-in sample records are shown instead.
const FallbackWarning = "Failed to load farmers data. Using fallback data."

// RecordSource supplies the raw farmer records.
type RecordSource interface {
	FetchFarmerRecords(ctx context.Context) ([]FarmerRecord, error)
}

type DistrictCount struct {
	District string `json:"district"`
	Count    int    `json:"count"`
}

// DistrictSource supplies pre-aggregated farmer counts per district.
type DistrictSource interface {
	FetchDistrictCounts(ctx context.Context) ([]DistrictCount, error)
}

// Store holds the current record set. Concurrent loads are not reconciled:
// whichever Replace runs last wins.
type Store struct {
	mu       sync.RWMutex
	records  []FarmerRecord
	warning  string
	loadedAt time.Time
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) Replace(records []FarmerRecord, warning string) {
	records = slices.Clone(records)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = records
	s.warning = warning
	s.loadedAt = time.Now()
}

// Snapshot returns the current records and the warning recorded with them.
// The returned slice must not be modified.
func (s *Store) Snapshot() ([]FarmerRecord, string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.records, s.warning
}

// Loaded reports whether any record set has been stored yet.
func (s *Store) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return !s.loadedAt.IsZero()
}

// Load fetches from source into the store. On failure the fallback records
// are stored and FallbackWarning is returned; the error itself never reaches
// the caller.
func (s *Store) Load(ctx context.Context, source RecordSource) string {
	records, err := source.FetchFarmerRecords(ctx)
	if err != nil {
		slog.Warn("failed to fetch farmer records, using fallback data", "error", err)
		s.Replace(FallbackRecords(), FallbackWarning)
		return FallbackWarning
	}
	s.Replace(records, "")
	return ""
}

// DistrictCounts counts records per district, largest first. Equal counts keep
// the order in which districts first appear.
func DistrictCounts(records []FarmerRecord) []DistrictCount {
	index := make(map[string]int)
	var out []DistrictCount
	for _, r := range records {
		i, ok := index[r.District]
		if !ok {
			i = len(out)
			index[r.District] = i
			out = append(out, DistrictCount{District: r.District})
		}
		out[i].Count++
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	if out == nil {
		out = []DistrictCount{}
	}
	return out
}

// ResolveDistrictCounts prefers the source's counts and falls back to counting
// records when the source is nil, fails or returns nothing.
func ResolveDistrictCounts(ctx context.Context, source DistrictSource, records []FarmerRecord) []DistrictCount {
	if source != nil {
		counts, err := source.FetchDistrictCounts(ctx)
		if err == nil && len(counts) > 0 {
			return counts
		}
		if err != nil {
			slog.Warn("failed to fetch district distribution, computing from records", "error", err)
		}
	}
	return DistrictCounts(records)
}
