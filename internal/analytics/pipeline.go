package analytics

import (
	"fmt"
	"hash/fnv"
	"math"
	"sync"

	"golang.org/x/sync/singleflight"
)

// DerivedAnalytics is everything the map page renders for one record set and
// filter.
type DerivedAnalytics struct {
	Filter               FilterState            `json:"filter"`
	FilteredRecords      []FarmerRecord         `json:"filteredRecords"`
	KPI                  KPI                    `json:"kpi"`
	MonthlySeries        []MonthlyBucket        `json:"monthlySeries"`
	CommodityPerformance []CommodityPerformance `json:"commodityPerformance"`
	Trend                Trend                  `json:"trend"`
}

// ComputeDerivedAnalytics runs filter, sort, aggregate and trend analysis.
func ComputeDerivedAnalytics(records []FarmerRecord, filter FilterState) DerivedAnalytics {
	filter = filter.Normalize()
	filtered := SortRecords(Filter(records, filter), filter.SortOption)
	agg := Aggregate(filtered)

	return DerivedAnalytics{
		Filter:               filter,
		FilteredRecords:      filtered,
		KPI:                  agg.KPI,
		MonthlySeries:        agg.MonthlySeries,
		CommodityPerformance: agg.CommodityPerformance,
		Trend:                AnalyzeTrend(agg.MonthlySeries),
	}
}

// Fingerprint hashes the content of a record set. Equal sets in equal order
// share a fingerprint. Every FarmerRecord field takes part.
func Fingerprint(records []FarmerRecord) uint64 {
	h := fnv.New64a()
	for _, r := range records {
		fmt.Fprintf(h, "%d\x1f%q\x1f%x\x1f%x\x1f%q\x1f%q\x1f%q\x1f%q\x1f%q\x1f%q\x1f%q\x1f%q\x1f%t\x1f%x\x1f%x\x1f%q\x1f%q\x1e",
			r.ID, r.Name,
			math.Float64bits(r.Position[0]), math.Float64bits(r.Position[1]),
			r.CommodityType, r.CommodityName, r.Location, r.District, r.Province,
			r.Status, r.Contact, r.Category,
			r.Organic,
			math.Float64bits(float64(r.EstYieldTon)), math.Float64bits(float64(r.LandArea)),
			r.HarvestDate, r.Image,
		)
	}
	return h.Sum64()
}

const defaultMemoCapacity = 8

// Memo caches recent ComputeDerivedAnalytics results keyed by record set and
// filter, evicting the least recently used entry past its capacity. Concurrent
// callers asking for the same key share one computation. Cached results are
// shared and must be treated as read-only.
type Memo struct {
	mu       sync.Mutex
	capacity int
	entries  map[string]DerivedAnalytics
	order    []string
	group    singleflight.Group

	hits   int
	misses int
}

func NewMemo() *Memo {
	return NewMemoWithCapacity(defaultMemoCapacity)
}

func NewMemoWithCapacity(capacity int) *Memo {
	if capacity < 1 {
		capacity = 1
	}
	return &Memo{
		capacity: capacity,
		entries:  make(map[string]DerivedAnalytics, capacity),
	}
}

func (m *Memo) Compute(records []FarmerRecord, filter FilterState) DerivedAnalytics {
	key := fmt.Sprintf("%016x|%s", Fingerprint(records), filter.Key())

	value, ok := m.lookup(key)
	if !ok {
		ran := false
		v, _, _ := m.group.Do(key, func() (any, error) {
			ran = true
			if cached, ok := m.lookup(key); ok {
				return cached, nil
			}
			computed := ComputeDerivedAnalytics(records, filter)
			m.store(key, computed)
			return computed, nil
		})
		if !ran {
			m.mu.Lock()
			m.hits++
			m.mu.Unlock()
		}
		value = v.(DerivedAnalytics)
	}

	// Equivalent filters share an entry; echo the caller's own filter.
	value.Filter = filter.Normalize()
	return value
}

// lookup counts a hit when key is cached and marks it most recently used.
func (m *Memo) lookup(key string) (DerivedAnalytics, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	value, ok := m.entries[key]
	if ok {
		m.hits++
		m.touch(key)
	}
	return value, ok
}

func (m *Memo) store(key string, value DerivedAnalytics) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.misses++
	m.entries[key] = value
	m.touch(key)
	for len(m.order) > m.capacity {
		oldest := m.order[0]
		m.order = m.order[1:]
		delete(m.entries, oldest)
	}
}

func (m *Memo) touch(key string) {
	for i, k := range m.order {
		if k == key {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	m.order = append(m.order, key)
}

// Stats returns cache hits and misses since creation.
func (m *Memo) Stats() (hits, misses int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.hits, m.misses
}
