package analytics

import (
	"slices"
	"strings"
)

const AllProvinces = "all"

type OrganicFilter string

const (
	OrganicAll        OrganicFilter = "all"
	OrganicOnly       OrganicFilter = "organic"
	OrganicNonOrganic OrganicFilter = "non-organic"
)

type SortOption string

const (
	SortNewest      SortOption = "terbaru"
	SortNameAsc     SortOption = "name-asc"
	SortNameDesc    SortOption = "name-desc"
	SortHarvestDate SortOption = "harvest-date"
)

// FilterState is the user's active map filter.
type FilterState struct {
	SearchQuery           string        `json:"searchQuery"`
	SelectedProvince      string        `json:"selectedProvince"`
	SelectedDistrict      string        `json:"selectedDistrict"`
	SelectedCommodityType string        `json:"selectedCommodityType"`
	SelectedCategories    []string      `json:"selectedCategories"`
	OrganicFilter         OrganicFilter `json:"organicFilter"`
	SortOption            SortOption    `json:"sortOption"`
}

// DefaultFilterState is the state a visitor starts with.
func DefaultFilterState() FilterState {
	return FilterState{
		SelectedProvince: AllProvinces,
		OrganicFilter:    OrganicAll,
		SortOption:       SortNewest,
	}
}

// Normalize fills empty sentinels with their defaults and maps unknown organic
// and sort values to "all" and "terbaru".
func (f FilterState) Normalize() FilterState {
	if f.SelectedProvince == "" {
		f.SelectedProvince = AllProvinces
	}
	switch f.OrganicFilter {
	case OrganicOnly, OrganicNonOrganic:
	default:
		f.OrganicFilter = OrganicAll
	}
	switch f.SortOption {
	case SortNameAsc, SortNameDesc, SortHarvestDate:
	default:
		f.SortOption = SortNewest
	}
	return f
}

// Key is a canonical representation of the filter used for memoisation.
// Category order does not affect it.
func (f FilterState) Key() string {
	f = f.Normalize()
	cats := slices.Clone(f.SelectedCategories)
	slices.Sort(cats)
	cats = slices.Compact(cats)
	return strings.Join([]string{
		strings.ToLower(strings.TrimSpace(f.SearchQuery)),
		f.SelectedProvince,
		f.SelectedDistrict,
		f.SelectedCommodityType,
		strings.Join(cats, "\x1f"),
		string(f.OrganicFilter),
		string(f.SortOption),
	}, "\x1e")
}

// Matches reports whether record satisfies every active criterion of f.
// An empty category selection places no restriction.
func Matches(record FarmerRecord, f FilterState) bool {
	if q := strings.ToLower(strings.TrimSpace(f.SearchQuery)); q != "" {
		if !strings.Contains(strings.ToLower(record.Name), q) &&
			!strings.Contains(strings.ToLower(record.CommodityName), q) &&
			!strings.Contains(strings.ToLower(record.Province), q) &&
			!strings.Contains(strings.ToLower(record.District), q) {
			return false
		}
	}

	if f.SelectedProvince != "" && f.SelectedProvince != AllProvinces && record.Province != f.SelectedProvince {
		return false
	}

	if f.SelectedDistrict != "" && record.District != f.SelectedDistrict {
		return false
	}

	if f.SelectedCommodityType != "" && record.CommodityType != f.SelectedCommodityType {
		return false
	}

	if len(f.SelectedCategories) > 0 && !slices.Contains(f.SelectedCategories, record.Category) {
		return false
	}

	switch f.OrganicFilter {
	case OrganicOnly:
		return record.Organic
	case OrganicNonOrganic:
		return !record.Organic
	}
	return true
}

// Filter returns the records matching f in input order.
func Filter(records []FarmerRecord, f FilterState) []FarmerRecord {
	out := make([]FarmerRecord, 0, len(records))
	for _, r := range records {
		if Matches(r, f) {
			out = append(out, r)
		}
	}
	return out
}
