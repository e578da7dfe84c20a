package analytics

import "sort"

// FilterOptions lists the distinct values offered by the map filter controls.
type FilterOptions struct {
	Provinces      []string `json:"provinces"`
	Districts      []string `json:"districts"`
	CommodityTypes []string `json:"commodityTypes"`
	Categories     []string `json:"categories"`
}

// Options collects distinct non-empty provinces, districts, commodity types
// and categories, each sorted.
func Options(records []FarmerRecord) FilterOptions {
	return FilterOptions{
		Provinces:      distinct(records, func(r FarmerRecord) string { return r.Province }),
		Districts:      distinct(records, func(r FarmerRecord) string { return r.District }),
		CommodityTypes: distinct(records, func(r FarmerRecord) string { return r.CommodityType }),
		Categories:     distinct(records, func(r FarmerRecord) string { return r.Category }),
	}
}

// CommodityCounts counts records per commodity type; the "all" key holds the
// total.
func CommodityCounts(records []FarmerRecord) map[string]int {
	counts := map[string]int{"all": len(records)}
	for _, r := range records {
		counts[r.CommodityType]++
	}
	return counts
}

func distinct(records []FarmerRecord, field func(FarmerRecord) string) []string {
	seen := make(map[string]struct{})
	out := []string{}
	for _, r := range records {
		v := field(r)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
