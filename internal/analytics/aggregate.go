package analytics

import (
	"math"
	"sort"
)

// NoDataKey labels the single bucket produced when no record has a usable
// harvest date, so a chart always has one point.
const NoDataKey = "—"

type KPI struct {
	TotalTon            float64 `json:"totalTon"`
	OrganicSharePercent int     `json:"organicSharePercent"`
	ProvinceCount       int     `json:"provinceCount"`
	FarmerCount         int     `json:"farmerCount"`
	AvgYieldTon         float64 `json:"avgYieldTon"`
	TotalLandAreaHa     float64 `json:"totalLandAreaHa"`
	AvgLandAreaHa       float64 `json:"avgLandAreaHa"`
}

type MonthlyBucket struct {
	YearMonth string  `json:"yearMonth"`
	TotalTon  float64 `json:"totalTon"`
}

type CommodityPerformance struct {
	CommodityType  string  `json:"commodityType"`
	FarmerCount    int     `json:"farmerCount"`
	TotalYieldTon  float64 `json:"totalYieldTon"`
	AvgYieldTon    float64 `json:"avgYieldTon"`
	OrganicPercent int     `json:"organicPercent"`
}

type Aggregates struct {
	KPI                  KPI                    `json:"kpi"`
	MonthlySeries        []MonthlyBucket        `json:"monthlySeries"`
	CommodityPerformance []CommodityPerformance `json:"commodityPerformance"`
}

// Aggregate derives KPIs, the monthly harvest series and commodity rollups from
// records that have already been filtered and sorted.
func Aggregate(records []FarmerRecord) Aggregates {
	return Aggregates{
		KPI:                  ComputeKPI(records),
		MonthlySeries:        MonthlySeries(records),
		CommodityPerformance: CommodityRollup(records),
	}
}

func ComputeKPI(records []FarmerRecord) KPI {
	var totalTon, totalLand float64
	organic := 0
	provinces := make(map[string]struct{})

	for _, r := range records {
		totalTon += r.EstYieldTon.Value()
		totalLand += r.LandArea.Value()
		if r.Organic {
			organic++
		}
		provinces[r.Province] = struct{}{}
	}

	n := len(records)
	return KPI{
		TotalTon:            round1(totalTon),
		OrganicSharePercent: percent(organic, n),
		ProvinceCount:       len(provinces),
		FarmerCount:         n,
		AvgYieldTon:         round1(mean(totalTon, n)),
		TotalLandAreaHa:     round1(totalLand),
		AvgLandAreaHa:       round1(mean(totalLand, n)),
	}
}

// MonthlySeries sums yield per "YYYY-MM" harvest month in ascending key order.
// Records without a usable harvest date are left out.
func MonthlySeries(records []FarmerRecord) []MonthlyBucket {
	totals := make(map[string]float64)
	for _, r := range records {
		at, ok := r.HarvestTime()
		if !ok {
			continue
		}
		totals[at.Format("2006-01")] += r.EstYieldTon.Value()
	}

	if len(totals) == 0 {
		return []MonthlyBucket{{YearMonth: NoDataKey, TotalTon: 0}}
	}

	keys := make([]string, 0, len(totals))
	for k := range totals {
		keys = append(keys, k)
	}
	// Keys are zero-padded and fixed width, so string order is calendar order.
	sort.Strings(keys)

	series := make([]MonthlyBucket, len(keys))
	for i, k := range keys {
		series[i] = MonthlyBucket{YearMonth: k, TotalTon: round1(totals[k])}
	}
	return series
}

// CommodityRollup groups records by commodity type, ordered by total yield
// descending. Equal totals keep the order in which the types first appeared.
func CommodityRollup(records []FarmerRecord) []CommodityPerformance {
	type acc struct {
		count   int
		organic int
		total   float64
	}

	var order []string
	groups := make(map[string]*acc)
	for _, r := range records {
		g, ok := groups[r.CommodityType]
		if !ok {
			g = &acc{}
			groups[r.CommodityType] = g
			order = append(order, r.CommodityType)
		}
		g.count++
		g.total += r.EstYieldTon.Value()
		if r.Organic {
			g.organic++
		}
	}

	out := make([]CommodityPerformance, 0, len(order))
	for _, t := range order {
		g := groups[t]
		out = append(out, CommodityPerformance{
			CommodityType:  t,
			FarmerCount:    g.count,
			TotalYieldTon:  round1(g.total),
			AvgYieldTon:    round1(mean(g.total, g.count)),
			OrganicPercent: percent(g.organic, g.count),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].TotalYieldTon > out[j].TotalYieldTon
	})
	return out
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func mean(total float64, n int) float64 {
	if n == 0 {
		return 0
	}
	return total / float64(n)
}

// percent is round(100*part/whole), 0 when whole is 0.
func percent(part, whole int) int {
	if whole == 0 {
		return 0
	}
	return int(math.Round(100 * float64(part) / float64(whole)))
}
