package analytics

type Trend struct {
	// PerPeriodPercentChange is aligned with the monthly series. The first
	// entry is nil because it has no prior period.
	PerPeriodPercentChange []*float64 `json:"perPeriodPercentChange"`
	AverageTrendPercent    float64    `json:"averageTrendPercent"`
	IsGrowing              bool       `json:"isGrowing"`
}

// AnalyzeTrend computes month-over-month change of a monthly series.
//
// A change measured against a zero-valued prior month is reported as 0 rather
// than infinite. The average is the mean of the unrounded changes from index 1
// onward, rounded to one decimal, and is 0 for fewer than two buckets.
func AnalyzeTrend(series []MonthlyBucket) Trend {
	changes := make([]*float64, len(series))
	var sum float64

	for i := 1; i < len(series); i++ {
		prev, cur := series[i-1].TotalTon, series[i].TotalTon
		change := 0.0
		if prev != 0 {
			change = (cur - prev) / prev * 100
		}
		sum += change
		rounded := round1(change)
		changes[i] = &rounded
	}

	avg := 0.0
	if len(series) >= 2 {
		avg = round1(sum / float64(len(series)-1))
	}

	return Trend{
		PerPeriodPercentChange: changes,
		AverageTrendPercent:    avg,
		IsGrowing:              avg > 0,
	}
}
