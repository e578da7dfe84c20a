// Package analytics derives the farmer distribution views shown on the map
// page: filtering, ordering, KPI aggregation, monthly harvest buckets,
// per-commodity rollups, month-over-month trend and tabular export.
//
// Every function in this package is total over well-typed input. Malformed
// numbers count as zero and malformed harvest dates only exclude a record from
// month buckets.
package analytics

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"
)

// Number is a lenient non-negative quantity. It decodes from JSON numbers,
// numeric strings and null; anything it cannot read becomes zero.
type Number float64

func (n *Number) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*n = 0
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		*n = Number(f)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err == nil {
			*n = Number(f)
			return nil
		}
	}

	*n = 0
	return nil
}

// Value returns the quantity with NaN, infinities and negatives read as 0.
func (n Number) Value() float64 {
	f := float64(n)
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return 0
	}
	return f
}

// Position is a [latitude, longitude] pair.
type Position [2]float64

func (p Position) Lat() float64 { return p[0] }
func (p Position) Lon() float64 { return p[1] }

// Valid reports whether the pair lies inside WGS84 bounds.
func (p Position) Valid() bool {
	return p[0] >= -90 && p[0] <= 90 && p[1] >= -180 && p[1] <= 180
}

// FarmerRecord is one commodity-producing farmer at a point in time.
type FarmerRecord struct {
	ID            int64    `json:"id"`
	Name          string   `json:"name"`
	Position      Position `json:"position"`
	CommodityType string   `json:"commodityType"`
	CommodityName string   `json:"commodityName"`
	Location      string   `json:"location,omitempty"`
	District      string   `json:"district"`
	Province      string   `json:"province"`
	Status        string   `json:"status"`
	Contact       string   `json:"contact,omitempty"`
	Category      string   `json:"category"`
	Organic       bool     `json:"organic"`
	EstYieldTon   Number   `json:"estYieldTon"`
	LandArea      Number   `json:"landArea"`
	HarvestDate   string   `json:"harvestDate,omitempty"`
	Image         string   `json:"image,omitempty"`
}

var harvestDateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// HarvestTime parses HarvestDate. The second result is false when the date is
// missing or unparseable.
func (r FarmerRecord) HarvestTime() (time.Time, bool) {
	s := strings.TrimSpace(r.HarvestDate)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range harvestDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
