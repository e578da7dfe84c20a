package models

import (
	"strings"
	"time"

	"github.com/tanziljws/tanipintar-website/internal/analytics"
)

// FarmerRow is one row of farmers LEFT JOIN commodities. Commodity columns are
// nil for farmers without a commodity.
type FarmerRow struct {
	ID            int64      `json:"id" db:"id"`
	Name          string     `json:"name" db:"name"`
	Contact       *string    `json:"contact" db:"contact"`
	Province      string     `json:"province" db:"province"`
	District      string     `json:"district" db:"district"`
	Location      *string    `json:"location" db:"location"`
	Latitude      float64    `json:"latitude" db:"latitude"`
	Longitude     float64    `json:"longitude" db:"longitude"`
	LandArea      float64    `json:"land_area" db:"land_area"`
	CommodityID   *int64     `json:"commodity_id" db:"commodity_id"`
	CommodityName *string    `json:"commodity_name" db:"commodity_name"`
	CommodityType *string    `json:"commodity_type" db:"commodity_type"`
	Status        *string    `json:"status" db:"status"`
	Category      *string    `json:"category" db:"category"`
	Organic       *bool      `json:"organic" db:"organic"`
	EstYieldTon   *float64   `json:"est_yield_ton" db:"est_yield_ton"`
	HarvestDate   *time.Time `json:"harvest_date" db:"harvest_date"`
	ImageURL      *string    `json:"image_url" db:"image_url"`
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at" db:"updated_at"`
}

// ToRecord converts the row into the record shape used by the map page.
func (r FarmerRow) ToRecord() analytics.FarmerRecord {
	record := analytics.FarmerRecord{
		ID:            r.ID,
		Name:          r.Name,
		Position:      analytics.Position{r.Latitude, r.Longitude},
		CommodityType: deref(r.CommodityType),
		CommodityName: deref(r.CommodityName),
		Location:      deref(r.Location),
		District:      r.District,
		Province:      r.Province,
		Status:        deref(r.Status),
		Contact:       deref(r.Contact),
		Category:      deref(r.Category),
		LandArea:      analytics.Number(r.LandArea),
		Image:         deref(r.ImageURL),
	}
	if r.Organic != nil {
		record.Organic = *r.Organic
	}
	if r.EstYieldTon != nil {
		record.EstYieldTon = analytics.Number(*r.EstYieldTon)
	}
	if r.HarvestDate != nil {
		record.HarvestDate = r.HarvestDate.Format("2006-01-02")
	}
	return record
}

type Farmer struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Contact   *string   `json:"contact" db:"contact"`
	Province  string    `json:"province" db:"province"`
	District  string    `json:"district" db:"district"`
	Location  *string   `json:"location" db:"location"`
	Latitude  float64   `json:"latitude" db:"latitude"`
	Longitude float64   `json:"longitude" db:"longitude"`
	LandArea  float64   `json:"land_area" db:"land_area"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

type Commodity struct {
	ID          int64      `json:"id" db:"id"`
	FarmerID    int64      `json:"farmer_id" db:"farmer_id"`
	Name        string     `json:"name" db:"name"`
	Type        string     `json:"type" db:"type"`
	Status      string     `json:"status" db:"status"`
	Category    string     `json:"category" db:"category"`
	Organic     bool       `json:"organic" db:"organic"`
	EstYieldTon float64    `json:"est_yield_ton" db:"est_yield_ton"`
	HarvestDate *time.Time `json:"harvest_date" db:"harvest_date"`
	ImageURL    *string    `json:"image_url" db:"image_url"`
}

type CommodityTypeCount struct {
	Type  string `json:"type" db:"type"`
	Count int    `json:"count" db:"count"`
}

// FarmerFilter narrows the admin farmer list. Zero values are ignored.
// Search matches the farmer or commodity name, case-insensitively.
type FarmerFilter struct {
	Districts      []string
	CommodityTypes []string
	Search         string
	Limit          int
	Offset         int
}

type FarmerRequest struct {
	Name          string   `json:"name" binding:"required"`
	Contact       string   `json:"contact"`
	Province      string   `json:"province"`
	District      string   `json:"district" binding:"required"`
	Location      string   `json:"location"`
	Latitude      *float64 `json:"latitude" binding:"required"`
	Longitude     *float64 `json:"longitude" binding:"required"`
	LandArea      float64  `json:"land_area" binding:"gte=0"`
	CommodityName string   `json:"commodity_name"`
	CommodityType string   `json:"commodity_type" binding:"required"`
	Status        string   `json:"status"`
	Category      string   `json:"category"`
	EstYieldTon   float64  `json:"est_yield_ton" binding:"gte=0"`
	HarvestDate   string   `json:"harvest_date"`
	ImageURL      string   `json:"image_url"`
}

// ToFarmer builds the farmer row. Latitude and longitude must be set.
func (req FarmerRequest) ToFarmer() Farmer {
	return Farmer{
		Name:      req.Name,
		Contact:   optional(req.Contact),
		Province:  req.Province,
		District:  req.District,
		Location:  optional(req.Location),
		Latitude:  *req.Latitude,
		Longitude: *req.Longitude,
		LandArea:  req.LandArea,
	}
}

// ToCommodity builds the commodity row. The organic flag follows the category.
func (req FarmerRequest) ToCommodity(harvestDate *time.Time) Commodity {
	return Commodity{
		Name:        req.CommodityName,
		Type:        req.CommodityType,
		Status:      req.Status,
		Category:    req.Category,
		Organic:     strings.EqualFold(strings.TrimSpace(req.Category), "organik"),
		EstYieldTon: req.EstYieldTon,
		HarvestDate: harvestDate,
		ImageURL:    optional(req.ImageURL),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
