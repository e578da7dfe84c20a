package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/tanziljws/tanipintar-website/internal/analytics"
)

func strPtr(s string) *string { return &s }

func TestFarmerRow_ToRecord(t *testing.T) {
	organic := true
	yield := 12.5
	harvest := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)

	row := FarmerRow{
		ID:            7,
		Name:          "Budi Santoso",
		Contact:       strPtr("08123456789"),
		Province:      "Jawa Barat",
		District:      "Bandung",
		Latitude:      -6.9,
		Longitude:     107.6,
		LandArea:      2.5,
		CommodityName: strPtr("Padi Ciherang"),
		CommodityType: strPtr("padi"),
		Status:        strPtr("Siap Panen"),
		Category:      strPtr("Organik"),
		Organic:       &organic,
		EstYieldTon:   &yield,
		HarvestDate:   &harvest,
	}

	record := row.ToRecord()

	assert.Equal(t, int64(7), record.ID)
	assert.Equal(t, analytics.Position{-6.9, 107.6}, record.Position)
	assert.Equal(t, "padi", record.CommodityType)
	assert.True(t, record.Organic)
	assert.Equal(t, 12.5, record.EstYieldTon.Value())
	assert.Equal(t, 2.5, record.LandArea.Value())
	assert.Equal(t, "2025-01-15", record.HarvestDate)
	assert.Empty(t, record.Image)
}

func TestFarmerRow_ToRecordWithoutCommodity(t *testing.T) {
	record := FarmerRow{ID: 1, Name: "Tanpa Komoditas", District: "Sleman"}.ToRecord()

	assert.Empty(t, record.CommodityType)
	assert.Empty(t, record.HarvestDate)
	assert.False(t, record.Organic)
	assert.Equal(t, 0.0, record.EstYieldTon.Value())
}

func TestFarmerRequest_ToCommodityDerivesOrganic(t *testing.T) {
	req := FarmerRequest{CommodityType: "sayur", Category: " organik "}
	assert.True(t, req.ToCommodity(nil).Organic)

	req.Category = "Non-Organik"
	c := req.ToCommodity(nil)
	assert.False(t, c.Organic)
	assert.Nil(t, c.ImageURL)
}

func TestEducationContent_ToItem(t *testing.T) {
	content := EducationContent{
		ID:        3,
		Title:     "Pupuk Kompos",
		Content:   "Cara membuat kompos",
		ImageURL:  strPtr("https://img.example/kompos.jpg"),
		ReadTime:  "5 menit",
		IsVideo:   true,
		CreatedAt: time.Date(2025, 3, 2, 23, 30, 0, 0, time.UTC),
	}

	item := content.ToItem()

	assert.Equal(t, "2025-03-02", item.Date)
	assert.Equal(t, "Cara membuat kompos", item.Description)
	assert.Equal(t, content.ImageURL, item.Image)
	assert.Equal(t, "5 menit", item.ReadTime)
	assert.True(t, item.IsVideo)
}

func TestUpdateEducationRequest_ToUpdateMap(t *testing.T) {
	featured := false
	req := UpdateEducationRequest{Title: strPtr("Baru"), Featured: &featured}

	assert.Equal(t, map[string]any{"title": "Baru", "featured": false}, req.ToUpdateMap())
	assert.Empty(t, UpdateEducationRequest{}.ToUpdateMap())
}

func TestMapMarkerRequest_DefaultsType(t *testing.T) {
	lat, lon := -7.1, 110.2
	marker := MapMarkerRequest{Title: "Gudang", Latitude: &lat, Longitude: &lon}.ToMarker()

	assert.Equal(t, "default", marker.MarkerType)
	assert.Nil(t, marker.Description)
}
