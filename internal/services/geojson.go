package services

import (
	"strconv"

	"github.com/tanziljws/tanipintar-website/internal/analytics"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"
)

// FarmerFeatureCollection renders records as GeoJSON points. GeoJSON orders
// coordinates longitude first. Records outside WGS84 bounds are skipped.
func FarmerFeatureCollection(records []analytics.FarmerRecord) *geojson.FeatureCollection {
	fc := &geojson.FeatureCollection{Features: make([]*geojson.Feature, 0, len(records))}

	for _, r := range records {
		if !r.Position.Valid() {
			continue
		}
		point := geom.NewPointFlat(geom.XY, []float64{r.Position.Lon(), r.Position.Lat()})

		fc.Features = append(fc.Features, &geojson.Feature{
			ID:       strconv.FormatInt(r.ID, 10),
			Geometry: point,
			Properties: map[string]any{
				"name":          r.Name,
				"commodityType": r.CommodityType,
				"commodityName": r.CommodityName,
				"district":      r.District,
				"province":      r.Province,
				"status":        r.Status,
				"category":      r.Category,
				"organic":       r.Organic,
				"estYieldTon":   r.EstYieldTon.Value(),
				"landArea":      r.LandArea.Value(),
				"harvestDate":   r.HarvestDate,
				"image":         r.Image,
			},
		})
	}
	return fc
}
