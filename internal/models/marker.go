package models

import "time"

type MapMarker struct {
	ID          int64     `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Description *string   `json:"description" db:"description"`
	Latitude    float64   `json:"latitude" db:"latitude"`
	Longitude   float64   `json:"longitude" db:"longitude"`
	MarkerType  string    `json:"marker_type" db:"marker_type"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

type MapMarkerRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	Latitude    *float64 `json:"latitude" binding:"required"`
	Longitude   *float64 `json:"longitude" binding:"required"`
	MarkerType  string   `json:"marker_type"`
}

func (req MapMarkerRequest) ToMarker() MapMarker {
	markerType := req.MarkerType
	if markerType == "" {
		markerType = "default"
	}
	return MapMarker{
		Title:       req.Title,
		Description: optional(req.Description),
		Latitude:    *req.Latitude,
		Longitude:   *req.Longitude,
		MarkerType:  markerType,
	}
}
