package services

import (
	"context"
	"io"

	"github.com/tanziljws/tanipintar-website/internal/analytics"
	"github.com/tanziljws/tanipintar-website/internal/models"
)

type IAuthService interface {
	Login(ctx context.Context, username, password string) (*models.LoginResponse, error)
	Authenticate(ctx context.Context, token string) (*models.Claims, error)
	Logout(ctx context.Context, sessionID string) error
	LogoutAll(ctx context.Context, adminID int64) error
}

type IFarmerService interface {
	FetchFarmerRecords(ctx context.Context) ([]analytics.FarmerRecord, error)
	FetchDistrictCounts(ctx context.Context) ([]analytics.DistrictCount, error)
	GetCommodityTypeCounts(ctx context.Context) ([]models.CommodityTypeCount, error)
	ListDistricts(ctx context.Context) ([]string, error)
	ListCommodityTypes(ctx context.Context) ([]string, error)
	ListTables(ctx context.Context) ([]string, error)
	ListFarmers(ctx context.Context, filter models.FarmerFilter) ([]models.FarmerRow, error)
	CreateFarmer(ctx context.Context, req models.FarmerRequest) (*models.FarmerRow, error)
	UpdateFarmer(ctx context.Context, id int64, req models.FarmerRequest) (*models.FarmerRow, error)
	DeleteFarmer(ctx context.Context, id int64) error
}

type IAnalyticsService interface {
	Derived(ctx context.Context, filter analytics.FilterState) AnalyticsView
	Refresh(ctx context.Context) string
	Export(ctx context.Context, filter analytics.FilterState, format analytics.Format) (*analytics.Artifact, error)
	MonthlyChart(ctx context.Context, filter analytics.FilterState) ([]byte, error)
}

type IEducationService interface {
	ListItems(ctx context.Context) ([]models.EducationItem, error)
	ListContent(ctx context.Context) ([]models.EducationContent, error)
	CreateContent(ctx context.Context, req models.CreateEducationRequest) (*models.EducationContent, error)
	UpdateContent(ctx context.Context, id int64, req models.UpdateEducationRequest) (*models.EducationContent, error)
	DeleteContent(ctx context.Context, id int64) error
}

type IMarkerService interface {
	ListMarkers(ctx context.Context) ([]models.MapMarker, error)
	CreateMarker(ctx context.Context, req models.MapMarkerRequest) (*models.MapMarker, error)
	UpdateMarker(ctx context.Context, id int64, req models.MapMarkerRequest) (*models.MapMarker, error)
	DeleteMarker(ctx context.Context, id int64) error
}

type IContactService interface {
	Submit(ctx context.Context, req models.ContactRequest) (*models.ContactMessage, error)
	ListMessages(ctx context.Context) ([]models.ContactMessage, error)
}

type IGalleryService interface {
	ListImages(ctx context.Context) ([]models.GalleryImage, error)
	Upload(ctx context.Context, title, contentType string, size int64, body io.Reader) (*models.GalleryImage, error)
	Delete(ctx context.Context, id int64) error
}

var (
	_ IAuthService      = (*AuthService)(nil)
	_ IFarmerService    = (*FarmerService)(nil)
	_ IAnalyticsService = (*AnalyticsService)(nil)
	_ IEducationService = (*EducationService)(nil)
	_ IMarkerService    = (*MarkerService)(nil)
	_ IContactService   = (*ContactService)(nil)
	_ IGalleryService   = (*GalleryService)(nil)
)
