package handlers

import (
	"context"
	"io"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/tanziljws/tanipintar-website/internal/analytics"
	"github.com/tanziljws/tanipintar-website/internal/models"
	"github.com/tanziljws/tanipintar-website/internal/repository"
	"github.com/tanziljws/tanipintar-website/internal/services"
)

const validToken = "valid-token"

type fakeAuth struct {
	loggedOut    []string
	loggedOutAll []int64
	err          error
}

func (f *fakeAuth) Login(ctx context.Context, username, password string) (*models.LoginResponse, error) {
	if username != "admin" || password != "rahasia" {
		return nil, services.ErrInvalidCredentials
	}
	return &models.LoginResponse{Token: validToken, ExpiresAt: time.Now().Add(time.Hour)}, nil
}

func (f *fakeAuth) Authenticate(ctx context.Context, token string) (*models.Claims, error) {
	if token != validToken {
		return nil, services.ErrUnauthorized
	}
	return &models.Claims{
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
		SessionID:        "sess-1",
		AdminID:          1,
		Username:         "admin",
	}, nil
}

func (f *fakeAuth) Logout(ctx context.Context, sessionID string) error {
	f.loggedOut = append(f.loggedOut, sessionID)
	return nil
}

func (f *fakeAuth) LogoutAll(ctx context.Context, adminID int64) error {
	if f.err != nil {
		return f.err
	}
	f.loggedOutAll = append(f.loggedOutAll, adminID)
	return nil
}

type fakeFarmerService struct {
	records    []analytics.FarmerRecord
	err        error
	lastFilter models.FarmerFilter
	lastReq    models.FarmerRequest
}

func (f *fakeFarmerService) FetchFarmerRecords(ctx context.Context) ([]analytics.FarmerRecord, error) {
	return f.records, f.err
}

func (f *fakeFarmerService) FetchDistrictCounts(ctx context.Context) ([]analytics.DistrictCount, error) {
	return analytics.DistrictCounts(f.records), f.err
}

func (f *fakeFarmerService) GetCommodityTypeCounts(ctx context.Context) ([]models.CommodityTypeCount, error) {
	return []models.CommodityTypeCount{{Type: "padi", Count: 1}}, f.err
}

func (f *fakeFarmerService) ListDistricts(ctx context.Context) ([]string, error) {
	return []string{"Bandung", "Sleman"}, f.err
}

func (f *fakeFarmerService) ListCommodityTypes(ctx context.Context) ([]string, error) {
	return []string{"jagung", "padi"}, f.err
}

func (f *fakeFarmerService) ListTables(ctx context.Context) ([]string, error) {
	return []string{"farmers"}, f.err
}

func (f *fakeFarmerService) ListFarmers(ctx context.Context, filter models.FarmerFilter) ([]models.FarmerRow, error) {
	f.lastFilter = filter
	return nil, f.err
}

func (f *fakeFarmerService) CreateFarmer(ctx context.Context, req models.FarmerRequest) (*models.FarmerRow, error) {
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return &models.FarmerRow{ID: 10, Name: req.Name}, nil
}

func (f *fakeFarmerService) UpdateFarmer(ctx context.Context, id int64, req models.FarmerRequest) (*models.FarmerRow, error) {
	if id != 10 {
		return nil, repository.ErrNotFound
	}
	return &models.FarmerRow{ID: id, Name: req.Name}, nil
}

func (f *fakeFarmerService) DeleteFarmer(ctx context.Context, id int64) error {
	if id != 10 {
		return repository.ErrNotFound
	}
	return nil
}

type fakeAnalyticsService struct {
	lastFilter analytics.FilterState
	warning    string
	refreshed  int
}

func (f *fakeAnalyticsService) Derived(ctx context.Context, filter analytics.FilterState) services.AnalyticsView {
	f.lastFilter = filter
	return services.AnalyticsView{
		DerivedAnalytics: analytics.ComputeDerivedAnalytics(nil, filter),
		Warning:          f.warning,
	}
}

func (f *fakeAnalyticsService) Refresh(ctx context.Context) string {
	f.refreshed++
	return f.warning
}

func (f *fakeAnalyticsService) Export(ctx context.Context, filter analytics.FilterState, format analytics.Format) (*analytics.Artifact, error) {
	f.lastFilter = filter
	return analytics.ExportRecords(nil, format, time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC))
}

func (f *fakeAnalyticsService) MonthlyChart(ctx context.Context, filter analytics.FilterState) ([]byte, error) {
	return []byte("\x89PNG\r\n\x1a\n"), nil
}

type fakeContactService struct {
	submitted []models.ContactRequest
}

func (f *fakeContactService) Submit(ctx context.Context, req models.ContactRequest) (*models.ContactMessage, error) {
	if req.Email == "bukan-email" {
		return nil, services.ErrValidation
	}
	f.submitted = append(f.submitted, req)
	return &models.ContactMessage{ID: int64(len(f.submitted)), Name: req.Name}, nil
}

func (f *fakeContactService) ListMessages(ctx context.Context) ([]models.ContactMessage, error) {
	return []models.ContactMessage{{ID: 1, Name: "Siti"}}, nil
}

type fakeMarkerService struct {
	markers []models.MapMarker
}

func (f *fakeMarkerService) ListMarkers(ctx context.Context) ([]models.MapMarker, error) {
	return f.markers, nil
}

func (f *fakeMarkerService) CreateMarker(ctx context.Context, req models.MapMarkerRequest) (*models.MapMarker, error) {
	marker := req.ToMarker()
	marker.ID = int64(len(f.markers) + 1)
	f.markers = append(f.markers, marker)
	return &marker, nil
}

func (f *fakeMarkerService) UpdateMarker(ctx context.Context, id int64, req models.MapMarkerRequest) (*models.MapMarker, error) {
	for i := range f.markers {
		if f.markers[i].ID == id {
			marker := req.ToMarker()
			marker.ID = id
			f.markers[i] = marker
			return &marker, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeMarkerService) DeleteMarker(ctx context.Context, id int64) error {
	for i := range f.markers {
		if f.markers[i].ID == id {
			f.markers = append(f.markers[:i], f.markers[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

type fakeGalleryService struct {
	uploadedTitle string
	uploadedType  string
	uploadedBody  string
}

func (f *fakeGalleryService) ListImages(ctx context.Context) ([]models.GalleryImage, error) {
	return nil, nil
}

func (f *fakeGalleryService) Upload(ctx context.Context, title, contentType string, size int64, body io.Reader) (*models.GalleryImage, error) {
	data, err := io.ReadAll(body)
	if err != nil {
		return nil, err
	}
	f.uploadedTitle, f.uploadedType, f.uploadedBody = title, contentType, string(data)
	return &models.GalleryImage{ID: 1, Title: title, URL: "http://minio.local/g/images/x.png"}, nil
}

func (f *fakeGalleryService) Delete(ctx context.Context, id int64) error {
	return repository.ErrNotFound
}
