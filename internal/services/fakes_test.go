package services

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/tanziljws/tanipintar-website/internal/analytics"
	"github.com/tanziljws/tanipintar-website/internal/event"
	"github.com/tanziljws/tanipintar-website/internal/models"
	"github.com/tanziljws/tanipintar-website/internal/repository"
)

type fakeAdminRepo struct {
	admins map[string]*models.AdminUser
	err    error
}

func newFakeAdminRepo() *fakeAdminRepo {
	return &fakeAdminRepo{admins: map[string]*models.AdminUser{}}
}

func (f *fakeAdminRepo) CreateAdmin(ctx context.Context, admin *models.AdminUser) error {
	hash, err := repository.HashPassword(admin.PasswordHash)
	if err != nil {
		return err
	}
	admin.PasswordHash = hash
	admin.ID = int64(len(f.admins) + 1)
	f.admins[admin.Username] = admin
	return nil
}

func (f *fakeAdminRepo) GetAdminByUsername(ctx context.Context, username string) (*models.AdminUser, error) {
	if f.err != nil {
		return nil, f.err
	}
	admin, ok := f.admins[username]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return admin, nil
}

func (f *fakeAdminRepo) CheckPasswordHash(password, hash string) bool {
	return repository.CheckPasswordHash(password, hash)
}

type fakeSessionRepo struct {
	mu       sync.Mutex
	ttl      time.Duration
	sessions map[string]*models.AdminSession
}

func newFakeSessionRepo(ttl time.Duration) *fakeSessionRepo {
	return &fakeSessionRepo{ttl: ttl, sessions: map[string]*models.AdminSession{}}
}

func (f *fakeSessionRepo) CreateSession(ctx context.Context, session *models.AdminSession) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	session.ExpiresAt = session.CreatedAt.Add(f.ttl)
	copied := *session
	f.sessions[session.ID] = &copied
	return nil
}

func (f *fakeSessionRepo) GetSession(ctx context.Context, sessionID string) (*models.AdminSession, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	session, ok := f.sessions[sessionID]
	if !ok || time.Now().After(session.ExpiresAt) {
		return nil, repository.ErrNotFound
	}
	return session, nil
}

func (f *fakeSessionRepo) DeleteSession(ctx context.Context, sessionID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.sessions, sessionID)
	return nil
}

func (f *fakeSessionRepo) DeleteAdminSessions(ctx context.Context, adminID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for id, s := range f.sessions {
		if s.AdminID == adminID {
			delete(f.sessions, id)
		}
	}
	return nil
}

type fakeFarmerRepo struct {
	rows      []models.FarmerRow
	districts []analytics.DistrictCount
	err       error
	listCalls int
	created   []models.Farmer
	commodity []models.Commodity
	deleteErr error
	updateErr error
}

func (f *fakeFarmerRepo) ListFarmerRows(ctx context.Context) ([]models.FarmerRow, error) {
	f.listCalls++
	return f.rows, f.err
}

func (f *fakeFarmerRepo) ListFarmers(ctx context.Context, filter models.FarmerFilter) ([]models.FarmerRow, error) {
	return f.rows, f.err
}

func (f *fakeFarmerRepo) GetFarmerByID(ctx context.Context, id int64) (*models.FarmerRow, error) {
	for _, r := range f.rows {
		if r.ID == id {
			row := r
			return &row, nil
		}
	}
	return &models.FarmerRow{ID: id}, nil
}

func (f *fakeFarmerRepo) CreateFarmer(ctx context.Context, farmer *models.Farmer, commodity *models.Commodity) error {
	farmer.ID = int64(len(f.created) + 100)
	f.created = append(f.created, *farmer)
	f.commodity = append(f.commodity, *commodity)
	return f.err
}

func (f *fakeFarmerRepo) UpdateFarmer(ctx context.Context, id int64, farmer *models.Farmer, commodity *models.Commodity) error {
	return f.updateErr
}

func (f *fakeFarmerRepo) DeleteFarmer(ctx context.Context, id int64) error {
	return f.deleteErr
}

func (f *fakeFarmerRepo) GetDistrictDistribution(ctx context.Context) ([]analytics.DistrictCount, error) {
	return f.districts, f.err
}

func (f *fakeFarmerRepo) GetCommodityTypeCounts(ctx context.Context) ([]models.CommodityTypeCount, error) {
	return nil, f.err
}

func (f *fakeFarmerRepo) ListDistricts(ctx context.Context) ([]string, error)      { return nil, f.err }
func (f *fakeFarmerRepo) ListCommodityTypes(ctx context.Context) ([]string, error) { return nil, f.err }
func (f *fakeFarmerRepo) ListTables(ctx context.Context) ([]string, error)         { return nil, f.err }

type fakeRecordCache struct {
	records     []analytics.FarmerRecord
	hit         bool
	sets        int
	invalidated int
}

func (f *fakeRecordCache) GetRecords(ctx context.Context) ([]analytics.FarmerRecord, bool, error) {
	return f.records, f.hit, nil
}

func (f *fakeRecordCache) SetRecords(ctx context.Context, records []analytics.FarmerRecord) error {
	f.sets++
	f.records = records
	return nil
}

func (f *fakeRecordCache) Invalidate(ctx context.Context) error {
	f.invalidated++
	f.hit = false
	return nil
}

type fakeContactRepo struct {
	messages []models.ContactMessage
	err      error
}

func (f *fakeContactRepo) CreateMessage(ctx context.Context, msg *models.ContactMessage) error {
	if f.err != nil {
		return f.err
	}
	msg.ID = int64(len(f.messages) + 1)
	msg.CreatedAt = time.Now()
	f.messages = append(f.messages, *msg)
	return nil
}

func (f *fakeContactRepo) ListMessages(ctx context.Context) ([]models.ContactMessage, error) {
	return f.messages, f.err
}

type fakePublisher struct {
	events []event.ContactEvent
	err    error
}

func (f *fakePublisher) PublishContactEvent(ctx context.Context, e event.ContactEvent) error {
	f.events = append(f.events, e)
	return f.err
}

type fakeEducationRepo struct {
	contents []models.EducationContent
	updates  map[string]any
	err      error
}

func (f *fakeEducationRepo) ListContent(ctx context.Context) ([]models.EducationContent, error) {
	return f.contents, f.err
}

func (f *fakeEducationRepo) GetContentByID(ctx context.Context, id int64) (*models.EducationContent, error) {
	for _, c := range f.contents {
		if c.ID == id {
			content := c
			return &content, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeEducationRepo) CreateContent(ctx context.Context, content *models.EducationContent) error {
	content.ID = int64(len(f.contents) + 1)
	f.contents = append(f.contents, *content)
	return f.err
}

func (f *fakeEducationRepo) UpdateContent(ctx context.Context, id int64, updates map[string]any) error {
	f.updates = updates
	if _, err := f.GetContentByID(ctx, id); err != nil {
		return err
	}
	return f.err
}

func (f *fakeEducationRepo) DeleteContent(ctx context.Context, id int64) error {
	return f.err
}

type fakeGalleryRepo struct {
	images    map[int64]models.GalleryImage
	createErr error
}

func (f *fakeGalleryRepo) ListImages(ctx context.Context) ([]models.GalleryImage, error) {
	out := []models.GalleryImage{}
	for _, img := range f.images {
		out = append(out, img)
	}
	return out, nil
}

func (f *fakeGalleryRepo) GetImageByID(ctx context.Context, id int64) (*models.GalleryImage, error) {
	img, ok := f.images[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &img, nil
}

func (f *fakeGalleryRepo) CreateImage(ctx context.Context, image *models.GalleryImage) error {
	if f.createErr != nil {
		return f.createErr
	}
	image.ID = int64(len(f.images) + 1)
	f.images[image.ID] = *image
	return nil
}

func (f *fakeGalleryRepo) DeleteImage(ctx context.Context, id int64) error {
	if _, ok := f.images[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.images, id)
	return nil
}

type fakeStorage struct {
	objects map[string][]byte
}

func (f *fakeStorage) UploadFile(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, contentType string) error {
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	f.objects[bucketName+"/"+objectName] = data
	return nil
}

func (f *fakeStorage) DeleteFile(ctx context.Context, bucketName, objectName string) error {
	delete(f.objects, bucketName+"/"+objectName)
	return nil
}

func (f *fakeStorage) ObjectURL(bucketName, objectName string) string {
	return "http://minio.local/" + bucketName + "/" + objectName
}

type fakeMarkerRepo struct {
	markers []models.MapMarker
	err     error
}

func (f *fakeMarkerRepo) ListMarkers(ctx context.Context) ([]models.MapMarker, error) {
	return f.markers, f.err
}

func (f *fakeMarkerRepo) CreateMarker(ctx context.Context, marker *models.MapMarker) error {
	if f.err != nil {
		return f.err
	}
	marker.ID = int64(len(f.markers) + 1)
	f.markers = append(f.markers, *marker)
	return nil
}

func (f *fakeMarkerRepo) UpdateMarker(ctx context.Context, marker *models.MapMarker) error {
	for i := range f.markers {
		if f.markers[i].ID == marker.ID {
			f.markers[i] = *marker
			return nil
		}
	}
	return repository.ErrNotFound
}

func (f *fakeMarkerRepo) DeleteMarker(ctx context.Context, id int64) error {
	return f.err
}
