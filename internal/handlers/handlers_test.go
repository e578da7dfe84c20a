package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tanziljws/tanipintar-website/internal/analytics"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Meta    struct {
		Total   *int   `json:"total"`
		Warning string `json:"warning"`
	} `json:"meta"`
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

type testServer struct {
	router    *gin.Engine
	auth      *fakeAuth
	farmers   *fakeFarmerService
	analytics *fakeAnalyticsService
	contacts  *fakeContactService
	gallery   *fakeGalleryService
	markers   *fakeMarkerService
}

func newTestServer() *testServer {
	gin.SetMode(gin.TestMode)

	ts := &testServer{
		router:    gin.New(),
		auth:      &fakeAuth{},
		farmers:   &fakeFarmerService{records: []analytics.FarmerRecord{{ID: 1, Name: "Budi", District: "Bandung", Position: analytics.Position{-6.9, 107.6}}}},
		analytics: &fakeAnalyticsService{},
		contacts:  &fakeContactService{},
		gallery:   &fakeGalleryService{},
		markers:   &fakeMarkerService{},
	}
	mw := NewMiddleware(ts.auth)

	ts.router.Use(CORS("http://localhost:3000"))
	NewHealthHandler(map[string]HealthCheck{
		"postgres": func(ctx context.Context) bool { return true },
	}).RegisterRoutes(ts.router)
	NewAuthHandler(ts.auth, mw).RegisterRoutes(ts.router)
	NewFarmerHandler(ts.farmers, mw).RegisterRoutes(ts.router)
	NewAnalyticsHandler(ts.analytics).RegisterRoutes(ts.router)
	NewContactHandler(ts.contacts, mw).RegisterRoutes(ts.router)
	NewGalleryHandler(ts.gallery, mw).RegisterRoutes(ts.router)
	NewMarkerHandler(ts.markers, mw).RegisterRoutes(ts.router)
	return ts
}

func (ts *testServer) do(t *testing.T, method, target, body string, admin bool) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if admin {
		req.Header.Set("Authorization", "Bearer "+validToken)
	}
	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)

	var env envelope
	if strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	}
	return w, env
}

func TestHealthAndCORS(t *testing.T) {
	ts := newTestServer()

	w, env := ts.do(t, http.MethodGet, "/api/health", "", false)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))

	w, _ = ts.do(t, http.MethodOptions, "/api/farmers", "", false)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestHealthDegraded(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewHealthHandler(map[string]HealthCheck{
		"postgres": func(ctx context.Context) bool { return true },
		"redis":    func(ctx context.Context) bool { return false },
	}).RegisterRoutes(router)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), `"redis":false`)
}

func TestHealthWithoutRabbitMQ(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewHealthHandler(map[string]HealthCheck{
		"postgres": func(ctx context.Context) bool { return true },
		"redis":    func(ctx context.Context) bool { return true },
	}).RegisterRoutes(router)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
	assert.NotContains(t, w.Body.String(), "rabbitmq")
}

func TestHealthOptionalDependencyDown(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewHealthHandler(map[string]HealthCheck{
		"postgres": func(ctx context.Context) bool { return true },
	}).WithOptional("rabbitmq", func(ctx context.Context) bool { return false }).RegisterRoutes(router)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"rabbitmq":false`)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestAdminRoutesRequireToken(t *testing.T) {
	ts := newTestServer()

	w, env := ts.do(t, http.MethodGet, "/api/admin/farmers", "", false)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "MISSING_TOKEN", env.Error.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/contacts", nil)
	req.Header.Set("Authorization", "Bearer forged")
	rec := httptest.NewRecorder()
	ts.router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_TOKEN")

	w, env = ts.do(t, http.MethodGet, "/api/admin/contacts", "", true)
	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, env.Meta.Total)
	assert.Equal(t, 1, *env.Meta.Total)
}

func TestLoginAndLogout(t *testing.T) {
	ts := newTestServer()

	w, env := ts.do(t, http.MethodPost, "/api/admin/login", `{"username":"admin","password":"salah"}`, false)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "INVALID_CREDENTIALS", env.Error.Code)

	w, env = ts.do(t, http.MethodPost, "/api/admin/login", `{"username":"admin"}`, false)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_REQUEST_FORMAT", env.Error.Code)

	w, env = ts.do(t, http.MethodPost, "/api/admin/login", `{"username":"admin","password":"rahasia"}`, false)
	require.Equal(t, http.StatusOK, w.Code)
	var login struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &login))
	assert.Equal(t, validToken, login.Token)

	w, _ = ts.do(t, http.MethodPost, "/api/admin/logout", "", true)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"sess-1"}, ts.auth.loggedOut)
}

func TestLogoutAll(t *testing.T) {
	ts := newTestServer()

	w, env := ts.do(t, http.MethodPost, "/api/admin/logout-all", "", false)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "MISSING_TOKEN", env.Error.Code)

	w, env = ts.do(t, http.MethodPost, "/api/admin/logout-all", "", true)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)
	assert.Equal(t, []int64{1}, ts.auth.loggedOutAll)

	ts.auth.err = errors.New("redis down")
	w, env = ts.do(t, http.MethodPost, "/api/admin/logout-all", "", true)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "INTERNAL_SERVER_ERROR", env.Error.Code)
}

func TestPublicFarmerRoutes(t *testing.T) {
	ts := newTestServer()

	w, env := ts.do(t, http.MethodGet, "/api/farmers", "", false)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, *env.Meta.Total)

	w, env = ts.do(t, http.MethodGet, "/api/farmers/geojson", "", false)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(env.Data), `"coordinates":[107.6,-6.9]`)

	w, env = ts.do(t, http.MethodGet, "/api/farmers/distribution", "", false)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"district":"Bandung","count":1}]`, string(env.Data))

	for _, path := range []string{"/api/commodities/types", "/api/districts", "/api/commodity-types", "/api/tables"} {
		w, _ = ts.do(t, http.MethodGet, path, "", false)
		assert.Equal(t, http.StatusOK, w.Code, path)
	}
}

func TestAdminFarmerCRUD(t *testing.T) {
	ts := newTestServer()
	body := `{"name":"Budi","district":"Bandung","latitude":-6.9,"longitude":107.6,"commodity_type":"padi"}`

	w, env := ts.do(t, http.MethodPost, "/api/admin/farmers", body, true)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, string(env.Data), `"id":10`)
	assert.Equal(t, -6.9, *ts.farmers.lastReq.Latitude)

	w, env = ts.do(t, http.MethodPost, "/api/admin/farmers", `{"name":"Budi"}`, true)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_REQUEST_FORMAT", env.Error.Code)

	w, env = ts.do(t, http.MethodPut, "/api/admin/farmers/99", body, true)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "FARMER_NOT_FOUND", env.Error.Code)

	w, _ = ts.do(t, http.MethodPut, "/api/admin/farmers/10", body, true)
	assert.Equal(t, http.StatusOK, w.Code)

	w, env = ts.do(t, http.MethodDelete, "/api/admin/farmers/abc", "", true)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_ID", env.Error.Code)

	w, _ = ts.do(t, http.MethodDelete, "/api/admin/farmers/10", "", true)
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = ts.do(t, http.MethodGet, "/api/admin/farmers?district=Sleman&district=Bantul,Kulon+Progo&commodity_type=padi&search=budi&limit=20&offset=40", "", true)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"Sleman", "Bantul", "Kulon Progo"}, ts.farmers.lastFilter.Districts)
	assert.Equal(t, []string{"padi"}, ts.farmers.lastFilter.CommodityTypes)
	assert.Equal(t, "budi", ts.farmers.lastFilter.Search)
	assert.Equal(t, 20, ts.farmers.lastFilter.Limit)
	assert.Equal(t, 40, ts.farmers.lastFilter.Offset)

	w, env = ts.do(t, http.MethodGet, "/api/admin/farmers?limit=-1", "", true)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_QUERY", env.Error.Code)
}

func TestAnalyticsQueryParsing(t *testing.T) {
	ts := newTestServer()
	ts.analytics.warning = analytics.FallbackWarning

	w, env := ts.do(t, http.MethodGet,
		"/api/analytics?search=budi&province=Jawa+Barat&category=Organik,Buah&category=Sayur&organic=organic&sort=bogus", "", false)
	require.Equal(t, http.StatusOK, w.Code)

	f := ts.analytics.lastFilter
	assert.Equal(t, "budi", f.SearchQuery)
	assert.Equal(t, "Jawa Barat", f.SelectedProvince)
	assert.Equal(t, []string{"Organik", "Buah", "Sayur"}, f.SelectedCategories)
	assert.Equal(t, analytics.OrganicOnly, f.OrganicFilter)
	assert.Equal(t, analytics.SortNewest, f.SortOption)
	assert.Equal(t, analytics.FallbackWarning, env.Meta.Warning)

	ts.do(t, http.MethodGet, "/api/analytics", "", false)
	assert.Equal(t, analytics.DefaultFilterState(), ts.analytics.lastFilter)

	w, _ = ts.do(t, http.MethodPost, "/api/analytics/refresh", "", false)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, ts.analytics.refreshed)
}

func TestAnalyticsExportAndChart(t *testing.T) {
	ts := newTestServer()

	w, _ := ts.do(t, http.MethodGet, "/api/analytics/export?format=csv", "", false)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `attachment; filename="data-petani-2025-06-03.csv"`, w.Header().Get("Content-Disposition"))
	assert.True(t, strings.HasPrefix(w.Body.String(), "Nama Petani,"))

	w, env := ts.do(t, http.MethodGet, "/api/analytics/export?format=pdf", "", false)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_FORMAT", env.Error.Code)

	w, _ = ts.do(t, http.MethodGet, "/api/analytics/monthly-chart.png", "", false)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
}

func TestContactSubmit(t *testing.T) {
	ts := newTestServer()

	w, _ := ts.do(t, http.MethodPost, "/api/contact", `{"name":"Siti","email":"siti@example.id","message":"Halo"}`, false)
	assert.Equal(t, http.StatusCreated, w.Code)
	require.Len(t, ts.contacts.submitted, 1)

	w, env := ts.do(t, http.MethodPost, "/api/contact", `{"name":"Siti","email":"bukan-email","message":"Halo"}`, false)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
}

func TestGalleryUpload(t *testing.T) {
	ts := newTestServer()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("title", "Panen"))
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="image"; filename="panen.png"`)
	header.Set("Content-Type", "image/png")
	part, err := mw.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write([]byte("png-bytes"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/admin/gallery", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+validToken)
	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Panen", ts.gallery.uploadedTitle)
	assert.Equal(t, "image/png", ts.gallery.uploadedType)
	assert.Equal(t, "png-bytes", ts.gallery.uploadedBody)

	w2, env := ts.do(t, http.MethodDelete, "/api/admin/gallery/3", "", true)
	assert.Equal(t, http.StatusNotFound, w2.Code)
	assert.Equal(t, "IMAGE_NOT_FOUND", env.Error.Code)
}

func TestMarkerRoutes(t *testing.T) {
	ts := newTestServer()

	w, env := ts.do(t, http.MethodPost, "/api/admin/map-markers", `{"title":"Gudang","latitude":-7.7,"longitude":110.4}`, true)
	require.Equal(t, http.StatusCreated, w.Code)
	var created struct {
		ID         int64  `json:"id"`
		MarkerType string `json:"marker_type"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, "default", created.MarkerType)

	w, env = ts.do(t, http.MethodGet, "/api/map-markers", "", false)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, *env.Meta.Total)

	w, env = ts.do(t, http.MethodPut, "/api/admin/map-markers/9", `{"title":"X","latitude":1,"longitude":1}`, true)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "MARKER_NOT_FOUND", env.Error.Code)

	w, env = ts.do(t, http.MethodPost, "/api/admin/map-markers", `{"title":"Tanpa koordinat"}`, true)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_REQUEST_FORMAT", env.Error.Code)
}

func TestMarkerRoutes_SingularAlias(t *testing.T) {
	ts := newTestServer()

	w, env := ts.do(t, http.MethodGet, "/api/admin/map-marker", "", false)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "MISSING_TOKEN", env.Error.Code)

	w, _ = ts.do(t, http.MethodPost, "/api/admin/map-marker", `{"title":"Pasar Tani","latitude":-6.9,"longitude":107.6}`, true)
	assert.Equal(t, http.StatusCreated, w.Code)

	w, _ = ts.do(t, http.MethodPut, "/api/admin/map-marker/1", `{"title":"Pasar Induk","latitude":-6.9,"longitude":107.6}`, true)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Pasar Induk", ts.markers.markers[0].Title)

	w, env = ts.do(t, http.MethodGet, "/api/admin/map-marker", "", true)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, *env.Meta.Total)

	w, _ = ts.do(t, http.MethodDelete, "/api/admin/map-marker/1", "", true)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, ts.markers.markers)
}
