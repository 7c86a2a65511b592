package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/okan-kantar/portfolio-backend/internal/models"
	"github.com/okan-kantar/portfolio-backend/internal/repository"
	"github.com/okan-kantar/portfolio-backend/internal/services"
	"github.com/okan-kantar/portfolio-backend/pkg/config"
	"github.com/okan-kantar/portfolio-backend/pkg/logger"
)

func TestMain(m *testing.M) {
	if _, err := logger.Init("error", "json"); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

var testDBSeq atomic.Int64

const (
	testAdminEmail    = "admin@example.com"
	testAdminPassword = "correct horse battery"
)

type testServer struct {
	srv *httptest.Server
	db  *gorm.DB
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	dsn := fmt.Sprintf("file:api_test_%d?mode=memory&cache=shared", testDBSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.PersonalInfo{}, &models.SiteSettings{},
		&models.Education{}, &models.Experience{}, &models.Skill{},
		&models.Project{}, &models.Certificate{}, &models.ContactMessage{},
	))

	hash, err := bcrypt.GenerateFromPassword([]byte(testAdminPassword), bcrypt.MinCost)
	require.NoError(t, err)

	cfg := &config.Config{
		JWTSecret:         "test-secret-0123456789abcdef",
		AdminEmail:        testAdminEmail,
		AdminPasswordHash: string(hash),
		MediaDir:          t.TempDir(),
		NotifyTimeout:     time.Second,
	}

	personalInfo := repository.NewPersonalInfoRepository(db)
	siteSettings := repository.NewSiteSettingsRepository(db)
	education := repository.NewEducationRepository(db)
	experience := repository.NewExperienceRepository(db)
	skills := repository.NewSkillRepository(db)
	projects := repository.NewProjectRepository(db)
	certificates := repository.NewCertificateRepository(db)
	messages := repository.NewContactMessageRepository(db)

	router := NewRouter(Deps{
		Config:       cfg,
		DB:           db,
		Pages:        services.NewPagesService(personalInfo, siteSettings, education, experience, skills, projects, certificates),
		Contact:      services.NewContactService(messages, personalInfo, nil, cfg.NotifyTimeout),
		PersonalInfo: personalInfo,
		SiteSettings: siteSettings,
		Education:    education,
		Experience:   experience,
		Skills:       skills,
		Projects:     projects,
		Certificates: certificates,
		Messages:     messages,
	})

	srv := httptest.NewServer(router)
	t.Cleanup(func() {
		srv.Close()
		sqlDB, _ := db.DB()
		_ = sqlDB.Close()
	})
	return &testServer{srv: srv, db: db}
}

func (ts *testServer) do(t *testing.T, method, path, token string, body any) (*http.Response, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(buf)
	}
	req, err := http.NewRequest(method, ts.srv.URL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var decoded map[string]any
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &decoded), "body: %s", raw)
	}
	return resp, decoded
}

func (ts *testServer) login(t *testing.T) string {
	t.Helper()
	resp, body := ts.do(t, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email":    testAdminEmail,
		"password": testAdminPassword,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	data := body["data"].(map[string]any)
	return data["token"].(string)
}

func TestHealthEndpoints(t *testing.T) {
	ts := newTestServer(t)

	resp, body := ts.do(t, http.MethodGet, "/healthz", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, true, body["success"])

	resp, body = ts.do(t, http.MethodGet, "/readyz", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, true, body["success"])
}

func TestContactSubmit(t *testing.T) {
	ts := newTestServer(t)

	resp, body := ts.do(t, http.MethodPost, "/api/v1/contact", "", map[string]string{
		"name":    "Visitor",
		"email":   "visitor@example.com",
		"subject": "Hello",
		"message": "Nice site",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.Equal(t, true, body["success"])
	require.NotEmpty(t, body["message"])

	var count int64
	require.NoError(t, ts.db.Model(&models.ContactMessage{}).Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestContactSubmitRejectsInvalid(t *testing.T) {
	ts := newTestServer(t)

	// Malformed JSON.
	req, err := http.NewRequest(http.MethodPost, ts.srv.URL+"/api/v1/contact", strings.NewReader("{not json"))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, false, body["success"])
	require.NotEmpty(t, body["message"])

	// Missing required field.
	resp2, body2 := ts.do(t, http.MethodPost, "/api/v1/contact", "", map[string]string{
		"name":  "No Email",
		"email": "",
	})
	require.Equal(t, http.StatusBadRequest, resp2.StatusCode)
	require.Equal(t, false, body2["success"])

	// Wrong method leaves no record behind.
	resp3, body3 := ts.do(t, http.MethodPut, "/api/v1/contact", "", map[string]string{"name": "x"})
	require.Equal(t, http.StatusMethodNotAllowed, resp3.StatusCode)
	require.Equal(t, false, body3["success"])
	require.NotEmpty(t, body3["message"])

	var count int64
	require.NoError(t, ts.db.Model(&models.ContactMessage{}).Count(&count).Error)
	require.Zero(t, count)
}

func TestPagesRoutes(t *testing.T) {
	ts := newTestServer(t)
	require.NoError(t, ts.db.Create(&models.Project{
		Title:       "Portfolio Site",
		Slug:        "portfolio-site",
		Description: "This site",
		Category:    models.ProjectWeb,
		Status:      models.StatusCompleted,
	}).Error)

	resp, body := ts.do(t, http.MethodGet, "/api/v1/pages/home", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, true, body["success"])

	resp, body = ts.do(t, http.MethodGet, "/api/v1/pages/projects?category=web", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	data := body["data"].(map[string]any)
	require.Len(t, data["projects"], 1)

	// Unrecognized category filters to an empty list, not an error.
	resp, body = ts.do(t, http.MethodGet, "/api/v1/pages/projects?category=bogus", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	data = body["data"].(map[string]any)
	require.Empty(t, data["projects"])

	resp, _ = ts.do(t, http.MethodGet, "/api/v1/pages/projects/portfolio-site", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body = ts.do(t, http.MethodGet, "/api/v1/pages/projects/no-such-slug", "", nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	require.Equal(t, false, body["success"])
}

func TestAdminRequiresToken(t *testing.T) {
	ts := newTestServer(t)

	resp, body := ts.do(t, http.MethodGet, "/api/v1/admin/skills/", "", nil)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	require.Equal(t, false, body["success"])

	resp, _ = ts.do(t, http.MethodGet, "/api/v1/admin/skills/", "not-a-token", nil)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	ts := newTestServer(t)

	resp, body := ts.do(t, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email":    testAdminEmail,
		"password": "wrong",
	})
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	require.Equal(t, false, body["success"])
}

func TestAdminSkillCRUD(t *testing.T) {
	ts := newTestServer(t)
	token := ts.login(t)

	resp, body := ts.do(t, http.MethodPost, "/api/v1/admin/skills/", token, map[string]any{
		"name":     "Go",
		"category": "programming",
		"level":    90,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	id := body["data"].(map[string]any)["id"].(string)

	// Out-of-range level is rejected before it reaches the store.
	resp, _ = ts.do(t, http.MethodPost, "/api/v1/admin/skills/", token, map[string]any{
		"name":     "Impossible",
		"category": "programming",
		"level":    150,
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, body = ts.do(t, http.MethodPut, "/api/v1/admin/skills/"+id, token, map[string]any{
		"name":     "Go",
		"category": "programming",
		"level":    95,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	updated := body["data"].(map[string]any)
	require.EqualValues(t, 95, updated["level"])
	// The update body carries no timestamps; the stored created_at survives.
	require.NotContains(t, updated["created_at"].(string), "0001-01-01")

	resp, _ = ts.do(t, http.MethodDelete, "/api/v1/admin/skills/"+id, token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = ts.do(t, http.MethodGet, "/api/v1/admin/skills/"+id, token, nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAdminSingletons(t *testing.T) {
	ts := newTestServer(t)
	token := ts.login(t)

	resp, _ := ts.do(t, http.MethodGet, "/api/v1/admin/personal-info", token, nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = ts.do(t, http.MethodPut, "/api/v1/admin/personal-info", token, map[string]any{
		"name":  "Okan Kantar",
		"title": "Software Developer",
		"email": "okan@example.com",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, body := ts.do(t, http.MethodPut, "/api/v1/admin/personal-info", token, map[string]any{
		"name":  "Okan Kantar",
		"title": "Senior Software Developer",
		"email": "okan@example.com",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "Senior Software Developer", body["data"].(map[string]any)["title"])

	var count int64
	require.NoError(t, ts.db.Model(&models.PersonalInfo{}).Count(&count).Error)
	require.EqualValues(t, 1, count)

	resp, _ = ts.do(t, http.MethodPut, "/api/v1/admin/site-settings", token, map[string]any{
		"site_title": "Okan Kantar",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, body = ts.do(t, http.MethodDelete, "/api/v1/admin/site-settings", token, nil)
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	require.Equal(t, false, body["success"])
}

func TestAdminSingletonPostIsCreateOnly(t *testing.T) {
	ts := newTestServer(t)
	token := ts.login(t)

	resp, _ := ts.do(t, http.MethodPost, "/api/v1/admin/site-settings", token, map[string]any{
		"site_title": "Okan Kantar",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	// A second POST must surface the singleton conflict, not upsert.
	resp, body := ts.do(t, http.MethodPost, "/api/v1/admin/site-settings", token, map[string]any{
		"site_title": "Replacement",
	})
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	require.Equal(t, false, body["success"])

	resp, body = ts.do(t, http.MethodGet, "/api/v1/admin/site-settings", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "Okan Kantar", body["data"].(map[string]any)["site_title"])

	resp, _ = ts.do(t, http.MethodPost, "/api/v1/admin/personal-info", token, map[string]any{
		"name":  "Okan Kantar",
		"title": "Software Developer",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, _ = ts.do(t, http.MethodPost, "/api/v1/admin/personal-info", token, map[string]any{
		"name":  "Somebody Else",
		"title": "Intruder",
	})
	require.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestAdminMessages(t *testing.T) {
	ts := newTestServer(t)
	token := ts.login(t)

	msg := models.ContactMessage{Name: "Visitor", Email: "v@example.com", Message: "Hi"}
	require.NoError(t, ts.db.Create(&msg).Error)

	resp, body := ts.do(t, http.MethodGet, "/api/v1/admin/messages/", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, body["data"], 1)

	id := msg.ID.String()
	resp, _ = ts.do(t, http.MethodPost, "/api/v1/admin/messages/"+id+"/read", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body = ts.do(t, http.MethodGet, "/api/v1/admin/messages/"+id, token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, true, body["data"].(map[string]any)["is_read"])

	resp, _ = ts.do(t, http.MethodPost, "/api/v1/admin/messages/"+id+"/unread", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = ts.do(t, http.MethodDelete, "/api/v1/admin/messages/"+id, token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = ts.do(t, http.MethodGet, "/api/v1/admin/messages/"+id, token, nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestMediaUpload(t *testing.T) {
	ts := newTestServer(t)
	token := ts.login(t)

	var buf bytes.Buffer
	mp := multipart.NewWriter(&buf)
	fw, err := mp.CreateFormFile("file", "photo.png")
	require.NoError(t, err)
	_, err = fw.Write([]byte("fake image bytes"))
	require.NoError(t, err)
	require.NoError(t, mp.Close())

	req, err := http.NewRequest(http.MethodPost, ts.srv.URL+"/api/v1/admin/uploads", &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", mp.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	path := body["data"].(map[string]any)["path"].(string)
	require.True(t, strings.HasPrefix(path, "/media/"))
	require.True(t, strings.HasSuffix(path, ".png"))

	// The stored file is retrievable through the media route.
	getResp, err := http.Get(ts.srv.URL + path)
	require.NoError(t, err)
	defer getResp.Body.Close()
	require.Equal(t, http.StatusOK, getResp.StatusCode)
	served, err := io.ReadAll(getResp.Body)
	require.NoError(t, err)
	require.Equal(t, "fake image bytes", string(served))
}
