package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"alcyxob/training-periodization/internal/domain"
	"alcyxob/training-periodization/internal/periodization"
	"alcyxob/training-periodization/internal/repository"
	"alcyxob/training-periodization/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

type memoryRepo struct {
	mu      sync.Mutex
	records map[string]domain.MacroCycleRecord
	saveErr error
}

func (r *memoryRepo) Save(ctx context.Context, rec *domain.MacroCycleRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.saveErr != nil {
		return r.saveErr
	}
	r.records[rec.ID] = *rec
	return nil
}

func (r *memoryRepo) GetByID(ctx context.Context, id string) (*domain.MacroCycleRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.records[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &rec, nil
}

func (r *memoryRepo) GetByUserID(ctx context.Context, userID string) ([]domain.MacroCycleRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.MacroCycleRecord
	for _, rec := range r.records {
		if rec.UserID == userID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (r *memoryRepo) SetActive(ctx context.Context, userID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.records[id]; !ok {
		return repository.ErrNotFound
	}
	for k, rec := range r.records {
		if rec.UserID == userID {
			rec.IsActive = k == id
			r.records[k] = rec
		}
	}
	return nil
}

func setupRouter(t *testing.T) (*gin.Engine, *memoryRepo) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	n := 0
	builder := &periodization.Builder{
		NewID: func() string {
			n++
			return fmt.Sprintf("id-%03d", n)
		},
		Now: func() time.Time { return time.Date(2023, time.December, 15, 0, 0, 0, 0, time.UTC) },
	}
	repo := &memoryRepo{records: map[string]domain.MacroCycleRecord{}}
	svc := service.NewMacroCycleService(builder, repo, nil, service.MacroCycleServiceOptions{
		DefaultType:             domain.PeriodizationBlock,
		DefaultIncludeNutrition: true,
	}, nil, nil)

	router := gin.New()
	reg := prometheus.NewRegistry()
	SetupRoutes(router, testSecret, svc, nil, promhttp.HandlerFor(reg, promhttp.HandlerOpts{}), "/metrics")
	return router, repo
}

func signToken(t *testing.T, userID string, expires time.Time) string {
	t.Helper()
	claims := jwtClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expires),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return token
}

func doRequest(t *testing.T, router *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func createBody() map[string]any {
	return map[string]any{
		"name":              "Spring Block",
		"primaryGoal":       "hypertrophy",
		"trainingLevel":     "beginner",
		"trainingFrequency": 4,
		"durationMonths":    3,
		"startDate":         "2024-01-01",
	}
}

func TestAuthMiddleware(t *testing.T) {
	router, _ := setupRouter(t)

	w := doRequest(t, router, http.MethodGet, "/api/v1/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doRequest(t, router, http.MethodGet, "/api/v1/me", signToken(t, "user-1", time.Now().Add(-time.Minute)), nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "expired")

	w = doRequest(t, router, http.MethodGet, "/api/v1/me", "not-a-jwt", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doRequest(t, router, http.MethodGet, "/api/v1/me", signToken(t, "user-1", time.Now().Add(time.Hour)), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"userId":"user-1"}`, w.Body.String())
}

func TestAuthMiddleware_TokenClaims(t *testing.T) {
	router, _ := setupRouter(t)
	sign := func(claims jwt.MapClaims) string {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
		require.NoError(t, err)
		return token
	}
	exp := time.Now().Add(time.Hour).Unix()

	// claims other than uid are ignored
	w := doRequest(t, router, http.MethodGet, "/api/v1/me", sign(jwt.MapClaims{"uid": "user-1", "role": "coach", "exp": exp}), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"userId":"user-1"}`, w.Body.String())

	w = doRequest(t, router, http.MethodGet, "/api/v1/me", sign(jwt.MapClaims{"role": "coach", "exp": exp}), nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doRequest(t, router, http.MethodGet, "/api/v1/me", sign(jwt.MapClaims{"uid": "user-1"}), nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "no expiry")
}

func TestCreateMacroCycle_Created(t *testing.T) {
	router, repo := setupRouter(t)
	token := signToken(t, "user-1", time.Now().Add(time.Hour))

	w := doRequest(t, router, http.MethodPost, "/api/v1/macrocycles", token, createBody())
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp MacroCycleResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "user-1", resp.UserID)
	assert.Equal(t, "2024-01-01", resp.StartDate)
	assert.Equal(t, "2024-04-01", resp.EndDate)
	assert.Equal(t, 13, resp.TotalWeeks)
	assert.Len(t, resp.MesoCycles, 3)
	assert.NotEmpty(t, resp.NutritionPeriodization)

	_, stored := repo.records[resp.ID]
	assert.True(t, stored)
}

func TestCreateMacroCycle_BadRequests(t *testing.T) {
	router, repo := setupRouter(t)
	token := signToken(t, "user-1", time.Now().Add(time.Hour))

	tests := []struct {
		name   string
		mutate func(map[string]any)
	}{
		{"missing name", func(b map[string]any) { delete(b, "name") }},
		{"bad date", func(b map[string]any) { b["startDate"] = "01/01/2024" }},
		{"unknown goal", func(b map[string]any) { b["primaryGoal"] = "bulking" }},
		{"frequency too high", func(b map[string]any) { b["trainingFrequency"] = 8 }},
		{"duration too long", func(b map[string]any) { b["durationMonths"] = 25 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := createBody()
			tt.mutate(body)
			w := doRequest(t, router, http.MethodPost, "/api/v1/macrocycles", token, body)
			assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
		})
	}
	assert.Empty(t, repo.records)
}

func TestCreateMacroCycle_PersistenceFailure(t *testing.T) {
	router, repo := setupRouter(t)
	repo.saveErr = fmt.Errorf("write concern timeout")
	token := signToken(t, "user-1", time.Now().Add(time.Hour))

	w := doRequest(t, router, http.MethodPost, "/api/v1/macrocycles", token, createBody())
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Failed to save macrocycle"}`, w.Body.String())
}

func TestPreviewMacroCycle(t *testing.T) {
	router, repo := setupRouter(t)
	token := signToken(t, "user-1", time.Now().Add(time.Hour))

	body := createBody()
	body["includeNutrition"] = false
	w := doRequest(t, router, http.MethodPost, "/api/v1/macrocycles/preview", token, body)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp MacroCycleResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.NutritionPeriodization)
	assert.Empty(t, repo.records)
}

func TestGetListActivateAndCurrentWeek(t *testing.T) {
	router, _ := setupRouter(t)
	owner := signToken(t, "user-1", time.Now().Add(time.Hour))
	other := signToken(t, "user-2", time.Now().Add(time.Hour))

	w := doRequest(t, router, http.MethodPost, "/api/v1/macrocycles", owner, createBody())
	require.Equal(t, http.StatusCreated, w.Code)
	var created MacroCycleResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doRequest(t, router, http.MethodGet, "/api/v1/macrocycles/"+created.ID, owner, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, router, http.MethodGet, "/api/v1/macrocycles/"+created.ID, other, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doRequest(t, router, http.MethodGet, "/api/v1/macrocycles/missing", owner, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(t, router, http.MethodGet, "/api/v1/macrocycles", owner, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list []MacroCycleSummaryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, 3, list[0].MesoCycleCount)

	w = doRequest(t, router, http.MethodPost, "/api/v1/macrocycles/"+created.ID+"/activate", owner, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"isActive":true`)

	w = doRequest(t, router, http.MethodGet, "/api/v1/macrocycles/"+created.ID+"/current?date=2024-02-14", owner, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var current CurrentWeekResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &current))
	assert.Equal(t, "2024-02-14", current.Date)
	assert.Equal(t, domain.PhaseVolumeAccumulation, current.MesoCycle.Phase)
	assert.Equal(t, 1, current.MicroCycle.WeekNumber)
	assert.False(t, current.MicroCycle.IsDeload)

	w = doRequest(t, router, http.MethodGet, "/api/v1/macrocycles/"+created.ID+"/current?date=2025-01-01", owner, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestExportMacroCycle_NotConfigured(t *testing.T) {
	router, _ := setupRouter(t)
	token := signToken(t, "user-1", time.Now().Add(time.Hour))

	w := doRequest(t, router, http.MethodPost, "/api/v1/macrocycles/some-id/export", token, nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestPingAndMetrics(t *testing.T) {
	router, _ := setupRouter(t)

	w := doRequest(t, router, http.MethodGet, "/ping", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"pong"}`, w.Body.String())

	w = doRequest(t, router, http.MethodGet, "/metrics", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
