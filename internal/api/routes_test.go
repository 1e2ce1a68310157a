package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sharmasaravanan/workout-tracker-app/internal/domain"
	"github.com/sharmasaravanan/workout-tracker-app/internal/repository/sqlite"
	"github.com/sharmasaravanan/workout-tracker-app/internal/service"
)

const testJWTSecret = "api-test-secret"

func setupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := sqlite.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	accountRepo := sqlite.NewAccountRepository(db)
	entryRepo := sqlite.NewEntryRepository(db)

	authService := service.NewAuthService(accountRepo, testJWTSecret, 0)
	logService := service.NewLogService(entryRepo)
	reportService := service.NewReportService(entryRepo)

	router := gin.New()
	SetupRoutes(router, testJWTSecret, authService, logService, reportService)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func registerAndLogin(t *testing.T, router *gin.Engine, username string) string {
	t.Helper()
	rec := doJSON(t, router, http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"username": username,
		"password": "secretpassword",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = doJSON(t, router, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"username": username,
		"password": "secretpassword",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestRegisterDuplicateUsernameConflict(t *testing.T) {
	router := setupTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"username": "alice", "password": "password-one",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"username": "alice", "password": "password-two",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestLoginFailures(t *testing.T) {
	router := setupTestRouter(t)
	registerAndLogin(t, router, "bob")

	rec := doJSON(t, router, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"username": "bob", "password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"username": "nobody", "password": "whatever1",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	router := setupTestRouter(t)

	for _, path := range []string{"/api/v1/me", "/api/v1/plan", "/api/v1/logs", "/api/v1/dashboard"} {
		rec := doJSON(t, router, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, path)
	}
}

func TestCreateAndListEntries(t *testing.T) {
	router := setupTestRouter(t)
	token := registerAndLogin(t, router, "bob")

	rec := doJSON(t, router, http.MethodPost, "/api/v1/logs", token, gin.H{
		"date":     "2024-01-05",
		"day":      string(domain.DayLowerCore),
		"exercise": "Barbell Squats",
		"sets":     3,
		"reps":     10,
		"weight":   62.5,
		"rpe":      8.5,
		"comments": "felt strong",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created EntryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "2024-01-05", created.Date)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/logs", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var listResp struct {
		Entries []EntryResponse `json:"entries"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listResp))
	require.Len(t, listResp.Entries, 1)
	assert.Equal(t, created, listResp.Entries[0])
}

func TestCreateEntryRejectsPlanViolations(t *testing.T) {
	router := setupTestRouter(t)
	token := registerAndLogin(t, router, "bob")

	// Bench press is not part of the lower body program.
	rec := doJSON(t, router, http.MethodPost, "/api/v1/logs", token, gin.H{
		"date":     "2024-01-05",
		"day":      string(domain.DayLowerCore),
		"exercise": "Barbell Bench Press",
		"sets":     3,
		"reps":     10,
		"weight":   60,
		"rpe":      8,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// RPE outside [1, 10].
	rec = doJSON(t, router, http.MethodPost, "/api/v1/logs", token, gin.H{
		"date":     "2024-01-05",
		"day":      string(domain.DayLowerCore),
		"exercise": "Barbell Squats",
		"sets":     3,
		"reps":     10,
		"weight":   60,
		"rpe":      11,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDashboardEndToEnd(t *testing.T) {
	router := setupTestRouter(t)
	token := registerAndLogin(t, router, "bob")

	for _, e := range []gin.H{
		{"date": "2024-01-08", "weight": 50.0},
		{"date": "2024-01-10", "weight": 60.0},
	} {
		rec := doJSON(t, router, http.MethodPost, "/api/v1/logs", token, gin.H{
			"date":     e["date"],
			"day":      string(domain.DayLowerCore),
			"exercise": "Barbell Squats",
			"sets":     3,
			"reps":     10,
			"weight":   e["weight"],
			"rpe":      8,
		})
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	}

	rec := doJSON(t, router, http.MethodGet, "/api/v1/dashboard?interval=weekly", token, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp DashboardResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Empty)
	assert.Equal(t, 2, resp.Summary.Workouts)

	// Both entries fall into the week of Monday 2024-01-08.
	require.Len(t, resp.PeriodAggregate, 1)
	assert.Equal(t, "2024-01-08", resp.PeriodAggregate[0].Period)
	assert.Equal(t, 60.0, resp.PeriodAggregate[0].MaxWeight)
	assert.Equal(t, 3300.0, resp.PeriodAggregate[0].TotalVolume) // 3*10*50 + 3*10*60
}

func TestDashboardEmptyRange(t *testing.T) {
	router := setupTestRouter(t)
	token := registerAndLogin(t, router, "bob")

	rec := doJSON(t, router, http.MethodGet, "/api/v1/dashboard?start=2024-06-01&end=2024-01-01", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp DashboardResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Empty)
}

func TestDashboardRejectsBadParams(t *testing.T) {
	router := setupTestRouter(t)
	token := registerAndLogin(t, router, "bob")

	rec := doJSON(t, router, http.MethodGet, "/api/v1/dashboard?start=01/05/2024", token, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/dashboard?interval=fortnightly", token, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetPlan(t *testing.T) {
	router := setupTestRouter(t)
	token := registerAndLogin(t, router, "bob")

	rec := doJSON(t, router, http.MethodGet, "/api/v1/plan", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Days []PlanDayResponse `json:"days"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Days, len(domain.WorkoutDays))
	assert.Equal(t, string(domain.DayUpperPush), resp.Days[0].Day)
	assert.NotEmpty(t, resp.Days[0].Exercises)
}

func TestExportEntriesCSV(t *testing.T) {
	router := setupTestRouter(t)
	token := registerAndLogin(t, router, "bob")

	rec := doJSON(t, router, http.MethodPost, "/api/v1/logs", token, gin.H{
		"date":     "2024-01-05",
		"day":      string(domain.DayLowerCore),
		"exercise": "Barbell Squats",
		"sets":     3,
		"reps":     10,
		"weight":   62.5,
		"rpe":      8.5,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/logs/export", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "date,day,exercise,sets,reps,weight,rpe,comments")
	assert.Contains(t, rec.Body.String(), "2024-01-05")
	assert.Contains(t, rec.Body.String(), "Barbell Squats")
}
