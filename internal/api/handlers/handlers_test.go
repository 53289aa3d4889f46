package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Marga-Ghale/projectflow/internal/api/middleware"
	"github.com/Marga-Ghale/projectflow/internal/config"
	"github.com/Marga-Ghale/projectflow/internal/repository"
	"github.com/Marga-Ghale/projectflow/internal/service"
	"github.com/Marga-Ghale/projectflow/internal/store"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	router *gin.Engine
	repos  *repository.Repositories
	token  string
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{JWTSecret: "test-secret", JWTExpiry: 1, TimeZone: "UTC"}
	repos := repository.NewRepositories(store.NewMemoryStore())
	now := time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)
	services := service.NewServices(&service.ServiceDeps{
		Config: cfg,
		Repos:  repos,
		Now:    func() time.Time { return now },
	})

	require.NoError(t, repos.UserRepo.Create(context.Background(), &repository.User{
		ID: "u1", Name: "Sarah Chen", Email: "sarah@example.com", Role: "admin",
	}))

	r := gin.New()
	RegisterRoutes(r.Group("/api"), NewHandlers(services, time.UTC), middleware.AuthMiddleware(services.Auth))
	return &testServer{router: r, repos: repos}
}

func (s *testServer) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *testServer) login(t *testing.T) {
	t.Helper()
	w := s.do(t, http.MethodPost, "/api/auth/login", gin.H{"email": "sarah@example.com", "password": "whatever"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	s.token = resp.Token
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func TestProtectedRoutesNeedToken(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/api/projects", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	s.token = "garbage"
	w = s.do(t, http.MethodGet, "/api/projects", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginAndStatus(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/api/auth/status", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "anonymous", decode[map[string]interface{}](t, w)["state"])

	w = s.do(t, http.MethodPost, "/api/auth/login", gin.H{"email": "nobody@example.com"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	s.login(t)
	w = s.do(t, http.MethodGet, "/api/auth/me", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "sarah@example.com", decode[repository.User](t, w).Email)

	w = s.do(t, http.MethodPost, "/api/auth/logout", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = s.do(t, http.MethodGet, "/api/auth/me", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRegisterConflict(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/api/auth/register", gin.H{"name": "Sarah", "email": "sarah@example.com", "password": "x"})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = s.do(t, http.MethodPost, "/api/auth/register", gin.H{"name": "Jane", "email": "jane@example.com", "password": "x"})
	require.Equal(t, http.StatusCreated, w.Code)

	users, err := s.repos.UserRepo.FindAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, users, 2)
}

func TestCreateProjectEndpoint(t *testing.T) {
	s := newTestServer(t)
	s.login(t)

	w := s.do(t, http.MethodPost, "/api/projects", gin.H{"name": "Website Redesign", "description": "d"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodPost, "/api/projects", gin.H{
		"name": "Website Redesign", "description": "d", "startDate": "2024-04-01", "endDate": "not a date",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodPost, "/api/projects", gin.H{
		"name": "Website Redesign", "description": "Refresh", "startDate": "2024-04-01", "endDate": "2024-06-30",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	project := decode[repository.Project](t, w)
	assert.Equal(t, "planning", project.Status)
	require.Len(t, project.Team, 1)
	assert.Equal(t, "u1", project.Team[0].ID)

	w = s.do(t, http.MethodGet, "/api/projects/"+project.ID, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w = s.do(t, http.MethodGet, "/api/projects/missing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = s.do(t, http.MethodGet, "/api/projects?status=planning&search=website", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]repository.Project](t, w), 1)

	w = s.do(t, http.MethodGet, "/api/projects?status=active", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode[[]repository.Project](t, w))
}

func TestTasksAndBoard(t *testing.T) {
	s := newTestServer(t)
	s.login(t)

	w := s.do(t, http.MethodPost, "/api/tasks", gin.H{
		"title": "Design homepage", "description": "Hero", "projectId": "p1",
		"priority": "high", "assigneeId": "u1", "dueDate": "2024-03-20",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	task := decode[repository.Task](t, w)
	require.NotNil(t, task.Assignee)
	assert.Equal(t, "Sarah Chen", task.Assignee.Name)

	w = s.do(t, http.MethodGet, "/api/tasks?priority=low", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode[[]repository.Task](t, w))

	w = s.do(t, http.MethodGet, "/api/tasks?priority=bogus", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodGet, "/api/tasks/board", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var columns []struct {
		Status string            `json:"status"`
		Tasks  []repository.Task `json:"tasks"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &columns))
	require.Len(t, columns, 4)
	assert.Equal(t, "todo", columns[0].Status)
	assert.Len(t, columns[0].Tasks, 1)
}

func TestCalendarEndpoints(t *testing.T) {
	s := newTestServer(t)
	s.login(t)

	w := s.do(t, http.MethodPost, "/api/events", gin.H{
		"title": "Sprint review", "description": "Demo", "date": "2024-03-15T14:00",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = s.do(t, http.MethodGet, "/api/calendar/month?year=2024&month=3", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var grid struct {
		Cells []struct {
			Day    int                        `json:"day"`
			Events []repository.CalendarEvent `json:"events"`
		} `json:"cells"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &grid))
	require.Len(t, grid.Cells, 42)
	assert.Equal(t, 15, grid.Cells[19].Day)
	assert.Len(t, grid.Cells[19].Events, 1)

	w = s.do(t, http.MethodGet, "/api/calendar/month?month=13", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodGet, "/api/calendar/week?date=2024-03-13", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = s.do(t, http.MethodGet, "/api/events/upcoming?limit=1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]repository.CalendarEvent](t, w), 1)
}

func TestNotificationEndpoints(t *testing.T) {
	s := newTestServer(t)
	s.login(t)
	require.NoError(t, s.repos.NotificationRepo.ReplaceAll(context.Background(), []repository.Notification{
		{ID: "n1", Type: "info"}, {ID: "n2", Type: "warning"},
	}))

	w := s.do(t, http.MethodGet, "/api/notifications/count", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, map[string]interface{}{"total": float64(2), "unread": float64(2)}, decode[map[string]interface{}](t, w))

	w = s.do(t, http.MethodPut, "/api/notifications/n1/read", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w = s.do(t, http.MethodPut, "/api/notifications/zzz/read", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = s.do(t, http.MethodGet, "/api/notifications?unread=true", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]repository.Notification](t, w), 1)

	w = s.do(t, http.MethodPut, "/api/notifications/read-all", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), decode[map[string]interface{}](t, w)["updated"])
}

func TestSettingsEndpoint(t *testing.T) {
	s := newTestServer(t)
	s.login(t)

	w := s.do(t, http.MethodPut, "/api/settings", gin.H{"appearance": gin.H{"theme": "dark", "language": "fr"}})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	settings := decode[repository.AppSettings](t, w)
	assert.Equal(t, "dark", settings.Appearance.Theme)
	assert.True(t, settings.Notifications.Email)

	w = s.do(t, http.MethodPut, "/api/settings", gin.H{"appearance": gin.H{"theme": "neon", "language": "fr"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodGet, "/api/settings", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "fr", decode[repository.AppSettings](t, w).Appearance.Language)
}

func TestUIStateEndpoints(t *testing.T) {
	s := newTestServer(t)
	s.login(t)

	w := s.do(t, http.MethodPost, "/api/ui-state/modals/new-task/open", nil)
	require.Equal(t, http.StatusOK, w.Code)
	st := decode[service.UIState](t, w)
	assert.True(t, st.Modals.NewTask)

	w = s.do(t, http.MethodPost, "/api/ui-state/modals/bogus/open", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodPost, "/api/ui-state/calendar/next", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 4, decode[service.UIState](t, w).Calendar.Month)

	w = s.do(t, http.MethodPut, "/api/ui-state", gin.H{"activeTab": "analytics"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "analytics", decode[service.UIState](t, w).ActiveTab)
}

func TestDashboardAndTeam(t *testing.T) {
	s := newTestServer(t)
	s.login(t)

	w := s.do(t, http.MethodGet, "/api/dashboard", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), decode[map[string]interface{}](t, w)["teamMembers"])

	w = s.do(t, http.MethodGet, "/api/analytics", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(0), decode[map[string]interface{}](t, w)["completionRate"])

	w = s.do(t, http.MethodGet, "/api/team?search=chen", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]map[string]interface{}](t, w), 1)

	w = s.do(t, http.MethodGet, "/api/activities", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode[[]repository.Activity](t, w))
}
