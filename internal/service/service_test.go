package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Marga-Ghale/projectflow/internal/config"
	"github.com/Marga-Ghale/projectflow/internal/repository"
	"github.com/Marga-Ghale/projectflow/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)

type fixture struct {
	svc   *Services
	repos *repository.Repositories
	store store.Store
	cfg   *config.Config
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	cfg := &config.Config{
		JWTSecret: "test-secret",
		JWTExpiry: 1,
		AuthDelay: 0,
		TimeZone:  "UTC",
	}
	s := store.NewMemoryStore()
	repos := repository.NewRepositories(s)
	svc := NewServices(&ServiceDeps{
		Config: cfg,
		Repos:  repos,
		Now:    func() time.Time { return fixedNow },
	})
	return &fixture{svc: svc, repos: repos, store: s, cfg: cfg}
}

func (f *fixture) seedUser(t *testing.T, u repository.User) {
	t.Helper()
	require.NoError(t, f.repos.UserRepo.Create(context.Background(), &u))
}

func TestLoginIgnoresPassword(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.seedUser(t, repository.User{ID: "u1", Name: "Sarah Chen", Email: "sarah@example.com", Role: "admin"})

	user, token, err := f.svc.Auth.Login(ctx, "sarah@example.com", "anything at all")
	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
	assert.NotEmpty(t, token)

	state, err := f.svc.Auth.State(ctx)
	require.NoError(t, err)
	assert.Equal(t, AuthAuthenticated, state)

	current, err := f.svc.Auth.Authenticate(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "sarah@example.com", current.Email)
}

func TestLoginUnknownEmail(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.seedUser(t, repository.User{ID: "u1", Email: "sarah@example.com"})

	_, _, err := f.svc.Auth.Login(ctx, "nobody@example.com", "pw")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	state, err := f.svc.Auth.State(ctx)
	require.NoError(t, err)
	assert.Equal(t, AuthAnonymous, state)
}

func TestRegister(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	user, token, err := f.svc.Auth.Register(ctx, "Jane Doe", "jane@example.com", "pw")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "member", user.Role)
	assert.Equal(t, "https://ui-avatars.com/api/?name=Jane%20Doe&background=random", user.Avatar)
	assert.Equal(t, fixedNow, user.CreatedAt)

	users, err := f.repos.UserRepo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)

	current, err := f.svc.Auth.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, user.ID, current.ID)
}

func TestRegisterDuplicateLeavesUsersUnchanged(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.seedUser(t, repository.User{ID: "u1", Name: "Sarah", Email: "sarah@example.com"})

	before, _, err := f.store.Get(ctx, store.KeyRegisteredUsers)
	require.NoError(t, err)

	_, _, err = f.svc.Auth.Register(ctx, "Other Sarah", "sarah@example.com", "pw")
	assert.ErrorIs(t, err, ErrUserExists)

	after, _, err := f.store.Get(ctx, store.KeyRegisteredUsers)
	require.NoError(t, err)
	assert.Equal(t, string(before), string(after))

	current, err := f.svc.Auth.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Nil(t, current)
}

func TestLoginMatchesRegisterEmailTrimming(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	registered, _, err := f.svc.Auth.Register(ctx, "Jane Doe", " jane@example.com ", "pw")
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", registered.Email)
	require.NoError(t, f.svc.Auth.Logout(ctx))

	user, _, err := f.svc.Auth.Login(ctx, " jane@example.com ", "pw")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)
}

func TestRegisterRequiresNameAndEmail(t *testing.T) {
	f := newFixture(t)
	_, _, err := f.svc.Auth.Register(context.Background(), " ", "a@b.c", "pw")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestAuthDelayHonoursCancellation(t *testing.T) {
	f := newFixture(t)
	f.cfg.AuthDelay = time.Hour
	f.seedUser(t, repository.User{ID: "u1", Email: "sarah@example.com"})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, _, err := f.svc.Auth.Login(ctx, "sarah@example.com", "")
	assert.True(t, errors.Is(err, context.DeadlineExceeded))

	current, err := f.svc.Auth.CurrentUser(context.Background())
	require.NoError(t, err)
	assert.Nil(t, current)
}

func TestStateIsAuthenticatingDuringDelay(t *testing.T) {
	f := newFixture(t)
	f.cfg.AuthDelay = 200 * time.Millisecond
	f.seedUser(t, repository.User{ID: "u1", Email: "sarah@example.com"})

	done := make(chan error, 1)
	go func() {
		_, _, err := f.svc.Auth.Login(context.Background(), "sarah@example.com", "")
		done <- err
	}()

	assert.Eventually(t, func() bool {
		state, _ := f.svc.Auth.State(context.Background())
		return state == AuthAuthenticating
	}, time.Second, 5*time.Millisecond)
	require.NoError(t, <-done)

	state, err := f.svc.Auth.State(context.Background())
	require.NoError(t, err)
	assert.Equal(t, AuthAuthenticated, state)
}

func TestLogoutResetsTabAndInvalidatesToken(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.seedUser(t, repository.User{ID: "u1", Email: "sarah@example.com"})

	_, token, err := f.svc.Auth.Login(ctx, "sarah@example.com", "")
	require.NoError(t, err)
	_, err = f.svc.UIState.SetActiveTab("calendar")
	require.NoError(t, err)

	require.NoError(t, f.svc.Auth.Logout(ctx))
	assert.Equal(t, "dashboard", f.svc.UIState.Get().ActiveTab)

	_, err = f.svc.Auth.Authenticate(ctx, token)
	assert.ErrorIs(t, err, ErrUnauthorized)

	require.NoError(t, f.svc.Auth.Logout(ctx))
}

func TestTokenFromAnotherSecretIsRejected(t *testing.T) {
	f := newFixture(t)
	other := newFixture(t)
	other.cfg.JWTSecret = "other"
	other.seedUser(t, repository.User{ID: "u1", Email: "x@y.z"})

	_, token, err := other.svc.Auth.Login(context.Background(), "x@y.z", "")
	require.NoError(t, err)

	_, err = f.svc.Auth.UserIDFromToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestCreateProject(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	start := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)

	_, err := f.svc.UIState.OpenModal(ModalNewProject)
	require.NoError(t, err)

	project, err := f.svc.Project.Create(ctx, CreateProjectInput{
		Name:        "Website Redesign",
		Description: "Refresh the marketing site",
		StartDate:   start,
		EndDate:     end,
	})
	require.NoError(t, err)

	projects, err := f.repos.ProjectRepo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 1)
	got := projects[0]
	assert.Equal(t, project.ID, got.ID)
	assert.Equal(t, "Website Redesign", got.Name)
	assert.Equal(t, "Refresh the marketing site", got.Description)
	assert.True(t, start.Equal(got.StartDate))
	assert.True(t, end.Equal(got.EndDate))
	assert.Equal(t, "planning", got.Status)
	assert.Equal(t, 0, got.Progress)
	assert.Equal(t, "#3b82f6", got.Color)
	assert.Empty(t, got.Team)
	assert.NotNil(t, got.Tasks)
	assert.False(t, f.svc.UIState.Get().Modals.NewProject)
}

func TestCreateProjectAddsSignedInUserToTeam(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.seedUser(t, repository.User{ID: "u1", Name: "Sarah", Email: "sarah@example.com"})
	_, _, err := f.svc.Auth.Login(ctx, "sarah@example.com", "")
	require.NoError(t, err)

	progress := 40
	project, err := f.svc.Project.Create(ctx, CreateProjectInput{
		Name: "Mobile App", Description: "d", Color: "#10b981", Progress: &progress,
		StartDate: fixedNow, EndDate: fixedNow.AddDate(0, 3, 0),
	})
	require.NoError(t, err)
	require.Len(t, project.Team, 1)
	assert.Equal(t, "u1", project.Team[0].ID)
	assert.Equal(t, 40, project.Progress)
	assert.Equal(t, "#10b981", project.Color)
}

func TestCreateProjectMissingFields(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	cases := []CreateProjectInput{
		{Description: "d", StartDate: fixedNow, EndDate: fixedNow},
		{Name: "n", StartDate: fixedNow, EndDate: fixedNow},
		{Name: "n", Description: "d", EndDate: fixedNow},
		{Name: "n", Description: "d", StartDate: fixedNow},
	}
	for _, in := range cases {
		_, err := f.svc.Project.Create(ctx, in)
		assert.ErrorIs(t, err, ErrInvalidInput)
	}

	projects, err := f.repos.ProjectRepo.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, projects)

	_, found, err := f.store.Get(ctx, store.KeyProjects)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestCreateTask(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.seedUser(t, repository.User{ID: "u2", Name: "Mike", Email: "mike@example.com"})
	due := time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)

	task, err := f.svc.Task.Create(ctx, CreateTaskInput{
		Title: "Design homepage", Description: "Hero and nav", ProjectID: "not-a-real-project",
		AssigneeID: "u2", DueDate: &due,
	})
	require.NoError(t, err)
	assert.Equal(t, "todo", task.Status)
	assert.Equal(t, "medium", task.Priority)
	require.NotNil(t, task.Assignee)
	assert.Equal(t, "Mike", task.Assignee.Name)
	assert.Equal(t, fixedNow, task.CreatedAt)
	assert.Equal(t, task.CreatedAt, task.UpdatedAt)
	assert.Equal(t, "not-a-real-project", task.ProjectID)

	ghost, err := f.svc.Task.Create(ctx, CreateTaskInput{
		Title: "t", Description: "d", ProjectID: "p", AssigneeID: "ghost", Priority: "urgent",
	})
	require.NoError(t, err)
	assert.Nil(t, ghost.Assignee)
	assert.Nil(t, ghost.DueDate)

	_, err = f.svc.Task.Create(ctx, CreateTaskInput{Title: "t", Description: "d"})
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = f.svc.Task.Create(ctx, CreateTaskInput{Title: "t", Description: "d", ProjectID: "p", Priority: "critical"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	board, err := f.svc.Task.Board(ctx, TaskFilter{})
	require.NoError(t, err)
	assert.Len(t, board[0].Tasks, 2)

	filtered, err := f.svc.Task.List(ctx, TaskFilter{Priority: "urgent"})
	require.NoError(t, err)
	assert.Len(t, filtered, 1)
}

func TestCreateEventAndCalendar(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	event, err := f.svc.Event.Create(ctx, CreateEventInput{
		Title: "Sprint review", Description: "Demo", Date: time.Date(2024, 3, 15, 14, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Equal(t, "meeting", event.Type)

	_, err = f.svc.Event.Create(ctx, CreateEventInput{Title: "x", Description: "y"})
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = f.svc.Event.Create(ctx, CreateEventInput{Title: "x", Description: "y", Date: fixedNow, Type: "party"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	grid, err := f.svc.Event.Month(ctx, 2024, time.March)
	require.NoError(t, err)
	require.Len(t, grid.Cells[19].Events, 1)
	assert.Equal(t, event.ID, grid.Cells[19].Events[0].ID)

	_, err = f.svc.Event.Month(ctx, 2024, 13)
	assert.ErrorIs(t, err, ErrInvalidInput)

	week, err := f.svc.Event.Week(ctx, fixedNow)
	require.NoError(t, err)
	assert.Len(t, week[5].Events, 1)
}

func TestNotifications(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	require.NoError(t, f.repos.NotificationRepo.ReplaceAll(ctx, []repository.Notification{
		{ID: "n1", Type: "info"}, {ID: "n2", Type: "success", Read: true},
	}))

	count, err := f.svc.Notification.UnreadCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	n, err := f.svc.Notification.Notify(ctx, "warning", "Task overdue", "Deploy is late")
	require.NoError(t, err)
	assert.False(t, n.Read)

	unread, err := f.svc.Notification.List(ctx, true)
	require.NoError(t, err)
	assert.Len(t, unread, 2)

	assert.ErrorIs(t, f.svc.Notification.MarkAsRead(ctx, "missing"), ErrNotFound)
	require.NoError(t, f.svc.Notification.MarkAsRead(ctx, "n1"))

	changed, err := f.svc.Notification.MarkAllAsRead(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, changed)

	count, err = f.svc.Notification.UnreadCount(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	_, err = f.svc.Notification.Notify(ctx, "fatal", "x", "y")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestSettings(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	settings, err := f.svc.Settings.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, repository.DefaultAppSettings(), settings)

	settings.Appearance.Theme = "dark"
	settings.Notifications.Desktop = true
	_, err = f.svc.Settings.Update(ctx, settings)
	require.NoError(t, err)

	again, err := f.svc.Settings.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "dark", again.Appearance.Theme)
	assert.True(t, again.Notifications.Desktop)

	settings.Appearance.Theme = "neon"
	_, err = f.svc.Settings.Update(ctx, settings)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdateProfile(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.seedUser(t, repository.User{ID: "u1", Name: "Sarah", Email: "sarah@example.com"})
	f.seedUser(t, repository.User{ID: "u2", Name: "Mike", Email: "mike@example.com"})

	name := "Sarah Chen"
	_, err := f.svc.User.UpdateProfile(ctx, UpdateProfileInput{Name: &name})
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, _, err = f.svc.Auth.Login(ctx, "sarah@example.com", "")
	require.NoError(t, err)

	updated, err := f.svc.User.UpdateProfile(ctx, UpdateProfileInput{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Sarah Chen", updated.Name)

	stored, err := f.repos.UserRepo.FindByID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "Sarah Chen", stored.Name)

	taken := "mike@example.com"
	_, err = f.svc.User.UpdateProfile(ctx, UpdateProfileInput{Email: &taken})
	assert.ErrorIs(t, err, ErrUserExists)
}

func TestDashboardCountsRegisteredUsers(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.seedUser(t, repository.User{ID: "u1"})
	f.seedUser(t, repository.User{ID: "u2"})
	require.NoError(t, f.repos.TaskRepo.ReplaceAll(ctx, []repository.Task{{Status: "completed"}, {Status: "todo"}}))

	d, err := f.svc.Dashboard.Dashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, d.TeamMembers)
	assert.Equal(t, 1, d.CompletedTasks)

	a, err := f.svc.Dashboard.Analytics(ctx)
	require.NoError(t, err)
	assert.Equal(t, 50, a.CompletionRate)

	team, err := f.svc.User.Team(ctx, "")
	require.NoError(t, err)
	assert.Len(t, team, 2)
}

func TestUIState(t *testing.T) {
	f := newFixture(t)
	ui := f.svc.UIState

	st := ui.Get()
	assert.Equal(t, "dashboard", st.ActiveTab)
	assert.Equal(t, CalendarCursor{Year: 2024, Month: 3, View: "month"}, st.Calendar)
	assert.Equal(t, "kanban", st.TasksView)

	st = ui.NavigateMonth(-3)
	assert.Equal(t, 2023, st.Calendar.Year)
	assert.Equal(t, 12, st.Calendar.Month)

	week := "week"
	list := "list"
	st, err := ui.Update(UIStatePatch{CalendarView: &week, TasksView: &list})
	require.NoError(t, err)
	assert.Equal(t, "week", st.Calendar.View)
	assert.Equal(t, "list", st.TasksView)

	bad := "chat"
	_, err = ui.Update(UIStatePatch{ActiveTab: &bad})
	assert.ErrorIs(t, err, ErrInvalidInput)

	st, err = ui.OpenModal(ModalNewEvent)
	require.NoError(t, err)
	assert.True(t, st.Modals.NewEvent)
	_, err = ui.OpenModal("delete-everything")
	assert.ErrorIs(t, err, ErrInvalidInput)

	st = ui.Reset()
	assert.False(t, st.Modals.NewEvent)
	assert.Equal(t, 3, st.Calendar.Month)
}
