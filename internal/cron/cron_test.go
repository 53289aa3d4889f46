package cron

import (
	"context"
	"testing"
	"time"

	"github.com/Marga-Ghale/projectflow/internal/config"
	"github.com/Marga-Ghale/projectflow/internal/repository"
	"github.com/Marga-Ghale/projectflow/internal/service"
	"github.com/Marga-Ghale/projectflow/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newScheduler(t *testing.T, now time.Time) (*Scheduler, *repository.Repositories) {
	t.Helper()
	repos := repository.NewRepositories(store.NewMemoryStore())
	clock := func() time.Time { return now }
	services := service.NewServices(&service.ServiceDeps{
		Config: &config.Config{JWTSecret: "s", TimeZone: "UTC"},
		Repos:  repos,
		Now:    clock,
	})
	return NewScheduler(services, time.UTC, clock), repos
}

func day(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
	return &t
}

func TestOverdueCheckRaisesOneWarning(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)
	s, repos := newScheduler(t, now)

	require.NoError(t, repos.TaskRepo.ReplaceAll(ctx, []repository.Task{
		{ID: "t1", Title: "Write docs", Status: "todo", DueDate: day(2024, 3, 14)},
		{ID: "t2", Title: "Fix login", Status: "review", DueDate: day(2024, 3, 10)},
		{ID: "t3", Title: "Ancient", Status: "todo", DueDate: day(2024, 1, 1)},
		{ID: "t4", Title: "Shipped", Status: "completed", DueDate: day(2024, 3, 1)},
		{ID: "t5", Title: "Today", Status: "todo", DueDate: day(2024, 3, 15)},
	}))

	s.ManualTrigger("overdue")

	notifications, err := repos.NotificationRepo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	assert.Equal(t, "warning", notifications[0].Type)
	assert.Equal(t, "2 tasks overdue", notifications[0].Title)
	assert.Equal(t, "Write docs, Fix login", notifications[0].Message)
	assert.False(t, notifications[0].Read)
}

func TestOverdueCheckQuietWhenNothingLate(t *testing.T) {
	ctx := context.Background()
	s, repos := newScheduler(t, time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC))
	require.NoError(t, repos.TaskRepo.ReplaceAll(ctx, []repository.Task{
		{ID: "t1", Status: "todo", DueDate: day(2024, 3, 20)},
		{ID: "t2", Status: "todo"},
	}))

	s.ManualTrigger("overdue")

	notifications, err := repos.NotificationRepo.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, notifications)
}

func TestDailyAgenda(t *testing.T) {
	ctx := context.Background()
	s, repos := newScheduler(t, time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC))
	require.NoError(t, repos.EventRepo.ReplaceAll(ctx, []repository.CalendarEvent{
		{ID: "e1", Title: "Standup", Date: time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC), Type: "meeting"},
		{ID: "e2", Title: "Launch", Date: time.Date(2024, 3, 16, 10, 0, 0, 0, time.UTC), Type: "milestone"},
	}))
	require.NoError(t, repos.TaskRepo.ReplaceAll(ctx, []repository.Task{
		{ID: "t1", Status: "todo", DueDate: day(2024, 3, 15)},
	}))

	s.ManualTrigger("agenda")

	notifications, err := repos.NotificationRepo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	assert.Equal(t, "info", notifications[0].Type)
	assert.Equal(t, "1 event today, 1 task due", notifications[0].Message)
}

func TestStartStop(t *testing.T) {
	s, _ := newScheduler(t, time.Now())
	s.Start()
	assert.Len(t, s.cron.Entries(), 2)
	s.Stop()
}
