package cron

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/Marga-Ghale/projectflow/internal/service"
	"github.com/Marga-Ghale/projectflow/internal/types"
	"github.com/Marga-Ghale/projectflow/internal/views"
	"github.com/robfig/cron/v3"
)

// Scheduler handles scheduled tasks
type Scheduler struct {
	cron     *cron.Cron
	services *service.Services
	now      func() time.Time
	loc      *time.Location
}

// NewScheduler creates a scheduler whose cron specs are read in loc.
// now defaults to time.Now.
func NewScheduler(services *service.Services, loc *time.Location, now func() time.Time) *Scheduler {
	if now == nil {
		now = time.Now
	}
	return &Scheduler{
		cron:     cron.New(cron.WithLocation(loc)),
		services: services,
		now:      now,
		loc:      loc,
	}
}

// Start starts the scheduler
func (s *Scheduler) Start() {
	// Run every day at 9 AM - Today's events and due tasks
	if _, err := s.cron.AddFunc("0 9 * * *", func() {
		log.Println("[Cron] Running daily agenda...")
		s.sendDailyAgenda()
	}); err != nil {
		log.Printf("[Cron] Failed to schedule daily agenda: %v", err)
	}

	// Run every day at 9 AM - Overdue task check
	if _, err := s.cron.AddFunc("0 9 * * *", func() {
		log.Println("[Cron] Running overdue task check...")
		s.checkOverdueTasks()
	}); err != nil {
		log.Printf("[Cron] Failed to schedule overdue check: %v", err)
	}

	s.cron.Start()
	log.Println("[Cron] Scheduler started")
}

// Stop stops the scheduler and waits for running jobs
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	log.Println("[Cron] Scheduler stopped")
}

// sendDailyAgenda pushes today's events and unfinished tasks due today, and
// leaves an info notification when there is anything on the agenda.
func (s *Scheduler) sendDailyAgenda() {
	ctx := context.Background()
	today := s.now().In(s.loc)

	events, err := s.services.Event.List(ctx)
	if err != nil {
		log.Printf("[Cron] Error loading events: %v", err)
		return
	}
	tasks, err := s.services.Task.List(ctx, service.TaskFilter{})
	if err != nil {
		log.Printf("[Cron] Error loading tasks: %v", err)
		return
	}

	todayEvents := views.EventsOn(events, today, s.loc)
	dueTasks := views.TasksDueOn(tasks, today, s.loc)

	if s.services.Broadcaster != nil {
		s.services.Broadcaster.BroadcastDailyAgenda(today.Format("2006-01-02"), todayEvents, dueTasks)
	}

	if len(todayEvents) == 0 && len(dueTasks) == 0 {
		return
	}
	msg := fmt.Sprintf("%s today, %s due", plural(len(todayEvents), "event"), plural(len(dueTasks), "task"))
	if _, err := s.services.Notification.Notify(ctx, types.NotificationInfo, "Today's agenda", msg); err != nil {
		log.Printf("[Cron] Error sending agenda notification: %v", err)
		return
	}
	log.Printf("[Cron] Sent daily agenda: %s", msg)
}

// checkOverdueTasks pushes the overdue list and raises one warning covering
// tasks that became overdue within the last week.
func (s *Scheduler) checkOverdueTasks() {
	ctx := context.Background()
	now := s.now()

	tasks, err := s.services.Task.List(ctx, service.TaskFilter{})
	if err != nil {
		log.Printf("[Cron] Error loading tasks: %v", err)
		return
	}

	overdue := views.OverdueTasks(tasks, now, s.loc)
	if len(overdue) == 0 {
		return
	}
	if s.services.Broadcaster != nil {
		s.services.Broadcaster.BroadcastTasksOverdue(overdue)
	}

	var recent []string
	for _, t := range overdue {
		daysOverdue := -views.DaysUntil(*t.DueDate, now, s.loc)
		if daysOverdue >= 1 && daysOverdue <= 7 {
			recent = append(recent, t.Title)
		}
	}
	if len(recent) == 0 {
		return
	}

	title := fmt.Sprintf("%s overdue", plural(len(recent), "task"))
	if _, err := s.services.Notification.Notify(ctx, types.NotificationWarning, title, strings.Join(recent, ", ")); err != nil {
		log.Printf("[Cron] Error sending overdue notification: %v", err)
		return
	}
	log.Printf("[Cron] %s", title)
}

// ManualTrigger allows manual triggering of scheduled checks
func (s *Scheduler) ManualTrigger(checkType string) {
	switch checkType {
	case "agenda":
		s.sendDailyAgenda()
	case "overdue":
		s.checkOverdueTasks()
	case "all":
		s.sendDailyAgenda()
		s.checkOverdueTasks()
	default:
		log.Printf("[Cron] Unknown check type: %s", checkType)
	}
}

func plural(n int, word string) string {
	if n == 1 {
		return "1 " + word
	}
	return fmt.Sprintf("%d %ss", n, word)
}
