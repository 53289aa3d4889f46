package seed

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/Marga-Ghale/projectflow/internal/repository"
	"github.com/Marga-Ghale/projectflow/internal/service"
	"github.com/Marga-Ghale/projectflow/internal/types"
	"github.com/google/uuid"
)

// SeedData fills an empty workspace with demo users, projects, tasks, events,
// notifications and activity. Dates are relative to now so the calendar and
// dashboard always have something current. It does nothing, and returns
// false, when any user is already registered.
func SeedData(ctx context.Context, repos *repository.Repositories, now time.Time) (bool, error) {
	users, err := repos.UserRepo.FindAll(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check users: %w", err)
	}
	if len(users) > 0 {
		log.Println("[Seed] Data already exists, skipping...")
		return false, nil
	}

	log.Println("[Seed] 🌱 Creating demo workspace...")

	day := func(offset, hour int) time.Time {
		return time.Date(now.Year(), now.Month(), now.Day()+offset, hour, 0, 0, 0, now.Location())
	}
	dayPtr := func(offset int) *time.Time {
		t := day(offset, 17)
		return &t
	}

	// ============================================
	// USERS
	// ============================================
	sarah := newUser("Sarah Chen", "sarah@example.com", types.RoleAdmin, day(-120, 9))
	mike := newUser("Mike Johnson", "mike@example.com", types.RoleManager, day(-90, 9))
	emily := newUser("Emily Davis", "emily@example.com", types.RoleMember, day(-60, 9))
	alex := newUser("Alex Rivera", "alex@example.com", types.RoleMember, day(-30, 9))
	users = []repository.User{sarah, mike, emily, alex}

	// ============================================
	// PROJECTS
	// ============================================
	website := repository.Project{
		ID: uuid.New().String(), Name: "Website Redesign",
		Description: "Refresh the marketing site with the new brand",
		Status:      types.ProjectActive, Progress: 65,
		StartDate: day(-45, 0), EndDate: day(30, 0),
		Team:  []repository.User{sarah, mike, emily},
		Color: types.ProjectColors[0],
	}
	mobile := repository.Project{
		ID: uuid.New().String(), Name: "Mobile App",
		Description: "Native iOS and Android companion app",
		Status:      types.ProjectActive, Progress: 30,
		StartDate: day(-20, 0), EndDate: day(90, 0),
		Team:  []repository.User{mike, alex},
		Color: types.ProjectColors[1],
	}
	analytics := repository.Project{
		ID: uuid.New().String(), Name: "Analytics Platform",
		Description: "Self-serve reporting for customer success",
		Status:      types.ProjectPlanning, Progress: 5,
		StartDate: day(14, 0), EndDate: day(120, 0),
		Team:  []repository.User{sarah, alex},
		Color: types.ProjectColors[2],
	}
	migration := repository.Project{
		ID: uuid.New().String(), Name: "Cloud Migration",
		Description: "Move the legacy billing stack off bare metal",
		Status:      types.ProjectOnHold, Progress: 40,
		StartDate: day(-100, 0), EndDate: day(60, 0),
		Team:  []repository.User{emily},
		Color: types.ProjectColors[3],
	}
	launch := repository.Project{
		ID: uuid.New().String(), Name: "Q1 Launch",
		Description: "Launch campaign and release checklist",
		Status:      types.ProjectCompleted, Progress: 100,
		StartDate: day(-150, 0), EndDate: day(-10, 0),
		Team:  []repository.User{sarah, mike, emily, alex},
		Color: types.ProjectColors[4],
	}

	// ============================================
	// TASKS
	// ============================================
	tasks := []repository.Task{
		newTask("Design homepage mockups", "Hero, navigation and footer variants", website.ID,
			types.StatusCompleted, types.PriorityHigh, &emily, dayPtr(-7), day(-40, 10)),
		newTask("Implement responsive layout", "Breakpoints for tablet and phone", website.ID,
			types.StatusInProgress, types.PriorityHigh, &mike, dayPtr(3), day(-20, 10)),
		newTask("Write launch copy", "Landing page and pricing copy", website.ID,
			types.StatusReview, types.PriorityMedium, &sarah, dayPtr(0), day(-15, 10)),
		newTask("Fix contact form validation", "Email field accepts invalid input", website.ID,
			types.StatusTodo, types.PriorityUrgent, &mike, dayPtr(-2), day(-5, 10)),
		newTask("Set up push notifications", "APNs and FCM credentials", mobile.ID,
			types.StatusTodo, types.PriorityMedium, &alex, dayPtr(10), day(-10, 10)),
		newTask("Offline sync prototype", "Queue writes while offline", mobile.ID,
			types.StatusInProgress, types.PriorityHigh, &alex, dayPtr(7), day(-12, 10)),
		newTask("Define reporting KPIs", "Agree the first dashboard metrics", analytics.ID,
			types.StatusTodo, types.PriorityLow, &sarah, dayPtr(20), day(-3, 10)),
		newTask("Inventory billing services", "List every service and its owner", migration.ID,
			types.StatusCompleted, types.PriorityMedium, &emily, dayPtr(-30), day(-90, 10)),
		newTask("Publish release notes", "Changelog for the Q1 release", launch.ID,
			types.StatusCompleted, types.PriorityLow, nil, dayPtr(-12), day(-30, 10)),
	}

	projects := []repository.Project{website, mobile, analytics, migration, launch}
	for i := range projects {
		projects[i].Tasks = []repository.Task{}
		for _, t := range tasks {
			if t.ProjectID == projects[i].ID {
				projects[i].Tasks = append(projects[i].Tasks, t)
			}
		}
	}

	// ============================================
	// CALENDAR EVENTS
	// ============================================
	events := []repository.CalendarEvent{
		{ID: uuid.New().String(), Title: "Sprint planning", Description: "Plan the next two weeks",
			Date: day(0, 10), Type: types.EventMeeting, ProjectID: website.ID},
		{ID: uuid.New().String(), Title: "Design review", Description: "Walk through homepage mockups",
			Date: day(2, 14), Type: types.EventMeeting, ProjectID: website.ID},
		{ID: uuid.New().String(), Title: "Responsive layout due",
			Date: day(3, 17), Type: types.EventDeadline, ProjectID: website.ID, TaskID: tasks[1].ID},
		{ID: uuid.New().String(), Title: "Mobile beta", Description: "TestFlight build to internal testers",
			Date: day(14, 9), Type: types.EventMilestone, ProjectID: mobile.ID},
		{ID: uuid.New().String(), Title: "Analytics kickoff", Description: "Scope and success metrics",
			Date: day(14, 11), Type: types.EventMeeting, ProjectID: analytics.ID},
		{ID: uuid.New().String(), Title: "Website launch", Description: "Go live",
			Date: day(30, 9), Type: types.EventMilestone, ProjectID: website.ID},
	}

	// ============================================
	// NOTIFICATIONS & ACTIVITY
	// ============================================
	notifications := []repository.Notification{
		{ID: uuid.New().String(), Title: "Task assigned", Message: "You were assigned \"Write launch copy\"",
			Type: types.NotificationInfo, Read: false, Timestamp: day(0, 8).Add(-30 * time.Minute)},
		{ID: uuid.New().String(), Title: "Project completed", Message: "Q1 Launch was marked completed",
			Type: types.NotificationSuccess, Read: false, Timestamp: day(-1, 16)},
		{ID: uuid.New().String(), Title: "Deadline approaching", Message: "Responsive layout is due in 3 days",
			Type: types.NotificationWarning, Read: true, Timestamp: day(-2, 9)},
	}

	activities := []repository.Activity{
		{ID: uuid.New().String(), Type: types.ActivityTaskUpdated, User: emily, Timestamp: day(-1, 15),
			Message: "completed \"Design homepage mockups\"", ProjectID: website.ID, TaskID: tasks[0].ID},
		{ID: uuid.New().String(), Type: types.ActivityTaskCreated, User: mike, Timestamp: day(-5, 10),
			Message: "created \"Fix contact form validation\"", ProjectID: website.ID, TaskID: tasks[3].ID},
		{ID: uuid.New().String(), Type: types.ActivityProjectCreated, User: sarah, Timestamp: day(-20, 9),
			Message: "created project \"Mobile App\"", ProjectID: mobile.ID},
		{ID: uuid.New().String(), Type: types.ActivityUserJoined, User: alex, Timestamp: day(-30, 9),
			Message: "joined the team"},
	}

	if err := repos.UserRepo.ReplaceAll(ctx, users); err != nil {
		return false, fmt.Errorf("failed to seed users: %w", err)
	}
	if err := repos.ProjectRepo.ReplaceAll(ctx, projects); err != nil {
		return false, fmt.Errorf("failed to seed projects: %w", err)
	}
	if err := repos.TaskRepo.ReplaceAll(ctx, tasks); err != nil {
		return false, fmt.Errorf("failed to seed tasks: %w", err)
	}
	if err := repos.EventRepo.ReplaceAll(ctx, events); err != nil {
		return false, fmt.Errorf("failed to seed events: %w", err)
	}
	if err := repos.NotificationRepo.ReplaceAll(ctx, notifications); err != nil {
		return false, fmt.Errorf("failed to seed notifications: %w", err)
	}
	if err := repos.ActivityRepo.ReplaceAll(ctx, activities); err != nil {
		return false, fmt.Errorf("failed to seed activities: %w", err)
	}

	log.Printf("✅ [Seed] Created %d users, %d projects, %d tasks, %d events",
		len(users), len(projects), len(tasks), len(events))
	log.Println("[Seed] Sign in as sarah@example.com with any password")
	return true, nil
}

func newUser(name, email, role string, createdAt time.Time) repository.User {
	return repository.User{
		ID:        uuid.New().String(),
		Name:      name,
		Email:     email,
		Avatar:    service.AvatarURL(name),
		Role:      role,
		CreatedAt: createdAt,
	}
}

func newTask(title, description, projectID, status, priority string, assignee *repository.User, due *time.Time, createdAt time.Time) repository.Task {
	return repository.Task{
		ID:          uuid.New().String(),
		Title:       title,
		Description: description,
		Status:      status,
		Priority:    priority,
		Assignee:    assignee,
		DueDate:     due,
		ProjectID:   projectID,
		CreatedAt:   createdAt,
		UpdatedAt:   createdAt,
	}
}
