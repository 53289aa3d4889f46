package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/Marga-Ghale/projectflow/internal/repository"
	"github.com/Marga-Ghale/projectflow/internal/socket"
	"github.com/Marga-Ghale/projectflow/internal/types"
	"github.com/Marga-Ghale/projectflow/internal/views"
	"github.com/google/uuid"
)

// ============================================
// Calendar Event Service
// ============================================

type CreateEventInput struct {
	Title       string
	Description string
	Date        time.Time
	Type        string
	ProjectID   string
	TaskID      string
}

type EventService interface {
	List(ctx context.Context) ([]repository.CalendarEvent, error)
	Upcoming(ctx context.Context, limit int) ([]repository.CalendarEvent, error)
	Month(ctx context.Context, year int, month time.Month) (views.MonthGrid, error)
	Week(ctx context.Context, anchor time.Time) ([]views.DayCell, error)
	Create(ctx context.Context, input CreateEventInput) (*repository.CalendarEvent, error)
}

type eventService struct {
	eventRepo   repository.EventRepository
	uiState     UIStateService
	broadcaster *socket.Broadcaster
	now         func() time.Time
	loc         *time.Location
}

func NewEventService(
	eventRepo repository.EventRepository,
	uiState UIStateService,
	broadcaster *socket.Broadcaster,
	now func() time.Time,
	loc *time.Location,
) EventService {
	return &eventService{
		eventRepo:   eventRepo,
		uiState:     uiState,
		broadcaster: broadcaster,
		now:         now,
		loc:         loc,
	}
}

func (s *eventService) List(ctx context.Context) ([]repository.CalendarEvent, error) {
	events, err := s.eventRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load events: %w", err)
	}
	return events, nil
}

func (s *eventService) Upcoming(ctx context.Context, limit int) ([]repository.CalendarEvent, error) {
	events, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return views.UpcomingEvents(events, limit), nil
}

func (s *eventService) Month(ctx context.Context, year int, month time.Month) (views.MonthGrid, error) {
	if month < time.January || month > time.December {
		return views.MonthGrid{}, fmt.Errorf("%w: month must be 1-12", ErrInvalidInput)
	}
	events, err := s.List(ctx)
	if err != nil {
		return views.MonthGrid{}, err
	}
	return views.BuildMonthGrid(year, month, events, s.now(), s.loc), nil
}

func (s *eventService) Week(ctx context.Context, anchor time.Time) ([]views.DayCell, error) {
	events, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return views.BuildWeek(anchor, events, s.now(), s.loc), nil
}

func (s *eventService) Create(ctx context.Context, input CreateEventInput) (*repository.CalendarEvent, error) {
	if strings.TrimSpace(input.Title) == "" || strings.TrimSpace(input.Description) == "" || input.Date.IsZero() {
		return nil, fmt.Errorf("%w: title, description and date are required", ErrInvalidInput)
	}

	eventType := input.Type
	if eventType == "" {
		eventType = types.EventMeeting
	}
	if !types.IsValidEventType(eventType) {
		return nil, fmt.Errorf("%w: unknown event type %q", ErrInvalidInput, eventType)
	}

	event := &repository.CalendarEvent{
		ID:          uuid.New().String(),
		Title:       input.Title,
		Description: input.Description,
		Date:        input.Date,
		Type:        eventType,
		ProjectID:   input.ProjectID,
		TaskID:      input.TaskID,
	}

	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}
	log.Printf("✅ [Calendar] Created %s %q on %s", event.Type, event.Title, event.Date.In(s.loc).Format("2006-01-02"))

	s.uiState.CloseModal(ModalNewEvent)
	if s.broadcaster != nil {
		s.broadcaster.BroadcastEventCreated(event)
	}
	return event, nil
}
