package repository

import (
	"context"

	"github.com/Marga-Ghale/projectflow/internal/store"
)

type EventRepository interface {
	FindAll(ctx context.Context) ([]CalendarEvent, error)
	Create(ctx context.Context, event *CalendarEvent) error
	ReplaceAll(ctx context.Context, events []CalendarEvent) error
}

type eventRepository struct {
	events *collection[CalendarEvent]
}

func NewEventRepository(s store.Store) EventRepository {
	return &eventRepository{events: newCollection[CalendarEvent](s, store.KeyCalendarEvents)}
}

func (r *eventRepository) FindAll(ctx context.Context) ([]CalendarEvent, error) {
	return r.events.list(ctx)
}

func (r *eventRepository) Create(ctx context.Context, event *CalendarEvent) error {
	return r.events.append(ctx, *event)
}

func (r *eventRepository) ReplaceAll(ctx context.Context, events []CalendarEvent) error {
	return r.events.replace(ctx, events)
}
