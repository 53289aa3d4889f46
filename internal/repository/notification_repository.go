package repository

import (
	"context"

	"github.com/Marga-Ghale/projectflow/internal/store"
)

type NotificationRepository interface {
	FindAll(ctx context.Context) ([]Notification, error)
	Create(ctx context.Context, notification *Notification) error
	MarkAsRead(ctx context.Context, id string) error
	MarkAllAsRead(ctx context.Context) (int, error)
	ReplaceAll(ctx context.Context, notifications []Notification) error
}

type notificationRepository struct {
	notifications *collection[Notification]
}

func NewNotificationRepository(s store.Store) NotificationRepository {
	return &notificationRepository{notifications: newCollection[Notification](s, store.KeyNotifications)}
}

func (r *notificationRepository) FindAll(ctx context.Context) ([]Notification, error) {
	return r.notifications.list(ctx)
}

func (r *notificationRepository) Create(ctx context.Context, notification *Notification) error {
	return r.notifications.append(ctx, *notification)
}

func (r *notificationRepository) MarkAsRead(ctx context.Context, id string) error {
	return r.notifications.update(ctx, func(items []Notification) ([]Notification, error) {
		next := make([]Notification, len(items))
		copy(next, items)
		for i := range next {
			if next[i].ID == id {
				next[i].Read = true
				return next, nil
			}
		}
		return nil, ErrNotFound
	})
}

// MarkAllAsRead returns how many notifications changed.
func (r *notificationRepository) MarkAllAsRead(ctx context.Context) (int, error) {
	changed := 0
	err := r.notifications.update(ctx, func(items []Notification) ([]Notification, error) {
		next := make([]Notification, len(items))
		copy(next, items)
		for i := range next {
			if !next[i].Read {
				next[i].Read = true
				changed++
			}
		}
		return next, nil
	})
	return changed, err
}

func (r *notificationRepository) ReplaceAll(ctx context.Context, notifications []Notification) error {
	return r.notifications.replace(ctx, notifications)
}
