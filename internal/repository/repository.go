package repository

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/Marga-Ghale/projectflow/internal/store"
	"github.com/Marga-Ghale/projectflow/internal/types"
)

var ErrNotFound = errors.New("not found")

// ============================================
// Entities
// ============================================

type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Avatar    string    `json:"avatar,omitempty"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

type Project struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	Progress    int       `json:"progress"`
	StartDate   time.Time `json:"startDate"`
	EndDate     time.Time `json:"endDate"`
	Team        []User    `json:"team"`
	Tasks       []Task    `json:"tasks"`
	Color       string    `json:"color"`
}

type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	Priority    string     `json:"priority"`
	Assignee    *User      `json:"assignee,omitempty"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	ProjectID   string     `json:"projectId"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

type CalendarEvent struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Date        time.Time `json:"date"`
	Type        string    `json:"type"`
	ProjectID   string    `json:"projectId,omitempty"`
	TaskID      string    `json:"taskId,omitempty"`
}

type Notification struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	Read      bool      `json:"read"`
	Timestamp time.Time `json:"timestamp"`
}

type Activity struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	User      User      `json:"user"`
	Timestamp time.Time `json:"timestamp"`
	ProjectID string    `json:"projectId,omitempty"`
	TaskID    string    `json:"taskId,omitempty"`
}

type NotificationSettings struct {
	Email   bool `json:"email"`
	Push    bool `json:"push"`
	Desktop bool `json:"desktop"`
}

type AppearanceSettings struct {
	Theme    string `json:"theme"`
	Language string `json:"language"`
}

type PrivacySettings struct {
	ProfileVisible  bool `json:"profileVisible"`
	ActivityVisible bool `json:"activityVisible"`
}

type AppSettings struct {
	Notifications NotificationSettings `json:"notifications"`
	Appearance    AppearanceSettings   `json:"appearance"`
	Privacy       PrivacySettings      `json:"privacy"`
}

// DefaultAppSettings is what a fresh install shows before anything is saved.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Notifications: NotificationSettings{Email: true, Push: true, Desktop: false},
		Appearance:    AppearanceSettings{Theme: types.ThemeLight, Language: "en"},
		Privacy:       PrivacySettings{ProfileVisible: true, ActivityVisible: true},
	}
}

// ============================================
// Collection helper
// ============================================

// collection is a JSON array stored under one key. Writes replace the whole
// array; mu serialises read-modify-write so concurrent appends are not lost.
type collection[T any] struct {
	mu    sync.Mutex
	store store.Store
	key   string
}

func newCollection[T any](s store.Store, key string) *collection[T] {
	return &collection[T]{store: s, key: key}
}

func (c *collection[T]) list(ctx context.Context) ([]T, error) {
	items, err := store.Load(ctx, c.store, c.key, []T{})
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func (c *collection[T]) find(ctx context.Context, match func(*T) bool) (*T, error) {
	items, err := c.list(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if match(&items[i]) {
			found := items[i]
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

func (c *collection[T]) append(ctx context.Context, item T) error {
	return c.update(ctx, func(items []T) ([]T, error) {
		next := make([]T, 0, len(items)+1)
		next = append(next, items...)
		return append(next, item), nil
	})
}

// update hands fn the current array and saves what it returns. When fn
// fails nothing is written.
func (c *collection[T]) update(ctx context.Context, fn func([]T) ([]T, error)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.list(ctx)
	if err != nil {
		return err
	}
	next, err := fn(items)
	if err != nil {
		return err
	}
	return store.Save(ctx, c.store, c.key, next)
}

func (c *collection[T]) replace(ctx context.Context, items []T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if items == nil {
		items = []T{}
	}
	return store.Save(ctx, c.store, c.key, items)
}
