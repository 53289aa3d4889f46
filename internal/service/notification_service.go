package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Marga-Ghale/projectflow/internal/repository"
	"github.com/Marga-Ghale/projectflow/internal/socket"
	"github.com/Marga-Ghale/projectflow/internal/types"
	"github.com/Marga-Ghale/projectflow/internal/views"
	"github.com/google/uuid"
)

// ============================================
// Notification Service
// ============================================

type NotificationService interface {
	List(ctx context.Context, unreadOnly bool) ([]repository.Notification, error)
	UnreadCount(ctx context.Context) (int, error)
	MarkAsRead(ctx context.Context, id string) error
	MarkAllAsRead(ctx context.Context) (int, error)
	Notify(ctx context.Context, notifType, title, message string) (*repository.Notification, error)
}

type notificationService struct {
	notificationRepo repository.NotificationRepository
	broadcaster      *socket.Broadcaster
	now              func() time.Time
}

func NewNotificationService(
	notificationRepo repository.NotificationRepository,
	broadcaster *socket.Broadcaster,
	now func() time.Time,
) NotificationService {
	return &notificationService{
		notificationRepo: notificationRepo,
		broadcaster:      broadcaster,
		now:              now,
	}
}

func (s *notificationService) List(ctx context.Context, unreadOnly bool) ([]repository.Notification, error) {
	all, err := s.notificationRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load notifications: %w", err)
	}
	if !unreadOnly {
		return all, nil
	}

	unread := make([]repository.Notification, 0, len(all))
	for _, n := range all {
		if !n.Read {
			unread = append(unread, n)
		}
	}
	return unread, nil
}

func (s *notificationService) UnreadCount(ctx context.Context) (int, error) {
	all, err := s.notificationRepo.FindAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to load notifications: %w", err)
	}
	return views.UnreadCount(all), nil
}

func (s *notificationService) MarkAsRead(ctx context.Context, id string) error {
	err := s.notificationRepo.MarkAsRead(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}

	if s.broadcaster != nil {
		s.broadcaster.SendNotificationRead([]string{id})
		s.pushCount(ctx)
	}
	return nil
}

func (s *notificationService) MarkAllAsRead(ctx context.Context) (int, error) {
	changed, err := s.notificationRepo.MarkAllAsRead(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to mark notifications read: %w", err)
	}
	if changed > 0 && s.broadcaster != nil {
		s.pushCount(ctx)
	}
	return changed, nil
}

// Notify appends an unread notification and pushes it to connected clients.
func (s *notificationService) Notify(ctx context.Context, notifType, title, message string) (*repository.Notification, error) {
	if !types.IsValidNotificationType(notifType) {
		return nil, fmt.Errorf("%w: unknown notification type %q", ErrInvalidInput, notifType)
	}

	n := &repository.Notification{
		ID:        uuid.New().String(),
		Title:     title,
		Message:   message,
		Type:      notifType,
		Read:      false,
		Timestamp: s.now(),
	}
	if err := s.notificationRepo.Create(ctx, n); err != nil {
		return nil, fmt.Errorf("failed to create notification: %w", err)
	}

	if s.broadcaster != nil {
		s.broadcaster.SendNotification(n)
		s.pushCount(ctx)
	}
	return n, nil
}

func (s *notificationService) pushCount(ctx context.Context) {
	all, err := s.notificationRepo.FindAll(ctx)
	if err != nil {
		return
	}
	s.broadcaster.SendNotificationCount(len(all), views.UnreadCount(all))
}
