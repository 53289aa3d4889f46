package socket

import (
	"log"

	"github.com/Marga-Ghale/projectflow/internal/repository"
)

// Broadcaster provides high-level methods for pushing state changes
type Broadcaster struct {
	hub *Hub
}

// NewBroadcaster creates a new Broadcaster
func NewBroadcaster(hub *Hub) *Broadcaster {
	return &Broadcaster{hub: hub}
}

// ============================================
// Collections
// ============================================

// BroadcastProjectCreated tells every client to refresh project views
func (b *Broadcaster) BroadcastProjectCreated(project *repository.Project) {
	log.Printf("📡 BroadcastProjectCreated: id=%s", project.ID)
	b.hub.Broadcast(MessageProjectCreated, map[string]interface{}{
		"project": project,
	})
}

// BroadcastTaskCreated goes to the tasks room and the owning project's room
func (b *Broadcaster) BroadcastTaskCreated(task *repository.Task) {
	payload := map[string]interface{}{
		"task":      task,
		"projectId": task.ProjectID,
	}
	b.hub.SendToRoom(RoomTasks, MessageTaskCreated, payload)
	b.hub.SendToRoom(ProjectRoom(task.ProjectID), MessageTaskCreated, payload)
}

// BroadcastEventCreated goes to clients viewing the calendar
func (b *Broadcaster) BroadcastEventCreated(event *repository.CalendarEvent) {
	b.hub.SendToRoom(RoomCalendar, MessageEventCreated, map[string]interface{}{
		"event": event,
	})
}

func (b *Broadcaster) BroadcastProfileUpdated(user *repository.User) {
	b.hub.Broadcast(MessageProfileUpdated, map[string]interface{}{
		"user": user,
	})
}

// ============================================
// Notifications
// ============================================

func (b *Broadcaster) SendNotification(notification *repository.Notification) {
	b.hub.Broadcast(MessageNotification, map[string]interface{}{
		"notification": notification,
	})
}

func (b *Broadcaster) SendNotificationRead(ids []string) {
	b.hub.Broadcast(MessageNotificationRead, map[string]interface{}{
		"ids": ids,
	})
}

func (b *Broadcaster) SendNotificationCount(total, unread int) {
	b.hub.Broadcast(MessageNotificationCount, map[string]interface{}{
		"total":  total,
		"unread": unread,
	})
}

// ============================================
// Session and settings
// ============================================

func (b *Broadcaster) BroadcastSettingsUpdated(settings repository.AppSettings) {
	b.hub.Broadcast(MessageSettingsUpdated, map[string]interface{}{
		"settings": settings,
	})
}

func (b *Broadcaster) BroadcastUIState(state interface{}) {
	b.hub.Broadcast(MessageUIStateChanged, map[string]interface{}{
		"state": state,
	})
}

func (b *Broadcaster) BroadcastSignedIn(user *repository.User) {
	b.hub.Broadcast(MessageSignedIn, map[string]interface{}{
		"user": user,
	})
}

func (b *Broadcaster) BroadcastSignedOut(userID string) {
	b.hub.Broadcast(MessageSignedOut, map[string]interface{}{
		"userId": userID,
	})
}

// ============================================
// Scheduler
// ============================================

// BroadcastDailyAgenda pushes today's events and due tasks
func (b *Broadcaster) BroadcastDailyAgenda(date string, events []repository.CalendarEvent, tasks []repository.Task) {
	log.Printf("📡 BroadcastDailyAgenda: date=%s events=%d tasks=%d", date, len(events), len(tasks))
	b.hub.Broadcast(MessageDailyAgenda, map[string]interface{}{
		"date":   date,
		"events": events,
		"tasks":  tasks,
	})
}

func (b *Broadcaster) BroadcastTasksOverdue(tasks []repository.Task) {
	b.hub.SendToRoom(RoomTasks, MessageTasksOverdue, map[string]interface{}{
		"tasks": tasks,
		"count": len(tasks),
	})
}

// IsUserOnline reports presence for the team view
func (b *Broadcaster) IsUserOnline(userID string) bool {
	return b.hub.IsUserOnline(userID)
}
