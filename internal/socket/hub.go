// internal/socket/hub.go
package socket

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// MessageType defines the type of WebSocket message
type MessageType string

const (
	// Collection changes
	MessageProjectCreated MessageType = "project_created"
	MessageTaskCreated    MessageType = "task_created"
	MessageEventCreated   MessageType = "event_created"
	MessageProfileUpdated MessageType = "profile_updated"

	// Notifications
	MessageNotification      MessageType = "notification"
	MessageNotificationRead  MessageType = "notification_read"
	MessageNotificationCount MessageType = "notification_count"

	// Settings and session
	MessageSettingsUpdated MessageType = "settings_updated"
	MessageUIStateChanged  MessageType = "ui_state_changed"
	MessageSignedIn        MessageType = "signed_in"
	MessageSignedOut       MessageType = "signed_out"

	// Scheduler pushes
	MessageDailyAgenda  MessageType = "daily_agenda"
	MessageTasksOverdue MessageType = "tasks_overdue"

	// User presence
	MessageUserOnline  MessageType = "user_online"
	MessageUserOffline MessageType = "user_offline"

	// System messages
	MessagePing MessageType = "ping"
	MessagePong MessageType = "pong"
	MessageAck  MessageType = "ack"
)

// Rooms a client may join
const (
	RoomCalendar = "calendar"
	RoomTasks    = "tasks"
)

// ProjectRoom is the room for updates scoped to one project.
func ProjectRoom(projectID string) string {
	return "project:" + projectID
}

// Message represents a WebSocket message
type Message struct {
	Type      MessageType            `json:"type"`
	Payload   map[string]interface{} `json:"payload,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

// Client represents a connected WebSocket client
type Client struct {
	ID       string
	UserID   string
	Conn     *websocket.Conn
	Hub      *Hub
	Send     chan []byte
	Rooms    map[string]bool
	mu       sync.Mutex
	closed   bool
	lastPing time.Time
}

// Hub maintains the set of active clients and fans messages out to them
type Hub struct {
	clients     map[*Client]bool
	userClients map[string]map[*Client]bool
	roomClients map[string]map[*Client]bool

	register      chan *Client
	unregister    chan *Client
	broadcast     chan []byte
	roomBroadcast chan *RoomMessage

	mu sync.RWMutex
}

// RoomMessage represents a message to be sent to a specific room
type RoomMessage struct {
	Room    string
	Message []byte
}

// NewHub creates a new Hub
func NewHub() *Hub {
	return &Hub{
		clients:       make(map[*Client]bool),
		userClients:   make(map[string]map[*Client]bool),
		roomClients:   make(map[string]map[*Client]bool),
		register:      make(chan *Client),
		unregister:    make(chan *Client),
		broadcast:     make(chan []byte, 256),
		roomBroadcast: make(chan *RoomMessage, 256),
	}
}

// Run starts the hub's main loop
func (h *Hub) Run() {
	log.Println("[Hub] WebSocket hub started")

	pingTicker := time.NewTicker(30 * time.Second)
	defer pingTicker.Stop()

	for {
		select {
		case client := <-h.register:
			h.registerClient(client)

		case client := <-h.unregister:
			h.unregisterClient(client)

		case message := <-h.broadcast:
			h.broadcastToAll(message)

		case rm := <-h.roomBroadcast:
			h.broadcastToRoom(rm)

		case <-pingTicker.C:
			h.pingClients()
		}
	}
}

func (h *Hub) registerClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.clients[client] = true
	if h.userClients[client.UserID] == nil {
		h.userClients[client.UserID] = make(map[*Client]bool)
		go h.Broadcast(MessageUserOnline, map[string]interface{}{"userId": client.UserID})
	}
	h.userClients[client.UserID][client] = true

	log.Printf("[Hub] ✅ Client registered: user=%s, id=%s, total_clients=%d",
		client.UserID, client.ID, len(h.clients))
}

func (h *Hub) unregisterClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[client]; !ok {
		return
	}
	delete(h.clients, client)

	if clients, ok := h.userClients[client.UserID]; ok {
		delete(clients, client)
		if len(clients) == 0 {
			delete(h.userClients, client.UserID)
			go h.Broadcast(MessageUserOffline, map[string]interface{}{"userId": client.UserID})
		}
	}

	client.mu.Lock()
	for room := range client.Rooms {
		if clients, ok := h.roomClients[room]; ok {
			delete(clients, client)
			if len(clients) == 0 {
				delete(h.roomClients, room)
			}
		}
	}
	client.mu.Unlock()

	client.close()
	log.Printf("[Hub] ❌ Client disconnected: user=%s, id=%s, total_clients=%d",
		client.UserID, client.ID, len(h.clients))
}

func (h *Hub) broadcastToAll(message []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for client := range h.clients {
		h.deliver(client, message)
	}
}

func (h *Hub) broadcastToRoom(rm *RoomMessage) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	clients, ok := h.roomClients[rm.Room]
	if !ok {
		return
	}
	for client := range clients {
		h.deliver(client, rm.Message)
	}
}

func (h *Hub) pingClients() {
	data, _ := json.Marshal(Message{Type: MessagePing, Timestamp: time.Now()})

	h.mu.RLock()
	defer h.mu.RUnlock()
	for client := range h.clients {
		h.deliver(client, data)
	}
}

// deliver drops a client whose send buffer is full. Callers hold h.mu.
func (h *Hub) deliver(client *Client, message []byte) {
	select {
	case client.Send <- message:
	default:
		go func(c *Client) {
			h.unregister <- c
		}(client)
	}
}

// ============================================
// Room Management
// ============================================

// JoinRoom adds a client to a room. Dropped clients are ignored.
func (h *Hub) JoinRoom(client *Client, room string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	client.mu.Lock()
	if client.closed {
		client.mu.Unlock()
		return
	}
	client.Rooms[room] = true
	client.mu.Unlock()

	if h.roomClients[room] == nil {
		h.roomClients[room] = make(map[*Client]bool)
	}
	h.roomClients[room][client] = true

	log.Printf("[Hub] 👥 Client joined room: user=%s, room=%s", client.UserID, room)
}

// LeaveRoom removes a client from a room
func (h *Hub) LeaveRoom(client *Client, room string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	client.mu.Lock()
	delete(client.Rooms, room)
	client.mu.Unlock()

	if clients, ok := h.roomClients[room]; ok {
		delete(clients, client)
		if len(clients) == 0 {
			delete(h.roomClients, room)
		}
	}
}

// ============================================
// Sending
// ============================================

// Broadcast sends a message to every connected client
func (h *Hub) Broadcast(msgType MessageType, payload map[string]interface{}) {
	data, err := encode(msgType, payload)
	if err != nil {
		log.Printf("[Hub] Error marshaling message: %v", err)
		return
	}
	h.broadcast <- data
}

// SendToRoom sends a message to the clients subscribed to room
func (h *Hub) SendToRoom(room string, msgType MessageType, payload map[string]interface{}) {
	data, err := encode(msgType, payload)
	if err != nil {
		log.Printf("[Hub] Error marshaling message: %v", err)
		return
	}
	h.roomBroadcast <- &RoomMessage{Room: room, Message: data}
}

func encode(msgType MessageType, payload map[string]interface{}) ([]byte, error) {
	return json.Marshal(Message{
		Type:      msgType,
		Payload:   payload,
		Timestamp: time.Now(),
	})
}

// ============================================
// Queries
// ============================================

// IsUserOnline checks if a user has at least one open connection
func (h *Hub) IsUserOnline(userID string) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()

	_, ok := h.userClients[userID]
	return ok
}

// GetConnectedClientsCount returns total connected clients
func (h *Hub) GetConnectedClientsCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
