// internal/socket/client.go
package socket

import (
	"encoding/json"
	"log"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait = 10 * time.Second
	pongWait  = 60 * time.Second

	// must be less than pongWait
	pingPeriod = (pongWait * 9) / 10

	maxMessageSize int64 = 4096
)

var frameSeparator = []byte{'\n'}

// ClientMessage represents an incoming message from a client
type ClientMessage struct {
	Action string `json:"action"`
	Room   string `json:"room,omitempty"`
}

// ReadPump handles client frames until the connection fails or the hub
// drops the client.
func (c *Client) ReadPump() {
	defer c.disconnect()

	c.Conn.SetReadLimit(maxMessageSize)
	c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error {
		c.lastPing = time.Now()
		return c.Conn.SetReadDeadline(c.lastPing.Add(pongWait))
	})

	for !c.isClosed() {
		_, frame, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("[Client] Read failed for user %s: %v", c.UserID, err)
			}
			return
		}
		c.handleMessage(frame)
	}
}

// WritePump drains Send onto the connection and keeps it alive with pings.
// It exits once the hub closes Send.
func (c *Client) WritePump() {
	keepalive := time.NewTicker(pingPeriod)
	defer func() {
		keepalive.Stop()
		c.Conn.Close()
	}()

	for {
		select {
		case first, ok := <-c.Send:
			if !ok {
				c.Conn.WriteControl(websocket.CloseMessage, nil, time.Now().Add(writeWait))
				return
			}
			if err := c.writeBatch(first); err != nil {
				log.Printf("[Client] Write failed for user %s: %v", c.UserID, err)
				return
			}

		case <-keepalive.C:
			if err := c.Conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return
			}
		}
	}
}

// writeBatch sends first plus whatever is already queued as one
// newline-separated text frame.
func (c *Client) writeBatch(first []byte) error {
	c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
	w, err := c.Conn.NextWriter(websocket.TextMessage)
	if err != nil {
		return err
	}
	w.Write(first)

	for queued := len(c.Send); queued > 0; queued-- {
		next, ok := <-c.Send
		if !ok {
			break
		}
		w.Write(frameSeparator)
		w.Write(next)
	}
	return w.Close()
}

func (c *Client) disconnect() {
	c.Hub.unregister <- c
	c.Conn.Close()
}

// close marks the client as dropped and closes Send. Only the hub calls it,
// while holding h.mu.
func (c *Client) close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	close(c.Send)
}

func (c *Client) isClosed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

func (c *Client) handleMessage(message []byte) {
	if c.isClosed() {
		return
	}

	var msg ClientMessage
	if err := json.Unmarshal(message, &msg); err != nil {
		log.Printf("[Client] Error parsing message from user %s: %v", c.UserID, err)
		return
	}

	switch msg.Action {
	case "join", "leave":
		if msg.Room == "" {
			return
		}
		action := "joined"
		if msg.Action == "join" {
			c.Hub.JoinRoom(c, msg.Room)
		} else {
			c.Hub.LeaveRoom(c, msg.Room)
			action = "left"
		}
		c.reply(MessageAck, map[string]interface{}{"action": action, "room": msg.Room})

	case "ping":
		c.lastPing = time.Now()
		c.reply(MessagePong, map[string]interface{}{"time": c.lastPing.Unix()})

	case "pong":
		c.lastPing = time.Now()

	default:
		log.Printf("[Client] Unknown action: %s from user: %s", msg.Action, c.UserID)
	}
}

// reply queues a message for this client only. It is a no-op once the hub
// has dropped the client.
func (c *Client) reply(msgType MessageType, payload map[string]interface{}) {
	data, err := encode(msgType, payload)
	if err != nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	select {
	case c.Send <- data:
	default:
		log.Printf("[Client] Send buffer full, dropping %s for user %s", msgType, c.UserID)
	}
}
