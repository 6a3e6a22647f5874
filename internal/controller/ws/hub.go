package ws

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"fanbase/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 54 * time.Second
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Event is the frame exchanged with clients.
type Event struct {
	Type    string      `json:"type"`
	To      string      `json:"to,omitempty"`
	From    string      `json:"from,omitempty"`
	Payload interface{} `json:"payload,omitempty"`
}

type client struct {
	conn *websocket.Conn
	send chan Event
	// done signals writePump shutdown. send is never closed, so a
	// Notify racing a disconnect can at worst drop the event.
	done chan struct{}
}

// Hub tracks one live connection per user. Delivery is best effort:
// events to offline users are dropped.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]*client
	log     *logger.Logger
}

func NewHub(log *logger.Logger) *Hub {
	return &Hub{clients: make(map[string]*client), log: log}
}

// Notify pushes an event to the user if connected.
func (h *Hub) Notify(userID string, event string, payload interface{}) {
	h.mu.RLock()
	c, ok := h.clients[userID]
	h.mu.RUnlock()
	if !ok {
		return
	}

	select {
	case c.send <- Event{Type: event, Payload: payload}:
	default:
		h.log.Warn("Dropping %s event for slow client %s", event, userID)
	}
}

// Online reports whether the user has a live connection.
func (h *Hub) Online(userID string) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	_, ok := h.clients[userID]
	return ok
}

// HandleConnection upgrades the request and serves the connection
// until the client goes away. A new connection replaces any previous
// one for the same user.
func (h *Hub) HandleConnection(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn("Websocket upgrade failed for %s: %v", userID, err)
		return
	}

	cl := &client{conn: conn, send: make(chan Event, 16), done: make(chan struct{})}
	h.register(userID, cl)

	go h.writePump(userID, cl)
	h.readPump(userID, cl)
}

func (h *Hub) register(userID string, cl *client) {
	h.mu.Lock()
	if old, ok := h.clients[userID]; ok {
		close(old.done)
		old.conn.Close()
	}
	h.clients[userID] = cl
	h.mu.Unlock()
}

func (h *Hub) unregister(userID string, cl *client) {
	h.mu.Lock()
	if current, ok := h.clients[userID]; ok && current == cl {
		delete(h.clients, userID)
		close(cl.done)
	}
	h.mu.Unlock()
	cl.conn.Close()
}

func (h *Hub) readPump(userID string, cl *client) {
	defer h.unregister(userID, cl)

	cl.conn.SetReadLimit(4096)
	cl.conn.SetReadDeadline(time.Now().Add(pongWait))
	cl.conn.SetPongHandler(func(string) error {
		return cl.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, raw, err := cl.conn.ReadMessage()
		if err != nil {
			return
		}

		var event Event
		if err := json.Unmarshal(raw, &event); err != nil {
			continue
		}

		switch event.Type {
		case "typing", "stop-typing":
			if event.To != "" {
				h.Notify(event.To, event.Type, map[string]string{"from": userID})
			}
		}
	}
}

func (h *Hub) writePump(userID string, cl *client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		cl.conn.Close()
	}()

	for {
		select {
		case <-cl.done:
			cl.conn.SetWriteDeadline(time.Now().Add(writeWait))
			cl.conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		case event := <-cl.send:
			cl.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := cl.conn.WriteJSON(event); err != nil {
				return
			}
		case <-ticker.C:
			cl.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := cl.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
