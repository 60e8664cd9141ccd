package ws

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/gofiber/contrib/websocket"
	"go.uber.org/zap"

	"github.com/spec-kit/erp-console/internal/events"
)

// ChangeMessage is the wire shape of one change-feed notification. Clients
// use it as a signal to reload the affected list; the record itself is not
// pushed.
type ChangeMessage struct {
	Resource string `json:"resource"`
	Action   string `json:"action"`
	ID       int64  `json:"id"`
}

// Hub fans resource-change notifications out to connected websocket clients.
type Hub struct {
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	broadcast  chan []byte

	mu      sync.Mutex
	clients map[*websocket.Conn]bool

	logger *zap.Logger
}

// NewHub creates an empty hub.
func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
		broadcast:  make(chan []byte, 16),
		clients:    make(map[*websocket.Conn]bool),
		logger:     logger,
	}
}

// Run owns the client set; call it in its own goroutine.
func (h *Hub) Run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			h.clients[conn] = true
			h.mu.Unlock()
			h.logger.Debug("websocket client connected")

		case conn := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[conn]; ok {
				delete(h.clients, conn)
				conn.Close()
			}
			h.mu.Unlock()

		case message := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients {
				if err := conn.WriteMessage(websocket.TextMessage, message); err != nil {
					conn.Close()
					delete(h.clients, conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Serve keeps one client connection registered until it drops.
func (h *Hub) Serve(conn *websocket.Conn) {
	h.register <- conn
	defer func() { h.unregister <- conn }()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

// HandleResourceEvent is an events.EventHandler that forwards the change to
// all clients.
func (h *Hub) HandleResourceEvent(_ context.Context, event events.Event) error {
	msg, err := json.Marshal(ChangeMessage{
		Resource: event.Resource,
		Action:   event.Action(),
		ID:       event.ID,
	})
	if err != nil {
		return err
	}

	select {
	case h.broadcast <- msg:
	default:
		h.logger.Warn("change feed backlog full, dropping message",
			zap.String("resource", event.Resource))
	}
	return nil
}
