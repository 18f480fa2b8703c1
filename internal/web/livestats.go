package web

import (
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/sopmaster25-create/sopmaster/internal/store"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// statsFrame is the outgoing live-stats message format.
type statsFrame struct {
	Type       string `json:"type"` // always "stats"
	MonthKey   string `json:"month_key"`
	SOPs       int    `json:"sops"`
	HoursSaved int    `json:"hours_saved"`
}

// Hub pushes stats updates to open dashboard connections whenever a
// document is saved or the month is reset.
type Hub struct {
	mu    sync.Mutex
	conns map[*websocket.Conn]struct{}
}

// NewHub returns an empty hub.
func NewHub() *Hub {
	return &Hub{conns: make(map[*websocket.Conn]struct{})}
}

// Handle upgrades the request and keeps the connection registered until
// the client goes away. Incoming messages are ignored.
func (h *Hub) Handle(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("livestats: websocket upgrade: %v", err)
		return
	}

	h.mu.Lock()
	h.conns[conn] = struct{}{}
	h.mu.Unlock()

	defer func() {
		h.mu.Lock()
		delete(h.conns, conn)
		h.mu.Unlock()
		conn.Close()
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("livestats: websocket read: %v", err)
			}
			return
		}
	}
}

// Broadcast sends the counters to every open connection. Connections
// that fail to write are dropped.
func (h *Hub) Broadcast(ms store.MonthlyStats) {
	frame := statsFrame{
		Type:       "stats",
		MonthKey:   ms.MonthKey,
		SOPs:       ms.SOPs,
		HoursSaved: ms.HoursSaved,
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.conns {
		if err := conn.WriteJSON(frame); err != nil {
			conn.Close()
			delete(h.conns, conn)
		}
	}
}
