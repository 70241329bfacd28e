package services

import (
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/gorilla/websocket"
)

// WSClient is one open websocket connection of a signed-in user. A user
// may hold several (multiple tabs/devices).
type WSClient struct {
	UserID uint
	Conn   *websocket.Conn
}

// RealtimeHub delivers in-app notifications to every connected client of a
// user. It is the "toast" channel: transient, best-effort, no replay.
type RealtimeHub struct {
	mu      sync.RWMutex
	clients map[uint]map[*WSClient]struct{}
}

func NewRealtimeHub() *RealtimeHub {
	return &RealtimeHub{clients: make(map[uint]map[*WSClient]struct{})}
}

func (h *RealtimeHub) Register(c *WSClient) {
	h.mu.Lock()
	if h.clients[c.UserID] == nil {
		h.clients[c.UserID] = make(map[*WSClient]struct{})
	}
	h.clients[c.UserID][c] = struct{}{}
	h.mu.Unlock()
}

func (h *RealtimeHub) Unregister(c *WSClient) {
	h.mu.Lock()
	if set := h.clients[c.UserID]; set != nil {
		delete(set, c)
		if len(set) == 0 {
			delete(h.clients, c.UserID)
		}
	}
	h.mu.Unlock()
	_ = c.Conn.Close()
}

// Broadcast sends an event envelope to every connection of the user. Write
// failures are logged and otherwise ignored; the read loop will notice the
// dead connection and unregister it.
func (h *RealtimeHub) Broadcast(userID uint, kind string, payload any) {
	msg, err := json.Marshal(map[string]any{"kind": kind, "payload": payload})
	if err != nil {
		return
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients[userID] {
		if err := c.Conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			slog.Debug("realtime write failed", "user", userID, "error", err)
		}
	}
}
