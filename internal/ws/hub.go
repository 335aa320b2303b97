// Package ws tracks connected users over websockets. Presence feeds the
// matchmaker (only online users are candidates), per-user call acceptance is
// flipped by client events, and allocated rooms are pushed to both
// participants.
package ws

import (
	"context"
	"sync"
	"time"

	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"

	"github.com/Abdukarim17/fluentia/internal/match"
	"github.com/Abdukarim17/fluentia/internal/models"
)

type Event struct {
	Type string      `json:"type"`
	Data interface{} `json:"data,omitempty"`
}

const (
	EventCallAccept  = "call:accept"
	EventCallDecline = "call:decline"
	EventRoomCreated = "room:created"
)

type Client struct {
	UserID uint
	Conn   *websocket.Conn
	Send   chan Event

	ctx    context.Context
	cancel context.CancelFunc
}

type Hub struct {
	mu       sync.RWMutex
	clients  map[uint]map[*Client]struct{}
	accepted map[uint]bool
	inRoom   map[uint]bool
}

func NewHub() *Hub {
	return &Hub{
		clients:  map[uint]map[*Client]struct{}{},
		accepted: map[uint]bool{},
		inRoom:   map[uint]bool{},
	}
}

func (h *Hub) AddClient(userID uint, conn *websocket.Conn) *Client {
	ctx, cancel := context.WithCancel(context.Background())

	c := &Client{
		UserID: userID,
		Conn:   conn,
		Send:   make(chan Event, 64),
		ctx:    ctx,
		cancel: cancel,
	}

	h.mu.Lock()
	if h.clients[userID] == nil {
		h.clients[userID] = map[*Client]struct{}{}
	}
	h.clients[userID][c] = struct{}{}
	h.mu.Unlock()

	go c.writeLoop()
	go c.keepAliveLoop()

	return c
}

// RemoveClient drops the connection. When the user's last connection goes
// away their acceptance and in-room state are reset.
func (h *Hub) RemoveClient(c *Client) {
	c.cancel()

	h.mu.Lock()
	if set, ok := h.clients[c.UserID]; ok {
		delete(set, c)
		if len(set) == 0 {
			delete(h.clients, c.UserID)
			delete(h.accepted, c.UserID)
			delete(h.inRoom, c.UserID)
		}
	}
	h.mu.Unlock()

	_ = c.Conn.Close(websocket.StatusNormalClosure, "bye")
}

func (h *Hub) SetAccepted(userID uint, ok bool) {
	h.mu.Lock()
	h.accepted[userID] = ok
	h.mu.Unlock()
}

func (h *Hub) Accepted(userID uint) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.accepted[userID]
}

// NextCandidate picks the lowest-ID connected user that is not the
// requester, not in an active room and not in skip. Lowest-ID keeps the
// choice deterministic; a smarter policy would rank by skill proximity.
func (h *Hub) NextCandidate(userID uint, skip []uint) (uint, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	var best uint
	for uid := range h.clients {
		if uid == userID || h.inRoom[uid] || contains(skip, uid) {
			continue
		}
		if best == 0 || uid < best {
			best = uid
		}
	}
	if best == 0 {
		return 0, match.ErrNoCandidate
	}
	return best, nil
}

// NotifyRoom marks both participants busy and pushes the room descriptor to
// every connection they hold.
func (h *Hub) NotifyRoom(room models.Room) {
	h.mu.Lock()
	for _, uid := range room.Users {
		h.inRoom[uid] = true
	}
	h.mu.Unlock()

	h.BroadcastToUsers(room.Users, Event{Type: EventRoomCreated, Data: room})
}

func (h *Hub) BroadcastToUsers(userIDs []uint, ev Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, uid := range userIDs {
		for c := range h.clients[uid] {
			select {
			case c.Send <- ev:
			default:
				// slow consumer, drop
			}
		}
	}
}

func contains(ids []uint, id uint) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

// writeLoop drains Send until the client context is cancelled. Send is never
// closed: a broadcaster may still be sending the instant the client goes
// away, and events queued to a gone client are simply dropped.
func (c *Client) writeLoop() {
	for {
		select {
		case <-c.ctx.Done():
			return
		case ev := <-c.Send:
			writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			_ = wsjson.Write(writeCtx, c.Conn, ev)
			cancel()
		}
	}
}

func (c *Client) keepAliveLoop() {
	ticker := time.NewTicker(25 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-c.ctx.Done():
			return
		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			_ = c.Conn.Ping(pingCtx)
			cancel()
		}
	}
}
