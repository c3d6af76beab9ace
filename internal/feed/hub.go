package feed

import (
	"context"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/tinytelemetry/courtside/internal/scoreboard"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const broadcastBufferSize = 64

// Hub tracks connected clients and fans view snapshots out to them. New
// clients receive the latest snapshot as soon as they register.
type Hub struct {
	clients   map[*Client]bool
	clientsMu sync.RWMutex

	broadcast  chan Message
	register   chan *Client
	unregister chan *Client
	done       chan struct{}

	latestMu sync.RWMutex
	latest   *Message

	metricsMu        sync.Mutex
	totalConnections int64
	totalMessages    int64
}

// NewHub creates an idle hub; call Run to start it.
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan Message, broadcastBufferSize),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
	}
}

// Run processes registrations and broadcasts until ctx is cancelled.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			h.shutdown()
			return
		case c := <-h.register:
			h.registerClient(c)
		case c := <-h.unregister:
			h.unregisterClient(c)
		case msg := <-h.broadcast:
			h.broadcastMessage(msg)
		}
	}
}

// Register adds a client. It is a no-op once the hub has stopped.
func (h *Hub) Register(c *Client) {
	select {
	case h.register <- c:
	case <-h.done:
	}
}

// Unregister removes a client. It is a no-op once the hub has stopped.
func (h *Hub) Unregister(c *Client) {
	select {
	case h.unregister <- c:
	case <-h.done:
	}
}

// Broadcast queues msg for every client, dropping it if the queue is full.
func (h *Hub) Broadcast(msg Message) {
	select {
	case h.broadcast <- msg:
	default:
		log.Printf("feed: broadcast buffer full, dropping %s message", msg.Type)
	}
}

// PublishView records v as the latest snapshot and broadcasts it. Its
// signature matches scoreboard.Controller.Subscribe.
func (h *Hub) PublishView(v scoreboard.View) {
	msg := Message{Type: MessageTypeView, Payload: v, Timestamp: time.Now()}
	h.latestMu.Lock()
	h.latest = &msg
	h.latestMu.Unlock()
	h.Broadcast(msg)
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.clientsMu.RLock()
	defer h.clientsMu.RUnlock()
	return len(h.clients)
}

// Metrics returns connection and message counters.
func (h *Hub) Metrics() map[string]any {
	h.metricsMu.Lock()
	defer h.metricsMu.Unlock()
	return map[string]any{
		"active_clients":    h.ClientCount(),
		"total_connections": h.totalConnections,
		"total_messages":    h.totalMessages,
	}
}

func (h *Hub) registerClient(c *Client) {
	h.clientsMu.Lock()
	h.clients[c] = true
	total := len(h.clients)
	h.clientsMu.Unlock()

	h.metricsMu.Lock()
	h.totalConnections++
	h.metricsMu.Unlock()

	h.latestMu.RLock()
	latest := h.latest
	h.latestMu.RUnlock()
	if latest != nil {
		c.TrySend(*latest)
	}
	log.Printf("feed: client %s connected (total: %d)", c.ID, total)
}

func (h *Hub) unregisterClient(c *Client) {
	h.clientsMu.Lock()
	defer h.clientsMu.Unlock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		c.closeSend()
		log.Printf("feed: client %s disconnected (total: %d)", c.ID, len(h.clients))
	}
}

func (h *Hub) broadcastMessage(msg Message) {
	h.clientsMu.RLock()
	clients := make([]*Client, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	h.clientsMu.RUnlock()

	sent := 0
	for _, c := range clients {
		if c.TrySend(msg) {
			sent++
			continue
		}
		log.Printf("feed: client %s buffer full, disconnecting", c.ID)
		h.unregisterClient(c)
	}

	if sent > 0 {
		h.metricsMu.Lock()
		h.totalMessages++
		h.metricsMu.Unlock()
	}
}

func (h *Hub) shutdown() {
	h.clientsMu.Lock()
	defer h.clientsMu.Unlock()
	log.Printf("feed: shutting down hub (%d active clients)", len(h.clients))
	for c := range h.clients {
		c.closeSend()
		delete(h.clients, c)
	}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Handler upgrades HTTP requests to feed connections.
type Handler struct {
	hub *Hub
	ctx context.Context
}

// NewHandler ties connections to ctx rather than to the request, which ends
// as soon as the upgrade completes.
func NewHandler(ctx context.Context, hub *Hub) *Handler {
	return &Handler{hub: hub, ctx: ctx}
}

// Metrics reports the hub's connection and message counters.
func (h *Handler) Metrics() map[string]any {
	return h.hub.Metrics()
}

// HandleWebSocket upgrades the connection and starts the client pumps.
func (h *Handler) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("feed: websocket upgrade error: %v", err)
		return
	}

	c := newClient(uuid.New().String(), conn, h.hub)
	h.hub.Register(c)

	go c.WritePump(h.ctx)
	go c.ReadPump(h.ctx)
}
