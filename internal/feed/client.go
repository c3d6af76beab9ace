package feed

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	maxMessageSize = 512
	sendBufferSize = 64
)

// unregisterer is the part of the hub a client needs.
type unregisterer interface {
	Unregister(c *Client)
}

// Client is one websocket subscriber.
type Client struct {
	ID   string
	conn *websocket.Conn
	send chan Message
	hub  unregisterer

	sendMu sync.Mutex
	closed bool

	mu               sync.Mutex
	connectedAt      time.Time
	messagesSent     int64
	messagesReceived int64
}

func newClient(id string, conn *websocket.Conn, hub unregisterer) *Client {
	return &Client{
		ID:          id,
		conn:        conn,
		send:        make(chan Message, sendBufferSize),
		hub:         hub,
		connectedAt: time.Now(),
	}
}

// ReadPump handles client frames until the connection drops.
func (c *Client) ReadPump(ctx context.Context) {
	defer func() {
		c.hub.Unregister(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if ctx.Err() != nil {
			return
		}
		var msg ClientMessage
		if err := c.conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("feed: client %s unexpected close: %v", c.ID, err)
			}
			return
		}
		c.mu.Lock()
		c.messagesReceived++
		c.mu.Unlock()
		c.handle(msg)
	}
}

// WritePump writes queued frames and keeps the connection alive with pings.
func (c *Client) WritePump(ctx context.Context) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case <-ctx.Done():
			c.conn.WriteMessage(websocket.CloseMessage, []byte{})
			return

		case msg, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteJSON(msg); err != nil {
				log.Printf("feed: client %s write error: %v", c.ID, err)
				return
			}
			c.mu.Lock()
			c.messagesSent++
			c.mu.Unlock()

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// TrySend queues msg without blocking and reports whether it fit.
func (c *Client) TrySend(msg Message) bool {
	c.sendMu.Lock()
	defer c.sendMu.Unlock()
	if c.closed {
		return false
	}
	select {
	case c.send <- msg:
		return true
	default:
		return false
	}
}

// closeSend closes the outbound queue once, which ends WritePump.
func (c *Client) closeSend() {
	c.sendMu.Lock()
	defer c.sendMu.Unlock()
	if !c.closed {
		c.closed = true
		close(c.send)
	}
}

// Stats returns a snapshot of the client's counters.
func (c *Client) Stats() ClientStats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return ClientStats{
		ClientID:         c.ID,
		ConnectedAt:      c.connectedAt,
		MessagesSent:     c.messagesSent,
		MessagesReceived: c.messagesReceived,
	}
}

func (c *Client) handle(msg ClientMessage) {
	switch msg.Type {
	case MessageTypeHeartbeat:
		c.TrySend(Message{Type: MessageTypeHeartbeat, Payload: c.Stats(), Timestamp: time.Now()})
	default:
		c.TrySend(Message{
			Type: MessageTypeError,
			Payload: ErrorPayload{
				Code:    "unknown_message_type",
				Message: fmt.Sprintf("unknown message type: %q", msg.Type),
			},
			Timestamp: time.Now(),
		})
	}
}
