// Package feed pushes scoreboard snapshots to websocket subscribers.
package feed

import "time"

// MessageType tags every frame on the feed.
type MessageType string

const (
	MessageTypeView      MessageType = "view"
	MessageTypeHeartbeat MessageType = "heartbeat"
	MessageTypeError     MessageType = "error"
)

// Message is a server-to-client frame.
type Message struct {
	Type      MessageType `json:"type"`
	Payload   any         `json:"payload,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// ClientMessage is a client-to-server frame.
type ClientMessage struct {
	Type MessageType `json:"type"`
}

// ErrorPayload describes a rejected client frame.
type ErrorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ClientStats is returned in reply to a heartbeat.
type ClientStats struct {
	ClientID         string    `json:"client_id"`
	ConnectedAt      time.Time `json:"connected_at"`
	MessagesSent     int64     `json:"messages_sent"`
	MessagesReceived int64     `json:"messages_received"`
}
