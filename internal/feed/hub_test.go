package feed

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/tinytelemetry/courtside/internal/scoreboard"

	"github.com/gorilla/websocket"
)

type testFrame struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

func startHub(t *testing.T) (*Hub, string) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	h := NewHub()
	go h.Run(ctx)

	srv := httptest.NewServer(http.HandlerFunc(NewHandler(ctx, h).HandleWebSocket))
	t.Cleanup(srv.Close)
	return h, "ws" + strings.TrimPrefix(srv.URL, "http")
}

func dial(t *testing.T, url string) *websocket.Conn {
	t.Helper()
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("Dial() error = %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func waitFor(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %s", what)
}

func readFrame(t *testing.T, conn *websocket.Conn) testFrame {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var f testFrame
	if err := conn.ReadJSON(&f); err != nil {
		t.Fatalf("ReadJSON() error = %v", err)
	}
	return f
}

func TestPublishViewReachesClients(t *testing.T) {
	t.Parallel()

	h, url := startHub(t)
	conn := dial(t, url)
	waitFor(t, "client registration", func() bool { return h.ClientCount() == 1 })

	h.PublishView(scoreboard.View{Screen: scoreboard.ScreenNoGames, Message: scoreboard.MsgNoGames})

	f := readFrame(t, conn)
	if f.Type != MessageTypeView {
		t.Fatalf("type = %q, want %q", f.Type, MessageTypeView)
	}
	var v scoreboard.View
	if err := json.Unmarshal(f.Payload, &v); err != nil {
		t.Fatalf("payload: %v", err)
	}
	if v.Screen != scoreboard.ScreenNoGames {
		t.Fatalf("screen = %q, want %q", v.Screen, scoreboard.ScreenNoGames)
	}
}

func TestNewClientGetsLatestView(t *testing.T) {
	t.Parallel()

	h, url := startHub(t)
	h.PublishView(scoreboard.View{Screen: scoreboard.ScreenLoading})

	conn := dial(t, url)
	f := readFrame(t, conn)
	if f.Type != MessageTypeView {
		t.Fatalf("first frame = %q, want the latest view", f.Type)
	}
}

func TestHeartbeatAndUnknownFrames(t *testing.T) {
	t.Parallel()

	h, url := startHub(t)
	conn := dial(t, url)
	waitFor(t, "client registration", func() bool { return h.ClientCount() == 1 })

	if err := conn.WriteJSON(ClientMessage{Type: MessageTypeHeartbeat}); err != nil {
		t.Fatal(err)
	}
	if f := readFrame(t, conn); f.Type != MessageTypeHeartbeat {
		t.Fatalf("reply = %q, want heartbeat", f.Type)
	}

	if err := conn.WriteJSON(ClientMessage{Type: "subscribe"}); err != nil {
		t.Fatal(err)
	}
	if f := readFrame(t, conn); f.Type != MessageTypeError {
		t.Fatalf("reply = %q, want error", f.Type)
	}
}

func TestDisconnectUnregisters(t *testing.T) {
	t.Parallel()

	h, url := startHub(t)
	conn := dial(t, url)
	waitFor(t, "client registration", func() bool { return h.ClientCount() == 1 })

	conn.Close()
	waitFor(t, "client removal", func() bool { return h.ClientCount() == 0 })

	if got := h.Metrics()["total_connections"]; got != int64(1) {
		t.Fatalf("total_connections = %v, want 1", got)
	}
}

func TestHandlerMetricsReportHub(t *testing.T) {
	t.Parallel()

	h := NewHub()
	handler := NewHandler(context.Background(), h)
	h.registerClient(newClient("c1", nil, h))

	m := handler.Metrics()
	if m["active_clients"] != 1 || m["total_connections"] != int64(1) {
		t.Fatalf("metrics = %v, want 1 active of 1 total", m)
	}
}
