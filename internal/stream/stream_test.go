package stream

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/Faultbox/viewcube/pkg/cube"
	"github.com/Faultbox/viewcube/pkg/math"
)

func testPose() cube.Pose {
	return cube.Pose{
		Eye:       math.Vec3{X: 10},
		Direction: math.Vec3{X: -1},
		Up:        math.Vec3{Z: 1},
		Scale:     3.5,
	}
}

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("failed to dial %s: %v", wsURL, err)
	}
	return conn
}

func readPose(t *testing.T, conn *websocket.Conn) PoseMessage {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("failed to read message: %v", err)
	}
	var msg PoseMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		t.Fatalf("failed to decode pose: %v", err)
	}
	return msg
}

func TestHubBroadcast(t *testing.T) {
	hub := NewHub()
	srv := httptest.NewServer(NewServer("", hub).http.Handler)
	defer srv.Close()

	conn := dial(t, srv)
	defer conn.Close()

	// Wait until the hub sees the client.
	deadline := time.Now().Add(2 * time.Second)
	for hub.ClientCount() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("client never registered")
		}
		time.Sleep(10 * time.Millisecond)
	}

	hub.Publish(testPose(), "X+")

	msg := readPose(t, conn)
	if msg.Orientation != "X+" {
		t.Errorf("orientation = %q, want X+", msg.Orientation)
	}
	if msg.Eye != [3]float32{10, 0, 0} {
		t.Errorf("eye = %v, want (10,0,0)", msg.Eye)
	}
	if msg.Direction != [3]float32{-1, 0, 0} {
		t.Errorf("direction = %v, want (-1,0,0)", msg.Direction)
	}
	if msg.Scale != 3.5 {
		t.Errorf("scale = %v, want 3.5", msg.Scale)
	}
}

func TestHubSendsLastPoseOnConnect(t *testing.T) {
	hub := NewHub()
	srv := httptest.NewServer(NewServer("", hub).http.Handler)
	defer srv.Close()

	// Publish before anyone is connected.
	hub.Publish(testPose(), "Z+")

	conn := dial(t, srv)
	defer conn.Close()

	msg := readPose(t, conn)
	if msg.Orientation != "Z+" {
		t.Errorf("late joiner got orientation %q, want Z+", msg.Orientation)
	}
}

func TestHubDropsDeadClients(t *testing.T) {
	hub := NewHub()
	srv := httptest.NewServer(NewServer("", hub).http.Handler)
	defer srv.Close()

	conn := dial(t, srv)

	deadline := time.Now().Add(2 * time.Second)
	for hub.ClientCount() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("client never registered")
		}
		time.Sleep(10 * time.Millisecond)
	}

	conn.Close()

	// Publishing after the close eventually drops the dead client.
	deadline = time.Now().Add(2 * time.Second)
	for hub.ClientCount() != 0 {
		hub.Publish(testPose(), "")
		if time.Now().After(deadline) {
			t.Fatal("dead client never dropped")
		}
		time.Sleep(10 * time.Millisecond)
	}
}
