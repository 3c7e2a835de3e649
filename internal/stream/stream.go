// Package stream broadcasts live camera poses to WebSocket clients.
package stream

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/Faultbox/viewcube/internal/logger"
	"github.com/Faultbox/viewcube/pkg/cube"
)

// PoseMessage is the wire form of a camera pose.
type PoseMessage struct {
	Eye       [3]float32 `json:"eye"`
	Direction [3]float32 `json:"direction"`
	Up        [3]float32 `json:"up"`
	Scale     float32    `json:"scale"`
	// Orientation is the label of the last picked orientation, if any.
	Orientation string `json:"orientation,omitempty"`
}

// poseMessage converts a camera pose for the wire.
func poseMessage(p cube.Pose, orientation string) PoseMessage {
	return PoseMessage{
		Eye:         [3]float32{p.Eye.X, p.Eye.Y, p.Eye.Z},
		Direction:   [3]float32{p.Direction.X, p.Direction.Y, p.Direction.Z},
		Up:          [3]float32{p.Up.X, p.Up.Y, p.Up.Z},
		Scale:       p.Scale,
		Orientation: orientation,
	}
}

// Hub fans camera pose updates out to connected WebSocket clients. New
// clients immediately receive the last published pose.
type Hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]bool
	last    PoseMessage
	hasLast bool

	upgrader websocket.Upgrader
}

// NewHub returns an empty hub.
func NewHub() *Hub {
	return &Hub{
		clients: make(map[*websocket.Conn]bool),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Publish sends a pose to every connected client. Clients that fail to
// accept the write are dropped.
func (h *Hub) Publish(pose cube.Pose, orientation string) {
	msg := poseMessage(pose, orientation)

	h.mu.Lock()
	defer h.mu.Unlock()
	h.last = msg
	h.hasLast = true

	data, err := json.Marshal(msg)
	if err != nil {
		logger.Error("marshaling pose", zap.Error(err))
		return
	}

	for client := range h.clients {
		if err := client.WriteMessage(websocket.TextMessage, data); err != nil {
			logger.Warn("dropping client", zap.Error(err))
			client.Close()
			delete(h.clients, client)
		}
	}
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// HandleWS upgrades an HTTP request to a WebSocket subscription.
func (h *Hub) HandleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Error("websocket upgrade", zap.Error(err))
		return
	}

	h.mu.Lock()
	h.clients[conn] = true
	if h.hasLast {
		if data, err := json.Marshal(h.last); err == nil {
			conn.WriteMessage(websocket.TextMessage, data)
		}
	}
	h.mu.Unlock()

	logger.Info("websocket client connected", zap.String("remote", r.RemoteAddr))

	defer func() {
		h.mu.Lock()
		delete(h.clients, conn)
		h.mu.Unlock()
		conn.Close()
		logger.Info("websocket client disconnected", zap.String("remote", r.RemoteAddr))
	}()

	// Drain client messages for keep-alive until the peer goes away.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

// Server serves the pose stream: a status page at / and the WebSocket
// endpoint at /ws.
type Server struct {
	hub  *Hub
	http *http.Server
}

// NewServer builds a server on the given address.
func NewServer(addr string, hub *Hub) *Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/", serveHome)
	mux.HandleFunc("/ws", hub.HandleWS)
	return &Server{
		hub:  hub,
		http: &http.Server{Addr: addr, Handler: mux},
	}
}

// ListenAndServe blocks serving the stream.
func (s *Server) ListenAndServe() error {
	logger.Info("pose stream listening", zap.String("addr", s.http.Addr))
	err := s.http.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

func serveHome(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html")
	w.Write([]byte(homePage))
}

const homePage = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<title>viewcube pose stream</title>
<style>
body { font-family: monospace; background: #1e1e22; color: #ddd; padding: 2em; }
td { padding: 0.2em 1em; }
#status { margin-bottom: 1em; }
.connected { color: #7c7; }
.disconnected { color: #c77; }
</style>
</head>
<body>
<h2>viewcube pose stream</h2>
<div id="status" class="disconnected">disconnected</div>
<table>
<tr><td>orientation</td><td id="orientation">-</td></tr>
<tr><td>eye</td><td id="eye">-</td></tr>
<tr><td>direction</td><td id="direction">-</td></tr>
<tr><td>up</td><td id="up">-</td></tr>
<tr><td>scale</td><td id="scale">-</td></tr>
</table>
<script>
function fmt(v) { return v.map(function(x) { return x.toFixed(3); }).join(', '); }
function connect() {
    var proto = location.protocol === 'https:' ? 'wss:' : 'ws:';
    var ws = new WebSocket(proto + '//' + location.host + '/ws');
    var status = document.getElementById('status');
    ws.onopen = function() {
        status.textContent = 'connected';
        status.className = 'connected';
    };
    ws.onmessage = function(ev) {
        var p = JSON.parse(ev.data);
        document.getElementById('orientation').textContent = p.orientation || '-';
        document.getElementById('eye').textContent = fmt(p.eye);
        document.getElementById('direction').textContent = fmt(p.direction);
        document.getElementById('up').textContent = fmt(p.up);
        document.getElementById('scale').textContent = p.scale.toFixed(3);
    };
    ws.onclose = function() {
        status.textContent = 'disconnected';
        status.className = 'disconnected';
        setTimeout(connect, 3000);
    };
}
connect();
</script>
</body>
</html>
`
