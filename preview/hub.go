// Package preview streams session snapshots to browsers over websockets so the
// cabinet can be watched without the panels attached.
package preview

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/plus3/dotris/display"
	"github.com/plus3/dotris/engine"
	"github.com/plus3/dotris/session"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 30 * time.Second
	sendBuffer = 4
)

// Message is one broadcast frame.
type Message struct {
	Tick    uint64             `json:"tick"`
	Players []session.Snapshot `json:"players"`
	Frame   []string           `json:"frame,omitempty"`
}

type client struct {
	conn *websocket.Conn
	send chan []byte
}

// Hub fans messages out to every connected viewer. Slow viewers drop messages rather
// than hold up the tick.
type Hub struct {
	Source display.SnapshotSource
	Frame  *display.Frame
	// Every broadcasts on one tick out of Every; zero or one means every tick.
	Every uint64

	upgrader websocket.Upgrader
	mu       sync.RWMutex
	clients  map[*client]struct{}
}

func NewHub(source display.SnapshotSource, frame *display.Frame) *Hub {
	return &Hub{
		Source: source,
		Frame:  frame,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
		},
		clients: make(map[*client]struct{}),
	}
}

// Clients returns the number of connected viewers.
func (h *Hub) Clients() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Execute encodes the tick's snapshots and broadcasts them.
func (h *Hub) Execute(frame *engine.UpdateFrame) {
	if h.Every > 1 && frame.Tick%h.Every != 0 {
		return
	}
	if h.Clients() == 0 {
		return
	}

	msg := Message{Tick: frame.Tick, Players: h.Source.Snapshots()}
	if h.Frame != nil {
		msg.Frame = h.Frame.Rows()
	}
	data, err := json.Marshal(msg)
	if err != nil {
		log.Printf("[PREVIEW] Encode error: %v", err)
		return
	}
	h.Broadcast(data)
}

// Broadcast queues data for every viewer.
func (h *Hub) Broadcast(data []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients {
		select {
		case c.send <- data:
		default:
		}
	}
}

// ServeWS upgrades the request and registers the viewer.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[PREVIEW] Upgrade error: %v", err)
		return
	}

	c := &client{conn: conn, send: make(chan []byte, sendBuffer)}
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()
	log.Printf("[PREVIEW] Viewer connected from %s", r.RemoteAddr)

	go h.writePump(c)
	go h.readPump(c)
}

func (h *Hub) remove(c *client) {
	h.mu.Lock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
	h.mu.Unlock()
}

// readPump discards incoming messages and notices when the viewer goes away.
func (h *Hub) readPump(c *client) {
	defer func() {
		h.remove(c)
		c.conn.Close()
	}()

	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) writePump(c *client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case data, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// Close disconnects every viewer.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		delete(h.clients, c)
		close(c.send)
	}
}
