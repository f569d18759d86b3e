package handler

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

var progressUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(_ *http.Request) bool {
		// The plugin host runs from an embedded webview with an arbitrary
		// origin.
		return true
	},
}

type progressEvent struct {
	RunID string `json:"run_id"`
	Stage string `json:"stage"`
}

// wsClient serializes writes: the hub and the ping loop both write to
// the same connection.
type wsClient struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (c *wsClient) writeJSON(v any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteJSON(v)
}

func (c *wsClient) ping() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteMessage(websocket.PingMessage, nil)
}

// progressHub fans pipeline stage events out to websocket subscribers,
// keyed by run ID. Subscribing with an empty ID receives every event.
type progressHub struct {
	mu   sync.RWMutex
	subs map[string]map[*wsClient]bool
}

func newProgressHub() *progressHub {
	return &progressHub{subs: map[string]map[*wsClient]bool{}}
}

func (h *progressHub) subscribe(runID string, c *wsClient) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.subs[runID] == nil {
		h.subs[runID] = map[*wsClient]bool{}
	}
	h.subs[runID][c] = true
}

func (h *progressHub) unsubscribe(runID string, c *wsClient) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.subs[runID], c)
	if len(h.subs[runID]) == 0 {
		delete(h.subs, runID)
	}
}

func (h *progressHub) publish(runID, stage string) {
	event := progressEvent{RunID: runID, Stage: stage}
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.subs[runID] {
		_ = c.writeJSON(event)
	}
	if runID != "" {
		for c := range h.subs[""] {
			_ = c.writeJSON(event)
		}
	}
}

// HandleProgressWS upgrades /api/progress/{runID} and streams stage
// events until the client disconnects.
func (h *Handler) HandleProgressWS(w http.ResponseWriter, r *http.Request) {
	runID := strings.TrimPrefix(r.URL.Path, "/api/progress/")
	conn, err := progressUpgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	client := &wsClient{conn: conn}
	h.hub.subscribe(runID, client)
	defer func() {
		h.hub.unsubscribe(runID, client)
		_ = conn.Close()
	}()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			if err := client.ping(); err != nil {
				return
			}
		}
	}
}
