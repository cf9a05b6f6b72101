package realtime

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"vet-clinic/internal/platform/logger"
	"vet-clinic/internal/platform/metrics"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10

	// Buffer por conexión; un cliente lento que lo llena se desconecta.
	sendBuffer = 32
)

var ErrClosed = errors.New("hub closed")

// Envelope es lo que recibe el browser en cada mensaje.
type Envelope struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

type client struct {
	id   string
	conn *websocket.Conn
	send chan []byte
}

// Hub mantiene las conexiones websocket del proceso y les reparte los broadcasts.
// Solo server -> client: lo que manda el browser se descarta.
type Hub struct {
	mu      sync.RWMutex
	clients map[*client]struct{}
	closed  bool

	upgrader websocket.Upgrader
	log      logger.Logger
}

type HubOptions struct {
	Logger logger.Logger
	// CheckOrigin nil = acepta cualquier origin (dev).
	CheckOrigin func(r *http.Request) bool
}

func NewHub(opts HubOptions) *Hub {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	checkOrigin := opts.CheckOrigin
	if checkOrigin == nil {
		checkOrigin = func(*http.Request) bool { return true }
	}
	return &Hub{
		clients: make(map[*client]struct{}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     checkOrigin,
		},
		log: log.With(map[string]any{"component": "realtime_hub"}),
	}
}

func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade ya respondió con el error HTTP.
		h.log.Warn("websocket upgrade failed", map[string]any{"error": err})
		return
	}

	c := &client{
		id:   uuid.NewString(),
		conn: conn,
		send: make(chan []byte, sendBuffer),
	}
	if !h.register(c) {
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "shutting down"),
			time.Now().Add(writeWait))
		_ = conn.Close()
		return
	}

	go h.writePump(c)
	h.readPump(c)
}

// Broadcast manda event/payload a todas las conexiones locales.
// Sin conexiones no es error: el push es best-effort.
func (h *Hub) Broadcast(ctx context.Context, event string, payload any) error {
	msg, err := json.Marshal(Envelope{Event: event, Data: payload})
	if err != nil {
		metrics.RealtimePushes.WithLabelValues("error").Inc()
		return err
	}
	return h.broadcastRaw(ctx, msg)
}

func (h *Hub) broadcastRaw(ctx context.Context, msg []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	h.mu.RLock()
	if h.closed {
		h.mu.RUnlock()
		return ErrClosed
	}
	var slow []*client
	delivered := 0
	for c := range h.clients {
		select {
		case c.send <- msg:
			delivered++
		default:
			slow = append(slow, c)
		}
	}
	h.mu.RUnlock()

	for _, c := range slow {
		h.log.Warn("dropping slow websocket client", map[string]any{"client_id": c.id})
		h.unregister(c)
	}

	if delivered == 0 {
		metrics.RealtimePushes.WithLabelValues("no_clients").Inc()
		return nil
	}
	metrics.RealtimePushes.WithLabelValues("sent").Add(float64(delivered))
	return nil
}

// Clients devuelve cuántas conexiones hay abiertas.
func (h *Hub) Clients() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Close cierra todas las conexiones; Broadcast posterior devuelve ErrClosed.
func (h *Hub) Close() {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return
	}
	h.closed = true
	clients := h.clients
	h.clients = make(map[*client]struct{})
	h.mu.Unlock()

	for c := range clients {
		close(c.send)
		metrics.RealtimeConnections.Dec()
	}
}

func (h *Hub) register(c *client) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return false
	}
	h.clients[c] = struct{}{}
	metrics.RealtimeConnections.Inc()
	h.log.Debug("websocket client connected", map[string]any{"client_id": c.id})
	return true
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[c]; !ok {
		return
	}
	delete(h.clients, c)
	close(c.send)
	metrics.RealtimeConnections.Dec()
	h.log.Debug("websocket client disconnected", map[string]any{"client_id": c.id})
}

func (h *Hub) readPump(c *client) {
	defer func() {
		h.unregister(c)
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(512)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
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
		_ = c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
