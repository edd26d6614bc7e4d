package api

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/neonsnake/engine/rules"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

const (
	sendBuffer = 16
	writeWait  = time.Second
)

// Message types sent to spectators.
const (
	MessageHello    = "hello"
	MessageFrame    = "frame"
	MessageGameOver = "game_over"
)

// Message is the JSON envelope streamed over the socket and returned by
// /state.
type Message struct {
	Type    string       `json:"type"`
	Game    string       `json:"game,omitempty"`
	Frame   *rules.Frame `json:"frame,omitempty"`
	Score   int          `json:"score"`
	Elapsed int          `json:"elapsed"`
}

// Hub fans game output out to websocket spectators. It implements
// worker.Sink. Frames over the rate limit are dropped; game over messages are
// always delivered.
type Hub struct {
	mu      sync.Mutex
	game    string
	last    *Message
	clients map[*client]struct{}
	limiter *rate.Limiter
}

type client struct {
	conn *websocket.Conn
	send chan []byte
}

// NewHub creates a hub broadcasting at most r frames per second with the
// given burst.
func NewHub(r rate.Limit, burst int) *Hub {
	return &Hub{
		clients: map[*client]struct{}{},
		limiter: rate.NewLimiter(r, burst),
	}
}

// Reset starts a new game, forgetting the last state.
func (h *Hub) Reset(gameID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.game = gameID
	h.last = nil
}

// Last returns the most recent message, or nil before the first frame.
func (h *Hub) Last() *Message {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.last == nil {
		return nil
	}
	m := *h.last
	return &m
}

// Render implements worker.Sink.
func (h *Hub) Render(frame rules.Frame) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.last = &Message{
		Type:    MessageFrame,
		Game:    h.game,
		Frame:   &frame,
		Score:   frame.Score,
		Elapsed: frame.Elapsed,
	}
	if !h.limiter.Allow() {
		return
	}
	h.broadcast(h.last)
}

// Tick implements worker.Sink.
func (h *Hub) Tick(score, elapsed int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.last != nil {
		h.last.Score = score
		h.last.Elapsed = elapsed
	}
}

// GameOver implements worker.Sink.
func (h *Hub) GameOver(score, elapsed int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.last = &Message{
		Type:    MessageGameOver,
		Game:    h.game,
		Score:   score,
		Elapsed: elapsed,
	}
	h.broadcast(h.last)
}

// Close disconnects every spectator.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		h.remove(c)
	}
}

// Clients returns the number of connected spectators.
func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// broadcast must be called with h.mu held.
func (h *Hub) broadcast(m *Message) {
	data, err := json.Marshal(m)
	if err != nil {
		log.WithError(err).Error("unable to marshal spectator message")
		return
	}
	for c := range h.clients {
		select {
		case c.send <- data:
		default:
			log.WithField("game", h.game).Warn("spectator too slow, dropping message")
		}
	}
}

func (h *Hub) add(conn *websocket.Conn) *client {
	c := &client{conn: conn, send: make(chan []byte, sendBuffer)}
	go c.writePump()

	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[c] = struct{}{}
	hello, _ := json.Marshal(&Message{Type: MessageHello, Game: h.game})
	c.send <- hello
	if h.last != nil {
		if data, err := json.Marshal(h.last); err == nil {
			c.send <- data
		}
	}
	return c
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.remove(c)
}

// remove must be called with h.mu held.
func (h *Hub) remove(c *client) {
	if _, ok := h.clients[c]; !ok {
		return
	}
	delete(h.clients, c)
	close(c.send)
}

func (c *client) writePump() {
	defer func() {
		if err := c.conn.Close(); err != nil {
			log.WithError(err).Debug("closing spectator connection")
		}
	}()
	for data := range c.send {
		if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
			return
		}
		if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
			log.WithError(err).Debug("spectator write failed")
			return
		}
	}
	_ = c.conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}
