package main

import (
	"net/http"

	"github.com/Seednode/quizbox/game"
	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
)

// ScoreboardMessage is pushed to every connected client whenever a
// player registers or a score changes, and once on connect.
type ScoreboardMessage struct {
	Type    string        `json:"type"` // "scoreboard"
	Players []game.Player `json:"players"`
}

type scoreboardClient struct {
	conn *websocket.Conn
	send chan any
}

// Hub owns the set of scoreboard watchers. All client bookkeeping
// happens on the run goroutine; handlers only talk to it over channels.
type Hub struct {
	svc *game.Service

	clients  map[*scoreboardClient]bool
	register chan *scoreboardClient
	unreg    chan *scoreboardClient
	updates  chan game.Player
}

func newHub(svc *game.Service) *Hub {
	return &Hub{
		svc:      svc,
		clients:  make(map[*scoreboardClient]bool),
		register: make(chan *scoreboardClient),
		unreg:    make(chan *scoreboardClient),
		updates:  make(chan game.Player, 64),
	}
}

// notifyScore is registered as the game service's change callback.
func (h *Hub) notifyScore(p game.Player) {
	h.updates <- p
}

func (h *Hub) run() {
	for {
		select {
		case c := <-h.register:
			h.clients[c] = true

			// New watchers get the current board immediately.
			select {
			case c.send <- h.snapshot():
			default:
				delete(h.clients, c)
				close(c.send)
			}

		case c := <-h.unreg:
			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				close(c.send)
			}

		case <-h.updates:
			h.broadcast(h.snapshot())
		}
	}
}

func (h *Hub) snapshot() ScoreboardMessage {
	return ScoreboardMessage{
		Type:    "scoreboard",
		Players: h.svc.ListScores(),
	}
}

func (h *Hub) broadcast(msg ScoreboardMessage) {
	for client := range h.clients {
		select {
		case client.send <- msg:
		default:
			delete(h.clients, client)
			close(client.send)
		}
	}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

func serveScoreboard(cfg *Config, hub *Hub) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logf(cfg, "ERROR: websocket upgrade from %s: %v", realIP(r), err)
			return
		}

		client := &scoreboardClient{
			conn: conn,
			send: make(chan any, 8),
		}

		hub.register <- client

		go client.writePump()
		client.readPump(hub)
	}
}

// readPump discards inbound frames; the scoreboard stream is one-way.
// It exists to detect disconnects and unregister the client.
func (c *scoreboardClient) readPump(h *Hub) {
	defer func() {
		h.unreg <- c
		_ = c.conn.Close()
	}()

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (c *scoreboardClient) writePump() {
	defer c.conn.Close()

	for msg := range c.send {
		if err := c.conn.WriteJSON(msg); err != nil {
			return
		}
	}
}
