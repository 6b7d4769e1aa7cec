package site

import (
	"log"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Hub fans theme changes out to connected pages.
type Hub struct {
	mu      sync.Mutex
	clients map[string]*hubClient
}

type hubClient struct {
	conn *websocket.Conn
	// gorilla connections allow one concurrent writer.
	wmu sync.Mutex
}

func NewHub() *Hub {
	return &Hub{clients: make(map[string]*hubClient)}
}

// Len returns the number of connected clients.
func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Broadcast sends msg as JSON to every client. Clients that fail to receive
// it are dropped.
func (h *Hub) Broadcast(msg any) {
	h.mu.Lock()
	targets := make(map[string]*hubClient, len(h.clients))
	for id, c := range h.clients {
		targets[id] = c
	}
	h.mu.Unlock()

	for id, c := range targets {
		c.wmu.Lock()
		err := c.conn.WriteJSON(msg)
		c.wmu.Unlock()
		if err != nil {
			log.Printf("site: websocket write to %s: %v", id, err)
			h.remove(id)
		}
	}
}

// serve upgrades the request and holds the connection until the peer leaves.
// The hello message is built and sent after registration, so the client
// never misses a change.
func (h *Hub) serve(w http.ResponseWriter, r *http.Request, hello func() any) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("site: websocket upgrade: %v", err)
		return
	}

	id := uuid.NewString()
	c := &hubClient{conn: conn}

	h.mu.Lock()
	h.clients[id] = c
	h.mu.Unlock()
	defer h.remove(id)

	c.wmu.Lock()
	err = conn.WriteJSON(hello())
	c.wmu.Unlock()
	if err != nil {
		return
	}

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("site: websocket read: %v", err)
			}
			return
		}
	}
}

func (h *Hub) remove(id string) {
	h.mu.Lock()
	c, ok := h.clients[id]
	delete(h.clients, id)
	h.mu.Unlock()
	if ok {
		c.conn.Close()
	}
}

// Close disconnects every client.
func (h *Hub) Close() {
	h.mu.Lock()
	ids := make([]string, 0, len(h.clients))
	for id := range h.clients {
		ids = append(ids, id)
	}
	h.mu.Unlock()

	for _, id := range ids {
		h.remove(id)
	}
}
