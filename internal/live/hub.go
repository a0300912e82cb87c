package live

import (
	"context"
	"log"
	"sync"
	"time"
)

const broadcastBufferSize = 1000

// Hub keeps the connected spectators and fans score updates out to them.
type Hub struct {
	clients   map[*Client]bool
	clientsMu sync.RWMutex

	broadcast  chan Update
	register   chan *Client
	unregister chan *Client

	// closed once Run returns so late Register/Unregister calls never block
	done chan struct{}
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan Update, broadcastBufferSize),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
	}
}

// Run serves register, unregister and broadcast requests until ctx is cancelled.
func (h *Hub) Run(ctx context.Context) {
	log.Println("Live hub started")
	defer close(h.done)

	for {
		select {
		case <-ctx.Done():
			h.shutdown()
			return

		case c := <-h.register:
			h.registerClient(c)

		case c := <-h.unregister:
			h.unregisterClient(c)

		case update := <-h.broadcast:
			h.broadcastUpdate(update)
		}
	}
}

func (h *Hub) Register(c *Client) {
	select {
	case h.register <- c:
	case <-h.done:
		c.close()
	}
}

func (h *Hub) Unregister(c *Client) {
	select {
	case h.unregister <- c:
	case <-h.done:
	}
}

// Broadcast queues an update for delivery. It drops the update when the queue is full.
func (h *Hub) Broadcast(update Update) {
	select {
	case h.broadcast <- update:
	default:
		log.Printf("Live broadcast buffer full, dropping update for match %s", update.MatchID)
	}
}

// GetClientCount returns the number of connected spectators.
func (h *Hub) GetClientCount() int {
	h.clientsMu.RLock()
	defer h.clientsMu.RUnlock()
	return len(h.clients)
}

func (h *Hub) registerClient(c *Client) {
	h.clientsMu.Lock()
	defer h.clientsMu.Unlock()
	h.clients[c] = true
	log.Printf("ws client %s connected (total: %d)", c.ID, len(h.clients))
}

func (h *Hub) unregisterClient(c *Client) {
	h.clientsMu.Lock()
	defer h.clientsMu.Unlock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		c.close()
		log.Printf("ws client %s disconnected (total: %d)", c.ID, len(h.clients))
	}
}

func (h *Hub) broadcastUpdate(update Update) {
	h.clientsMu.RLock()
	clients := make([]*Client, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	h.clientsMu.RUnlock()

	message := ServerMessage{
		Type:      MessageTypeScoreUpdate,
		Payload:   update,
		Timestamp: time.Now(),
	}

	dropped := 0
	for _, c := range clients {
		if !c.MatchesFilter(update.MatchID) {
			continue
		}
		if !c.TrySend(message) {
			dropped++
			// too slow to keep up with the match, disconnect it
			go h.Unregister(c)
		}
	}
	if dropped > 0 {
		log.Printf("Live update for match %s dropped for %d slow clients", update.MatchID, dropped)
	}
}

func (h *Hub) shutdown() {
	h.clientsMu.Lock()
	defer h.clientsMu.Unlock()

	log.Printf("Shutting down live hub (%d active clients)", len(h.clients))
	for c := range h.clients {
		c.close()
		delete(h.clients, c)
	}
}
