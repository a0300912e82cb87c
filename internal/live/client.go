package live

import (
	"context"
	"fmt"
	"log"
	"slices"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// Send pings to peer with this period (must be less than pongWait)
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer
	maxMessageSize = 512

	// Buffer size for outbound messages
	sendBufferSize = 256
)

// Client is one spectator connection.
type Client struct {
	ID   string
	conn *websocket.Conn
	send chan ServerMessage
	hub  *Hub

	filter   SubscriptionFilter
	filterMu sync.RWMutex

	// guards send against a close racing a reply from the read pump
	sendMu sync.Mutex
	closed bool

	connectedAt      time.Time
	messagesSent     int64
	messagesReceived int64
	statsMu          sync.Mutex
}

// NewClient creates a client that starts with filter as its subscription.
func NewClient(id string, conn *websocket.Conn, hub *Hub, filter SubscriptionFilter) *Client {
	return &Client{
		ID:          id,
		conn:        conn,
		send:        make(chan ServerMessage, sendBufferSize),
		hub:         hub,
		filter:      filter,
		connectedAt: time.Now(),
	}
}

// ReadPump reads subscription changes and heartbeats until the peer goes away.
func (c *Client) ReadPump(ctx context.Context) {
	defer func() {
		c.hub.Unregister(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		select {
		case <-ctx.Done():
			return
		default:
			var msg ClientMessage
			if err := c.conn.ReadJSON(&msg); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
					log.Printf("ws client %s unexpected close: %v", c.ID, err)
				}
				return
			}

			c.statsMu.Lock()
			c.messagesReceived++
			c.statsMu.Unlock()
			c.handleClientMessage(msg)
		}
	}
}

// WritePump writes queued messages and keeps the connection alive with pings.
func (c *Client) WritePump(ctx context.Context) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case <-ctx.Done():
			c.conn.WriteMessage(websocket.CloseMessage, []byte{})
			return

		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// Hub closed the channel
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteJSON(message); err != nil {
				log.Printf("ws client %s write error: %v", c.ID, err)
				return
			}
			c.statsMu.Lock()
			c.messagesSent++
			c.statsMu.Unlock()

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// TrySend queues msg without blocking. It returns false when the buffer is full or the client is closed.
func (c *Client) TrySend(msg ServerMessage) bool {
	c.sendMu.Lock()
	defer c.sendMu.Unlock()
	if c.closed {
		return false
	}
	select {
	case c.send <- msg:
		return true
	default:
		return false
	}
}

func (c *Client) close() {
	c.sendMu.Lock()
	defer c.sendMu.Unlock()
	if !c.closed {
		c.closed = true
		close(c.send)
	}
}

func (c *Client) SetFilter(filter SubscriptionFilter) {
	c.filterMu.Lock()
	defer c.filterMu.Unlock()
	c.filter = filter
}

func (c *Client) GetFilter() SubscriptionFilter {
	c.filterMu.RLock()
	defer c.filterMu.RUnlock()
	return c.filter
}

// MatchesFilter reports whether the client wants updates for matchID.
func (c *Client) MatchesFilter(matchID string) bool {
	c.filterMu.RLock()
	defer c.filterMu.RUnlock()
	if len(c.filter.Matches) == 0 {
		return true
	}
	return slices.Contains(c.filter.Matches, matchID)
}

func (c *Client) stats() ConnectionStats {
	c.statsMu.Lock()
	defer c.statsMu.Unlock()
	return ConnectionStats{
		ClientID:         c.ID,
		ConnectedAt:      c.connectedAt,
		MessagesSent:     c.messagesSent,
		MessagesReceived: c.messagesReceived,
		Matches:          c.GetFilter().Matches,
	}
}

func (c *Client) handleClientMessage(msg ClientMessage) {
	switch msg.Type {
	case MessageTypeSubscribe:
		c.SetFilter(msg.Payload)
		log.Printf("ws client %s subscribed: matches=%v", c.ID, msg.Payload.Matches)
	case MessageTypeUnsubscribe:
		c.SetFilter(SubscriptionFilter{})
	case MessageTypeHeartbeat:
		c.TrySend(ServerMessage{Type: MessageTypeHeartbeat, Payload: c.stats(), Timestamp: time.Now()})
	default:
		c.sendError("unknown_message_type", fmt.Sprintf("unknown message type: %s", msg.Type))
	}
}

func (c *Client) sendError(code, message string) {
	c.TrySend(ServerMessage{
		Type:      MessageTypeError,
		Payload:   ErrorMessage{Code: code, Message: message},
		Timestamp: time.Now(),
	})
}
