package live

import (
	"time"

	"github.com/DhavalSuthar-24/livescore/internal/scoring"
)

// Message types for WebSocket communication
const (
	MessageTypeScoreUpdate = "score_update"
	MessageTypeSubscribe   = "subscribe"
	MessageTypeUnsubscribe = "unsubscribe"
	MessageTypeHeartbeat   = "heartbeat"
	MessageTypeError       = "error"
)

// ClientMessage is a message from a spectator to the server.
type ClientMessage struct {
	Type    string             `json:"type"`
	Payload SubscriptionFilter `json:"payload,omitempty"`
}

// ServerMessage is a message from the server to a spectator.
type ServerMessage struct {
	Type      string      `json:"type"`
	Payload   interface{} `json:"payload,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// Update is what travels over the stream and the socket after every scoring action.
type Update struct {
	MatchID    string              `json:"match_id"`
	Status     scoring.MatchStatus `json:"status"`
	Scoreboard scoring.Scoreboard  `json:"scoreboard"`
	UpdatedAt  time.Time           `json:"updated_at"`
}

// NewUpdate projects a match into a broadcastable update.
func NewUpdate(m scoring.Match) Update {
	return Update{
		MatchID:    m.ID,
		Status:     m.Status,
		Scoreboard: scoring.NewScoreboard(m),
		UpdatedAt:  time.Now().UTC(),
	}
}

// SubscriptionFilter limits a spectator to some matches. Empty means every match.
type SubscriptionFilter struct {
	Matches []string `json:"matches,omitempty"`
}

// ConnectionStats is returned in reply to a heartbeat.
type ConnectionStats struct {
	ClientID         string    `json:"client_id"`
	ConnectedAt      time.Time `json:"connected_at"`
	MessagesSent     int64     `json:"messages_sent"`
	MessagesReceived int64     `json:"messages_received"`
	Matches          []string  `json:"matches,omitempty"`
}

type ErrorMessage struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
