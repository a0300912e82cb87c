package live

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/DhavalSuthar-24/livescore/internal/scoring"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Spectators connect from any origin; CORS is handled for the REST API only.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// ScoreboardSource supplies the current scoreboard sent to a spectator on connect.
type ScoreboardSource interface {
	Scoreboard(ctx context.Context, matchID string) (scoring.Scoreboard, error)
}

// Handler upgrades spectator requests to websocket connections.
type Handler struct {
	hub    *Hub
	source ScoreboardSource
	ctx    context.Context
}

// NewHandler ties connections to ctx rather than the request, which ends at upgrade. source may be nil.
func NewHandler(ctx context.Context, hub *Hub, source ScoreboardSource) *Handler {
	return &Handler{hub: hub, source: source, ctx: ctx}
}

// ServeWS godoc
// @Summary Live score feed over websocket
// @Tags Live
// @Param match_id query string false "Only receive updates for this match"
// @Router /ws [get]
func (h *Handler) ServeWS(c *gin.Context) {
	var filter SubscriptionFilter
	matchID := c.Query("match_id")
	if matchID != "" {
		filter.Matches = []string{matchID}
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("WebSocket upgrade error: %v", err)
		return
	}

	client := NewClient(uuid.NewString(), conn, h.hub, filter)
	h.hub.Register(client)

	go client.WritePump(h.ctx)
	go client.ReadPump(h.ctx)

	if matchID != "" && h.source != nil {
		h.sendSnapshot(c.Request.Context(), client, matchID)
	}
}

func (h *Handler) sendSnapshot(ctx context.Context, client *Client, matchID string) {
	sb, err := h.source.Scoreboard(ctx, matchID)
	if err != nil {
		client.sendError("snapshot_unavailable", err.Error())
		return
	}
	client.TrySend(ServerMessage{
		Type: MessageTypeScoreUpdate,
		Payload: Update{
			MatchID:    sb.MatchID,
			Status:     sb.Status,
			Scoreboard: sb,
			UpdatedAt:  time.Now().UTC(),
		},
		Timestamp: time.Now(),
	})
}

// ClientCount is reported by the health endpoint.
func (h *Handler) ClientCount() int {
	return h.hub.GetClientCount()
}
