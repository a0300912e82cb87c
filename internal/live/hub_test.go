package live

import (
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DhavalSuthar-24/livescore/internal/scoring"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSource map[string]scoring.Scoreboard

func (s stubSource) Scoreboard(_ context.Context, id string) (scoring.Scoreboard, error) {
	sb, ok := s[id]
	if !ok {
		return scoring.Scoreboard{}, errors.New("match " + id + " not found")
	}
	return sb, nil
}

func startLiveServer(t *testing.T, source ScoreboardSource) (*Hub, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	h := NewHub()
	go h.Run(ctx)

	router := gin.New()
	router.GET("/ws", NewHandler(ctx, h, source).ServeWS)
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return h, "ws" + strings.TrimPrefix(server.URL, "http") + "/ws"
}

func dial(t *testing.T, url string) *websocket.Conn {
	t.Helper()
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readMessage(t *testing.T, conn *websocket.Conn) (string, json.RawMessage) {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(3*time.Second)))
	var msg struct {
		Type    string          `json:"type"`
		Payload json.RawMessage `json:"payload"`
	}
	require.NoError(t, conn.ReadJSON(&msg))
	return msg.Type, msg.Payload
}

func readUpdate(t *testing.T, conn *websocket.Conn) Update {
	t.Helper()
	typ, payload := readMessage(t, conn)
	require.Equal(t, MessageTypeScoreUpdate, typ)
	var u Update
	require.NoError(t, json.Unmarshal(payload, &u))
	return u
}

func waitForClients(t *testing.T, h *Hub, n int) {
	t.Helper()
	require.Eventually(t, func() bool { return h.GetClientCount() == n }, 3*time.Second, 10*time.Millisecond)
}

func TestHub_ConnectAndDisconnect(t *testing.T) {
	h, url := startLiveServer(t, nil)

	conn := dial(t, url)
	waitForClients(t, h, 1)

	conn.Close()
	waitForClients(t, h, 0)
}

func TestHub_FiltersByMatch(t *testing.T) {
	h, url := startLiveServer(t, nil)

	everything := dial(t, url)
	onlyM2 := dial(t, url+"?match_id=m2")
	waitForClients(t, h, 2)

	h.Broadcast(NewUpdate(testMatch(t, "m1")))
	h.Broadcast(NewUpdate(testMatch(t, "m2")))

	assert.Equal(t, "m1", readUpdate(t, everything).MatchID)
	assert.Equal(t, "m2", readUpdate(t, everything).MatchID)
	assert.Equal(t, "m2", readUpdate(t, onlyM2).MatchID)
}

func TestHub_SubscribeUnsubscribeAndHeartbeat(t *testing.T) {
	h, url := startLiveServer(t, nil)
	conn := dial(t, url)
	waitForClients(t, h, 1)

	require.NoError(t, conn.WriteJSON(ClientMessage{Type: MessageTypeSubscribe, Payload: SubscriptionFilter{Matches: []string{"m9"}}}))
	require.NoError(t, conn.WriteJSON(ClientMessage{Type: MessageTypeHeartbeat}))
	typ, payload := readMessage(t, conn)
	require.Equal(t, MessageTypeHeartbeat, typ)
	var stats ConnectionStats
	require.NoError(t, json.Unmarshal(payload, &stats))
	assert.Equal(t, []string{"m9"}, stats.Matches)
	assert.EqualValues(t, 2, stats.MessagesReceived)

	h.Broadcast(NewUpdate(testMatch(t, "m1")))
	h.Broadcast(NewUpdate(testMatch(t, "m9")))
	assert.Equal(t, "m9", readUpdate(t, conn).MatchID)

	require.NoError(t, conn.WriteJSON(ClientMessage{Type: MessageTypeUnsubscribe}))
	require.NoError(t, conn.WriteJSON(ClientMessage{Type: MessageTypeHeartbeat}))
	typ, payload = readMessage(t, conn)
	require.Equal(t, MessageTypeHeartbeat, typ)
	var after ConnectionStats
	require.NoError(t, json.Unmarshal(payload, &after))
	assert.Empty(t, after.Matches)
}

func TestHub_UnknownMessageType(t *testing.T) {
	h, url := startLiveServer(t, nil)
	conn := dial(t, url)
	waitForClients(t, h, 1)

	require.NoError(t, conn.WriteJSON(map[string]string{"type": "shout"}))
	typ, payload := readMessage(t, conn)
	require.Equal(t, MessageTypeError, typ)
	var e ErrorMessage
	require.NoError(t, json.Unmarshal(payload, &e))
	assert.Equal(t, "unknown_message_type", e.Code)
}

func TestHandler_SendsSnapshotOnConnect(t *testing.T) {
	sb := scoring.NewScoreboard(testMatch(t, "m1"))
	_, url := startLiveServer(t, stubSource{"m1": sb})

	u := readUpdate(t, dial(t, url+"?match_id=m1"))
	assert.Equal(t, "m1", u.MatchID)
	assert.Equal(t, scoring.StatusLive, u.Status)
	assert.Equal(t, sb.Innings, u.Scoreboard.Innings)

	typ, _ := readMessage(t, dial(t, url+"?match_id=nope"))
	assert.Equal(t, MessageTypeError, typ)
}

func TestHub_ShutdownClosesClients(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	h := NewHub()
	stopped := make(chan struct{})
	go func() {
		h.Run(ctx)
		close(stopped)
	}()

	c := NewClient("c1", nil, h, SubscriptionFilter{})
	h.Register(c)
	waitForClients(t, h, 1)

	cancel()
	<-stopped
	assert.Zero(t, h.GetClientCount())
	_, open := <-c.send
	assert.False(t, open)
	assert.False(t, c.TrySend(ServerMessage{Type: MessageTypeHeartbeat}))

	// late calls return instead of blocking on a stopped hub
	h.Unregister(c)
	h.Register(NewClient("c2", nil, h, SubscriptionFilter{}))
}

func TestClient_TrySendFullBuffer(t *testing.T) {
	c := NewClient("c1", nil, NewHub(), SubscriptionFilter{})
	for i := 0; i < sendBufferSize; i++ {
		require.True(t, c.TrySend(ServerMessage{Type: MessageTypeHeartbeat}))
	}
	assert.False(t, c.TrySend(ServerMessage{Type: MessageTypeHeartbeat}))
}
