package match

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DhavalSuthar-24/livescore/internal/scoring"
	"github.com/DhavalSuthar-24/livescore/pkg/token"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const jwtSecret = "test-secret"

type envelope struct {
	Status     string          `json:"status"`
	Message    string          `json:"message"`
	ErrorCode  string          `json:"error_code"`
	Data       json.RawMessage `json:"data"`
	Errors     json.RawMessage `json:"errors"`
	Pagination struct {
		TotalItems int64 `json:"total_items"`
	} `json:"pagination"`
}

type matchEnvelope struct {
	Match      scoring.Match      `json:"match"`
	Scoreboard scoring.Scoreboard `json:"scoreboard"`
}

func newTestRouter(t *testing.T) (*gin.Engine, *Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	svc, _ := newTestService(t, ServiceConfig{DefaultMaxOvers: 20, RequireNewBatsman: true})
	router := gin.New()
	MatchRoutes(router.Group("/api"), svc, jwtSecret)
	return router, svc
}

func bearer(t *testing.T, userID string, roles ...string) string {
	t.Helper()
	signed, err := token.GenerateJWT(userID, roles, jwtSecret, time.Minute)
	require.NoError(t, err)
	return "Bearer " + signed
}

func do(t *testing.T, router *gin.Engine, method, path, auth string, body interface{}) (int, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return w.Code, env
}

func TestMatchController_ScoringFlow(t *testing.T) {
	router, _ := newTestRouter(t)
	admin := bearer(t, "admin-1", "ADMIN")
	scorer := bearer(t, "scorer-1", "SCORER")

	code, env := do(t, router, http.MethodPost, "/api/admin/matches", admin, gin.H{
		"team_a_id": teamAID, "team_b_id": teamBID, "max_overs": 5, "venue": "Motera", "scorer_id": "scorer-1",
	})
	require.Equal(t, http.StatusCreated, code, env.Message)
	assert.Equal(t, "Match scheduled successfully", env.Message)
	var created matchEnvelope
	require.NoError(t, json.Unmarshal(env.Data, &created))
	id := created.Match.ID
	assert.Equal(t, 5, created.Match.MaxOvers)

	code, env = do(t, router, http.MethodPost, "/api/matches/"+id+"/innings", scorer, gin.H{"batting_team_id": teamAID})
	require.Equal(t, http.StatusOK, code, env.Message)

	code, env = do(t, router, http.MethodPut, "/api/matches/"+id+"/players", scorer, gin.H{
		"striker_id": "S1", "non_striker_id": "S2", "current_bowler_id": "B1",
	})
	require.Equal(t, http.StatusOK, code, env.Message)

	code, env = do(t, router, http.MethodPost, "/api/matches/"+id+"/balls", scorer, gin.H{"runs": 4})
	require.Equal(t, http.StatusOK, code, env.Message)
	var scored matchEnvelope
	require.NoError(t, json.Unmarshal(env.Data, &scored))
	assert.Equal(t, 4, scored.Match.Innings[0].Runs)
	assert.Equal(t, "4/0", scored.Scoreboard.Innings[0].Score)

	code, env = do(t, router, http.MethodPost, "/api/matches/"+id+"/balls", scorer, gin.H{"runs": 0, "is_wicket": true, "wicket_type": "caught"})
	require.Equal(t, http.StatusOK, code, env.Message)

	code, env = do(t, router, http.MethodPost, "/api/matches/"+id+"/balls", scorer, gin.H{"runs": 1})
	assert.Equal(t, http.StatusUnprocessableEntity, code)
	assert.Equal(t, "UNASSIGNED_PLAYERS", env.ErrorCode)

	code, env = do(t, router, http.MethodGet, "/api/matches/"+id+"/scoreboard", "", nil)
	require.Equal(t, http.StatusOK, code)
	var sb scoring.Scoreboard
	require.NoError(t, json.Unmarshal(env.Data, &sb))
	assert.Equal(t, "4/1", sb.Innings[0].Score)
	assert.True(t, sb.AwaitingBatsman)

	code, env = do(t, router, http.MethodPost, "/api/matches/"+id+"/complete", scorer, nil)
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "INVALID_STATE", env.ErrorCode)

	code, _ = do(t, router, http.MethodPost, "/api/matches/"+id+"/innings/end", scorer, nil)
	require.Equal(t, http.StatusOK, code)
	code, env = do(t, router, http.MethodPost, "/api/matches/"+id+"/complete", scorer, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Ahmedabad won by 4 runs", env.Message)
}

func TestMatchController_PublicReads(t *testing.T) {
	router, svc := newTestRouter(t)
	m := startedMatch(t, svc, 0)

	code, env := do(t, router, http.MethodGet, "/api/matches?status=LIVE", "", nil)
	require.Equal(t, http.StatusOK, code)
	assert.EqualValues(t, 1, env.Pagination.TotalItems)

	code, _ = do(t, router, http.MethodGet, "/api/matches?status=DONE", "", nil)
	assert.Equal(t, http.StatusBadRequest, code)

	code, env = do(t, router, http.MethodGet, "/api/matches/"+m.ID, "", nil)
	require.Equal(t, http.StatusOK, code)
	var got scoring.Match
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, m.ID, got.ID)

	code, env = do(t, router, http.MethodGet, "/api/matches/missing", "", nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "NOT_FOUND", env.ErrorCode)
}

func TestMatchController_Authorisation(t *testing.T) {
	router, svc := newTestRouter(t)
	m, err := svc.Schedule(context.Background(), ScheduleRequest{TeamAID: teamAID, TeamBID: teamBID, ScorerID: "scorer-1"})
	require.NoError(t, err)
	path := "/api/matches/" + m.ID + "/innings"
	body := gin.H{"batting_team_id": teamAID}

	code, _ := do(t, router, http.MethodPost, path, "", body)
	assert.Equal(t, http.StatusUnauthorized, code)

	code, _ = do(t, router, http.MethodPost, path, bearer(t, "fan-1", "VIEWER"), body)
	assert.Equal(t, http.StatusForbidden, code)

	code, env := do(t, router, http.MethodPost, path, bearer(t, "scorer-2", "SCORER"), body)
	assert.Equal(t, http.StatusForbidden, code)
	assert.Equal(t, "You are not the scorer of this match", env.Message)

	code, _ = do(t, router, http.MethodPost, "/api/admin/matches", bearer(t, "scorer-1", "SCORER"), gin.H{"team_a_id": teamAID, "team_b_id": teamBID})
	assert.Equal(t, http.StatusForbidden, code)

	code, _ = do(t, router, http.MethodPost, path, bearer(t, "admin-1", "admin"), body)
	assert.Equal(t, http.StatusOK, code)
}

func TestMatchController_Validation(t *testing.T) {
	router, svc := newTestRouter(t)
	m := startedMatch(t, svc, 0)
	admin := bearer(t, "admin-1", "ADMIN")

	code, env := do(t, router, http.MethodPost, "/api/admin/matches", admin, gin.H{"team_a_id": teamAID, "team_b_id": teamAID})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, string(env.Errors), "team_b_id")

	code, _ = do(t, router, http.MethodPost, "/api/admin/matches", admin, gin.H{"team_a_id": "not-a-uuid", "team_b_id": teamBID})
	assert.Equal(t, http.StatusBadRequest, code)

	code, env = do(t, router, http.MethodPost, "/api/admin/matches", admin, gin.H{"team_a_id": teamAID, "team_b_id": "6f1c2d3e-0000-4000-8000-0000000000ff"})
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "NOT_FOUND", env.ErrorCode)

	balls := "/api/matches/" + m.ID + "/balls"
	code, _ = do(t, router, http.MethodPost, balls, admin, gin.H{"runs": 7})
	assert.Equal(t, http.StatusBadRequest, code)
	code, _ = do(t, router, http.MethodPost, balls, admin, gin.H{"runs": 1, "extra_type": "overthrow"})
	assert.Equal(t, http.StatusBadRequest, code)

	code, env = do(t, router, http.MethodPut, "/api/matches/"+m.ID+"/players", admin, gin.H{"striker_id": "S9"})
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "NOT_FOUND", env.ErrorCode)

	code, env = do(t, router, http.MethodPut, "/api/matches/"+m.ID+"/players", admin, gin.H{"striker_id": "S2"})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "INVALID_INPUT", env.ErrorCode)
}
