package matchresponse

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DhavalSuthar-24/livescore/internal/scoring"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestStatusForError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{scoring.ErrNotFound, http.StatusNotFound},
		{scoring.ErrInvalidState, http.StatusConflict},
		{scoring.ErrUnassignedPlayers, http.StatusUnprocessableEntity},
		{scoring.ErrInvalidInput, http.StatusBadRequest},
		{fmt.Errorf("load: %w", scoring.NotFound("match", "m1")), http.StatusNotFound},
		{errors.New("disk full"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, StatusForError(tt.err), tt.err.Error())
	}
}

func TestDomainErrorResponse(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/matches/m1/balls", nil)

	DomainErrorResponse(c, scoring.ErrUnassignedPlayers)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "error", body["status"])
	assert.Equal(t, "UNASSIGNED_PLAYERS", body["error_code"])
}

func TestDomainErrorResponse_HidesStorageErrors(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/matches/m1", nil)

	DomainErrorResponse(c, errors.New("pq: password authentication failed"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "password")
	assert.Contains(t, w.Body.String(), `"status":"fail"`)
}

func TestSuccessResponse_LiftsMessage(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	SuccessResponse(c, http.StatusOK, gin.H{"message": "Ball recorded", "match_id": "m1"})

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Ball recorded", body["message"])
	assert.Equal(t, map[string]any{"match_id": "m1"}, body["data"])
}

func TestPaginatedResponse(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	PaginatedResponse(c, http.StatusOK, []string{"a", "b"}, 2, 2, 5)

	var body struct {
		Pagination pagination `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 3, body.Pagination.TotalPages)
	assert.True(t, body.Pagination.HasNextPage)
	assert.True(t, body.Pagination.HasPrevPage)
	require.NotNil(t, body.Pagination.NextPage)
	assert.Equal(t, 3, *body.Pagination.NextPage)
}
