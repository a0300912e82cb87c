package match

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	mw "github.com/DhavalSuthar-24/livescore/internal/middleware"
	"github.com/DhavalSuthar-24/livescore/internal/scoring"
	responses "github.com/DhavalSuthar-24/livescore/pkg/matchresponse"
	"github.com/DhavalSuthar-24/livescore/pkg/rmiddleware"
	"github.com/gin-gonic/gin"
)

// MatchController handles match-related HTTP requests
type MatchController struct {
	service *Service
}

// NewMatchController creates a new match controller
func NewMatchController(service *Service) *MatchController {
	return &MatchController{service: service}
}

// --- DTOs for requests ---

// ScheduleMatchRequest defines the request payload for scheduling a match
type ScheduleMatchRequest struct {
	TeamAID      string     `json:"team_a_id" binding:"required,uuid"`
	TeamBID      string     `json:"team_b_id" binding:"required,uuid,nefield=TeamAID"`
	MaxOvers     int        `json:"max_overs" binding:"omitempty,min=1,max=50"`
	Venue        string     `json:"venue" binding:"max=200"`
	StartTime    *time.Time `json:"start_time,omitempty"`
	TournamentID string     `json:"tournament_id,omitempty"`
	ScorerID     string     `json:"scorer_id,omitempty"`
}

// OpenInningsRequest names the side that bats first
type OpenInningsRequest struct {
	BattingTeamID string `json:"batting_team_id" binding:"required"`
}

// AssignPlayersRequest carries the players to bind; absent fields are left unchanged
type AssignPlayersRequest struct {
	StrikerID       *string `json:"striker_id,omitempty"`
	NonStrikerID    *string `json:"non_striker_id,omitempty"`
	CurrentBowlerID *string `json:"current_bowler_id,omitempty"`
}

// RecordBallRequest is one delivery as entered by the scorer
type RecordBallRequest struct {
	Runs       int               `json:"runs" binding:"min=0,max=6"`
	IsWicket   bool              `json:"is_wicket"`
	WicketType string            `json:"wicket_type,omitempty" binding:"max=50"`
	ExtraType  scoring.ExtraType `json:"extra_type,omitempty" binding:"omitempty,oneof=none wide no-ball bye leg-bye"`
}

// --- Helper Functions for Auth ---

// canScore allows admins, and scorers either assigned to the match or on an unassigned match.
func canScore(c *gin.Context, m scoring.Match) bool {
	for _, r := range mw.GetRolesFromContext(c) {
		if strings.EqualFold(r, rmiddleware.RoleAdmin) {
			return true
		}
	}
	if m.ScorerID == "" {
		return true
	}
	userID, err := mw.GetUserIDFromContext(c)
	return err == nil && userID == m.ScorerID
}

// authorize loads the match and checks the caller may score it, writing the error response when not.
func (mc *MatchController) authorize(c *gin.Context) bool {
	m, err := mc.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		responses.DomainErrorResponse(c, err)
		return false
	}
	if !canScore(c, m) {
		responses.ErrorResponse(c, http.StatusForbidden, "You are not the scorer of this match")
		return false
	}
	return true
}

// --- Public Controller Methods ---

// GetMatches godoc
// @Summary List matches
// @Tags Matches
// @Produce json
// @Param status query string false "UPCOMING, LIVE or COMPLETED"
// @Param tournament_id query string false "Tournament ID"
// @Param page query int false "Page" default(1)
// @Param page_size query int false "Page size" default(10)
// @Success 200 {object} map[string]interface{}
// @Router /matches [get]
func (mc *MatchController) GetMatches(c *gin.Context) {
	status := scoring.MatchStatus(c.Query("status"))
	switch status {
	case "", scoring.StatusUpcoming, scoring.StatusLive, scoring.StatusCompleted:
	default:
		responses.ErrorResponse(c, http.StatusBadRequest, "Invalid status filter")
		return
	}

	// Parse pagination parameters
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}

	matches, total, err := mc.service.List(c.Request.Context(), ListFilter{
		Status:       status,
		TournamentID: c.Query("tournament_id"),
		Page:         page,
		PageSize:     pageSize,
	})
	if err != nil {
		responses.DomainErrorResponse(c, err)
		return
	}

	responses.PaginatedResponse(c, http.StatusOK, matches, page, pageSize, total)
}

// GetMatchByID godoc
// @Summary Get a match with both innings
// @Tags Matches
// @Produce json
// @Param id path string true "Match ID"
// @Success 200 {object} scoring.Match
// @Failure 404 {object} map[string]interface{}
// @Router /matches/{id} [get]
func (mc *MatchController) GetMatchByID(c *gin.Context) {
	m, err := mc.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		responses.DomainErrorResponse(c, err)
		return
	}
	responses.SuccessResponse(c, http.StatusOK, m)
}

// GetScoreboard godoc
// @Summary Get the live scoreboard of a match
// @Tags Matches
// @Produce json
// @Param id path string true "Match ID"
// @Success 200 {object} scoring.Scoreboard
// @Failure 404 {object} map[string]interface{}
// @Router /matches/{id}/scoreboard [get]
func (mc *MatchController) GetScoreboard(c *gin.Context) {
	sb, err := mc.service.Scoreboard(c.Request.Context(), c.Param("id"))
	if err != nil {
		responses.DomainErrorResponse(c, err)
		return
	}
	responses.SuccessResponse(c, http.StatusOK, sb)
}

// --- Scorer Controller Methods ---

// OpenInnings godoc
// @Summary Start the first innings
// @Tags Scoring
// @Accept json
// @Produce json
// @Param id path string true "Match ID"
// @Param innings body OpenInningsRequest true "Batting side"
// @Success 200 {object} scoring.Match
// @Failure 409 {object} map[string]interface{}
// @Router /matches/{id}/innings [post]
// @Security BearerAuth
func (mc *MatchController) OpenInnings(c *gin.Context) {
	var req OpenInningsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationErrorResponse(c, err)
		return
	}
	if !mc.authorize(c) {
		return
	}

	m, err := mc.service.OpenInnings(c.Request.Context(), c.Param("id"), req.BattingTeamID)
	if err != nil {
		responses.DomainErrorResponse(c, err)
		return
	}
	responses.SuccessResponse(c, http.StatusOK, gin.H{"message": "Innings started", "match": m})
}

// AssignPlayers godoc
// @Summary Set striker, non-striker and bowler
// @Tags Scoring
// @Accept json
// @Produce json
// @Param id path string true "Match ID"
// @Param players body AssignPlayersRequest true "Players"
// @Success 200 {object} scoring.Match
// @Failure 404 {object} map[string]interface{}
// @Router /matches/{id}/players [put]
// @Security BearerAuth
func (mc *MatchController) AssignPlayers(c *gin.Context) {
	var req AssignPlayersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationErrorResponse(c, err)
		return
	}
	if !mc.authorize(c) {
		return
	}

	m, err := mc.service.AssignPlayers(c.Request.Context(), c.Param("id"), scoring.Assignment{
		StrikerID:       req.StrikerID,
		NonStrikerID:    req.NonStrikerID,
		CurrentBowlerID: req.CurrentBowlerID,
	})
	if err != nil {
		responses.DomainErrorResponse(c, err)
		return
	}
	responses.SuccessResponse(c, http.StatusOK, gin.H{"message": "Players assigned", "match": m})
}

// RecordBall godoc
// @Summary Record one delivery
// @Tags Scoring
// @Accept json
// @Produce json
// @Param id path string true "Match ID"
// @Param ball body RecordBallRequest true "Delivery"
// @Success 200 {object} scoring.Match
// @Failure 409 {object} map[string]interface{}
// @Failure 422 {object} map[string]interface{}
// @Router /matches/{id}/balls [post]
// @Security BearerAuth
func (mc *MatchController) RecordBall(c *gin.Context) {
	var req RecordBallRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationErrorResponse(c, err)
		return
	}
	if !mc.authorize(c) {
		return
	}

	m, err := mc.service.RecordBall(c.Request.Context(), c.Param("id"), scoring.BallEvent{
		Runs:       req.Runs,
		IsWicket:   req.IsWicket,
		WicketType: req.WicketType,
		ExtraType:  req.ExtraType,
	})
	if err != nil {
		responses.DomainErrorResponse(c, err)
		return
	}
	responses.SuccessResponse(c, http.StatusOK, gin.H{
		"message":    "Ball recorded",
		"match":      m,
		"scoreboard": scoring.NewScoreboard(m),
	})
}

// EndFirstInnings godoc
// @Summary Close the first innings and start the chase
// @Tags Scoring
// @Produce json
// @Param id path string true "Match ID"
// @Success 200 {object} scoring.Match
// @Failure 409 {object} map[string]interface{}
// @Router /matches/{id}/innings/end [post]
// @Security BearerAuth
func (mc *MatchController) EndFirstInnings(c *gin.Context) {
	if !mc.authorize(c) {
		return
	}
	m, err := mc.service.EndFirstInnings(c.Request.Context(), c.Param("id"))
	if err != nil {
		responses.DomainErrorResponse(c, err)
		return
	}
	responses.SuccessResponse(c, http.StatusOK, gin.H{"message": "First innings closed", "match": m})
}

// CompleteMatch godoc
// @Summary Finish the match and declare the result
// @Tags Scoring
// @Produce json
// @Param id path string true "Match ID"
// @Success 200 {object} scoring.Match
// @Failure 409 {object} map[string]interface{}
// @Router /matches/{id}/complete [post]
// @Security BearerAuth
func (mc *MatchController) CompleteMatch(c *gin.Context) {
	if !mc.authorize(c) {
		return
	}
	m, err := mc.service.CompleteMatch(c.Request.Context(), c.Param("id"))
	if err != nil {
		responses.DomainErrorResponse(c, err)
		return
	}
	responses.SuccessResponse(c, http.StatusOK, gin.H{"message": m.ResultSummary, "match": m})
}

// --- Admin Controller Methods ---

// ScheduleMatch godoc
// @Summary Schedule a match between two teams
// @Tags Admin
// @Accept json
// @Produce json
// @Param match body ScheduleMatchRequest true "Fixture"
// @Success 201 {object} scoring.Match
// @Failure 404 {object} map[string]interface{}
// @Router /admin/matches [post]
// @Security BearerAuth
func (mc *MatchController) ScheduleMatch(c *gin.Context) {
	var req ScheduleMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationErrorResponse(c, err)
		return
	}

	schedule := ScheduleRequest{
		TeamAID:      req.TeamAID,
		TeamBID:      req.TeamBID,
		MaxOvers:     req.MaxOvers,
		Venue:        req.Venue,
		TournamentID: req.TournamentID,
		ScorerID:     req.ScorerID,
	}
	if req.StartTime != nil {
		schedule.StartTime = *req.StartTime
	}

	m, err := mc.service.Schedule(c.Request.Context(), schedule)
	if err != nil {
		responses.DomainErrorResponse(c, err)
		return
	}
	responses.SuccessResponse(c, http.StatusCreated, gin.H{"message": "Match scheduled successfully", "match": m})
}
