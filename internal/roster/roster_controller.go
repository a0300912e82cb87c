package roster

import (
	"net/http"

	responses "github.com/DhavalSuthar-24/livescore/pkg/matchresponse"
	"github.com/gin-gonic/gin"
)

// RosterController handles team and player HTTP requests
type RosterController struct {
	repo RosterRepository
}

// NewRosterController creates a new roster controller
func NewRosterController(repo RosterRepository) *RosterController {
	return &RosterController{repo: repo}
}

type CreateTeamRequest struct {
	Name      string `json:"name" binding:"required,min=2,max=100"`
	ShortName string `json:"short_name" binding:"omitempty,max=10"`
	LogoURL   string `json:"logo_url" binding:"omitempty,url"`
}

type CreatePlayerRequest struct {
	Name         string `json:"name" binding:"required,min=2,max=100"`
	Role         string `json:"role" binding:"omitempty,oneof=batsman bowler all_rounder wicket_keeper"`
	JerseyNumber int    `json:"jersey_number" binding:"omitempty,min=0,max=999"`
}

// GetAllTeams godoc
// @Summary List teams
// @Tags Teams
// @Produce json
// @Success 200 {array} Team
// @Router /teams [get]
func (rc *RosterController) GetAllTeams(c *gin.Context) {
	teams, err := rc.repo.ListTeams(c.Request.Context())
	if err != nil {
		responses.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch teams: "+err.Error())
		return
	}
	responses.SuccessResponse(c, http.StatusOK, teams)
}

// GetTeamByID godoc
// @Summary Get a team
// @Tags Teams
// @Produce json
// @Param team_id path string true "Team ID"
// @Success 200 {object} Team
// @Failure 404 {object} map[string]interface{}
// @Router /teams/{team_id} [get]
func (rc *RosterController) GetTeamByID(c *gin.Context) {
	team, err := rc.repo.GetTeamByID(c.Request.Context(), c.Param("team_id"))
	if err != nil {
		responses.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch team: "+err.Error())
		return
	}
	if team == nil {
		responses.ErrorResponse(c, http.StatusNotFound, "Team not found")
		return
	}
	responses.SuccessResponse(c, http.StatusOK, team)
}

// GetTeamPlayers godoc
// @Summary List a team's squad
// @Tags Teams
// @Produce json
// @Param team_id path string true "Team ID"
// @Success 200 {array} Player
// @Router /teams/{team_id}/players [get]
func (rc *RosterController) GetTeamPlayers(c *gin.Context) {
	ctx := c.Request.Context()
	teamID := c.Param("team_id")

	team, err := rc.repo.GetTeamByID(ctx, teamID)
	if err != nil {
		responses.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch team: "+err.Error())
		return
	}
	if team == nil {
		responses.ErrorResponse(c, http.StatusNotFound, "Team not found")
		return
	}

	players, err := rc.repo.ListTeamPlayers(ctx, teamID)
	if err != nil {
		responses.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch players: "+err.Error())
		return
	}
	responses.SuccessResponse(c, http.StatusOK, players)
}

// CreateTeam godoc
// @Summary Register a team
// @Tags Admin
// @Accept json
// @Produce json
// @Param team body CreateTeamRequest true "Team"
// @Success 201 {object} Team
// @Router /admin/teams [post]
// @Security BearerAuth
func (rc *RosterController) CreateTeam(c *gin.Context) {
	var req CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationErrorResponse(c, err)
		return
	}

	team := Team{Name: req.Name, ShortName: req.ShortName, LogoURL: req.LogoURL}
	if err := rc.repo.CreateTeam(c.Request.Context(), &team); err != nil {
		responses.ErrorResponse(c, http.StatusInternalServerError, "Failed to create team: "+err.Error())
		return
	}
	responses.SuccessResponse(c, http.StatusCreated, gin.H{"message": "Team created successfully", "team": team})
}

// CreatePlayer godoc
// @Summary Add a player to a squad
// @Tags Admin
// @Accept json
// @Produce json
// @Param team_id path string true "Team ID"
// @Param player body CreatePlayerRequest true "Player"
// @Success 201 {object} Player
// @Router /admin/teams/{team_id}/players [post]
// @Security BearerAuth
func (rc *RosterController) CreatePlayer(c *gin.Context) {
	var req CreatePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationErrorResponse(c, err)
		return
	}

	ctx := c.Request.Context()
	teamID := c.Param("team_id")
	team, err := rc.repo.GetTeamByID(ctx, teamID)
	if err != nil {
		responses.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch team: "+err.Error())
		return
	}
	if team == nil {
		responses.ErrorResponse(c, http.StatusNotFound, "Team not found")
		return
	}

	player := Player{Name: req.Name, TeamID: teamID, Role: req.Role, JerseyNumber: req.JerseyNumber}
	if player.Role == "" {
		player.Role = "batsman"
	}
	if err := rc.repo.CreatePlayer(ctx, &player); err != nil {
		responses.ErrorResponse(c, http.StatusInternalServerError, "Failed to create player: "+err.Error())
		return
	}
	responses.SuccessResponse(c, http.StatusCreated, gin.H{"message": "Player created successfully", "player": player})
}
