package roster

import (
	mw "github.com/DhavalSuthar-24/livescore/internal/middleware"
	"github.com/DhavalSuthar-24/livescore/pkg/rmiddleware"
	"github.com/DhavalSuthar-24/livescore/pkg/validator"
	"github.com/gin-gonic/gin"
)

// RosterRoutes sets up team and player routes
func RosterRoutes(router *gin.RouterGroup, repo RosterRepository, jwtSecret string) {
	validator.UseJSONFieldNames()
	rosterController := NewRosterController(repo)

	// Public roster reads
	router.GET("/teams", rosterController.GetAllTeams)
	router.GET("/teams/:team_id", rosterController.GetTeamByID)
	router.GET("/teams/:team_id/players", rosterController.GetTeamPlayers)

	adminRoutes := router.Group("/admin")
	adminRoutes.Use(mw.AuthMiddleware(jwtSecret))
	adminRoutes.Use(rmiddleware.AdminMiddleware())
	{
		adminRoutes.POST("/teams", rosterController.CreateTeam)
		adminRoutes.POST("/teams/:team_id/players", rosterController.CreatePlayer)
	}
}
