package match

import (
	mw "github.com/DhavalSuthar-24/livescore/internal/middleware"
	"github.com/DhavalSuthar-24/livescore/pkg/rmiddleware"
	"github.com/DhavalSuthar-24/livescore/pkg/validator"
	"github.com/gin-gonic/gin"
)

// MatchRoutes sets up all match-related routes.
func MatchRoutes(router *gin.RouterGroup, service *Service, jwtSecret string) {
	validator.UseJSONFieldNames()
	matchController := NewMatchController(service)

	// Spectator routes
	publicRoutes := router.Group("/matches")
	{
		publicRoutes.GET("", matchController.GetMatches)
		publicRoutes.GET("/:id", matchController.GetMatchByID)
		publicRoutes.GET("/:id/scoreboard", matchController.GetScoreboard)
	}

	// Scorer routes
	scorerRoutes := router.Group("/matches")
	scorerRoutes.Use(mw.AuthMiddleware(jwtSecret))
	scorerRoutes.Use(rmiddleware.ScorerOrAdminMiddleware())
	{
		scorerRoutes.POST("/:id/innings", matchController.OpenInnings)
		scorerRoutes.PUT("/:id/players", matchController.AssignPlayers)
		scorerRoutes.POST("/:id/balls", matchController.RecordBall)
		scorerRoutes.POST("/:id/innings/end", matchController.EndFirstInnings)
		scorerRoutes.POST("/:id/complete", matchController.CompleteMatch)
	}

	// Admin match routes
	adminRoutes := router.Group("/admin/matches")
	adminRoutes.Use(mw.AuthMiddleware(jwtSecret))
	adminRoutes.Use(rmiddleware.AdminMiddleware())
	{
		adminRoutes.POST("", matchController.ScheduleMatch)
	}
}
