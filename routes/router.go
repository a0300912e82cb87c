package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/DhavalSuthar-24/livescore/internal/live"
	"github.com/DhavalSuthar-24/livescore/internal/match"
	"github.com/DhavalSuthar-24/livescore/internal/roster"
)

// Dependencies are the wired services the HTTP layer exposes.
type Dependencies struct {
	FrontendURL string
	JWTSecret   string
	Roster      roster.RosterRepository
	Matches     *match.Service
	Live        *live.Handler
}

func SetupRoutes(deps Dependencies) *gin.Engine {
	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{deps.FrontendURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Welcome page
	r.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(`
			<html>
				<head><title>Livescore</title></head>
				<body style="text-align:center; margin-top: 40px;">
					<h1>Livescore 🏏</h1>
					<p><a href="/swagger/index.html">API docs</a></p>
				</body>
			</html>
		`))
	})

	r.GET("/health", func(c *gin.Context) {
		store := "primary"
		if deps.Matches.Offline() {
			store = "local"
		}
		clients := 0
		if deps.Live != nil {
			clients = deps.Live.ClientCount()
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "store": store, "live_clients": clients})
	})

	// Swagger route
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if deps.Live != nil {
		r.GET("/ws", deps.Live.ServeWS)
	}

	// API routes
	api := r.Group("/api")
	roster.RosterRoutes(api, deps.Roster, deps.JWTSecret)
	match.MatchRoutes(api, deps.Matches, deps.JWTSecret)

	return r
}
