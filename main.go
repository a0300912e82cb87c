package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/DhavalSuthar-24/livescore/config"
	_ "github.com/DhavalSuthar-24/livescore/docs"
	"github.com/DhavalSuthar-24/livescore/internal/live"
	"github.com/DhavalSuthar-24/livescore/internal/match"
	"github.com/DhavalSuthar-24/livescore/internal/roster"
	"github.com/DhavalSuthar-24/livescore/routes"
)

// @title Livescore REST API
// @version 1.0
// @description Live cricket scoring: scorers record deliveries, spectators follow the scoreboard.
// @host localhost:8088
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := config.Initialize(); err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	cfg := config.GetConfig()

	err := config.DB.AutoMigrate(
		&roster.Team{}, &roster.Player{},
		&match.MatchRecord{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
	log.Println("AutoMigrate successful")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var matchRepo match.MatchRepository = match.NewGormMatchRepository(config.DB)
	if cfg.Scoring.LocalFallback {
		matchRepo = match.NewFallbackMatchRepository(matchRepo, match.NewMemoryMatchRepository())
	}
	rosterRepo := roster.NewGormRosterRepository(config.DB)

	hub := live.NewHub()
	go hub.Run(ctx)

	var (
		cache           *live.ScoreboardCache
		publisher       *live.StreamPublisher
		consumerDone    chan struct{}
		cleanupConsumer func(context.Context) error
	)
	if config.Redis != nil {
		cache = live.NewScoreboardCache(config.Redis, cfg.Redis.LiveTTL, cfg.Redis.FinalTTL)
		publisher = live.NewStreamPublisher(config.Redis, cfg.Redis.Stream)

		// without a configured id the group belongs to this process only and is removed on exit
		consumerID := cfg.Redis.ConsumerID
		ephemeralGroup := consumerID == ""
		if ephemeralGroup {
			if consumerID, err = os.Hostname(); err != nil || consumerID == "" {
				consumerID = uuid.NewString()
			}
		}
		consumer := live.NewStreamConsumer(config.Redis, hub, cfg.Redis.Stream, cfg.Redis.ConsumerGroup+":"+consumerID, consumerID)
		consumerDone = make(chan struct{})
		go func() {
			defer close(consumerDone)
			if err := consumer.Start(ctx); err != nil {
				log.Printf("Live stream consumer stopped: %v", err)
			}
		}()
		if ephemeralGroup {
			cleanupConsumer = consumer.DestroyGroup
		}
	}

	serviceCfg := match.ServiceConfig{
		DefaultMaxOvers:   cfg.Scoring.DefaultMaxOvers,
		RequireNewBatsman: cfg.Scoring.RequireNewBatsman,
	}
	feed := live.NewFeed(cache, publisher, hub)
	var matchService *match.Service
	if cache != nil {
		matchService = match.NewService(matchRepo, rosterRepo, feed, cache, serviceCfg)
	} else {
		matchService = match.NewService(matchRepo, rosterRepo, feed, nil, serviceCfg)
	}

	r := routes.SetupRoutes(routes.Dependencies{
		FrontendURL: cfg.App.FrontendURL,
		JWTSecret:   cfg.JWT.AccessTokenSecret,
		Roster:      rosterRepo,
		Matches:     matchService,
		Live:        live.NewHandler(ctx, hub, matchService),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.App.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		log.Printf("Starting server on port %s in %s mode\n", cfg.App.Port, cfg.App.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to run server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}
	if consumerDone != nil {
		<-consumerDone
	}
	if cleanupConsumer != nil {
		if err := cleanupConsumer(shutdownCtx); err != nil {
			log.Printf("Live stream cleanup failed: %v", err)
		}
	}
	if config.Redis != nil {
		config.Redis.Close()
	}
}
