package app

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/uptrace/bun"

	achievementservice "github.com/ice-and-stone/scorekeeper/app/modules/achievement/application"
	achievementhandlers "github.com/ice-and-stone/scorekeeper/app/modules/achievement/infrastructure/handlers"
	achievementdb "github.com/ice-and-stone/scorekeeper/app/modules/achievement/infrastructure/repositories"
	gameservice "github.com/ice-and-stone/scorekeeper/app/modules/game/application"
	gamehandlers "github.com/ice-and-stone/scorekeeper/app/modules/game/infrastructure/handlers"
	gamedb "github.com/ice-and-stone/scorekeeper/app/modules/game/infrastructure/repositories"
	roundservice "github.com/ice-and-stone/scorekeeper/app/modules/round/application"
	roundhandlers "github.com/ice-and-stone/scorekeeper/app/modules/round/infrastructure/handlers"
	rounddb "github.com/ice-and-stone/scorekeeper/app/modules/round/infrastructure/repositories"
	scoreservice "github.com/ice-and-stone/scorekeeper/app/modules/score/application"
	scorehandlers "github.com/ice-and-stone/scorekeeper/app/modules/score/infrastructure/handlers"
	scoredb "github.com/ice-and-stone/scorekeeper/app/modules/score/infrastructure/repositories"
	sessionservice "github.com/ice-and-stone/scorekeeper/app/modules/session/application"
	sessionhandlers "github.com/ice-and-stone/scorekeeper/app/modules/session/infrastructure/handlers"
	sessiondb "github.com/ice-and-stone/scorekeeper/app/modules/session/infrastructure/repositories"
	teamservice "github.com/ice-and-stone/scorekeeper/app/modules/team/application"
	teamhandlers "github.com/ice-and-stone/scorekeeper/app/modules/team/infrastructure/handlers"
	teamdb "github.com/ice-and-stone/scorekeeper/app/modules/team/infrastructure/repositories"
	venueservice "github.com/ice-and-stone/scorekeeper/app/modules/venue/application"
	venuehandlers "github.com/ice-and-stone/scorekeeper/app/modules/venue/infrastructure/handlers"
	venuedb "github.com/ice-and-stone/scorekeeper/app/modules/venue/infrastructure/repositories"
	"github.com/ice-and-stone/scorekeeper/app/shared/operations"
	"github.com/ice-and-stone/scorekeeper/config"
	"github.com/ice-and-stone/scorekeeper/internal/db/bundb"
	"github.com/ice-and-stone/scorekeeper/internal/observability"
)

// App wires configuration, storage, observability, and the module stack into
// a runnable HTTP service.
type App struct {
	Config         *config.Config
	DB             *bun.DB
	Observability  observability.Observability
	Router         http.Handler
	MetricsHandler http.Handler
}

// New builds the application from configuration.
func New(cfg *config.Config) (*App, error) {
	db, err := bundb.New(cfg.Postgres.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	obs := observability.New(cfg.Observability.Environment, registry)
	tel := operations.Telemetry{
		Logger:  obs.Logger,
		Metrics: obs.Metrics,
		Tracer:  obs.Tracer,
	}

	venueRepo := venuedb.NewRepository(db)
	sessionRepo := sessiondb.NewRepository(db)
	gameRepo := gamedb.NewRepository(db)
	teamRepo := teamdb.NewRepository(db)
	roundRepo := rounddb.NewRepository(db)
	scoreRepo := scoredb.NewRepository(db)
	achievementRepo := achievementdb.NewRepository(db)

	sessionSvc := sessionservice.NewSessionService(sessionRepo, gameRepo, venueRepo, tel, db)
	gameSvc := gameservice.NewGameService(gameRepo, sessionRepo, tel, db)
	teamSvc := teamservice.NewTeamService(teamRepo, gameRepo, tel, db)
	roundSvc := roundservice.NewRoundService(roundRepo, gameRepo, teamRepo, tel, db)
	scoreSvc := scoreservice.NewScoreService(scoreRepo, roundRepo, teamRepo, tel, db)
	venueSvc := venueservice.NewVenueService(venueRepo, tel, db)
	achievementSvc := achievementservice.NewAchievementService(achievementRepo, tel, db)

	metricsHandler := promhttp.HandlerFor(registry, promhttp.HandlerOpts{})

	router := NewRouter(RouterDeps{
		Logger:          obs.Logger,
		Metrics:         metricsHandler,
		RateLimitPerSec: cfg.HTTP.RateLimitPerSec,
		RateLimitBurst:  cfg.HTTP.RateLimitBurst,
		Handlers: []RouteRegistrar{
			sessionhandlers.NewSessionHandlers(sessionSvc, obs.Logger),
			gamehandlers.NewGameHandlers(gameSvc, obs.Logger),
			teamhandlers.NewTeamHandlers(teamSvc, obs.Logger),
			roundhandlers.NewRoundHandlers(roundSvc, obs.Logger),
			scorehandlers.NewScoreHandlers(scoreSvc, obs.Logger),
			venuehandlers.NewVenueHandlers(venueSvc, obs.Logger),
			achievementhandlers.NewAchievementHandlers(achievementSvc, obs.Logger),
		},
	})

	return &App{
		Config:         cfg,
		DB:             db,
		Observability:  obs,
		Router:         router,
		MetricsHandler: metricsHandler,
	}, nil
}

// Close releases the database connection.
func (a *App) Close() error {
	return a.DB.Close()
}
