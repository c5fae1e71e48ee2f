package modules

import (
	"nocslol/api/cache"
	"nocslol/api/handlers"
	statsservice "nocslol/api/services/stats"
	"nocslol/fetcher/assets"
	"nocslol/fetcher/requests"
	"nocslol/pkg/discord"
	"nocslol/pkg/logger"
	"nocslol/pkg/redis"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Module containing the necessary handlers.
type Module struct {
	Router            *gin.Engine
	StatsHandler      *handlers.StatsHandler
	ChampionHandler   *handlers.ChampionHandler
	LiveGameHandler   *handlers.LiveGameHandler
	SubmissionHandler *handlers.SubmissionHandler
	OverlayHandler    *handlers.OverlayHandler
	RiotHandler       *handlers.RiotHandler
}

// ModuleDependencies is the shared infrastructure every handler builds on.
type ModuleDependencies struct {
	DB       *gorm.DB
	Redis    *redis.RedisClient
	Limiter  *requests.RateLimiter
	Logger   *logger.Logger
	MemCache cache.MemCache
	Versions *assets.VersionResolver
	Webhook  *discord.WebhookClient
}

// Create a new module with all the necessary handlers initialized.
func NewModule(deps *ModuleDependencies) *Module {
	router := gin.Default()

	// The stats service is shared: the stats handler serves the JSON
	// preview and the overlay handler feeds the rendered page with it.
	statsService := initializeStatsService(deps)

	return &Module{
		Router:            router,
		StatsHandler:      initializeStatsHandler(statsService),
		ChampionHandler:   initializeChampionHandler(deps),
		LiveGameHandler:   initializeLiveGameHandler(deps),
		SubmissionHandler: initializeSubmissionHandler(deps),
		OverlayHandler:    initializeOverlayHandler(deps, statsService),
		RiotHandler:       initializeRiotHandler(deps),
	}
}

func initializeStatsHandler(statsService *statsservice.StatsService) *handlers.StatsHandler {
	return handlers.NewStatsHandler(&handlers.StatsHandlerDependencies{
		StatsService: statsService,
	})
}
