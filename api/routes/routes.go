package routes

import (
	"nocslol/api/handlers"

	"github.com/gin-gonic/gin"
)

type Router struct {
	Engine *gin.Engine
	api    *gin.RouterGroup
}

func NewRouter(engine *gin.Engine) *Router {
	return &Router{
		api:    engine.Group("/api/v1"),
		Engine: engine,
	}
}

func (r *Router) SetupRoutes(handlerList ...any) {
	for _, h := range handlerList {
		switch handler := h.(type) {
		case *handlers.StatsHandler:
			r.registerStatsHandler(handler)
		case *handlers.ChampionHandler:
			r.registerChampionHandler(handler)
		case *handlers.LiveGameHandler:
			r.registerLiveGameHandler(handler)
		case *handlers.SubmissionHandler:
			r.registerSubmissionHandler(handler)
		case *handlers.OverlayHandler:
			r.registerOverlayHandler(handler)
		case *handlers.RiotHandler:
			r.registerRiotHandler(handler)
		}
	}
}

// Register the stats handler.
func (r *Router) registerStatsHandler(handler *handlers.StatsHandler) {
	stats := r.api.Group("/stats")
	{
		stats.GET("/overlay", handler.GetOverlayStats)
	}
}

// Register the champion handler.
func (r *Router) registerChampionHandler(handler *handlers.ChampionHandler) {
	champions := r.api.Group("/champions")
	{
		champions.GET("", handler.GetChampions)
		champions.GET("/analysis", handler.GetChampionAnalysis)
		champions.GET("/trivia", handler.GetDailyTrivia)
		champions.GET("/:championId", handler.GetChampion)
		champions.PUT("/:championId/abilities", handler.PutChampionAbility)
	}
}

// Register the live game handler.
func (r *Router) registerLiveGameHandler(handler *handlers.LiveGameHandler) {
	live := r.api.Group("/live")
	{
		live.GET("/game", handler.GetLiveGame)
		live.GET("/history", handler.GetLowCSHistory)
	}
}

// Register the submission handler.
func (r *Router) registerSubmissionHandler(handler *handlers.SubmissionHandler) {
	submissions := r.api.Group("/submissions")
	{
		submissions.POST("", handler.PostSubmission)
		submissions.POST("/contact", handler.PostContact)
	}
}

// Register the overlay handler.
func (r *Router) registerOverlayHandler(handler *handlers.OverlayHandler) {
	overlays := r.api.Group("/overlays")
	{
		overlays.PUT("", handler.PutOverlayConfig)
		overlays.GET("", handler.GetOverlayConfigs)
		overlays.GET("/:overlayId", handler.GetOverlayConfig)
		overlays.GET("/:overlayId/page", handler.GetOverlayPage)
	}
}

// Register the riot lookup handler.
func (r *Router) registerRiotHandler(handler *handlers.RiotHandler) {
	riot := r.api.Group("/riot")
	{
		riot.GET("/account", handler.GetAccount)
		riot.GET("/summoner", handler.GetSummoner)
		riot.GET("/league", handler.GetLeagueEntries)
		riot.GET("/mastery", handler.GetTopMasteries)
		riot.GET("/challenges", handler.GetChallenges)
	}
}

// Start the router.
func (r *Router) Run(addr string) error {
	return r.Engine.Run(addr)
}
