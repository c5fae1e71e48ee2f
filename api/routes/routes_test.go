package routes

import (
	"testing"

	"nocslol/api/handlers"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func setupTestRouter() *Router {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	return NewRouter(engine)
}

func TestNewRouter(t *testing.T) {
	router := setupTestRouter()

	assert.NotNil(t, router)
	assert.NotNil(t, router.Engine)
	assert.NotNil(t, router.api)
}

func TestSetupRoutes(t *testing.T) {
	router := setupTestRouter()

	router.SetupRoutes(
		&handlers.StatsHandler{},
		&handlers.ChampionHandler{},
		&handlers.LiveGameHandler{},
		&handlers.SubmissionHandler{},
		&handlers.OverlayHandler{},
		&handlers.RiotHandler{},
	)

	routes := router.Engine.Routes()
	assert.Greater(t, len(routes), 0)

	paths := make(map[string]bool, len(routes))
	for _, route := range routes {
		paths[route.Method+" "+route.Path] = true
	}

	assert.True(t, paths["GET /api/v1/stats/overlay"])
	assert.True(t, paths["GET /api/v1/champions/trivia"])
	assert.True(t, paths["PUT /api/v1/champions/:championId/abilities"])
	assert.True(t, paths["GET /api/v1/live/game"])
	assert.True(t, paths["POST /api/v1/submissions"])
	assert.True(t, paths["GET /api/v1/overlays"])
	assert.True(t, paths["GET /api/v1/overlays/:overlayId/page"])
	assert.True(t, paths["GET /api/v1/riot/account"])
	assert.True(t, paths["GET /api/v1/riot/challenges"])
}

func TestSetupRoutesIgnoresUnknownHandlers(t *testing.T) {
	router := setupTestRouter()

	router.SetupRoutes("not a handler", 42)

	assert.Empty(t, router.Engine.Routes())
}
