package main

import (
	"context"
	"log"
	"os"

	"nocslol/api/cache"
	"nocslol/api/modules"
	championrepo "nocslol/api/repositories/champion"
	"nocslol/api/routes"
	"nocslol/fetcher/assets"
	"nocslol/fetcher/requests"
	"nocslol/pkg/config"
	"nocslol/pkg/database"
	"nocslol/pkg/discord"
	"nocslol/pkg/logger"
	"nocslol/pkg/redis"

	"github.com/joho/godotenv"
)

const championsSeedFile = "data/champions.json"

func main() {
	// Load the environment variables if not running on Docker.
	if os.Getenv("ENVIRONMENT") != "docker" {
		err := godotenv.Load()
		if err != nil {
			log.Fatal("Error loading .env file")
		}
	}

	config.LoadEnv()

	db, err := database.NewConnection()
	if err != nil {
		log.Fatalf("Error connecting to the database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Error running the migrations: %v", err)
	}

	// Seed the curated champion database on first startup.
	championRepository := championrepo.NewChampionRepository(db)
	if err := championrepo.SeedFromFile(context.Background(), championRepository, championsSeedFile); err != nil {
		log.Fatalf("Error seeding the champion database: %v", err)
	}

	appLogger, err := logger.CreateLogger()
	if err != nil {
		log.Fatalf("Error creating the logger: %v", err)
	}

	redisClient := redis.GetClient()
	memCache := cache.NewMemCache()
	defer memCache.Close()

	// Create a module with all necessary handlers.
	module := modules.NewModule(&modules.ModuleDependencies{
		DB:       db,
		Redis:    redisClient,
		Limiter:  requests.CreateRateLimiter(),
		Logger:   appLogger,
		MemCache: memCache,
		Versions: assets.NewVersionResolver(redisClient),
		Webhook:  discord.NewWebhookClient(config.Discord.WebhookURL),
	})

	// Create a new router with the routes setup.
	router := routes.NewRouter(module.Router)
	router.SetupRoutes(
		module.StatsHandler,
		module.ChampionHandler,
		module.LiveGameHandler,
		module.SubmissionHandler,
		module.OverlayHandler,
		module.RiotHandler,
	)

	// Start the server.
	if err := router.Run(":8080"); err != nil {
		log.Fatalf("Error running the server: %v", err)
	}
}
