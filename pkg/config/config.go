package config

import (
	"os"
	"strconv"
	"time"
)

// Riot API configuration.
type RiotConfiguration struct {
	ApiKey string
}

// Redis configuration struct.
type RedisConfiguration struct {
	Host     string
	Port     string
	Password string
}

// Database configuration struct.
type DatabaseConfiguration struct {
	URL string
}

// Discord webhook configuration.
type DiscordConfiguration struct {
	WebhookURL string
}

// Admin token guarding the moderation endpoints.
type AdminConfiguration struct {
	Token string
}

// S3 compatible bucket used for shipping the fetch cycle logs.
type BucketConfiguration struct {
	Region       string
	AccessKey    string
	AccessSecret string
	Endpoint     string
	LogBucket    string
}

// Match cache configuration.
type MatchCacheConfiguration struct {
	Dir string
}

// Single rate limit window configuration.
type LimitWindow struct {
	Count         int
	ResetInterval time.Duration
}

// Riot rate limit windows (development key defaults).
type LimitsConfiguration struct {
	Lower  LimitWindow
	Higher LimitWindow
}

var (
	Riot       RiotConfiguration
	Redis      RedisConfiguration
	Database   DatabaseConfiguration
	Discord    DiscordConfiguration
	Admin      AdminConfiguration
	Bucket     BucketConfiguration
	MatchCache MatchCacheConfiguration
	Limits     LimitsConfiguration
)

// Load the variables.
func LoadEnv() {
	Riot.ApiKey = os.Getenv("RIOT_API_KEY")

	// Load the Redis configuration.
	Redis.Host = os.Getenv("REDIS_HOST")
	Redis.Port = os.Getenv("REDIS_PORT")
	Redis.Password = os.Getenv("REDIS_PASSWORD")

	Database.URL = os.Getenv("DATABASE_URL")

	Discord.WebhookURL = os.Getenv("DISCORD_WEBHOOK_URL")

	Admin.Token = os.Getenv("ADMIN_TOKEN")

	Bucket.Region = os.Getenv("BUCKET_REGION")
	Bucket.AccessKey = os.Getenv("BUCKET_ACCESS_KEY")
	Bucket.AccessSecret = os.Getenv("BUCKET_ACCESS_SECRET")
	Bucket.Endpoint = os.Getenv("BUCKET_ENDPOINT")
	Bucket.LogBucket = os.Getenv("BUCKET_LOG_BUCKET")

	MatchCache.Dir = getEnvOrDefault("MATCH_CACHE_DIR", "data/match-cache")

	// Riot development key limits: 20 requests each 1s, 100 requests each 2min.
	Limits.Lower = LimitWindow{
		Count:         getEnvIntOrDefault("RIOT_LIMIT_LOWER_COUNT", 20),
		ResetInterval: time.Second,
	}
	Limits.Higher = LimitWindow{
		Count:         getEnvIntOrDefault("RIOT_LIMIT_HIGHER_COUNT", 100),
		ResetInterval: 2 * time.Minute,
	}
}

// getEnvOrDefault returns the environment variable value or a default.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvIntOrDefault returns the environment variable as int or a default.
func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
