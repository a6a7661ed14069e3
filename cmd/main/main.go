package main

import (
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"condotrack/internal/api"
	routes "condotrack/internal/api/handlers"
	"condotrack/internal/config"
	"condotrack/internal/mongo"
	"condotrack/internal/redis"
	"condotrack/internal/relay"
	"condotrack/internal/worker"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
)

func main() {
	setupLogging()

	cfg, err := loadConfiguration()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	initializeDatabaseAndCache(cfg)
	defer closeConnections()

	setupSignalHandler()

	hub := relay.NewHub()

	worker.StartAllWorkers(hub)

	runHealthServer(cfg)
	runAPIServer(cfg, hub)
}

func setupLogging() {
	// Set up logging to file and terminal
	logFile, err := os.OpenFile("condotrack.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Fatalf("Failed to open log file: %v", err)
	}

	// The file stays open for the whole process lifetime
	multiWriter := io.MultiWriter(os.Stdout, logFile)
	log.SetOutput(multiWriter)
}

func loadConfiguration() (config.Config, error) {
	// Try loading from config package first
	cfg, err := config.LoadConfig()
	if err != nil {
		// Fallback to loading from environment directly
		log.Println("Failed to load config via config package, using fallback method")

		cfg.Port = getEnvWithDefault("PORT", ":3999")
		cfg.HealthPort = getEnvWithDefault("HEALTH_PORT", ":3998")
		cfg.MongoUrl = getEnvWithDefault("MONGO_URL", "mongodb://localhost:27017")
		cfg.MongoDatabase = getEnvWithDefault("MONGO_DATABASE", "condotrack")
		cfg.RedisUrl = getEnvWithDefault("REDIS_URL", "redis://localhost:6379/0")
		cfg.StaticDir = getEnvWithDefault("STATIC_DIR", "./public")
		cfg.AllowedOrigin = getEnvWithDefault("ALLOWED_ORIGIN", "http://localhost:3000")
	}

	return cfg, nil
}

func getEnvWithDefault(key, defaultValue string) string {
	value := viper.GetString(key)
	if value == "" {
		log.Printf("%s environment variable is not set, using default", key)
		return defaultValue
	}
	return value
}

func initializeDatabaseAndCache(cfg config.Config) {
	// Initialize MongoDB
	mongo.Init(cfg.MongoUrl, cfg.MongoDatabase)

	// Initialize Redis
	redis.Init(cfg.RedisUrl)
}

func closeConnections() {
	if err := mongo.Close(); err != nil {
		log.Printf("Error closing MongoDB connection: %v", err)
	}
	if err := redis.Close(); err != nil {
		log.Printf("Error closing Redis connection: %v", err)
	}
}

func setupSignalHandler() {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		log.Printf("Received signal %v, shutting down...", sig)
		closeConnections()
		os.Exit(0)
	}()
}

// runHealthServer starts the isolated liveness listener
func runHealthServer(cfg config.Config) {
	health := routes.NewHealthEngine()
	go func() {
		if err := health.Run(cfg.HealthPort); err != nil {
			log.Fatalf("Health server failed: %v", err)
		}
	}()
	log.Println("Health server listening on", cfg.HealthPort)
}

func runAPIServer(cfg config.Config, hub *relay.Hub) {
	// Initialize Gin router
	r := gin.Default()

	// Configure API routes
	api.SetupRouter(r, hub, cfg)

	// Start the server
	r.Run(cfg.Port)
}
