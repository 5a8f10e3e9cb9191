package main

import (
	"log"

	"account_service/internal/config"
	"account_service/internal/database"
	"account_service/internal/router"
	"account_service/pkg/utils"
)

func main() {
	// Initialize Logger
	utils.InitLogger()

	// Load configuration from environment variables
	cfg, err := config.Load()
	if err != nil {
		utils.LogError(err, "Failed to load configuration")
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Database
	db, err := database.Connect(cfg.DSN())
	if err != nil {
		utils.LogError(err, "Failed to connect to database")
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := database.EnsureSchema(db); err != nil {
		utils.LogError(err, "Failed to apply database schema")
		log.Fatalf("Failed to apply database schema: %v", err)
	}
	utils.LogInfo("Database initialized", map[string]interface{}{"configured_from_env": true})

	// Build the engine with logging, security headers, CORS and routes
	engine := router.New(cfg, db)

	utils.LogInfo("Server starting", map[string]interface{}{"port": cfg.Port, "force_https": cfg.ForceHTTPS})
	if err := engine.Run(":" + cfg.Port); err != nil {
		utils.LogError(err, "Failed to start server")
		log.Fatalf("Failed to start server: %v", err)
	}
}
