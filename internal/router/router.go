package router

import (
	"database/sql"

	"account_service/internal/config"
	"account_service/internal/handlers"
	"account_service/internal/middleware"
	"account_service/internal/repositories"
	"account_service/internal/services"
	"account_service/pkg/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// New builds the fully wired gin engine: request logging, HTTPS enforcement,
// security headers, CORS, and all application routes.
func New(cfg *config.Config, db *sql.DB) *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(utils.GinLogger())
	// Headers are stamped before the HTTPS redirect can abort the chain, so
	// even redirect responses carry them.
	engine.Use(middleware.SecurityHeaders())
	engine.Use(middleware.EnforceHTTPS(cfg.ForceHTTPS))

	// Cross-origin reads are open to any origin.
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type"}
	engine.Use(cors.New(corsConfig))

	Setup(engine, db)
	return engine
}

// Setup initializes the routing for the application.
func Setup(engine *gin.Engine, db *sql.DB) {
	// Initialize Repositories
	accountRepo := repositories.NewAccountRepository()

	// Initialize Services
	accountService := services.NewAccountService(accountRepo, db)

	// Initialize Handlers
	accountHandler := handlers.NewAccountHandler(accountService)

	engine.GET("/", handlers.Index)
	engine.GET("/health", handlers.HealthCheck)

	SetupAccountRoutes(engine, accountHandler)
}

// SetupAccountRoutes sets up the account resource routes.
func SetupAccountRoutes(engine *gin.Engine, accountHandler *handlers.AccountHandler) {
	accountRoutes := engine.Group("/accounts")
	{
		accountRoutes.POST("", accountHandler.CreateAccount)
		accountRoutes.GET("", accountHandler.GetAccounts)
		accountRoutes.GET("/:id", accountHandler.GetAccountByID)
		accountRoutes.PUT("/:id", accountHandler.UpdateAccount)
		accountRoutes.DELETE("/:id", accountHandler.DeleteAccount)
	}
}
