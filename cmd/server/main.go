package main

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/hikaru-dev/calc-forest-api/internal/config"
	"github.com/hikaru-dev/calc-forest-api/internal/database"
	"github.com/hikaru-dev/calc-forest-api/internal/handlers"
	"github.com/hikaru-dev/calc-forest-api/internal/middleware"
	"github.com/hikaru-dev/calc-forest-api/internal/repository"
	"github.com/hikaru-dev/calc-forest-api/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	if err := database.AddIndexes(database.GetDB()); err != nil {
		log.Fatalf("Failed to add indexes: %v", err)
	}

	// Initialize repositories and services
	userRepo := repository.NewUserRepository(database.GetDB())
	calcRepo := repository.NewCalculationRepository(database.GetDB())

	authService := services.NewAuthService(userRepo)
	tokenService := services.NewTokenService(cfg.JWTSecret, time.Duration(cfg.TokenTTLHours)*time.Hour)
	calcService := services.NewCalculationService(calcRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, tokenService)
	calcHandler := handlers.NewCalculationHandler(calcService)

	// Initialize Gin router
	r := gin.Default()

	// The browser client is served from a different origin
	r.Use(cors.Default())

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	// API routes
	api := r.Group("/api")
	{
		// Registration and login are open
		api.POST("/register", authHandler.Register)
		api.POST("/login", authHandler.Login)

		// Reading the shared forest is open; mutation requires a valid token
		api.GET("/calculations", calcHandler.List)
		api.POST("/calculations", middleware.RequireAuth(tokenService), calcHandler.CreateRoot)
		api.POST("/calculations/:parentId/operations", middleware.RequireAuth(tokenService), calcHandler.CreateOperation)
	}

	// Start server
	log.Printf("Server starting on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
