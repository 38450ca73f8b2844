package main

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"fixfleet-server/config"
	"fixfleet-server/middleware"
	"fixfleet-server/routes"
	"fixfleet-server/services"
	"fixfleet-server/store"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	// Load configuration
	config.Load()

	if config.AppConfig.Server.GinMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// In-memory stores; all state is lost on restart
	directory := store.NewDirectoryStore()
	users := store.NewUserStore()
	seedWorkers(directory)

	// Services
	tokens := services.NewTokenService()
	otps := services.NewOTPService(time.Duration(config.AppConfig.OTP.ExpiryMinutes) * time.Minute)
	sms := services.NewSMSSenderFromConfig()
	oauth := services.NewOAuthService()

	// Create router
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(middleware.InputValidationMiddleware())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.AppConfig.Server.FrontendURL},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "FixFleet API is running",
			"time":    time.Now().UTC(),
		})
	})

	// API routes
	api := router.Group("/api")
	{
		directoryHandler := routes.NewDirectoryHandler(directory)
		routes.RegisterWorkerRoutes(api, directoryHandler)
		routes.RegisterBookingRoutes(api, directoryHandler)

		authHandler := routes.NewAuthHandler(users, tokens, otps, sms, oauth)
		authRoutes := api.Group("/auth")
		routes.RegisterAuthRoutes(authRoutes, authHandler)
	}

	logProviderStatus()

	port := config.AppConfig.Server.Port
	log.Printf("🚀 FixFleet API running on http://localhost:%s", port)
	if err := router.Run("0.0.0.0:" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

// logProviderStatus mirrors the configured/demo state of each external
// collaborator at startup.
func logProviderStatus() {
	log.Println("📋 OAuth Status:")
	if config.AppConfig.Google.ClientID != "" {
		log.Println("   Google: ✅ Configured")
	} else {
		log.Println("   Google: ❌ Not configured")
	}
	if config.AppConfig.Facebook.ClientID != "" {
		log.Println("   Facebook: ✅ Configured")
	} else {
		log.Println("   Facebook: ❌ Not configured")
	}
	if config.AppConfig.Twilio.AccountSID != "" {
		log.Println("   SMS: ✅ Twilio Active")
	} else {
		log.Println("   SMS: ⚠️ Demo Mode")
	}
}
