// @title Qualityze Admin API
// @version 1.0
// @description Backend API for the Qualityze marketing site and content admin panel
// @contact.name API Support
// @contact.email support@example.com
// @license.name MIT
// @license.url https://opensource.org/licenses/MIT
// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization

package main

import (
	"log"

	"qualityze-admin-be/config"
	"qualityze-admin-be/internal/database"
	"qualityze-admin-be/internal/handlers"
	"qualityze-admin-be/internal/middleware"
	"qualityze-admin-be/internal/repository"
	"qualityze-admin-be/internal/services"

	"github.com/gin-gonic/gin"

	_ "qualityze-admin-be/docs"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Connect to MongoDB
	mongodb, err := database.NewMongoDB(cfg.MongoDBURI, cfg.MongoDBDatabase)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer mongodb.Disconnect()

	// Initialize repositories
	userRepo := repository.NewUserRepository(mongodb)
	downloadRepo := repository.NewDownloadRepository(mongodb)
	statsRepo := repository.NewDownloadStatsRepository(mongodb)
	trainingRepo := repository.NewTrainingRepository(mongodb)
	speakerRepo := repository.NewSpeakerRepository(mongodb)
	serviceRepo := repository.NewServiceRepository(mongodb)
	emailConfigRepo := repository.NewEmailConfigRepository(mongodb)
	emailLogRepo := repository.NewEmailLogRepository(mongodb)

	// View invalidation: signal the frontend when a revalidation secret is
	// configured, otherwise just log
	var invalidator services.ViewInvalidator
	if cfg.RevalidateSecret != "" {
		invalidator = services.NewHTTPInvalidator(cfg.FrontendURL, cfg.RevalidateSecret)
	} else {
		invalidator = services.LogInvalidator{}
	}

	// Initialize services
	downloadService := services.NewDownloadService(downloadRepo, statsRepo, invalidator)
	trainingService := services.NewTrainingService(trainingRepo, speakerRepo, invalidator)
	contentService := services.NewContentService(serviceRepo, invalidator)
	emailService := services.NewEmailService(emailConfigRepo, emailLogRepo, services.NewMailer(cfg.EmailProvider), invalidator)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(cfg, userRepo)
	downloadHandler := handlers.NewDownloadHandler(downloadService)
	trainingHandler := handlers.NewTrainingHandler(trainingService)
	serviceHandler := handlers.NewServiceHandler(contentService, cfg.UploadDir)
	emailHandler := handlers.NewEmailSettingsHandler(emailService)
	searchHandler := handlers.NewSearchHandler(trainingService, contentService)

	// Initialize Gin
	r := gin.Default()

	// Apply CORS middleware
	r.Use(middleware.CORS(cfg))

	// Uploaded service images
	r.Static("/uploads", cfg.UploadDir)

	// Public routes
	public := r.Group("/api")
	{
		// Health check
		public.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"status":   "ok",
				"message":  "Qualityze Admin API is running",
				"database": "MongoDB connected",
			})
		})

		// Auth routes
		auth := public.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
			auth.POST("/refresh", authHandler.RefreshToken)
		}

		// Public lead capture
		public.POST("/downloads", downloadHandler.Create)

		// Public content
		public.GET("/trainings", trainingHandler.List)
		public.GET("/trainings/:id", trainingHandler.Get)
		public.GET("/services", serviceHandler.List)
		public.GET("/services/:slug", serviceHandler.Get)
	}

	// Protected routes
	protected := r.Group("/api")
	protected.Use(middleware.AuthMiddleware(cfg))
	{
		// Auth protected routes
		protected.POST("/auth/logout", authHandler.Logout)
		protected.GET("/auth/me", authHandler.GetMe)

		admin := protected.Group("/admin")

		// Downloads
		admin.GET("/downloads", downloadHandler.List)
		admin.GET("/downloads/stats", downloadHandler.Stats)
		admin.GET("/downloads/export", downloadHandler.Export)
		admin.GET("/downloads/:id", downloadHandler.Get)
		admin.PATCH("/downloads/:id/follow-up", downloadHandler.UpdateFollowUp)
		admin.DELETE("/downloads/:id", downloadHandler.Delete)

		// Trainings
		admin.POST("/trainings", trainingHandler.Create)
		admin.PUT("/trainings/:id", trainingHandler.Update)
		admin.DELETE("/trainings/:id", trainingHandler.Delete)
		admin.POST("/trainings/:id/featured", trainingHandler.ToggleFeatured)
		admin.GET("/speakers", trainingHandler.Speakers)

		// Services
		admin.POST("/services", serviceHandler.Create)
		admin.PUT("/services/:slug", serviceHandler.Update)
		admin.DELETE("/services/:slug", serviceHandler.Delete)

		// Email settings
		admin.GET("/email/config", emailHandler.GetConfig)
		admin.PUT("/email/config", emailHandler.SaveConfig)
		admin.POST("/email/test", emailHandler.TestSend)
		admin.GET("/email/logs", emailHandler.Logs)

		// Quick search
		admin.GET("/search/suggestions", searchHandler.Suggestions)
	}

	// Swagger route
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Start server
	log.Printf("Server starting on port %s", cfg.Port)
	log.Printf("Connected to MongoDB: %s", cfg.MongoDBDatabase)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
