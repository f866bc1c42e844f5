package routes

import (
	"fmt"

	"loadout-backend/internal/api/handlers"
	"loadout-backend/internal/api/middleware"
	"loadout-backend/internal/auth"
	"loadout-backend/internal/config"
	"loadout-backend/internal/logger"
	"loadout-backend/internal/repository"
	"loadout-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) (*gin.Engine, error) {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	recordStore := repository.NewRecordStore(db)
	loadoutRepo := repository.NewLoadoutRepository(db)
	likeRepo := repository.NewLikeRepository(db, cfg.LikeTxRetries)

	// Initialize services
	tableService := service.NewTableService(recordStore, cfg)
	modelService := service.NewModelService(recordStore, validator, tableService)
	typeService := service.NewAttachmentTypeService(recordStore, validator, tableService)
	attachmentService := service.NewAttachmentService(recordStore, validator, tableService)
	loadoutService := service.NewLoadoutService(loadoutRepo, likeRepo, validator, cfg, tableService)
	likeService := service.NewLikeService(likeRepo)

	// Initialize auth
	authService, err := auth.NewAuthService(cfg.JWTSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize auth service: %w", err)
	}
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	modelHandler := handlers.NewModelHandler(modelService)
	typeHandler := handlers.NewAttachmentTypeHandler(typeService)
	attachmentHandler := handlers.NewAttachmentHandler(attachmentService)
	loadoutHandler := handlers.NewLoadoutHandler(loadoutService)
	likeHandler := handlers.NewLikeHandler(likeService)
	tableHandler := handlers.NewTableHandler(tableService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 routes - All endpoints require authentication
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())

	{
		// Reference data forms. Writes are checked by the store, so a
		// non-admin submit surfaces as the permission banner.
		models := v1.Group("/models")
		{
			models.GET("", modelHandler.ListModels)
			models.POST("", modelHandler.SubmitModel)
			models.GET("/:id", modelHandler.GetModel)
		}

		types := v1.Group("/types")
		{
			types.GET("", typeHandler.ListAttachmentTypes)
			types.POST("", typeHandler.SubmitAttachmentType)
			types.GET("/:id", typeHandler.GetAttachmentType)
		}

		attachments := v1.Group("/attachments")
		{
			attachments.GET("", attachmentHandler.ListAttachments)
			attachments.POST("", attachmentHandler.SubmitAttachment)
			attachments.GET("/:id", attachmentHandler.GetAttachment)
		}

		loadouts := v1.Group("/loadouts")
		{
			loadouts.GET("", loadoutHandler.ListLoadouts)
			loadouts.POST("", loadoutHandler.CreateLoadout)
			loadouts.GET("/mine", loadoutHandler.ListMyLoadouts)
		}

		like := v1.Group("/like")
		{
			like.POST("", likeHandler.ToggleLike)
			like.GET("/:post", likeHandler.GetLikeState)
		}

		// Table views. Admin tables are gated per table by the service.
		tables := v1.Group("/tables")
		{
			tables.GET("", tableHandler.ListTables)
			tables.DELETE("", tableHandler.CloseViews)
			tables.GET("/:table", tableHandler.GetTable)
			tables.POST("/:table/intents", tableHandler.DispatchIntent)
		}
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString(logger.RequestIDKey),
		})
	})

	return router, nil
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(db)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}
