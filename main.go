package main

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"prompt-manager/config"
	"prompt-manager/handlers"
	"prompt-manager/middleware"
	"prompt-manager/pkg/logger"
	"prompt-manager/repositories"
	"prompt-manager/services"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	if err := logger.InitLogger(&logger.Config{
		Level:      cfg.LogLevel,
		Filename:   cfg.LogFilename,
		MaxSize:    cfg.LogMaxSize,
		MaxBackups: cfg.LogMaxBackups,
		MaxAge:     cfg.LogMaxAge,
		Compress:   cfg.LogCompress,
	}); err != nil {
		panic(err)
	}
	defer logger.Sync()

	// Initialize database
	db := config.InitDB(cfg)

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	promptRepo := repositories.NewPromptRepository(db)
	tagRepo := repositories.NewTagRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	versionRepo := repositories.NewPromptVersionRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo)
	promptService := services.NewPromptService(db, promptRepo, tagRepo, categoryRepo, versionRepo)
	tagService := services.NewTagService(tagRepo)
	categoryService := services.NewCategoryService(categoryRepo, promptRepo)
	libraryService := services.NewLibraryService(promptService, promptRepo, categoryRepo, tagRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	promptHandler := handlers.NewPromptHandler(promptService)
	tagHandler := handlers.NewTagHandler(tagService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	libraryHandler := handlers.NewLibraryHandler(libraryService)

	// Setup router
	router := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	// API routes
	api := router.Group("/api")
	{
		// Auth routes (public)
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		// Protected routes
		protected := api.Group("/")
		protected.Use(middleware.AuthMiddleware())
		{
			protected.GET("/auth/me", authHandler.Me)

			prompts := protected.Group("/prompts")
			{
				prompts.POST("", promptHandler.CreatePrompt)
				prompts.GET("", promptHandler.GetPrompts)
				prompts.GET("/:id", promptHandler.GetPrompt)
				prompts.PUT("/:id", promptHandler.UpdatePrompt)
				prompts.DELETE("/:id", promptHandler.DeletePrompt)
				prompts.POST("/:id/duplicate", promptHandler.DuplicatePrompt)
				prompts.GET("/:id/versions", promptHandler.GetPromptVersions)
			}

			categories := protected.Group("/categories")
			{
				categories.GET("", categoryHandler.GetCategories)
				categories.POST("", categoryHandler.CreateCategory)
				categories.PUT("/:id", categoryHandler.UpdateCategory)
				categories.DELETE("/:id", categoryHandler.DeleteCategory)
				categories.GET("/:id/subcategories", categoryHandler.GetSubcategories)
				categories.POST("/:id/subcategories", categoryHandler.CreateSubcategory)
			}

			subcategories := protected.Group("/subcategories")
			{
				subcategories.PUT("/:id", categoryHandler.UpdateSubcategory)
				subcategories.DELETE("/:id", categoryHandler.DeleteSubcategory)
			}

			tags := protected.Group("/tags")
			{
				tags.GET("", tagHandler.GetTags)
				tags.POST("", tagHandler.CreateTag)
				tags.DELETE("/:id", tagHandler.DeleteTag)
			}

			library := protected.Group("/library")
			{
				library.GET("/export", libraryHandler.Export)
				library.POST("/import", libraryHandler.Import)
			}
		}
	}

	zap.L().Info("server starting", zap.String("port", cfg.Port))
	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		zap.L().Fatal("server stopped", zap.Error(err))
	}
}
