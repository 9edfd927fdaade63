package main

import (
	"log"
	"net/http"

	"article-hub/config"
	"article-hub/handlers"
	"article-hub/middleware"
	"article-hub/openrouter"
	"article-hub/repositories"
	"article-hub/services"
	"article-hub/session"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg := config.Load()

	// Initialize database
	db := config.InitDB(cfg)

	// Optional Redis backend for the login rate limiter
	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
	}

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	articleRepo := repositories.NewArticleRepository(db)

	// Initialize services
	revocations := session.NewRevocationList()
	aiClient := openrouter.NewClient(cfg.OpenRouterAPIKey)
	authService := services.NewAuthService(userRepo, revocations)
	articleService := services.NewArticleService(articleRepo, aiClient, cfg.AISearchEnabled)
	tagService := services.NewTagService(articleRepo)
	summaryService := services.NewSummaryService(aiClient, cfg.AISummaryEnabled)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	articleHandler := handlers.NewArticleHandler(articleService)
	tagHandler := handlers.NewTagHandler(tagService)
	summarizeHandler := handlers.NewSummarizeHandler(aiClient, summaryService)

	loginLimiter := middleware.NewLoginLimiter(cfg.LoginLimit, cfg.LoginWindow, rdb)

	// Setup router
	router := gin.Default()

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	// Throttled logins land here
	router.GET(middleware.TooFastPath, func(c *gin.Context) {
		c.JSON(http.StatusTooManyRequests, gin.H{
			"success": false,
			"error":   "Too many login attempts, slow down",
		})
	})

	// API routes
	v1 := router.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", loginLimiter.Middleware(), authHandler.Login)
		}

		// Protected routes
		protected := v1.Group("/")
		protected.Use(middleware.AuthMiddleware(revocations))
		{
			protected.POST("/auth/logout", authHandler.Logout)
			protected.GET("/users/me", authHandler.GetProfile)
			protected.GET("/tags", tagHandler.GetTags)
			protected.POST("/summarize", summarizeHandler.Summarize)

			// Articles
			articles := protected.Group("/articles")
			{
				articles.POST("", articleHandler.CreateArticle)
				articles.GET("", articleHandler.GetArticles)
				articles.POST("/summarize", summarizeHandler.SummarizeArticle)
				articles.GET("/:id", articleHandler.GetArticle)
				articles.PUT("/:id", articleHandler.UpdateArticle)
				articles.PATCH("/:id/summary", articleHandler.UpdateSummary)
				articles.DELETE("/:id", articleHandler.DeleteArticle)
			}
		}
	}

	// Start server
	log.Printf("Server starting on port %s", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, router))
}
