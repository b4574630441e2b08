// @title Study Byte API
// @version 1.0
// @description PDF study assistant backed by a local Ollama endpoint.
// @BasePath /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
// @description Type 'Bearer YOUR_JWT_TOKEN' to authorize.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"study-byte/internal/adapter"
	"study-byte/internal/adapter/llm"
	"study-byte/internal/cache"
	"study-byte/internal/config"
	"study-byte/internal/database"
	"study-byte/internal/domain"
	"study-byte/internal/handler"
	"study-byte/internal/logger"
	"study-byte/internal/middleware"
	"study-byte/internal/repository"
	"study-byte/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

// requestLogger logs every HTTP request with its outcome.
func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		path := c.Path()
		method := c.Method()

		err := c.Next()

		logger.Get().Info("HTTP Request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("duration", time.Since(start)),
			zap.String("ip", c.IP()),
		)
		return err
	}
}

// userOrIP keys rate limits by authenticated user when available, falling
// back to the client address for anonymous requests.
func userOrIP(c *fiber.Ctx) string {
	if userID := middleware.UserID(c); userID != "" {
		return userID
	}
	return c.IP()
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	// Connect to database
	db, err := database.NewSQLXOracleDB(cfg.GetDSN())
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Ollama inference client
	ollamaClient, err := llm.NewOllamaClient(cfg.Ollama.URL, cfg.Ollama.Model)
	if err != nil {
		appLogger.Fatal("Failed to create Ollama client", zap.Error(err))
	}
	appLogger.Info("Ollama client initialized",
		zap.String("url", cfg.Ollama.URL), zap.String("model", cfg.Ollama.Model))

	// Redis response cache. The app still works without it.
	var cacheAdapter domain.Cache
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		appLogger.Warn("Redis unavailable, response caching disabled", zap.Error(err))
	} else {
		cacheAdapter = adapter.NewRedisCacheAdapter(redisClient)
		appLogger.Info("Redis cache initialized")
	}

	// Repositories
	userRepository := repository.NewSQLXUserRepository(db)
	documentRepository := repository.NewSQLXDocumentRepository(db)
	flashcardRepository := repository.NewSQLXFlashcardRepository(db)
	quizRepository := repository.NewSQLXQuizRepository(db)

	// Services
	generationService := service.NewGenerationService(ollamaClient, ollamaClient, cfg.Ollama.Model)
	aiService := service.NewAIService(documentRepository, generationService, cacheAdapter)
	authService := service.NewAuthService(userRepository, cfg.Auth)
	documentService := service.NewDocumentService(documentRepository, quizRepository)
	flashcardService := service.NewFlashcardService(flashcardRepository, documentRepository)
	quizService := service.NewQuizService(quizRepository, documentRepository)

	// Handlers
	aiHandler := handler.NewAIHandler(aiService)
	authHandler := handler.NewAuthHandler(authService)
	documentHandler := handler.NewDocumentHandler(documentService)
	flashcardHandler := handler.NewFlashcardHandler(flashcardService)
	quizHandler := handler.NewQuizHandler(quizService)

	app := newRouter(cfg.Server, authService,
		aiHandler, authHandler, documentHandler, flashcardHandler, quizHandler)

	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		appLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}

// newRouter builds the fiber app with its middleware chain and every route.
func newRouter(
	serverCfg config.ServerConfig,
	authService service.AuthService,
	aiHandler *handler.AIHandler,
	authHandler *handler.AuthHandler,
	documentHandler *handler.DocumentHandler,
	flashcardHandler *handler.FlashcardHandler,
	quizHandler *handler.QuizHandler,
) *fiber.App {
	app := fiber.New(fiber.Config{
		ReadTimeout:  serverCfg.ReadTimeout,
		WriteTimeout: serverCfg.WriteTimeout,
		BodyLimit:    10 * 1024 * 1024,
		ErrorHandler: middleware.ErrorHandler,
	})

	app.Use(requestLogger())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
		MaxAge:       300,
	}))
	app.Use(recover.New())
	app.Use(limiter.New(limiter.Config{
		Max:          100,
		Expiration:   15 * time.Minute,
		KeyGenerator: userOrIP,
	}))

	apiGroup := app.Group("/api")
	apiGroup.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Auth routes
	authGroup := apiGroup.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/refresh", authHandler.Refresh)
	authGroup.Get("/me", middleware.Protected(authService), authHandler.Me)

	// Document routes (all protected)
	documentGroup := apiGroup.Group("/documents", middleware.Protected(authService))
	documentGroup.Post("/", documentHandler.CreateDocument)
	documentGroup.Get("/", documentHandler.ListDocuments)
	documentGroup.Get("/:id", documentHandler.GetDocument)
	documentGroup.Delete("/:id", documentHandler.DeleteDocument)

	// AI routes (all protected). Generation is expensive, so those routes
	// carry a tighter limit; health and model listing stay outside it.
	aiLimiter := limiter.New(limiter.Config{
		Max:          30,
		Expiration:   time.Hour,
		KeyGenerator: userOrIP,
	})
	aiGroup := apiGroup.Group("/ai", middleware.Protected(authService))
	aiGroup.Get("/health", aiHandler.CheckHealth)
	aiGroup.Get("/models", aiHandler.ListModels)
	aiGroup.Post("/chat/:documentId", aiLimiter, aiHandler.Chat)
	aiGroup.Post("/summary/:documentId", aiLimiter, aiHandler.Summarize)
	aiGroup.Post("/explain/:documentId", aiLimiter, aiHandler.Explain)
	aiGroup.Post("/flashcards/:documentId", aiLimiter, aiHandler.GenerateFlashcards)
	aiGroup.Post("/quiz/:documentId", aiLimiter, aiHandler.GenerateQuiz)

	// Flashcard routes
	flashcardGroup := apiGroup.Group("/flashcards", middleware.Protected(authService))
	flashcardGroup.Post("/batch", flashcardHandler.SaveFlashcards)
	flashcardGroup.Post("/", flashcardHandler.CreateFlashcard)
	flashcardGroup.Get("/", flashcardHandler.ListFlashcards)
	flashcardGroup.Get("/favorites", flashcardHandler.ListFavorites)
	flashcardGroup.Patch("/:id/favorite", flashcardHandler.ToggleFavorite)
	flashcardGroup.Delete("/:id", flashcardHandler.DeleteFlashcard)

	// Quiz routes
	quizGroup := apiGroup.Group("/quizzes", middleware.Protected(authService))
	quizGroup.Post("/", quizHandler.SaveQuiz)
	quizGroup.Get("/", quizHandler.ListQuizzes)
	quizGroup.Get("/:id", quizHandler.GetQuiz)
	quizGroup.Post("/:id/submit", quizHandler.SubmitQuiz)
	quizGroup.Delete("/document/:documentId", quizHandler.DeleteQuizzesByDocument)
	quizGroup.Delete("/:id", quizHandler.DeleteQuiz)

	return app
}
