// Package server contains the HTTP handlers for the blogging API.
package server

import (
	"context"
	"time"

	"inkwell/internal/cache"
	"inkwell/internal/config"
	"inkwell/internal/database"
	"inkwell/internal/middleware"
	"inkwell/internal/models"
	"inkwell/internal/repository"
	"inkwell/internal/storage"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/redis/go-redis/v9"
)

// Server holds all dependencies and provides handlers
type Server struct {
	config   *config.Config
	app      *fiber.App
	redis    *redis.Client
	userRepo repository.UserRepository
	blogRepo repository.BlogRepository
	signer   storage.Signer
}

// NewServer creates a server instance, establishing the document-store,
// cache, and object-storage collaborators.
func NewServer(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(context.Background(), cfg)
	if err != nil {
		return nil, err
	}

	signer, err := storage.NewS3Signer(cfg)
	if err != nil {
		return nil, err
	}

	redisClient := cache.New(cfg.RedisURL)

	return NewServerWithDeps(cfg, repository.NewUserRepository(db), repository.NewBlogRepository(db), signer, redisClient), nil
}

// NewServerWithDeps creates a Server using already-initialized dependencies.
// Use this in tests or when a bootstrap layer establishes them explicitly.
func NewServerWithDeps(cfg *config.Config, userRepo repository.UserRepository, blogRepo repository.BlogRepository, signer storage.Signer, redisClient *redis.Client) *Server {
	return &Server{
		config:   cfg,
		redis:    redisClient,
		userRepo: userRepo,
		blogRepo: blogRepo,
		signer:   signer,
	}
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	// Panic recovery
	app.Use(recover.New())

	// Request ID for tracing
	app.Use(requestid.New())

	// Prometheus metrics
	prom := fiberprometheus.New("inkwell-api")
	prom.RegisterAt(app, "/metrics")
	app.Use(prom.Middleware)

	// Structured logging middleware (after requestid)
	app.Use(middleware.StructuredLogger())

	app.Use(cors.New(cors.Config{
		AllowOrigins: s.config.AllowedOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
}

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	app.Get("/health", s.HealthCheck)

	app.Post("/signup", middleware.RateLimit(
		s.redis, 3, 10*time.Minute, "signup"), s.Signup)
	app.Post("/signin", middleware.RateLimit(
		s.redis, 10, 5*time.Minute, "signin"), s.Signin)

	app.Get("/get-upload-url", s.GetUploadURL)
	app.Get("/latest-blogs", s.LatestBlogs)
	app.Post("/create-blog", s.CreateBlog)
}

// HealthCheck reports readiness of the store and cache collaborators.
func (s *Server) HealthCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	dbStatus := "healthy"
	if err := database.Ping(ctx); err != nil {
		dbStatus = "unhealthy"
	}

	redisStatus := "healthy"
	if s.redis == nil {
		redisStatus = "unavailable"
	} else if err := s.redis.Ping(ctx).Err(); err != nil {
		redisStatus = "unhealthy"
	}

	status := fiber.StatusOK
	overall := "healthy"
	if dbStatus != "healthy" {
		status = fiber.StatusServiceUnavailable
		overall = "unhealthy"
	}

	return c.Status(status).JSON(fiber.Map{
		"status": overall,
		"checks": fiber.Map{
			"database": dbStatus,
			"redis":    redisStatus,
		},
		"time": time.Now(),
	})
}

// Start starts the server
func (s *Server) Start() error {
	app := fiber.New(fiber.Config{
		AppName: "Inkwell API",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			middleware.Logger.Error("unhandled error", "path", c.Path(), "error", err)
			return models.RespondWithError(c, fiber.StatusInternalServerError,
				models.NewInternalError(err))
		},
	})
	s.app = app

	s.SetupMiddleware(app)
	s.SetupRoutes(app)

	middleware.Logger.Info("server starting", "port", s.config.Port)
	return app.Listen(":" + s.config.Port)
}

// Shutdown gracefully shuts down the server and its collaborators.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.app != nil {
		if err := s.app.ShutdownWithContext(ctx); err != nil {
			middleware.Logger.Error("error shutting down HTTP server", "error", err)
		}
	}

	cache.Close(s.redis)

	if err := database.Disconnect(ctx); err != nil {
		middleware.Logger.Error("error disconnecting database", "error", err)
	}

	middleware.Logger.Info("server shutdown complete")
	return nil
}
