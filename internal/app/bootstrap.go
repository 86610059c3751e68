package app

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"mingus/internal/config"
	"mingus/internal/database"
	"mingus/internal/database/postgres"
	"mingus/internal/delivery/http/handler"
	"mingus/internal/delivery/http/middleware"
	"mingus/internal/delivery/http/routes"
	"mingus/internal/infrastructure/cache"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber *fiber.App
}

func Bootstrap(cfg config.Config) (*App, func() error, error) {
	logger := log.New(os.Stdout, "", log.LstdFlags)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := postgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("connect postgres: %w", err)
	}

	redisCache := cache.NewRedis(logger)

	f := fiber.New(fiber.Config{AppName: cfg.App.AppName})

	registerGlobalMiddleware(f, logger)
	registerRoutes(f, cfg, db, redisCache, logger)

	cleanup := func() error {
		if err := redisCache.Close(); err != nil {
			logger.Printf("[App] Redis close error: %v", err)
		}
		return db.Close()
	}

	return &App{Fiber: f}, cleanup, nil
}

func registerGlobalMiddleware(app *fiber.App, logger *log.Logger) {
	if app == nil {
		return
	}

	app.Use(middleware.NewErrorMiddleware().Middleware())
	app.Use(middleware.NewAccessLogMiddleware(logger).Middleware())
}

func registerRoutes(app *fiber.App, cfg config.Config, db database.DB, redisCache *cache.Redis, logger *log.Logger) {
	if app == nil {
		return
	}

	app.Get("/health", handler.NewHealthHandler(db).Handle)

	api := app.Group("/api/v1")
	routes.RegisterV1(api, cfg, db, redisCache, logger)
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
