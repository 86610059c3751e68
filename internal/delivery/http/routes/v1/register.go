package v1

import (
	"log"

	"mingus/internal/config"
	"mingus/internal/database"
	"mingus/internal/delivery/http/handler"
	"mingus/internal/delivery/http/middleware"
	"mingus/internal/pkg/jwt"
	"mingus/internal/repository"
	"mingus/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

// Deps carries the repositories and supporting services the v1 surface needs.
// Tests inject in-memory implementations here.
type Deps struct {
	Profiles   repository.ProfileRepository
	Catalog    repository.CatalogRepository
	Alignments repository.AlignmentRepository
	Cache      usecase.RecommendationCache
	Logger     *log.Logger
}

func Register(r fiber.Router, cfg config.Config, db database.DB, cache usecase.RecommendationCache, logger *log.Logger) {
	if r == nil {
		return
	}

	RegisterDeps(r, cfg, Deps{
		Profiles:   repository.NewPostgresProfileRepository(db),
		Catalog:    repository.NewPostgresCatalogRepository(db),
		Alignments: repository.NewPostgresAlignmentRepository(db),
		Cache:      cache,
		Logger:     logger,
	})
}

func RegisterDeps(r fiber.Router, cfg config.Config, deps Deps) {
	if r == nil {
		return
	}

	verifier := jwt.NewHMACVerifier(cfg.JWT.AccessSecret)
	authMw := middleware.NewAuthMiddleware(verifier)

	recUC := usecase.NewRecommendationUsecase(usecase.RecommendationDeps{
		Profiles:     deps.Profiles,
		Catalog:      deps.Catalog,
		Alignments:   deps.Alignments,
		Cache:        deps.Cache,
		Logger:       deps.Logger,
		Workers:      cfg.Engine.Workers,
		CatalogBatch: cfg.Engine.CatalogBatch,
		CacheTTL:     cfg.Engine.CacheTTL,
	})

	recHandler := handler.NewRecommendationHandler(recUC)

	protected := r.Group("", authMw.Middleware())
	recHandler.RegisterRoutes(protected)
}
