package routes

import (
	"log"

	"mingus/internal/config"
	"mingus/internal/database"
	v1 "mingus/internal/delivery/http/routes/v1"
	"mingus/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type Deps = v1.Deps

func RegisterV1(r fiber.Router, cfg config.Config, db database.DB, cache usecase.RecommendationCache, logger *log.Logger) {
	if r == nil {
		return
	}

	v1.Register(r, cfg, db, cache, logger)
}

func RegisterV1Deps(r fiber.Router, cfg config.Config, deps Deps) {
	if r == nil {
		return
	}

	v1.RegisterDeps(r, cfg, deps)
}
