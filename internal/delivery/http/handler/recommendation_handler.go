package handler

import (
	"errors"
	"strconv"

	"mingus/internal/delivery/http/dto"
	"mingus/internal/delivery/http/middleware"
	"mingus/internal/domain/recommend"
	"mingus/internal/pkg/response"
	"mingus/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type RecommendationHandler struct {
	uc usecase.RecommendationUsecase
}

func NewRecommendationHandler(uc usecase.RecommendationUsecase) *RecommendationHandler {
	return &RecommendationHandler{uc: uc}
}

func (h *RecommendationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/recommendations", h.GetRecommendations)
}

func (h *RecommendationHandler) GetRecommendations(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	limit := parseQueryInt(c, "limit_per_tier", recommend.DefaultLimitPerTier)
	if limit < 1 {
		limit = recommend.DefaultLimitPerTier
	}
	if limit > recommend.MaxLimitPerTier {
		limit = recommend.MaxLimitPerTier
	}

	res, err := h.uc.GetRecommendations(c.Context(), userID, usecase.RecommendationParams{
		LimitPerTier: limit,
	})
	if err != nil {
		return mapRecommendationUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, toTieredResponse(res))
}

func toTieredResponse(res recommend.TieredResult) dto.TieredRecommendationsResponse {
	return dto.TieredRecommendationsResponse{
		Conservative: toItems(res.Conservative),
		Optimal:      toItems(res.Optimal),
		Stretch:      toItems(res.Stretch),
	}
}

func toItems(jobs []recommend.ScoredJob) []dto.RecommendationItem {
	out := make([]dto.RecommendationItem, 0, len(jobs))
	for _, sj := range jobs {
		out = append(out, dto.RecommendationItem{
			JobID:     sj.Job.ID,
			Title:     sj.Job.Title,
			Company:   sj.Job.Company,
			SalaryMin: sj.Job.SalaryRange.Min,
			SalaryMax: sj.Job.SalaryRange.Max,
			FactorScores: dto.FactorScoresResponse{
				Salary:   sj.Factors.Salary,
				Skills:   sj.Factors.Skills,
				Career:   sj.Factors.Career,
				Company:  sj.Factors.Company,
				Location: sj.Factors.Location,
				Growth:   sj.Factors.Growth,
			},
			OverallScore:       sj.OverallScore,
			SalaryIncreasePct:  sj.SalaryIncreasePct,
			SuccessProbability: sj.SuccessProbability,
			Tier:               string(sj.Tier),
		})
	}
	return out
}

func parseQueryInt(c fiber.Ctx, key string, defaultVal int) int {
	s := c.Query(key)
	if s == "" {
		return defaultVal
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return defaultVal
	}
	return v
}

func mapRecommendationUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
	case errors.Is(err, usecase.ErrProfileNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Career profile not found", nil, err)
	case errors.Is(err, usecase.ErrInvalidProfile):
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Career profile incomplete", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
