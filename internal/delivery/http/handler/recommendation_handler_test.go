package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"mingus/internal/delivery/http/dto"
	"mingus/internal/delivery/http/middleware"
	"mingus/internal/domain/catalog"
	"mingus/internal/domain/recommend"
	"mingus/internal/domain/scoring"
	"mingus/internal/pkg/response"
	"mingus/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type mockRecommendationUsecase struct {
	res       recommend.TieredResult
	err       error
	gotUserID uuid.UUID
	gotParams usecase.RecommendationParams
}

func (m *mockRecommendationUsecase) GetRecommendations(_ context.Context, userID uuid.UUID, params usecase.RecommendationParams) (recommend.TieredResult, error) {
	m.gotUserID = userID
	m.gotParams = params
	if m.err != nil {
		return recommend.TieredResult{}, m.err
	}
	return m.res, nil
}

func newTestApp(uc usecase.RecommendationUsecase, userID any) *fiber.App {
	app := fiber.New()
	app.Use(middleware.NewErrorMiddleware().Middleware())
	app.Use(func(c fiber.Ctx) error {
		if userID != nil {
			c.Locals(middleware.CtxUserIDKey, userID)
		}
		return c.Next()
	})
	NewRecommendationHandler(uc).RegisterRoutes(app)
	return app
}

func decodeEnvelope(t *testing.T, body io.Reader) response.SemanticResponse {
	t.Helper()
	var env response.SemanticResponse
	if err := json.NewDecoder(body).Decode(&env); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return env
}

func scoredJob(tier scoring.Tier) recommend.ScoredJob {
	return recommend.ScoredJob{
		Job: catalog.Posting{
			ID:          uuid.MustParse("7b8a1f0e-9c3d-4b2a-8f1e-6d5c4b3a2f10"),
			Title:       "Senior Data Engineer",
			Company:     "Acme",
			SalaryRange: catalog.SalaryRange{Min: 95000, Max: 105000},
		},
		Factors:            scoring.FactorScores{Salary: 90, Skills: 100, Career: 50, Company: 80, Location: 80, Growth: 75},
		OverallScore:       82.25,
		SalaryIncreasePct:  42.857142857142854,
		SuccessProbability: 0.779,
		Tier:               tier,
	}
}

func TestGetRecommendations_OK(t *testing.T) {
	userID := uuid.New()
	uc := &mockRecommendationUsecase{
		res: recommend.TieredResult{
			Optimal: []recommend.ScoredJob{scoredJob(scoring.TierOptimal)},
		},
	}
	app := newTestApp(uc, userID)

	req := httptest.NewRequest("GET", "/recommendations", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if uc.gotUserID != userID {
		t.Fatalf("expected user %s forwarded, got %s", userID, uc.gotUserID)
	}
	if uc.gotParams.LimitPerTier != recommend.DefaultLimitPerTier {
		t.Fatalf("expected default limit, got %d", uc.gotParams.LimitPerTier)
	}

	env := decodeEnvelope(t, resp.Body)
	b, _ := json.Marshal(env.Data)
	var out dto.TieredRecommendationsResponse
	if err := json.Unmarshal(b, &out); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if len(out.Optimal) != 1 {
		t.Fatalf("expected one optimal item, got %+v", out)
	}
	it := out.Optimal[0]
	if it.Tier != "optimal" || it.OverallScore != 82.25 || it.Company != "Acme" {
		t.Fatalf("unexpected item: %+v", it)
	}
	if len(out.Conservative) != 0 || len(out.Stretch) != 0 {
		t.Fatalf("expected empty conservative and stretch buckets, got %+v", out)
	}
}

func TestGetRecommendations_LimitQueryClamped(t *testing.T) {
	uc := &mockRecommendationUsecase{}
	app := newTestApp(uc, uuid.New())

	req := httptest.NewRequest("GET", "/recommendations?limit_per_tier=500", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	resp.Body.Close()

	if uc.gotParams.LimitPerTier != recommend.MaxLimitPerTier {
		t.Fatalf("expected limit clamped to %d, got %d", recommend.MaxLimitPerTier, uc.gotParams.LimitPerTier)
	}
}

func TestGetRecommendations_MissingUser(t *testing.T) {
	app := newTestApp(&mockRecommendationUsecase{}, nil)

	req := httptest.NewRequest("GET", "/recommendations", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}

func TestGetRecommendations_ErrorMapping(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"profile not found", usecase.ErrProfileNotFound, fiber.StatusNotFound},
		{"invalid profile", usecase.ErrInvalidProfile, fiber.StatusUnprocessableEntity},
		{"unauthorized", usecase.ErrUnauthorized, fiber.StatusUnauthorized},
		{"internal", usecase.ErrInternal, fiber.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := newTestApp(&mockRecommendationUsecase{err: tc.err}, uuid.New())

			req := httptest.NewRequest("GET", "/recommendations", nil)
			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("request failed: %v", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, resp.StatusCode)
			}
		})
	}
}
