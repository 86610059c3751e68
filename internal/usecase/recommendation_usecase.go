package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"mingus/internal/domain/recommend"
	"mingus/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrUnauthorized    = errors.New("unauthorized")
	ErrInternal        = errors.New("internal error")
	ErrProfileNotFound = errors.New("profile not found")
	ErrInvalidProfile  = errors.New("invalid profile")
)

type RecommendationParams struct {
	LimitPerTier int
}

type RecommendationUsecase interface {
	GetRecommendations(ctx context.Context, userID uuid.UUID, params RecommendationParams) (recommend.TieredResult, error)
}

type Recommendation struct {
	profiles   repository.ProfileRepository
	catalog    repository.CatalogRepository
	alignments repository.AlignmentRepository
	cache      RecommendationCache
	assembler  *recommend.Assembler
	logger     *log.Logger

	workers      int
	catalogBatch int
	cacheTTL     time.Duration
}

type RecommendationDeps struct {
	Profiles   repository.ProfileRepository
	Catalog    repository.CatalogRepository
	Alignments repository.AlignmentRepository
	Cache      RecommendationCache
	Logger     *log.Logger

	Workers      int
	CatalogBatch int
	CacheTTL     time.Duration
}

func NewRecommendationUsecase(deps RecommendationDeps) *Recommendation {
	logger := deps.Logger
	if logger == nil {
		logger = log.Default()
	}
	batch := deps.CatalogBatch
	if batch <= 0 {
		batch = 2000
	}
	ttl := deps.CacheTTL
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &Recommendation{
		profiles:     deps.Profiles,
		catalog:      deps.Catalog,
		alignments:   deps.Alignments,
		cache:        deps.Cache,
		assembler:    recommend.NewAssembler(logger),
		logger:       logger,
		workers:      deps.Workers,
		catalogBatch: batch,
		cacheTTL:     ttl,
	}
}

func (u *Recommendation) GetRecommendations(ctx context.Context, userID uuid.UUID, params RecommendationParams) (recommend.TieredResult, error) {
	if userID == uuid.Nil {
		return recommend.TieredResult{}, ErrUnauthorized
	}

	limit := params.LimitPerTier
	if limit <= 0 {
		limit = recommend.DefaultLimitPerTier
	}
	if limit > recommend.MaxLimitPerTier {
		limit = recommend.MaxLimitPerTier
	}

	cacheKey := recommendationCacheKey(userID, limit)
	if u.cache != nil {
		var cached recommend.TieredResult
		if hit, err := u.cache.GetJSON(ctx, cacheKey, &cached); err == nil && hit {
			return cached, nil
		}
	}

	prof, err := u.profiles.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return recommend.TieredResult{}, ErrProfileNotFound
		}
		return recommend.TieredResult{}, ErrInternal
	}
	if err := prof.Validate(); err != nil {
		return recommend.TieredResult{}, fmt.Errorf("%w: %v", ErrInvalidProfile, err)
	}

	postings, err := u.catalog.ListActivePostings(ctx, u.catalogBatch, 0)
	if err != nil {
		return recommend.TieredResult{}, ErrInternal
	}
	if len(postings) == 0 {
		// Nothing recommendable is not an error; the caller gets empty buckets.
		return recommend.TieredResult{}, nil
	}

	ids := make([]uuid.UUID, 0, len(postings))
	for _, j := range postings {
		if j.ID == uuid.Nil {
			continue
		}
		ids = append(ids, j.ID)
	}

	var alignments map[uuid.UUID]float64
	if u.alignments != nil {
		alignments, err = u.alignments.FindByPostingIDs(ctx, ids)
		if err != nil {
			// The signal is optional; score without it rather than fail.
			u.logger.Printf("[Recommendations] Alignment signal unavailable, scoring without it: %v", err)
			alignments = nil
		}
	}

	res, err := u.assembler.Assemble(ctx, prof, postings, recommend.Options{
		LimitPerTier: limit,
		Workers:      u.workers,
		Alignments:   alignments,
	})
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return recommend.TieredResult{}, err
		}
		return recommend.TieredResult{}, fmt.Errorf("%w: %v", ErrInvalidProfile, err)
	}

	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, cacheKey, res, u.cacheTTL); err != nil {
			u.logger.Printf("[Recommendations] Cache write failed key=%s err=%v", cacheKey, err)
		}
	}

	return res, nil
}

func recommendationCacheKey(userID uuid.UUID, limit int) string {
	return fmt.Sprintf("recs:%s:limit:%d", userID, limit)
}
