package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"sort"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/nutrivo/backend/internal/metrics"
	"github.com/nutrivo/backend/internal/models"
	"github.com/nutrivo/backend/internal/types"
)

// ErrStoreUnavailable wraps any recipe store failure. Callers render a
// generic failure state; there is no partial-result mode.
var ErrStoreUnavailable = errors.New("recipe store unavailable")

const (
	defaultSuggestionLimit = 6
	defaultCommunityLimit  = 20
	defaultPlaceholder     = "/images/recipe-placeholder.jpg"
)

// SuggestionOptions carries the externally-configured knobs of the
// suggestion service.
type SuggestionOptions struct {
	CacheTTL         time.Duration
	PlaceholderImage string
}

// SuggestionService assembles ranked recipe shortlists from the preset and
// community pools. It only ever reads recipe rows.
type SuggestionService struct {
	db     *gorm.DB
	cache  SuggestionCache
	logger *zap.Logger
	opts   SuggestionOptions

	// rand.Rand is not safe for concurrent use.
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSuggestionService creates a SuggestionService. cache may be nil
// (caching disabled). rng may be nil, in which case a time-seeded source
// is used; tests inject a fixed seed for deterministic ordering.
func NewSuggestionService(db *gorm.DB, cache SuggestionCache, rng *rand.Rand, logger *zap.Logger, opts SuggestionOptions) *SuggestionService {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = 30 * time.Minute
	}
	if opts.PlaceholderImage == "" {
		opts.PlaceholderImage = defaultPlaceholder
	}
	return &SuggestionService{
		db:     db,
		cache:  cache,
		logger: logger,
		opts:   opts,
		rng:    rng,
	}
}

// GetSuggestions returns up to limit scored, source-mixed recipe
// suggestions for the profile. Results are cached per user id; cache
// failures fall through to direct computation.
func (s *SuggestionService) GetSuggestions(ctx context.Context, profile *types.SuggestionProfile, limit int) ([]types.SuggestedRecipe, error) {
	if profile == nil {
		profile = &types.SuggestionProfile{}
	}
	if limit <= 0 {
		limit = defaultSuggestionLimit
	}

	cacheKey := SuggestionCacheKey(profile.UserID)
	if s.cache != nil && profile.UserID != "" {
		cached, ok, err := s.cache.Get(ctx, cacheKey)
		if err != nil {
			s.logger.Warn("suggestion cache read failed, computing directly",
				zap.String("key", cacheKey), zap.Error(err))
		} else if ok {
			metrics.SuggestionCacheHits.Inc()
			return cached, nil
		} else {
			metrics.SuggestionCacheMisses.Inc()
		}
	}

	archetype := ClassifyProfile(profile)
	presetCount := (limit + 1) / 2
	communityCount := limit / 2

	// Both pools are independent reads; fetch them concurrently.
	type fetchResult struct {
		recipes []models.Recipe
		err     error
	}
	communityCh := make(chan fetchResult, 1)
	go func() {
		recipes, err := s.fetchCommunity(ctx, profile, communityCount)
		communityCh <- fetchResult{recipes: recipes, err: err}
	}()

	presets, presetErr := s.fetchPresets(ctx, archetype, presetCount)
	community := <-communityCh

	if presetErr != nil {
		metrics.SuggestionRequests.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, presetErr)
	}
	if community.err != nil {
		metrics.SuggestionRequests.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, community.err)
	}

	suggestions := make([]types.SuggestedRecipe, 0, len(presets)+len(community.recipes))
	for i := range presets {
		suggestions = append(suggestions, s.toSuggested(&presets[i], profile))
	}
	for i := range community.recipes {
		suggestions = append(suggestions, s.toSuggested(&community.recipes[i], profile))
	}

	// Shuffle before the stable sort so equal scores mix sources instead
	// of always listing presets first.
	s.mu.Lock()
	s.rng.Shuffle(len(suggestions), func(i, j int) {
		suggestions[i], suggestions[j] = suggestions[j], suggestions[i]
	})
	s.mu.Unlock()

	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].MatchScore > suggestions[j].MatchScore
	})

	if len(suggestions) > limit {
		suggestions = suggestions[:limit]
	}

	if s.cache != nil && profile.UserID != "" {
		if err := s.cache.Set(ctx, cacheKey, suggestions, s.opts.CacheTTL); err != nil {
			s.logger.Warn("suggestion cache write failed",
				zap.String("key", cacheKey), zap.Error(err))
		}
	}

	metrics.SuggestionRequests.WithLabelValues("ok").Inc()
	return suggestions, nil
}

// GetAllCommunityRecipes returns one page of the full recipe catalog
// (presets included), ordered by rating then recency. Unlike
// GetSuggestions, no exclude-list filtering is applied here: the browsing
// view deliberately shows everything.
func (s *SuggestionService) GetAllCommunityRecipes(ctx context.Context, profile *types.SuggestionProfile, page, limit int) (*types.CommunityRecipesPage, error) {
	if profile == nil {
		profile = &types.SuggestionProfile{}
	}
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = defaultCommunityLimit
	}

	sources := []string{models.SourceYouTube, models.SourceCommunity, models.SourceAIPreset}

	var total int64
	if err := s.db.WithContext(ctx).
		Model(&models.Recipe{}).
		Where("status = ? AND source IN ?", models.StatusApproved, sources).
		Count(&total).Error; err != nil {
		metrics.CommunityListRequests.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	var rows []models.Recipe
	if err := s.db.WithContext(ctx).
		Preload("Author").
		Where("status = ? AND source IN ?", models.StatusApproved, sources).
		Order("average_rating DESC").
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&rows).Error; err != nil {
		metrics.CommunityListRequests.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	recipes := make([]types.SuggestedRecipe, 0, len(rows))
	for i := range rows {
		recipes = append(recipes, s.toSuggested(&rows[i], profile))
	}

	metrics.CommunityListRequests.WithLabelValues("ok").Inc()
	return &types.CommunityRecipesPage{
		Recipes: recipes,
		Total:   total,
		HasMore: int64(page*limit) < total,
		Page:    page,
		Limit:   limit,
	}, nil
}

// fetchPresets retrieves up to limit approved preset recipes tagged with
// the archetype, best-rated first.
func (s *SuggestionService) fetchPresets(ctx context.Context, archetype types.Archetype, limit int) ([]models.Recipe, error) {
	if limit <= 0 {
		return nil, nil
	}
	var recipes []models.Recipe
	err := s.db.WithContext(ctx).
		Where("source = ? AND status = ? AND target_profile = ?",
			models.SourceAIPreset, models.StatusApproved, string(archetype)).
		Order("average_rating DESC").
		Order("created_at DESC").
		Limit(limit).
		Find(&recipes).Error
	if err != nil {
		return nil, err
	}
	return recipes, nil
}

// fetchCommunity retrieves up to limit approved community recipes. The
// query over-fetches 2x, then drops any recipe whose ingredients contain
// an exclude-list term before truncating.
func (s *SuggestionService) fetchCommunity(ctx context.Context, profile *types.SuggestionProfile, limit int) ([]models.Recipe, error) {
	if limit <= 0 {
		return nil, nil
	}
	var candidates []models.Recipe
	err := s.db.WithContext(ctx).
		Preload("Author").
		Where("source IN ? AND status = ?",
			[]string{models.SourceYouTube, models.SourceCommunity}, models.StatusApproved).
		Order("average_rating DESC").
		Order("ratings_count DESC").
		Order("created_at DESC").
		Limit(2 * limit).
		Find(&candidates).Error
	if err != nil {
		return nil, err
	}

	exclude := excludeTerms(profile)
	recipes := make([]models.Recipe, 0, limit)
	for i := range candidates {
		if len(exclude) > 0 && containsAnyTerm(strings.ToLower(candidates[i].Ingredients), exclude) {
			continue
		}
		recipes = append(recipes, candidates[i])
		if len(recipes) == limit {
			break
		}
	}
	return recipes, nil
}

// toSuggested transforms a recipe row into its scored output shape.
func (s *SuggestionService) toSuggested(r *models.Recipe, profile *types.SuggestionProfile) types.SuggestedRecipe {
	image := s.opts.PlaceholderImage
	if r.ImageURL != nil && *r.ImageURL != "" {
		image = *r.ImageURL
	}

	authorName := ""
	if r.Author != nil {
		authorName = r.Author.Name
	}

	return types.SuggestedRecipe{
		ID:            r.ID.String(),
		Name:          r.Title,
		ImageURL:      image,
		PrepTime:      r.PrepTime,
		Servings:      r.Servings,
		Calories:      int(math.Round(r.Calories)),
		Tags:          ParseListField(r.Tags),
		MatchScore:    MatchScore(r, profile),
		Source:        r.Source,
		AuthorName:    authorName,
		AverageRating: r.AverageRating,
		RatingsCount:  r.RatingsCount,
	}
}
