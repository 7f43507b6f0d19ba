package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/nutrivo/backend/internal/types"
)

// SuggestionCache memoizes assembled suggestion lists per user. The
// suggestion service treats it as advisory: any error here is logged and
// the request falls through to direct computation.
type SuggestionCache interface {
	Get(ctx context.Context, key string) ([]types.SuggestedRecipe, bool, error)
	Set(ctx context.Context, key string, recipes []types.SuggestedRecipe, ttl time.Duration) error
}

// SuggestionCacheKey derives the cache key for a user's suggestions.
func SuggestionCacheKey(userID string) string {
	return "suggestions:user:" + userID
}

// RedisSuggestionCache stores suggestion lists as JSON in Redis.
type RedisSuggestionCache struct {
	client *redis.Client
}

func NewRedisSuggestionCache(client *redis.Client) *RedisSuggestionCache {
	return &RedisSuggestionCache{client: client}
}

func (c *RedisSuggestionCache) Get(ctx context.Context, key string) ([]types.SuggestedRecipe, bool, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to get cached suggestions: %w", err)
	}

	var recipes []types.SuggestedRecipe
	if err := json.Unmarshal(data, &recipes); err != nil {
		return nil, false, fmt.Errorf("failed to decode cached suggestions: %w", err)
	}
	return recipes, true, nil
}

func (c *RedisSuggestionCache) Set(ctx context.Context, key string, recipes []types.SuggestedRecipe, ttl time.Duration) error {
	data, err := json.Marshal(recipes)
	if err != nil {
		return fmt.Errorf("failed to encode suggestions: %w", err)
	}
	if err := c.client.Set(ctx, key, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache suggestions: %w", err)
	}
	return nil
}
