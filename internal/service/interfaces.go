package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/nutrivo/backend/internal/models"
	"github.com/nutrivo/backend/internal/types"
)

// ISuggestionService defines the read-side suggestion operations the API
// layer depends on.
type ISuggestionService interface {
	GetSuggestions(ctx context.Context, profile *types.SuggestionProfile, limit int) ([]types.SuggestedRecipe, error)
	GetAllCommunityRecipes(ctx context.Context, profile *types.SuggestionProfile, page, limit int) (*types.CommunityRecipesPage, error)
}

// IRecipeService defines the write-side recipe operations.
type IRecipeService interface {
	GetRecipe(ctx context.Context, id uuid.UUID) (*models.Recipe, error)
	SubmitCommunityRecipe(ctx context.Context, recipe *models.Recipe) (*models.Recipe, error)
	RateRecipe(ctx context.Context, recipeID, userID uuid.UUID, stars int) (*models.Recipe, error)
}
