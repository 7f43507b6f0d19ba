package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/nutrivo/backend/internal/models"
)

var (
	ErrInvalidRating = errors.New("rating must be between 1 and 5 stars")
	ErrInvalidRecipe = errors.New("recipe requires a title and ingredients")
)

// RecipeService handles the write-side workflows that feed the recipe
// pool: community submissions and ratings. The suggestion engine itself
// never writes recipe rows.
type RecipeService struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewRecipeService(db *gorm.DB, logger *zap.Logger) *RecipeService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RecipeService{db: db, logger: logger}
}

// GetRecipe retrieves a recipe by ID.
func (s *RecipeService) GetRecipe(ctx context.Context, id uuid.UUID) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := s.db.WithContext(ctx).Preload("Author").First(&recipe, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

// SubmitCommunityRecipe inserts a user-submitted recipe. Submissions
// always enter as pending; approval happens in a separate moderation
// workflow, and only approved rows are ever suggested.
func (s *RecipeService) SubmitCommunityRecipe(ctx context.Context, recipe *models.Recipe) (*models.Recipe, error) {
	if recipe.Title == "" || recipe.Ingredients == "" {
		return nil, ErrInvalidRecipe
	}

	recipe.Source = models.SourceCommunity
	recipe.Status = models.StatusPending
	recipe.AverageRating = 0
	recipe.RatingsCount = 0
	if recipe.Tags == "" {
		recipe.Tags = "[]"
	}
	if recipe.Servings <= 0 {
		recipe.Servings = 1
	}

	if err := s.db.WithContext(ctx).Create(recipe).Error; err != nil {
		return nil, fmt.Errorf("failed to create recipe: %w", err)
	}

	s.logger.Info("community recipe submitted",
		zap.String("recipe_id", recipe.ID.String()),
		zap.String("title", recipe.Title))
	return recipe, nil
}

// RateRecipe upserts a user's rating and recomputes the recipe's
// aggregates in the same transaction. Rating again replaces the previous
// stars rather than adding a second row.
func (s *RecipeService) RateRecipe(ctx context.Context, recipeID, userID uuid.UUID, stars int) (*models.Recipe, error) {
	if stars < 1 || stars > 5 {
		return nil, ErrInvalidRating
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var recipe models.Recipe
		if err := tx.First(&recipe, "id = ?", recipeID).Error; err != nil {
			return err
		}

		rating := models.RecipeRating{
			RecipeID: recipeID,
			UserID:   userID,
			Stars:    stars,
		}
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "recipe_id"}, {Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"stars", "updated_at"}),
		}).Create(&rating).Error; err != nil {
			return fmt.Errorf("failed to save rating: %w", err)
		}

		var agg struct {
			Count int64
			Avg   float64
		}
		if err := tx.Model(&models.RecipeRating{}).
			Select("COUNT(*) AS count, COALESCE(AVG(stars), 0) AS avg").
			Where("recipe_id = ?", recipeID).
			Scan(&agg).Error; err != nil {
			return fmt.Errorf("failed to aggregate ratings: %w", err)
		}

		return tx.Model(&models.Recipe{}).
			Where("id = ?", recipeID).
			Updates(map[string]any{
				"average_rating": agg.Avg,
				"ratings_count":  agg.Count,
			}).Error
	})
	if err != nil {
		return nil, err
	}

	return s.GetRecipe(ctx, recipeID)
}
