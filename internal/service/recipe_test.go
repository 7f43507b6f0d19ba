package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/nutrivo/backend/internal/models"
)

func TestSubmitCommunityRecipe(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRecipeService(db, nil)

	created, err := svc.SubmitCommunityRecipe(context.Background(), &models.Recipe{
		Title:       "Tarte aux poireaux",
		Ingredients: "poireaux, pâte brisée, crème",
		PrepTime:    40,
		Calories:    520,
	})
	require.NoError(t, err)

	// Submissions always enter pending, regardless of what the caller set.
	assert.Equal(t, models.StatusPending, created.Status)
	assert.Equal(t, models.SourceCommunity, created.Source)
	assert.Equal(t, "[]", created.Tags)
	assert.Equal(t, 1, created.Servings)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Zero(t, created.AverageRating)
	assert.Zero(t, created.RatingsCount)
}

func TestSubmitCommunityRecipeRejectsIncomplete(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRecipeService(db, nil)

	_, err := svc.SubmitCommunityRecipe(context.Background(), &models.Recipe{Title: "Sans ingrédients"})
	assert.ErrorIs(t, err, ErrInvalidRecipe)

	_, err = svc.SubmitCommunityRecipe(context.Background(), &models.Recipe{Ingredients: "riz"})
	assert.ErrorIs(t, err, ErrInvalidRecipe)
}

func TestRateRecipeAggregates(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRecipeService(db, nil)

	recipe := seedRecipe(t, db, models.Recipe{
		Title: "notable", Calories: 500, PrepTime: 20,
		Ingredients: "riz", Source: models.SourceCommunity,
	})

	alice := uuid.New()
	bob := uuid.New()

	updated, err := svc.RateRecipe(context.Background(), recipe.ID, alice, 5)
	require.NoError(t, err)
	assert.Equal(t, 5.0, updated.AverageRating)
	assert.Equal(t, 1, updated.RatingsCount)

	updated, err = svc.RateRecipe(context.Background(), recipe.ID, bob, 3)
	require.NoError(t, err)
	assert.Equal(t, 4.0, updated.AverageRating)
	assert.Equal(t, 2, updated.RatingsCount)
}

func TestRateRecipeUpsertsPerUser(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRecipeService(db, nil)

	recipe := seedRecipe(t, db, models.Recipe{
		Title: "notable", Calories: 500, PrepTime: 20,
		Ingredients: "riz", Source: models.SourceCommunity,
	})

	alice := uuid.New()

	_, err := svc.RateRecipe(context.Background(), recipe.ID, alice, 2)
	require.NoError(t, err)

	updated, err := svc.RateRecipe(context.Background(), recipe.ID, alice, 5)
	require.NoError(t, err)

	// Re-rating replaces, it does not add a second row.
	assert.Equal(t, 5.0, updated.AverageRating)
	assert.Equal(t, 1, updated.RatingsCount)

	var count int64
	require.NoError(t, db.Model(&models.RecipeRating{}).
		Where("recipe_id = ?", recipe.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestRateRecipeValidation(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRecipeService(db, nil)

	recipe := seedRecipe(t, db, models.Recipe{
		Title: "notable", Calories: 500, PrepTime: 20,
		Ingredients: "riz", Source: models.SourceCommunity,
	})

	_, err := svc.RateRecipe(context.Background(), recipe.ID, uuid.New(), 0)
	assert.ErrorIs(t, err, ErrInvalidRating)

	_, err = svc.RateRecipe(context.Background(), recipe.ID, uuid.New(), 6)
	assert.ErrorIs(t, err, ErrInvalidRating)

	_, err = svc.RateRecipe(context.Background(), uuid.New(), uuid.New(), 4)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
