package api

import "github.com/nutrivo/backend/internal/types"

// SuggestionsResponse is the uniform caller-facing envelope: either the
// full shortlist with success=true, or an empty list with an error
// message. There is no partial-success mode.
type SuggestionsResponse struct {
	Success bool                    `json:"success"`
	Recipes []types.SuggestedRecipe `json:"recipes"`
	Error   string                  `json:"error,omitempty"`
}

// CommunityRecipesResponse extends the envelope with pagination fields.
type CommunityRecipesResponse struct {
	Success bool                    `json:"success"`
	Recipes []types.SuggestedRecipe `json:"recipes"`
	Total   int64                   `json:"total"`
	HasMore bool                    `json:"has_more"`
	Page    int                     `json:"page"`
	Limit   int                     `json:"limit"`
	Error   string                  `json:"error,omitempty"`
}

// SubmitRecipeRequest is the community recipe submission payload.
type SubmitRecipeRequest struct {
	Title       string   `json:"title" binding:"required"`
	ImageURL    *string  `json:"image_url"`
	PrepTime    int      `json:"prep_time"`
	Servings    int      `json:"servings"`
	Calories    float64  `json:"calories"`
	Ingredients string   `json:"ingredients" binding:"required"`
	Tags        []string `json:"tags"`
	AuthorID    string   `json:"author_id"`
}

// RateRecipeRequest is the rating submission payload.
type RateRecipeRequest struct {
	UserID string `json:"user_id" binding:"required"`
	Stars  int    `json:"stars" binding:"required"`
}
