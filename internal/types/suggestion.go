package types

// SuggestedRecipe is the transformed, scored recipe returned to callers.
type SuggestedRecipe struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	ImageURL      string   `json:"image_url"`
	PrepTime      int      `json:"prep_time"`
	Servings      int      `json:"servings"`
	Calories      int      `json:"calories"`
	Tags          []string `json:"tags"`
	MatchScore    int      `json:"match_score"`
	Source        string   `json:"source"`
	AuthorName    string   `json:"author_name,omitempty"`
	AverageRating float64  `json:"average_rating"`
	RatingsCount  int      `json:"ratings_count"`
}

// CommunityRecipesPage is one page of the community recipe listing.
type CommunityRecipesPage struct {
	Recipes []SuggestedRecipe `json:"recipes"`
	Total   int64             `json:"total"`
	HasMore bool              `json:"has_more"`
	Page    int               `json:"page"`
	Limit   int               `json:"limit"`
}
