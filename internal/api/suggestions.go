package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/nutrivo/backend/internal/service"
	"github.com/nutrivo/backend/internal/types"
)

// SuggestionHandler exposes the suggestion engine over HTTP.
type SuggestionHandler struct {
	suggestions service.ISuggestionService
	logger      *zap.Logger
}

func NewSuggestionHandler(suggestions service.ISuggestionService, logger *zap.Logger) *SuggestionHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SuggestionHandler{suggestions: suggestions, logger: logger}
}

func (h *SuggestionHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/suggestions", h.GetSuggestions)
	router.GET("/community-recipes", h.GetCommunityRecipes)
}

// GetSuggestions is a POST because the profile (list fields, targets) is
// a document, not a query string. Malformed list fields inside the body
// normalize to empty rather than rejecting the request.
func (h *SuggestionHandler) GetSuggestions(c *gin.Context) {
	var profile types.SuggestionProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.JSON(http.StatusBadRequest, SuggestionsResponse{
			Success: false,
			Recipes: []types.SuggestedRecipe{},
			Error:   "invalid profile payload",
		})
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			limit = n
		}
	}

	recipes, err := h.suggestions.GetSuggestions(c.Request.Context(), &profile, limit)
	if err != nil {
		h.logger.Error("failed to assemble suggestions",
			zap.String("user_id", profile.UserID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, SuggestionsResponse{
			Success: false,
			Recipes: []types.SuggestedRecipe{},
			Error:   "failed to fetch suggestions",
		})
		return
	}

	c.JSON(http.StatusOK, SuggestionsResponse{
		Success: true,
		Recipes: recipes,
	})
}

// GetCommunityRecipes pages through the whole approved catalog. Profile
// fields are optional query parameters used for scoring only; the listing
// applies no exclude filtering.
func (h *SuggestionHandler) GetCommunityRecipes(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	profile := profileFromQuery(c)

	result, err := h.suggestions.GetAllCommunityRecipes(c.Request.Context(), profile, page, limit)
	if err != nil {
		h.logger.Error("failed to list community recipes", zap.Error(err))
		c.JSON(http.StatusInternalServerError, CommunityRecipesResponse{
			Success: false,
			Recipes: []types.SuggestedRecipe{},
			Error:   "failed to fetch recipes",
		})
		return
	}

	c.JSON(http.StatusOK, CommunityRecipesResponse{
		Success: true,
		Recipes: result.Recipes,
		Total:   result.Total,
		HasMore: result.HasMore,
		Page:    result.Page,
		Limit:   result.Limit,
	})
}

func profileFromQuery(c *gin.Context) *types.SuggestionProfile {
	profile := &types.SuggestionProfile{
		UserID:   c.Query("user_id"),
		Goal:     c.Query("goal"),
		DietType: c.Query("diet_type"),
	}
	if raw := c.Query("cooking_time_weekday"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			profile.CookingTimeWeekday = &n
		}
	}
	if raw := c.Query("daily_calories_target"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			profile.DailyCaloriesTarget = &n
		}
	}
	if raw := c.Query("allergies"); raw != "" {
		profile.Allergies = splitTerms(raw)
	}
	if raw := c.Query("intolerances"); raw != "" {
		profile.Intolerances = splitTerms(raw)
	}
	return profile
}

func splitTerms(raw string) types.StringList {
	parts := strings.Split(raw, ",")
	out := make(types.StringList, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
