package service

import (
	"math"
	"strings"

	"github.com/nutrivo/backend/internal/models"
	"github.com/nutrivo/backend/internal/types"
)

const baseScore = 70

// MatchScore computes a 0-100 suitability score for a recipe against a
// profile. Additive heuristic over base 70:
//
//   - calorie fit against dailyCaloriesTarget/3: variance <= 0.2 -> +15,
//     <= 0.4 -> +5; no target at all -> +10
//   - prep time within cookingTimeWeekday -> +5, over -> -10
//   - allergen/intolerance term found in ingredients -> -30, confirmed
//     safe against a non-empty exclude list -> +10
//   - disliked food found in ingredients -> -20
//
// Exclude and dislike terms match as lowercase substrings of the free-text
// ingredients; the result is clamped to [0, 100].
func MatchScore(r *models.Recipe, p *types.SuggestionProfile) int {
	if p == nil {
		p = &types.SuggestionProfile{}
	}
	score := baseScore

	if p.DailyCaloriesTarget != nil && *p.DailyCaloriesTarget > 0 {
		targetPerMeal := float64(*p.DailyCaloriesTarget) / 3
		variance := math.Abs(r.Calories-targetPerMeal) / targetPerMeal
		switch {
		case variance <= 0.2:
			score += 15
		case variance <= 0.4:
			score += 5
		}
	} else {
		score += 10
	}

	if p.CookingTimeWeekday != nil {
		if r.PrepTime <= *p.CookingTimeWeekday {
			score += 5
		} else {
			score -= 10
		}
	}

	ingredients := strings.ToLower(r.Ingredients)

	if exclude := excludeTerms(p); len(exclude) > 0 {
		if containsAnyTerm(ingredients, exclude) {
			score -= 30
		} else {
			score += 10
		}
	}

	if disliked := lowerTerms(ParseListField(p.DislikedFoods)); len(disliked) > 0 {
		if containsAnyTerm(ingredients, disliked) {
			score -= 20
		}
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score
}
