package service

import (
	"strings"

	"github.com/nutrivo/backend/internal/types"
)

// ClassifyProfile maps a profile onto one dietary archetype. Rules are
// priority-ordered, first match wins; diet type beats goal. The family
// archetype is never produced here; preset rows carry it via direct
// tagging only.
func ClassifyProfile(p *types.SuggestionProfile) types.Archetype {
	if p == nil {
		return types.ArchetypeMaintenance
	}

	diet := strings.ToLower(p.DietType)
	if strings.Contains(diet, "vegetar") || strings.Contains(diet, "vegan") {
		return types.ArchetypeVegetarian
	}

	goal := strings.ToLower(p.Goal)
	switch {
	case strings.Contains(goal, "weight_loss"),
		strings.Contains(goal, "perte"),
		strings.Contains(goal, "perdre"):
		return types.ArchetypeWeightLoss
	case strings.Contains(goal, "muscle"),
		strings.Contains(goal, "gain"),
		strings.Contains(goal, "prise"):
		return types.ArchetypeMuscleGain
	}

	if p.CookingTimeWeekday != nil && *p.CookingTimeWeekday <= 20 {
		return types.ArchetypeExpress
	}

	return types.ArchetypeMaintenance
}
