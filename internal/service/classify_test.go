package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nutrivo/backend/internal/types"
)

func intPtr(v int) *int { return &v }

func TestClassifyProfile(t *testing.T) {
	tests := []struct {
		name    string
		profile *types.SuggestionProfile
		want    types.Archetype
	}{
		{"nil profile", nil, types.ArchetypeMaintenance},
		{"empty profile", &types.SuggestionProfile{}, types.ArchetypeMaintenance},
		{"vegetarian diet", &types.SuggestionProfile{DietType: "vegetarian"}, types.ArchetypeVegetarian},
		{"vegan diet", &types.SuggestionProfile{DietType: "Vegan"}, types.ArchetypeVegetarian},
		{"diet beats goal", &types.SuggestionProfile{DietType: "vegan", Goal: "muscle_gain"}, types.ArchetypeVegetarian},
		{"weight loss goal", &types.SuggestionProfile{Goal: "weight_loss"}, types.ArchetypeWeightLoss},
		{"french weight loss", &types.SuggestionProfile{Goal: "perte de poids"}, types.ArchetypeWeightLoss},
		{"perdre", &types.SuggestionProfile{Goal: "je veux perdre du poids"}, types.ArchetypeWeightLoss},
		{"muscle gain", &types.SuggestionProfile{Goal: "muscle_gain"}, types.ArchetypeMuscleGain},
		{"prise de masse", &types.SuggestionProfile{Goal: "prise de masse"}, types.ArchetypeMuscleGain},
		{"express under 20", &types.SuggestionProfile{CookingTimeWeekday: intPtr(15)}, types.ArchetypeExpress},
		{"express at boundary", &types.SuggestionProfile{CookingTimeWeekday: intPtr(20)}, types.ArchetypeExpress},
		{"not express over 20", &types.SuggestionProfile{CookingTimeWeekday: intPtr(21)}, types.ArchetypeMaintenance},
		{"goal beats cooking time", &types.SuggestionProfile{Goal: "perte", CookingTimeWeekday: intPtr(10)}, types.ArchetypeWeightLoss},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyProfile(tt.profile))
		})
	}
}

func TestClassifyProfileDeterministic(t *testing.T) {
	p := &types.SuggestionProfile{Goal: "muscle_gain", CookingTimeWeekday: intPtr(10)}
	first := ClassifyProfile(p)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, ClassifyProfile(p))
	}
}
