package types

import "encoding/json"

// Archetype is a coarse dietary/goal category used to pre-filter preset
// recipes.
type Archetype string

const (
	ArchetypeWeightLoss  Archetype = "weight_loss"
	ArchetypeMuscleGain  Archetype = "muscle_gain"
	ArchetypeVegetarian  Archetype = "vegetarian"
	ArchetypeExpress     Archetype = "express"
	ArchetypeFamily      Archetype = "family"
	ArchetypeMaintenance Archetype = "maintenance"
)

// StringList accepts either a native JSON array of strings or a
// JSON-array-encoded string ("[\"a\",\"b\"]"). Anything malformed decodes
// to an empty list; decoding never fails. Values are kept as-is, and
// lowercasing happens at comparison time.
type StringList []string

func (l *StringList) UnmarshalJSON(data []byte) error {
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		if arr == nil {
			// JSON null decodes successfully into a nil slice.
			arr = []string{}
		}
		*l = arr
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		var inner []string
		if err := json.Unmarshal([]byte(s), &inner); err == nil {
			if inner == nil {
				inner = []string{}
			}
			*l = inner
			return nil
		}
	}

	*l = StringList{}
	return nil
}

// SuggestionProfile is the caller-supplied nutritional profile a
// suggestion request is scored against. All fields are optional; list
// fields normalize malformed input to empty.
type SuggestionProfile struct {
	UserID              string     `json:"user_id"`
	Goal                string     `json:"goal"`
	DietType            string     `json:"diet_type"`
	Allergies           StringList `json:"allergies"`
	Intolerances        StringList `json:"intolerances"`
	DislikedFoods       StringList `json:"disliked_foods"`
	CookingTimeWeekday  *int       `json:"cooking_time_weekday"`
	DailyCaloriesTarget *int       `json:"daily_calories_target"`
}
