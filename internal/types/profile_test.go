package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringListUnmarshal(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want StringList
	}{
		{"native array", `["gluten","lactose"]`, StringList{"gluten", "lactose"}},
		{"json-encoded string", `"[\"gluten\",\"lactose\"]"`, StringList{"gluten", "lactose"}},
		{"empty array", `[]`, StringList{}},
		{"empty string", `""`, StringList{}},
		{"not json", `"{not json"`, StringList{}},
		{"null decoded to non-array", `"null"`, StringList{}},
		{"json null", `null`, StringList{}},
		{"number", `42`, StringList{}},
		{"object", `{"a":1}`, StringList{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got StringList
			err := json.Unmarshal([]byte(tt.in), &got)
			require.NoError(t, err)
			assert.Equal(t, []string(tt.want), []string(got))
		})
	}
}

func TestSuggestionProfileUnmarshalMixedFields(t *testing.T) {
	body := `{
		"user_id": "u1",
		"goal": "weight_loss",
		"allergies": "[\"gluten\"]",
		"intolerances": ["lactose"],
		"disliked_foods": "broken[",
		"cooking_time_weekday": 15
	}`

	var p SuggestionProfile
	require.NoError(t, json.Unmarshal([]byte(body), &p))

	assert.Equal(t, StringList{"gluten"}, p.Allergies)
	assert.Equal(t, StringList{"lactose"}, p.Intolerances)
	assert.Empty(t, p.DislikedFoods)
	require.NotNil(t, p.CookingTimeWeekday)
	assert.Equal(t, 15, *p.CookingTimeWeekday)
	assert.Nil(t, p.DailyCaloriesTarget)
}
