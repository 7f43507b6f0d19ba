package service

import (
	"encoding/json"
	"strings"

	"github.com/nutrivo/backend/internal/types"
)

// ParseListField normalizes a heterogeneous list field into a string
// slice. Accepted inputs: nil, []string, []any (string elements kept), or
// a JSON-array-encoded string. Anything malformed normalizes to empty:
// this function fails soft and never returns an error.
func ParseListField(input any) []string {
	switch v := input.(type) {
	case nil:
		return []string{}
	case []string:
		out := make([]string, len(v))
		copy(out, v)
		return out
	case types.StringList:
		out := make([]string, len(v))
		copy(out, v)
		return out
	case []any:
		out := make([]string, 0, len(v))
		for _, el := range v {
			if s, ok := el.(string); ok {
				out = append(out, s)
			}
		}
		return out
	case string:
		var arr []string
		if err := json.Unmarshal([]byte(v), &arr); err != nil {
			return []string{}
		}
		if arr == nil {
			// "null" decodes successfully into a nil slice.
			return []string{}
		}
		return arr
	default:
		return []string{}
	}
}

// excludeTerms is the lowercased, deduplicated union of a profile's
// allergies and intolerances.
func excludeTerms(p *types.SuggestionProfile) []string {
	if p == nil {
		return nil
	}
	return lowerTerms(append(ParseListField(p.Allergies), ParseListField(p.Intolerances)...))
}

func lowerTerms(terms []string) []string {
	seen := make(map[string]struct{}, len(terms))
	out := make([]string, 0, len(terms))
	for _, t := range terms {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

// containsAnyTerm reports whether any term appears as a substring of text.
// Both sides must already be lowercased. Substring matching on free-text
// ingredients is a deliberate approximation ("noix" also matches
// "noix de coco") and is part of the scoring contract.
func containsAnyTerm(text string, terms []string) bool {
	for _, t := range terms {
		if strings.Contains(text, t) {
			return true
		}
	}
	return false
}
