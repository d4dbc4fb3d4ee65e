package analytics

import (
	"strings"

	"fintrack-server/src/models"
)

// AutoCategorize returns the id of the first category, in the order given,
// holding a keyword that is a substring of the case-folded description.
// Categories without keywords never match. Returns "" when nothing matches.
//
// First-match-wins means category order decides ambiguous descriptions;
// callers pass categories in their canonical fetch order (ascending by name).
func AutoCategorize(description string, categories []models.Category) string {
	desc := strings.ToLower(description)
	for _, cat := range categories {
		for _, kw := range cat.Keywords {
			kw = strings.TrimSpace(strings.ToLower(kw))
			if kw != "" && strings.Contains(desc, kw) {
				return cat.ID
			}
		}
	}
	return ""
}

// FallbackCategory implements the no-match fallback chain: the "Other"
// default category when present, otherwise the first category, otherwise "".
func FallbackCategory(categories []models.Category) string {
	for _, cat := range categories {
		if cat.IsDefault && cat.Name == "Other" {
			return cat.ID
		}
	}
	if len(categories) > 0 {
		return categories[0].ID
	}
	return ""
}
