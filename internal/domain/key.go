package domain

import "strings"

// BuildKey derives the semantic join key shared by measurement and contract
// tables: uppercased, whitespace-trimmed description and unit. Textual
// descriptions are the only identifier the two independently-extracted tables
// have in common; matching is exact after normalization, no fuzzy fallback.
func BuildKey(description, unit string) string {
	return strings.ToUpper(strings.TrimSpace(description)) + " - " + strings.ToUpper(strings.TrimSpace(unit))
}
