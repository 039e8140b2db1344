package utils

import "strings"

// NormalizeVIN strips surrounding whitespace and internal separators and
// uppercases a VIN so that format checks and uniqueness comparisons see one
// canonical form.
func NormalizeVIN(raw string) string {
	normalized := strings.TrimSpace(raw)
	normalized = strings.ReplaceAll(normalized, " ", "")
	normalized = strings.ReplaceAll(normalized, "-", "")
	normalized = strings.ToUpper(normalized)
	return normalized
}
