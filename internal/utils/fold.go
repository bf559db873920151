package utils

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Fold normalizes text for matching: NFKC (full-width to half-width,
// compatibility forms) followed by Unicode case folding.
// Example: "ＣｏＷｏＳ" -> "cowos"
func Fold(s string) string {
	if s == "" {
		return s
	}
	return cases.Fold().String(norm.NFKC.String(s))
}

// ContainsFolded reports whether needle occurs in haystack after folding both.
// An empty needle never matches.
func ContainsFolded(haystack, needle string) bool {
	n := Fold(strings.TrimSpace(needle))
	if n == "" {
		return false
	}
	return strings.Contains(Fold(haystack), n)
}
