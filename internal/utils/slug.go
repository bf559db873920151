package utils

import (
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

var (
	slugPattern     = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)
	dateSlugPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// documentExts are the file extensions of daily documents.
var documentExts = []string{".md", ".mdx"}

// ValidSlug reports whether s can name a document: letters, digits, '-' and '_'.
func ValidSlug(s string) bool {
	return slugPattern.MatchString(s)
}

// IsDateSlug reports whether s is a real calendar date in YYYY-MM-DD form.
func IsDateSlug(s string) bool {
	if !dateSlugPattern.MatchString(s) {
		return false
	}
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

// SlugFromFilename strips a document extension from a file name.
// Example: "2026-02-09.md" -> "2026-02-09", true
func SlugFromFilename(name string) (string, bool) {
	ext := filepath.Ext(name)
	for _, e := range documentExts {
		if strings.EqualFold(ext, e) {
			return strings.TrimSuffix(name, ext), true
		}
	}
	return "", false
}
