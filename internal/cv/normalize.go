// Copyright (c) 2026 Igor Kowalczyk
// SPDX-License-Identifier: MIT

package cv

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/mozillazg/go-unidecode"
)

var (
	monthRe = regexp.MustCompile(`^\d{4}-\d{2}$`)
	slugRe  = regexp.MustCompile(`^[a-z0-9-]+$`)

	slugStrip    = regexp.MustCompile(`[^a-z0-9]+`)
	slugCollapse = regexp.MustCompile(`-+`)
)

// SplitList splits a comma-separated free-text field into a trimmed,
// empty-filtered list. The raw string is always preserved alongside; the
// split is recomputed on every read, never stored.
func SplitList(value string) []string {
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// ParseMonth parses a "YYYY-MM" month string into the first day of that
// UTC month, the canonical stored form for CV dates.
func ParseMonth(value string) (time.Time, error) {
	if !monthRe.MatchString(value) {
		return time.Time{}, fmt.Errorf("invalid month value %q, want YYYY-MM", value)
	}
	t, err := time.Parse("2006-01", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid month value %q: %w", value, err)
	}
	return t.UTC(), nil
}

// MonthValue truncates a stored date back to "YYYY-MM" for editing forms.
func MonthValue(t time.Time) string {
	return t.UTC().Format("2006-01")
}

// Slugify derives a URL-safe slug from a name: transliterated to ASCII,
// lowercased, non-alphanumerics folded into single hyphens.
func Slugify(name string) string {
	s := strings.ToLower(unidecode.Unidecode(name))
	s = slugStrip.ReplaceAllString(s, "-")
	s = slugCollapse.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// IsValidSlug reports whether a slug matches the URL-safe pattern.
func IsValidSlug(slug string) bool {
	return slugRe.MatchString(slug)
}

// IsMonthValue reports whether a string is a "YYYY-MM" month value.
func IsMonthValue(value string) bool {
	return monthRe.MatchString(value)
}
