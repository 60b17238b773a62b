package types

import "strings"

func Clamp[T int | float64](value, min, max T) T {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// Slugify turns a display name into its route form, lowercase with
// spaces replaced by hyphens.
func Slugify(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "-")
}

// SlugMatches reports whether a route slug refers to the given display
// name. Matching is case insensitive on the slug side.
func SlugMatches(slug, name string) bool {
	return Slugify(name) == strings.ToLower(strings.TrimSpace(slug))
}
