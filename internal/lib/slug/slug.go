// Package slug derives URL-safe event identifiers from free text.
package slug

import (
	"regexp"
	"strings"
)

const (
	Fallback  = "event"
	MaxLength = 100
)

var (
	disallowed = regexp.MustCompile(`[^a-z0-9\s-]`)
	spaces     = regexp.MustCompile(`\s+`)
	hyphens    = regexp.MustCompile(`-+`)
)

// Generate lowercases name, keeps only ASCII letters, digits and hyphens
// (whitespace becomes a hyphen) and caps the result at MaxLength. It never
// returns an empty string. Uniqueness is not checked.
func Generate(name string) string {
	id := strings.ToLower(name)
	id = disallowed.ReplaceAllString(id, "")
	id = spaces.ReplaceAllString(id, "-")
	id = hyphens.ReplaceAllString(id, "-")
	id = strings.Trim(id, "-")

	if id == "" {
		return Fallback
	}

	if len(id) > MaxLength {
		id = strings.TrimRight(id[:MaxLength], "-")
	}

	return id
}
