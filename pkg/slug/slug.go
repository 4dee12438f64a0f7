package slug

import (
	"regexp"
	"strings"
)

var slugRegexp = regexp.MustCompile(`[^a-z0-9]+`)

// Generate creates a URL-friendly slug from the given title.
//
// Examples:
//   - "Organic Jaggery Powder" becomes "organic-jaggery-powder"
//   - "Cold Pressed Oil (1L)" becomes "cold-pressed-oil-1l"
func Generate(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))

	// Replace any non-alphanumeric run with a single hyphen.
	s = slugRegexp.ReplaceAllString(s, "-")

	return strings.Trim(s, "-")
}
