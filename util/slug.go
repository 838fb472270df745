package util

import (
	"math/rand"
	"regexp"
	"strings"
)

var (
	nonSlugChars     = regexp.MustCompile(`[^a-z0-9\s-]`)
	whitespaceRuns   = regexp.MustCompile(`\s+`)
	hyphenRuns       = regexp.MustCompile(`-+`)
	slugSuffixRunes  = []rune("abcdefghijklmnopqrstuvwxyz0123456789")
	slugSuffixLength = 5
)

// Slugify converts a title into a URL-safe slug: lowercase, alphanumeric
// words joined by single hyphens.
func Slugify(title string) string {
	slug := strings.ToLower(title)
	slug = nonSlugChars.ReplaceAllString(slug, "")
	slug = strings.TrimSpace(slug)
	slug = whitespaceRuns.ReplaceAllString(slug, "-")
	slug = hyphenRuns.ReplaceAllString(slug, "-")
	return slug
}

// RandomSlugSuffix returns a short random string appended to a slug when
// the plain slug collides with an existing document.
func RandomSlugSuffix() string {
	b := make([]rune, slugSuffixLength)
	for i := range b {
		b[i] = slugSuffixRunes[rand.Intn(len(slugSuffixRunes))]
	}
	return string(b)
}
