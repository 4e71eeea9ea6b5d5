package utils

import (
	"regexp"
	"strings"
)

var slugInvalid = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify turns a display name into a URL slug ("Acme Hosting" -> "acme-hosting")
func Slugify(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = slugInvalid.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
