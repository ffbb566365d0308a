package codec

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// ParseLocale parses an Accept-Language style value ("en-US,de;q=0.8") and
// returns the tags in preference order, lowercased the way the protocol
// expects them in "ul".
func ParseLocale(s string) ([]string, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	tags, _, err := language.ParseAcceptLanguage(s)
	if err != nil {
		return nil, fmt.Errorf("parse locale %q: %w", s, err)
	}
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		out = append(out, strings.ToLower(t.String()))
	}
	return out, nil
}

// PrimaryLocale returns the most preferred tag of s, or "" when s is empty or
// cannot be parsed.
func PrimaryLocale(s string) string {
	tags, err := ParseLocale(s)
	if err != nil || len(tags) == 0 {
		return ""
	}
	return tags[0]
}
