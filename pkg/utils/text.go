package utils

import (
	"strings"
	"unicode"
)

// NormalizeTitle lowercases, trims and collapses internal whitespace so that
// near-identical headlines compare equal.
func NormalizeTitle(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// SafeText collapses whitespace runs and strips control characters from
// scraped content.
func SafeText(s string) string {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return ' '
		}
		return r
	}, s)
	return strings.Join(strings.Fields(cleaned), " ")
}

// CleanToValidUTF8 drops invalid UTF-8 sequences from feed data.
func CleanToValidUTF8(s string) string {
	return strings.ToValidUTF8(s, "")
}

// Truncate shortens s to at most max runes.
func Truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

// ContainsString reports whether list contains s.
func ContainsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
