package sanitizer

import (
	"strings"
	"unicode"
)

func TrimAndNormalize(s string) string {
	s = strings.TrimSpace(s)

	if s == "" {
		return ""
	}

	var result strings.Builder
	var lastWasSpace bool

	for _, r := range s {
		if unicode.IsSpace(r) {
			if !lastWasSpace {
				result.WriteRune(' ')
				lastWasSpace = true
			}
		} else {
			result.WriteRune(r)
			lastWasSpace = false
		}
	}

	return result.String()
}

// Key is the case-insensitive comparison form of a provider or country name.
func Key(s string) string {
	return strings.ToLower(TrimAndNormalize(s))
}

// Code is the comparison form of a short code such as a payment method.
func Code(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// SameKey reports whether a and b name the same thing once folded.
func SameKey(a, b string) bool {
	return Key(a) == Key(b)
}

// Blank reports whether s is empty after trimming.
func Blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
