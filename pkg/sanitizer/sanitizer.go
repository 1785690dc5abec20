// Package sanitizer normalizes free-form registration input (names, labels,
// phone numbers) before it enters the registry.
package sanitizer

import (
	"strings"
	"unicode"

	"github.com/nyaruka/phonenumbers"
)

var supportedRegions = []string{
	"US",
	"IN",
}

// TrimAndNormalize trims surrounding whitespace and collapses inner runs of
// whitespace to a single space.
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

func NormalizeName(name string) string {
	return TrimAndNormalize(name)
}

// NormalizeLabel lowercases a category label after whitespace normalization.
func NormalizeLabel(label string) string {
	return strings.ToLower(TrimAndNormalize(label))
}

// SanitizePhone formats a phone number to E.164 when it parses under one of
// the supported regions; otherwise the trimmed input is returned as-is.
func SanitizePhone(phone string) string {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return ""
	}

	for _, region := range supportedRegions {
		parsed, err := phonenumbers.Parse(phone, region)
		if err == nil && phonenumbers.IsValidNumber(parsed) {
			return phonenumbers.Format(parsed, phonenumbers.E164)
		}
	}
	return phone
}
