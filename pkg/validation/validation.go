package validation

import (
	"regexp"
	"strings"
)

// Language tags such as "fr", "pt-BR" or "zh_Hant"
var languageRegex = regexp.MustCompile(`^[A-Za-z]{2,8}([-_][A-Za-z0-9]{1,8})*$`)

// IsValidLanguageCode validates a target language tag
func IsValidLanguageCode(code string) bool {
	return languageRegex.MatchString(strings.TrimSpace(code))
}

// IsNotEmpty checks if string is not empty after trimming
func IsNotEmpty(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsInRange checks min <= v <= max
func IsInRange[T int | int64 | float64](v, min, max T) bool {
	return v >= min && v <= max
}

// TrimAndValidate trims string and validates it's not empty
func TrimAndValidate(s string) (string, bool) {
	trimmed := strings.TrimSpace(s)
	return trimmed, trimmed != ""
}
