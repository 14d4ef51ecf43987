package util

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultTypeToken is used when a type name has no usable characters.
const DefaultTypeToken = "normal"

// Capitalize upper-cases the first rune and leaves the rest untouched.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}

// Normalize performs basic string normalization (lowercase + trim)
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// TypeClass converts a type name into a CSS class such as "type-fire".
// Anything outside [a-z0-9-] is dropped after lower-casing.
func TypeClass(typeName string) string {
	var builder strings.Builder
	for _, r := range strings.ToLower(typeName) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' {
			builder.WriteRune(r)
		}
	}
	token := builder.String()
	if token == "" {
		token = DefaultTypeToken
	}
	return "type-" + token
}

// FormatTenths renders a value stored in tenths with one decimal place and a unit.
func FormatTenths(value int, unit string) string {
	return fmt.Sprintf("%.1f %s", float64(value)/10, unit)
}

// JoinCapitalized capitalizes up to limit names and joins them with ", ".
// A non-positive limit keeps every name.
func JoinCapitalized(names []string, limit int) string {
	if limit > 0 && len(names) > limit {
		names = names[:limit]
	}
	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, Capitalize(name))
	}
	return strings.Join(parts, ", ")
}
