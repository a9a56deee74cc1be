package domain

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

var textEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#x27;",
	"/", "&#x2F;",
	`\`, "&#x5C;",
	"`", "&#96;",
)

// NormalizeText trims surrounding whitespace.
func NormalizeText(s string) string {
	return strings.TrimSpace(s)
}

// EscapeText replaces markup characters with HTML entities so stored text is
// safe to render in an HTML page.
func EscapeText(s string) string {
	return textEscaper.Replace(s)
}

// CheckTextLength reports a validation error when s is empty or its rune
// count falls outside [MinTextLength, MaxTextLength].
func CheckTextLength(field, s string) error {
	n := utf8.RuneCountInString(s)
	switch {
	case n == 0:
		return NewValidationError(field, fmt.Sprintf("%s is required", field))
	case n < MinTextLength || n > MaxTextLength:
		return NewValidationError(field, fmt.Sprintf("%s must be between %d and %d characters", field, MinTextLength, MaxTextLength))
	}
	return nil
}
