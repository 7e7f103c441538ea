package analyzer

import (
	"strings"
	"unicode"
)

// DefaultName is used when sanitization leaves nothing usable.
const DefaultName = "document_db"

// SanitizeName maps arbitrary text to a storage-namespace-safe identifier:
// non-alphanumerics become underscores, runs collapse to one, leading and
// trailing underscores are stripped, and the result is lowercased.
// Total and idempotent; an empty result maps to DefaultName.
func SanitizeName(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if isASCIIAlnum(r) {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}
	out := strings.Trim(collapseUnderscores(b.String()), "_")
	if out == "" {
		return DefaultName
	}
	return strings.ToLower(out)
}

// SanitizeHeading cleans a generated topic label: keeps letters, digits,
// underscore, hyphen and space, collapses underscore runs, trims, and
// truncates to maxChars runes. Returns "" when nothing survives.
func SanitizeHeading(s string, maxChars int) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '-' || r == ' ' {
			b.WriteRune(r)
		}
	}
	out := strings.Trim(collapseUnderscores(b.String()), "_")
	out = strings.TrimSpace(out)
	if maxChars > 0 {
		if runes := []rune(out); len(runes) > maxChars {
			out = string(runes[:maxChars])
		}
	}
	return strings.TrimSpace(out)
}

func isASCIIAlnum(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

func collapseUnderscores(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prev := false
	for _, r := range s {
		if r == '_' {
			if prev {
				continue
			}
			prev = true
		} else {
			prev = false
		}
		b.WriteRune(r)
	}
	return b.String()
}
