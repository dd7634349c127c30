package domain

import "strings"

// NormalizeEmail trims surrounding whitespace and lowercases the address.
// Emails are stored and compared in this form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NormalizeText trims whitespace and compresses internal runs of spaces.
// Case is preserved.
func NormalizeText(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// OptionalText normalizes s and returns nil when nothing is left.
func OptionalText(s *string) *string {
	if s == nil {
		return nil
	}
	v := NormalizeText(*s)
	if v == "" {
		return nil
	}
	return &v
}
