// Package forms holds client-side input validation and display formatting.
// Validation runs before any network call; a field that fails here never
// reaches the backend.
package forms

import (
	"regexp"
	"strings"
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateEmail reports whether s looks like an email address: a local
// part, an @, and a domain segment containing a dot.
func ValidateEmail(s string) bool {
	return emailRe.MatchString(s)
}

// ValidatePassword enforces the signup password policy: at least 8
// characters with at least one lowercase letter, one uppercase letter,
// and one digit.
func ValidatePassword(s string) bool {
	if len(s) < 8 {
		return false
	}
	var lower, upper, digit bool
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		}
	}
	return lower && upper && digit
}

// PasswordStrength scores a password 0-4 and labels it for the strength
// indicator on the signup form.
func PasswordStrength(s string) (int, string) {
	if s == "" {
		return 0, ""
	}
	score := 0
	if len(s) >= 8 {
		score++
	}
	var lower, upper, digit, symbol bool
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		default:
			symbol = true
		}
	}
	if lower && upper {
		score++
	}
	if digit {
		score++
	}
	if symbol {
		score++
	}
	switch {
	case score >= 4:
		return score, "Strong password"
	case score >= 3:
		return score, "Medium strength"
	case score >= 1:
		return score, "Weak password"
	default:
		return score, ""
	}
}

// ValidateName requires a trimmed length of at least 2 characters.
func ValidateName(s string) bool {
	return len(strings.TrimSpace(s)) >= 2
}

var sanitizer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// SanitizeInput escapes markup-significant characters in user-supplied
// text. Every remote string rendered into a list or detail pane goes
// through this first.
func SanitizeInput(s string) string {
	return sanitizer.Replace(s)
}
