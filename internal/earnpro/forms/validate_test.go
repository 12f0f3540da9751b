package forms

import (
	"strings"
	"testing"
)

func TestValidateEmail(t *testing.T) {
	valid := []string{
		"user@example.com",
		"a.b+c@sub.domain.org",
		"admin@earnpro.com",
	}
	for _, s := range valid {
		if !ValidateEmail(s) {
			t.Errorf("expected %q to be valid", s)
		}
	}
	invalid := []string{
		"",
		"plainaddress",
		"no-at-sign.com",
		"user@nodot",
		"user @example.com",
		"user@ example.com",
	}
	for _, s := range invalid {
		if ValidateEmail(s) {
			t.Errorf("expected %q to be invalid", s)
		}
	}
}

func TestValidatePassword(t *testing.T) {
	cases := []struct {
		password string
		want     bool
	}{
		{"Passw0rd", true},
		{"LongEnough1", true},
		{"Sh0rt", false},        // too short
		{"alllowercase1", false}, // no uppercase
		{"ALLUPPERCASE1", false}, // no lowercase
		{"NoDigitsHere", false},  // no digit
		{"", false},
	}
	for _, c := range cases {
		if got := ValidatePassword(c.password); got != c.want {
			t.Errorf("ValidatePassword(%q) = %v, want %v", c.password, got, c.want)
		}
	}
}

func TestPasswordStrengthLabels(t *testing.T) {
	if _, label := PasswordStrength("Str0ng!pass"); label != "Strong password" {
		t.Fatalf("expected strong label, got %q", label)
	}
	if _, label := PasswordStrength("Passw0rd"); label != "Medium strength" {
		t.Fatalf("expected medium label, got %q", label)
	}
	if _, label := PasswordStrength("abc"); label != "Weak password" {
		t.Fatalf("expected weak label, got %q", label)
	}
	if score, label := PasswordStrength(""); score != 0 || label != "" {
		t.Fatalf("expected empty result for empty password, got %d %q", score, label)
	}
}

func TestSanitizeInputEscapesMarkup(t *testing.T) {
	out := SanitizeInput("<script>alert('x')</script>")
	if strings.ContainsAny(out, "<>") {
		t.Fatalf("sanitized output still contains markup: %q", out)
	}
	if !strings.Contains(out, "&lt;script&gt;") {
		t.Fatalf("expected escaped script tag, got %q", out)
	}
}

func TestValidateName(t *testing.T) {
	if ValidateName(" a ") {
		t.Fatal("single character name should be invalid")
	}
	if !ValidateName("Jo") {
		t.Fatal("two character name should be valid")
	}
}
