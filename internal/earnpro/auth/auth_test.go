package auth

import "testing"

func TestValidateLogin(t *testing.T) {
	if fe := ValidateLogin("user@example.com", "Passw0rd"); !fe.Valid() {
		t.Fatalf("valid form rejected: %v", fe)
	}
	fe := ValidateLogin("", "")
	if fe["email"] != "Email is required" || fe["password"] != "Password is required" {
		t.Fatalf("unexpected errors %v", fe)
	}
	if fe := ValidateLogin("not-an-email", "x"); fe["email"] != "Please enter a valid email" {
		t.Fatalf("unexpected errors %v", fe)
	}
}

func TestValidateSignup(t *testing.T) {
	if fe := ValidateSignup("Jo", "jo@example.com", "Passw0rd", "Passw0rd"); !fe.Valid() {
		t.Fatalf("valid form rejected: %v", fe)
	}
	fe := ValidateSignup("J", "jo@example.com", "short", "short")
	if fe["name"] != "Name must be at least 2 characters" {
		t.Fatalf("unexpected name error %q", fe["name"])
	}
	if fe["password"] != "Password must be at least 8 characters" {
		t.Fatalf("unexpected password error %q", fe["password"])
	}
	fe = ValidateSignup("Jo", "jo@example.com", "alllowercase", "alllowercase")
	if fe["password"] != "Password must contain uppercase, lowercase, and numbers" {
		t.Fatalf("unexpected password error %q", fe["password"])
	}
	fe = ValidateSignup("Jo", "jo@example.com", "Passw0rd", "Different1")
	if fe["confirm"] != "Passwords do not match" {
		t.Fatalf("unexpected confirm error %q", fe["confirm"])
	}
}
