// Package auth defines the authentication surface and the client-side
// credential checks that run before any request leaves the machine.
package auth

import (
	"context"

	"github.com/ezsaad07/earnpro-frontend/internal/earnpro/api"
	"github.com/ezsaad07/earnpro-frontend/internal/earnpro/forms"
)

// Authenticator is the login/signup/logout slice of the backend
// surface. Both the HTTP client and the demo server satisfy it.
type Authenticator interface {
	Login(ctx context.Context, req api.LoginRequest) (api.AuthResponse, error)
	Register(ctx context.Context, req api.RegisterRequest) (api.AuthResponse, error)
	Logout(ctx context.Context) error
}

// FieldErrors maps a form field name to its validation message.
type FieldErrors map[string]string

// Valid reports whether no field failed validation.
func (fe FieldErrors) Valid() bool { return len(fe) == 0 }

// ValidateLogin checks the login form. Field names are "email" and
// "password".
func ValidateLogin(email, password string) FieldErrors {
	fe := FieldErrors{}
	switch {
	case email == "":
		fe["email"] = "Email is required"
	case !forms.ValidateEmail(email):
		fe["email"] = "Please enter a valid email"
	}
	if password == "" {
		fe["password"] = "Password is required"
	}
	return fe
}

// ValidateSignup checks the signup form. Field names are "name",
// "email", "password" and "confirm".
func ValidateSignup(name, email, password, confirm string) FieldErrors {
	fe := FieldErrors{}
	if !forms.ValidateName(name) {
		fe["name"] = "Name must be at least 2 characters"
	}
	switch {
	case email == "":
		fe["email"] = "Email is required"
	case !forms.ValidateEmail(email):
		fe["email"] = "Please enter a valid email"
	}
	switch {
	case password == "":
		fe["password"] = "Password is required"
	case len(password) < 8:
		fe["password"] = "Password must be at least 8 characters"
	case !forms.ValidatePassword(password):
		fe["password"] = "Password must contain uppercase, lowercase, and numbers"
	}
	if confirm != password {
		fe["confirm"] = "Passwords do not match"
	}
	return fe
}
