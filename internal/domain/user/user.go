// Package user defines the user entity and its persistence contract.
package user

import (
	"strings"

	"github.com/shareit-app/backend/internal/domain"
)

// User is a registered account. Email is globally unique.
type User struct {
	ID    int64
	Name  string
	Email string
}

// New validates registration data and builds a User ready to persist.
func New(name, email string) (*User, error) {
	if strings.TrimSpace(name) == "" {
		return nil, domain.NewValidationError("user name is required")
	}
	if strings.TrimSpace(email) == "" || !strings.Contains(email, "@") {
		return nil, domain.NewValidationError("a valid email is required")
	}
	return &User{Name: name, Email: email}, nil
}

// ApplyPatch overwrites only the non-blank fields, the partial-update contract
// of PATCH /users/{id}.
func (u *User) ApplyPatch(name, email string) {
	if strings.TrimSpace(name) != "" {
		u.Name = name
	}
	if strings.TrimSpace(email) != "" {
		u.Email = email
	}
}
