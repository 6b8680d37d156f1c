package model

import (
	"fmt"
	"strings"
)

// User is an identity known to the tracker. JoinedAt records the date of
// the user's first login. IsAdmin is decided once, at creation.
type User struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	JoinedAt string `json:"joinedAt"`
	IsAdmin  bool   `json:"isAdmin,omitempty"`
}

// Validate checks that the user is well formed.
func (u *User) Validate() error {
	if strings.TrimSpace(u.Email) == "" {
		return fmt.Errorf("user email is required")
	}
	return nil
}
