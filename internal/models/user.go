package models

import (
	"fmt"
	"net/mail"

	"phoenix-assistant/backend/internal/store"
)

// UserCollection is the store collection holding User records.
const UserCollection = "user"

// User represents a user profile and personalization preferences
type User struct {
	Name        string
	Email       string
	Preferences map[string]any
	AvatarURL   *string
	IsActive    bool
}

// NewUser creates a User with defaults applied (empty preferences, active)
func NewUser(name, email string) User {
	return User{
		Name:        name,
		Email:       email,
		Preferences: map[string]any{},
		IsActive:    true,
	}
}

// Validate checks the required User fields before persistence
func (u User) Validate() error {
	if u.Name == "" {
		return fmt.Errorf("name is required")
	}
	if _, err := mail.ParseAddress(u.Email); err != nil {
		return fmt.Errorf("invalid email %q: %w", u.Email, err)
	}
	return nil
}

// Record maps the User to its persisted field set
func (u User) Record() store.Record {
	prefs := u.Preferences
	if prefs == nil {
		prefs = map[string]any{}
	}
	return store.Record{
		"name":        u.Name,
		"email":       u.Email,
		"preferences": prefs,
		"avatar_url":  strOrNil(u.AvatarURL),
		"is_active":   u.IsActive,
	}
}

// strOrNil unwraps an optional string for storage, keeping absent values
// as JSON/BSON null rather than a typed nil pointer.
func strOrNil(p *string) any {
	if p == nil {
		return nil
	}
	return *p
}
