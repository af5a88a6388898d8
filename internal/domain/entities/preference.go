package entities

import "time"

// UserPreference stores per-user defaults.
type UserPreference struct {
	UserID    string
	HomeCity  string
	UpdatedAt time.Time
}
