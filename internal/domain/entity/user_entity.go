package entity

import (
	"time"
)

// User is the aggregate root for the user domain.
// Passwords are stored as bcrypt hashes in Password field and never serialized.
type User struct {
	ID           string
	Email        string
	Password     string
	ProfileImage string
	CreatedAt    time.Time
}

// PublicUser is the subset of a User safe to return to clients.
type PublicUser struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	ProfileImage string `json:"profile_image"`
}

// Public returns the redacted client-facing view of the user.
func (u *User) Public() PublicUser {
	return PublicUser{ID: u.ID, Email: u.Email, ProfileImage: u.ProfileImage}
}
