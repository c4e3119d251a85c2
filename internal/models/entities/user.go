package entities

import "time"

type User struct {
	ID             string    `db:"id" json:"id"`
	Username       string    `db:"username" gorm:"uniqueIndex" json:"username"`
	HashedPassword string    `db:"hashed_password" json:"-"`
	FirstName      *string   `db:"first_name" json:"firstName,omitempty"`
	LastName       *string   `db:"last_name" json:"lastName,omitempty"`
	DateOfBirth    *string   `db:"date_of_birth" json:"dateOfBirth,omitempty"`
	Bio            *string   `db:"bio" json:"bio,omitempty"`
	CreatedAt      time.Time `db:"created_at" json:"dateCreated"`
}

// HasFullAccess reports whether the profile is complete enough for
// social-graph operations: first name, last name and date of birth all set.
// Computed, never stored.
func (u *User) HasFullAccess() bool {
	return u.FirstName != nil && *u.FirstName != "" &&
		u.LastName != nil && *u.LastName != "" &&
		u.DateOfBirth != nil && *u.DateOfBirth != ""
}

// Sanitized returns a copy safe to hand back over the wire.
func (u User) Sanitized() User {
	u.HashedPassword = ""
	return u
}
