package models

import "time"

// User represents an account entity used for authentication.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the opaque unique identifier of the user (UUIDv7 string).
	UserID string `json:"id"`

	// Username is the unique user login identifier.
	Username string `json:"username"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// This value is never the plaintext password and is never serialized.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Public returns the projection of the user that is safe to send to callers.
func (u User) Public() PublicUser {
	return PublicUser{
		ID:       u.UserID,
		Username: u.Username,
	}
}

// PublicUser is the caller-facing view of a [User]. It never carries the
// password hash.
type PublicUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// Credentials is the transient username/password pair received on
// registration and login. It is never persisted.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthResult is returned by successful registration and login calls.
type AuthResult struct {
	User  User
	Token Token
}
