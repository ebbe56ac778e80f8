package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents an account entity used for authentication, authorization
// and file exchange. It contains identity attributes and credential-related
// data. Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the unique identifier of the user.
	// Generated by the database (uuid_generate_v4) on insert.
	ID uuid.UUID `json:"id"`

	// Name is the display name of the user.
	// It is non-sensitive and may be shown in UI. At most 100 characters.
	Name string `json:"name"`

	// Email is the unique address the user authenticates with
	// and is found by when other users search for share recipients.
	// At most 255 characters.
	Email string `json:"email"`

	// Password stores the user's credential representation.
	// This value MUST be a derived value (argon2id PHC string),
	// never plaintext. It is never exposed via JSON.
	Password string `json:"-"`

	// PublicKey is the PEM-encoded RSA public key used by senders to wrap
	// per-file AES keys for this user. Nil until the user uploads one;
	// users without a key cannot receive files.
	PublicKey *string `json:"public_key,omitempty"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp of the last profile change
	// (name, password or public key update).
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
