// Package utils provides general-purpose helpers shared across the
// application: context keys, hashing, HTTP response writing, the HTTP
// client wrapper, JWT generation and validation, and UUID generation.
package utils

import (
	"context"

	"github.com/google/uuid"
)

// contextKey is a private type for context keys so they cannot collide with
// string-based keys from other packages.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey stores the authenticated user's ID in the request context.
// The auth middleware writes it; handlers read it back through
// [GetUserIDFromContext].
var UserIDCtxKey = contextKey("userID")

// GetUserIDFromContext retrieves the user identifier from the context.
// ok is false when the value is missing or is not a uuid.UUID.
func GetUserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(uuid.UUID)
	return userID, ok
}
