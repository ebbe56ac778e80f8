package models

import (
	"time"

	"github.com/google/uuid"
)

// SharedLink grants one recipient access to one encrypted file until the
// expiration date. Access additionally requires the link password, which is
// independent of the recipient's account password. A link row is meaningless
// once its file or recipient is deleted; the schema enforces that with
// cascade deletes, not application logic.
type SharedLink struct {
	// ID is the unique identifier of the link. The recipient presents it
	// together with the link password to retrieve the file.
	ID uuid.UUID `json:"id"`

	// FileID references the shared file. Cascade-deleted with the file.
	FileID uuid.UUID `json:"file_id"`

	// RecipientUserID references the user permitted to use the link.
	// Cascade-deleted with the user.
	RecipientUserID uuid.UUID `json:"recipient_user_id"`

	// Password is the argon2id PHC string of the link password.
	// Never exposed via JSON.
	Password string `json:"-"`

	// ExpirationDate is the moment the link stops working. Expired links
	// are denied on retrieval and removed by the cleanup job.
	ExpirationDate time.Time `json:"expiration_date"`

	// CreatedAt is the timestamp when the link was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the SharedLink model.
func (l SharedLink) TableName() string {
	return "shared_links"
}

// Expired reports whether the link is past its expiration date at the
// given moment.
func (l SharedLink) Expired(now time.Time) bool {
	return now.After(l.ExpirationDate)
}
