package models

import (
	"time"

	"github.com/google/uuid"
)

// AuthResponse is returned by register and login. The token is additionally
// duplicated in the Authorization response header for clients that prefer
// reading it from there.
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// UserSearchEntry is one recipient candidate found by email search.
// PublicKey is always present: users without a key are filtered out
// because nothing can be encrypted for them.
type UserSearchEntry struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	PublicKey string    `json:"public_key"`
}

// UserSearchResponse is a page of recipient candidates. Total counts all
// matches across pages.
type UserSearchResponse struct {
	Users []UserSearchEntry `json:"users"`
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
	Total int64             `json:"total"`
}

// UploadFileResponse reports the identifiers created by an upload.
// LinkID is what the recipient needs (together with the link password)
// to retrieve the file.
type UploadFileResponse struct {
	FileID uuid.UUID `json:"file_id"`
	LinkID uuid.UUID `json:"link_id"`
}

// SharedFileResponse carries the encrypted payload of a shared file back
// to its recipient. Decryption happens on the client: the recipient unwraps
// EncryptedAESKey with their RSA private key and opens EncryptedFile with
// the result and IV.
type SharedFileResponse struct {
	FileName        string `json:"file_name"`
	FileSize        int64  `json:"file_size"`
	EncryptedAESKey []byte `json:"encrypted_aes_key"`
	EncryptedFile   []byte `json:"encrypted_file"`
	IV              []byte `json:"iv"`
}

// SentFileEntry is one row of the "files I shared" listing.
type SentFileEntry struct {
	// FileID identifies the uploaded file.
	FileID uuid.UUID `json:"file_id"`

	FileName       string    `json:"file_name"`
	RecipientEmail string    `json:"recipient_email"`
	ExpirationDate time.Time `json:"expiration_date"`
	CreatedAt      time.Time `json:"created_at"`
}

// ReceivedFileEntry is one row of the "files shared with me" listing.
type ReceivedFileEntry struct {
	// LinkID is presented with the link password to retrieve the file.
	LinkID uuid.UUID `json:"link_id"`

	FileName       string    `json:"file_name"`
	SenderEmail    string    `json:"sender_email"`
	ExpirationDate time.Time `json:"expiration_date"`
	CreatedAt      time.Time `json:"created_at"`
}

// SentFilesResponse is a page of sent-file rows. Total counts all rows
// across pages so clients can render pagination.
type SentFilesResponse struct {
	Files []SentFileEntry `json:"files"`
	Page  int             `json:"page"`
	Limit int             `json:"limit"`
	Total int64           `json:"total"`
}

// ReceivedFilesResponse is a page of received-file rows.
type ReceivedFilesResponse struct {
	Files []ReceivedFileEntry `json:"files"`
	Page  int                 `json:"page"`
	Limit int                 `json:"limit"`
	Total int64               `json:"total"`
}
