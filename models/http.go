package models

import (
	"time"

	"github.com/google/uuid"
)

// RegisterRequest is the payload for creating a new account.
type RegisterRequest struct {
	// Name is the display name, 1..100 characters.
	Name string `json:"name"`

	// Email is the unique address used to log in, at most 255 characters.
	Email string `json:"email"`

	// Password is the plaintext account password. It is hashed on the
	// server before storage and never written anywhere as is.
	Password string `json:"password"`
}

// LoginRequest is the payload for exchanging credentials for a token.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateNameRequest changes the display name of the calling user.
type UpdateNameRequest struct {
	Name string `json:"name"`
}

// UpdatePasswordRequest changes the account password of the calling user.
// The old password must verify before the new one is accepted.
type UpdatePasswordRequest struct {
	OldPassword        string `json:"old_password"`
	NewPassword        string `json:"new_password"`
	NewPasswordConfirm string `json:"new_password_confirm"`
}

// SavePublicKeyRequest stores the caller's PEM-encoded RSA public key.
// Senders wrap per-file AES keys with it; a user without a stored key
// cannot be chosen as a share recipient.
type SavePublicKeyRequest struct {
	PublicKey string `json:"public_key"`
}

// SearchUsersRequest carries the query parameters of a recipient search.
// Only users who have uploaded a public key are returned, and the caller
// is excluded from the results.
type SearchUsersRequest struct {
	// Query is matched against emails as a case-insensitive substring.
	Query string `json:"query"`

	// Page is 1-based. Limit is capped at MaxPageLimit.
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// Normalize clamps the search pagination to valid bounds, applying defaults
// for missing values.
func (r *SearchUsersRequest) Normalize() {
	if r.Page < 1 {
		r.Page = 1
	}
	if r.Limit < 1 {
		r.Limit = DefaultPageLimit
	}
	if r.Limit > MaxPageLimit {
		r.Limit = MaxPageLimit
	}
}

// Offset returns the row offset matching Page and Limit.
func (r SearchUsersRequest) Offset() uint64 {
	return uint64(r.Page-1) * uint64(r.Limit)
}

// UploadFileRequest carries one encrypted file together with the share
// terms for a single recipient. The binary fields are produced on the
// client and travel base64-encoded inside JSON.
type UploadFileRequest struct {
	// FileName is the original file name, 1..255 characters.
	FileName string `json:"file_name"`

	// FileSize is the ciphertext length in bytes and must match
	// len(EncryptedFile).
	FileSize int64 `json:"file_size"`

	// EncryptedAESKey is the per-file AES key wrapped with the
	// recipient's RSA public key.
	EncryptedAESKey []byte `json:"encrypted_aes_key"`

	// EncryptedFile is the AES-GCM ciphertext of the file content.
	EncryptedFile []byte `json:"encrypted_file"`

	// IV is the AES-GCM nonce used to produce EncryptedFile.
	IV []byte `json:"iv"`

	// RecipientUserID identifies the user allowed to retrieve the file.
	// Sharing with oneself is allowed.
	RecipientUserID uuid.UUID `json:"recipient_user_id"`

	// Password protects the share link, at least 6 characters.
	// Stored hashed; the recipient must present it on retrieval.
	Password string `json:"password"`

	// ExpirationDate must be in the future. The link stops working and is
	// eventually deleted once this moment passes.
	ExpirationDate time.Time `json:"expiration_date"`
}

// SharedFileRequest asks for the content of a shared file. The caller must
// be the link's recipient and present the link password.
type SharedFileRequest struct {
	LinkID   uuid.UUID `json:"link_id"`
	Password string    `json:"password"`
}

// ListRequest carries pagination parameters of sent/received listings.
type ListRequest struct {
	// Page is 1-based; values below 1 are treated as 1.
	Page int `json:"page"`

	// Limit is the page size, capped at MaxPageLimit.
	Limit int `json:"limit"`
}

// Pagination bounds shared by search and list endpoints.
const (
	DefaultPageLimit = 10
	MaxPageLimit     = 50
)

// Normalize clamps the request to valid bounds, applying defaults
// for missing values.
func (r *ListRequest) Normalize() {
	if r.Page < 1 {
		r.Page = 1
	}
	if r.Limit < 1 {
		r.Limit = DefaultPageLimit
	}
	if r.Limit > MaxPageLimit {
		r.Limit = MaxPageLimit
	}
}

// Offset returns the row offset matching Page and Limit.
func (r ListRequest) Offset() uint64 {
	return uint64(r.Page-1) * uint64(r.Limit)
}
