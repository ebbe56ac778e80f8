package models

import (
	"time"

	"github.com/google/uuid"
)

// ClientIdentity is the locally persisted account identity. It lets the TUI
// restore a session without re-running key generation: the RSA private key is
// stored sealed (encrypted with a key derived from the account password and
// KeySalt) and can only be opened by whoever knows the password.
type ClientIdentity struct {
	UserID uuid.UUID `json:"user_id"`
	Email  string    `json:"email"`
	Name   string    `json:"name"`

	// PublicKeyPEM is the PEM encoding of the published RSA public key.
	PublicKeyPEM string `json:"public_key_pem"`

	// SealedPrivateKey is the password-sealed PKCS#8 private key blob.
	SealedPrivateKey []byte `json:"sealed_private_key"`

	// KeySalt feeds the KDF that derives the sealing key from the password.
	KeySalt []byte `json:"key_salt"`

	UpdatedAt time.Time `json:"updated_at"`
}

// DownloadRecord is one entry of the local download history. Checksum is a
// keyed fingerprint of the decrypted content, recorded so a re-download can
// be compared against what was saved before.
type DownloadRecord struct {
	ID           string    `json:"id"`
	UserID       uuid.UUID `json:"user_id"`
	LinkID       uuid.UUID `json:"link_id"`
	FileName     string    `json:"file_name"`
	FileSize     int64     `json:"file_size"`
	SenderEmail  string    `json:"sender_email"`
	Checksum     string    `json:"checksum"`
	SavedTo      string    `json:"saved_to"`
	DownloadedAt time.Time `json:"downloaded_at"`
}

// ClientUploadRequest describes one local file to encrypt and share.
// RecipientID and RecipientPublicKey come from a recipient search hit.
type ClientUploadRequest struct {
	// FilePath is the path of the plaintext file on this machine.
	FilePath string `json:"file_path"`

	RecipientID        uuid.UUID `json:"recipient_id"`
	RecipientPublicKey string    `json:"recipient_public_key"`

	// LinkPassword protects the share link; the recipient must present it.
	LinkPassword string `json:"link_password"`

	// ExpirationDate is when the link stops working.
	ExpirationDate time.Time `json:"expiration_date"`
}

// ClientRetrieveRequest identifies a shared file to fetch and decrypt.
type ClientRetrieveRequest struct {
	// UserID is the local account the download is recorded under.
	UserID uuid.UUID `json:"user_id"`

	LinkID   uuid.UUID `json:"link_id"`
	Password string    `json:"password"`

	// SenderEmail is kept in the download history when the caller knows it,
	// e.g. when retrieval starts from a received-files row.
	SenderEmail string `json:"sender_email"`
}

// ClientRetrieveResult reports where a retrieved file was saved.
type ClientRetrieveResult struct {
	FileName string `json:"file_name"`
	SavedTo  string `json:"saved_to"`
	Size     int64  `json:"size"`
	Checksum string `json:"checksum"`
}
