package models

import (
	"time"

	"github.com/google/uuid"
)

// File represents one encrypted file at rest. The server never sees the
// plaintext: EncryptedFile, EncryptedAESKey and IV are produced on the
// client and written together in a single insert. The three fields form an
// atomic unit and are never updated after creation.
type File struct {
	// ID is the unique identifier of the file, generated by the database.
	ID uuid.UUID `json:"id"`

	// UserID is the owner who uploaded the file.
	// Deleting the owner cascades to the file.
	UserID uuid.UUID `json:"user_id"`

	// FileName is the original name of the file as chosen by the owner.
	// At most 255 characters. The name is not encrypted.
	FileName string `json:"file_name"`

	// FileSize is the size of the ciphertext in bytes.
	FileSize int64 `json:"file_size"`

	// EncryptedAESKey is the per-file AES key wrapped with the
	// recipient's RSA public key (RSA-OAEP). Opaque to the server.
	EncryptedAESKey []byte `json:"encrypted_aes_key"`

	// EncryptedFile is the AES-GCM ciphertext of the file content.
	EncryptedFile []byte `json:"encrypted_file"`

	// IV is the nonce used by the AES-GCM encryption of EncryptedFile.
	IV []byte `json:"iv"`

	// CreatedAt is the timestamp when the file was uploaded.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the File model.
func (f File) TableName() string {
	return "files"
}
