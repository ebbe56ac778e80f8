package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidName     = errors.New("name must be between 1 and 100 characters")
	ErrInvalidEmail    = errors.New("email must be a valid address of at most 255 characters")
	ErrEmptyEmail      = errors.New("email is required")
	ErrEmptyPassword   = errors.New("password is required")
	ErrInvalidPassword = errors.New("password must be between 6 and 72 characters")
	ErrPasswordMismatch = errors.New("password confirmation does not match")

	ErrInvalidPublicKey = errors.New("public key must be a PEM-encoded public key")
	ErrEmptySearchQuery = errors.New("search query is required")

	ErrInvalidFileName       = errors.New("file name must be between 1 and 255 characters")
	ErrInvalidFileSize       = errors.New("file size must be positive and match the ciphertext length")
	ErrEmptyEncryptedKey     = errors.New("encrypted AES key is required")
	ErrEmptyEncryptedFile    = errors.New("encrypted file content is required")
	ErrEmptyIV               = errors.New("initialization vector is required")
	ErrInvalidRecipient      = errors.New("recipient user ID is required")
	ErrInvalidLinkPassword   = errors.New("link password must be between 6 and 72 characters")
	ErrExpirationNotInFuture = errors.New("expiration date must be in the future")

	ErrInvalidLinkID = errors.New("link ID is required")
)
