package crypto

import "errors"

var (
	// ErrEmptyPassword is returned when an empty password is offered for
	// hashing or verification.
	ErrEmptyPassword = errors.New("password must not be empty")

	// ErrPasswordTooLong is returned when the password exceeds
	// MaxPasswordLength bytes.
	ErrPasswordTooLong = errors.New("password exceeds maximum length")

	// ErrInvalidHashFormat is returned when a stored hash is not a valid
	// argon2id PHC string.
	ErrInvalidHashFormat = errors.New("invalid password hash format")

	// ErrIncompatibleVersion is returned when a PHC string was produced by
	// an unsupported argon2 version.
	ErrIncompatibleVersion = errors.New("incompatible argon2 version")

	// ErrKeySealFailed is returned when the private key cannot be sealed
	// for local storage.
	ErrKeySealFailed = errors.New("sealing private key failed")

	// ErrKeyOpenFailed is returned when a sealed private key cannot be
	// opened, typically because the password is wrong.
	ErrKeyOpenFailed = errors.New("opening private key failed")

	// ErrInvalidPEM is returned when key material cannot be decoded from
	// PEM text.
	ErrInvalidPEM = errors.New("invalid PEM key material")
)
