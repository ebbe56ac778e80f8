package crypto

import "crypto/rsa"

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// PasswordHasher derives and verifies password hashes in PHC string format
// ($argon2id$v=19$m=...,t=...,p=...$salt$hash). The server uses it for
// account passwords and share-link passwords; the client reuses it to
// protect the local private key at rest.
type PasswordHasher interface {
	// Hash derives an argon2id PHC string from the plaintext password.
	// The password must be non-empty and at most MaxPasswordLength bytes.
	Hash(password string) (string, error)

	// Verify reports whether password matches the given PHC string.
	// The comparison is constant-time. A malformed PHC string yields
	// ErrInvalidHashFormat, never a silent mismatch.
	Verify(password, encoded string) (bool, error)
}

// FileCipherService owns all client-side cryptography of the sharing
// scheme. It knows nothing about the network, the database or users.
//
// Sending a file:
//
//	key       = GenerateFileKey()                 (fresh per file)
//	ct, iv    = EncryptFile(plain, key)
//	wrapped   = WrapKey(key, recipientPublicKey)
//	upload ct + iv + wrapped; key never leaves the process unwrapped
//
// Receiving a file:
//
//	key   = UnwrapKey(wrapped, privateKey)
//	plain = DecryptFile(ct, key, iv)
type FileCipherService interface {
	// GenerateFileKey returns a fresh random 32-byte AES-256 key.
	GenerateFileKey() ([]byte, error)

	// EncryptFile seals plaintext with AES-256-GCM under key.
	// Returns the ciphertext and the random 12-byte nonce used (the IV
	// stored alongside the file on the server).
	EncryptFile(plaintext, key []byte) (ciphertext, iv []byte, err error)

	// DecryptFile opens an AES-256-GCM ciphertext produced by EncryptFile.
	// Fails if the key or IV is wrong or the ciphertext was tampered with.
	DecryptFile(ciphertext, key, iv []byte) ([]byte, error)

	// GenerateKeyPair creates the client's long-lived RSA-2048 keypair.
	GenerateKeyPair() (*rsa.PrivateKey, error)

	// WrapKey encrypts a file key with the recipient's RSA public key
	// using RSA-OAEP (SHA-256). Only the recipient's private key can
	// recover it.
	WrapKey(fileKey []byte, recipient *rsa.PublicKey) ([]byte, error)

	// UnwrapKey recovers a file key wrapped with the holder's public key.
	UnwrapKey(wrapped []byte, private *rsa.PrivateKey) ([]byte, error)

	// EncodePublicKeyPEM renders a public key as PEM text, the form stored
	// in the users.public_key column.
	EncodePublicKeyPEM(pub *rsa.PublicKey) (string, error)

	// ParsePublicKeyPEM parses PEM text produced by EncodePublicKeyPEM.
	ParsePublicKeyPEM(pemText string) (*rsa.PublicKey, error)

	// SealPrivateKey encrypts the PKCS#8 form of the private key with a
	// key derived from the account password (argon2id over salt) so it can
	// rest in the local database. Returns the sealed blob.
	SealPrivateKey(private *rsa.PrivateKey, password string, salt []byte) ([]byte, error)

	// OpenPrivateKey reverses SealPrivateKey. Fails with an authentication
	// error when the password is wrong.
	OpenPrivateKey(sealed []byte, password string, salt []byte) (*rsa.PrivateKey, error)

	// GenerateSalt returns 16 random bytes for use with SealPrivateKey.
	// The salt is not secret and is stored next to the sealed key.
	GenerateSalt() ([]byte, error)
}
