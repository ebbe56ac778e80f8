// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The CipherShare Authors

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
)

const (
	fileKeyLen  = 32 // AES-256
	rsaKeyBits  = 2048
	sealSaltLen = 16
)

// fileCipherService is the private implementation of [FileCipherService].
type fileCipherService struct {
	// Argon2id tuning for the key that seals the private key at rest.
	// Deliberately the same parameters as [NewPasswordHasher] so one
	// password-stretching cost applies everywhere.
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
	argonKeyLen  uint32
}

// NewFileCipherService constructs the production [FileCipherService].
func NewFileCipherService() FileCipherService {
	return &fileCipherService{
		argonTime:    1,
		argonMemory:  64 * 1024, // 64 MiB
		argonThreads: 4,
		argonKeyLen:  32, // 256 bits
	}
}

// GenerateFileKey implements [FileCipherService]. It reads 32 random bytes
// from the OS CSPRNG. A fresh key is drawn for every upload; keys are never
// reused across files.
func (f *fileCipherService) GenerateFileKey() ([]byte, error) {
	key := make([]byte, fileKeyLen)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return nil, fmt.Errorf("generate file key: %w", err)
	}
	return key, nil
}

// GenerateSalt implements [FileCipherService]. The salt is stored in the
// clear next to the sealed private key.
func (f *fileCipherService) GenerateSalt() ([]byte, error) {
	salt := make([]byte, sealSaltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}
	return salt, nil
}

// EncryptFile implements [FileCipherService]. Unlike the sealed-blob format
// used for the private key, the nonce is returned separately because the
// server schema stores it in its own column next to the ciphertext.
func (f *fileCipherService) EncryptFile(plaintext, key []byte) ([]byte, []byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, nil, err
	}

	iv := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, iv); err != nil {
		return nil, nil, fmt.Errorf("generate nonce: %w", err)
	}

	ciphertext := gcm.Seal(nil, iv, plaintext, nil)

	return ciphertext, iv, nil
}

// DecryptFile implements [FileCipherService].
func (f *fileCipherService) DecryptFile(ciphertext, key, iv []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}
	if len(iv) != gcm.NonceSize() {
		return nil, fmt.Errorf("unexpected IV length %d", len(iv))
	}

	plaintext, err := gcm.Open(nil, iv, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("decrypt file: %w", err)
	}

	return plaintext, nil
}

// GenerateKeyPair implements [FileCipherService].
func (f *fileCipherService) GenerateKeyPair() (*rsa.PrivateKey, error) {
	private, err := rsa.GenerateKey(rand.Reader, rsaKeyBits)
	if err != nil {
		return nil, fmt.Errorf("generate keypair: %w", err)
	}
	return private, nil
}

// WrapKey implements [FileCipherService]. RSA-OAEP with SHA-256 keeps the
// wrapped key well under the 2048-bit modulus limit (a 32-byte key against
// a 190-byte ceiling).
func (f *fileCipherService) WrapKey(fileKey []byte, recipient *rsa.PublicKey) ([]byte, error) {
	wrapped, err := rsa.EncryptOAEP(sha256.New(), rand.Reader, recipient, fileKey, nil)
	if err != nil {
		return nil, fmt.Errorf("wrap file key: %w", err)
	}
	return wrapped, nil
}

// UnwrapKey implements [FileCipherService].
func (f *fileCipherService) UnwrapKey(wrapped []byte, private *rsa.PrivateKey) ([]byte, error) {
	fileKey, err := rsa.DecryptOAEP(sha256.New(), rand.Reader, private, wrapped, nil)
	if err != nil {
		return nil, fmt.Errorf("unwrap file key: %w", err)
	}
	return fileKey, nil
}

// EncodePublicKeyPEM implements [FileCipherService]. The PKIX/PEM form is
// what gets uploaded into the users.public_key column.
func (f *fileCipherService) EncodePublicKeyPEM(pub *rsa.PublicKey) (string, error) {
	der, err := x509.MarshalPKIXPublicKey(pub)
	if err != nil {
		return "", fmt.Errorf("marshal public key: %w", err)
	}

	block := &pem.Block{Type: "PUBLIC KEY", Bytes: der}

	return string(pem.EncodeToMemory(block)), nil
}

// ParsePublicKeyPEM implements [FileCipherService].
func (f *fileCipherService) ParsePublicKeyPEM(pemText string) (*rsa.PublicKey, error) {
	block, _ := pem.Decode([]byte(pemText))
	if block == nil || block.Type != "PUBLIC KEY" {
		return nil, ErrInvalidPEM
	}

	parsed, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPEM, err)
	}

	pub, ok := parsed.(*rsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("%w: not an RSA key", ErrInvalidPEM)
	}

	return pub, nil
}

// SealPrivateKey implements [FileCipherService]. The key-encryption key is
// derived from the account password with Argon2id over salt, then the
// PKCS#8 form of the private key is sealed with AES-256-GCM. The blob
// layout is nonce || ciphertext, same as the other sealed blobs.
func (f *fileCipherService) SealPrivateKey(private *rsa.PrivateKey, password string, salt []byte) ([]byte, error) {
	// 1. Serialize the key
	der, err := x509.MarshalPKCS8PrivateKey(private)
	if err != nil {
		return nil, fmt.Errorf("%w: marshal key: %w", ErrKeySealFailed, err)
	}

	// 2. Derive the sealing key from the password
	kek := f.deriveKEK(password, salt)

	gcm, err := newGCM(kek)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrKeySealFailed, err)
	}

	// 3. Generate a random nonce
	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("%w: generate nonce: %w", ErrKeySealFailed, err)
	}

	// 4. Seal: nonce || ciphertext
	ciphertext := gcm.Seal(nil, nonce, der, nil)

	return append(nonce, ciphertext...), nil
}

// OpenPrivateKey implements [FileCipherService].
func (f *fileCipherService) OpenPrivateKey(sealed []byte, password string, salt []byte) (*rsa.PrivateKey, error) {
	kek := f.deriveKEK(password, salt)

	gcm, err := newGCM(kek)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrKeyOpenFailed, err)
	}

	nonceSize := gcm.NonceSize()
	if len(sealed) < nonceSize {
		return nil, fmt.Errorf("%w: blob too short", ErrKeyOpenFailed)
	}
	nonce, ciphertext := sealed[:nonceSize], sealed[nonceSize:]

	der, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrKeyOpenFailed, err)
	}

	parsed, err := x509.ParsePKCS8PrivateKey(der)
	if err != nil {
		return nil, fmt.Errorf("%w: parse key: %w", ErrKeyOpenFailed, err)
	}

	private, ok := parsed.(*rsa.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("%w: not an RSA key", ErrKeyOpenFailed)
	}

	return private, nil
}

// deriveKEK stretches the account password into the 256-bit key that seals
// the private key at rest.
func (f *fileCipherService) deriveKEK(password string, salt []byte) []byte {
	return argon2.IDKey(
		[]byte(password),
		salt,
		f.argonTime,
		f.argonMemory,
		f.argonThreads,
		f.argonKeyLen,
	)
}

// newGCM builds an AES-GCM AEAD from the given key.
func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}
