package service

import (
	"crypto/rsa"
	"fmt"
	"sync"

	"github.com/ciphershare/go-cipher-share/internal/crypto"
	"github.com/ciphershare/go-cipher-share/internal/utils"
)

type clientKeyService struct {
	fileCipher crypto.FileCipherService
	hashKey    string

	mu      sync.RWMutex
	private *rsa.PrivateKey
}

// NewClientKeyService constructs a ClientKeyService around the given cipher
// implementation. hashKey keys the download-history fingerprints.
func NewClientKeyService(fileCipher crypto.FileCipherService, hashKey string) ClientKeyService {
	return &clientKeyService{fileCipher: fileCipher, hashKey: hashKey}
}

func (k *clientKeyService) SetPrivateKey(key *rsa.PrivateKey) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.private = key
}

func (k *clientKeyService) HasPrivateKey() bool {
	k.mu.RLock()
	defer k.mu.RUnlock()
	return k.private != nil
}

func (k *clientKeyService) WrapFileKey(fileKey []byte, recipientPublicKeyPEM string) ([]byte, error) {
	pub, err := k.fileCipher.ParsePublicKeyPEM(recipientPublicKeyPEM)
	if err != nil {
		return nil, fmt.Errorf("parse recipient public key: %w", err)
	}

	wrapped, err := k.fileCipher.WrapKey(fileKey, pub)
	if err != nil {
		return nil, fmt.Errorf("wrap file key: %w", err)
	}

	return wrapped, nil
}

func (k *clientKeyService) UnwrapFileKey(wrapped []byte) ([]byte, error) {
	k.mu.RLock()
	private := k.private
	k.mu.RUnlock()

	if private == nil {
		return nil, ErrNoSessionKey
	}

	fileKey, err := k.fileCipher.UnwrapKey(wrapped, private)
	if err != nil {
		return nil, fmt.Errorf("unwrap file key: %w", err)
	}

	return fileKey, nil
}

func (k *clientKeyService) Checksum(content []byte) string {
	return utils.HashBytes(content, k.hashKey)
}
