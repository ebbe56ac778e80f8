package service

import (
	"github.com/ciphershare/go-cipher-share/internal/adapter"
	"github.com/ciphershare/go-cipher-share/internal/config"
	"github.com/ciphershare/go-cipher-share/internal/crypto"
	"github.com/ciphershare/go-cipher-share/internal/store"
)

// ClientServices bundles the client-side service layer consumed by the TUI.
type ClientServices struct {
	KeyService     ClientKeyService
	AuthService    ClientAuthService
	FileService    ClientFileService
	ProfileService ClientProfileService
}

// NewClientServices wires the client services around the local store, the
// server adapter and the client configuration.
func NewClientServices(localStore *store.ClientStorages, serverAdapter adapter.ServerAdapter, cfg *config.ClientConfig) *ClientServices {
	fileCipher := crypto.NewFileCipherService()
	keySvc := NewClientKeyService(fileCipher, cfg.App.HashKey)

	return &ClientServices{
		KeyService:     keySvc,
		AuthService:    NewClientAuthService(localStore, serverAdapter, fileCipher, keySvc),
		FileService:    NewClientFileService(localStore, serverAdapter, fileCipher, keySvc, cfg.Storage.DownloadDir),
		ProfileService: NewClientProfileService(localStore, serverAdapter, fileCipher),
	}
}
