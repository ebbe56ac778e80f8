package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ciphershare/go-cipher-share/internal/adapter"
	"github.com/ciphershare/go-cipher-share/internal/crypto"
	"github.com/ciphershare/go-cipher-share/internal/store"
	"github.com/ciphershare/go-cipher-share/models"
)

type clientAuthService struct {
	localStore       *store.ClientStorages
	adapter          adapter.ServerAdapter
	fileCipher       crypto.FileCipherService
	clientKeyService ClientKeyService
}

func NewClientAuthService(localStore *store.ClientStorages, serverAdapter adapter.ServerAdapter, fileCipher crypto.FileCipherService, keySvc ClientKeyService) ClientAuthService {
	return &clientAuthService{localStore: localStore, adapter: serverAdapter, fileCipher: fileCipher, clientKeyService: keySvc}
}

func (a *clientAuthService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	resp, err := a.adapter.Register(ctx, req)
	if err != nil {
		return models.User{}, mapAdapterError(err)
	}

	if err = a.provisionKeypair(ctx, resp.User, req.Password); err != nil {
		return models.User{}, err
	}

	return resp.User, nil
}

func (a *clientAuthService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	resp, err := a.adapter.Login(ctx, req)
	if err != nil {
		return models.User{}, mapAdapterError(err)
	}

	identity, err := a.localStore.IdentityRepository.GetIdentity(ctx, req.Email)
	switch {
	case err == nil:
		private, openErr := a.fileCipher.OpenPrivateKey(identity.SealedPrivateKey, req.Password, identity.KeySalt)
		if openErr != nil {
			return models.User{}, fmt.Errorf("open sealed private key: %w", openErr)
		}
		a.clientKeyService.SetPrivateKey(private)

	case errors.Is(err, store.ErrIdentityNotFound):
		// First login on this machine. The published key is replaced, so
		// files shared under the previous key stay sealed to this machine.
		if err = a.provisionKeypair(ctx, resp.User, req.Password); err != nil {
			return models.User{}, err
		}

	default:
		return models.User{}, fmt.Errorf("load identity: %w", err)
	}

	return resp.User, nil
}

// provisionKeypair generates a fresh RSA keypair, publishes its public key to
// the server, seals the private key with the account password and persists
// the identity locally. The unlocked key is handed to the ClientKeyService.
func (a *clientAuthService) provisionKeypair(ctx context.Context, user models.User, password string) error {
	private, err := a.fileCipher.GenerateKeyPair()
	if err != nil {
		return fmt.Errorf("generate keypair: %w", err)
	}

	publicPEM, err := a.fileCipher.EncodePublicKeyPEM(&private.PublicKey)
	if err != nil {
		return fmt.Errorf("encode public key: %w", err)
	}

	if err = a.adapter.SavePublicKey(ctx, models.SavePublicKeyRequest{PublicKey: publicPEM}); err != nil {
		return fmt.Errorf("publish public key: %w", mapAdapterError(err))
	}

	salt, err := a.fileCipher.GenerateSalt()
	if err != nil {
		return fmt.Errorf("generate key salt: %w", err)
	}

	sealed, err := a.fileCipher.SealPrivateKey(private, password, salt)
	if err != nil {
		return fmt.Errorf("seal private key: %w", err)
	}

	identity := models.ClientIdentity{
		UserID:           user.ID,
		Email:            user.Email,
		Name:             user.Name,
		PublicKeyPEM:     publicPEM,
		SealedPrivateKey: sealed,
		KeySalt:          salt,
		UpdatedAt:        time.Now().UTC(),
	}

	if err = a.localStore.IdentityRepository.SaveIdentity(ctx, identity); err != nil {
		return fmt.Errorf("save identity: %w", err)
	}

	a.clientKeyService.SetPrivateKey(private)

	return nil
}
