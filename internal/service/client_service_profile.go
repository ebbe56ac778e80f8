package service

import (
	"context"
	"fmt"
	"time"

	"github.com/ciphershare/go-cipher-share/internal/adapter"
	"github.com/ciphershare/go-cipher-share/internal/crypto"
	"github.com/ciphershare/go-cipher-share/internal/store"
	"github.com/ciphershare/go-cipher-share/models"
)

type clientProfileService struct {
	localStore *store.ClientStorages
	adapter    adapter.ServerAdapter
	fileCipher crypto.FileCipherService
}

func NewClientProfileService(localStore *store.ClientStorages, serverAdapter adapter.ServerAdapter, fileCipher crypto.FileCipherService) ClientProfileService {
	return &clientProfileService{localStore: localStore, adapter: serverAdapter, fileCipher: fileCipher}
}

func (p *clientProfileService) Profile(ctx context.Context) (models.User, error) {
	user, err := p.adapter.GetProfile(ctx)
	if err != nil {
		return models.User{}, mapAdapterError(err)
	}

	return user, nil
}

func (p *clientProfileService) Rename(ctx context.Context, name string) (models.User, error) {
	user, err := p.adapter.UpdateName(ctx, models.UpdateNameRequest{Name: name})
	if err != nil {
		return models.User{}, mapAdapterError(err)
	}

	return user, nil
}

func (p *clientProfileService) ChangePassword(ctx context.Context, email, oldPassword, newPassword string) error {
	identity, err := p.localStore.IdentityRepository.GetIdentity(ctx, email)
	if err != nil {
		return fmt.Errorf("load identity: %w", err)
	}

	// Open before touching the server. A wrong old password fails here
	// instead of leaving the server password and the sealed key out of sync.
	private, err := p.fileCipher.OpenPrivateKey(identity.SealedPrivateKey, oldPassword, identity.KeySalt)
	if err != nil {
		return ErrWrongPassword
	}

	err = p.adapter.UpdatePassword(ctx, models.UpdatePasswordRequest{
		OldPassword:        oldPassword,
		NewPassword:        newPassword,
		NewPasswordConfirm: newPassword,
	})
	if err != nil {
		return mapAdapterError(err)
	}

	salt, err := p.fileCipher.GenerateSalt()
	if err != nil {
		return fmt.Errorf("generate key salt: %w", err)
	}

	sealed, err := p.fileCipher.SealPrivateKey(private, newPassword, salt)
	if err != nil {
		return fmt.Errorf("reseal private key: %w", err)
	}

	identity.SealedPrivateKey = sealed
	identity.KeySalt = salt
	identity.UpdatedAt = time.Now().UTC()

	if err = p.localStore.IdentityRepository.SaveIdentity(ctx, identity); err != nil {
		return fmt.Errorf("save identity: %w", err)
	}

	return nil
}

func (p *clientProfileService) DeleteAccount(ctx context.Context, email string) error {
	if err := p.adapter.DeleteAccount(ctx); err != nil {
		return mapAdapterError(err)
	}

	if err := p.localStore.IdentityRepository.DeleteIdentity(ctx, email); err != nil {
		return fmt.Errorf("delete identity: %w", err)
	}

	return nil
}

func (p *clientProfileService) ServerVersion(ctx context.Context) (string, error) {
	version, err := p.adapter.GetServerVersion(ctx)
	if err != nil {
		return "", mapAdapterError(err)
	}

	return version, nil
}
