package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ciphershare/go-cipher-share/internal/logger"
	"github.com/ciphershare/go-cipher-share/models"
)

// ErrIdentityNotFound is returned when no identity is stored for an email.
var ErrIdentityNotFound = errors.New("local identity not found")

type identityRepository struct {
	*DB
	logger *logger.Logger
}

// NewIdentityRepository constructs an [IdentityRepository] backed by the
// client's local SQLite database.
func NewIdentityRepository(db *DB, logger *logger.Logger) IdentityRepository {
	return &identityRepository{
		DB:     db,
		logger: logger,
	}
}

// SaveIdentity upserts the identity row keyed by email. Logging in on a new
// device after a key rotation overwrites the stale sealed key material.
func (i *identityRepository) SaveIdentity(ctx context.Context, identity models.ClientIdentity) error {
	log := logger.FromContext(ctx)

	_, err := i.DB.ExecContext(ctx, saveIdentity,
		identity.Email,
		identity.UserID,
		identity.Name,
		identity.PublicKeyPEM,
		identity.SealedPrivateKey,
		identity.KeySalt,
		identity.UpdatedAt,
	)
	if err != nil {
		log.Err(err).
			Str("func", "identityRepository.SaveIdentity").
			Str("email", identity.Email).
			Msg("failed to execute upsert for identity")
		return fmt.Errorf("failed to save identity (email=%s): %w", identity.Email, err)
	}

	return nil
}

// GetIdentity loads the stored identity for the given email, or
// [ErrIdentityNotFound] when the account has never logged in on this device.
func (i *identityRepository) GetIdentity(ctx context.Context, email string) (models.ClientIdentity, error) {
	log := logger.FromContext(ctx)

	var identity models.ClientIdentity
	row := i.DB.QueryRowContext(ctx, getIdentity, email)
	if row.Err() != nil {
		err := row.Err()
		log.Err(err).
			Str("func", "identityRepository.GetIdentity").
			Str("email", email).
			Msg("failed to execute query for getting identity")
		return models.ClientIdentity{}, fmt.Errorf("failed to query identity: %w", err)
	}

	scanErr := row.Scan(
		&identity.Email,
		&identity.UserID,
		&identity.Name,
		&identity.PublicKeyPEM,
		&identity.SealedPrivateKey,
		&identity.KeySalt,
		&identity.UpdatedAt,
	)
	if scanErr != nil {
		if errors.Is(scanErr, sql.ErrNoRows) {
			return models.ClientIdentity{}, ErrIdentityNotFound
		}
		log.Err(scanErr).
			Str("func", "identityRepository.GetIdentity").
			Str("email", email).
			Msg("failed to scan identity row")
		return models.ClientIdentity{}, fmt.Errorf("failed to scan identity row: %w", scanErr)
	}

	return identity, nil
}

// DeleteIdentity removes the stored identity, forgetting the sealed key
// material for this account on this device.
func (i *identityRepository) DeleteIdentity(ctx context.Context, email string) error {
	log := logger.FromContext(ctx)

	_, err := i.DB.ExecContext(ctx, deleteIdentity, email)
	if err != nil {
		log.Err(err).
			Str("func", "identityRepository.DeleteIdentity").
			Str("email", email).
			Msg("failed to execute delete for identity")
		return fmt.Errorf("failed to delete identity (email=%s): %w", email, err)
	}

	return nil
}
