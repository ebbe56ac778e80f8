package store

import (
	"context"
	"fmt"

	"github.com/ciphershare/go-cipher-share/internal/config"
	"github.com/ciphershare/go-cipher-share/internal/logger"
)

// ClientStorages groups all client-side storage repositories into a single
// value that can be passed around the client service layer.
type ClientStorages struct {
	// IdentityRepository stores the account identity and sealed key material
	// in the local SQLite database.
	IdentityRepository IdentityRepository

	// DownloadHistoryRepository keeps the log of retrieved shared files.
	DownloadHistoryRepository DownloadHistoryRepository
}

// NewClientStorages initialises the client storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens an SQLite connection to the file path specified in cfg.DB.DSN,
//     creating the database file if it does not yet exist.
//  2. Creates the client tables when missing via [createClientSchema].
//  3. Constructs and returns a [ClientStorages] value wired to fresh
//     repositories.
//
// Returns an error if the database connection cannot be established or if
// schema creation fails.
func NewClientStorages(cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(context.Background(), cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := createClientSchema(context.Background(), db); err != nil {
		return nil, fmt.Errorf("schema creation failed: %w", err)
	}

	return &ClientStorages{
		IdentityRepository:        NewIdentityRepository(db, logger),
		DownloadHistoryRepository: NewDownloadHistoryRepository(db, logger),
	}, nil
}
