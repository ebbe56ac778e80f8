package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/ciphershare/go-cipher-share/internal/logger"
	"github.com/ciphershare/go-cipher-share/models"
)

// sharedLinkRepository is the PostgreSQL-backed implementation of
// [SharedLinkRepository]. It reads share records during retrieval and prunes
// expired ones on behalf of the background sweeper.
type sharedLinkRepository struct {
	*DB
	logger *logger.Logger
}

// NewSharedLinkRepository constructs a [SharedLinkRepository] backed by the
// provided database connection and logger.
func NewSharedLinkRepository(db *DB, logger *logger.Logger) SharedLinkRepository {
	return &sharedLinkRepository{
		DB:     db,
		logger: logger,
	}
}

// GetLinkForRecipient retrieves the share with the given id, provided it is
// addressed to the recipient and its expiration date lies in the future. All
// three conditions live in the WHERE clause, so a wrong recipient, an expired
// share and a nonexistent id are indistinguishable to the caller: each yields
// [ErrSharedLinkNotFound]. That keeps retrieval from leaking whether a link
// id exists.
func (s *sharedLinkRepository) GetLinkForRecipient(ctx context.Context, linkID uuid.UUID, recipientID uuid.UUID) (models.SharedLink, error) {
	log := logger.FromContext(ctx)

	var link models.SharedLink
	row := s.DB.QueryRowContext(ctx, getLinkForRecipient, linkID, recipientID)

	if err := row.Err(); err != nil {
		log.Err(err).
			Str("func", "sharedLinkRepository.GetLinkForRecipient").
			Str("link_id", linkID.String()).
			Msg("failed to execute query")
		return models.SharedLink{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if err := row.Scan(&link.ID, &link.FileID, &link.RecipientUserID, &link.Password, &link.ExpirationDate, &link.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.SharedLink{}, ErrSharedLinkNotFound
		}
		log.Err(err).
			Str("func", "sharedLinkRepository.GetLinkForRecipient").
			Str("link_id", linkID.String()).
			Msg("failed to scan shared link row")
		return models.SharedLink{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return link, nil
}

// DeleteExpired removes expired shared links and then every file no link
// points at, in one transaction. Uploads always create the file and its link
// together, so after the first DELETE any file without links is ciphertext
// nobody can retrieve anymore.
//
// Returns how many links and files were removed so the sweeper can log the
// result of each run.
func (s *sharedLinkRepository) DeleteExpired(ctx context.Context) (int64, int64, error) {
	log := logger.FromContext(ctx)

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "sharedLinkRepository.DeleteExpired").
			Msg("failed to begin transaction")
		return 0, 0, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	linksResult, err := tx.ExecContext(ctx, deleteExpiredLinks)
	if err != nil {
		log.Err(err).
			Str("func", "sharedLinkRepository.DeleteExpired").
			Msg("failed to delete expired shared links")
		return 0, 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	linksDeleted, err := linksResult.RowsAffected()
	if err != nil {
		log.Err(err).
			Str("func", "sharedLinkRepository.DeleteExpired").
			Msg("failed to read affected rows for links")
		return 0, 0, err
	}

	filesResult, err := tx.ExecContext(ctx, deleteOrphanFiles)
	if err != nil {
		log.Err(err).
			Str("func", "sharedLinkRepository.DeleteExpired").
			Msg("failed to delete orphaned files")
		return 0, 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	filesDeleted, err := filesResult.RowsAffected()
	if err != nil {
		log.Err(err).
			Str("func", "sharedLinkRepository.DeleteExpired").
			Msg("failed to read affected rows for files")
		return 0, 0, err
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).
			Str("func", "sharedLinkRepository.DeleteExpired").
			Msg("failed to commit transaction")
		return 0, 0, fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}

	return linksDeleted, filesDeleted, nil
}
