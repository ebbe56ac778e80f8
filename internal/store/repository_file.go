// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The CipherShare Authors

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"

	"github.com/ciphershare/go-cipher-share/internal/logger"
	"github.com/ciphershare/go-cipher-share/models"
)

// fileRepository is the PostgreSQL-backed implementation of [FileRepository].
// It stores encrypted payloads in the "files" table and the share records
// addressing them in "shared_links", using the embedded [*DB] connection.
//
// Every method obtains a context-scoped logger via [logger.FromContext] so
// that all database interactions are traced with structured fields.
type fileRepository struct {
	*DB
	logger *logger.Logger
}

// NewFileRepository constructs a [FileRepository] backed by the provided
// database connection and logger.
func NewFileRepository(db *DB, logger *logger.Logger) FileRepository {
	return &fileRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateFileWithLink inserts the encrypted file and its shared link inside a
// single database transaction. A file row without a link addressing it would
// be unreachable ciphertext, so the pair either lands together or not at all.
//
// On success the server-assigned identifiers and timestamps are written back
// into file and link. The link's FileID is filled in from the file insert,
// any value supplied by the caller is ignored.
//
// Error handling:
//   - PostgreSQL foreign_key_violation (23503) → [ErrForeignKeyViolation]
//     (uploader or recipient account no longer exists).
//   - Commit failure → wrapped in [ErrCommitingTransaction]; the transaction
//     is considered rolled back.
func (f *fileRepository) CreateFileWithLink(ctx context.Context, file *models.File, link *models.SharedLink) error {
	log := logger.FromContext(ctx)

	tx, err := f.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "fileRepository.CreateFileWithLink").
			Str("user_id", file.UserID.String()).
			Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	log.Debug().
		Str("func", "fileRepository.CreateFileWithLink").
		Str("user_id", file.UserID.String()).
		Str("file_name", file.FileName).
		Int64("file_size", file.FileSize).
		Msg("storing encrypted file in transaction")

	queryErr := tx.QueryRowContext(ctx, createFile,
		file.UserID,
		file.FileName,
		file.FileSize,
		file.EncryptedAESKey,
		file.EncryptedFile,
		file.IV,
	).Scan(&file.ID, &file.CreatedAt)

	if queryErr != nil {
		log.Err(queryErr).
			Str("func", "fileRepository.CreateFileWithLink").
			Str("user_id", file.UserID.String()).
			Msg("failed to insert file row")

		switch postgresError(queryErr) {
		case pgerrcode.ForeignKeyViolation:
			return ErrForeignKeyViolation
		default:
			return fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
		}
	}

	link.FileID = file.ID

	log.Debug().
		Str("func", "fileRepository.CreateFileWithLink").
		Str("file_id", file.ID.String()).
		Str("recipient_user_id", link.RecipientUserID.String()).
		Msg("storing shared link in transaction")

	queryErr = tx.QueryRowContext(ctx, createSharedLink,
		link.FileID,
		link.RecipientUserID,
		link.Password,
		link.ExpirationDate,
	).Scan(&link.ID, &link.CreatedAt)

	if queryErr != nil {
		log.Err(queryErr).
			Str("func", "fileRepository.CreateFileWithLink").
			Str("file_id", file.ID.String()).
			Str("recipient_user_id", link.RecipientUserID.String()).
			Msg("failed to insert shared link row")

		switch postgresError(queryErr) {
		case pgerrcode.ForeignKeyViolation:
			return ErrForeignKeyViolation
		default:
			return fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
		}
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).
			Str("func", "fileRepository.CreateFileWithLink").
			Str("file_id", file.ID.String()).
			Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}

	log.Info().
		Str("func", "fileRepository.CreateFileWithLink").
		Str("file_id", file.ID.String()).
		Str("link_id", link.ID.String()).
		Msg("successfully stored encrypted file and shared link")

	return nil
}

// GetFileByID retrieves a file row including the encrypted payload.
//
// Error handling:
//   - No matching row → [ErrFileNotFound].
//   - Scan failure → wrapped in [ErrScanningRow].
func (f *fileRepository) GetFileByID(ctx context.Context, fileID uuid.UUID) (models.File, error) {
	log := logger.FromContext(ctx)

	var file models.File
	row := f.DB.QueryRowContext(ctx, getFileByID, fileID)

	if err := row.Err(); err != nil {
		log.Err(err).
			Str("func", "fileRepository.GetFileByID").
			Str("file_id", fileID.String()).
			Msg("failed to execute query")
		return models.File{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if err := row.Scan(&file.ID, &file.UserID, &file.FileName, &file.FileSize, &file.EncryptedAESKey, &file.EncryptedFile, &file.IV, &file.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.File{}, ErrFileNotFound
		}
		log.Err(err).
			Str("func", "fileRepository.GetFileByID").
			Str("file_id", fileID.String()).
			Msg("failed to scan file row")
		return models.File{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return file, nil
}

// ListSentFiles returns one page of files uploaded by the owner, joined with
// the recipient email of each share, newest shares first. The second return
// value is the total number of shares across all pages.
func (f *fileRepository) ListSentFiles(ctx context.Context, ownerID uuid.UUID, req models.ListRequest) ([]models.SentFileEntry, int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSentFilesQuery(ownerID, req)
	if err != nil {
		log.Err(err).
			Str("func", "fileRepository.ListSentFiles").
			Str("user_id", ownerID.String()).
			Msg("failed to build query")
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := f.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "fileRepository.ListSentFiles").
			Str("user_id", ownerID.String()).
			Msg("failed to execute query for sent files")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.SentFileEntry, 0, req.Limit)

	for rows.Next() {
		var entry models.SentFileEntry

		scanErr := rows.Scan(
			&entry.FileID,
			&entry.FileName,
			&entry.RecipientEmail,
			&entry.ExpirationDate,
			&entry.CreatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "fileRepository.ListSentFiles").
				Str("user_id", ownerID.String()).
				Msg("failed to scan sent file row")
			return nil, 0, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		entries = append(entries, entry)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "fileRepository.ListSentFiles").
			Str("user_id", ownerID.String()).
			Msg("error occurred during rows iteration")
		return nil, 0, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	countQuery, countArgs, err := buildCountSentFilesQuery(ownerID)
	if err != nil {
		log.Err(err).
			Str("func", "fileRepository.ListSentFiles").
			Str("user_id", ownerID.String()).
			Msg("failed to build count query")
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var total int64
	if err := f.DB.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		log.Err(err).
			Str("func", "fileRepository.ListSentFiles").
			Str("user_id", ownerID.String()).
			Msg("failed to count sent files")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return entries, total, nil
}

// ListReceivedFiles returns one page of shares addressed to the recipient,
// joined with the sender email of each file, newest first. Expired shares are
// included so the listing shows what was missed; only retrieval enforces the
// expiration date.
func (f *fileRepository) ListReceivedFiles(ctx context.Context, recipientID uuid.UUID, req models.ListRequest) ([]models.ReceivedFileEntry, int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildReceivedFilesQuery(recipientID, req)
	if err != nil {
		log.Err(err).
			Str("func", "fileRepository.ListReceivedFiles").
			Str("user_id", recipientID.String()).
			Msg("failed to build query")
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := f.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "fileRepository.ListReceivedFiles").
			Str("user_id", recipientID.String()).
			Msg("failed to execute query for received files")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.ReceivedFileEntry, 0, req.Limit)

	for rows.Next() {
		var entry models.ReceivedFileEntry

		scanErr := rows.Scan(
			&entry.LinkID,
			&entry.FileName,
			&entry.SenderEmail,
			&entry.ExpirationDate,
			&entry.CreatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "fileRepository.ListReceivedFiles").
				Str("user_id", recipientID.String()).
				Msg("failed to scan received file row")
			return nil, 0, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		entries = append(entries, entry)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "fileRepository.ListReceivedFiles").
			Str("user_id", recipientID.String()).
			Msg("error occurred during rows iteration")
		return nil, 0, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	countQuery, countArgs, err := buildCountReceivedFilesQuery(recipientID)
	if err != nil {
		log.Err(err).
			Str("func", "fileRepository.ListReceivedFiles").
			Str("user_id", recipientID.String()).
			Msg("failed to build count query")
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var total int64
	if err := f.DB.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		log.Err(err).
			Str("func", "fileRepository.ListReceivedFiles").
			Str("user_id", recipientID.String()).
			Msg("failed to count received files")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return entries, total, nil
}
