package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ciphershare/go-cipher-share/internal/logger"
	"github.com/ciphershare/go-cipher-share/models"
)

type downloadHistoryRepository struct {
	*DB
	logger *logger.Logger
}

// NewDownloadHistoryRepository constructs a [DownloadHistoryRepository]
// backed by the client's local SQLite database.
func NewDownloadHistoryRepository(db *DB, logger *logger.Logger) DownloadHistoryRepository {
	return &downloadHistoryRepository{
		DB:     db,
		logger: logger,
	}
}

func (d *downloadHistoryRepository) RecordDownload(ctx context.Context, record models.DownloadRecord) error {
	log := logger.FromContext(ctx)

	_, err := d.DB.ExecContext(ctx, recordDownload,
		record.ID,
		record.UserID,
		record.LinkID,
		record.FileName,
		record.FileSize,
		record.SenderEmail,
		record.Checksum,
		record.SavedTo,
		record.DownloadedAt,
	)
	if err != nil {
		log.Err(err).
			Str("func", "downloadHistoryRepository.RecordDownload").
			Str("link_id", record.LinkID.String()).
			Str("file_name", record.FileName).
			Msg("failed to execute insert for download record")
		return fmt.Errorf("failed to record download (link_id=%s): %w", record.LinkID, err)
	}

	return nil
}

func (d *downloadHistoryRepository) ListDownloads(ctx context.Context, userID uuid.UUID) ([]models.DownloadRecord, error) {
	log := logger.FromContext(ctx)

	rows, err := d.DB.QueryContext(ctx, listDownloads, userID)
	if err != nil {
		log.Err(err).
			Str("func", "downloadHistoryRepository.ListDownloads").
			Str("user_id", userID.String()).
			Msg("failed to execute query for download history")
		return nil, fmt.Errorf("failed to query download history: %w", err)
	}
	defer rows.Close()

	var records []models.DownloadRecord

	for rows.Next() {
		var record models.DownloadRecord

		scanErr := rows.Scan(
			&record.ID,
			&record.UserID,
			&record.LinkID,
			&record.FileName,
			&record.FileSize,
			&record.SenderEmail,
			&record.Checksum,
			&record.SavedTo,
			&record.DownloadedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "downloadHistoryRepository.ListDownloads").
				Str("user_id", userID.String()).
				Msg("failed to scan download record row")
			return nil, fmt.Errorf("failed to scan download record row: %w", scanErr)
		}

		records = append(records, record)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "downloadHistoryRepository.ListDownloads").
			Str("user_id", userID.String()).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("error iterating download record rows: %w", rowsErr)
	}

	return records, nil
}
