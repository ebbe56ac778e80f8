package service

import (
	"context"
	"fmt"

	"github.com/ciphershare/go-cipher-share/internal/logger"
	"github.com/ciphershare/go-cipher-share/internal/store"
)

// cleanupService is the concrete implementation of CleanupService. It removes
// expired shared links and the encrypted files left unreachable by their
// removal, delegating the transactional sweep to the SharedLinkRepository.
type cleanupService struct {
	// sharedLinkRepository performs the transactional delete.
	sharedLinkRepository store.SharedLinkRepository

	// errorClassifier decides whether a failed sweep is transient. A
	// retryable failure will likely heal on the next worker tick, so it is
	// logged at a lower severity than a permanent one.
	errorClassifier store.ErrorClassificator

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewCleanupService constructs a new CleanupService wired to the given
// SharedLinkRepository.
func NewCleanupService(sharedLinkRepository store.SharedLinkRepository, logger *logger.Logger) CleanupService {
	return &cleanupService{
		sharedLinkRepository: sharedLinkRepository,
		errorClassifier:      store.NewPostgresErrorClassifier(),
		logger:               logger,
	}
}

// DeleteExpired removes expired shared links and orphaned files in one
// transaction and reports how many of each were deleted.
func (c *cleanupService) DeleteExpired(ctx context.Context) (int64, int64, error) {
	log := logger.FromContext(ctx)

	linksDeleted, filesDeleted, err := c.sharedLinkRepository.DeleteExpired(ctx)
	if err != nil {
		if c.errorClassifier.Classify(err) == store.Retryable {
			log.Warn().Err(err).Msg("expired share sweep hit a transient failure")
		} else {
			log.Err(err).Msg("expired share sweep ended with error")
		}
		return 0, 0, fmt.Errorf("expired share sweep ended with error: %w", err)
	}

	if linksDeleted > 0 || filesDeleted > 0 {
		log.Info().
			Int64("links_deleted", linksDeleted).
			Int64("files_deleted", filesDeleted).
			Msg("expired shares removed")
	}

	return linksDeleted, filesDeleted, nil
}
