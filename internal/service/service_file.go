// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The CipherShare Authors

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/ciphershare/go-cipher-share/internal/crypto"
	"github.com/ciphershare/go-cipher-share/internal/logger"
	"github.com/ciphershare/go-cipher-share/internal/store"
	"github.com/ciphershare/go-cipher-share/internal/validators"
	"github.com/ciphershare/go-cipher-share/models"
)

// fileService is the concrete implementation of FileService. It stores
// client-encrypted file payloads and controls access to them through
// password-protected, expiring shared links.
//
// The service never sees plaintext: files arrive AES-encrypted, the AES key
// arrives wrapped with the recipient's RSA public key, and only the link
// password is handled here (hashed before storage, verified on retrieval).
type fileService struct {
	// fileRepository persists encrypted files and their share records.
	fileRepository store.FileRepository

	// sharedLinkRepository reads share records during retrieval.
	sharedLinkRepository store.SharedLinkRepository

	// passwordHasher hashes link passwords before storage and verifies
	// submitted passwords against the stored encoding.
	passwordHasher crypto.PasswordHasher

	// validator checks incoming request payloads before any work is done.
	validator validators.Validator

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewFileService constructs a new FileService wired to the given repositories.
func NewFileService(fileRepository store.FileRepository, sharedLinkRepository store.SharedLinkRepository, logger *logger.Logger) FileService {
	return &fileService{
		fileRepository:       fileRepository,
		sharedLinkRepository: sharedLinkRepository,
		passwordHasher:       crypto.NewPasswordHasher(),
		validator:            validators.NewRequestValidator(),
		logger:               logger,
	}
}

// Upload stores an encrypted file and creates the shared link addressing it
// to the recipient, in a single transaction. The link password is hashed with
// Argon2id before storage.
//
// Returns the generated file and link identifiers or:
//   - ErrInvalidDataProvided if the payload fails validation.
//   - ErrRecipientNotFound if the recipient user does not exist. The owner ID
//     comes from a verified token, so a foreign key failure on insert can only
//     mean the recipient is gone.
//   - A wrapped storage error if the transaction fails.
func (f *fileService) Upload(ctx context.Context, ownerID uuid.UUID, req models.UploadFileRequest) (models.UploadFileResponse, error) {
	log := logger.FromContext(ctx)

	if err := f.validator.Validate(ctx, req); err != nil {
		log.Error().Err(err).Str("owner_id", ownerID.String()).Msg("invalid upload data provided")
		return models.UploadFileResponse{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	linkPasswordHash, err := f.passwordHasher.Hash(req.Password)
	if err != nil {
		log.Err(err).Msg("link password hashing ended with error")
		return models.UploadFileResponse{}, fmt.Errorf("link password hashing ended with error: %w", err)
	}

	file := &models.File{
		UserID:          ownerID,
		FileName:        req.FileName,
		FileSize:        req.FileSize,
		EncryptedAESKey: req.EncryptedAESKey,
		EncryptedFile:   req.EncryptedFile,
		IV:              req.IV,
	}
	link := &models.SharedLink{
		RecipientUserID: req.RecipientUserID,
		Password:        linkPasswordHash,
		ExpirationDate:  req.ExpirationDate,
	}

	if err := f.fileRepository.CreateFileWithLink(ctx, file, link); err != nil {
		if errors.Is(err, store.ErrForeignKeyViolation) {
			log.Warn().
				Str("owner_id", ownerID.String()).
				Str("recipient_id", req.RecipientUserID.String()).
				Msg("upload addressed to unknown recipient")
			return models.UploadFileResponse{}, fmt.Errorf("%w: %w", ErrRecipientNotFound, err)
		}
		log.Err(err).Str("owner_id", ownerID.String()).Msg("file upload ended with error")
		return models.UploadFileResponse{}, fmt.Errorf("file upload ended with error: %w", err)
	}

	log.Info().
		Str("file_id", file.ID.String()).
		Str("link_id", link.ID.String()).
		Int64("file_size", file.FileSize).
		Msg("encrypted file stored")

	return models.UploadFileResponse{
		FileID: file.ID,
		LinkID: link.ID,
	}, nil
}

// GetShared retrieves a shared file for its recipient.
//
// The link must be addressed to the caller and not yet expired; the link
// password must verify against the stored hash. An expired link, a link
// addressed to someone else, and a link that never existed all yield the same
// not-found error, so a caller cannot probe which links exist.
//
// Returns the encrypted payload with its wrapped key and IV or:
//   - ErrInvalidDataProvided if the payload fails validation.
//   - A wrapped store.ErrSharedLinkNotFound if no retrievable link matches.
//   - ErrWrongLinkPassword if the password does not match.
//   - A wrapped storage error if a lookup fails.
func (f *fileService) GetShared(ctx context.Context, recipientID uuid.UUID, req models.SharedFileRequest) (models.SharedFileResponse, error) {
	log := logger.FromContext(ctx)

	if err := f.validator.Validate(ctx, req); err != nil {
		log.Error().Err(err).Str("recipient_id", recipientID.String()).Msg("invalid shared file request provided")
		return models.SharedFileResponse{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	link, err := f.sharedLinkRepository.GetLinkForRecipient(ctx, req.LinkID, recipientID)
	if err != nil {
		log.Err(err).
			Str("link_id", req.LinkID.String()).
			Str("recipient_id", recipientID.String()).
			Msg("shared link lookup ended with error")
		return models.SharedFileResponse{}, fmt.Errorf("shared link lookup ended with error: %w", err)
	}

	ok, err := f.passwordHasher.Verify(req.Password, link.Password)
	if err != nil {
		log.Err(err).Str("link_id", link.ID.String()).Msg("link password verification ended with error")
		return models.SharedFileResponse{}, fmt.Errorf("link password verification ended with error: %w", err)
	}
	if !ok {
		log.Warn().Str("link_id", link.ID.String()).Msg("wrong link password")
		return models.SharedFileResponse{}, ErrWrongLinkPassword
	}

	file, err := f.fileRepository.GetFileByID(ctx, link.FileID)
	if err != nil {
		log.Err(err).Str("file_id", link.FileID.String()).Msg("file lookup ended with error")
		return models.SharedFileResponse{}, fmt.Errorf("file lookup ended with error: %w", err)
	}

	return models.SharedFileResponse{
		FileName:        file.FileName,
		FileSize:        file.FileSize,
		EncryptedAESKey: file.EncryptedAESKey,
		EncryptedFile:   file.EncryptedFile,
		IV:              file.IV,
	}, nil
}

// SentFiles returns a page of files the owner has uploaded, newest shares
// first, together with recipient emails. Page and limit are clamped to their
// allowed ranges before the repository is queried.
func (f *fileService) SentFiles(ctx context.Context, ownerID uuid.UUID, req models.ListRequest) (models.SentFilesResponse, error) {
	log := logger.FromContext(ctx)

	req.Normalize()

	files, total, err := f.fileRepository.ListSentFiles(ctx, ownerID, req)
	if err != nil {
		log.Err(err).Str("owner_id", ownerID.String()).Msg("sent files listing ended with error")
		return models.SentFilesResponse{}, fmt.Errorf("sent files listing ended with error: %w", err)
	}

	return models.SentFilesResponse{
		Files: files,
		Page:  req.Page,
		Limit: req.Limit,
		Total: total,
	}, nil
}

// ReceivedFiles returns a page of shares addressed to the recipient, newest
// first, together with sender emails. Expired shares stay in the listing
// until the cleanup worker removes them; only retrieval enforces expiry.
func (f *fileService) ReceivedFiles(ctx context.Context, recipientID uuid.UUID, req models.ListRequest) (models.ReceivedFilesResponse, error) {
	log := logger.FromContext(ctx)

	req.Normalize()

	files, total, err := f.fileRepository.ListReceivedFiles(ctx, recipientID, req)
	if err != nil {
		log.Err(err).Str("recipient_id", recipientID.String()).Msg("received files listing ended with error")
		return models.ReceivedFilesResponse{}, fmt.Errorf("received files listing ended with error: %w", err)
	}

	return models.ReceivedFilesResponse{
		Files: files,
		Page:  req.Page,
		Limit: req.Limit,
		Total: total,
	}, nil
}
