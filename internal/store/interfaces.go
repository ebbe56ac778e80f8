// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The CipherShare Authors

package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/ciphershare/go-cipher-share/models"
)

// UserRepository persists user accounts and their public encryption keys.
type UserRepository interface {
	// CreateUser inserts a new user and returns the stored record with its
	// generated id and timestamps. Returns ErrEmailAlreadyExists when the
	// email is taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// GetUserByID returns the user with the given id or ErrNoUserWasFound.
	GetUserByID(ctx context.Context, userID uuid.UUID) (models.User, error)
	// GetUserByEmail returns the user with the given email or ErrNoUserWasFound.
	GetUserByEmail(ctx context.Context, email string) (models.User, error)
	// UpdateUserName sets a new display name and refreshes updated_at.
	UpdateUserName(ctx context.Context, userID uuid.UUID, name string) (models.User, error)
	// UpdateUserPassword stores a new password hash and refreshes updated_at.
	UpdateUserPassword(ctx context.Context, userID uuid.UUID, passwordHash string) error
	// SaveUserPublicKey stores the PEM-encoded RSA public key used by other
	// users to wrap file keys for this account.
	SaveUserPublicKey(ctx context.Context, userID uuid.UUID, publicKey string) error
	// SearchUsersByEmail returns users whose email contains the query string,
	// excluding the searching user and accounts without a public key. The
	// second return value is the total number of matches before pagination.
	SearchUsersByEmail(ctx context.Context, req models.SearchUsersRequest, selfID uuid.UUID) ([]models.UserSearchEntry, int64, error)
	// DeleteUser removes the account. Files and shared links owned by or
	// addressed to the user are removed by ON DELETE CASCADE.
	DeleteUser(ctx context.Context, userID uuid.UUID) error
}

// FileRepository persists encrypted file payloads and their share records.
type FileRepository interface {
	// CreateFileWithLink inserts the file and its shared link in a single
	// transaction and fills in the generated ids and timestamps. A file is
	// never stored without a link addressing it to a recipient.
	CreateFileWithLink(ctx context.Context, file *models.File, link *models.SharedLink) error
	// GetFileByID returns the file row including the encrypted payload.
	GetFileByID(ctx context.Context, fileID uuid.UUID) (models.File, error)
	// ListSentFiles returns a page of files uploaded by the owner together
	// with recipient emails, newest shares first, plus the total count.
	ListSentFiles(ctx context.Context, ownerID uuid.UUID, req models.ListRequest) ([]models.SentFileEntry, int64, error)
	// ListReceivedFiles returns a page of shares addressed to the recipient
	// together with sender emails, newest first, plus the total count.
	// Expired shares are listed; expiry is only enforced on retrieval.
	ListReceivedFiles(ctx context.Context, recipientID uuid.UUID, req models.ListRequest) ([]models.ReceivedFileEntry, int64, error)
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying. [PostgresErrorClassifier] is the production implementation.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// SharedLinkRepository reads and prunes share records.
type SharedLinkRepository interface {
	// GetLinkForRecipient returns the link with the given id if it is
	// addressed to the recipient and has not expired. Any other combination
	// yields ErrSharedLinkNotFound.
	GetLinkForRecipient(ctx context.Context, linkID uuid.UUID, recipientID uuid.UUID) (models.SharedLink, error)
	// DeleteExpired removes expired links and the files left without any
	// link, in one transaction. Returns the number of deleted links and files.
	DeleteExpired(ctx context.Context) (linksDeleted int64, filesDeleted int64, err error)
}
