package service

import (
	"context"
	"crypto/rsa"

	"github.com/google/uuid"

	"github.com/ciphershare/go-cipher-share/models"
)

// ClientKeyService defines the client-side contract for session key material.
// It holds the RSA private key unlocked during login and exposes the wrap,
// unwrap and fingerprint operations the file workflows need. The per-file
// AES keys themselves never leave the service layer in wrapped form.
type ClientKeyService interface {
	// SetPrivateKey stores the unlocked RSA private key for this session.
	// It is called once after a successful login or registration.
	SetPrivateKey(key *rsa.PrivateKey)

	// HasPrivateKey reports whether a session key is currently held.
	HasPrivateKey() bool

	// WrapFileKey encrypts a per-file AES key with the recipient's
	// PEM-encoded RSA public key. Returns an error if the PEM cannot be
	// parsed or the wrap fails.
	WrapFileKey(fileKey []byte, recipientPublicKeyPEM string) ([]byte, error)

	// UnwrapFileKey recovers a per-file AES key that was wrapped with this
	// session's public key. Returns ErrNoSessionKey when no private key is
	// held, or an error if the key was wrapped for a different keypair.
	UnwrapFileKey(wrapped []byte) ([]byte, error)

	// Checksum computes a keyed fingerprint of decrypted file content for
	// the local download history.
	Checksum(content []byte) string
}

// ClientAuthService defines the client-side contract for account registration
// and authentication. Implementations own the keypair lifecycle: generating
// the RSA keypair, publishing the public key to the server, and sealing the
// private key with the account password in the local store.
type ClientAuthService interface {
	// Register creates a new account on the server, provisions the local
	// RSA keypair, publishes its public key, and persists the identity with
	// the password-sealed private key. On success the session key is set on
	// the ClientKeyService.
	// Returns the created user, or an error if the server rejects the
	// registration (e.g. store.ErrEmailAlreadyExists) or any keypair step
	// fails.
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)

	// Login authenticates against the server and unlocks the locally stored
	// private key with the account password. When this machine holds no
	// identity for the email yet, a fresh keypair is generated and published
	// in place of whatever key an earlier machine uploaded.
	// Returns the authenticated user, ErrWrongPassword on bad credentials,
	// or an error if the sealed key cannot be opened.
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)
}

// ClientFileService defines the client-side contract for the sharing
// workflows: encrypt-and-upload, retrieve-and-decrypt, the sent/received
// listings and recipient search. All cryptography happens on this side of
// the wire; plaintext never reaches the server.
type ClientFileService interface {
	// SearchRecipients finds users matching the email query who can receive
	// files. Users without a published public key are excluded server-side.
	SearchRecipients(ctx context.Context, req models.SearchUsersRequest) (models.UserSearchResponse, error)

	// Upload encrypts the file at req.FilePath with a fresh AES-256 key,
	// wraps the key for the recipient and uploads the sealed bundle together
	// with the share terms. Returns the created file and link identifiers.
	Upload(ctx context.Context, req models.ClientUploadRequest) (models.UploadFileResponse, error)

	// Retrieve fetches a shared file by link ID and password, unwraps the
	// file key with the session's private key, decrypts the content, saves
	// it under the download directory and records the download in the local
	// history. Returns ErrWrongLinkPassword on a bad link password and
	// store.ErrSharedLinkNotFound for unknown or expired links.
	Retrieve(ctx context.Context, req models.ClientRetrieveRequest) (models.ClientRetrieveResult, error)

	// SentFiles returns one page of the links the user created.
	SentFiles(ctx context.Context, req models.ListRequest) (models.SentFilesResponse, error)

	// ReceivedFiles returns one page of the links addressed to the user.
	ReceivedFiles(ctx context.Context, req models.ListRequest) (models.ReceivedFilesResponse, error)

	// Downloads returns the local download history of the user, newest first.
	Downloads(ctx context.Context, userID uuid.UUID) ([]models.DownloadRecord, error)
}

// ClientProfileService defines the client-side contract for account
// maintenance. Password changes also reseal the locally stored private key,
// which is why they live here and not in a thin adapter passthrough.
type ClientProfileService interface {
	// Profile fetches the current account profile from the server.
	Profile(ctx context.Context) (models.User, error)

	// Rename changes the display name and returns the updated profile.
	Rename(ctx context.Context, name string) (models.User, error)

	// ChangePassword changes the account password on the server and reseals
	// the local private key with the new password. The old password must
	// both verify on the server and open the sealed key; otherwise nothing
	// is changed on either side. Returns ErrWrongPassword when the old
	// password is rejected.
	ChangePassword(ctx context.Context, email, oldPassword, newPassword string) error

	// DeleteAccount permanently removes the account with all its files and
	// share links, then forgets the local identity for the email.
	DeleteAccount(ctx context.Context, email string) error

	// ServerVersion reports the version string of the remote server.
	ServerVersion(ctx context.Context) (string, error)
}
