// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The CipherShare Authors

// Package adapter provides transport-layer abstractions for communicating with
// the CipherShare server.
//
// The primary abstraction is [ServerAdapter], which decouples the client
// service layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/ciphershare/go-cipher-share/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the CipherShare
// server. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel values
// defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all subsequent
	// authenticated requests. It should be called immediately after a
	// successful Register or Login.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register creates a new account from the provided credentials. On
	// success it stores the returned bearer token via SetToken and returns
	// the server's auth payload (token plus the created user profile).
	// Returns an error if the request fails or the server responds with a
	// non-2xx status.
	Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error)

	// Login exchanges email and password for a bearer token. On success it
	// stores the token via SetToken and returns the auth payload (token plus
	// the full user profile). Returns [ErrUnauthorized] (wrapped) when the
	// credentials are rejected.
	Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error)

	// GetServerVersion fetches the version string of the running server.
	// It does not require authentication.
	GetServerVersion(ctx context.Context) (string, error)

	// GetProfile returns the profile of the authenticated user. Requires a
	// valid bearer token.
	GetProfile(ctx context.Context) (models.User, error)

	// UpdateName changes the display name of the authenticated user and
	// returns the updated profile. Requires a valid bearer token.
	UpdateName(ctx context.Context, req models.UpdateNameRequest) (models.User, error)

	// UpdatePassword changes the account password of the authenticated user.
	// Returns [ErrUnauthorized] (wrapped) when the old password does not
	// verify. Requires a valid bearer token.
	UpdatePassword(ctx context.Context, req models.UpdatePasswordRequest) error

	// SavePublicKey uploads the caller's PEM-encoded RSA public key so other
	// users can wrap file keys for them. Requires a valid bearer token.
	SavePublicKey(ctx context.Context, req models.SavePublicKeyRequest) error

	// SearchUsers finds share recipients by email substring. Only users with
	// a stored public key are returned; the caller is excluded from the
	// results. Requires a valid bearer token.
	SearchUsers(ctx context.Context, req models.SearchUsersRequest) (models.UserSearchResponse, error)

	// DeleteAccount permanently removes the authenticated user's account
	// together with their files and share links. Requires a valid bearer
	// token.
	DeleteAccount(ctx context.Context) error

	// Upload sends one encrypted file with its share terms to the server and
	// returns the created file and link identifiers. All binary fields of req
	// must already be encrypted; the server never sees plaintext. Requires a
	// valid bearer token.
	Upload(ctx context.Context, req models.UploadFileRequest) (models.UploadFileResponse, error)

	// GetSharedFile retrieves the encrypted payload behind a share link. The
	// caller must be the link's recipient and present the link password.
	// Returns [ErrUnauthorized] (wrapped) on a wrong link password and
	// [ErrNotFound] (wrapped) when the link is unknown or expired. Requires a
	// valid bearer token.
	GetSharedFile(ctx context.Context, req models.SharedFileRequest) (models.SharedFileResponse, error)

	// SentFiles lists the files the authenticated user has shared, one page
	// at a time. Requires a valid bearer token.
	SentFiles(ctx context.Context, req models.ListRequest) (models.SentFilesResponse, error)

	// ReceivedFiles lists the share links addressed to the authenticated
	// user, one page at a time. Requires a valid bearer token.
	ReceivedFiles(ctx context.Context, req models.ListRequest) (models.ReceivedFilesResponse, error)
}
