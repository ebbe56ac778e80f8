// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The CipherShare Authors

// Package app contains shared application-layer constants used across the
// CipherShare server handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API,
// and lets the client adapter translate response bodies back into typed
// errors.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails validation (e.g. missing required fields).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidEmailPassword is returned when the supplied email/password
	// combination does not match any existing user record.
	MsgInvalidEmailPassword = "invalid email/password"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgTokenIsExpiredOrInvalid is returned when a JWT bearer token is
	// either expired or cannot be verified (e.g. wrong signature).
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgNoUserIDProvided is returned when a handler requires a user ID
	// (extracted from the JWT claim) but none is present in the request
	// context.
	MsgNoUserIDProvided = "no user ID provided"

	// MsgEmailAlreadyExists is returned when a registration attempt is
	// rejected because the requested email is already in use.
	MsgEmailAlreadyExists = "email already exists"

	// MsgUserNotFound is returned when an operation targets a user record
	// that does not exist, including share uploads naming an unknown
	// recipient.
	MsgUserNotFound = "user not found"

	// MsgSharedLinkNotFound is returned when a retrieval names a link that
	// does not exist, is expired, or is addressed to somebody else. The
	// three cases are deliberately indistinguishable.
	MsgSharedLinkNotFound = "shared link not found or expired"

	// MsgFileNotFound is returned when a link points at a file record that
	// is gone.
	MsgFileNotFound = "file not found"

	// MsgWrongLinkPassword is returned when the recipient presents a link
	// password that does not match the stored hash.
	MsgWrongLinkPassword = "wrong link password"

	// MsgRegistrationFailed is returned when the registration handler
	// encounters an unexpected error that prevents account creation.
	MsgRegistrationFailed = "registration failed"

	// MsgLoginFailed is returned when the login handler encounters an
	// unexpected error that prevents issuing a session token.
	MsgLoginFailed = "login failed"
)
