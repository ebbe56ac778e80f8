package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")
	ErrWrongLinkPassword   = errors.New("wrong link password")
	ErrRecipientNotFound   = errors.New("recipient user not found")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// Client-side sentinels returned by the client service layer.
var (
	ErrRegisterOnServer = errors.New("registration failed on server")
	ErrLoginOnServer    = errors.New("login failed on server")

	// ErrNoSessionKey is returned when a file operation needs the session's
	// RSA private key but nobody has logged in yet.
	ErrNoSessionKey = errors.New("no private key in session")
)
