// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The CipherShare Authors

package service

import (
	"errors"
	"strings"

	"github.com/ciphershare/go-cipher-share/internal/adapter"
	"github.com/ciphershare/go-cipher-share/internal/app"
	"github.com/ciphershare/go-cipher-share/internal/store"
)

// mapAdapterError translates the adapter's transport error into a service business error
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractBody(err)

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		if msg == app.MsgInvalidDataProvided {
			return ErrInvalidDataProvided
		}

	case errors.Is(err, adapter.ErrUnauthorized):
		switch msg {
		case app.MsgInvalidEmailPassword:
			return ErrWrongPassword
		case app.MsgWrongLinkPassword:
			return ErrWrongLinkPassword
		case app.MsgTokenIsExpiredOrInvalid:
			return ErrTokenIsExpiredOrInvalid
		}

	case errors.Is(err, adapter.ErrNotFound):
		switch msg {
		case app.MsgUserNotFound:
			return store.ErrNoUserWasFound
		case app.MsgSharedLinkNotFound:
			return store.ErrSharedLinkNotFound
		case app.MsgFileNotFound:
			return store.ErrFileNotFound
		}

	case errors.Is(err, adapter.ErrConflict):
		if msg == app.MsgEmailAlreadyExists {
			return store.ErrEmailAlreadyExists
		}

	case errors.Is(err, adapter.ErrInternalServerError):
		switch msg {
		case app.MsgRegistrationFailed:
			return ErrRegisterOnServer
		case app.MsgLoginFailed:
			return ErrLoginOnServer
		}
	}

	return err
}

// extractBody extracts the body from a message of the form "bad request: <body>"
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}
