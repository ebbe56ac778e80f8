// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The CipherShare Authors

// Package validators decouples request validation from the transport and
// storage layers. Implementations of [Validator] are injected into services
// and called with the value to check, optionally scoped to named fields.
package validators

import "context"

// Validator validates arbitrary input values. Implementations may perform
// structural validation, semantic checks and cross-field rules.
type Validator interface {
	// Validate validates the provided input and optionally restricts
	// validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
