// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The CipherShare Authors

package config

// validate checks the invariants shared by every role. Neither the server
// nor the client can run without a DSN, and both rely on the download or
// cleanup defaults being positive. Role-specific requirements live in
// [GetServerConfig] and [ClientConfig.validate].
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	return nil
}

// validateServer checks the invariants the server cannot start without:
// a JWT signing key and a positive sweep interval.
func (cfg *StructuredConfig) validateServer() error {
	if cfg.App.TokenSignKey == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.Workers.CleanupInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.App.HashKey == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}
