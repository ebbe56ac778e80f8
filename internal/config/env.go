// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The CipherShare Authors

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from environment variables via the `env` and
// `envPrefix` tags declared on [StructuredConfig], [ClientConfig] and their
// nested sections.
func parseEnv(cfg any) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
