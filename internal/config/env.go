// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the APP_*, STORAGE_*, LOG_* and CONFIG variables.
// Unset variables leave the zero value so that lower-priority sources can
// fill them during the merge.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error reading vault settings from environment: %w", err)
	}

	return nil
}
