// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv populates cfg from the process environment using caarlos0/env.
// Struct fields are mapped via their `env` and `envPrefix` tags.
func parseEnv(cfg any) error {
	return parseEnvFrom(cfg, nil)
}

// parseEnvFrom is parseEnv over an explicit variable set. A nil map reads
// the process environment.
func parseEnvFrom(cfg any, environment map[string]string) error {
	if err := env.ParseWithOptions(cfg, env.Options{Environment: environment}); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
