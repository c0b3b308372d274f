package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix namespaces every environment variable the client reads.
const EnvPrefix = "CHALLENGE_"

// parseEnv overlays cfg with CHALLENGE_* variables. Unset variables leave
// the current values untouched.
func parseEnv(cfg *Config) error {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
