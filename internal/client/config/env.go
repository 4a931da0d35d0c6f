package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

const envPrefix = "KS_"

// parseEnv overlays cfg with KS_* variables from environ. The plain LANG
// variable seeds AmbientLanguage; KS_AMBIENT_LANGUAGE overrides it.
func parseEnv(cfg *Config, environ map[string]string) error {
	if lang, ok := environ["LANG"]; ok && lang != "" {
		cfg.AmbientLanguage = lang
	}

	if err := env.ParseWithOptions(cfg, env.Options{
		Prefix:      envPrefix,
		Environment: environ,
	}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
