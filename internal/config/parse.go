package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// ParseYAML parses a Config from YAML bytes and validates it.
// Unset fields keep the defaults from DefaultConfig.
func ParseYAML(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config yaml: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[cfg.LogLevel] {
		return fmt.Errorf("invalid log_level: %s (must be debug, info, warn, or error)", cfg.LogLevel)
	}

	if cfg.Search.Lower >= cfg.Search.Upper {
		return fmt.Errorf("search bracket [%g, %g]: lower must be strictly below upper", cfg.Search.Lower, cfg.Search.Upper)
	}
	if cfg.Search.XTol <= 0 {
		return fmt.Errorf("search xtol %g: must be strictly positive", cfg.Search.XTol)
	}

	if !cfg.Problem.Randomize && cfg.Problem.Scale == 0 {
		return fmt.Errorf("problem scale is zero: the objective degenerates, set scale or enable randomize")
	}

	return nil
}
