package config

import (
	"fmt"
	"strings"
)

func validate(cfg *Config) error {
	if strings.TrimSpace(cfg.Model.Model) == "" {
		return fmt.Errorf("model.model cannot be empty")
	}
	if cfg.Model.TimeoutSeconds <= 0 {
		return fmt.Errorf("model.timeout_seconds must be positive")
	}
	if cfg.Model.Temperature < 0 || cfg.Model.Temperature > 2 {
		return fmt.Errorf("model.temperature must be within [0, 2]")
	}
	if cfg.Log.Enabled && strings.TrimSpace(cfg.Log.Path) == "" {
		return fmt.Errorf("log.path cannot be empty when log.enabled")
	}
	return nil
}
