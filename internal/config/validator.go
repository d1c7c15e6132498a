package config

import (
	"fmt"
	"strings"
)

// Validate checks the config for required fields and well-formed scoring
// profiles.
func Validate(cfg *AppConfig) error {
	if cfg.Version == "" {
		return fmt.Errorf("config: version is required")
	}
	var errs []string

	for name, p := range cfg.Profiles {
		if name == "" {
			errs = append(errs, "profiles: empty profile name")
			continue
		}
		switch p.Mode {
		case "GLOBAL", "SEMIGLOBAL", "LOCAL":
		default:
			errs = append(errs, fmt.Sprintf("profile %s: mode must be one of GLOBAL, SEMIGLOBAL, LOCAL, got %q", name, p.Mode))
		}
		if p.MinCoverage < 0 {
			errs = append(errs, fmt.Sprintf("profile %s: min_coverage must not be negative", name))
		}
	}

	if cfg.Engine.JobWorkers <= 0 {
		errs = append(errs, "engine.job_workers must be positive")
	}
	if cfg.Engine.QueueDepth <= 0 {
		errs = append(errs, "engine.queue_depth must be positive")
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation errors:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}
