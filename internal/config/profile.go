package config

import (
	"fmt"

	"github.com/lucidseq/poaconsensus/internal/poa"
)

// ModeFromString maps a YAML mode string to a poa.Mode. Validate already
// guarantees this only sees GLOBAL, SEMIGLOBAL, or LOCAL.
func ModeFromString(s string) (poa.Mode, error) {
	switch s {
	case "GLOBAL":
		return poa.GlobalMode, nil
	case "SEMIGLOBAL":
		return poa.SemiglobalMode, nil
	case "LOCAL":
		return poa.LocalMode, nil
	default:
		return 0, fmt.Errorf("config: unknown mode %q", s)
	}
}

// Resolve turns a named ScoringProfile into a poa.ScoringConfig, falling
// back to "default" if name is empty.
func (cfg *AppConfig) Resolve(name string) (poa.ScoringConfig, error) {
	if name == "" {
		name = "default"
	}
	p, ok := cfg.Profiles[name]
	if !ok {
		return poa.ScoringConfig{}, fmt.Errorf("config: no such scoring profile %q", name)
	}
	mode, err := ModeFromString(p.Mode)
	if err != nil {
		return poa.ScoringConfig{}, err
	}
	return poa.ScoringConfig{
		Match:    p.Match,
		Mismatch: p.Mismatch,
		Insert:   p.Insert,
		Delete:   p.Delete,
		Mode:     mode,
	}, nil
}
