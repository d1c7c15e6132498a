package config

import "testing"

func TestValidate_RequiresVersion(t *testing.T) {
	cfg := &AppConfig{Profiles: map[string]ScoringProfile{"default": {Mode: "GLOBAL"}}, Engine: EngineConf{JobWorkers: 1, QueueDepth: 1}}
	if err := Validate(cfg); err == nil {
		t.Fatal("Validate() with no version = nil, want error")
	}
}

func TestValidate_RejectsUnknownMode(t *testing.T) {
	cfg := &AppConfig{
		Version:  "1",
		Engine:   EngineConf{JobWorkers: 1, QueueDepth: 1},
		Profiles: map[string]ScoringProfile{"p": {Mode: "SIDEWAYS"}},
	}
	if err := Validate(cfg); err == nil {
		t.Fatal("Validate() with bad mode = nil, want error")
	}
}

func TestValidate_AcceptsWellFormedConfig(t *testing.T) {
	cfg := &AppConfig{
		Version: "1",
		Engine:  EngineConf{JobWorkers: 4, QueueDepth: 100, JobTimeoutMs: 5000},
		Profiles: map[string]ScoringProfile{
			"default": {Mode: "GLOBAL", Match: 3, Mismatch: -5, Insert: -4, Delete: -4},
			"noisy":   {Mode: "LOCAL", Match: 2, Mismatch: -3, Insert: -2, Delete: -2, MinCoverage: 2},
		},
	}
	if err := Validate(cfg); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
}
