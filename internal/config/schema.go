package config

// AppConfig is the top-level YAML structure: engine tuning plus a set of
// named scoring profiles jobs can select by name.
type AppConfig struct {
	Version  string                    `yaml:"version"`
	Engine   EngineConf                `yaml:"engine"`
	Profiles map[string]ScoringProfile `yaml:"profiles"`
}

// EngineConf holds tunable concurrency settings for the job engine.
type EngineConf struct {
	JobWorkers   int  `yaml:"job_workers"`
	QueueDepth   int  `yaml:"queue_depth"`
	JobTimeoutMs int  `yaml:"job_timeout_ms"`
	FailOpen     bool `yaml:"fail_open"`
}

// ScoringProfile is a named set of POA scoring parameters a job can select
// by name instead of specifying raw numbers. Mode must be one of GLOBAL,
// SEMIGLOBAL, LOCAL.
type ScoringProfile struct {
	Mode        string  `yaml:"mode"`
	Match       float64 `yaml:"match"`
	Mismatch    float64 `yaml:"mismatch"`
	Insert      float64 `yaml:"insert"`
	Delete      float64 `yaml:"delete"`
	MinCoverage int     `yaml:"min_coverage"`
}
