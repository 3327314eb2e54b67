package config

// Config describes a full minimization run loaded from a YAML file.
type Config struct {
	LogLevel string        `yaml:"log_level"`
	Problem  ProblemConfig `yaml:"problem"`
	Search   SearchConfig  `yaml:"search"`
}

// ProblemConfig configures the unimodal objective.
// When Randomize is true, Offset and Scale are ignored and drawn from the
// production ranges ([-50, 50] and [-10, 10]) using Seed.
type ProblemConfig struct {
	Offset    float64 `yaml:"offset"`
	Scale     float64 `yaml:"scale"`
	Randomize bool    `yaml:"randomize"`
	Seed      int64   `yaml:"seed"`
}

// SearchConfig configures the golden-section search.
type SearchConfig struct {
	Lower float64 `yaml:"lower"`
	Upper float64 `yaml:"upper"`
	XTol  float64 `yaml:"xtol"`

	// TracePath, if set, is where the JSONL convergence trace is written.
	TracePath string `yaml:"trace_path"`
}

// DefaultConfig returns the defaults the original tool shipped with: a
// randomized problem searched over [-200, 200] with tolerance 2.
func DefaultConfig() *Config {
	return &Config{
		LogLevel: "info",
		Problem: ProblemConfig{
			Randomize: true,
			Seed:      42,
		},
		Search: SearchConfig{
			Lower: -200,
			Upper: 200,
			XTol:  2,
		},
	}
}
