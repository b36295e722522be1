package config

import "time"

// Config represents the main application configuration.
type Config struct {
	API     APIConfig     `yaml:"api"`
	Model   ModelConfig   `yaml:"model"`
	Search  SearchConfig  `yaml:"search"`
	Move    MoveConfig    `yaml:"move"`
	Logging LoggingConfig `yaml:"logging"`

	// Runtime version information
	Version string `yaml:"-"`
}

// APIConfig holds API-related settings.
type APIConfig struct {
	// API key for the remote reasoning service (Gemini).
	GeminiKey string `yaml:"gemini_key,omitempty"`

	// Ollama server URL (default: http://localhost:11434)
	OllamaBaseURL string `yaml:"ollama_base_url,omitempty"`

	// Optional, for remote Ollama servers with auth.
	OllamaKey string `yaml:"ollama_key,omitempty"`

	// Backend: gemini or ollama (default: gemini)
	Backend string `yaml:"backend"`

	// Timeout bounds the single remote resolution call per run.
	Timeout time.Duration `yaml:"timeout"`
}

// ModelConfig holds model-related settings.
type ModelConfig struct {
	Name            string  `yaml:"name"`
	Temperature     float32 `yaml:"temperature"`
	MaxOutputTokens int32   `yaml:"max_output_tokens"`
}

// SearchConfig holds file search settings.
type SearchConfig struct {
	// CaseSensitive controls keyword containment matching.
	CaseSensitive bool `yaml:"case_sensitive"`

	// MaxResults caps the number of files a single search returns.
	MaxResults int `yaml:"max_results"`
}

// CollisionPolicy decides what happens when a move target already exists.
type CollisionPolicy string

const (
	// CollisionOverwrite applies platform rename semantics as-is.
	CollisionOverwrite CollisionPolicy = "overwrite"
	// CollisionSkip records a per-item denial instead of replacing.
	CollisionSkip CollisionPolicy = "skip"
)

// MoveConfig holds file move settings.
type MoveConfig struct {
	OnCollision CollisionPolicy `yaml:"on_collision"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  bool   `yaml:"file"`  // write nexusfile.log in the config dir
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		API: APIConfig{
			Backend: "gemini",
			Timeout: 30 * time.Second,
		},
		Model: ModelConfig{
			Name:            "gemini-2.0-flash",
			Temperature:     0.2,
			MaxOutputTokens: 2048,
		},
		Search: SearchConfig{
			CaseSensitive: false,
			MaxResults:    1000,
		},
		Move: MoveConfig{
			OnCollision: CollisionOverwrite,
		},
		Logging: LoggingConfig{
			Level: "warn",
		},
	}
}
