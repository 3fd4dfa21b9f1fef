package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server struct {
		Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
		Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
	} `yaml:"server" json:"server" jsonschema:"description=Server configuration"`

	Database struct {
		DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:feedback.db?cache=shared&mode=rwc,description=Database connection string"`
		MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
		MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
		ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
	} `yaml:"database" json:"database" jsonschema:"description=Database configuration"`

	Feedback FeedbackConfig `yaml:"feedback" json:"feedback" jsonschema:"description=Feedback intake and listing settings"`

	LLM LLMConfig `yaml:"llm" json:"llm" jsonschema:"description=Optional LLM configuration for feedback digests"`
}

// FeedbackConfig holds feedback intake and listing settings
type FeedbackConfig struct {
	MaxMessageLength  int  `yaml:"max_message_length" json:"max_message_length" jsonschema:"default=5000,description=Maximum accepted message length in characters"`
	DefaultLimit      int  `yaml:"default_limit" json:"default_limit" jsonschema:"default=50,description=Page size when a list request has no limit"`
	MaxLimit          int  `yaml:"max_limit" json:"max_limit" jsonschema:"default=500,description=Largest page size a list request may ask for"`
	ReclassifyOnStart bool `yaml:"reclassify_on_start" json:"reclassify_on_start" jsonschema:"default=false,description=Recompute sentiment for all stored feedback at startup"`
	Workers           int  `yaml:"workers" json:"workers" jsonschema:"default=4,minimum=1,description=Concurrent workers used by reclassification"`
}

// LLMConfig holds LLM configuration for feedback digests. Digests are disabled
// when the endpoint is empty.
type LLMConfig struct {
	Endpoint     string        `yaml:"endpoint" json:"endpoint" jsonschema:"description=OpenAI-compatible API endpoint"`
	APIKey       string        `yaml:"api_key" json:"api_key" jsonschema:"description=API key (can use environment variable)"`
	Model        string        `yaml:"model" json:"model" jsonschema:"description=Model name (e.g. gpt-4o-mini or llama3)"`
	Temperature  float64       `yaml:"temperature" json:"temperature" jsonschema:"default=0.3,description=Temperature for response generation"`
	MaxTokens    int           `yaml:"max_tokens" json:"max_tokens" jsonschema:"default=500,description=Maximum tokens in response"`
	Timeout      time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Request timeout"`
	SystemPrompt string        `yaml:"system_prompt" json:"system_prompt" jsonschema:"description=System prompt for the LLM (optional)"`
	MaxFeedback  int           `yaml:"max_feedback" json:"max_feedback" jsonschema:"default=50,description=Number of recent feedback records included in a digest"`
}

// Enabled reports whether LLM digests are configured
func (c LLMConfig) Enabled() bool {
	return c.Endpoint != ""
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.setDefaults()

	// validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// verify against embedded schema
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		// log warning but don't fail - schema validation is supplementary
		fmt.Printf("warning: schema validation failed: %v\n", err)
	}

	return &cfg, nil
}

// Default returns configuration with all defaults applied, used when no config file is given
func Default() *Config {
	cfg := &Config{}
	cfg.setDefaults()
	return cfg
}

func (c *Config) setDefaults() {
	// server
	if c.Server.Listen == "" {
		c.Server.Listen = ":8080"
	}
	if c.Server.Timeout == 0 {
		c.Server.Timeout = 30 * time.Second
	}

	// database
	if c.Database.DSN == "" {
		c.Database.DSN = "file:feedback.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 10
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 3600
	}

	// feedback
	if c.Feedback.MaxMessageLength == 0 {
		c.Feedback.MaxMessageLength = 5000
	}
	if c.Feedback.DefaultLimit == 0 {
		c.Feedback.DefaultLimit = 50
	}
	if c.Feedback.MaxLimit == 0 {
		c.Feedback.MaxLimit = 500
	}
	if c.Feedback.Workers == 0 {
		c.Feedback.Workers = 4
	}

	// llm
	if c.LLM.Temperature == 0 {
		c.LLM.Temperature = 0.3
	}
	if c.LLM.MaxTokens == 0 {
		c.LLM.MaxTokens = 500
	}
	if c.LLM.Timeout == 0 {
		c.LLM.Timeout = 30 * time.Second
	}
	if c.LLM.MaxFeedback == 0 {
		c.LLM.MaxFeedback = 50
	}
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}

	if cfg.Feedback.MaxMessageLength < 0 {
		return fmt.Errorf("feedback.max_message_length must be non-negative")
	}
	if cfg.Feedback.DefaultLimit < 1 || cfg.Feedback.MaxLimit < 1 {
		return fmt.Errorf("feedback limits must be positive")
	}
	if cfg.Feedback.DefaultLimit > cfg.Feedback.MaxLimit {
		return fmt.Errorf("feedback.default_limit must not exceed feedback.max_limit")
	}
	if cfg.Feedback.Workers < 1 {
		return fmt.Errorf("feedback.workers must be at least 1")
	}

	// llm is optional, validate only when enabled
	if cfg.LLM.Enabled() {
		if cfg.LLM.Model == "" {
			return fmt.Errorf("llm.model is required when llm.endpoint is set")
		}
		if cfg.LLM.Temperature < 0 || cfg.LLM.Temperature > 2 {
			return fmt.Errorf("llm.temperature must be between 0 and 2")
		}
	}

	return nil
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// GetLLMConfig returns LLM configuration
func (c *Config) GetLLMConfig() LLMConfig {
	return c.LLM
}

// GetFeedbackConfig returns feedback intake configuration
func (c *Config) GetFeedbackConfig() FeedbackConfig {
	return c.Feedback
}
