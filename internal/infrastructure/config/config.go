package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	App      AppConfig      `yaml:"app"`
	Server   ServerConfig   `yaml:"server"`
	Engine   EngineConfig   `yaml:"engine"`
	Security SecurityConfig `yaml:"security"`
	Telegram TelegramConfig `yaml:"telegram"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// AppConfig contains application identity settings.
type AppConfig struct {
	Name      string `yaml:"name"`
	APIPrefix string `yaml:"api_prefix"`
	Debug     bool   `yaml:"debug"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Host         string        `yaml:"host"`
	Port         int           `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"`
}

// EngineConfig contains the engine's model settings and feature flags.
// The flags are read once at engine construction and are read-only for
// the lifetime of the process.
type EngineConfig struct {
	Model       string  `yaml:"model"`
	Temperature float64 `yaml:"temperature"`
	MaxTokens   int     `yaml:"max_tokens"`

	UnrestrictedMode    bool `yaml:"unrestricted_mode"`
	EnableCodeExecution bool `yaml:"enable_code_execution"`
	EnableNSFWContent   bool `yaml:"enable_nsfw_content"`

	// ExecutionDelay is the artificial wait simulating code execution.
	ExecutionDelay time.Duration `yaml:"execution_delay"`
}

// SecurityConfig contains security settings. The secret key is loaded
// but never checked against requests; authentication enforcement is out
// of scope.
type SecurityConfig struct {
	SecretKey         string   `yaml:"secret_key"`
	CORSOrigins       []string `yaml:"cors_origins"`
	RateLimitRequests int      `yaml:"rate_limit_requests"` // per minute, per client IP
}

// TelegramConfig contains Telegram bot settings. The webhook endpoint
// only acknowledges receipt, so the token is informational.
type TelegramConfig struct {
	BotToken string `yaml:"bot_token"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Output string `yaml:"output"`
}

// Load reads and parses the configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Expand environment variables
	expanded := expandEnvVars(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.setDefaults()

	return &cfg, nil
}

// Default returns a configuration with every default applied, for use
// when no config file is given.
func Default() *Config {
	cfg := &Config{}
	cfg.setDefaults()
	return cfg
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Engine.Model == "" {
		return fmt.Errorf("engine model must be specified")
	}

	if c.Engine.Temperature < 0 || c.Engine.Temperature > 2 {
		return fmt.Errorf("invalid engine temperature: %v", c.Engine.Temperature)
	}

	if c.Security.RateLimitRequests < 0 {
		return fmt.Errorf("invalid rate limit: %d", c.Security.RateLimitRequests)
	}

	return nil
}

// setDefaults sets default values for optional fields.
func (c *Config) setDefaults() {
	// App defaults
	if c.App.Name == "" {
		c.App.Name = "Advanced AI Backend"
	}
	if c.App.APIPrefix == "" {
		c.App.APIPrefix = "/api/v1"
	}

	// Server defaults
	if c.Server.Host == "" {
		c.Server.Host = "0.0.0.0"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 8000
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 30 * time.Second
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 30 * time.Second
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60 * time.Second
	}

	// Engine defaults
	if c.Engine.Model == "" {
		c.Engine.Model = "gpt-3.5-turbo"
	}
	if c.Engine.Temperature == 0 {
		c.Engine.Temperature = 0.7
	}
	if c.Engine.MaxTokens == 0 {
		c.Engine.MaxTokens = 2000
	}
	if c.Engine.ExecutionDelay == 0 {
		c.Engine.ExecutionDelay = time.Second
	}

	// Security defaults
	if c.Security.SecretKey == "" {
		c.Security.SecretKey = "supersecretkey"
	}
	if len(c.Security.CORSOrigins) == 0 {
		c.Security.CORSOrigins = []string{"*"}
	}
	if c.Security.RateLimitRequests == 0 {
		c.Security.RateLimitRequests = 60
	}

	// Logging defaults
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "json"
	}
	if c.Logging.Output == "" {
		c.Logging.Output = "stdout"
	}
}

// expandEnvVars replaces ${VAR} and $VAR with environment variable values.
func expandEnvVars(s string) string {
	return os.Expand(s, func(key string) string {
		return os.Getenv(key)
	})
}
