package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"

	"tunescout/internal/shared"
)

const (
	DefaultBaseURL     = "https://www.theaudiodb.com/api/v1/json/2"
	DefaultTimeout     = 15 // seconds
	DefaultParallelism = 5
	DefaultDatabase    = "tunescout.db"
	DefaultListenAddr  = ":6797"
	ConfigFile         = "config.json"
)

// Environment overrides
const (
	EnvBaseURL    = "AUDIO_DB_BASE_URL"
	EnvDatabase   = "TUNESCOUT_DB"
	EnvListenAddr = "TUNESCOUT_LISTEN"
)

// Credentials is the single login pair accepted by the session gate
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Configuration structure
type Config struct {
	BaseURL         string      `json:"BaseURL"`
	UserAgent       string      `json:"UserAgent"`
	TimeoutSeconds  int         `json:"TimeoutSeconds"`
	RateLimitMillis int         `json:"RateLimitMillis"` // 0 disables client-side throttling
	BurstLimit      int         `json:"BurstLimit"`
	Parallelism     int         `json:"Parallelism"` // Concurrent album/artist lookups
	DatabasePath    string      `json:"DatabasePath"`
	ListenAddr      string      `json:"ListenAddr"`
	Credentials     Credentials `json:"Credentials"`
	Debug           bool        `json:"Debug"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	return &Config{
		BaseURL:        DefaultBaseURL,
		UserAgent:      shared.UserAgent,
		TimeoutSeconds: DefaultTimeout,
		BurstLimit:     1,
		Parallelism:    DefaultParallelism,
		DatabasePath:   DefaultDatabase,
		ListenAddr:     DefaultListenAddr,
		Credentials: Credentials{
			Email:    "listener@tunescout.local",
			Password: "tunescout",
		},
	}
}

// ApplyDefaults fills empty fields with default values
func (cfg *Config) ApplyDefaults() {
	defaults := DefaultConfig()

	if cfg.BaseURL == "" {
		cfg.BaseURL = defaults.BaseURL
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaults.UserAgent
	}
	if cfg.TimeoutSeconds <= 0 {
		cfg.TimeoutSeconds = defaults.TimeoutSeconds
	}
	if cfg.BurstLimit <= 0 {
		cfg.BurstLimit = defaults.BurstLimit
	}
	if cfg.Parallelism <= 0 {
		cfg.Parallelism = defaults.Parallelism
	}
	if cfg.DatabasePath == "" {
		cfg.DatabasePath = defaults.DatabasePath
	}
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = defaults.ListenAddr
	}
	if cfg.Credentials.Email == "" && cfg.Credentials.Password == "" {
		cfg.Credentials = defaults.Credentials
	}
}

// ApplyEnv loads an optional .env file and applies environment overrides
func (cfg *Config) ApplyEnv(envFiles ...string) error {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if !shared.FileExists(f) {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return fmt.Errorf("failed to load env file %s: %w", f, err)
		}
	}

	if v := os.Getenv(EnvBaseURL); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv(EnvDatabase); v != "" {
		cfg.DatabasePath = v
	}
	if v := os.Getenv(EnvListenAddr); v != "" {
		cfg.ListenAddr = v
	}
	if shared.IsDebugMode() {
		cfg.Debug = true
	}
	return nil
}

// Timeout returns the HTTP timeout as a duration
func (cfg *Config) Timeout() time.Duration {
	return time.Duration(cfg.TimeoutSeconds) * time.Second
}

// RateLimit returns the minimum spacing between provider requests, 0 if unlimited
func (cfg *Config) RateLimit() time.Duration {
	return time.Duration(cfg.RateLimitMillis) * time.Millisecond
}

// Validate checks the settings that have no usable default
func (cfg *Config) Validate() error {
	if cfg.BaseURL == "" {
		return fmt.Errorf("base URL is required")
	}
	if cfg.Parallelism < 0 {
		return fmt.Errorf("parallelism must be positive, got %d", cfg.Parallelism)
	}
	return nil
}

// LoadConfig loads configuration from a JSON file
func LoadConfig(filePath string, config *Config) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := json.Unmarshal(data, config); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return nil
}

// SaveConfig saves configuration to a JSON file
func SaveConfig(filePath string, config *Config) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := shared.CreateDirIfNotExists(filepath.Dir(filePath)); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Load reads the config file if present, then applies defaults and environment overrides
func Load(filePath string) (*Config, error) {
	cfg := &Config{}
	if shared.FileExists(filePath) {
		if err := LoadConfig(filePath, cfg); err != nil {
			return nil, err
		}
	}
	cfg.ApplyDefaults()
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	return cfg, cfg.Validate()
}
