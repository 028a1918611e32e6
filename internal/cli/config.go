package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config carries everything the terminal front end needs to talk to the
// backend. Values resolve in order: environment variables win over a
// local .env file, which wins over the config file, which wins over the
// built-in defaults.
type Config struct {
	BaseURL    string `yaml:"base_url"`    // Backend API root (default: http://localhost:8080/api)
	Profile    string `yaml:"profile"`     // Named session profile (default: default)
	SessionDir string `yaml:"session_dir"` // Where the file session backend keeps state
	RedisAddr  string `yaml:"redis_addr"`  // Optional: Redis session backend instead of the file one
	LogLevel   string `yaml:"log_level"`   // Log level (debug, info, warn, error) (default: warn)
	LogFormat  string `yaml:"log_format"`  // Log format (json, text) (default: text)
}

// ConfigDir returns the benchctl config directory, creating nothing.
func ConfigDir() string {
	if dir := os.Getenv("CONSULTANCY_CONFIG_DIR"); dir != "" {
		return dir
	}
	base, err := os.UserConfigDir()
	if err != nil {
		base = "."
	}
	return filepath.Join(base, "benchctl")
}

// LoadConfig resolves the effective configuration. A missing config file
// or .env is fine; a config file that exists but does not parse is not.
func LoadConfig() (Config, error) {
	// .env feeds the environment before the environment is read, but
	// never overrides variables already set.
	_ = godotenv.Load()

	dir := ConfigDir()

	cfg := Config{
		Profile:   "default",
		LogLevel:  "warn",
		LogFormat: "text",
	}

	path := filepath.Join(dir, "config.yaml")
	if raw, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}

	cfg.BaseURL = getEnvOrDefault("CONSULTANCY_API_BASE_URL", cfg.BaseURL)
	cfg.Profile = getEnvOrDefault("CONSULTANCY_PROFILE", cfg.Profile)
	cfg.SessionDir = getEnvOrDefault("CONSULTANCY_SESSION_DIR", cfg.SessionDir)
	cfg.RedisAddr = getEnvOrDefault("CONSULTANCY_REDIS_ADDR", cfg.RedisAddr)
	cfg.LogLevel = getEnvOrDefault("LOG_LEVEL", cfg.LogLevel)
	cfg.LogFormat = getEnvOrDefault("LOG_FORMAT", cfg.LogFormat)

	return cfg, nil
}

// EffectiveSessionDir resolves where this profile's file-backed session
// lives. Left here rather than in LoadConfig so a --profile flag applied
// after loading still lands in its own directory.
func (c Config) EffectiveSessionDir() string {
	if c.SessionDir != "" {
		return c.SessionDir
	}
	return filepath.Join(ConfigDir(), "sessions", c.Profile)
}

// InstallationID returns a stable identifier for this install, minting
// and persisting one on first use. It travels as X-Client-Id so the
// backend can tell installations apart in its request logs.
func InstallationID() string {
	path := filepath.Join(ConfigDir(), "installation_id")

	if raw, err := os.ReadFile(path); err == nil {
		if id, err := uuid.Parse(string(raw)); err == nil {
			return id.String()
		}
	}

	id := uuid.NewString()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err == nil {
		_ = os.WriteFile(path, []byte(id), 0o644)
	}
	return id
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
