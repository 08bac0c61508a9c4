package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// RedisConfig is the connection configuration for the pickup-quota counter
type RedisConfig struct {
	Addr     string `yaml:"addr" validate:"required"`
	Password string `yaml:"password,omitempty"`
	DB       int    `yaml:"db,omitempty" validate:"min=0"`
}

// Config represents the application configuration
type Config struct {
	// DatabaseURL is the PostgreSQL connection string. When empty, the
	// CLI falls back to an in-memory store (useful for dry runs).
	DatabaseURL string `yaml:"databaseURL,omitempty"`

	Redis *RedisConfig `yaml:"redis,omitempty"`

	// QuotaTTLHours bounds how long a day's pickup count lives in Redis
	QuotaTTLHours int `yaml:"quotaTTLHours,omitempty" validate:"omitempty,min=1"`

	// UpcomingHorizonDays is how far forward the upcoming-windows
	// projection looks by default
	UpcomingHorizonDays int `yaml:"upcomingHorizonDays,omitempty" validate:"omitempty,min=1,max=366"`
}

const (
	configFileName = "pickup_config.yaml"

	// DefaultUpcomingHorizonDays is used when the config leaves the
	// projection horizon unset
	DefaultUpcomingHorizonDays = 28

	// DefaultQuotaTTLHours is used when the config leaves the quota TTL
	// unset
	DefaultQuotaTTLHours = 48
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// LoadWithEnv loads the configuration, preferring an environment-specific
// file (pickup_config_<env>.yaml) over the shared one. Files are searched
// for in the current directory first, then the user's home directory.
func LoadWithEnv(env string) (*Config, error) {
	candidates := []string{configFileName}
	if env != "" {
		candidates = []string{fmt.Sprintf("pickup_config_%s.yaml", env), configFileName}
	}

	path, err := findConfigFile(candidates)
	if err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}

	return LoadFromPath(path)
}

// LoadFromPath loads and validates the configuration from a specific path
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

// Validate validates the configuration struct
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

func applyDefaults(cfg *Config) {
	if cfg.UpcomingHorizonDays == 0 {
		cfg.UpcomingHorizonDays = DefaultUpcomingHorizonDays
	}
	if cfg.QuotaTTLHours == 0 {
		cfg.QuotaTTLHours = DefaultQuotaTTLHours
	}
}

// findConfigFile returns the first candidate found in the current
// directory, then the home directory
func findConfigFile(candidates []string) (string, error) {
	for _, name := range candidates {
		if _, err := os.Stat(name); err == nil {
			return name, nil
		}
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	for _, name := range candidates {
		path := filepath.Join(homeDir, name)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	return "", fmt.Errorf("config file not found in current directory or home directory")
}
