package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Load loads the configuration from file
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set default values
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// Look for config in standard locations
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		// Check current directory first
		v.AddConfigPath(".")

		// Check home directory
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".talentctl"))
		}

		// Check /etc
		v.AddConfigPath("/etc/talentctl/")
	}

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil, fmt.Errorf("config file not found: %w", err)
		}
		return nil, fmt.Errorf("error reading config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// API defaults
	v.SetDefault("talentwire.data_center", "us")
	v.SetDefault("talentwire.debug", false)

	// Geocoding defaults
	v.SetDefault("geocoding.provider", "None")

	// Matching defaults
	v.SetDefault("matching.take", 10)

	// Parsing defaults
	v.SetDefault("parsing.concurrency", 4)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)
}

// validate checks if the configuration is valid
func validate(cfg *Config) error {
	if cfg.TalentWire.AccountID == "" || cfg.TalentWire.AccountID == "your-account-id-here" {
		return fmt.Errorf("talentwire.account_id must be set to a valid account ID")
	}

	if cfg.TalentWire.ServiceKey == "" || cfg.TalentWire.ServiceKey == "your-service-key-here" {
		return fmt.Errorf("talentwire.service_key must be set to a valid service key")
	}

	switch cfg.TalentWire.DataCenter {
	case "us", "eu", "au":
	case "self-hosted":
		if cfg.TalentWire.RootURL == "" {
			return fmt.Errorf("talentwire.root_url is required when data_center is self-hosted")
		}
	default:
		return fmt.Errorf("invalid data center: %s", cfg.TalentWire.DataCenter)
	}

	if cfg.Matching.Take < 0 {
		return fmt.Errorf("matching.take must not be negative")
	}

	if cfg.Parsing.Concurrency < 1 {
		return fmt.Errorf("parsing.concurrency must be at least 1")
	}

	// Validate logging level
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s", cfg.Logging.Level)
	}

	// Validate logging format
	validFormats := map[string]bool{
		"console": true,
		"json":    true,
	}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("invalid logging format: %s", cfg.Logging.Format)
	}

	return nil
}
