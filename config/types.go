package config

// Config represents the complete configuration structure
type Config struct {
	TalentWire TalentWireConfig `mapstructure:"talentwire"`
	Geocoding  GeocodingConfig  `mapstructure:"geocoding"`
	Matching   MatchingConfig   `mapstructure:"matching"`
	Parsing    ParsingConfig    `mapstructure:"parsing"`
	Logging    LoggingConfig    `mapstructure:"logging"`
}

// TalentWireConfig holds the API credentials and environment selection
type TalentWireConfig struct {
	AccountID  string `mapstructure:"account_id"`
	ServiceKey string `mapstructure:"service_key"`
	// DataCenter is one of "us", "eu", "au" or "self-hosted".
	DataCenter string `mapstructure:"data_center"`
	// RootURL is the endpoint root for self-hosted deployments.
	RootURL string `mapstructure:"root_url"`
	Debug   bool   `mapstructure:"debug"`
}

// GeocodingConfig selects the geocoding provider used by parse and geocode
// commands
type GeocodingConfig struct {
	Provider    string `mapstructure:"provider"`
	ProviderKey string `mapstructure:"provider_key"`
}

// MatchingConfig contains defaults for match and search commands
type MatchingConfig struct {
	// Indexes are the index IDs searched when none are given on the
	// command line.
	Indexes []string `mapstructure:"indexes"`
	Take    int      `mapstructure:"take"`
	// DefaultFilter is a client-side filter expression applied to every
	// match run unless overridden.
	DefaultFilter string `mapstructure:"default_filter"`
	// Presets are named filter expressions selectable with --preset.
	Presets map[string]string `mapstructure:"presets"`
}

// ParsingConfig contains settings for batch parsing
type ParsingConfig struct {
	// Concurrency caps how many documents are parsed at once.
	Concurrency int `mapstructure:"concurrency"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
