package config

import (
	"errors"
	"fmt"
	"io/fs"
	"regexp"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Provider modes
const (
	ProviderModeStatic = "static"
	ProviderModeLive   = "live"
)

var countryCodePattern = regexp.MustCompile(`^\+[0-9]{1,3}$`)

// Config holds all configuration for the application
type Config struct {
	Azure     AzureConfig
	App       AppConfig
	Lookup    LookupConfig
	Providers ProvidersConfig
	Redis     RedisConfig
	HTTP      HTTPConfig
}

// AppConfig holds application-specific configuration
type AppConfig struct {
	LogLevel            string `env:"LOG_LEVEL" envDefault:"info"`
	PollInterval        int    `env:"POLL_INTERVAL" envDefault:"2"`           // seconds
	TaskTimeout         int    `env:"TASK_TIMEOUT" envDefault:"120"`          // seconds
	LockRenewalInterval int    `env:"LOCK_RENEWAL_INTERVAL" envDefault:"30"`  // seconds - how often to renew message locks
	MaxLockRenewalTime  int    `env:"MAX_LOCK_RENEWAL_TIME" envDefault:"600"` // seconds - maximum time to keep renewing locks
	// Notification settings
	EnableNotifications bool `env:"ENABLE_NOTIFICATIONS" envDefault:"true"`
	// Discord webhook settings
	EnableDiscordNotifications bool   `env:"ENABLE_DISCORD_NOTIFICATIONS" envDefault:"true"`
	DiscordWebhookURL          string `env:"DISCORD_WEBHOOK_URL"`
	DiscordWebhookTimeout      int    `env:"DISCORD_WEBHOOK_TIMEOUT" envDefault:"30"` // seconds
}

// LookupConfig holds the lookup engine policy
type LookupConfig struct {
	// DefaultCountryCode is assumed for phone numbers without a leading +
	DefaultCountryCode string `env:"LOOKUP_DEFAULT_COUNTRY_CODE" envDefault:"+91"`
	ProviderMode       string `env:"LOOKUP_PROVIDER_MODE" envDefault:"static"`
	// DisposableDomainsFile replaces the built-in disposable domain list
	DisposableDomainsFile string `env:"LOOKUP_DISPOSABLE_DOMAINS_FILE"`
}

// ProvidersConfig holds settings for the live enrichment providers
type ProvidersConfig struct {
	GeoIPCityDB    string   `env:"GEOIP_CITY_DB"`
	GeoIPASNDB     string   `env:"GEOIP_ASN_DB"`
	DNSResolvers   []string `env:"DNS_RESOLVERS" envSeparator:","`
	DNSRateLimit   int      `env:"DNS_RATE_LIMIT" envDefault:"100"` // queries per second
	DNSMaxRetries  int      `env:"DNS_MAX_RETRIES" envDefault:"2"`
	ProbeRateLimit int      `env:"PROBE_RATE_LIMIT" envDefault:"10"` // probes per second
	ProbeTimeout   int      `env:"PROBE_TIMEOUT" envDefault:"10"`    // seconds
}

// RedisConfig holds the enrichment cache settings. An empty URL disables caching.
type RedisConfig struct {
	URL          string        `env:"REDIS_URL"`
	PoolSize     int           `env:"REDIS_POOL_SIZE" envDefault:"10"`
	MinIdleConns int           `env:"REDIS_MIN_IDLE_CONNS" envDefault:"2"`
	DialTimeout  time.Duration `env:"REDIS_DIAL_TIMEOUT" envDefault:"5s"`
	ReadTimeout  time.Duration `env:"REDIS_READ_TIMEOUT" envDefault:"3s"`
	WriteTimeout time.Duration `env:"REDIS_WRITE_TIMEOUT" envDefault:"3s"`
	CacheTTL     time.Duration `env:"REDIS_CACHE_TTL" envDefault:"24h"`
}

// HTTPConfig holds the lookup API server settings
type HTTPConfig struct {
	Addr              string        `env:"HTTP_ADDR" envDefault:":8080"`
	ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" envDefault:"5s"`
	RequestTimeout    time.Duration `env:"HTTP_REQUEST_TIMEOUT" envDefault:"30s"`
}

// Load reads an optional .env file and then the process environment
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env file: %w", err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("error getting env configs: %w", err)
	}
	return cfg, nil
}

// Validate checks the configuration shared by the worker and the API server
func (c *Config) Validate() error {
	if err := c.App.ValidateAppConfig(); err != nil {
		return err
	}

	if err := c.Lookup.ValidateLookupConfig(); err != nil {
		return err
	}

	if c.Lookup.ProviderMode == ProviderModeLive {
		if err := c.Providers.ValidateProvidersConfig(); err != nil {
			return err
		}
	}

	return nil
}

// ValidateWorker checks everything the queue worker needs
func (c *Config) ValidateWorker() error {
	if err := c.Azure.ValidateAzureConfig(); err != nil {
		return err
	}
	return c.Validate()
}

// ValidateAppConfig validates application-specific configuration
func (c *AppConfig) ValidateAppConfig() error {
	// Define validation rules
	validations := []struct {
		field     string
		value     int
		min, max  int
		fieldName string
	}{
		{"TASK_TIMEOUT", c.TaskTimeout, 5, 3600, "Task timeout"},
		{"POLL_INTERVAL", c.PollInterval, 1, 60, "Poll interval"},
		{"LOCK_RENEWAL_INTERVAL", c.LockRenewalInterval, 10, 300, "Lock renewal interval"},
		{"MAX_LOCK_RENEWAL_TIME", c.MaxLockRenewalTime, 60, 7200, "Max lock renewal time"},
		{"DISCORD_WEBHOOK_TIMEOUT", c.DiscordWebhookTimeout, 1, 120, "Discord webhook timeout"},
	}

	for _, v := range validations {
		if err := validateRange(v.field, v.value, v.min, v.max, v.fieldName); err != nil {
			return err
		}
	}

	if err := validateLogLevel(c.LogLevel); err != nil {
		return err
	}

	return nil
}

// ValidateLookupConfig validates the lookup policy
func (c *LookupConfig) ValidateLookupConfig() error {
	if !countryCodePattern.MatchString(c.DefaultCountryCode) {
		return &ConfigError{
			Field:   "LOOKUP_DEFAULT_COUNTRY_CODE",
			Message: fmt.Sprintf("Invalid default country code '%s', expected + followed by 1-3 digits", c.DefaultCountryCode),
		}
	}

	switch c.ProviderMode {
	case ProviderModeStatic, ProviderModeLive:
		return nil
	default:
		return &ConfigError{
			Field:   "LOOKUP_PROVIDER_MODE",
			Message: fmt.Sprintf("Invalid provider mode '%s'. Valid modes are: %s, %s", c.ProviderMode, ProviderModeStatic, ProviderModeLive),
		}
	}
}

// ValidateProvidersConfig validates the live provider settings
func (c *ProvidersConfig) ValidateProvidersConfig() error {
	if c.GeoIPCityDB == "" {
		return &ConfigError{Field: "GEOIP_CITY_DB", Message: "GeoIP city database path is required in live mode"}
	}

	if err := validateRange("PROBE_TIMEOUT", c.ProbeTimeout, 1, 60, "Probe timeout"); err != nil {
		return err
	}

	if c.DNSRateLimit < 1 {
		return &ConfigError{Field: "DNS_RATE_LIMIT", Message: "DNS rate limit must be positive"}
	}
	if c.ProbeRateLimit < 1 {
		return &ConfigError{Field: "PROBE_RATE_LIMIT", Message: "Probe rate limit must be positive"}
	}

	return nil
}

// validateRange validates that a value is within the specified range
func validateRange(field string, value, min, max int, fieldName string) error {
	if value < min || value > max {
		message := fmt.Sprintf("%s must be between %d and %d", fieldName, min, max)
		message += " seconds"

		return &ConfigError{
			Field:   field,
			Message: message,
		}
	}
	return nil
}

// validateLogLevel validates that the log level is valid
func validateLogLevel(logLevel string) error {
	validLevels := []string{"debug", "info", "warning", "warn", "error", "fatal"}
	logLevelLower := strings.ToLower(logLevel)

	for _, valid := range validLevels {
		if logLevelLower == valid {
			return nil
		}
	}

	return &ConfigError{
		Field:   "LOG_LEVEL",
		Message: fmt.Sprintf("Invalid log level '%s'. Valid levels are: %s", logLevel, strings.Join(validLevels, ", ")),
	}
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Message
}
