// Package config provides configuration loading and validation for the
// zero-knowledge authentication verifier.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the verifier service configuration.
type Config struct {
	Service ServiceSettings `yaml:"service"`
	Logging LoggingSettings `yaml:"logging"`
}

// ServiceSettings contains verifier-level configuration.
type ServiceSettings struct {
	// ListenAddress is the default transport bind address, "127.0.0.1:50051"
	// per the protocol's default endpoint.
	ListenAddress string `yaml:"listen_address"`

	// GroupProfile selects a named GroupParams profile: "default" (the
	// reference b=a profile) or "independent" (a second, independently
	// derived generator).
	GroupProfile string `yaml:"group_profile"`

	// ChallengeTTL bounds how long a pending challenge may remain
	// unconsumed before the verifier evicts it. Empty string means no
	// expiry, matching the core's default behavior.
	ChallengeTTL string `yaml:"challenge_ttl"`

	// RateLimitEnabled turns on progressive-delay brute-force protection
	// for CreateAuthenticationChallenge and VerifyAuthentication.
	RateLimitEnabled bool `yaml:"rate_limit_enabled"`
}

// LoggingSettings contains logging configuration.
type LoggingSettings struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Load reads and parses the configuration file.
//
//nolint:gosec // G304: config path is supplied by the operator at startup.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Default returns a Config with the protocol's stated defaults: the
// default endpoint, the reference group profile, no challenge TTL, and
// rate limiting off.
func Default() *Config {
	return &Config{
		Service: ServiceSettings{
			ListenAddress: "127.0.0.1:50051",
			GroupProfile:  "default",
		},
		Logging: LoggingSettings{
			Level:  "info",
			Format: "json",
		},
	}
}

// GetChallengeTTL parses and returns the configured challenge TTL. An
// empty string is a valid configuration meaning "no expiry" and returns
// zero with no error.
func (c *Config) GetChallengeTTL() (time.Duration, error) {
	if c.Service.ChallengeTTL == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Service.ChallengeTTL)
	if err != nil {
		return 0, fmt.Errorf("invalid challenge_ttl: %w", err)
	}
	if d < 0 {
		return 0, fmt.Errorf("challenge_ttl must not be negative")
	}
	return d, nil
}
