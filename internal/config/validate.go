package config

import (
	"fmt"
	"net"
	"slices"
	"strings"
)

// Validate performs validation on the configuration.
func Validate(cfg *Config) error {
	if err := validateService(cfg); err != nil {
		return fmt.Errorf("service validation failed: %w", err)
	}

	if err := validateLogging(cfg); err != nil {
		return fmt.Errorf("logging validation failed: %w", err)
	}

	return nil
}

func validateService(cfg *Config) error {
	if _, _, err := net.SplitHostPort(cfg.Service.ListenAddress); err != nil {
		return fmt.Errorf("listen_address must be host:port: %w", err)
	}

	validProfiles := []string{"default", "independent"}
	if !slices.Contains(validProfiles, cfg.Service.GroupProfile) {
		return fmt.Errorf("group_profile must be one of: %s", strings.Join(validProfiles, ", "))
	}

	if _, err := cfg.GetChallengeTTL(); err != nil {
		return err
	}

	return nil
}

func validateLogging(cfg *Config) error {
	validLevels := []string{"debug", "info", "warn", "error"}
	if !slices.Contains(validLevels, cfg.Logging.Level) {
		return fmt.Errorf("logging.level must be one of: %s", strings.Join(validLevels, ", "))
	}

	validFormats := []string{"json", "human"}
	if !slices.Contains(validFormats, cfg.Logging.Format) {
		return fmt.Errorf("logging.format must be one of: %s", strings.Join(validFormats, ", "))
	}

	return nil
}
