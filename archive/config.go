package archive

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

const envVarPrefix = "FSUTILS"

// Config holds the archiver settings, loaded from FSUTILS_* environment
// variables. Command-line flags may override individual fields afterwards.
type Config struct {
	VaultLocation  string `envconfig:"VAULT_LOCATION"`
	BackupLocation string `envconfig:"BACKUP_LOCATION"`
	IgnorePatterns string `envconfig:"IGNORE_PATTERNS"`
}

// LoadConfig reads the archiver configuration from the environment.
func LoadConfig() (*Config, error) {
	var c Config
	if err := envconfig.Process(envVarPrefix, &c); err != nil {
		return nil, fmt.Errorf("reading environment config: %w", err)
	}
	return &c, nil
}

// Validate checks that the required locations are set.
func (c *Config) Validate() error {
	if c.VaultLocation == "" || c.BackupLocation == "" {
		return fmt.Errorf("%s_VAULT_LOCATION and %s_BACKUP_LOCATION must be set (or passed as flags)",
			envVarPrefix, envVarPrefix)
	}
	return nil
}

// Patterns splits the comma-separated ignore pattern list, dropping empty
// entries so an unset variable yields no patterns.
func (c *Config) Patterns() []string {
	var patterns []string
	for _, p := range strings.Split(c.IgnorePatterns, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			patterns = append(patterns, p)
		}
	}
	return patterns
}
