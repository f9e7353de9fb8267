// Package config holds resolver configuration loaded from YAML files and
// environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the did-tdw resolver CLI
type Config struct {
	HTTP  HTTPConfig  `yaml:"http"`
	Proof ProofConfig `yaml:"proof"`
}

// HTTPConfig contains fetch behavior settings
type HTTPConfig struct {
	// TimeoutSeconds bounds each log or whois fetch
	TimeoutSeconds int `yaml:"timeout_seconds"`
	// AllowInsecure downgrades fetches to plain HTTP, for local development
	AllowInsecure bool `yaml:"allow_insecure"`
}

// ProofConfig contains proof verification settings
type ProofConfig struct {
	// MinProofs is the number of distinct authorized keys that must have
	// signed each log entry
	MinProofs int `yaml:"min_proofs"`
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			TimeoutSeconds: 30,
			AllowInsecure:  false,
		},
		Proof: ProofConfig{
			MinProofs: 1,
		},
	}
}

// LoadConfig loads configuration from a YAML file, then applies environment
// variable overrides. An empty cfgFile uses defaults only.
func LoadConfig(cfgFile string) (*Config, error) {
	cfg := DefaultConfig()

	if cfgFile != "" {
		raw, err := os.ReadFile(cfgFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	if val := os.Getenv("TDW_HTTP_TIMEOUT_SECONDS"); val != "" {
		n, err := strconv.Atoi(val)
		if err != nil {
			return nil, fmt.Errorf("invalid TDW_HTTP_TIMEOUT_SECONDS: %w", err)
		}
		cfg.HTTP.TimeoutSeconds = n
	}
	if val := os.Getenv("TDW_ALLOW_INSECURE"); val != "" {
		b, err := strconv.ParseBool(val)
		if err != nil {
			return nil, fmt.Errorf("invalid TDW_ALLOW_INSECURE: %w", err)
		}
		cfg.HTTP.AllowInsecure = b
	}
	if val := os.Getenv("TDW_MIN_PROOFS"); val != "" {
		n, err := strconv.Atoi(val)
		if err != nil {
			return nil, fmt.Errorf("invalid TDW_MIN_PROOFS: %w", err)
		}
		cfg.Proof.MinProofs = n
	}

	if cfg.HTTP.TimeoutSeconds <= 0 {
		return nil, fmt.Errorf("http timeout must be positive, got %d", cfg.HTTP.TimeoutSeconds)
	}
	if cfg.Proof.MinProofs < 1 {
		return nil, fmt.Errorf("min proofs must be at least 1, got %d", cfg.Proof.MinProofs)
	}

	return cfg, nil
}
