package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level bookkeep.yaml configuration.
type Config struct {
	Currency CurrencyConfig `yaml:"currency"`
	Chart    ChartConfig    `yaml:"chart"`
	Policies PoliciesConfig `yaml:"policies"`
}

// CurrencyConfig controls amount rendering.
type CurrencyConfig struct {
	Symbol string `yaml:"symbol"`
}

// ChartConfig selects the seed chart of accounts.
type ChartConfig struct {
	Profile string `yaml:"profile"`
}

// PoliciesConfig controls engine strictness.
type PoliciesConfig struct {
	// AutoCreateAccounts lets postings name accounts that do not exist
	// yet; they are created with inferred types.
	AutoCreateAccounts bool `yaml:"auto_create_accounts"`
	// VerifyEquation checks the accounting equation after every posting.
	VerifyEquation bool `yaml:"verify_equation"`
}

// Load reads a bookkeep.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// LoadOrDefault reads a config file, falling back to Default when the
// file does not exist.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		Currency: CurrencyConfig{
			Symbol: "₱",
		},
		Chart: ChartConfig{
			Profile: "standard",
		},
		Policies: PoliciesConfig{
			AutoCreateAccounts: true,
			VerifyEquation:     true,
		},
	}
}
