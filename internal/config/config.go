package config

import (
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/txconvert-dev/txconvert/internal/model"
)

// Config represents a txconvert.yaml file holding per-account defaults, so a
// recurring conversion doesn't need the full flag set every run. Flags win
// over config values.
type Config struct {
	Target        string        `yaml:"target,omitempty"`
	Reimbursement bool          `yaml:"reimbursement,omitempty"`
	RequireMarker bool          `yaml:"require_marker,omitempty"`
	Marker        *MarkerConfig `yaml:"marker,omitempty"`
}

// MarkerConfig identifies the last transaction already imported into the
// destination ledger.
type MarkerConfig struct {
	Date        string `yaml:"date"` // "2006-01-02"
	Amount      string `yaml:"amount"`
	Description string `yaml:"description"`
}

// markerDateFormat matches the destination ledger's date format.
const markerDateFormat = "2006-01-02"

// Load reads a txconvert.yaml file from disk.
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

// Default returns the configuration used when no txconvert.yaml exists.
func Default() *Config {
	return &Config{Target: "wave"}
}

// ResolveMarker converts the yaml marker fields into a model.Marker.
func (c *MarkerConfig) ResolveMarker() (model.Marker, error) {
	date, err := time.Parse(markerDateFormat, c.Date)
	if err != nil {
		return model.Marker{}, fmt.Errorf("parsing marker date %q: %w", c.Date, err)
	}
	amount, err := decimal.NewFromString(c.Amount)
	if err != nil {
		return model.Marker{}, fmt.Errorf("parsing marker amount %q: %w", c.Amount, err)
	}
	return model.Marker{Date: date, Amount: amount, Description: c.Description}, nil
}
