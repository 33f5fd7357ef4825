// Package config loads the trainer's HCL configuration file.
package config

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/preflop-trainer/preflop"
)

// Config represents the complete trainer configuration
type Config struct {
	LogLevel  string        `hcl:"log_level,optional"`
	LogFile   string        `hcl:"log_file,optional"`
	Seed      int64         `hcl:"seed,optional"`
	StateFile string        `hcl:"state_file,optional"`
	Blinds    *BlindsConfig `hcl:"blinds,block"`
	Sizing    *SizingConfig `hcl:"sizing,block"`
}

// BlindsConfig sets the forced bets every scenario is built from
type BlindsConfig struct {
	Small int `hcl:"small,optional"`
	Big   int `hcl:"big,optional"`
}

// SizingConfig overrides the raise multipliers
type SizingConfig struct {
	OpenMultiple      float64 `hcl:"open_multiple,optional"`
	PerCallerMultiple float64 `hcl:"per_caller_multiple,optional"`
	ThreeBetMultiple  float64 `hcl:"three_bet_multiple,optional"`
	FourBetMultiple   float64 `hcl:"four_bet_multiple,optional"`
	FourBetMin        float64 `hcl:"four_bet_min,optional"`
	FourBetMax        float64 `hcl:"four_bet_max,optional"`
	Band              float64 `hcl:"band,optional"`
}

const (
	defaultLogLevel = "info"
	defaultLogFile  = "preflop-trainer.log"
)

// Default returns the default configuration
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from an HCL file. A missing file yields the defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}
	return decode(file.Body)
}

// Parse decodes configuration from HCL source.
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL: %s", diags.Error())
	}
	return decode(file.Body)
}

func decode(body hcl.Body) (*Config, error) {
	var cfg Config
	diags := gohcl.DecodeBody(body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}
	cfg.applyDefaults()
	return &cfg, nil
}

// applyDefaults fills every zero value with its default
func (c *Config) applyDefaults() {
	if c.LogLevel == "" {
		c.LogLevel = defaultLogLevel
	}
	if c.LogFile == "" {
		c.LogFile = defaultLogFile
	}

	if c.Blinds == nil {
		c.Blinds = &BlindsConfig{}
	}
	if c.Blinds.Small == 0 {
		c.Blinds.Small = preflop.DefaultBlinds.Small
	}
	if c.Blinds.Big == 0 {
		c.Blinds.Big = preflop.DefaultBlinds.Big
	}

	def := preflop.DefaultSizing()
	if c.Sizing == nil {
		c.Sizing = &SizingConfig{}
	}
	fill := func(v *float64, d float64) {
		if *v == 0 {
			*v = d
		}
	}
	fill(&c.Sizing.OpenMultiple, def.OpenMultiple)
	fill(&c.Sizing.PerCallerMultiple, def.PerCallerMultiple)
	fill(&c.Sizing.ThreeBetMultiple, def.ThreeBetMultiple)
	fill(&c.Sizing.FourBetMultiple, def.FourBetMultiple)
	fill(&c.Sizing.FourBetMin, def.FourBetMin)
	fill(&c.Sizing.FourBetMax, def.FourBetMax)
	fill(&c.Sizing.Band, def.Band)
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	if c.Blinds.Small <= 0 {
		return fmt.Errorf("small blind must be positive")
	}
	if c.Blinds.Big <= c.Blinds.Small {
		return fmt.Errorf("big blind must be greater than small blind")
	}
	if err := c.PolicySizing().Validate(); err != nil {
		return fmt.Errorf("sizing: %w", err)
	}
	return nil
}

// PolicyBlinds returns the configured blinds
func (c *Config) PolicyBlinds() preflop.Blinds {
	return preflop.Blinds{Small: c.Blinds.Small, Big: c.Blinds.Big}
}

// PolicySizing returns the configured raise multipliers
func (c *Config) PolicySizing() preflop.SizingConfig {
	return preflop.SizingConfig{
		OpenMultiple:      c.Sizing.OpenMultiple,
		PerCallerMultiple: c.Sizing.PerCallerMultiple,
		ThreeBetMultiple:  c.Sizing.ThreeBetMultiple,
		FourBetMultiple:   c.Sizing.FourBetMultiple,
		FourBetMin:        c.Sizing.FourBetMin,
		FourBetMax:        c.Sizing.FourBetMax,
		Band:              c.Sizing.Band,
	}
}
