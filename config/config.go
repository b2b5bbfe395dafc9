package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/rustyeddy/tradebook/market"
)

// Config represents the complete journal configuration
type Config struct {
	Account    AccountConfig    `json:"account" yaml:"account"`
	Instrument InstrumentConfig `json:"instrument" yaml:"instrument"`
	Journal    JournalConfig    `json:"journal" yaml:"journal"`
}

// AccountConfig contains account initialization parameters
type AccountConfig struct {
	Currency        string  `json:"currency" yaml:"currency"`
	StartingBalance float64 `json:"starting_balance" yaml:"starting_balance"`
}

// InstrumentConfig describes the traded instrument's pip arithmetic
type InstrumentConfig struct {
	Symbol          string  `json:"symbol" yaml:"symbol"`
	PipValue        float64 `json:"pip_value" yaml:"pip_value"`
	USDPerPipPerLot float64 `json:"usd_per_pip_per_lot" yaml:"usd_per_pip_per_lot"`
	PricePrecision  int     `json:"price_precision" yaml:"price_precision"`
}

// JournalConfig contains persistence locations
type JournalConfig struct {
	File        string `json:"file" yaml:"file"`
	PlaybookDir string `json:"playbook_dir" yaml:"playbook_dir"`
}

// LoadFromFile loads configuration from a file (JSON or YAML based on extension)
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()

	// Try YAML first, fall back to JSON
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		err = json.Unmarshal(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Load returns the configuration from path, or the defaults when no
// file exists there. Environment overrides apply either way.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		cfg := Default()
		cfg.applyEnv()
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("invalid config: %w", err)
		}
		return cfg, nil
	}
	return LoadFromFile(path)
}

// SaveToFile saves configuration to a file (JSON or YAML based on extension)
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}

	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// applyEnv overlays TRADEBOOK_* environment variables, sourcing a .env
// file first when one is present in the working directory.
func (c *Config) applyEnv() {
	_ = godotenv.Load()

	if v := os.Getenv("TRADEBOOK_JOURNAL_FILE"); v != "" {
		c.Journal.File = v
	}
	if v := os.Getenv("TRADEBOOK_PLAYBOOK_DIR"); v != "" {
		c.Journal.PlaybookDir = v
	}
	if v := os.Getenv("TRADEBOOK_SYMBOL"); v != "" {
		c.Instrument.Symbol = v
		if inst, err := market.Lookup(v); err == nil {
			c.Instrument.PipValue = inst.PipValue
			c.Instrument.USDPerPipPerLot = inst.USDPerPipPerLot
			c.Instrument.PricePrecision = inst.PricePrecision
		}
	}
	if v := os.Getenv("TRADEBOOK_STARTING_BALANCE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			c.Account.StartingBalance = f
		}
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Account.Currency == "" {
		return fmt.Errorf("account.currency is required")
	}
	if c.Account.StartingBalance <= 0 {
		return fmt.Errorf("account.starting_balance must be positive")
	}
	if c.Instrument.Symbol == "" {
		return fmt.Errorf("instrument.symbol is required")
	}
	if c.Instrument.PipValue <= 0 {
		return fmt.Errorf("instrument.pip_value must be positive")
	}
	if c.Instrument.USDPerPipPerLot <= 0 {
		return fmt.Errorf("instrument.usd_per_pip_per_lot must be positive")
	}
	if c.Instrument.PricePrecision < 0 {
		return fmt.Errorf("instrument.price_precision must not be negative")
	}
	if c.Journal.File == "" {
		return fmt.Errorf("journal.file is required")
	}
	if c.Journal.PlaybookDir == "" {
		return fmt.Errorf("journal.playbook_dir is required")
	}
	return nil
}

// MarketInstrument converts the instrument section into the market
// package's representation, registering it for lookup by symbol.
func (c *Config) MarketInstrument() (market.Instrument, error) {
	inst := market.Instrument{
		Symbol:          c.Instrument.Symbol,
		PipValue:        c.Instrument.PipValue,
		USDPerPipPerLot: c.Instrument.USDPerPipPerLot,
		PricePrecision:  c.Instrument.PricePrecision,
	}
	if err := market.Register(inst); err != nil {
		return market.Instrument{}, err
	}
	return inst, nil
}

// Default returns a configuration with sensible defaults
func Default() *Config {
	return &Config{
		Account: AccountConfig{
			Currency:        "USD",
			StartingBalance: 10000.00,
		},
		Instrument: InstrumentConfig{
			Symbol:          "XAUUSD",
			PipValue:        0.1,
			USDPerPipPerLot: 10,
			PricePrecision:  2,
		},
		Journal: JournalConfig{
			File:        "trades_journal.json",
			PlaybookDir: "playbook_data",
		},
	}
}
