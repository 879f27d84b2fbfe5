// Package config provides Viper-based hierarchical configuration management
package config

import (
	"fmt"
	"strings"
	"time"

	"fjacquet/sheet-ledger/internal/dateutils"
	"fjacquet/sheet-ledger/internal/ingest"
	"fjacquet/sheet-ledger/internal/logging"
	"fjacquet/sheet-ledger/internal/models"
	"fjacquet/sheet-ledger/internal/parsererror"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. LEDGER_FILL_WINDOW.
const EnvPrefix = "LEDGER"

// Config represents the complete application configuration
type Config struct {
	Workbook     string `mapstructure:"workbook" yaml:"workbook"`
	Transactions string `mapstructure:"transactions" yaml:"transactions"`
	Account      string `mapstructure:"account" yaml:"account"`
	Bank         string `mapstructure:"bank" yaml:"bank"`

	Date    DateConfig    `mapstructure:"date" yaml:"date"`
	Fill    FillConfig    `mapstructure:"fill" yaml:"fill"`
	Regroup RegroupConfig `mapstructure:"regroup" yaml:"regroup"`
	Sheets  SheetsConfig  `mapstructure:"sheets" yaml:"sheets"`
	Rules   RulesConfig   `mapstructure:"rules" yaml:"rules"`
	CSV     CSVConfig     `mapstructure:"csv" yaml:"csv"`
	AI      AIConfig      `mapstructure:"ai" yaml:"ai"`
	Log     LogConfig     `mapstructure:"log" yaml:"log"`
}

// DateConfig controls how dates and month labels are written to the ledger.
type DateConfig struct {
	Delimiter  string `mapstructure:"delimiter" yaml:"delimiter"`
	MonthStyle string `mapstructure:"month_style" yaml:"month_style"`
	Language   string `mapstructure:"language" yaml:"language"`
	Capitalize bool   `mapstructure:"capitalize" yaml:"capitalize"`
}

// FillConfig controls the gap-fill pass.
type FillConfig struct {
	Window int     `mapstructure:"window" yaml:"window"`
	Margin float64 `mapstructure:"margin" yaml:"margin"`
}

type RegroupConfig struct {
	StopAtNote bool `mapstructure:"stop_at_note" yaml:"stop_at_note"`
}

// SheetsConfig names the workbook sheets.
type SheetsConfig struct {
	Ledger     string `mapstructure:"ledger" yaml:"ledger"`
	Categories string `mapstructure:"categories" yaml:"categories"`
	Accounts   string `mapstructure:"accounts" yaml:"accounts"`
	Bank       string `mapstructure:"bank" yaml:"bank"`
}

// RulesConfig points at an optional YAML rules file used instead of the
// categories sheet.
type RulesConfig struct {
	File string `mapstructure:"file" yaml:"file"`
}

type CSVConfig struct {
	Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
}

type AIConfig struct {
	Enabled        bool   `mapstructure:"enabled" yaml:"enabled"`
	Model          string `mapstructure:"model" yaml:"model"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds" yaml:"timeout_seconds"`
	APIKey         string `mapstructure:"api_key" yaml:"-"` // Never serialize API key
}

type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// NewViper returns a Viper instance with defaults, config file locations and
// environment bindings set. Callers may bind flags on it before Load.
func NewViper() *viper.Viper {
	v := viper.New()

	// 1. Set defaults
	setDefaults(v)

	// 2. Config file locations
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.sheet-ledger")
	v.AddConfigPath(".sheet-ledger")
	v.AddConfigPath(".")

	// 3. Environment variables
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// The API key is always read from the unprefixed variable
	if err := v.BindEnv("ai.api_key", "GEMINI_API_KEY"); err != nil {
		fmt.Printf("Warning: failed to bind GEMINI_API_KEY environment variable: %v\n", err)
	}

	return v
}

// Load reads the optional config file, unmarshals and validates.
func Load(v *viper.Viper) (*Config, error) {
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file %s: %w", v.ConfigFileUsed(), err)
		}
		// Config file not found is OK, we'll use defaults and env vars
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// Default returns the configuration with every default applied, as if no file,
// environment variable or flag were set.
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	var config Config
	_ = v.Unmarshal(&config)
	return &config
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("workbook", "")
	v.SetDefault("transactions", "")
	v.SetDefault("account", "")
	v.SetDefault("bank", string(ingest.Sbanken))

	def := dateutils.DefaultFormat()
	v.SetDefault("date.delimiter", def.Delimiter)
	v.SetDefault("date.month_style", string(def.MonthStyle))
	v.SetDefault("date.language", string(def.Language))
	v.SetDefault("date.capitalize", def.Capitalize)

	v.SetDefault("fill.window", 10)
	v.SetDefault("fill.margin", 0.0)

	v.SetDefault("regroup.stop_at_note", true)

	v.SetDefault("sheets.ledger", models.DefaultLedgerSheet)
	v.SetDefault("sheets.categories", models.DefaultCategoriesSheet)
	v.SetDefault("sheets.accounts", models.DefaultAccountsSheet)
	v.SetDefault("sheets.bank", models.DefaultBankSheet)

	v.SetDefault("rules.file", "")
	v.SetDefault("csv.delimiter", ";")

	v.SetDefault("ai.enabled", false)
	v.SetDefault("ai.model", "gemini-1.5-flash")
	v.SetDefault("ai.timeout_seconds", 30)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
}

// Validate checks every value against its allowed set. Failures are
// *parsererror.ValidationError.
func Validate(config *Config) error {
	invalid := func(format string, args ...interface{}) error {
		return &parsererror.ValidationError{Reason: fmt.Sprintf(format, args...)}
	}

	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return invalid("invalid log level: %s", config.Log.Level)
	}
	if config.Log.Format != "text" && config.Log.Format != "json" {
		return invalid("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if _, err := config.DateFormat(); err != nil {
		return invalid("%v", err)
	}

	if config.Fill.Window < 1 {
		return invalid("fill.window must be at least 1, got: %d", config.Fill.Window)
	}
	if config.Fill.Margin < 0 {
		return invalid("fill.margin must not be negative, got: %v", config.Fill.Margin)
	}

	if _, err := ingest.ParseBank(config.Bank); err != nil {
		return invalid("%v", err)
	}

	if len([]rune(config.CSV.Delimiter)) != 1 {
		return invalid("CSV delimiter must be a single character, got: %s", config.CSV.Delimiter)
	}

	if config.AI.Enabled {
		if config.AI.APIKey == "" {
			return invalid("GEMINI_API_KEY required when AI is enabled")
		}
		if config.AI.TimeoutSeconds < 1 || config.AI.TimeoutSeconds > 300 {
			return invalid("ai.timeout_seconds must be between 1 and 300, got: %d", config.AI.TimeoutSeconds)
		}
	}

	return nil
}

// DateFormat converts the date section, resolving the language alias.
func (c *Config) DateFormat() (dateutils.Format, error) {
	style, err := dateutils.ParseMonthStyle(c.Date.MonthStyle)
	if err != nil {
		return dateutils.Format{}, err
	}
	lang, err := dateutils.ParseLanguage(c.Date.Language)
	if err != nil {
		return dateutils.Format{}, err
	}
	f := dateutils.Format{
		Delimiter:  c.Date.Delimiter,
		MonthStyle: style,
		Language:   lang,
		Capitalize: c.Date.Capitalize,
	}
	return f, f.Validate()
}

// FillMargin returns the gap-fill margin as a decimal.
func (c *Config) FillMargin() decimal.Decimal {
	return decimal.NewFromFloat(c.Fill.Margin)
}

// CSVDelimiter returns the first rune of the CSV delimiter, or ';'.
func (c *Config) CSVDelimiter() rune {
	for _, r := range c.CSV.Delimiter {
		return r
	}
	return ';'
}

// AITimeout returns the AI request timeout.
func (c *Config) AITimeout() time.Duration {
	return time.Duration(c.AI.TimeoutSeconds) * time.Second
}

// IngestOptions returns the ingestion options derived from the config.
func (c *Config) IngestOptions() ingest.Options {
	opts := ingest.DefaultOptions()
	if c.Sheets.Bank != "" {
		opts.BankSheet = c.Sheets.Bank
	}
	opts.Delimiter = c.CSVDelimiter()
	return opts
}

// ConfigureLoggingFromConfig builds the application logger from the log section.
func ConfigureLoggingFromConfig(config *Config) logging.Logger {
	return logging.NewLogrusAdapter(config.Log.Level, config.Log.Format)
}
