package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/mikelcalvo/invoice-cli/internal/billing"
)

// FileName is the config file looked up in the config directory
const FileName = ".invoice-cli.yaml"

// EnvFileName holds optional KEY=value overrides next to the config file
const EnvFileName = ".env"

// Theme values
const (
	ThemeSystem = "system"
	ThemeLight  = "light"
	ThemeDark   = "dark"
)

// Config holds the CLI configuration
type Config struct {
	Currency string `yaml:"currency"`
	Theme    string `yaml:"theme"`
	LogLevel string `yaml:"log_level"`
	// TUI sessions log here instead of stderr
	LogFile string `yaml:"log_file"`
	// Block Next while the current step has validation errors
	StrictValidation bool `yaml:"strict_validation"`
	// Shown in the status bar and sidebar
	Brand         string `yaml:"brand"`
	QuotePrefix   string `yaml:"quote_prefix"`
	InvoicePrefix string `yaml:"invoice_prefix"`
}

// Default returns the configuration used when no file exists
func Default() Config {
	return Config{
		Currency:      string(billing.USD),
		Theme:         ThemeSystem,
		LogLevel:      "info",
		LogFile:       "invoice-cli.log",
		Brand:         "Invoice CLI",
		QuotePrefix:   "QUO",
		InvoicePrefix: "INV",
	}
}

// Load reads FileName from dir, then applies .env and INVOICE_* environment
// overrides. A missing file yields the defaults.
func Load(dir string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(filepath.Join(dir, FileName))
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing %s: %w", FileName, err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return Config{}, fmt.Errorf("cannot open config: %w", err)
	}

	dotenv, err := godotenv.Read(filepath.Join(dir, EnvFileName))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("parsing %s: %w", EnvFileName, err)
	}
	if err := cfg.applyEnv(dotenv); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid %s: %w", FileName, err)
	}
	return cfg, nil
}

// applyEnv overlays INVOICE_* variables. Process environment wins over .env.
func (c *Config) applyEnv(dotenv map[string]string) error {
	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok
	}

	strs := map[string]*string{
		"INVOICE_CURRENCY":       &c.Currency,
		"INVOICE_THEME":          &c.Theme,
		"INVOICE_LOG_LEVEL":      &c.LogLevel,
		"INVOICE_LOG_FILE":       &c.LogFile,
		"INVOICE_BRAND":          &c.Brand,
		"INVOICE_QUOTE_PREFIX":   &c.QuotePrefix,
		"INVOICE_INVOICE_PREFIX": &c.InvoicePrefix,
	}
	for key, dst := range strs {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}

	if v, ok := lookup("INVOICE_STRICT_VALIDATION"); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("INVOICE_STRICT_VALIDATION: %w", err)
		}
		c.StrictValidation = b
	}
	return nil
}

// Validate checks enumerated values
func (c Config) Validate() error {
	if _, err := billing.ParseCurrency(c.Currency); err != nil {
		return err
	}
	switch c.Theme {
	case ThemeSystem, ThemeLight, ThemeDark:
	default:
		return fmt.Errorf("unknown theme %q (want system, light or dark)", c.Theme)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}
	return nil
}

// CurrencyCode returns the validated default currency
func (c Config) CurrencyCode() billing.Currency {
	cur, err := billing.ParseCurrency(c.Currency)
	if err != nil {
		return billing.USD
	}
	return cur
}

// NumberPlaceholder returns an example document number for the type
func (c Config) NumberPlaceholder(t billing.DocumentType) string {
	prefix := c.QuotePrefix
	if t == billing.DocumentInvoice {
		prefix = c.InvoicePrefix
	}
	return prefix + "-001"
}

// Save writes cfg as FileName into dir
func Save(dir string, cfg Config) (string, error) {
	if err := cfg.Validate(); err != nil {
		return "", err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("failed to encode config: %w", err)
	}

	var sb strings.Builder
	sb.WriteString("# Invoice CLI configuration\n")
	sb.WriteString("# INVOICE_* environment variables (or a .env file) override these values\n\n")
	sb.Write(data)

	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte(sb.String()), 0600); err != nil {
		return "", fmt.Errorf("failed to write config: %w", err)
	}
	return path, nil
}
