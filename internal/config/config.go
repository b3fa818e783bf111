package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	chargedomain "github.com/stayloop/leasebill/internal/charge/domain"
	"gopkg.in/yaml.v3"
)

const envPrefix = "LEASEBILL"

// HTTPConfig configures the API listener.
type HTTPConfig struct {
	Addr string `yaml:"addr"`
}

// DatabaseConfig selects the storage backend.
type DatabaseConfig struct {
	Driver string `yaml:"driver"`
	DSN    string `yaml:"dsn"`
}

// LogConfig configures process logging.
type LogConfig struct {
	Level string `yaml:"level"`
}

// TracingConfig configures OTLP trace export.
type TracingConfig struct {
	Enabled       bool    `yaml:"enabled"`
	Endpoint      string  `yaml:"endpoint"`
	Protocol      string  `yaml:"protocol"`
	SamplingRatio float64 `yaml:"sampling_ratio"`
}

// FeesConfig overrides the built-in fee schedule. Zero values fall
// back to the defaults.
type FeesConfig struct {
	ServiceFeeShortTermRate   float64 `yaml:"service_fee_short_term_rate"`
	ServiceFeeLongTermRate    float64 `yaml:"service_fee_long_term_rate"`
	ServiceFeeThresholdMonths int     `yaml:"service_fee_threshold_months"`
	CardFeeRate               float64 `yaml:"card_fee_rate"`
	TransferFeeCents          int64   `yaml:"transfer_fee_cents"`
}

// SweepConfig configures the daily payment-due sweep.
type SweepConfig struct {
	Schedule  string `yaml:"schedule"`
	BatchSize int    `yaml:"batch_size"`
}

// Config is the root application configuration.
type Config struct {
	Environment string         `yaml:"environment"`
	Currency    string         `yaml:"currency"`
	HTTP        HTTPConfig     `yaml:"http"`
	Database    DatabaseConfig `yaml:"database"`
	Log         LogConfig      `yaml:"log"`
	Tracing     TracingConfig  `yaml:"tracing"`
	Fees        FeesConfig     `yaml:"fees"`
	Sweep       SweepConfig    `yaml:"sweep"`
}

// IsProduction reports whether the process runs with production defaults.
func (c Config) IsProduction() bool {
	return strings.EqualFold(c.Environment, "production")
}

// FeeConfig converts the configured overrides into the charge engine's
// fee schedule.
func (c Config) FeeConfig() chargedomain.FeeConfig {
	return chargedomain.FeeConfig{
		ServiceFeeShortTermRate:   c.Fees.ServiceFeeShortTermRate,
		ServiceFeeLongTermRate:    c.Fees.ServiceFeeLongTermRate,
		ServiceFeeThresholdMonths: c.Fees.ServiceFeeThresholdMonths,
		CardFeeRate:               c.Fees.CardFeeRate,
		TransferFeeCents:          c.Fees.TransferFeeCents,
	}
}

// Load reads the config file named by LEASEBILL_CONFIG (optional) and
// applies environment overrides on top.
func Load() (Config, error) {
	cfg := Config{
		Environment: "development",
		Currency:    "usd",
		HTTP:        HTTPConfig{Addr: ":8080"},
		Database:    DatabaseConfig{Driver: "postgres"},
		Log:         LogConfig{Level: "info"},
		Sweep:       SweepConfig{Schedule: "0 6 * * *", BatchSize: 100},
	}

	path := strings.TrimSpace(os.Getenv(envPrefix + "_CONFIG"))
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	applyEnvOverrides(&cfg)
	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if value := envString("ENVIRONMENT"); value != "" {
		cfg.Environment = value
	}
	if value := envString("CURRENCY"); value != "" {
		cfg.Currency = value
	}
	if value := envString("HTTP_ADDR"); value != "" {
		cfg.HTTP.Addr = value
	}
	if value := envString("DATABASE_DRIVER"); value != "" {
		cfg.Database.Driver = value
	}
	if value := envString("DATABASE_DSN"); value != "" {
		cfg.Database.DSN = value
	}
	if value := envString("LOG_LEVEL"); value != "" {
		cfg.Log.Level = value
	}
	if value := envString("TRACING_ENABLED"); value != "" {
		if enabled, err := strconv.ParseBool(value); err == nil {
			cfg.Tracing.Enabled = enabled
		}
	}
	if value := envString("TRACING_ENDPOINT"); value != "" {
		cfg.Tracing.Endpoint = value
	}
	if value := envString("SWEEP_SCHEDULE"); value != "" {
		cfg.Sweep.Schedule = value
	}
}

func envString(key string) string {
	return strings.TrimSpace(os.Getenv(envPrefix + "_" + key))
}
