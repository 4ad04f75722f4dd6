// Package config loads presentation settings for the CLI and the desktop form.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// Setting keys, also used as flag names.
const (
	KeyPrecision = "precision"
	KeyLogLevel  = "log-level"
	KeyReportDir = "report-dir"
)

// EnvPrefix is prepended to environment variable names, e.g. BENCHCALC_PRECISION.
const EnvPrefix = "BENCHCALC"

// Settings holds display and diagnostics options. None of them affect the
// arithmetic.
type Settings struct {
	Precision int    // significant digits for displayed values; -1 = shortest exact
	LogLevel  string // zerolog level name
	ReportDir string // default directory for exported reports
}

// DefaultSettings returns Settings with sensible defaults.
func DefaultSettings() Settings {
	return Settings{
		Precision: 7,
		LogLevel:  "info",
		ReportDir: "results",
	}
}

// New returns a viper instance with defaults, environment binding and the
// optional benchcalc.yaml search path applied. If file is non-empty it is
// used instead of the search path and must exist.
func New(file string) (*viper.Viper, error) {
	v := viper.New()

	d := DefaultSettings()
	v.SetDefault(KeyPrecision, d.Precision)
	v.SetDefault(KeyLogLevel, d.LogLevel)
	v.SetDefault(KeyReportDir, d.ReportDir)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", file, err)
		}
		return v, nil
	}

	v.SetConfigName("benchcalc")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "benchcalc"))
	}

	// A missing file is fine; a malformed one is not.
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	return v, nil
}

// FromViper extracts and validates Settings.
func FromViper(v *viper.Viper) (Settings, error) {
	s := Settings{
		Precision: v.GetInt(KeyPrecision),
		LogLevel:  strings.ToLower(v.GetString(KeyLogLevel)),
		ReportDir: v.GetString(KeyReportDir),
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Load is New followed by FromViper.
func Load(file string) (Settings, error) {
	v, err := New(file)
	if err != nil {
		return Settings{}, err
	}
	return FromViper(v)
}

// Validate checks the settings for invalid values.
func (s *Settings) Validate() error {
	if s.Precision < -1 || s.Precision > 17 {
		return fmt.Errorf("precision must be between -1 and 17, got %d", s.Precision)
	}
	if _, err := zerolog.ParseLevel(s.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q", s.LogLevel)
	}
	if s.ReportDir == "" {
		return fmt.Errorf("report directory is required")
	}
	return nil
}
