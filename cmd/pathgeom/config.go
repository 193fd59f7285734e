package main

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the settings that can be read from a TOML file and
// overridden on the command line.
type Config struct {
	// Flatness threshold for the paths' polylines. Values not greater than 1
	// select the library default.
	Flatness float64 `toml:"flatness"`
	// Report format, "yaml" or "text".
	Format string `toml:"format"`
	// Minimum level of log records written to stderr.
	LogLevel string `toml:"log_level"`
	// Maximum number of decimal places when printing path data. 0 prints
	// as many as needed.
	Precision int `toml:"precision"`
}

func defaultConfig() Config {
	return Config{
		Format:   "yaml",
		LogLevel: "warn",
	}
}

// loadConfig reads a TOML file on top of the defaults. An empty path
// yields the defaults.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := decodeConfig(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

func decodeConfig(b []byte, cfg *Config) error {
	dec := toml.NewDecoder(bytes.NewReader(b))
	dec.DisallowUnknownFields()
	return dec.Decode(cfg)
}

func (cfg Config) validate() error {
	switch cfg.Format {
	case "yaml", "text":
	default:
		return fmt.Errorf("unknown format %q", cfg.Format)
	}
	if cfg.Precision < 0 {
		return fmt.Errorf("negative precision %d", cfg.Precision)
	}
	if _, err := cfg.level(); err != nil {
		return err
	}
	return nil
}

func (cfg Config) level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}
	return l, nil
}
