// Package config reads the lottiekit configuration file.
package config

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"

	"github.com/lottiebuilder/lottie-go"
)

// Config is the lottiekit configuration. Every field is optional.
//
//	ids: xid          # uuid (default), xid or seq
//	indent: "  "      # output indentation, empty for compact output
//	log:
//	  level: debug
//	  color: false
//	export:
//	  pruneUnused: true
type Config struct {
	IDs    string `yaml:"ids"`
	Indent string `yaml:"indent"`
	Log    struct {
		Level string `yaml:"level"`
		Color *bool  `yaml:"color"`
	} `yaml:"log"`
	Export struct {
		PruneUnused bool `yaml:"pruneUnused"`
	} `yaml:"export"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{IDs: "uuid", Indent: "  "}
}

// Parse reads a configuration file.
func Parse(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Errorf("open config: %w", err)
	}
	defer f.Close()

	return ParseFromReader(f)
}

// ParseFromReader reads a configuration from r. Unset fields keep the
// defaults.
func ParseFromReader(r io.Reader) (*Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Errorf("decode config: %w", err)
	}
	if _, err := cfg.IDGenerator(); err != nil {
		return nil, err
	}
	if _, err := cfg.LogLevel(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// IDGenerator returns the generator named by IDs.
func (c *Config) IDGenerator() (lottie.IDGenerator, error) {
	switch strings.ToLower(c.IDs) {
	case "", "uuid":
		return lottie.UUIDGenerator, nil
	case "xid":
		return lottie.XIDGenerator, nil
	case "seq":
		return lottie.SequenceGenerator(), nil
	}
	return nil, errors.Errorf("ids: unknown generator %q", c.IDs)
}

// LogLevel returns the configured level, Info by default.
func (c *Config) LogLevel() (slog.Level, error) {
	if c.Log.Level == "" {
		return slog.LevelInfo, nil
	}
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return 0, errors.Errorf("log.level: %w", err)
	}
	return l, nil
}

// Color reports whether log output should be colored, fallback when unset.
func (c *Config) Color(fallback bool) bool {
	if c.Log.Color == nil {
		return fallback
	}
	return *c.Log.Color
}
