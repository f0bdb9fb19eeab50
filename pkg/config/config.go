// Package config loads flocktree configuration files.
//
// A configuration file is optional. It is read from the path given with
// --config, or from $XDG_CONFIG_HOME/flocktree/config.toml (falling back to
// ~/.config/flocktree/config.toml). The format follows the extension:
//
//   - .toml: TOML
//   - .yaml, .yml: YAML, with ${VAR} environment expansion
//
// Keys missing from the file keep their [Default] values, and command-line
// flags override whatever the file sets. Unknown keys are rejected.
//
// Example:
//
//	viewport = 1280
//	viz_type = "tree"
//	formats  = ["svg", "json"]
//
//	[cache]
//	redis_addr = "localhost:6379"
//	ttl        = "24h"
//
//	[server]
//	addr   = "localhost:8080"
//	source = "/srv/coop/flock.ged"
//	watch  = true
package config

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/coopcast/flocktree/pkg/errors"
)

const (
	appName     = "flocktree"
	defaultFile = "config.toml"

	// DefaultAddr is the HTTP listen address of the server.
	DefaultAddr = "localhost:8080"
)

// Config is the complete configuration file.
type Config struct {
	Viewport int      `toml:"viewport" yaml:"viewport" validate:"gte=0,lte=10000"`
	VizType  string   `toml:"viz_type" yaml:"viz_type" validate:"omitempty,oneof=tree nodelink"`
	Formats  []string `toml:"formats" yaml:"formats" validate:"dive,oneof=svg json"`
	Cache    Cache    `toml:"cache" yaml:"cache"`
	Server   Server   `toml:"server" yaml:"server"`
}

// Cache configures where pipeline results are stored.
type Cache struct {
	Dir           string   `toml:"dir" yaml:"dir"`
	Disabled      bool     `toml:"disabled" yaml:"disabled"`
	RedisAddr     string   `toml:"redis_addr" yaml:"redis_addr" validate:"omitempty,hostname_port"`
	RedisPassword string   `toml:"redis_password" yaml:"redis_password"`
	RedisDB       int      `toml:"redis_db" yaml:"redis_db" validate:"gte=0"`
	Prefix        string   `toml:"prefix" yaml:"prefix"`
	TTL           Duration `toml:"ttl" yaml:"ttl" validate:"gte=0"`
}

// Server configures the HTTP server.
type Server struct {
	Addr   string `toml:"addr" yaml:"addr" validate:"required,hostname_port"`
	Source string `toml:"source" yaml:"source"`
	Watch  bool   `toml:"watch" yaml:"watch"`
}

// Duration is a time.Duration written as a string such as "24h" or "90m".
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// Std returns d as a time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Server: Server{Addr: DefaultAddr, Watch: true},
	}
}

// DefaultPath returns the default configuration file location.
func DefaultPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, defaultFile), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, defaultFile), nil
}

// Load reads, decodes and validates the configuration file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s", path)
		}
		return Config{}, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg := Default()
	if err := decode(path, data, &cfg); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "failed to parse config file %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadOrDefault loads path, or the default location when path is empty.
// A missing file at the default location yields [Default]; a missing file
// that was asked for explicitly is an error.
func LoadOrDefault(path string) (Config, error) {
	if path != "" {
		return Load(path)
	}
	def, err := DefaultPath()
	if err != nil {
		return Default(), nil
	}
	cfg, err := Load(def)
	if errors.Is(err, errors.ErrCodeFileNotFound) {
		return Default(), nil
	}
	return cfg, err
}

func decode(path string, data []byte, cfg *Config) error {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		md, err := toml.Decode(string(data), cfg)
		if err != nil {
			return err
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return fmt.Errorf("unknown key %q", undecoded[0].String())
		}
		return nil
	case ".yaml", ".yml":
		expanded := os.ExpandEnv(string(data))
		dec := yaml.NewDecoder(bytes.NewReader([]byte(expanded)))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil && err != io.EOF {
			return err
		}
		return nil
	default:
		return fmt.Errorf("unsupported config format %q (must be .toml, .yaml or .yml)", ext)
	}
}

var validate = validator.New()

// Validate checks field constraints.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "config validation failed")
	}
	return nil
}
