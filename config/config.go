// Package config loads the user configuration that decides which fields a
// fetch pass shows and how it draws them.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"gofetch/fetch"
)

const (
	// AppDir is the directory below the user config dir holding our files.
	AppDir    = "gofetch"
	fileName  = "config.json"
	envPrefix = "GOFETCH"
)

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config represents all the options to configure the info displayed to the user.
type Config struct {
	// ShowDistro draws the distro logo when the distro can be identified
	ShowDistro bool `mapstructure:"show_distro"`
	ShowOS     bool `mapstructure:"show_os"`
	ShowKernel bool `mapstructure:"show_kernel"`
	ShowUptime bool `mapstructure:"show_uptime"`
	ShowHost   bool `mapstructure:"show_host"`
	ShowShell  bool `mapstructure:"show_shell"`
	ShowCPU    bool `mapstructure:"show_cpu"`
	ShowMemory bool `mapstructure:"show_memory"`

	// Gap is the number of spaces between the logo and the text
	Gap int `mapstructure:"gap"`
	// PluginsDir is scanned for native plugins
	PluginsDir string `mapstructure:"plugins_dir"`
	// Workers bounds concurrent providers; 0 means unbounded
	Workers int `mapstructure:"workers"`
	// Color is one of auto, always, never
	Color string `mapstructure:"color"`
	// LogFile, when set, receives a JSON log of every run
	LogFile string `mapstructure:"log_file"`
}

// Dir returns the application config directory, e.g. ~/.config/gofetch.
func Dir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate user config dir: %w", err)
	}
	return filepath.Join(base, AppDir), nil
}

// DefaultPath returns the default location of the config file.
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, fileName), nil
}

// setDefaults registers the default of every key. Plugins live next to the
// config file unless configured otherwise.
func setDefaults(v *viper.Viper, dir string) {
	v.SetDefault("show_distro", true)
	v.SetDefault("show_os", true)
	v.SetDefault("show_kernel", true)
	v.SetDefault("show_uptime", true)
	v.SetDefault("show_host", false)
	v.SetDefault("show_shell", false)
	v.SetDefault("show_cpu", false)
	v.SetDefault("show_memory", false)
	v.SetDefault("gap", 3)
	v.SetDefault("plugins_dir", filepath.Join(dir, "plugins"))
	v.SetDefault("workers", 0)
	v.SetDefault("color", ColorAuto)
	v.SetDefault("log_file", "")
}

// Default returns the configuration used when no file is present.
func Default(dir string) *Config {
	v := viper.New()
	setDefaults(v, dir)
	cfg := &Config{}
	_ = v.Unmarshal(cfg)
	return cfg
}

// Load reads the config file at path. A missing file is not an error and
// yields the defaults. A malformed file also yields the defaults, together
// with a non-nil warning describing the problem. Environment variables
// prefixed with GOFETCH_ override file values.
//
// Load also returns a viper instance holding only the file values and the
// defaults, so callers can persist them with Save without writing the
// environment overrides of this run.
func Load(path string) (*Config, *viper.Viper, error) {
	dir := filepath.Dir(path)
	v := newViper(dir, true)
	file := newViper(dir, false)

	var warning error
	if err := readFile(v, path); err != nil {
		warning = fmt.Errorf("config file %s is incorrect, using defaults: %w", path, err)
		v = newViper(dir, true)
	} else if err := readFile(file, path); err != nil {
		warning = fmt.Errorf("config file %s is incorrect, using defaults: %w", path, err)
	}
	if warning != nil {
		file = newViper(dir, false)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return Default(dir), newViper(dir, false), fmt.Errorf("decode config %s, using defaults: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Default(dir), newViper(dir, false), fmt.Errorf("config %s, using defaults: %w", path, err)
	}
	return cfg, file, warning
}

// readFile loads path into v. A missing file leaves v untouched.
func readFile(v *viper.Viper, path string) error {
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

func newViper(dir string, env bool) *viper.Viper {
	v := viper.New()
	setDefaults(v, dir)
	v.SetConfigType("json")
	if env {
		v.SetEnvPrefix(envPrefix)
		v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
		v.AutomaticEnv()
	}
	return v
}

// Save writes the configuration held by v to path, creating the
// directory if needed.
func Save(v *viper.Viper, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Validate checks values that have a restricted domain.
func (c *Config) Validate() error {
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("invalid color mode %q", c.Color)
	}
	if c.Gap < 0 {
		return fmt.Errorf("gap must not be negative, got %d", c.Gap)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	}
	return nil
}

// Selection converts the show_* toggles into a fetch.Selection.
func (c *Config) Selection() fetch.Selection {
	return fetch.Selection{
		fetch.FieldDistro: c.ShowDistro,
		fetch.FieldOS:     c.ShowOS,
		fetch.FieldKernel: c.ShowKernel,
		fetch.FieldUptime: c.ShowUptime,
		fetch.FieldHost:   c.ShowHost,
		fetch.FieldShell:  c.ShowShell,
		fetch.FieldCPU:    c.ShowCPU,
		fetch.FieldMemory: c.ShowMemory,
	}
}
