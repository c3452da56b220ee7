// Package config loads the settings for the unveil command: window, assets,
// section toggles and the page copy. Values are layered as built-in
// defaults, then a TOML or YAML file, then UNVEIL_* environment variables.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/phanxgames/unveil/page"
)

var (
	// ErrUnsupportedFormat is returned for config files that are neither TOML
	// nor YAML.
	ErrUnsupportedFormat = errors.New("config: unsupported file format")
	// ErrInvalid is returned by Validate.
	ErrInvalid = errors.New("config: invalid")
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "UNVEIL_"

// Config is the full configuration of a page run.
type Config struct {
	Window    Window          `toml:"window" yaml:"window"`
	AssetsDir string          `toml:"assets_dir" yaml:"assets_dir"`
	Debug     bool            `toml:"debug" yaml:"debug"`
	Sections  map[string]bool `toml:"sections" yaml:"sections"`
	Page      page.Content    `toml:"page" yaml:"page"`
}

// Window configures the window opened by the run command.
type Window struct {
	Title   string `toml:"title" yaml:"title"`
	Width   int    `toml:"width" yaml:"width"`
	Height  int    `toml:"height" yaml:"height"`
	ShowFPS bool   `toml:"show_fps" yaml:"show_fps"`
}

// overrides holds the environment variables. Unset variables leave their
// pointer nil so they do not clobber file values.
type overrides struct {
	Title     *string `env:"TITLE"`
	Width     *int    `env:"WIDTH"`
	Height    *int    `env:"HEIGHT"`
	AssetsDir *string `env:"ASSETS_DIR"`
	ShowFPS   *bool   `env:"SHOW_FPS"`
	Debug     *bool   `env:"DEBUG"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Window: Window{
			Title:  "Ashiq & Aswathi",
			Width:  1024,
			Height: 768,
		},
		AssetsDir: "public",
		Page:      page.DefaultContent(),
	}
}

// Load builds a Config from the defaults, the file at path (skipped when
// path is empty), and the environment, then validates it.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		if err := decodeFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}
	if err := ApplyEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// decodeFile layers the file at path over cfg, choosing the decoder by
// extension. Unknown keys are rejected in both formats.
func decodeFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		md, err := toml.Decode(string(data), cfg)
		if err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			sort.Strings(keys)
			return fmt.Errorf("parse %s: unknown keys %s", path, strings.Join(keys, ", "))
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("parse %s: %w", path, err)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	return nil
}

// ApplyEnv overlays the UNVEIL_* environment variables onto cfg.
func ApplyEnv(cfg *Config) error {
	var o overrides
	if err := env.ParseWithOptions(&o, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	if o.Title != nil {
		cfg.Window.Title = *o.Title
	}
	if o.Width != nil {
		cfg.Window.Width = *o.Width
	}
	if o.Height != nil {
		cfg.Window.Height = *o.Height
	}
	if o.AssetsDir != nil {
		cfg.AssetsDir = *o.AssetsDir
	}
	if o.ShowFPS != nil {
		cfg.Window.ShowFPS = *o.ShowFPS
	}
	if o.Debug != nil {
		cfg.Debug = *o.Debug
	}
	return nil
}

// Validate checks the window size and the section names.
func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	}
	if _, err := page.ParseToggles(c.Sections); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

// Toggles returns the section toggles keyed by kind.
func (c Config) Toggles() (page.Toggles, error) {
	return page.ParseToggles(c.Sections)
}
