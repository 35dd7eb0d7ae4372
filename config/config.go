// Package config loads the viewer's optional TOML configuration file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"ppmview/hal"
)

const (
	configDirName = "ppmview"
	configFile    = "config.toml"
)

// Config is the whole config file.
type Config struct {
	Verbose bool `toml:"verbose"`
	// HUD prints the interaction state over the image.
	HUD      bool     `toml:"hud"`
	Window   Window   `toml:"window"`
	Headless Headless `toml:"headless"`
}

// Window sizes and titles the desktop window.
type Window struct {
	Title  string `toml:"title"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	TPS    int    `toml:"tps"`
}

// Headless renders without a window. Keys are scripted presses, one per
// frame, named as in hal.ParseKey.
type Headless struct {
	Enabled  bool     `toml:"enabled"`
	Hz       int      `toml:"hz"`
	Frames   int      `toml:"frames"`
	Width    int      `toml:"width"`
	Height   int      `toml:"height"`
	Keys     []string `toml:"keys"`
	Snapshot string   `toml:"snapshot"`
}

// Default is the configuration used when no file exists.
func Default() Config {
	return Config{
		Window: Window{
			Title:  "Simple example",
			Width:  640,
			Height: 480,
			TPS:    60,
		},
		Headless: Headless{
			Hz:     60,
			Frames: 1,
			Width:  640,
			Height: 480,
		},
	}
}

// Path returns <user config dir>/ppmview/config.toml.
func Path() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("config: resolve config dir: %w", err)
	}
	return filepath.Join(dir, configDirName, configFile), nil
}

// Load reads path over the defaults. A missing file yields Default().
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("config: %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	if c.Window.TPS <= 0 {
		return fmt.Errorf("window tps %d must be positive", c.Window.TPS)
	}
	if c.Headless.Width <= 0 || c.Headless.Height <= 0 {
		return fmt.Errorf("headless size %dx%d must be positive", c.Headless.Width, c.Headless.Height)
	}
	if c.Headless.Hz <= 0 || c.Headless.Frames <= 0 {
		return fmt.Errorf("headless hz %d and frames %d must be positive", c.Headless.Hz, c.Headless.Frames)
	}
	_, err := c.Headless.keyEvents()
	return err
}

// WindowConfig converts the window section for hal.RunWindow.
func (c Config) WindowConfig() hal.WindowConfig {
	return hal.WindowConfig{
		Title:  c.Window.Title,
		Width:  c.Window.Width,
		Height: c.Window.Height,
		TPS:    c.Window.TPS,
	}
}

// HeadlessConfig converts the headless section for hal.RunHeadless.
func (c Config) HeadlessConfig() (hal.HeadlessConfig, error) {
	keys, err := c.Headless.keyEvents()
	if err != nil {
		return hal.HeadlessConfig{}, err
	}
	return hal.HeadlessConfig{
		Hz:       c.Headless.Hz,
		Frames:   c.Headless.Frames,
		Width:    c.Headless.Width,
		Height:   c.Headless.Height,
		Keys:     keys,
		Snapshot: c.Headless.Snapshot,
	}, nil
}

func (h Headless) keyEvents() ([]hal.KeyEvent, error) {
	evs := make([]hal.KeyEvent, 0, len(h.Keys))
	for _, name := range h.Keys {
		code, ok := hal.ParseKey(name)
		if !ok {
			return nil, fmt.Errorf("headless: unknown key %q", name)
		}
		evs = append(evs, hal.KeyEvent{Code: code, Press: true})
	}
	return evs, nil
}
