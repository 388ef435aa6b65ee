package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/adrg/xdg"

	"github.com/depeter/snapsheet/internal/panel"
)

const appName = "snapsheet"

type Config struct {
	Panel    PanelConfig   `toml:"panel"`
	UI       UIConfig      `toml:"ui"`
	Keybinds KeybindConfig `toml:"keybinds"`
}

type PanelConfig struct {
	Sensitivity    float64 `toml:"sensitivity"`
	SnapDurationMS int     `toml:"snap_duration_ms"`
	ShortRatio     float64 `toml:"short_ratio"`
	FadeFraction   float64 `toml:"fade_fraction"`
	CornerRadius   float64 `toml:"corner_radius"`
	HeaderHeight   float64 `toml:"header_height"`
	StartPosition  string  `toml:"start_position"` // where the panel goes when shown
	Title          string  `toml:"title"`
}

type UIConfig struct {
	Fullscreen          bool    `toml:"fullscreen"`
	Width               int     `toml:"width"`
	Height              int     `toml:"height"`
	StatusBarHeight     float64 `toml:"status_bar_height"`
	HomeIndicatorHeight float64 `toml:"home_indicator_height"`
}

type KeybindConfig struct {
	SnapUp        string `toml:"snap_up"`
	SnapDown      string `toml:"snap_down"`
	ToggleEnabled string `toml:"toggle_enabled"`
	ShowPanel     string `toml:"show_panel"`
	Fullscreen    string `toml:"fullscreen"`
}

func DefaultConfig() *Config {
	return &Config{
		Panel: PanelConfig{
			Sensitivity:    panel.DefaultSensitivity,
			SnapDurationMS: int(panel.DefaultSnapDuration / time.Millisecond),
			ShortRatio:     panel.DefaultShortRatio,
			FadeFraction:   panel.DefaultFadeFraction,
			CornerRadius:   20,
			HeaderHeight:   88,
			StartPosition:  "short",
			Title:          "Nearby",
		},
		UI: UIConfig{
			Fullscreen:          false,
			Width:               430,
			Height:              932,
			StatusBarHeight:     47,
			HomeIndicatorHeight: 34,
		},
		Keybinds: KeybindConfig{
			SnapUp:        "Up",
			SnapDown:      "Down",
			ToggleEnabled: "E",
			ShowPanel:     "Space",
			Fullscreen:    "F",
		},
	}
}

// Validate reports the first setting that cannot drive the panel.
func (c *Config) Validate() error {
	p := c.Panel
	switch {
	case p.Sensitivity < 0 || p.Sensitivity > 1:
		return fmt.Errorf("panel.sensitivity %v outside [0, 1]", p.Sensitivity)
	case p.SnapDurationMS <= 0:
		return fmt.Errorf("panel.snap_duration_ms must be positive, got %d", p.SnapDurationMS)
	case p.ShortRatio <= 0 || p.ShortRatio >= 1:
		return fmt.Errorf("panel.short_ratio %v outside (0, 1)", p.ShortRatio)
	case p.FadeFraction <= 0 || p.FadeFraction > 1:
		return fmt.Errorf("panel.fade_fraction %v outside (0, 1]", p.FadeFraction)
	case p.HeaderHeight <= 0:
		return fmt.Errorf("panel.header_height must be positive, got %v", p.HeaderHeight)
	case c.UI.Width <= 0 || c.UI.Height <= 0:
		return fmt.Errorf("ui size %dx%d must be positive", c.UI.Width, c.UI.Height)
	}
	if _, err := panel.ParseSnapPosition(p.StartPosition); err != nil {
		return fmt.Errorf("panel.start_position: %w", err)
	}
	return nil
}

// PanelOptions converts the panel section to controller options.
func (c *Config) PanelOptions() panel.Options {
	return panel.Options{
		Sensitivity:  c.Panel.Sensitivity,
		SnapDuration: time.Duration(c.Panel.SnapDurationMS) * time.Millisecond,
		ShortRatio:   c.Panel.ShortRatio,
		FadeFraction: c.Panel.FadeFraction,
	}
}

// StartPosition returns the snap position used when the panel is shown.
// Validate guarantees the name parses.
func (c *Config) StartPosition() panel.SnapPosition {
	pos, err := panel.ParseSnapPosition(c.Panel.StartPosition)
	if err != nil {
		return panel.Short
	}
	return pos
}

func ConfigDir() string {
	return filepath.Join(xdg.ConfigHome, appName)
}

func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// Load reads the config file, falling back to defaults when it does not exist.
func Load() (*Config, error) {
	return LoadFile(ConfigPath())
}

func LoadFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) Save() error {
	return c.SaveFile(ConfigPath())
}

func (c *Config) SaveFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(c)
}
