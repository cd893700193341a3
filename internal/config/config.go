// Package config handles loading and saving application configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/hy4ri/datepick/internal/calendar"
	"gopkg.in/yaml.v3"
)

const appName = "datepick"

// Config represents the application configuration.
type Config struct {
	UI        UIConfig        `yaml:"ui"`
	Picker    PickerConfig    `yaml:"picker"`
	Animation AnimationConfig `yaml:"animation"`
	Haptics   HapticsConfig   `yaml:"haptics"`
	Viewport  ViewportConfig  `yaml:"viewport"`
	Debug     DebugConfig     `yaml:"debug"`
}

// UIConfig holds UI-related settings.
type UIConfig struct {
	VimMode       bool   `yaml:"vim_mode"`
	Title         string `yaml:"title,omitempty"`
	Language      string `yaml:"language,omitempty"` // "en" or "fr"
	CopyOnConfirm bool   `yaml:"copy_on_confirm"`
	ISOOutput     bool   `yaml:"iso_output"`
}

// PickerConfig holds the default selectable range, as M/D/YYYY strings.
type PickerConfig struct {
	MinDate string `yaml:"min_date,omitempty"`
	MaxDate string `yaml:"max_date,omitempty"`
}

// AnimationConfig tunes the selection indicator.
type AnimationConfig struct {
	FPS        int     `yaml:"fps"`
	Frequency  float64 `yaml:"frequency"`
	Damping    float64 `yaml:"damping"`
	FadeMS     int     `yaml:"fade_ms"`
	PulseScale float64 `yaml:"pulse_scale"`
	PulseMS    int     `yaml:"pulse_ms"`
}

// HapticsConfig controls the terminal bell used as haptic feedback.
type HapticsConfig struct {
	Enabled         bool `yaml:"enabled"`
	BellOnSelection bool `yaml:"bell_on_selection"`
}

// ViewportConfig holds the sizes used when the terminal reports nonsense.
type ViewportConfig struct {
	FallbackWidth  int `yaml:"fallback_width"`
	FallbackHeight int `yaml:"fallback_height"`
}

// DebugConfig controls diagnostics output.
type DebugConfig struct {
	LogFile string `yaml:"log_file,omitempty"`
}

// DefaultConfig returns a new Config with default values.
func DefaultConfig() *Config {
	return &Config{
		UI: UIConfig{
			VimMode:  true,
			Language: "en",
		},
		Animation: AnimationConfig{
			FPS:        60,
			Frequency:  8.0,
			Damping:    0.7,
			FadeMS:     150,
			PulseScale: 0.85,
			PulseMS:    80,
		},
		Haptics: HapticsConfig{
			Enabled: true,
		},
		Viewport: ViewportConfig{
			FallbackWidth:  80,
			FallbackHeight: 24,
		},
	}
}

// ConfigDir returns the path to the configuration directory.
// Creates the directory if it doesn't exist.
func ConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	configDir := filepath.Join(homeDir, ".config", appName)
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return configDir, nil
}

// ConfigPath returns the full path to the configuration file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads the configuration from the config file.
// If the file doesn't exist, returns a default configuration.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFile(path)
}

// LoadFile reads the configuration at path, falling back to defaults when
// the file doesn't exist.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to the config file.
func Save(cfg *Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Bounds returns the configured selectable range. Unparsable dates are
// treated as absent.
func (c *Config) Bounds() calendar.Bounds {
	return calendar.NewBounds(c.Picker.MinDate, c.Picker.MaxDate)
}

// FadeDuration returns the indicator fade time.
func (a AnimationConfig) FadeDuration() time.Duration {
	return time.Duration(a.FadeMS) * time.Millisecond
}

// PulseDuration returns the length of the tap pulse dip.
func (a AnimationConfig) PulseDuration() time.Duration {
	return time.Duration(a.PulseMS) * time.Millisecond
}
