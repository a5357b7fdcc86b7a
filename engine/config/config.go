// Package config loads the diorama host settings through viper: built-in
// defaults, an optional JSON/YAML/TOML file and DIORAMA_* environment overrides.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Carmen-Shannon/oxy-diorama/engine/animator"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. DIORAMA_WINDOW_WIDTH.
const EnvPrefix = "DIORAMA"

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// WindowConfig holds the window host settings.
type WindowConfig struct {
	Width  int    `mapstructure:"width"`
	Height int    `mapstructure:"height"`
	Title  string `mapstructure:"title"`

	// Resize limits in pixels. The initial size must fall inside them.
	MinWidth  int `mapstructure:"minWidth"`
	MinHeight int `mapstructure:"minHeight"`
	MaxWidth  int `mapstructure:"maxWidth"`
	MaxHeight int `mapstructure:"maxHeight"`
}

// SceneConfig selects the scene description.
type SceneConfig struct {
	// File is a TOML scene description. Empty uses the embedded default island.
	File string `mapstructure:"file"`
}

// AssetsConfig holds the asset loader settings.
type AssetsConfig struct {
	Dir       string `mapstructure:"dir"`
	Workers   int    `mapstructure:"workers"`
	QueueSize int    `mapstructure:"queueSize"`
}

// AnimationConfig holds the animator settings.
type AnimationConfig struct {
	// Step is "fixed" (per-frame increments) or "delta" (scaled by frame time).
	Step string `mapstructure:"step"`
}

// CameraConfig holds the orbit camera settings.
type CameraConfig struct {
	Damping float32 `mapstructure:"damping"`
}

// Config is the full host configuration.
type Config struct {
	LogLevel  string `mapstructure:"logLevel"`
	LogPretty bool   `mapstructure:"logPretty"`
	LogsDir   string `mapstructure:"logsDir"`

	Headless bool `mapstructure:"headless"`
	TickRate int  `mapstructure:"tickRate"`

	Profiling       bool          `mapstructure:"profiling"`
	ProfileInterval time.Duration `mapstructure:"profileInterval"`

	Window    WindowConfig    `mapstructure:"window"`
	Scene     SceneConfig     `mapstructure:"scene"`
	Assets    AssetsConfig    `mapstructure:"assets"`
	Animation AnimationConfig `mapstructure:"animation"`
	Camera    CameraConfig    `mapstructure:"camera"`
}

// setDefaults registers every key so environment overrides reach Unmarshal.
func setDefaults(v *viper.Viper) {
	v.SetDefault("logLevel", "info")
	v.SetDefault("logPretty", true)
	v.SetDefault("logsDir", "")

	v.SetDefault("headless", false)
	v.SetDefault("tickRate", 60)

	v.SetDefault("profiling", false)
	v.SetDefault("profileInterval", "1s")

	v.SetDefault("window.width", 1280)
	v.SetDefault("window.height", 720)
	v.SetDefault("window.title", "Diorama")
	v.SetDefault("window.minWidth", 320)
	v.SetDefault("window.minHeight", 240)
	v.SetDefault("window.maxWidth", 3840)
	v.SetDefault("window.maxHeight", 2160)

	v.SetDefault("scene.file", "")

	v.SetDefault("assets.dir", "assets")
	v.SetDefault("assets.workers", 4)
	v.SetDefault("assets.queueSize", 64)

	v.SetDefault("animation.step", "fixed")

	v.SetDefault("camera.damping", 0.05)
}

// Load reads configuration and validates it.
//
// Parameters:
//   - path: a config file; its extension selects the format. Empty uses defaults and env only.
//
// Returns:
//   - *Config: the loaded configuration
//   - error: error if the file cannot be read or a value is invalid
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (w WindowConfig) validate() error {
	if w.Width <= 0 || w.Height <= 0 {
		return fmt.Errorf("window size %dx%d", w.Width, w.Height)
	}
	if w.MinWidth <= 0 || w.MinHeight <= 0 || w.MinWidth > w.MaxWidth || w.MinHeight > w.MaxHeight {
		return fmt.Errorf("window limits %dx%d to %dx%d", w.MinWidth, w.MinHeight, w.MaxWidth, w.MaxHeight)
	}
	if w.Width < w.MinWidth || w.Width > w.MaxWidth || w.Height < w.MinHeight || w.Height > w.MaxHeight {
		return fmt.Errorf("window size %dx%d outside limits %dx%d to %dx%d",
			w.Width, w.Height, w.MinWidth, w.MinHeight, w.MaxWidth, w.MaxHeight)
	}
	return nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.TickRate <= 0 {
		return fmt.Errorf("%w: tickRate must be positive, got %d", ErrInvalidConfig, c.TickRate)
	}
	if !c.Headless {
		if err := c.Window.validate(); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
	}
	if c.Assets.Workers <= 0 {
		return fmt.Errorf("%w: assets.workers must be positive, got %d", ErrInvalidConfig, c.Assets.Workers)
	}
	if c.Camera.Damping < 0 || c.Camera.Damping > 1 {
		return fmt.Errorf("%w: camera.damping must be in [0, 1], got %g", ErrInvalidConfig, c.Camera.Damping)
	}
	if _, err := c.StepMode(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// StepMode parses Animation.Step.
func (c *Config) StepMode() (animator.StepMode, error) {
	return animator.ParseStepMode(c.Animation.Step)
}

// TickInterval is the headless frame period derived from TickRate.
func (c *Config) TickInterval() time.Duration {
	if c.TickRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.TickRate)
}
