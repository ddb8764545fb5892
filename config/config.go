// Package config loads engine and demo settings from defaults, an optional
// yaml file and PIXTERM_* environment variables, in increasing priority.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/pixterm/terminal"
)

const (
	defColorMode  = ColorAuto
	defFPS        = 30
	defLogDir     = "logs"
	defSampleRate = 44100

	maxFPS = 240

	EnvVarPrefix = "PIXTERM"
)

// Color mode names accepted in files, env and flags
const (
	ColorAuto      = "auto"
	ColorTrueColor = "truecolor"
	Color256       = "256"
)

var ErrInvalid = errors.New("invalid configuration")

var replacer = strings.NewReplacer(".", "_")

type Config struct {
	ColorMode string `mapstructure:"color_mode" yaml:"color_mode"`
	FPS       int    `mapstructure:"fps" yaml:"fps"`
	Mouse     bool   `mapstructure:"mouse" yaml:"mouse"`
	PixelMode bool   `mapstructure:"pixel_mode" yaml:"pixel_mode"`
	Signals   bool   `mapstructure:"signals" yaml:"signals"`
	Debug     bool   `mapstructure:"debug" yaml:"debug"`
	LogDir    string `mapstructure:"log_dir" yaml:"log_dir"`
	Tone      Tone   `mapstructure:"tone" yaml:"tone"`
}

type Tone struct {
	Enabled    bool `mapstructure:"enabled" yaml:"enabled"`
	SampleRate int  `mapstructure:"sample_rate" yaml:"sample_rate"`
}

func DefaultConfig() *Config {
	return &Config{
		ColorMode: defColorMode,
		FPS:       defFPS,
		Mouse:     true,
		PixelMode: false,
		Signals:   true,
		Debug:     false,
		LogDir:    defLogDir,
		Tone: Tone{
			Enabled:    true,
			SampleRate: defSampleRate,
		},
	}
}

// Load merges the defaults, the file at path (skipped when empty) and the
// environment, then validates the result
func Load(path string) (*Config, error) {
	v := viper.New()

	// Viper only overrides keys it already knows, so seed it with every default
	b, err := yaml.Marshal(DefaultConfig())
	if err != nil {
		return nil, err
	}
	v.SetConfigType("yaml")
	if err := v.MergeConfig(bytes.NewReader(b)); err != nil {
		return nil, err
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.MergeInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	v.SetEnvPrefix(EnvVarPrefix)
	v.SetEnvKeyReplacer(replacer)
	v.AutomaticEnv()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects values the engine cannot honour
func (c *Config) Validate() error {
	switch c.ColorMode {
	case ColorAuto, ColorTrueColor, Color256:
	default:
		return fmt.Errorf("%w: color_mode %q (want auto, truecolor or 256)", ErrInvalid, c.ColorMode)
	}
	if c.FPS < 1 || c.FPS > maxFPS {
		return fmt.Errorf("%w: fps %d (want 1-%d)", ErrInvalid, c.FPS, maxFPS)
	}
	if c.Debug && c.LogDir == "" {
		return fmt.Errorf("%w: log_dir is required with debug", ErrInvalid)
	}
	if c.Tone.Enabled && (c.Tone.SampleRate < 8000 || c.Tone.SampleRate > 192000) {
		return fmt.Errorf("%w: tone.sample_rate %d", ErrInvalid, c.Tone.SampleRate)
	}
	return nil
}

// ParseColorMode resolves a color mode name; auto detects from the environment
func ParseColorMode(name string) (terminal.ColorMode, error) {
	switch name {
	case ColorAuto, "":
		return terminal.DetectColorMode(), nil
	case ColorTrueColor, "true", "24bit":
		return terminal.ColorModeTrueColor, nil
	case Color256:
		return terminal.ColorMode256, nil
	}
	return 0, fmt.Errorf("%w: color mode %q", ErrInvalid, name)
}

// TerminalColorMode resolves the configured color mode
func (c *Config) TerminalColorMode() terminal.ColorMode {
	m, err := ParseColorMode(c.ColorMode)
	if err != nil {
		return terminal.DetectColorMode()
	}
	return m
}
