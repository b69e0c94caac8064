// Package config loads the gallery configuration from defaults, an optional
// YAML file and GALLERY_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gallery/sketch/surface"

	"github.com/spf13/viper"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// Display modes.
const (
	ModeWindow   = "window"
	ModeTerminal = "terminal"
	ModeHeadless = "headless"
)

// EnvPrefix is prepended to environment overrides, e.g. GALLERY_DISPLAY_HZ.
const EnvPrefix = "GALLERY"

type Config struct {
	Logger       LoggerConfig       `mapstructure:"logger" yaml:"logger"`
	Display      DisplayConfig      `mapstructure:"display" yaml:"display"`
	Seed         uint64             `mapstructure:"seed" yaml:"seed"`
	Start        string             `mapstructure:"start" yaml:"start"`
	Intersection IntersectionConfig `mapstructure:"intersection" yaml:"intersection"`
	ClockLines   ClockLinesConfig   `mapstructure:"clocklines" yaml:"clocklines"`
	VectorGrid   VectorGridConfig   `mapstructure:"vectorgrid" yaml:"vectorgrid"`
}

// LoggerConfig holds all the configuration for the logger.
type LoggerConfig struct {
	Level       string `mapstructure:"level" yaml:"level"`
	Format      string `mapstructure:"format" yaml:"format"`
	ServiceName string `mapstructure:"service_name" yaml:"service_name"`
	File        string `mapstructure:"file" yaml:"file"`
	MaxSize     int    `mapstructure:"max_size" yaml:"max_size"`
	MaxBackups  int    `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAge      int    `mapstructure:"max_age" yaml:"max_age"`
	Compress    bool   `mapstructure:"compress" yaml:"compress"`
}

type DisplayConfig struct {
	Mode   string `mapstructure:"mode" yaml:"mode"`
	Width  int    `mapstructure:"width" yaml:"width"`
	Height int    `mapstructure:"height" yaml:"height"`
	// Scale is the initial window scale factor.
	Scale int `mapstructure:"scale" yaml:"scale"`
	Hz    int `mapstructure:"hz" yaml:"hz"`
	// Ticks stops a headless run after this many ticks; 0 runs until interrupted.
	Ticks    uint64 `mapstructure:"ticks" yaml:"ticks"`
	Snapshot string `mapstructure:"snapshot" yaml:"snapshot"`
}

type IntersectionConfig struct {
	SquaresPerRow int `mapstructure:"squares_per_row" yaml:"squares_per_row"`
	// Threshold 0 means the display height.
	Threshold   float64       `mapstructure:"threshold" yaml:"threshold"`
	MinInterval time.Duration `mapstructure:"min_interval" yaml:"min_interval"`
	AnchorX     float64       `mapstructure:"anchor_x" yaml:"anchor_x"`
	AnchorY     float64       `mapstructure:"anchor_y" yaml:"anchor_y"`
	Composite   string        `mapstructure:"composite" yaml:"composite"`
}

type ClockLinesConfig struct {
	Dots         int     `mapstructure:"dots" yaml:"dots"`
	MaxDots      int     `mapstructure:"max_dots" yaml:"max_dots"`
	Radius       float64 `mapstructure:"radius" yaml:"radius"`
	ClockStepDeg float64 `mapstructure:"clock_step_deg" yaml:"clock_step_deg"`
	Offset       float64 `mapstructure:"offset" yaml:"offset"`
	OffsetMax    float64 `mapstructure:"offset_max" yaml:"offset_max"`
	OffsetStep   float64 `mapstructure:"offset_step" yaml:"offset_step"`
}

type VectorGridConfig struct {
	Rows          int     `mapstructure:"rows" yaml:"rows"`
	MaxRows       int     `mapstructure:"max_rows" yaml:"max_rows"`
	Magnitude     float64 `mapstructure:"magnitude" yaml:"magnitude"`
	MagnitudeStep float64 `mapstructure:"magnitude_step" yaml:"magnitude_step"`
	GridSize      float64 `mapstructure:"grid_size" yaml:"grid_size"`
}

// SetDefaults registers a default for every key.
func SetDefaults(v *viper.Viper) {
	// -- Logger --
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.service_name", "gallery")
	v.SetDefault("logger.file", "")
	v.SetDefault("logger.max_size", 10)
	v.SetDefault("logger.max_backups", 3)
	v.SetDefault("logger.max_age", 7)
	v.SetDefault("logger.compress", false)

	// -- Display --
	v.SetDefault("display.mode", ModeWindow)
	v.SetDefault("display.width", 800)
	v.SetDefault("display.height", 800)
	v.SetDefault("display.scale", 1)
	v.SetDefault("display.hz", 60)
	v.SetDefault("display.ticks", 0)
	v.SetDefault("display.snapshot", "")

	v.SetDefault("seed", 0)
	v.SetDefault("start", "/")

	// -- Demos --
	v.SetDefault("intersection.squares_per_row", 10)
	v.SetDefault("intersection.threshold", 0)
	v.SetDefault("intersection.min_interval", "10ms")
	v.SetDefault("intersection.anchor_x", 400)
	v.SetDefault("intersection.anchor_y", 400)
	v.SetDefault("intersection.composite", "darken")

	v.SetDefault("clocklines.dots", 20)
	v.SetDefault("clocklines.max_dots", 100)
	v.SetDefault("clocklines.radius", 200)
	v.SetDefault("clocklines.clock_step_deg", 1)
	v.SetDefault("clocklines.offset", 1)
	v.SetDefault("clocklines.offset_max", 4)
	v.SetDefault("clocklines.offset_step", 0.05)

	v.SetDefault("vectorgrid.rows", 10)
	v.SetDefault("vectorgrid.max_rows", 100)
	v.SetDefault("vectorgrid.magnitude", 0.5)
	v.SetDefault("vectorgrid.magnitude_step", 0.01)
	v.SetDefault("vectorgrid.grid_size", 600)
}

// NewDefaultConfig returns the configuration with only defaults applied.
func NewDefaultConfig() *Config {
	v := viper.New()
	SetDefaults(v)
	cfg, err := NewConfigFromViper(v)
	if err != nil {
		panic(fmt.Sprintf("config: defaults do not validate: %v", err))
	}
	return cfg
}

// Load reads file (or ./gallery.yaml when file is empty) plus environment
// overrides into v, then decodes and validates the result. A missing
// gallery.yaml is not an error; a missing explicit file is.
func Load(v *viper.Viper, file string) (*Config, error) {
	SetDefaults(v)
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("gallery")
		v.SetConfigType("yaml")
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}
	return NewConfigFromViper(v)
}

// NewConfigFromViper decodes and validates v.
func NewConfigFromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks sizes, counts and ranges. Every problem is reported; each
// wraps ErrInvalid.
func (c *Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
		}
	}

	d := c.Display
	switch d.Mode {
	case ModeWindow, ModeTerminal, ModeHeadless:
	default:
		check(false, "display.mode %q must be window, terminal or headless", d.Mode)
	}
	check(d.Width > 0 && d.Height > 0, "display size %dx%d must be positive", d.Width, d.Height)
	check(d.Scale > 0, "display.scale must be positive")
	check(d.Hz > 0, "display.hz must be a positive integer")

	in := c.Intersection
	check(in.SquaresPerRow >= 1, "intersection.squares_per_row must be at least 1")
	check(in.Threshold >= 0, "intersection.threshold must not be negative")
	check(in.MinInterval >= 0, "intersection.min_interval must not be negative")
	if _, ok := surface.ParseComposite(in.Composite); !ok {
		check(false, "intersection.composite %q is not supported", in.Composite)
	}

	cl := c.ClockLines
	check(cl.Dots >= 1 && cl.Dots <= cl.MaxDots, "clocklines.dots must be in [1, max_dots]")
	check(cl.Radius > 0, "clocklines.radius must be positive")
	check(cl.ClockStepDeg != 0, "clocklines.clock_step_deg must not be zero")
	check(cl.OffsetStep > 0, "clocklines.offset_step must be positive")
	check(cl.Offset >= 0 && cl.Offset <= cl.OffsetMax, "clocklines.offset must be in [0, offset_max]")

	vg := c.VectorGrid
	check(vg.Rows >= 1 && vg.Rows <= vg.MaxRows, "vectorgrid.rows must be in [1, max_rows]")
	check(vg.Magnitude >= 0 && vg.Magnitude <= 1, "vectorgrid.magnitude must be in [0, 1]")
	check(vg.MagnitudeStep > 0, "vectorgrid.magnitude_step must be positive")
	check(vg.GridSize > 0 && vg.GridSize <= float64(min(d.Width, d.Height)),
		"vectorgrid.grid_size must be positive and fit the display")

	return errors.Join(errs...)
}
