package gui

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
)

// Config describes a System's viewport and input settings. It is usually
// loaded from a TOML file:
//
//	[viewport]
//	width = 800
//	height = 600
//	scale = 2
//
//	[scroll]
//	wheel-step = 48
//
//	[log]
//	level = "debug"
//	path = "gui.log"
type Config struct {
	Viewport ViewportConfig `toml:"viewport"`
	Scroll   ScrollConfig   `toml:"scroll"`
	Log      LogConfig      `toml:"log"`
}

// ViewportConfig sets the logical viewport and its mapping to physical pixels.
type ViewportConfig struct {
	Width   float64 `toml:"width"`
	Height  float64 `toml:"height"`
	Scale   float64 `toml:"scale"`
	OffsetX float64 `toml:"offset-x"`
	OffsetY float64 `toml:"offset-y"`
}

// ScrollConfig sets scroll-wheel behavior.
type ScrollConfig struct {
	// WheelStep is the number of logical pixels per wheel notch.
	WheelStep float64 `toml:"wheel-step"`
}

// LogConfig sets debug logging.
type LogConfig struct {
	Level string `toml:"level"`
	Path  string `toml:"path"`
}

// DefaultConfig returns an 800x600 viewport at scale 1.
func DefaultConfig() Config {
	return Config{
		Viewport: ViewportConfig{Width: 800, Height: 600, Scale: 1},
		Scroll:   ScrollConfig{WheelStep: DefaultWheelStep},
		Log:      LogConfig{Level: "info"},
	}
}

// LoadConfig reads a TOML config file. Keys missing from the file keep
// their DefaultConfig values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, WrapError(ErrCodeConfig, err, "read config %s", path)
	}
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Config{}, WrapError(ErrCodeConfig, err, "parse config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, NewError(ErrCodeConfig, "unknown key %q in %s", undecoded[0].String(), path)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that sizes are non-negative, the scale is positive and
// the log level is known.
func (c Config) Validate() error {
	v := c.Viewport
	if v.Width < 0 || v.Height < 0 {
		return NewError(ErrCodeConfig, "negative viewport %vx%v", v.Width, v.Height)
	}
	if v.Scale <= 0 {
		return NewError(ErrCodeConfig, "viewport scale must be positive, got %v", v.Scale)
	}
	if c.Scroll.WheelStep < 0 {
		return NewError(ErrCodeConfig, "negative wheel step %v", c.Scroll.WheelStep)
	}
	if _, err := c.Log.ParseLevel(); err != nil {
		return err
	}
	return nil
}

// ParseLevel returns the configured log level. Empty means info.
func (l LogConfig) ParseLevel() (log.Level, error) {
	if l.Level == "" {
		return log.InfoLevel, nil
	}
	lvl, err := log.ParseLevel(l.Level)
	if err != nil {
		return 0, WrapError(ErrCodeConfig, err, "log level %q", l.Level)
	}
	return lvl, nil
}

func (v ViewportConfig) transform() Transform {
	if v.Scale == 1 && v.OffsetX == 0 && v.OffsetY == 0 {
		return IdentityTransform
	}
	return ScaleTransform{Scale: v.Scale, Offset: Point{X: v.OffsetX, Y: v.OffsetY}}
}
