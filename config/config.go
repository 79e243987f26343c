// Package config loads dxinfo and application settings from TOML.
//
//	[debug]
//	layer = true
//
//	[adapter]
//	warp = false
//	feature_level = "11_0"
//
//	[swapchain]
//	format = "R8G8B8A8_UNORM"
//	buffers = 2
//	swap_effect = "flip_discard"
//	alpha_mode = "unspecified"
//	sync_interval = 1
//
//	[log]
//	level = "info"
package config

import (
	"log/slog"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	dx "github.com/andewx/dieseldx"
)

type Config struct {
	Debug     Debug     `toml:"debug"`
	Adapter   Adapter   `toml:"adapter"`
	Swapchain Swapchain `toml:"swapchain"`
	Log       Log       `toml:"log"`
}

type Debug struct {
	// Layer enables the D3D12 debug layer and a debug DXGI factory.
	Layer bool `toml:"layer"`
}

type Adapter struct {
	Warp         bool   `toml:"warp"`
	Index        int    `toml:"index"`
	FeatureLevel string `toml:"feature_level"`
}

type Swapchain struct {
	Format       string `toml:"format"`
	Buffers      uint32 `toml:"buffers"`
	SwapEffect   string `toml:"swap_effect"`
	AlphaMode    string `toml:"alpha_mode"`
	SyncInterval uint32 `toml:"sync_interval"`
}

type Log struct {
	Level string `toml:"level"`
}

func Default() *Config {
	return &Config{
		Adapter: Adapter{FeatureLevel: "11_0"},
		Swapchain: Swapchain{
			Format:       "R8G8B8A8_UNORM",
			Buffers:      2,
			SwapEffect:   "flip_discard",
			AlphaMode:    "unspecified",
			SyncInterval: 1,
		},
		Log: Log{Level: "info"},
	}
}

// Load reads path over the defaults. Keys missing from the file keep their
// default values; unknown keys are an error.
func Load(path string) (*Config, error) {
	fp, err := os.Open(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer fp.Close()

	c := Default()
	md, err := toml.NewDecoder(fp).Decode(c)
	if err != nil {
		return nil, errors.Wrapf(err, "config: decode %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.Errorf("config: unknown keys in %s: %s", path, strings.Join(keys, ", "))
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks every enum name and count.
func (c *Config) Validate() error {
	if _, err := c.FeatureLevel(); err != nil {
		return err
	}
	if _, err := c.Format(); err != nil {
		return err
	}
	if _, err := c.SwapEffect(); err != nil {
		return err
	}
	if _, err := c.AlphaMode(); err != nil {
		return err
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	if c.Swapchain.Buffers < 2 || c.Swapchain.Buffers > 16 {
		return errors.Errorf("config: swapchain.buffers must be in [2, 16], got %d", c.Swapchain.Buffers)
	}
	if c.Swapchain.SyncInterval > 4 {
		return errors.Errorf("config: swapchain.sync_interval must be at most 4, got %d", c.Swapchain.SyncInterval)
	}
	if c.Adapter.Index < 0 {
		return errors.Errorf("config: adapter.index must not be negative")
	}
	return nil
}

func (c *Config) FeatureLevel() (dx.FeatureLevel, error) {
	l, err := dx.ParseFeatureLevel(c.Adapter.FeatureLevel)
	return l, errors.WithStack(err)
}

func (c *Config) Format() (dx.Format, error) {
	f, err := dx.ParseFormat(c.Swapchain.Format)
	return f, errors.WithStack(err)
}

var swapEffects = map[string]dx.SwapEffect{
	"discard":         dx.SwapEffectDiscard,
	"sequential":      dx.SwapEffectSequential,
	"flip_discard":    dx.SwapEffectFlipDiscard,
	"flip_sequential": dx.SwapEffectFlipSequential,
}

func (c *Config) SwapEffect() (dx.SwapEffect, error) {
	e, ok := swapEffects[normalize(c.Swapchain.SwapEffect)]
	if !ok {
		return 0, errors.Errorf("config: unknown swap effect %q", c.Swapchain.SwapEffect)
	}
	return e, nil
}

var alphaModes = map[string]dx.AlphaMode{
	"unspecified":   dx.AlphaModeUnspecified,
	"premultiplied": dx.AlphaModePremultiplied,
	"straight":      dx.AlphaModeStraight,
	"ignore":        dx.AlphaModeIgnore,
}

func (c *Config) AlphaMode() (dx.AlphaMode, error) {
	a, ok := alphaModes[normalize(c.Swapchain.AlphaMode)]
	if !ok {
		return 0, errors.Errorf("config: unknown alpha mode %q", c.Swapchain.AlphaMode)
	}
	return a, nil
}

func (c *Config) LogLevel() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return 0, errors.Wrap(err, "config: log.level")
	}
	return l, nil
}

// SwapchainDesc builds a swap chain description for a width x height
// window. Call Validate first; invalid names fall back to the defaults.
func (c *Config) SwapchainDesc(width, height uint32) dx.SwapchainDesc {
	d := dx.DefaultSwapchainDesc(width, height)
	if f, err := c.Format(); err == nil {
		d.Format = f
	}
	if e, err := c.SwapEffect(); err == nil {
		d.SwapEffect = e
	}
	if a, err := c.AlphaMode(); err == nil {
		d.AlphaMode = a
	}
	if c.Swapchain.Buffers != 0 {
		d.BufferCount = c.Swapchain.Buffers
	}
	return d
}

func normalize(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
}
