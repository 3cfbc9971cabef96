// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package config loads application settings for sketch programs.
//
// Settings come from three layers, later ones winning: [Default], an
// optional TOML file, and SKETCH_* environment variables:
//
//	title = "bouncing"
//	width = 800
//	height = 600
//	background = "#202020"
//	repaint_interval = "16ms"
//	rasterizer = "analytic"
//	log_level = "debug"
//
// SKETCH_WIDTH=1024 then overrides the file's width.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gogpu/gg"
	"github.com/kelseyhightower/envconfig"
	"github.com/pelletier/go-toml/v2"

	"github.com/gogpu/sketch"
	"github.com/gogpu/sketch/app"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "SKETCH"

// ErrInvalid is matched by every validation error.
var ErrInvalid = errors.New("config: invalid")

// Config holds application settings.
type Config struct {
	Title           string     `toml:"title" envconfig:"TITLE"`
	Width           int        `toml:"width" envconfig:"WIDTH"`
	Height          int        `toml:"height" envconfig:"HEIGHT"`
	Fullscreen      bool       `toml:"fullscreen" envconfig:"FULLSCREEN"`
	Background      string     `toml:"background" envconfig:"BACKGROUND"`
	RepaintInterval Duration   `toml:"repaint_interval" envconfig:"REPAINT_INTERVAL"`
	Rasterizer      string     `toml:"rasterizer" envconfig:"RASTERIZER"`
	LogLevel        slog.Level `toml:"log_level" envconfig:"LOG_LEVEL"`
}

// Duration is a time.Duration written as a Go duration string ("10ms").
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Title:           "sketch",
		Width:           sketch.DefaultWidth,
		Height:          sketch.DefaultHeight,
		Background:      "#ffffff",
		RepaintInterval: Duration(app.DefaultRepaintInterval),
		Rasterizer:      "auto",
		LogLevel:        slog.LevelInfo,
	}
}

// Load reads path over the defaults, applies environment overrides and
// validates the result. An empty path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return cfg, fmt.Errorf("config: %w", err)
		}
		err = Decode(f, &cfg)
		f.Close()
		if err != nil {
			return cfg, fmt.Errorf("config: %s: %w", path, err)
		}
	}
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return cfg, fmt.Errorf("config: environment: %w", err)
	}
	return cfg, cfg.Validate()
}

// Decode reads TOML from r into cfg, keeping fields r does not set.
// Unknown keys are an error.
func Decode(r io.Reader, cfg *Config) error {
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	return dec.Decode(cfg)
}

// Encode writes cfg as TOML.
func Encode(w io.Writer, cfg Config) error {
	return toml.NewEncoder(w).Encode(cfg)
}

var rasterizers = map[string]gg.RasterizerMode{
	"auto":         gg.RasterizerAuto,
	"analytic":     gg.RasterizerAnalytic,
	"sparsestrips": gg.RasterizerSparseStrips,
	"tilecompute":  gg.RasterizerTileCompute,
	"sdf":          gg.RasterizerSDF,
}

// RasterizerMode returns the gg rasterizer named by Rasterizer. Names are
// case-insensitive; unknown names report false.
func (c Config) RasterizerMode() (gg.RasterizerMode, bool) {
	m, ok := rasterizers[strings.ToLower(c.Rasterizer)]
	return m, ok
}

// BackgroundColor parses Background.
func (c Config) BackgroundColor() (gg.RGBA, error) {
	s := strings.TrimPrefix(c.Background, "#")
	switch len(s) {
	case 3, 4, 6, 8:
	default:
		return gg.RGBA{}, fmt.Errorf("%w: background %q: want #rgb, #rgba, #rrggbb or #rrggbbaa", ErrInvalid, c.Background)
	}
	if _, err := strconv.ParseUint(s, 16, 32); err != nil {
		return gg.RGBA{}, fmt.Errorf("%w: background %q: not hex", ErrInvalid, c.Background)
	}
	return gg.Hex(s), nil
}

// Validate reports every invalid setting.
func (c Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("%w: size %dx%d", ErrInvalid, c.Width, c.Height))
	}
	if _, err := c.BackgroundColor(); err != nil {
		errs = append(errs, err)
	}
	if c.RepaintInterval <= 0 {
		errs = append(errs, fmt.Errorf("%w: repaint_interval %v", ErrInvalid, time.Duration(c.RepaintInterval)))
	}
	if _, ok := c.RasterizerMode(); !ok {
		errs = append(errs, fmt.Errorf("%w: rasterizer %q", ErrInvalid, c.Rasterizer))
	}
	return errors.Join(errs...)
}

// SceneOptions adapts the settings to scene options. Invalid settings are
// left out so the scene keeps its defaults.
func (c Config) SceneOptions() []sketch.SceneOption {
	opts := []sketch.SceneOption{sketch.WithSize(c.Width, c.Height)}
	if bg, err := c.BackgroundColor(); err == nil {
		opts = append(opts, sketch.WithBackground(bg))
	}
	if m, ok := c.RasterizerMode(); ok {
		opts = append(opts, sketch.WithRasterizerMode(m))
	}
	return opts
}

// AppOptions adapts the settings to app options, including a headless
// host of the configured size.
func (c Config) AppOptions() []app.Option {
	return []app.Option{
		app.WithHost(app.NewOffscreen(c.Width, c.Height)),
		app.WithSceneOptions(c.SceneOptions()...),
		app.WithRepaintInterval(time.Duration(c.RepaintInterval)),
		app.WithTitle(c.Title),
		app.WithFullscreen(c.Fullscreen),
	}
}

// Logger returns a text logger writing to w at LogLevel.
func (c Config) Logger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: c.LogLevel}))
}
