// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package config layers a TOML file and BREAKOUT_* environment variables over
// breakout.DefaultConfig.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/pelletier/go-toml/v2"

	"github.com/gogpu/breakout"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Load returns the default configuration overlaid by the TOML file at path,
// when path is not empty, and then by environment variables. The result is
// validated. Relative level paths in the file resolve against its directory.
func Load(path string) (breakout.Config, error) {
	cfg := breakout.DefaultConfig()

	if path != "" {
		f, err := os.Open(filepath.Clean(path))
		if err != nil {
			return cfg, fmt.Errorf("open config: %w", err)
		}
		defer func() { _ = f.Close() }()

		defaults := cfg.Levels
		cfg.Levels = nil
		if err := DecodeTOML(f, &cfg); err != nil {
			return cfg, fmt.Errorf("%s: %w", path, err)
		}
		if cfg.Levels == nil {
			cfg.Levels = defaults
		} else {
			cfg.Levels = resolve(filepath.Dir(path), cfg.Levels)
		}
	}

	if err := ParseEnv(&cfg); err != nil {
		return cfg, err
	}
	if err := Validate(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func resolve(dir string, paths []string) []string {
	out := make([]string, len(paths))
	for i, p := range paths {
		if filepath.IsAbs(p) {
			out[i] = p
			continue
		}
		out[i] = filepath.Join(dir, p)
	}
	return out
}

// DecodeTOML decodes r into target, rejecting keys target does not define.
func DecodeTOML(r io.Reader, target any) error {
	if err := toml.NewDecoder(r).DisallowUnknownFields().Decode(target); err != nil {
		return fmt.Errorf("decode toml: %w", err)
	}
	return nil
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Validate rejects configurations the game cannot run with.
func Validate(cfg breakout.Config) error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
		}
	}

	check(cfg.Width > 0 && cfg.Height > 0, "field size %vx%v", cfg.Width, cfg.Height)
	check(cfg.PaddleWidth > 0 && cfg.PaddleHeight > 0, "paddle size %vx%v", cfg.PaddleWidth, cfg.PaddleHeight)
	check(cfg.PaddleWidth <= cfg.Width, "paddle width %v exceeds field width %v", cfg.PaddleWidth, cfg.Width)
	check(cfg.PaddleVelocity >= 0, "paddle velocity %v", cfg.PaddleVelocity)
	check(cfg.BallRadius > 0, "ball radius %v", cfg.BallRadius)
	check(2*cfg.BallRadius < cfg.Width, "ball diameter %v does not fit field width %v", 2*cfg.BallRadius, cfg.Width)
	check(cfg.Lives > 0, "lives %d", cfg.Lives)
	check(cfg.Particles >= 0, "particles %d", cfg.Particles)
	check(cfg.PowerUpWidth > 0 && cfg.PowerUpHeight > 0, "power-up size %vx%v", cfg.PowerUpWidth, cfg.PowerUpHeight)
	check(cfg.GoodChance >= 0 && cfg.BadChance >= 0, "power-up chances %d/%d", cfg.GoodChance, cfg.BadChance)
	check(cfg.ShakeTime >= 0, "shake time %v", cfg.ShakeTime)

	return errors.Join(errs...)
}
