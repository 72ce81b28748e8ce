package reassemble

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config is the TOML-backed configuration of a puzzle session and the example
// applications. Times are in seconds.
type Config struct {
	Puzzle  PuzzleConfig  `toml:"puzzle"`
	Intro   IntroConfig   `toml:"intro"`
	Effects EffectsConfig `toml:"effects"`
	Input   InputConfig   `toml:"input"`
	Window  WindowConfig  `toml:"window"`
	Logging LoggingConfig `toml:"logging"`
}

type PuzzleConfig struct {
	Parts         []string `toml:"parts"`
	OffsetsFile   string   `toml:"offsets_file"` // YAML offset table; empty = built-in
	MoveSpeed     float64  `toml:"move_speed"`   // explode progress per second
	SnapDistance  float64  `toml:"snap_distance"`
	ExplodeDelay  float64  `toml:"explode_delay"`
	DragSmoothing float64  `toml:"drag_smoothing"` // per-tick blend toward the drag target
	RotateFactor  float64  `toml:"rotate_factor"`  // yaw degrees per pixel of two-finger swipe
	PickRadius    float64  `toml:"pick_radius"`
}

type IntroConfig struct {
	HintText         string  `toml:"hint_text"`
	HintHideAfter    float64 `toml:"hint_hide_after"`
	HintFadeAfter    float64 `toml:"hint_fade_after"`
	HintFadeDuration float64 `toml:"hint_fade_duration"`
	PanelHideAfter   float64 `toml:"panel_hide_after"`
}

type EffectsConfig struct {
	ConfettiDuration float64 `toml:"confetti_duration"`
	Audio            bool    `toml:"audio"`
	SampleRate       int     `toml:"sample_rate"`
	Volume           float64 `toml:"volume"` // 0.0-1.0
}

type InputConfig struct {
	Source InputKind `toml:"source"` // "auto", "mouse" or "touch"
}

type WindowConfig struct {
	Title  string `toml:"title"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

// Load reads a TOML file over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := defaults()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// DefaultConfig returns the reference configuration.
func DefaultConfig() *Config {
	return defaults()
}

// Validate rejects settings the puzzle cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if len(c.Puzzle.Parts) == 0 {
		errs = append(errs, errors.New("puzzle.parts is empty"))
	}
	if c.Puzzle.MoveSpeed <= 0 {
		errs = append(errs, fmt.Errorf("puzzle.move_speed must be positive, got %v", c.Puzzle.MoveSpeed))
	}
	if c.Puzzle.SnapDistance <= 0 {
		errs = append(errs, fmt.Errorf("puzzle.snap_distance must be positive, got %v", c.Puzzle.SnapDistance))
	}
	if c.Puzzle.DragSmoothing <= 0 || c.Puzzle.DragSmoothing > 1 {
		errs = append(errs, fmt.Errorf("puzzle.drag_smoothing must be in (0, 1], got %v", c.Puzzle.DragSmoothing))
	}
	if c.Intro.HintFadeDuration <= 0 {
		errs = append(errs, fmt.Errorf("intro.hint_fade_duration must be positive, got %v", c.Intro.HintFadeDuration))
	}
	return errors.Join(errs...)
}

// IntroTiming converts the intro section.
func (c *Config) IntroTiming() IntroTiming {
	return IntroTiming{
		HintText:         c.Intro.HintText,
		HintHideAfter:    c.Intro.HintHideAfter,
		HintFadeAfter:    c.Intro.HintFadeAfter,
		HintFadeDuration: c.Intro.HintFadeDuration,
		PanelHideAfter:   c.Intro.PanelHideAfter,
	}
}

// Offsets returns the configured offset table.
func (c *Config) Offsets() (*OffsetTable, error) {
	if c.Puzzle.OffsetsFile == "" {
		return DefaultOffsetTable(), nil
	}
	return LoadOffsetTable(c.Puzzle.OffsetsFile)
}

func defaults() *Config {
	intro := DefaultIntroTiming()
	return &Config{
		Puzzle: PuzzleConfig{
			Parts:         append([]string(nil), ReferencePartNames...),
			MoveSpeed:     defaultMoveSpeed,
			SnapDistance:  defaultSnapDistance,
			ExplodeDelay:  defaultExplodeDelay,
			DragSmoothing: defaultDragSmoothing,
			RotateFactor:  defaultRotateFactor,
			PickRadius:    defaultPickRadius,
		},
		Intro: IntroConfig{
			HintText:         intro.HintText,
			HintHideAfter:    intro.HintHideAfter,
			HintFadeAfter:    intro.HintFadeAfter,
			HintFadeDuration: intro.HintFadeDuration,
			PanelHideAfter:   intro.PanelHideAfter,
		},
		Effects: EffectsConfig{
			ConfettiDuration: defaultConfettiLength,
			Audio:            true,
			SampleRate:       44100,
			Volume:           0.5,
		},
		Input: InputConfig{
			Source: InputAuto,
		},
		Window: WindowConfig{
			Title:  "Rescue Robot",
			Width:  960,
			Height: 640,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
