package config

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"slices"

	"github.com/yohamta/donburi/ecs"
)

// Range is an inclusive integer range
type Range struct {
	Min int
	Max int
}

// Normalize swaps the bounds when they are given in the wrong order
func (r Range) Normalize() Range {
	if r.Max < r.Min {
		r.Min, r.Max = r.Max, r.Min
	}
	return r
}

// FloatRange is an inclusive range of radians
type FloatRange struct {
	Min float64
	Max float64
}

func (r FloatRange) Normalize() FloatRange {
	if r.Max < r.Min {
		r.Min, r.Max = r.Max, r.Min
	}
	return r
}

// Config holds everything one spiral scene needs. It is resolved once per scene and
// never shared: Default and Overrides.Apply always return fresh palette slices.
type Config struct {
	// Stars
	StarCount         Range      // stars per spawned cluster
	StarSize          Range      // glyph size in pixels
	StarSpeed         Range      // radius growth per radian
	StarRotationLimit FloatRange // radians travelled before a star expires
	StarColors        []color.RGBA
	StarGlyph         rune
	StarScaleInTicks  int // 0 disables the grow-in tween

	// Trail
	TrailCount      int
	TrailSize       int
	TrailAlphaBegin float64
	TrailAlphaDecay float64 // added to alpha every tick, negative to fade out
	TrailColors     []color.RGBA
	TrailGlyph      rune

	// Scheduling
	SpawnInterval Range   // ticks between automatic spawns
	AngularStep   float64 // radians added to every star per tick
	TimeScaled    bool    // scale AngularStep by elapsed wall-clock time

	BackgroundColor color.RGBA
}

// WindowConfig holds the host window size
type WindowConfig struct {
	Width  int
	Height int
	Title  string
}

var (
	ErrEmptyPalette     = errors.New("palette must contain at least one color")
	ErrInvalidTrail     = errors.New("trail particle count must be at least 1")
	ErrInvalidStarCount = errors.New("star count must be at least 1")
	ErrInvalidInterval  = errors.New("spawn interval must be at least 1 tick")
	ErrInvalidStep      = errors.New("angular step must be positive")
)

// Render layers, drawn in order
const (
	LayerBackground ecs.LayerID = iota
	LayerTrail
	LayerStars
)

// Glyphs used when the configuration does not name one
const (
	DefaultStarGlyph  = '★'
	DefaultTrailGlyph = '●'
)

// Shared RGBA color constants
var (
	DeepPink      = color.RGBA{R: 0xff, G: 0x14, B: 0x93, A: 0xff}
	Orange        = color.RGBA{R: 0xff, G: 0xa5, B: 0x00, A: 0xff}
	Aquamarine    = color.RGBA{R: 0x7f, G: 0xff, B: 0xd4, A: 0xff}
	DarkOlive     = color.RGBA{R: 0x55, G: 0x6b, B: 0x2f, A: 0xff}
	RoyalBlue     = color.RGBA{R: 0x41, G: 0x69, B: 0xe1, A: 0xff}
	SlateGray     = color.RGBA{R: 0x77, G: 0x88, B: 0x99, A: 0xff}
	Goldenrod     = color.RGBA{R: 0xda, G: 0xa5, B: 0x20, A: 0xff}
	PaleYellow    = color.RGBA{R: 0xff, G: 0xff, B: 0x88, A: 0xff}
	MidnightBlue  = color.RGBA{R: 0x19, G: 0x19, B: 0x70, A: 0xff}
	defaultStars  = []color.RGBA{DeepPink, Orange, Aquamarine, DarkOlive, RoyalBlue, SlateGray, Goldenrod}
	defaultTrails = []color.RGBA{PaleYellow}
)

// Window is the default host window
var Window = WindowConfig{
	Width:  960,
	Height: 540,
	Title:  "spiralstar",
}

// Default returns the stock configuration
func Default() Config {
	return Config{
		StarCount:         Range{Min: 3, Max: 6},
		StarSize:          Range{Min: 10, Max: 80},
		StarSpeed:         Range{Min: 5, Max: 15},
		StarRotationLimit: FloatRange{Min: 2 * math.Pi, Max: 2 * math.Pi * 9},
		StarColors:        slices.Clone(defaultStars),
		StarGlyph:         DefaultStarGlyph,

		TrailCount:      128,
		TrailSize:       50,
		TrailAlphaBegin: 1,
		TrailAlphaDecay: -0.08,
		TrailColors:     slices.Clone(defaultTrails),
		TrailGlyph:      DefaultTrailGlyph,

		SpawnInterval: Range{Min: 100, Max: 150},
		AngularStep:   0.1,

		BackgroundColor: MidnightBlue,
	}
}

// Normalize returns a copy with every range in ascending order
func (c Config) Normalize() Config {
	c.StarCount = c.StarCount.Normalize()
	c.StarSize = c.StarSize.Normalize()
	c.StarSpeed = c.StarSpeed.Normalize()
	c.StarRotationLimit = c.StarRotationLimit.Normalize()
	c.SpawnInterval = c.SpawnInterval.Normalize()
	return c
}

// Validate reports configurations the simulation cannot run with
func (c Config) Validate() error {
	if len(c.StarColors) == 0 {
		return fmt.Errorf("star colors: %w", ErrEmptyPalette)
	}
	if len(c.TrailColors) == 0 {
		return fmt.Errorf("trail colors: %w", ErrEmptyPalette)
	}
	if c.TrailCount < 1 {
		return ErrInvalidTrail
	}
	if c.StarCount.Min < 1 {
		return ErrInvalidStarCount
	}
	if c.SpawnInterval.Min < 1 {
		return ErrInvalidInterval
	}
	if c.AngularStep <= 0 {
		return ErrInvalidStep
	}
	return nil
}

// Resolve merges overrides over the defaults, normalizes ranges and validates the result
func Resolve(o Overrides) (Config, error) {
	c := o.Apply(Default()).Normalize()
	if err := c.Validate(); err != nil {
		return Config{}, fmt.Errorf("resolve config: %w", err)
	}
	return c, nil
}
