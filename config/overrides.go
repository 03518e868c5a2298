package config

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// Overrides is a partial Config as supplied by the caller. Nil fields keep the base value.
type Overrides struct {
	StarCountMin         *int     `yaml:"starCountMin,omitempty"`
	StarCountMax         *int     `yaml:"starCountMax,omitempty"`
	StarSizeMin          *int     `yaml:"starSizeMin,omitempty"`
	StarSizeMax          *int     `yaml:"starSizeMax,omitempty"`
	StarSpeedMin         *int     `yaml:"starSpeedMin,omitempty"`
	StarSpeedMax         *int     `yaml:"starSpeedMax,omitempty"`
	StarRotationLimitMin *float64 `yaml:"starRotationLimitMin,omitempty"`
	StarRotationLimitMax *float64 `yaml:"starRotationLimitMax,omitempty"`
	StarColors           []Color  `yaml:"starColors,omitempty"`
	StarGlyph            *Glyph   `yaml:"starGlyph,omitempty"`
	StarScaleInTicks     *int     `yaml:"starScaleInTicks,omitempty"`

	TrailCount      *int     `yaml:"trailCount,omitempty"`
	TrailSize       *int     `yaml:"trailSize,omitempty"`
	TrailAlphaBegin *float64 `yaml:"trailAlphaBegin,omitempty"`
	TrailAlphaDecay *float64 `yaml:"trailAlphaDecay,omitempty"`
	TrailColors     []Color  `yaml:"trailColors,omitempty"`
	TrailGlyph      *Glyph   `yaml:"trailGlyph,omitempty"`

	SpawnIntervalMin *int     `yaml:"spawnIntervalMin,omitempty"`
	SpawnIntervalMax *int     `yaml:"spawnIntervalMax,omitempty"`
	AngularStep      *float64 `yaml:"angularStep,omitempty"`
	TimeScaled       *bool    `yaml:"timeScaled,omitempty"`

	BackgroundColor *Color `yaml:"backgroundColor,omitempty"`
}

// Apply returns base with every set field replaced. Palettes are copied so the
// result never aliases either input.
func (o Overrides) Apply(base Config) Config {
	c := base
	setInt(&c.StarCount.Min, o.StarCountMin)
	setInt(&c.StarCount.Max, o.StarCountMax)
	setInt(&c.StarSize.Min, o.StarSizeMin)
	setInt(&c.StarSize.Max, o.StarSizeMax)
	setInt(&c.StarSpeed.Min, o.StarSpeedMin)
	setInt(&c.StarSpeed.Max, o.StarSpeedMax)
	setFloat(&c.StarRotationLimit.Min, o.StarRotationLimitMin)
	setFloat(&c.StarRotationLimit.Max, o.StarRotationLimitMax)
	c.StarColors = palette(base.StarColors, o.StarColors)
	if o.StarGlyph != nil {
		c.StarGlyph = rune(*o.StarGlyph)
	}
	setInt(&c.StarScaleInTicks, o.StarScaleInTicks)

	setInt(&c.TrailCount, o.TrailCount)
	setInt(&c.TrailSize, o.TrailSize)
	setFloat(&c.TrailAlphaBegin, o.TrailAlphaBegin)
	setFloat(&c.TrailAlphaDecay, o.TrailAlphaDecay)
	c.TrailColors = palette(base.TrailColors, o.TrailColors)
	if o.TrailGlyph != nil {
		c.TrailGlyph = rune(*o.TrailGlyph)
	}

	setInt(&c.SpawnInterval.Min, o.SpawnIntervalMin)
	setInt(&c.SpawnInterval.Max, o.SpawnIntervalMax)
	setFloat(&c.AngularStep, o.AngularStep)
	if o.TimeScaled != nil {
		c.TimeScaled = *o.TimeScaled
	}
	if o.BackgroundColor != nil {
		c.BackgroundColor = color.RGBA(*o.BackgroundColor)
	}
	return c
}

// Merge layers top over o. Fields set in top win.
func (o Overrides) Merge(top Overrides) Overrides {
	m := o
	pick(&m.StarCountMin, top.StarCountMin)
	pick(&m.StarCountMax, top.StarCountMax)
	pick(&m.StarSizeMin, top.StarSizeMin)
	pick(&m.StarSizeMax, top.StarSizeMax)
	pick(&m.StarSpeedMin, top.StarSpeedMin)
	pick(&m.StarSpeedMax, top.StarSpeedMax)
	pick(&m.StarRotationLimitMin, top.StarRotationLimitMin)
	pick(&m.StarRotationLimitMax, top.StarRotationLimitMax)
	if top.StarColors != nil {
		m.StarColors = top.StarColors
	}
	pick(&m.StarGlyph, top.StarGlyph)
	pick(&m.StarScaleInTicks, top.StarScaleInTicks)
	pick(&m.TrailCount, top.TrailCount)
	pick(&m.TrailSize, top.TrailSize)
	pick(&m.TrailAlphaBegin, top.TrailAlphaBegin)
	pick(&m.TrailAlphaDecay, top.TrailAlphaDecay)
	if top.TrailColors != nil {
		m.TrailColors = top.TrailColors
	}
	pick(&m.TrailGlyph, top.TrailGlyph)
	pick(&m.SpawnIntervalMin, top.SpawnIntervalMin)
	pick(&m.SpawnIntervalMax, top.SpawnIntervalMax)
	pick(&m.AngularStep, top.AngularStep)
	pick(&m.TimeScaled, top.TimeScaled)
	pick(&m.BackgroundColor, top.BackgroundColor)
	return m
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

func pick[T any](dst **T, v *T) {
	if v != nil {
		*dst = v
	}
}

func palette(base []color.RGBA, o []Color) []color.RGBA {
	if o == nil {
		return append([]color.RGBA(nil), base...)
	}
	out := make([]color.RGBA, len(o))
	for i, c := range o {
		out[i] = color.RGBA(c)
	}
	return out
}

// Color is an opaque RGB color written as "#rrggbb" or "0xrrggbb"
type Color color.RGBA

// ParseColor parses "#rrggbb", "0xrrggbb" or "rrggbb"
func ParseColor(s string) (Color, error) {
	h := strings.TrimSpace(s)
	h = strings.TrimPrefix(h, "#")
	h = strings.TrimPrefix(strings.TrimPrefix(h, "0x"), "0X")
	if len(h) != 6 {
		return Color{}, fmt.Errorf("color %q: want 6 hex digits", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("color %q: %w", s, err)
	}
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func (c *Color) UnmarshalYAML(n *yaml.Node) error {
	parsed, err := ParseColor(n.Value)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func (c Color) MarshalYAML() (interface{}, error) {
	return c.String(), nil
}

// Glyph is a single character written as a one-rune string
type Glyph rune

func (g *Glyph) UnmarshalYAML(n *yaml.Node) error {
	if utf8.RuneCountInString(n.Value) != 1 {
		return fmt.Errorf("glyph %q: want exactly one character", n.Value)
	}
	r, _ := utf8.DecodeRuneInString(n.Value)
	*g = Glyph(r)
	return nil
}

func (g Glyph) MarshalYAML() (interface{}, error) {
	return string(rune(g)), nil
}
