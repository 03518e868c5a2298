package config

import (
	"errors"
	"image"
	"image/color"
	"math"
	"testing"
)

func intp(v int) *int { return &v }

func floatp(v float64) *float64 { return &v }

func TestDefaultMatchesStockValues(t *testing.T) {
	c := Default()

	if c.StarCount != (Range{Min: 3, Max: 6}) {
		t.Errorf("StarCount = %+v", c.StarCount)
	}
	if c.StarRotationLimit.Min != 2*math.Pi || c.StarRotationLimit.Max != 18*math.Pi {
		t.Errorf("StarRotationLimit = %+v", c.StarRotationLimit)
	}
	if len(c.StarColors) != 7 {
		t.Errorf("expected 7 star colors, got %d", len(c.StarColors))
	}
	if c.TrailCount != 128 || c.TrailSize != 50 {
		t.Errorf("trail pool = %d x %d", c.TrailCount, c.TrailSize)
	}
	if c.TrailAlphaDecay != -0.08 {
		t.Errorf("TrailAlphaDecay = %v", c.TrailAlphaDecay)
	}
	if c.AngularStep != 0.1 {
		t.Errorf("AngularStep = %v", c.AngularStep)
	}
	if err := c.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestResolveSwapsReversedRanges(t *testing.T) {
	o := Overrides{
		StarCountMin:         intp(9),
		StarCountMax:         intp(2),
		StarSizeMin:          intp(40),
		StarSizeMax:          intp(20),
		StarSpeedMin:         intp(7),
		StarSpeedMax:         intp(1),
		StarRotationLimitMin: floatp(30),
		StarRotationLimitMax: floatp(10),
		SpawnIntervalMin:     intp(50),
		SpawnIntervalMax:     intp(5),
	}

	c, err := Resolve(o)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	tests := []struct {
		name     string
		min, max float64
	}{
		{"star count", float64(c.StarCount.Min), float64(c.StarCount.Max)},
		{"star size", float64(c.StarSize.Min), float64(c.StarSize.Max)},
		{"star speed", float64(c.StarSpeed.Min), float64(c.StarSpeed.Max)},
		{"rotation limit", c.StarRotationLimit.Min, c.StarRotationLimit.Max},
		{"spawn interval", float64(c.SpawnInterval.Min), float64(c.SpawnInterval.Max)},
	}
	for _, tt := range tests {
		if tt.min > tt.max {
			t.Errorf("%s: min %v > max %v", tt.name, tt.min, tt.max)
		}
	}
	if c.StarCount != (Range{Min: 2, Max: 9}) {
		t.Errorf("StarCount = %+v, want {2 9}", c.StarCount)
	}
}

func TestResolveKeepsEqualBounds(t *testing.T) {
	c, err := Resolve(Overrides{StarCountMin: intp(4), StarCountMax: intp(4)})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if c.StarCount != (Range{Min: 4, Max: 4}) {
		t.Errorf("StarCount = %+v", c.StarCount)
	}
}

func TestResolveRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		o    Overrides
		want error
	}{
		{"empty star palette", Overrides{StarColors: []Color{}}, ErrEmptyPalette},
		{"empty trail palette", Overrides{TrailColors: []Color{}}, ErrEmptyPalette},
		{"no trail", Overrides{TrailCount: intp(0)}, ErrInvalidTrail},
		{"no stars", Overrides{StarCountMin: intp(0)}, ErrInvalidStarCount},
		{"zero interval", Overrides{SpawnIntervalMin: intp(0)}, ErrInvalidInterval},
		{"zero step", Overrides{AngularStep: floatp(0)}, ErrInvalidStep},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Resolve(tt.o)
			if !errors.Is(err, tt.want) {
				t.Errorf("Resolve error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestOverridesDoNotLeakBetweenResolves(t *testing.T) {
	first, err := Resolve(Overrides{StarColors: []Color{{R: 1, A: 0xff}}, TrailSize: intp(5)})
	if err != nil {
		t.Fatal(err)
	}
	second, err := Resolve(Overrides{StarSizeMax: intp(99)})
	if err != nil {
		t.Fatal(err)
	}

	if second.TrailSize != 50 {
		t.Errorf("TrailSize leaked into second scene: %d", second.TrailSize)
	}
	if len(second.StarColors) != 7 {
		t.Errorf("star palette leaked into second scene: %v", second.StarColors)
	}
	if first.StarSize.Max != 80 {
		t.Errorf("StarSize.Max leaked into first scene: %d", first.StarSize.Max)
	}

	second.StarColors[0] = color.RGBA{}
	if Default().StarColors[0] != DeepPink {
		t.Error("mutating a resolved palette changed the defaults")
	}
}

func TestMergePrefersTop(t *testing.T) {
	base := Overrides{TrailCount: intp(10), TrailSize: intp(20)}
	top := Overrides{TrailCount: intp(3)}

	m := base.Merge(top)
	if *m.TrailCount != 3 {
		t.Errorf("TrailCount = %d, want 3", *m.TrailCount)
	}
	if *m.TrailSize != 20 {
		t.Errorf("TrailSize = %d, want 20", *m.TrailSize)
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want Color
		ok   bool
	}{
		{"#191970", Color{R: 0x19, G: 0x19, B: 0x70, A: 0xff}, true},
		{"0xffff88", Color{R: 0xff, G: 0xff, B: 0x88, A: 0xff}, true},
		{"7fffd4", Color{R: 0x7f, G: 0xff, B: 0xd4, A: 0xff}, true},
		{"#fff", Color{}, false},
		{"#gggggg", Color{}, false},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if (err == nil) != tt.ok {
			t.Errorf("ParseColor(%q) error = %v", tt.in, err)
			continue
		}
		if tt.ok && got != tt.want {
			t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseFile(t *testing.T) {
	doc := []byte(`
containers:
  - id: left
    rect: {x: 0, y: 0, w: 0.5, h: 1}
  - id: right
    rect: {x: 0.5, y: 0, w: 0.5, h: 1}
scenes:
  - container: left
    overrides:
      starCountMin: 6
      starCountMax: 2
      starColors: ["#ff0000", "0x00ff00"]
      starGlyph: "✦"
      backgroundColor: "#000000"
  - container: right
`)
	f, err := ParseFile(doc)
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}
	if len(f.Containers) != 2 || len(f.Scenes) != 2 {
		t.Fatalf("got %d containers, %d scenes", len(f.Containers), len(f.Scenes))
	}

	c, err := Resolve(f.Scenes[0].Overrides)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if c.StarCount != (Range{Min: 2, Max: 6}) {
		t.Errorf("StarCount = %+v", c.StarCount)
	}
	if len(c.StarColors) != 2 || c.StarColors[1] != (color.RGBA{G: 0xff, A: 0xff}) {
		t.Errorf("StarColors = %v", c.StarColors)
	}
	if c.StarGlyph != '✦' {
		t.Errorf("StarGlyph = %q", c.StarGlyph)
	}
	if c.BackgroundColor != (color.RGBA{A: 0xff}) {
		t.Errorf("BackgroundColor = %v", c.BackgroundColor)
	}

	if got := f.Containers[1].Rect.Pixels(800, 600); got != image.Rect(400, 0, 800, 600) {
		t.Errorf("right container pixels = %v", got)
	}
}

func TestParseFileRejectsBadLayouts(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{"no containers", "scenes: []", ErrNoContainers},
		{"duplicate", "containers: [{id: a, rect: {w: 1, h: 1}}, {id: a, rect: {w: 1, h: 1}}]", ErrDuplicateContainer},
		{"empty id", "containers: [{rect: {w: 1, h: 1}}]", ErrEmptyContainerID},
		{"empty rect", "containers: [{id: a, rect: {w: 0, h: 1}}]", ErrEmptyRect},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseFile([]byte(tt.doc)); !errors.Is(err, tt.want) {
				t.Errorf("ParseFile error = %v, want %v", err, tt.want)
			}
		})
	}
}
