package factory

import (
	"image/color"

	"github.com/automoto/spiralstar/archetypes"
	"github.com/automoto/spiralstar/components"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// StarParams are the values shared by every star of one spawned cluster, plus the
// skew that sets each star apart
type StarParams struct {
	X, Y           float64
	Size           int
	Color          color.RGBA
	Glyph          rune
	Speed          float64
	RotationOffset float64
	RotationLimit  float64
	RotationSkew   float64
	ScaleInTicks   int
}

// CreateStar creates one spiral star sitting on its origin
func CreateStar(ecs *ecs.ECS, p StarParams) *donburi.Entry {
	var star *donburi.Entry
	if p.ScaleInTicks > 0 {
		star = archetypes.Star.Spawn(ecs, components.ScaleIn)
		components.ScaleIn.SetValue(star, components.ScaleInData{
			Tween: gween.New(0, 1, float32(p.ScaleInTicks), ease.OutBack),
		})
	} else {
		star = archetypes.Star.Spawn(ecs)
	}

	origin := math.NewVec2(p.X, p.Y)
	components.Star.SetValue(star, components.StarData{
		Origin:          origin,
		Position:        origin,
		RotationOffset:  p.RotationOffset,
		RotationLimit:   p.RotationLimit,
		RotationApplied: p.RotationOffset,
		RotationSkew:    p.RotationSkew,
		Speed:           p.Speed,
	})
	components.Glyph.SetValue(star, components.GlyphData{
		Rune:  p.Glyph,
		Size:  p.Size,
		Color: p.Color,
	})
	return star
}
