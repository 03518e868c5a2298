package factory

import (
	"image/color"
	"math/rand/v2"

	"github.com/automoto/spiralstar/archetypes"
	"github.com/automoto/spiralstar/components"
	cfg "github.com/automoto/spiralstar/config"
	"github.com/automoto/spiralstar/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateTrailPool creates every trail dot up front. Dots start hidden and are only
// reset afterwards, never created or removed.
func CreateTrailPool(ecs *ecs.ECS, config cfg.Config, rng *rand.Rand) *donburi.Entry {
	pool := archetypes.TrailPool.Spawn(ecs)
	entities := make([]donburi.Entity, 0, config.TrailCount)
	for i := 0; i < config.TrailCount; i++ {
		dot := CreateTrail(ecs, config, config.TrailColors[gamemath.RandomIndex(rng, len(config.TrailColors))])
		entities = append(entities, dot.Entity())
	}
	components.TrailPool.SetValue(pool, components.TrailPoolData{Entities: entities})
	return pool
}

func CreateTrail(ecs *ecs.ECS, config cfg.Config, tint color.RGBA) *donburi.Entry {
	dot := archetypes.Trail.Spawn(ecs)
	components.Trail.SetValue(dot, components.TrailData{
		AlphaBegin: config.TrailAlphaBegin,
		AlphaDecay: config.TrailAlphaDecay,
	})
	components.Glyph.SetValue(dot, components.GlyphData{
		Rune:  config.TrailGlyph,
		Size:  config.TrailSize,
		Color: tint,
	})
	return dot
}
