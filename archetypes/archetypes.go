package archetypes

import (
	"github.com/automoto/spiralstar/components"
	cfg "github.com/automoto/spiralstar/config"
	"github.com/automoto/spiralstar/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Scene = newArchetype(
		cfg.LayerBackground,
		components.Settings,
	)
	Audio = newArchetype(
		cfg.LayerBackground,
		components.Audio,
	)
	Viewport = newArchetype(
		cfg.LayerBackground,
		tags.Viewport,
		components.Viewport,
	)
	Spawner = newArchetype(
		cfg.LayerBackground,
		tags.Spawner,
		components.Spawner,
	)
	TrailPool = newArchetype(
		cfg.LayerTrail,
		components.TrailPool,
	)
	Trail = newArchetype(
		cfg.LayerTrail,
		tags.Trail,
		components.Trail,
		components.Glyph,
	)
	Star = newArchetype(
		cfg.LayerStars,
		tags.Star,
		components.Star,
		components.Glyph,
	)
)

type archetype struct {
	layer      ecs.LayerID
	components []donburi.IComponentType
}

func newArchetype(layer ecs.LayerID, cs ...donburi.IComponentType) *archetype {
	return &archetype{
		layer:      layer,
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	all := append(append([]donburi.IComponentType(nil), a.components...), cs...)
	e := ecs.World.Entry(ecs.Create(a.layer, all...))
	return e
}
