package systems

import (
	"github.com/automoto/spiralstar/components"
	"github.com/automoto/spiralstar/shared/gamemath"
	"github.com/automoto/spiralstar/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const defaultAngularStep = 0.1

// Settings returns the scene settings singleton
func Settings(ecs *ecs.ECS) (*components.SettingsData, bool) {
	e, ok := components.Settings.First(ecs.World)
	if !ok {
		return nil, false
	}
	return components.Settings.Get(e), true
}

// Spawner returns the auto-spawn countdown singleton
func Spawner(ecs *ecs.ECS) (*components.SpawnerData, bool) {
	e, ok := components.Spawner.First(ecs.World)
	if !ok {
		return nil, false
	}
	return components.Spawner.Get(e), true
}

// Viewport returns the current scene size
func Viewport(ecs *ecs.ECS) (width, height int) {
	e, ok := components.Viewport.First(ecs.World)
	if !ok {
		return 0, 0
	}
	vp := components.Viewport.Get(e)
	return vp.Width, vp.Height
}

// UpdateSpawner counts down to the next automatic spawn. When the countdown runs out a
// cluster is spawned at a random point of the viewport and a new interval is drawn.
func UpdateSpawner(ecs *ecs.ECS) {
	spawner, ok := Spawner(ecs)
	if !ok {
		return
	}
	settings, ok := Settings(ecs)
	if !ok {
		return
	}

	spawner.Countdown--
	if spawner.Countdown > 0 {
		return
	}

	width, height := Viewport(ecs)
	x := gamemath.RandomCoordinate(settings.Rand, width)
	y := gamemath.RandomCoordinate(settings.Rand, height)
	Spawn(ecs, x, y)
	spawner.Countdown = gamemath.RandomWithinRange(settings.Rand, spawner.Min, spawner.Max)
}

// Spawn creates a cluster of stars spiralling out of (x, y). Color, count, size, speed
// and rotation limit are drawn once and shared by the whole cluster; the stars differ
// only in skew, spread evenly around a full turn.
func Spawn(ecs *ecs.ECS, x, y float64) []*donburi.Entry {
	settings, ok := Settings(ecs)
	if !ok {
		return nil
	}
	c := settings.Config
	rng := settings.Rand

	tint := c.StarColors[gamemath.RandomIndex(rng, len(c.StarColors))]
	count := gamemath.RandomWithinRange(rng, c.StarCount.Min, c.StarCount.Max)
	size := gamemath.RandomWithinRange(rng, c.StarSize.Min, c.StarSize.Max)
	speed := gamemath.RandomWithinRange(rng, c.StarSpeed.Min, c.StarSpeed.Max)
	limit := gamemath.RandomFloatSteps(rng, c.StarRotationLimit.Min, c.StarRotationLimit.Max)

	stars := make([]*donburi.Entry, 0, count)
	for _, skew := range gamemath.ClusterSkews(count) {
		stars = append(stars, factory.CreateStar(ecs, factory.StarParams{
			X:             x,
			Y:             y,
			Size:          size,
			Color:         tint,
			Glyph:         c.StarGlyph,
			Speed:         float64(speed),
			RotationLimit: limit,
			RotationSkew:  skew,
			ScaleInTicks:  c.StarScaleInTicks,
		}))
	}
	return stars
}
