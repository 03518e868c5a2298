package factory

import (
	"math/rand/v2"

	"github.com/automoto/spiralstar/archetypes"
	"github.com/automoto/spiralstar/components"
	cfg "github.com/automoto/spiralstar/config"
	"github.com/automoto/spiralstar/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSettings stores the scene's resolved configuration and random source
func CreateSettings(ecs *ecs.ECS, config cfg.Config, rng *rand.Rand) *donburi.Entry {
	settings := archetypes.Scene.Spawn(ecs)
	components.Settings.SetValue(settings, components.SettingsData{
		Config:    config,
		Rand:      rng,
		StepScale: 1,
	})
	return settings
}

func CreateViewport(ecs *ecs.ECS, width, height int) *donburi.Entry {
	viewport := archetypes.Viewport.Spawn(ecs)
	components.Viewport.SetValue(viewport, components.ViewportData{Width: width, Height: height})
	return viewport
}

// CreateSpawner creates the auto-spawn countdown with a first interval drawn from the range
func CreateSpawner(ecs *ecs.ECS, interval cfg.Range, rng *rand.Rand) *donburi.Entry {
	spawner := archetypes.Spawner.Spawn(ecs)
	components.Spawner.SetValue(spawner, components.SpawnerData{
		Countdown: gamemath.RandomWithinRange(rng, interval.Min, interval.Max),
		Min:       interval.Min,
		Max:       interval.Max,
	})
	return spawner
}

func CreateAudio(ecs *ecs.ECS) *donburi.Entry {
	return archetypes.Audio.Spawn(ecs)
}
