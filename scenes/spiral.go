package scenes

import (
	"math/rand/v2"
	"time"

	"github.com/automoto/spiralstar/components"
	cfg "github.com/automoto/spiralstar/config"
	"github.com/automoto/spiralstar/systems"
	"github.com/automoto/spiralstar/systems/factory"
	"github.com/automoto/spiralstar/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

// ReferenceTickRate is the tick rate the angular step is tuned for
const ReferenceTickRate = 60

var starQuery = donburi.NewQuery(filter.Contains(tags.Star))

// SpiralScene is one independent spiral-star animation. It owns its own world,
// configuration and random source, so any number of scenes can run side by side.
type SpiralScene struct {
	id      string
	ecs     *ecs.ECS
	config  cfg.Config
	rng     *rand.Rand
	running bool
}

// SceneOption customizes a scene at construction
type SceneOption func(*SpiralScene)

// WithRand makes the scene draw from r, for reproducible runs
func WithRand(r *rand.Rand) SceneOption {
	return func(s *SpiralScene) {
		s.rng = r
	}
}

// NewSpiralScene builds a running scene of the given size from a resolved configuration
func NewSpiralScene(id string, config cfg.Config, width, height int, opts ...SceneOption) *SpiralScene {
	s := &SpiralScene{id: id, config: config, running: true}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	s.configure(width, height)
	return s
}

func (s *SpiralScene) configure(width, height int) {
	s.ecs = ecs.NewECS(donburi.NewWorld())

	// Stars move and expire before the countdown can spawn new ones, so a fresh
	// cluster is first moved on the following tick.
	s.ecs.AddSystem(systems.UpdateStars)
	s.ecs.AddSystem(systems.UpdateSpawner)
	s.ecs.AddSystem(systems.UpdateTrails)
	s.ecs.AddSystem(systems.UpdateAudio)

	s.ecs.AddRenderer(cfg.LayerBackground, systems.DrawBackground)
	s.ecs.AddRenderer(cfg.LayerTrail, systems.DrawTrails)
	s.ecs.AddRenderer(cfg.LayerStars, systems.DrawStars)

	factory.CreateSettings(s.ecs, s.config, s.rng)
	factory.CreateViewport(s.ecs, width, height)
	factory.CreateSpawner(s.ecs, s.config.SpawnInterval, s.rng)
	factory.CreateTrailPool(s.ecs, s.config, s.rng)
	factory.CreateAudio(s.ecs)
}

func (s *SpiralScene) ID() string { return s.id }

// Config returns the scene's resolved configuration
func (s *SpiralScene) Config() cfg.Config { return s.config }

// Update advances the scene by one fixed tick
func (s *SpiralScene) Update() {
	s.UpdateElapsed(time.Second / ReferenceTickRate)
}

// UpdateElapsed advances the scene by one tick that took dt. dt only matters when the
// configuration is time scaled; otherwise every tick turns stars by the same step.
func (s *SpiralScene) UpdateElapsed(dt time.Duration) {
	if !s.running || s.ecs == nil {
		return
	}
	if settings, ok := systems.Settings(s.ecs); ok {
		settings.StepScale = 1
		if s.config.TimeScaled && dt > 0 {
			settings.StepScale = dt.Seconds() * ReferenceTickRate
		}
	}
	s.ecs.Update()
}

func (s *SpiralScene) Draw(screen *ebiten.Image) {
	if s.ecs == nil {
		return
	}
	s.ecs.Draw(screen)
}

// Start resumes ticking
func (s *SpiralScene) Start() {
	if s.ecs != nil {
		s.running = true
	}
}

// Stop pauses the scene; Update becomes a no-op until Start
func (s *SpiralScene) Stop() { s.running = false }

func (s *SpiralScene) Running() bool { return s.running }

// Disposed reports whether the scene has been torn down
func (s *SpiralScene) Disposed() bool { return s.ecs == nil }

// Dispose stops the scene and releases every entity. A disposed scene cannot be restarted.
func (s *SpiralScene) Dispose() {
	if s.ecs == nil {
		return
	}
	s.running = false

	var entities []donburi.Entity
	query := donburi.NewQuery(filter.Or(
		filter.Contains(tags.Star),
		filter.Contains(tags.Trail),
		filter.Contains(components.TrailPool),
		filter.Contains(components.Spawner),
		filter.Contains(components.Viewport),
		filter.Contains(components.Settings),
		filter.Contains(components.Audio),
	))
	query.Each(s.ecs.World, func(e *donburi.Entry) {
		entities = append(entities, e.Entity())
	})
	for _, e := range entities {
		s.ecs.World.Remove(e)
	}
	s.ecs = nil
}

// PointerDown spawns a cluster at (x, y) in scene coordinates
func (s *SpiralScene) PointerDown(x, y float64) {
	if s.ecs == nil {
		return
	}
	systems.HandlePointerDown(s.ecs, x, y)
}

// PointerMove drops the next trail dot at (x, y) in scene coordinates
func (s *SpiralScene) PointerMove(x, y float64) {
	if s.ecs == nil {
		return
	}
	systems.HandlePointerMove(s.ecs, x, y)
}

// Spawn creates a star cluster at (x, y) without touching the countdown
func (s *SpiralScene) Spawn(x, y float64) int {
	if s.ecs == nil {
		return 0
	}
	return len(systems.Spawn(s.ecs, x, y))
}

// Resize changes the area automatic spawns are placed in. Entities are left alone.
func (s *SpiralScene) Resize(width, height int) {
	if s.ecs == nil {
		return
	}
	if e, ok := components.Viewport.First(s.ecs.World); ok {
		components.Viewport.SetValue(e, components.ViewportData{Width: width, Height: height})
	}
}

func (s *SpiralScene) Size() (width, height int) {
	if s.ecs == nil {
		return 0, 0
	}
	return systems.Viewport(s.ecs)
}

// Countdown returns the ticks left until the next automatic spawn
func (s *SpiralScene) Countdown() int {
	if s.ecs == nil {
		return 0
	}
	if spawner, ok := systems.Spawner(s.ecs); ok {
		return spawner.Countdown
	}
	return 0
}

// StarCount returns the number of live stars
func (s *SpiralScene) StarCount() int {
	if s.ecs == nil {
		return 0
	}
	return starQuery.Count(s.ecs.World)
}

// EachStar calls fn for every live star with its glyph and current draw scale
func (s *SpiralScene) EachStar(fn func(star *components.StarData, glyph *components.GlyphData, scale float64)) {
	if s.ecs == nil {
		return
	}
	components.Star.Each(s.ecs.World, func(e *donburi.Entry) {
		fn(components.Star.Get(e), components.Glyph.Get(e), systems.StarScale(e))
	})
}

// EachTrail calls fn for every dot of the trail pool, enabled or not, in pool order
func (s *SpiralScene) EachTrail(fn func(dot *components.TrailData, glyph *components.GlyphData)) {
	if s.ecs == nil {
		return
	}
	poolEntry, ok := components.TrailPool.First(s.ecs.World)
	if !ok {
		return
	}
	for _, entity := range components.TrailPool.Get(poolEntry).Entities {
		e := s.ecs.World.Entry(entity)
		fn(components.Trail.Get(e), components.Glyph.Get(e))
	}
}
