package systems

import (
	"github.com/automoto/spiralstar/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ResetTrail moves a dot to the pointer and makes it fully visible again
func ResetTrail(t *components.TrailData, x, y float64) {
	t.Position.X = x
	t.Position.Y = y
	t.Alpha = t.AlphaBegin
	t.Enabled = true
}

// UpdateTrail fades one dot. A dot that reaches zero is disabled and keeps its last
// position until it is reset.
func UpdateTrail(t *components.TrailData) {
	if !t.Enabled {
		return
	}
	t.Alpha += t.AlphaDecay
	if t.Alpha <= 0 {
		t.Alpha = 0
		t.Enabled = false
	}
}

// UpdateTrails fades every dot of the pool, enabled or not
func UpdateTrails(ecs *ecs.ECS) {
	components.Trail.Each(ecs.World, func(e *donburi.Entry) {
		UpdateTrail(components.Trail.Get(e))
	})
}

// NextTrail returns the dot the next pointer move reuses and advances the pool
func NextTrail(ecs *ecs.ECS) (*components.TrailData, bool) {
	poolEntry, ok := components.TrailPool.First(ecs.World)
	if !ok {
		return nil, false
	}
	pool := components.TrailPool.Get(poolEntry)
	if len(pool.Entities) == 0 {
		return nil, false
	}

	if pool.Next >= len(pool.Entities) {
		pool.Next = 0
	}
	dot := ecs.World.Entry(pool.Entities[pool.Next])
	pool.Next = (pool.Next + 1) % len(pool.Entities)
	return components.Trail.Get(dot), true
}
