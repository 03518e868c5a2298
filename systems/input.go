package systems

import (
	"image"

	cfg "github.com/automoto/spiralstar/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// HandlePointerDown spawns a cluster at the pointer and pushes the next automatic
// spawn back to the shortest interval, since the user just spawned one.
func HandlePointerDown(ecs *ecs.ECS, x, y float64) {
	Spawn(ecs, x, y)
	if spawner, ok := Spawner(ecs); ok {
		spawner.Countdown = spawner.Min
	}
	QueueSFX(ecs, cfg.SoundSpawn)
}

// HandlePointerMove drops the next trail dot of the pool at the pointer
func HandlePointerMove(ecs *ecs.ECS, x, y float64) {
	if dot, ok := NextTrail(ecs); ok {
		ResetTrail(dot, x, y)
	}
}

// PointerEvent is one frame of pointer input in window coordinates
type PointerEvent struct {
	Position image.Point
	Moved    bool
	Pressed  bool // a button or touch went down this frame
}

// PointerTracker turns ebiten's polled mouse and touch state into move/press events
type PointerTracker struct {
	last  image.Point
	known bool
}

// Reusable slice for touch IDs to avoid allocations
var touchIDs []ebiten.TouchID

// Poll reads the pointer for the current tick. Touches win over the mouse cursor.
func (p *PointerTracker) Poll() PointerEvent {
	var ev PointerEvent

	pos := image.Pt(ebiten.CursorPosition())
	touchIDs = inpututil.AppendJustPressedTouchIDs(touchIDs[:0])
	if len(touchIDs) > 0 {
		pos = image.Pt(ebiten.TouchPosition(touchIDs[0]))
		ev.Pressed = true
	} else if ids := ebiten.AppendTouchIDs(touchIDs[:0]); len(ids) > 0 {
		pos = image.Pt(ebiten.TouchPosition(ids[0]))
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		ev.Pressed = true
	}

	ev.Position = pos
	ev.Moved = p.known && pos != p.last
	p.last = pos
	p.known = true
	return ev
}
