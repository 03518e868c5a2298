package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// TrailData is one fading dot of the pointer trail
type TrailData struct {
	Position   math.Vec2
	Alpha      float64 // 0..1, clamped at 0 once faded
	AlphaBegin float64 // alpha set on reset
	AlphaDecay float64 // added every tick while enabled
	Enabled    bool    // disabled dots are skipped by update and draw
}

var Trail = donburi.NewComponentType[TrailData]()

// TrailPoolData is the fixed round-robin pool of trail dots
type TrailPoolData struct {
	Entities []donburi.Entity
	Next     int // index of the dot reused by the next pointer move
}

var TrailPool = donburi.NewComponentType[TrailPoolData]()
