package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// StarData is a star moving outwards on a spiral around Origin
type StarData struct {
	Origin          math.Vec2
	Position        math.Vec2
	RotationOffset  float64 // starting angle
	RotationLimit   float64 // the star expires once RotationApplied exceeds this
	RotationApplied float64 // accumulated spiral angle
	RotationSkew    float64 // rotation of the whole spiral around Origin
	Speed           float64 // radius growth per radian
	Expired         bool
}

var Star = donburi.NewComponentType[StarData]()

// ScaleInData grows a freshly spawned star from nothing to full size
type ScaleInData struct {
	Tween *gween.Tween
	Scale float64
}

var ScaleIn = donburi.NewComponentType[ScaleInData]()
