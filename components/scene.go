package components

import (
	"math/rand/v2"

	"github.com/automoto/spiralstar/config"
	"github.com/yohamta/donburi"
)

// SettingsData is the per-scene singleton holding the resolved configuration and
// the scene's random source
type SettingsData struct {
	Config    config.Config
	Rand      *rand.Rand
	StepScale float64 // multiplier on Config.AngularStep for the current tick
}

var Settings = donburi.NewComponentType[SettingsData]()

// SpawnerData counts down to the next automatic star spawn
type SpawnerData struct {
	Countdown int
	Min       int
	Max       int
}

var Spawner = donburi.NewComponentType[SpawnerData]()

// ViewportData is the drawable size of the scene in pixels
type ViewportData struct {
	Width  int
	Height int
}

var Viewport = donburi.NewComponentType[ViewportData]()
