package tags

import "github.com/yohamta/donburi"

var (
	Trail    = donburi.NewTag().SetName("Trail")
	Star     = donburi.NewTag().SetName("Star")
	Spawner  = donburi.NewTag().SetName("Spawner")
	Viewport = donburi.NewTag().SetName("Viewport")
)
