package components

import (
	cfg "github.com/automoto/spiralstar/config"
	"github.com/yohamta/donburi"
)

// AudioData queues sound effects raised during a tick
type AudioData struct {
	PendingSFX []cfg.SoundID
}

var Audio = donburi.NewComponentType[AudioData]()
