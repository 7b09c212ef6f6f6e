package components

import (
	cfg "github.com/automoto/cryptofighters/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi"
)

// AudioData stores per-scene audio state (singleton component)
type AudioData struct {
	Context    *audio.Context
	PendingSFX []cfg.SoundID
}

var Audio = donburi.NewComponentType[AudioData]()
