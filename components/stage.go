package components

import (
	"github.com/automoto/cryptofighters/shared/combat"
	"github.com/automoto/cryptofighters/shared/gamedata"
	"github.com/yohamta/donburi"
)

// StageData is the singleton fight stage.
type StageData struct {
	*combat.Stage
	Arena *gamedata.Arena
}

var Stage = donburi.NewComponentType[StageData]()
