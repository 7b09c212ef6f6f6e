package components

import (
	"github.com/automoto/cryptofighters/shared/combat"
	"github.com/automoto/cryptofighters/shared/cpu"
	"github.com/yohamta/donburi"
)

// FighterData wraps the engine-free fighter state. The stage owns the same
// pointer, so systems and the core always agree.
type FighterData struct {
	*combat.Fighter
	WasGrounded bool // for landing squash
}

var Fighter = donburi.NewComponentType[FighterData]()

// CPUData marks a fighter driven by the CPU brain instead of input.
type CPUData struct {
	Brain *cpu.Brain
}

var CPU = donburi.NewComponentType[CPUData]()
