package factory

import (
	"github.com/automoto/cryptofighters/archetypes"
	"github.com/automoto/cryptofighters/assets"
	"github.com/automoto/cryptofighters/components"
	"github.com/automoto/cryptofighters/shared/combat"
	"github.com/automoto/cryptofighters/shared/cpu"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateFighter spawns the entity for a fighter already placed on the stage.
// A nil brain means the side is read from the keyboard and gamepad.
func CreateFighter(ecs *ecs.ECS, f *combat.Fighter, brain *cpu.Brain) *donburi.Entry {
	var entry *donburi.Entry
	if brain != nil {
		entry = archetypes.Fighter.Spawn(ecs, components.CPU)
		components.CPU.SetValue(entry, components.CPUData{Brain: brain})
	} else {
		entry = archetypes.Fighter.Spawn(ecs, components.PlayerInput)
		components.PlayerInput.SetValue(entry, components.PlayerInputData{Side: f.Side})
	}

	components.Fighter.SetValue(entry, components.FighterData{
		Fighter:     f,
		WasGrounded: true,
	})
	components.Animation.Set(entry, GenerateAnimations())
	components.Flash.SetValue(entry, components.FlashData{})

	assets.PreloadFighters(f.Def)
	return entry
}
