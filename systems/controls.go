package systems

import (
	"github.com/automoto/cryptofighters/components"
	cfg "github.com/automoto/cryptofighters/config"
	"github.com/automoto/cryptofighters/shared/combat"
	"github.com/automoto/cryptofighters/shared/rules"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCPU runs each CPU brain. Brains only think while the round is live;
// during the countdown the stage holds both fighters anyway.
func UpdateCPU(e *ecs.ECS) {
	if !inputEnabled(e) {
		return
	}
	dt := cfg.C.DeltaMS()
	components.CPU.Each(e.World, func(entry *donburi.Entry) {
		brain := components.CPU.Get(entry).Brain
		self := components.Fighter.Get(entry).Fighter
		if foe := opponent(e, self); foe != nil {
			brain.Tick(dt, self, foe)
		}
	})
}

// UpdateControls applies each human side's input to its fighter.
func UpdateControls(e *ecs.ECS) {
	if !inputEnabled(e) {
		return
	}
	components.PlayerInput.Each(e.World, func(entry *donburi.Entry) {
		input := components.PlayerInput.Get(entry)
		self := components.Fighter.Get(entry).Fighter
		applyControls(input, self, opponent(e, self))
	})
}

// applyControls calls the same fighter entry points the CPU uses. Attacks and
// jumps fire on the press edge, block is held.
func applyControls(input *components.PlayerInputData, self, foe *combat.Fighter) {
	for kind := rules.Basic; kind < rules.AttackKindCount; kind++ {
		if GetPlayerAction(input, rules.AttackAction(kind)).JustPressed {
			if self.Attack(kind) {
				break
			}
		}
	}

	if GetPlayerAction(input, cfg.ActionJump).JustPressed {
		self.Jump()
	}

	block := GetPlayerAction(input, cfg.ActionBlock)
	if block.Pressed && self.Grounded {
		self.Block(true)
	} else if self.Blocking {
		self.Block(false)
	}

	left := GetPlayerAction(input, cfg.ActionMoveLeft).Pressed
	right := GetPlayerAction(input, cfg.ActionMoveRight).Pressed
	switch {
	case left && !right:
		self.MoveLeft()
	case right && !left:
		self.MoveRight()
	default:
		self.StopMovement()
		if foe != nil && self.Grounded {
			self.FaceToward(foe.X)
		}
	}
}

func opponent(e *ecs.ECS, self *combat.Fighter) *combat.Fighter {
	stage, ok := getStage(e)
	if !ok {
		return nil
	}
	return stage.Fighters[1-self.Side]
}
