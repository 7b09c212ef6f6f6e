package config

import (
	"github.com/automoto/cryptofighters/shared/rules"
	"github.com/hajimehoshi/ebiten/v2"
)

// ActionID represents a logical game action
type ActionID = rules.ActionID

const (
	ActionNone           = rules.ActionNone
	ActionMoveLeft       = rules.ActionMoveLeft
	ActionMoveRight      = rules.ActionMoveRight
	ActionJump           = rules.ActionJump
	ActionBlock          = rules.ActionBlock
	ActionAttackBasic    = rules.ActionAttackBasic
	ActionAttackSpecial1 = rules.ActionAttackSpecial1
	ActionAttackSpecial2 = rules.ActionAttackSpecial2
	ActionPause          = rules.ActionPause
	ActionMenuUp         = rules.ActionMenuUp
	ActionMenuDown       = rules.ActionMenuDown
	ActionMenuLeft       = rules.ActionMenuLeft
	ActionMenuRight      = rules.ActionMenuRight
	ActionMenuSelect     = rules.ActionMenuSelect
	ActionMenuBack       = rules.ActionMenuBack
	ActionCount          = rules.ActionCount // Must be last - used for array sizing
)

// InputBinding represents a single key or button binding for an action
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// InputConfig holds all input mappings
type InputConfig struct {
	// Bindings drive menus and pause, merged across all devices.
	Bindings map[ActionID]InputBinding
	// SideKeys are the fixed keyboard maps for player one and player two.
	SideKeys [2]map[ActionID][]ebiten.Key
	// GamepadButtons apply to every pad; gamepad i drives side i.
	GamepadButtons map[ActionID][]ebiten.StandardGamepadButton
	// Deadzone for analog stick input (0.0 to 1.0)
	AnalogDeadzone float64
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		AnalogDeadzone: 0.25,
		SideKeys: [2]map[ActionID][]ebiten.Key{
			{
				ActionMoveLeft:       {ebiten.KeyA},
				ActionMoveRight:      {ebiten.KeyD},
				ActionJump:           {ebiten.KeyW},
				ActionBlock:          {ebiten.KeyS},
				ActionAttackBasic:    {ebiten.KeyJ, ebiten.KeySpace},
				ActionAttackSpecial1: {ebiten.KeyK, ebiten.KeyQ},
				ActionAttackSpecial2: {ebiten.KeyL, ebiten.KeyE},
			},
			{
				ActionMoveLeft:       {ebiten.KeyArrowLeft},
				ActionMoveRight:      {ebiten.KeyArrowRight},
				ActionJump:           {ebiten.KeyArrowUp},
				ActionBlock:          {ebiten.KeyArrowDown},
				ActionAttackBasic:    {ebiten.KeyNumpad1, ebiten.KeyDigit1, ebiten.KeyShiftRight},
				ActionAttackSpecial1: {ebiten.KeyNumpad2, ebiten.KeyDigit2, ebiten.KeyEnter},
				ActionAttackSpecial2: {ebiten.KeyNumpad3, ebiten.KeyDigit3, ebiten.KeyControlRight},
			},
		},
		GamepadButtons: map[ActionID][]ebiten.StandardGamepadButton{
			ActionMoveLeft:       {ebiten.StandardGamepadButtonLeftLeft},
			ActionMoveRight:      {ebiten.StandardGamepadButtonLeftRight},
			ActionJump:           {ebiten.StandardGamepadButtonRightBottom}, // A / Cross
			ActionBlock:          {ebiten.StandardGamepadButtonLeftBottom, ebiten.StandardGamepadButtonFrontBottomLeft},
			ActionAttackBasic:    {ebiten.StandardGamepadButtonRightLeft},  // X / Square
			ActionAttackSpecial1: {ebiten.StandardGamepadButtonRightTop},   // Y / Triangle
			ActionAttackSpecial2: {ebiten.StandardGamepadButtonRightRight}, // B / Circle
			ActionPause:          {ebiten.StandardGamepadButtonCenterRight},
		},
		Bindings: map[ActionID]InputBinding{
			ActionPause: {
				Keys: []ebiten.Key{ebiten.KeyEscape, ebiten.KeyP},
				// Start / Options button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonCenterRight,
				},
			},
			ActionMenuUp: {
				Keys: []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftTop,
				},
			},
			ActionMenuDown: {
				Keys: []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftBottom,
				},
			},
			ActionMenuLeft: {
				Keys: []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftLeft,
				},
			},
			ActionMenuRight: {
				Keys: []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftRight,
				},
			},
			ActionMenuSelect: {
				Keys: []ebiten.Key{ebiten.KeyEnter, ebiten.KeySpace},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightBottom,
				},
			},
			ActionMenuBack: {
				Keys: []ebiten.Key{ebiten.KeyEscape, ebiten.KeyBackspace},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightRight,
				},
			},
		},
	}
}
