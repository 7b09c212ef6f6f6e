package systems

import (
	"strings"

	"github.com/automoto/cryptofighters/components"
	cfg "github.com/automoto/cryptofighters/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// Cache controller types to avoid string allocation every frame
var controllerTypeCache = make(map[ebiten.GamepadID]components.InputMethod)

// UpdateInput polls raw input and updates the global InputComponent used by
// menus, pause and settings. Must run BEFORE UpdateFighterInput.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	analogLeft, analogRight, analogUp, analogDown, analogGpID := getAnalogStickState(gamepadIDs)

	var keyboardUsed, gamepadUsed bool
	var activeGamepadID ebiten.GamepadID

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
				keyboardUsed = true
			}
		}

		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
					gamepadUsed = true
					activeGamepadID = gpID
				}
			}
		}
	}

	// Merge analog stick into menu navigation
	if analogLeft {
		input.Current[cfg.ActionMenuLeft] = true
		gamepadUsed = true
		activeGamepadID = analogGpID
	}
	if analogRight {
		input.Current[cfg.ActionMenuRight] = true
		gamepadUsed = true
		activeGamepadID = analogGpID
	}
	if analogUp {
		input.Current[cfg.ActionMenuUp] = true
		gamepadUsed = true
		activeGamepadID = analogGpID
	}
	if analogDown {
		input.Current[cfg.ActionMenuDown] = true
		gamepadUsed = true
		activeGamepadID = analogGpID
	}

	// Gamepad takes priority if both used
	if gamepadUsed {
		input.LastInputMethod = getControllerType(activeGamepadID)
	} else if keyboardUsed {
		input.LastInputMethod = components.InputKeyboard
	}
}

// getControllerType returns cached controller type, detecting on first access
func getControllerType(gpID ebiten.GamepadID) components.InputMethod {
	if method, ok := controllerTypeCache[gpID]; ok {
		return method
	}

	name := strings.ToLower(ebiten.GamepadName(gpID))
	var method components.InputMethod
	if strings.Contains(name, "ps4") || strings.Contains(name, "ps5") ||
		strings.Contains(name, "playstation") || strings.Contains(name, "dualshock") ||
		strings.Contains(name, "dualsense") {
		method = components.InputPlayStation
	} else {
		method = components.InputXbox
	}

	controllerTypeCache[gpID] = method
	return method
}

// getAnalogStickState reads the left analog stick from all gamepads
func getAnalogStickState(gamepads []ebiten.GamepadID) (left, right, up, down bool, activeGpID ebiten.GamepadID) {
	for _, gpID := range gamepads {
		l, r, u, d := readStick(gpID)
		if l || r || u || d {
			activeGpID = gpID
		}
		left = left || l
		right = right || r
		up = up || u
		down = down || d
	}
	return
}

func readStick(gpID ebiten.GamepadID) (left, right, up, down bool) {
	if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
		return
	}
	deadzone := cfg.Input.AnalogDeadzone
	horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
	vertical := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)
	return horizontal < -deadzone, horizontal > deadzone, vertical < -deadzone, vertical > deadzone
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	return actionState(input.Current[id], input.Previous[id])
}

// UpdateFighterInput polls the key map and gamepad bound to each human side.
func UpdateFighterInput(ecs *ecs.ECS) {
	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	components.PlayerInput.Each(ecs.World, func(entry *donburi.Entry) {
		input := components.PlayerInput.Get(entry)
		input.PreviousInput = input.CurrentInput
		input.CurrentInput = [cfg.ActionCount]bool{}

		pollKeysForSide(input, input.Side)
		if input.AllKeys {
			pollKeysForSide(input, 1-input.Side)
		}
		if input.Side < len(gamepadIDs) {
			pollGamepadForPlayer(input, gamepadIDs[input.Side])
		}
	})
}

// pollKeysForSide reads one of the two fixed keyboard maps.
func pollKeysForSide(input *components.PlayerInputData, side int) {
	if side < 0 || side >= len(cfg.Input.SideKeys) {
		return
	}
	for actionID, keys := range cfg.Input.SideKeys[side] {
		for _, key := range keys {
			if ebiten.IsKeyPressed(key) {
				input.CurrentInput[actionID] = true
				input.InputMethod = components.InputKeyboard
			}
		}
	}
}

// pollGamepadForPlayer reads input from a specific gamepad into PlayerInputData.
func pollGamepadForPlayer(input *components.PlayerInputData, gpID ebiten.GamepadID) {
	if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
		return
	}

	for actionID, buttons := range cfg.Input.GamepadButtons {
		for _, btn := range buttons {
			if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
				input.CurrentInput[actionID] = true
				input.InputMethod = getControllerType(gpID)
			}
		}
	}

	left, right, up, down := readStick(gpID)
	if left {
		input.CurrentInput[cfg.ActionMoveLeft] = true
	}
	if right {
		input.CurrentInput[cfg.ActionMoveRight] = true
	}
	if up {
		input.CurrentInput[cfg.ActionJump] = true
	}
	if down {
		input.CurrentInput[cfg.ActionBlock] = true
	}
	if left || right || up || down {
		input.InputMethod = getControllerType(gpID)
	}
}

// GetPlayerAction returns the full ActionState for an action ID from PlayerInputData.
func GetPlayerAction(input *components.PlayerInputData, id cfg.ActionID) components.ActionState {
	return actionState(input.CurrentInput[id], input.PreviousInput[id])
}

func actionState(curr, prev bool) components.ActionState {
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

// BackPressed reports a fresh press of the menu back binding.
func BackPressed(ecs *ecs.ECS) bool {
	return GetAction(getOrCreateInput(ecs), cfg.ActionMenuBack).JustPressed
}
