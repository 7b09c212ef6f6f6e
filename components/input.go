package components

import (
	cfg "github.com/automoto/cryptofighters/config"
	"github.com/yohamta/donburi"
)

// InputMethod represents the type of input device being used
type InputMethod int

const (
	InputKeyboard InputMethod = iota
	InputXbox
	InputPlayStation
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed/JustReleased are computed on-demand by comparing frames.
// Used for global/menu input where all devices are merged.
type InputData struct {
	Current         [cfg.ActionCount]bool // Current frame's Pressed state
	Previous        [cfg.ActionCount]bool // Previous frame's Pressed state
	LastInputMethod InputMethod           // Most recently used input method
}

var Input = donburi.NewComponentType[InputData]()

// PlayerInputData stores per-side input state. Side 0 reads the first key map
// and gamepad 0, side 1 the second key map and gamepad 1.
type PlayerInputData struct {
	Side int
	// AllKeys lets one human use either key map when the other side is the CPU.
	AllKeys       bool
	CurrentInput  [cfg.ActionCount]bool
	PreviousInput [cfg.ActionCount]bool
	InputMethod   InputMethod // Current input method (for UI prompts)
}

var PlayerInput = donburi.NewComponentType[PlayerInputData]()
