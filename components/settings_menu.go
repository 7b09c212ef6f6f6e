package components

import (
	cfg "github.com/automoto/cryptofighters/config"
	"github.com/yohamta/donburi"
)

// SettingsMenuData stores the current state of the settings menu overlay
type SettingsMenuData struct {
	IsOpen          bool
	SelectedOption  cfg.SettingsOption
	OpenedFromPause bool // Track origin for "Back" navigation

	MusicVolume     float64 // one of cfg.SettingsMenu.VolumeSteps
	SFXVolume       float64
	Muted           bool
	Fullscreen      bool
	ResolutionIndex int
}

// SettingsMenu is the component type for settings menu state
var SettingsMenu = donburi.NewComponentType[SettingsMenuData]()
