package config

// Resolution represents a display resolution option
type Resolution struct {
	Width  int
	Height int
	Label  string
}

// SettingsOption identifies a row on the settings screen.
type SettingsOption int

const (
	SettingsOptMusicVolume SettingsOption = iota
	SettingsOptSFXVolume
	SettingsOptMute
	SettingsOptFullscreen
	SettingsOptResolution
	SettingsOptBack
)

// SettingsMenuConfig contains settings screen configuration
type SettingsMenuConfig struct {
	Resolutions            []Resolution
	DefaultResolutionIndex int
	VolumeSteps            []float64
	Labels                 map[SettingsOption]string
}

// SettingsMenu is the global settings menu configuration
var SettingsMenu SettingsMenuConfig

func init() {
	SettingsMenu = SettingsMenuConfig{
		Resolutions: []Resolution{
			{Width: 960, Height: 540, Label: "960 x 540"},
			{Width: 1280, Height: 720, Label: "1280 x 720"},
			{Width: 1920, Height: 1080, Label: "1920 x 1080"},
		},
		DefaultResolutionIndex: 0,
		VolumeSteps:            []float64{0, 0.25, 0.5, 0.75, 1.0},
		Labels: map[SettingsOption]string{
			SettingsOptMusicVolume: "Music",
			SettingsOptSFXVolume:   "Effects",
			SettingsOptMute:        "Mute",
			SettingsOptFullscreen:  "Fullscreen",
			SettingsOptResolution:  "Window",
			SettingsOptBack:        "Back",
		},
	}
}
