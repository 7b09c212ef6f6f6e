package systems

import (
	"fmt"
	"strings"

	"github.com/automoto/cryptofighters/components"
	cfg "github.com/automoto/cryptofighters/config"
	"github.com/automoto/cryptofighters/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const numSettingsOptions = int(cfg.SettingsOptBack) + 1

// UpdateSettingsMenu handles settings navigation and value changes.
func UpdateSettingsMenu(e *ecs.ECS) {
	settings := GetOrCreateSettingsMenu(e)

	if !settings.IsOpen {
		return
	}

	input := getOrCreateInput(e)

	if GetAction(input, cfg.ActionMenuUp).JustPressed {
		navigateSettings(settings, -1)
		PlaySFX(e, cfg.SoundMenuNavigate)
	}
	if GetAction(input, cfg.ActionMenuDown).JustPressed {
		navigateSettings(settings, +1)
		PlaySFX(e, cfg.SoundMenuNavigate)
	}

	if GetAction(input, cfg.ActionMenuLeft).JustPressed {
		adjustValue(e, settings, -1)
	}
	if GetAction(input, cfg.ActionMenuRight).JustPressed {
		adjustValue(e, settings, +1)
	}

	// Select/Enter - for toggles and Back button
	if GetAction(input, cfg.ActionMenuSelect).JustPressed {
		handleSelect(e, settings)
		return
	}

	if GetAction(input, cfg.ActionMenuBack).JustPressed ||
		GetAction(input, cfg.ActionPause).JustPressed {
		closeSettings(e, settings)
	}
}

// navigateSettings moves selection, skipping hidden options
func navigateSettings(s *components.SettingsMenuData, dir int) {
	for {
		s.SelectedOption = cfg.SettingsOption(
			(int(s.SelectedOption) + dir + numSettingsOptions) % numSettingsOptions,
		)
		if !isOptionHidden(s, s.SelectedOption) {
			break
		}
	}
}

// isOptionHidden returns true if the option should be hidden
func isOptionHidden(s *components.SettingsMenuData, opt cfg.SettingsOption) bool {
	// Window size is meaningless in fullscreen
	return opt == cfg.SettingsOptResolution && s.Fullscreen
}

// adjustValue changes the value for the selected option
func adjustValue(e *ecs.ECS, s *components.SettingsMenuData, direction int) {
	switch s.SelectedOption {
	case cfg.SettingsOptMusicVolume:
		s.MusicVolume = adjustVolumeStep(s.MusicVolume, direction)
		SetMusicVolume(s.MusicVolume)
		PlaySFX(e, cfg.SoundMenuNavigate)

	case cfg.SettingsOptSFXVolume:
		s.SFXVolume = adjustVolumeStep(s.SFXVolume, direction)
		SetSFXVolume(s.SFXVolume)
		// Preview
		PlaySFX(e, cfg.SoundHit)

	case cfg.SettingsOptMute:
		toggleMute(s)
		PlaySFX(e, cfg.SoundMenuSelect)

	case cfg.SettingsOptFullscreen:
		toggleFullscreen(s)
		PlaySFX(e, cfg.SoundMenuSelect)

	case cfg.SettingsOptResolution:
		cycleResolution(s, direction)
		PlaySFX(e, cfg.SoundMenuNavigate)
	}
}

// adjustVolumeStep adjusts volume by stepping through predefined values
func adjustVolumeStep(current float64, direction int) float64 {
	steps := cfg.SettingsMenu.VolumeSteps
	newIdx := findClosestStepIndex(current, steps) + direction
	if newIdx < 0 {
		newIdx = 0
	}
	if newIdx >= len(steps) {
		newIdx = len(steps) - 1
	}
	return steps[newIdx]
}

// findClosestStepIndex finds the closest step index for a volume value
func findClosestStepIndex(value float64, steps []float64) int {
	closest := 0
	minDiff := 2.0
	for i, step := range steps {
		diff := value - step
		if diff < 0 {
			diff = -diff
		}
		if diff < minDiff {
			minDiff = diff
			closest = i
		}
	}
	return closest
}

func toggleMute(s *components.SettingsMenuData) {
	s.Muted = !s.Muted
	SetMuted(s.Muted)
}

func toggleFullscreen(s *components.SettingsMenuData) {
	s.Fullscreen = !s.Fullscreen
	ebiten.SetFullscreen(s.Fullscreen)
}

// cycleResolution cycles through available window sizes
func cycleResolution(s *components.SettingsMenuData, direction int) {
	numResolutions := len(cfg.SettingsMenu.Resolutions)
	s.ResolutionIndex = (s.ResolutionIndex + direction + numResolutions) % numResolutions

	res := cfg.SettingsMenu.Resolutions[s.ResolutionIndex]
	ebiten.SetWindowSize(res.Width, res.Height)
}

func handleSelect(e *ecs.ECS, s *components.SettingsMenuData) {
	switch s.SelectedOption {
	case cfg.SettingsOptMute:
		toggleMute(s)
		PlaySFX(e, cfg.SoundMenuSelect)

	case cfg.SettingsOptFullscreen:
		toggleFullscreen(s)
		PlaySFX(e, cfg.SoundMenuSelect)

	case cfg.SettingsOptBack:
		closeSettings(e, s)
	}
}

// closeSettings closes the settings menu and saves settings
func closeSettings(e *ecs.ECS, s *components.SettingsMenuData) {
	s.IsOpen = false
	PlaySFX(e, cfg.SoundMenuSelect)
	SaveCurrentSettings(s)
}

// DrawSettingsMenu renders the settings overlay.
func DrawSettingsMenu(e *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettingsMenu(e)

	if !settings.IsOpen {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.FillRect(
		screen,
		0, 0,
		float32(width), float32(height),
		cfg.Menu.BackgroundColor,
		false,
	)

	fontFace := fonts.Bold.Get()
	drawCentered(screen, "SETTINGS", fonts.Title.Get(), width/2, 90, cfg.Menu.TitleColor)

	visibleCount := 0
	for opt := cfg.SettingsOptMusicVolume; opt <= cfg.SettingsOptBack; opt++ {
		if !isOptionHidden(settings, opt) {
			visibleCount++
		}
	}

	menuItemHeight := 28.0
	menuItemGap := 12.0
	totalMenuHeight := float64(visibleCount) * (menuItemHeight + menuItemGap)
	startY := (height-totalMenuHeight)/2 + 10

	optionIndex := 0
	for opt := cfg.SettingsOptMusicVolume; opt <= cfg.SettingsOptBack; opt++ {
		if isOptionHidden(settings, opt) {
			continue
		}

		y := startY + float64(optionIndex)*(menuItemHeight+menuItemGap)

		textColor := cfg.Pause.TextColorNormal
		if opt == settings.SelectedOption {
			textColor = cfg.Pause.TextColorSelected
		}

		label, value := getOptionDisplay(settings, opt)
		baseline := int(y) + int(menuItemHeight)
		text.Draw(screen, label, fontFace, int(width/2)-180, baseline, textColor)
		if value != "" {
			text.Draw(screen, value, fontFace, int(width/2)+20, baseline, textColor)
		}

		optionIndex++
	}

	input := getOrCreateInput(e)
	hint := getSettingsHint(input.LastInputMethod)
	drawCentered(screen, hint, fonts.Small.Get(), width/2, height-12, cfg.Pause.TextColorNormal)
}

// getSettingsHint returns the appropriate hint for settings menu
func getSettingsHint(method components.InputMethod) string {
	switch method {
	case components.InputPlayStation:
		return "Left Stick/D-Pad: Navigate   Left/Right: Change   Cross: Select   Circle: Back"
	case components.InputXbox:
		return "Left Stick/D-Pad: Navigate   Left/Right: Change   A: Select   B: Back"
	}
	return "Arrows: Navigate   Left/Right: Change   Enter: Select   Esc: Back"
}

// getOptionDisplay returns the label and value display for an option
func getOptionDisplay(s *components.SettingsMenuData, opt cfg.SettingsOption) (string, string) {
	label := cfg.SettingsMenu.Labels[opt]
	switch opt {
	case cfg.SettingsOptMusicVolume:
		return label, formatVolumeBar(s.MusicVolume)
	case cfg.SettingsOptSFXVolume:
		return label, formatVolumeBar(s.SFXVolume)
	case cfg.SettingsOptMute:
		return label, formatToggle(s.Muted)
	case cfg.SettingsOptFullscreen:
		return label, formatToggle(s.Fullscreen)
	case cfg.SettingsOptResolution:
		if s.ResolutionIndex >= 0 && s.ResolutionIndex < len(cfg.SettingsMenu.Resolutions) {
			return label, cfg.SettingsMenu.Resolutions[s.ResolutionIndex].Label
		}
		return label, "Unknown"
	case cfg.SettingsOptBack:
		return "< " + label, ""
	}
	return "", ""
}

// formatVolumeBar creates a visual volume bar
func formatVolumeBar(volume float64) string {
	filled := int(volume*10 + 0.5)
	return fmt.Sprintf("[%s%s] %d%%", strings.Repeat("|", filled), strings.Repeat(".", 10-filled), int(volume*100+0.5))
}

// formatToggle formats a boolean as On/Off
func formatToggle(value bool) string {
	if value {
		return "[X] On"
	}
	return "[ ] Off"
}

// GetOrCreateSettingsMenu returns the singleton SettingsMenu component, creating if needed.
func GetOrCreateSettingsMenu(e *ecs.ECS) *components.SettingsMenuData {
	if _, ok := components.SettingsMenu.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.SettingsMenu))
		components.SettingsMenu.SetValue(ent, components.SettingsMenuData{
			SelectedOption:  cfg.SettingsOptMusicVolume,
			MusicVolume:     GetMusicVolume(),
			SFXVolume:       GetSFXVolume(),
			Muted:           IsMuted(),
			ResolutionIndex: cfg.SettingsMenu.DefaultResolutionIndex,
		})
	}

	ent, _ := components.SettingsMenu.First(e.World)
	return components.SettingsMenu.Get(ent)
}

// OpenSettings opens the settings menu from a specific origin
func OpenSettings(e *ecs.ECS, fromPause bool) {
	settings := GetOrCreateSettingsMenu(e)
	settings.IsOpen = true
	settings.OpenedFromPause = fromPause
	settings.SelectedOption = cfg.SettingsOptMusicVolume

	// Sync current values
	settings.MusicVolume = GetMusicVolume()
	settings.SFXVolume = GetSFXVolume()
	settings.Muted = IsMuted()
	settings.Fullscreen = ebiten.IsFullscreen()
	if saved := currentSettings(); saved != nil {
		settings.ResolutionIndex = saved.ResolutionIndex
	}
}

// IsSettingsOpen returns true if the settings menu is currently open
func IsSettingsOpen(e *ecs.ECS) bool {
	settings := GetOrCreateSettingsMenu(e)
	return settings.IsOpen
}
