package systems

import (
	"github.com/automoto/cryptofighters/components"
	cfg "github.com/automoto/cryptofighters/config"
	"github.com/automoto/cryptofighters/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePause handles pause toggle and menu navigation.
// This system should run AFTER UpdateInput but BEFORE other game systems.
func UpdatePause(ecs *ecs.ECS) {
	pause := GetOrCreatePause(ecs)
	input := getOrCreateInput(ecs)

	// The match is over, there is nothing to pause.
	if m, ok := getMatch(ecs); ok && m.Complete() && !pause.IsPaused {
		return
	}

	if IsSettingsOpen(ecs) {
		return
	}

	// Toggle pause on ESC or P
	if GetAction(input, cfg.ActionPause).JustPressed {
		setPaused(ecs, pause, !pause.IsPaused)
	}

	if !pause.IsPaused {
		return
	}

	numOptions := int(components.MenuQuit) + 1
	if GetAction(input, cfg.ActionMenuUp).JustPressed {
		pause.SelectedOption = components.PauseMenuOption(
			(int(pause.SelectedOption) - 1 + numOptions) % numOptions,
		)
		PlaySFX(ecs, cfg.SoundMenuNavigate)
	}
	if GetAction(input, cfg.ActionMenuDown).JustPressed {
		pause.SelectedOption = components.PauseMenuOption(
			(int(pause.SelectedOption) + 1) % numOptions,
		)
		PlaySFX(ecs, cfg.SoundMenuNavigate)
	}

	if GetAction(input, cfg.ActionMenuSelect).JustPressed {
		PlaySFX(ecs, cfg.SoundMenuSelect)
		switch pause.SelectedOption {
		case components.MenuResume:
			setPaused(ecs, pause, false)
		case components.MenuSettings:
			OpenSettings(ecs, true)
		case components.MenuQuit:
			pause.QuitRequested = true
		}
	}
}

func setPaused(ecs *ecs.ECS, pause *components.PauseData, paused bool) {
	pause.IsPaused = paused
	if paused {
		pause.SelectedOption = components.MenuResume
		PauseMusic(ecs)
		return
	}
	ResumeMusic(ecs)
}

// DrawPause renders the pause overlay and menu.
func DrawPause(ecs *ecs.ECS, screen *ebiten.Image) {
	pause := GetOrCreatePause(ecs)

	if !pause.IsPaused || IsSettingsOpen(ecs) {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.FillRect(
		screen,
		0, 0,
		float32(width), float32(height),
		cfg.Pause.OverlayColor,
		false,
	)

	titleFont := fonts.Title.Get()
	drawCentered(screen, "PAUSED", titleFont, width/2, height/2-110, cfg.Menu.TitleColor)

	menuOptions := cfg.Pause.MenuOptions
	totalMenuHeight := float64(len(menuOptions)) * (cfg.Pause.MenuItemHeight + cfg.Pause.MenuItemGap)
	startY := (height - totalMenuHeight) / 2

	fontFace := fonts.Bold.Get()
	for i, option := range menuOptions {
		y := startY + float64(i)*(cfg.Pause.MenuItemHeight+cfg.Pause.MenuItemGap)

		textColor := cfg.Pause.TextColorNormal
		if components.PauseMenuOption(i) == pause.SelectedOption {
			textColor = cfg.Pause.TextColorSelected
		}
		drawCentered(screen, option, fontFace, width/2, y+cfg.Pause.MenuItemHeight, textColor)
	}

	input := getOrCreateInput(ecs)
	hint := getPauseHint(input.LastInputMethod)
	drawCentered(screen, hint, fonts.Small.Get(), width/2, height-12, cfg.Pause.TextColorNormal)
}

// getPauseHint returns the appropriate hint for pause menu
func getPauseHint(method components.InputMethod) string {
	switch method {
	case components.InputPlayStation:
		return "Left Stick/D-Pad: Navigate   Cross: Select   Options: Resume"
	case components.InputXbox:
		return "Left Stick/D-Pad: Navigate   A: Select   Start: Resume"
	}
	return "Arrows: Navigate   Enter: Select   Esc: Resume"
}

// WithPauseCheck wraps a system to skip execution when paused.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if pause := GetOrCreatePause(e); pause.IsPaused {
			return
		}
		system(e)
	}
}

// WithGameplayChecks wraps a system to skip execution when paused.
// This is an alias for WithPauseCheck for semantic clarity.
func WithGameplayChecks(system ecs.System) ecs.System {
	return WithPauseCheck(system)
}

// GetOrCreatePause returns the singleton Pause component, creating if needed.
func GetOrCreatePause(ecs *ecs.ECS) *components.PauseData {
	if _, ok := components.Pause.First(ecs.World); !ok {
		ent := ecs.World.Entry(ecs.World.Create(components.Pause))
		components.Pause.SetValue(ent, components.PauseData{
			IsPaused:       false,
			SelectedOption: components.MenuResume,
		})
	}

	ent, _ := components.Pause.First(ecs.World)
	return components.Pause.Get(ent)
}

// QuitRequested reports whether the player chose to leave the fight.
func QuitRequested(ecs *ecs.ECS) bool {
	return GetOrCreatePause(ecs).QuitRequested
}
