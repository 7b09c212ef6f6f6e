package scenes

import (
	"image/color"
	"os"
	"sync"

	cfg "github.com/automoto/cryptofighters/config"
	"github.com/automoto/cryptofighters/shared/session"
	"github.com/automoto/cryptofighters/systems"
	"github.com/automoto/cryptofighters/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// MenuScene displays the main menu
type MenuScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	session      *session.Session
	menuUI       *ui.MenuUI
	once         sync.Once
	next         func() interface{}
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger, sess *session.Session) *MenuScene {
	return &MenuScene{sceneChanger: sc, session: sess}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.ecs.Update()

	// Leave one frame after the click so its sound has played
	if ms.next != nil {
		ms.sceneChanger.ChangeScene(ms.next())
		return
	}

	// The settings overlay owns input while open
	if !systems.IsSettingsOpen(ms.ecs) {
		ms.menuUI.Update()
	}
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.ecs == nil {
		return
	}
	ms.menuUI.UI.Draw(screen)
	ms.ecs.Draw(screen)
}

func (ms *MenuScene) configure() {
	ms.ecs = ecs.NewECS(donburi.NewWorld())

	// Audio system (runs first to initialize audio context)
	ms.ecs.AddSystem(systems.UpdateAudio)
	ms.ecs.AddSystem(systems.UpdateInput)
	ms.ecs.AddSystem(systems.UpdateSettingsMenu)

	// Settings draws on top of the menu
	ms.ecs.AddRenderer(cfg.Default, systems.DrawSettingsMenu)

	ms.menuUI = ui.NewMenuUI(ms.session,
		func(mode session.Mode) {
			ms.session.Mode = mode
			ms.session.ResetSelections()
			systems.PlaySFX(ms.ecs, cfg.SoundMenuSelect)
			ms.next = func() interface{} {
				return NewSelectScene(ms.sceneChanger, ms.session)
			}
		},
		func() {
			systems.PlaySFX(ms.ecs, cfg.SoundMenuSelect)
			systems.OpenSettings(ms.ecs, false)
		},
		func() { os.Exit(0) },
	)

	// Start menu music
	systems.PlayMusic(ms.ecs, cfg.Sound.MenuMusic)
}
