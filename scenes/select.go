package scenes

import (
	"sync"

	cfg "github.com/automoto/cryptofighters/config"
	"github.com/automoto/cryptofighters/shared/session"
	"github.com/automoto/cryptofighters/systems"
	"github.com/automoto/cryptofighters/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SelectScene lets both sides pick a fighter.
type SelectScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	session      *session.Session
	selectUI     *ui.SelectUI
	once         sync.Once
	shouldStart  bool
	shouldGoBack bool
}

func NewSelectScene(sc SceneChanger, sess *session.Session) *SelectScene {
	return &SelectScene{sceneChanger: sc, session: sess}
}

func (ss *SelectScene) Update() {
	ss.once.Do(ss.configure)

	// Update ECS for audio and the back key
	ss.ecs.Update()

	// Handle scene transitions
	if ss.shouldStart {
		ss.sceneChanger.ChangeScene(NewArenaScene(ss.sceneChanger, ss.session))
		return
	}
	if ss.shouldGoBack || systems.BackPressed(ss.ecs) {
		ss.sceneChanger.ChangeScene(NewMenuScene(ss.sceneChanger, ss.session))
		return
	}

	ss.selectUI.Update()
}

func (ss *SelectScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.Menu.BackgroundColor)

	if ss.ecs == nil {
		return
	}
	ss.selectUI.UI.Draw(screen)
}

func (ss *SelectScene) configure() {
	ss.ecs = ecs.NewECS(donburi.NewWorld())
	ss.ecs.AddSystem(systems.UpdateAudio)
	ss.ecs.AddSystem(systems.UpdateInput)

	ss.selectUI = ui.NewSelectUI(
		ss.session,
		func() {
			systems.PlaySFX(ss.ecs, cfg.SoundMenuSelect)
			ss.shouldStart = true
		},
		func() { ss.shouldGoBack = true },
	)

	// Continue playing menu music
	systems.PlayMusic(ss.ecs, cfg.Sound.MenuMusic)
}
