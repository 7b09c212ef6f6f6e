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

// ArenaScene picks where the fight happens.
type ArenaScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	session      *session.Session
	arenaUI      *ui.ArenaUI
	once         sync.Once
	shouldFight  bool
	shouldGoBack bool
}

func NewArenaScene(sc SceneChanger, sess *session.Session) *ArenaScene {
	return &ArenaScene{sceneChanger: sc, session: sess}
}

func (as *ArenaScene) Update() {
	as.once.Do(as.configure)
	as.ecs.Update()

	if as.shouldFight {
		systems.FadeOutMusic(as.ecs)
		as.sceneChanger.ChangeScene(NewFightScene(as.sceneChanger, as.session))
		return
	}
	if as.shouldGoBack || systems.BackPressed(as.ecs) {
		as.sceneChanger.ChangeScene(NewSelectScene(as.sceneChanger, as.session))
		return
	}

	as.arenaUI.Update()
}

func (as *ArenaScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.Menu.BackgroundColor)

	if as.ecs == nil {
		return
	}
	as.arenaUI.UI.Draw(screen)
}

func (as *ArenaScene) configure() {
	as.ecs = ecs.NewECS(donburi.NewWorld())
	as.ecs.AddSystem(systems.UpdateAudio)
	as.ecs.AddSystem(systems.UpdateInput)

	as.arenaUI = ui.NewArenaUI(
		as.session,
		func() {
			systems.PlaySFX(as.ecs, cfg.SoundMenuSelect)
			as.shouldFight = true
		},
		func() { as.shouldGoBack = true },
	)

	systems.PlayMusic(as.ecs, cfg.Sound.MenuMusic)
}
