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

// ResultsScene reads the finished fight from the session exactly once.
type ResultsScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	session      *session.Session
	resultsUI    *ui.ResultsUI
	once         sync.Once
	next         func() interface{}
}

func NewResultsScene(sc SceneChanger, sess *session.Session) *ResultsScene {
	return &ResultsScene{sceneChanger: sc, session: sess}
}

func (rs *ResultsScene) Update() {
	rs.once.Do(rs.configure)

	if rs.resultsUI != nil {
		rs.ecs.Update()
		rs.resultsUI.Update(cfg.C.DeltaMS())
	}

	if rs.next != nil {
		rs.sceneChanger.ChangeScene(rs.next())
	}
}

func (rs *ResultsScene) Draw(screen *ebiten.Image) {
	if rs.resultsUI == nil {
		screen.Fill(cfg.Results.BackgroundColor)
		return
	}
	rs.resultsUI.Draw(screen, cfg.Results.BackgroundColor)
}

func (rs *ResultsScene) configure() {
	rs.ecs = ecs.NewECS(donburi.NewWorld())
	rs.ecs.AddSystem(systems.UpdateAudio)
	rs.ecs.AddSystem(systems.UpdateInput)

	sc, sess := rs.sceneChanger, rs.session
	res, ok := sess.TakeResult()
	if !ok {
		rs.next = func() interface{} { return NewMenuScene(sc, sess) }
		return
	}

	rs.resultsUI = ui.NewResultsUI(res, sess.Catalog, systems.LoadRecords(), sess.NextSeed(),
		func() {
			rs.next = func() interface{} { return NewSelectScene(sc, sess) }
		},
		func() {
			sess.Rematch()
			systems.FadeOutMusic(rs.ecs)
			rs.next = func() interface{} { return NewFightScene(sc, sess) }
		},
		func() {
			rs.next = func() interface{} { return NewMenuScene(sc, sess) }
		},
	)

	systems.PlayMusic(rs.ecs, cfg.Sound.MenuMusic)
}
