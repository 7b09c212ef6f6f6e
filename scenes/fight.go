package scenes

import (
	"sync"

	"github.com/automoto/cryptofighters/assets"
	"github.com/automoto/cryptofighters/components"
	cfg "github.com/automoto/cryptofighters/config"
	"github.com/automoto/cryptofighters/shared/combat"
	"github.com/automoto/cryptofighters/shared/cpu"
	"github.com/automoto/cryptofighters/shared/gamedata"
	"github.com/automoto/cryptofighters/shared/match"
	"github.com/automoto/cryptofighters/shared/session"
	"github.com/automoto/cryptofighters/systems"
	"github.com/automoto/cryptofighters/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// FightScene runs one match between the session's picks.
type FightScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	session      *session.Session
	once         sync.Once
	failed       bool
}

func NewFightScene(sc SceneChanger, sess *session.Session) *FightScene {
	return &FightScene{sceneChanger: sc, session: sess}
}

func (fs *FightScene) Update() {
	fs.once.Do(fs.configure)
	if fs.failed {
		fs.sceneChanger.ChangeScene(NewMenuScene(fs.sceneChanger, fs.session))
		return
	}

	fs.ecs.Update()

	if systems.QuitRequested(fs.ecs) {
		systems.FadeOutMusic(fs.ecs)
		fs.session.Rematch()
		fs.sceneChanger.ChangeScene(NewMenuScene(fs.sceneChanger, fs.session))
	}
}

func (fs *FightScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(cfg.Black)

	if fs.ecs == nil || fs.failed {
		return
	}
	fs.ecs.Draw(screen)
}

func (fs *FightScene) configure() {
	p1, p2, arena, err := fs.session.FightSetup()
	if err != nil {
		logrus.Warnf("cannot start fight: %v", err)
		fs.failed = true
		return
	}

	// Preload assets to avoid lag on first use
	systems.PreloadAllSFX()
	if err := assets.LoadShaders(); err != nil {
		logrus.Warnf("hit flash disabled: %v", err)
	}

	e := ecs.NewECS(donburi.NewWorld())

	// Scene factory for the results screen
	createResults := func() interface{} {
		return NewResultsScene(fs.sceneChanger, fs.session)
	}

	// Audio system (runs first, even when paused for menu sounds)
	e.AddSystem(systems.UpdateAudio)

	// Systems that always run
	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdatePause)
	e.AddSystem(systems.UpdateSettingsMenu)

	// Game systems wrapped with pause checks
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateFighterInput))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateCPU))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateControls))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateMatch))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateProjectiles))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateAnimations))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateEffects))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateCamera))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateHUD))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateBanner))
	e.AddSystem(systems.NewFinishMatch(fs.session, fs.sceneChanger, createResults))

	// Renderers, back to front
	e.AddRenderer(cfg.Default, systems.DrawArena)
	e.AddRenderer(cfg.Default, systems.DrawFighters)
	e.AddRenderer(cfg.Default, systems.DrawProjectiles)
	e.AddRenderer(cfg.Default, systems.DrawFloatText)
	e.AddRenderer(cfg.Default, systems.DrawDebug)
	e.AddRenderer(cfg.Default, systems.DrawHUD)
	e.AddRenderer(cfg.Default, systems.DrawBanner)
	e.AddRenderer(cfg.Default, systems.DrawPause)
	e.AddRenderer(cfg.Default, systems.DrawSettingsMenu)

	fs.ecs = e

	cat := fs.session.Catalog
	fighters := [2]*combat.Fighter{
		combat.NewFighter(0, p1, cat.MoveSet(p1), arena.Spawns[0], arena.Bounds.Ground),
		combat.NewFighter(1, p2, cat.MoveSet(p2), arena.Spawns[1], arena.Bounds.Ground),
	}
	stage := combat.NewStage(fighters[0], fighters[1], arena)

	factory.CreateStage(e, stage, arena)
	factory.CreateMatch(e, match.New())
	factory.CreateHUD(e)
	factory.CreateCamera(e)
	fs.spawnFighters(fighters)

	logrus.WithFields(logrus.Fields{
		"p1":    p1.ID,
		"p2":    p2.ID,
		"arena": arena.ID,
		"mode":  fs.session.Mode,
	}).Info("fight started")

	systems.PlayMusic(e, musicFor(arena))
}

// spawnFighters gives the CPU side a brain in single player. The lone human
// may then use either key map.
func (fs *FightScene) spawnFighters(fighters [2]*combat.Fighter) {
	single := fs.session.Mode == session.SinglePlayer
	for side, f := range fighters {
		var brain *cpu.Brain
		if single && side == cfg.Bot.Side {
			brain = cpu.New(fs.session.NextSeed(), fs.session.Difficulty)
		}
		entry := factory.CreateFighter(fs.ecs, f, brain)
		if single && brain == nil {
			components.PlayerInput.Get(entry).AllKeys = true
		}
	}
}

func musicFor(a *gamedata.Arena) string {
	if a.Music == "" {
		return cfg.Sound.FightMusic
	}
	return a.Music
}
