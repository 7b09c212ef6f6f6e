package main

import (
	"flag"
	"image"
	"time"

	"github.com/automoto/cryptofighters/assets"
	"github.com/automoto/cryptofighters/config"
	"github.com/automoto/cryptofighters/fonts"
	"github.com/automoto/cryptofighters/scenes"
	"github.com/automoto/cryptofighters/shared/rules"
	"github.com/automoto/cryptofighters/shared/session"
	"github.com/automoto/cryptofighters/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(sess *session.Session) *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}

	if config.Debug.SkipMenu {
		sess.RandomFighter(0)
		sess.RandomFighter(1)
		sess.RandomArena()
		g.scene = scenes.NewFightScene(g, sess)
	} else {
		g.scene = scenes.NewMenuScene(g, sess)
	}

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	flag.BoolVar(&config.Debug.SkipMenu, "skip-menu", false, "start a random fight immediately")
	flag.BoolVar(&config.Debug.ShowHitboxes, "debug", false, "draw hurtboxes and projectile hitboxes")
	flag.StringVar(&config.Debug.TuningPath, "config", "tuning.toml", "TOML file overriding gameplay tuning")
	flag.Int64Var(&config.Debug.Seed, "seed", 0, "rng seed for picks, rewards and the CPU (0 uses the clock)")
	flag.Parse()

	if config.Debug.ShowHitboxes {
		logrus.SetLevel(logrus.DebugLevel)
	}

	if err := fonts.LoadDefaults(); err != nil {
		logrus.Fatalf("load fonts: %v", err)
	}
	if err := rules.LoadOverrides(config.Debug.TuningPath); err != nil {
		logrus.Fatalf("load tuning: %v", err)
	}

	cat, err := assets.LoadCatalog()
	if err != nil {
		logrus.Fatalf("load game data: %v", err)
	}
	stats := cat.Stats()
	logrus.Infof("loaded %d characters, %d moves, %d arenas", stats.Characters, stats.Moves, stats.Arenas)

	seed := config.Debug.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	sess := session.New(cat, seed)

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetTPS(config.C.TPS)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		logrus.Warnf("could not initialize persistence: %v", err)
	}
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettings(saved)
	}

	if err := ebiten.RunGame(NewGame(sess)); err != nil {
		logrus.Fatal(err)
	}
}
