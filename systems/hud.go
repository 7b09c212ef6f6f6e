package systems

import (
	"fmt"
	"image/color"
	"math"

	"github.com/automoto/cryptofighters/components"
	cfg "github.com/automoto/cryptofighters/config"
	"github.com/automoto/cryptofighters/fonts"
	"github.com/automoto/cryptofighters/shared/rules"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

func getHUD(e *ecs.ECS) (*components.HUDData, bool) {
	entry, ok := components.HUD.First(e.World)
	if !ok {
		return nil, false
	}
	return components.HUD.Get(entry), true
}

// UpdateHUD drains the health trails toward each fighter's real health.
func UpdateHUD(e *ecs.ECS) {
	hud, ok := getHUD(e)
	if !ok {
		return
	}
	stage, ok := getStage(e)
	if !ok {
		return
	}
	dt := cfg.C.DeltaMS()
	for i, f := range stage.Fighters {
		advanceTrail(&hud.Trails[i], healthFraction(f.Health, f.MaxHealth), dt)
	}
}

func healthFraction(health, maxHealth float64) float64 {
	if maxHealth <= 0 {
		return 0
	}
	return math.Max(0, math.Min(1, health/maxHealth))
}

// advanceTrail holds the trail for a moment after a hit, then tweens it down.
// Healing (a new round) snaps it up.
func advanceTrail(t *components.HealthTrail, frac, dt float64) {
	switch {
	case frac > t.Value:
		t.Value, t.Target = frac, frac
		t.DelayMS = 0
		t.Tween = nil
		return
	case frac < t.Target:
		t.Target = frac
		t.DelayMS = cfg.HUD.TrailDelayMS
		t.Tween = nil
		return
	}

	if t.DelayMS > 0 {
		t.DelayMS -= dt
		if t.DelayMS > 0 {
			return
		}
		t.Tween = gween.New(float32(t.Value), float32(t.Target), float32(cfg.HUD.TrailDrainMS), ease.OutQuad)
	}
	if t.Tween != nil {
		v, done := t.Tween.Update(float32(dt))
		t.Value = float64(v)
		if done {
			t.Value = t.Target
			t.Tween = nil
		}
	}
}

// DrawHUD renders names, health bars, clock, round and win pips.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	hud, ok := getHUD(e)
	if !ok {
		return
	}
	stage, ok := getStage(e)
	if !ok {
		return
	}
	m, ok := getMatch(e)
	if !ok {
		return
	}

	width := float64(cfg.C.Width)
	nameFont := fonts.Bold.Get()

	for side, f := range stage.Fighters {
		x := cfg.HUD.Margin
		if side == 1 {
			x = width - cfg.HUD.Margin - cfg.HUD.BarWidth
		}
		drawHealthBar(screen, x, side, healthFraction(f.Health, f.MaxHealth), hud.Trails[side].Value)

		label := f.Def.Name
		if side == 0 {
			text.Draw(screen, label, nameFont, int(x), int(cfg.HUD.NameY+12), cfg.Menu.P1Color)
		} else {
			drawRight(screen, label, nameFont, x+cfg.HUD.BarWidth, cfg.HUD.NameY+12, cfg.Menu.P2Color)
		}
		drawPips(screen, x, side, m.Wins[side])
	}

	clockColor := cfg.HUD.TimerColor
	if m.State == rules.RoundActive && m.ClockSeconds() <= cfg.HUD.TimerWarnS {
		clockColor = cfg.HUD.TimerWarn
	}
	drawCentered(screen, fmt.Sprintf("%02d", m.ClockSeconds()), fonts.Title.Get(), width/2, cfg.HUD.TimerY+26, clockColor)
	drawCentered(screen, fmt.Sprintf("ROUND %d", m.Round), fonts.Small.Get(), width/2, cfg.HUD.RoundY, cfg.White)

	drawCentered(screen, cfg.HUD.HintText, fonts.Small.Get(), width/2, cfg.HUD.HintY, cfg.Gray)
}

// drawHealthBar fills from the outer edge toward the centre, P2 mirrored.
func drawHealthBar(screen *ebiten.Image, x float64, side int, frac, trail float64) {
	y := cfg.HUD.BarY
	w, h := cfg.HUD.BarWidth, cfg.HUD.BarHeight

	vector.FillRect(screen, float32(x), float32(y), float32(w), float32(h), cfg.HUD.BarBg, false)

	fill := func(f float64, clr color.Color) {
		fw := w * f
		fx := x
		if side == 1 {
			fx = x + w - fw
		}
		vector.FillRect(screen, float32(fx), float32(y), float32(fw), float32(h), clr, false)
	}
	if trail > frac {
		fill(trail, cfg.HUD.Trail)
	}
	fill(frac, healthColor(frac))

	vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), 2, cfg.HUD.BarFrame, false)
}

func healthColor(frac float64) color.RGBA {
	switch {
	case frac <= cfg.HUD.LowHealth:
		return cfg.HUD.HealthLow
	case frac <= cfg.HUD.MidHealth:
		return cfg.HUD.HealthMid
	}
	return cfg.HUD.HealthHigh
}

// drawPips shows round wins under the bar, growing from the centre side.
func drawPips(screen *ebiten.Image, barX float64, side, wins int) {
	for i := 0; i < rules.Round.WinsToTakeMatch; i++ {
		var cx float64
		if side == 0 {
			cx = barX + cfg.HUD.BarWidth - cfg.HUD.PipRadius - float64(i)*cfg.HUD.PipGap
		} else {
			cx = barX + cfg.HUD.PipRadius + float64(i)*cfg.HUD.PipGap
		}
		clr := cfg.HUD.PipOff
		if i < wins {
			clr = cfg.HUD.PipOn
		}
		vector.FillCircle(screen, float32(cx), float32(cfg.HUD.PipY), float32(cfg.HUD.PipRadius), clr, true)
	}
}
