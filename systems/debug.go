package systems

import (
	"fmt"
	"image/color"

	cfg "github.com/automoto/cryptofighters/config"
	"github.com/automoto/cryptofighters/fonts"
	"github.com/automoto/cryptofighters/shared/combat"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines hurtboxes, attack reach and projectile hitboxes when
// started with -debug.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.ShowHitboxes {
		return
	}
	stage, ok := getStage(ecs)
	if !ok {
		return
	}
	camX, camY := cameraOffset(ecs)
	small := fonts.Small.Get()

	for _, f := range stage.Fighters {
		strokeBox(screen, f.Hurtbox(), camX, camY, cfg.Debug.HitboxColor)

		// Reach line at chest height
		reach := f.AttackRange()
		dir := 1.0
		if !f.FacingRight {
			dir = -1
		}
		y := f.Y - f.Hurtbox().H/2 + camY
		vector.StrokeLine(screen, float32(f.X+camX), float32(y), float32(f.X+dir*reach+camX), float32(y), 1, cfg.Debug.HitboxColor, false)

		label := fmt.Sprintf("%s %.0f/%.0f", f.Status, f.Health, f.MaxHealth)
		text.Draw(screen, label, small, int(f.X-40+camX), int(f.Y-f.Hurtbox().H-6+camY), cfg.Debug.HitboxColor)
	}

	for _, p := range stage.ActiveProjectiles() {
		strokeBox(screen, p.Hitbox(), camX, camY, cfg.Debug.ProjColor)
	}

	m, ok := getMatch(ecs)
	if ok {
		info := fmt.Sprintf("state=%s round=%d wins=%v timer=%.0f", m.State, m.Round, m.Wins, m.Timer)
		text.Draw(screen, info, small, 8, cfg.C.Height-28, cfg.Debug.HitboxColor)
	}
}

func strokeBox(screen *ebiten.Image, r combat.Rect, camX, camY float64, c color.Color) {
	vector.StrokeRect(screen, float32(r.X+camX), float32(r.Y+camY), float32(r.W), float32(r.H), 1, c, false)
}
