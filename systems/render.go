package systems

import (
	"github.com/automoto/cryptofighters/assets"
	"github.com/automoto/cryptofighters/components"
	cfg "github.com/automoto/cryptofighters/config"
	"github.com/automoto/cryptofighters/fonts"
	"github.com/automoto/cryptofighters/shared/rules"
	"github.com/automoto/cryptofighters/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp   = &ebiten.DrawImageOptions{}
	shaderOp = &ebiten.DrawRectShaderOptions{}
)

// DrawArena draws the generated backdrop for the current arena.
func DrawArena(ecs *ecs.ECS, screen *ebiten.Image) {
	stage, ok := getStage(ecs)
	if !ok {
		return
	}
	if stage.Arena == nil {
		screen.Fill(cfg.Menu.BackgroundColor)
		return
	}
	camX, camY := cameraOffset(ecs)
	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	drawOp.GeoM.Translate(camX, camY)
	screen.DrawImage(assets.GetBackdrop(stage.Arena), drawOp)
}

// DrawFighters renders both fighters from their generated sheets, anchored at
// the feet. Sheets face right; left-facing fighters are mirrored.
func DrawFighters(ecs *ecs.ECS, screen *ebiten.Image) {
	stage, ok := getStage(ecs)
	if !ok {
		return
	}
	camX, camY := cameraOffset(ecs)
	ground := stage.Bounds.Ground

	tags.Fighter.Each(ecs.World, func(e *donburi.Entry) {
		f := components.Fighter.Get(e)
		anim := components.Animation.Get(e)

		// Shadow shrinks as the fighter rises
		lift := ground - f.Y
		shadowW := float32(34 - min(lift/8, 20))
		vector.FillCircle(screen, float32(f.X+camX), float32(ground+camY), shadowW, cfg.FighterView.ShadowColor, true)

		img := assets.GetFrame(f.Def, anim.CurrentClip, anim.Frame())
		fw := float64(cfg.FighterView.FrameWidth)
		fh := float64(cfg.FighterView.FrameHeight)

		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()

		// Characters: anchor at bottom-center so feet line up with the hurtbox
		drawOp.GeoM.Translate(-fw/2, -fh)

		if e.HasComponent(components.SquashStretch) {
			ss := components.SquashStretch.Get(e)
			drawOp.GeoM.Scale(ss.ScaleX, ss.ScaleY)
		}
		if !f.FacingRight {
			drawOp.GeoM.Scale(-1, 1)
		}
		drawOp.GeoM.Translate(f.X+camX, f.Y+cfg.FighterView.FootOffset+camY)

		if f.Status == rules.Blocking {
			t := cfg.FighterView.BlockTint
			drawOp.ColorScale.Scale(t[0], t[1], t[2], 1)
		}

		flash := components.Flash.Get(e)
		if amount := flash.Amount(); amount > 0 && assets.FlashShader != nil {
			drawFlashed(screen, img, amount)
			return
		}
		screen.DrawImage(img, drawOp)
	})
}

// drawFlashed draws img with drawOp's transform through the flash shader.
func drawFlashed(screen, img *ebiten.Image, amount float32) {
	c := cfg.FighterView.HurtFlashColor
	shaderOp.GeoM = drawOp.GeoM
	shaderOp.ColorScale = drawOp.ColorScale
	shaderOp.Images[0] = img
	shaderOp.Uniforms = map[string]any{
		"FlashColor": []float32{float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255, 1},
		"Amount":     amount,
	}
	b := img.Bounds()
	screen.DrawRectShader(b.Dx(), b.Dy(), assets.FlashShader, shaderOp)
}

// DrawProjectiles draws each projectile sprite centred on its hitbox.
func DrawProjectiles(ecs *ecs.ECS, screen *ebiten.Image) {
	camX, camY := cameraOffset(ecs)

	tags.Projectile.Each(ecs.World, func(e *donburi.Entry) {
		p := components.Projectile.Get(e)
		sprite := components.Sprite.Get(e)
		if sprite.Image == nil {
			return
		}

		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()
		drawOp.GeoM.Translate(-sprite.PivotX, -sprite.PivotY)
		if p.Facing() < 0 {
			drawOp.GeoM.Scale(-1, 1)
		}
		drawOp.GeoM.Rotate(sprite.Rotation)
		drawOp.GeoM.Translate(p.X+camX, p.Y+camY)

		screen.DrawImage(sprite.Image, drawOp)
	})
}

// DrawFloatText draws battle cries rising over the fighters.
func DrawFloatText(ecs *ecs.ECS, screen *ebiten.Image) {
	camX, camY := cameraOffset(ecs)
	face := fonts.Bold.Get()

	tags.FloatText.Each(ecs.World, func(e *donburi.Entry) {
		ft := components.FloatText.Get(e)
		alpha := 1 - ft.AgeMS/cfg.FloatText.LifetimeMS
		if alpha <= 0 {
			return
		}
		drawScaled(screen, ft.Text, face, ft.X+camX, ft.Y+camY, 1, alpha, cfg.FloatText.CryColor)
	})
}
