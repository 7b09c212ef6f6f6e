package systems

import (
	"image/color"
	"strconv"

	"github.com/automoto/cryptofighters/components"
	cfg "github.com/automoto/cryptofighters/config"
	"github.com/automoto/cryptofighters/fonts"
	"github.com/automoto/cryptofighters/shared/rules"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

func getBanner(e *ecs.ECS) (*components.BannerData, bool) {
	entry, ok := components.Banner.First(e.World)
	if !ok {
		return nil, false
	}
	return components.Banner.Get(entry), true
}

// ShowBanner pops a centre-screen announcement. holdMS < 0 keeps it up
// until the next one replaces it.
func ShowBanner(e *ecs.ECS, text, sub string, holdMS float64) {
	b, ok := getBanner(e)
	if !ok {
		return
	}
	showBanner(b, text, sub, holdMS)
}

func showBanner(b *components.BannerData, text, sub string, holdMS float64) {
	b.Text = text
	b.Sub = sub
	b.HoldMS = holdMS
	b.Visible = true
	b.Alpha = 1
	b.Scale = cfg.Banner.StartScale
	b.Tween = gween.New(float32(cfg.Banner.StartScale), 1, float32(cfg.Banner.PopMS), ease.OutBack)
}

// UpdateBanner ticks the countdown digits and the pop-in tween.
func UpdateBanner(e *ecs.ECS) {
	b, ok := getBanner(e)
	if !ok {
		return
	}
	if m, ok := getMatch(e); ok && m.State == rules.Countdown && m.CountdownValue > 0 {
		digit := strconv.Itoa(m.CountdownValue)
		if b.Text != digit {
			sub := b.Sub
			showBanner(b, digit, sub, -1)
		}
	}
	advanceBanner(b, cfg.C.DeltaMS())
}

func advanceBanner(b *components.BannerData, dt float64) {
	if !b.Visible {
		return
	}
	if b.Tween != nil {
		scale, done := b.Tween.Update(float32(dt))
		b.Scale = float64(scale)
		if done {
			b.Tween = nil
			b.Scale = 1
		}
	}
	if b.HoldMS < 0 {
		return
	}
	b.HoldMS -= dt
	if fade := cfg.Banner.PopMS; b.HoldMS < fade {
		b.Alpha = max(0, b.HoldMS/fade)
	}
	if b.HoldMS <= 0 {
		b.Visible = false
	}
}

// DrawBanner renders the announcement over the fight.
func DrawBanner(e *ecs.ECS, screen *ebiten.Image) {
	b, ok := getBanner(e)
	if !ok || !b.Visible || b.Text == "" {
		return
	}
	if m, ok := getMatch(e); ok && m.State == rules.Countdown {
		vector.FillRect(screen, 0, 0, float32(cfg.C.Width), float32(cfg.C.Height),
			color.RGBA{0, 0, 0, 90}, false)
	}

	cx := float64(cfg.C.Width) / 2
	drawScaled(screen, b.Text, fonts.Banner.Get(), cx+3, cfg.Banner.Y+3, b.Scale, b.Alpha*0.6, cfg.Black)
	drawScaled(screen, b.Text, fonts.Banner.Get(), cx, cfg.Banner.Y, b.Scale, b.Alpha, cfg.Banner.Color)
	if b.Sub != "" {
		drawScaled(screen, b.Sub, fonts.Bold.Get(), cx, cfg.Banner.Y+56, 1, b.Alpha, cfg.Banner.SubColor)
	}
}
