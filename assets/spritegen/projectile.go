package spritegen

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
)

// Projectile draws a right-facing projectile sprite of the given type.
func Projectile(kind string, c color.RGBA, size int) image.Image {
	dc := gg.NewContext(size, size)
	s := float64(size)
	mid := s / 2

	switch kind {
	case "bullet":
		dc.SetColor(c)
		dc.DrawRoundedRectangle(s*0.15, mid-s*0.12, s*0.7, s*0.24, s*0.12)
		dc.Fill()
		dc.SetColor(lighten(c, 0.6))
		dc.DrawCircle(s*0.72, mid, s*0.08)
		dc.Fill()
		return dc.Image()

	case "arrow":
		dc.SetColor(c)
		dc.SetLineWidth(s * 0.08)
		dc.DrawLine(s*0.1, mid, s*0.75, mid)
		dc.Stroke()
		dc.MoveTo(s*0.95, mid)
		dc.LineTo(s*0.7, mid-s*0.15)
		dc.LineTo(s*0.7, mid+s*0.15)
		dc.ClosePath()
		dc.Fill()
		dc.SetColor(lighten(c, 0.5))
		dc.DrawLine(s*0.1, mid, s*0.02, mid-s*0.12)
		dc.DrawLine(s*0.1, mid, s*0.02, mid+s*0.12)
		dc.Stroke()
		return dc.Image()

	case "fireball":
		glowTail(dc, c, s)
		dc.SetColor(color.RGBA{R: 255, G: 230, B: 120, A: 255})
		dc.DrawCircle(mid+s*0.1, mid, s*0.16)
		dc.Fill()
		return imaging.Blur(dc.Image(), 0.6)
	}

	// magic and anything unknown
	for i := 4; i >= 1; i-- {
		r := float64(i) * s * 0.1
		dc.SetColor(color.RGBA{R: c.R, G: c.G, B: c.B, A: uint8(255 / i)})
		dc.DrawCircle(mid, mid, r)
		dc.Fill()
	}
	dc.SetColor(lighten(c, 0.8))
	dc.DrawCircle(mid, mid, s*0.08)
	dc.Fill()
	return imaging.Blur(dc.Image(), 0.8)
}

func glowTail(dc *gg.Context, c color.RGBA, s float64) {
	for i := 0; i < 4; i++ {
		x := s*0.25 + float64(i)*s*0.1
		r := s * (0.12 + float64(i)*0.05)
		dc.SetColor(color.RGBA{R: c.R, G: c.G, B: c.B, A: uint8(90 + i*40)})
		dc.DrawCircle(x, s/2, r)
		dc.Fill()
	}
}
