package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"golang.org/x/image/font"
)

// drawCentered draws s horizontally centred on cx with its baseline at y.
func drawCentered(screen *ebiten.Image, s string, face font.Face, cx, y float64, clr color.Color) {
	b := text.BoundString(face, s)
	text.Draw(screen, s, face, int(cx)-b.Dx()/2, int(y), clr)
}

// drawRight draws s so that it ends at x.
func drawRight(screen *ebiten.Image, s string, face font.Face, x, y float64, clr color.Color) {
	b := text.BoundString(face, s)
	text.Draw(screen, s, face, int(x)-b.Dx(), int(y), clr)
}

// drawScaled draws s centred on (cx, cy), scaled and faded.
func drawScaled(screen *ebiten.Image, s string, face font.Face, cx, cy, scale, alpha float64, clr color.Color) {
	b := text.BoundString(face, s)
	op := &ebiten.DrawImageOptions{}
	// text.DrawWithOptions places the dot at the origin; shift so the box is centred
	op.GeoM.Translate(-float64(b.Min.X+b.Dx()/2), -float64(b.Min.Y+b.Dy()/2))
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(cx, cy)
	op.ColorScale.ScaleWithColor(clr)
	op.ColorScale.ScaleAlpha(float32(alpha))
	text.DrawWithOptions(screen, s, face, op)
}
