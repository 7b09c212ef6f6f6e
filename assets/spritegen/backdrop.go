package spritegen

import (
	"hash/fnv"
	"image"
	"image/color"
	"math/rand"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"

	"github.com/automoto/cryptofighters/shared/gamedata"
)

var fallbackBackground = color.RGBA{R: 16, G: 16, B: 32, A: 255}

// Backdrop paints an arena's background, features and floor. The same arena
// always produces the same picture.
func Backdrop(a *gamedata.Arena, w, h int) image.Image {
	bg, err := gamedata.ParseHexColor(a.Background)
	if err != nil {
		bg = fallbackBackground
	}
	rng := rand.New(rand.NewSource(seedFor(a.ID)))

	dc := gg.NewContext(w, h)
	fw, fh := float64(w), float64(h)
	ground := a.Bounds.Ground
	if ground <= 0 || ground > fh {
		ground = fh * 0.83
	}

	grad := gg.NewLinearGradient(0, 0, 0, ground)
	grad.AddColorStop(0, lighten(bg, 0.15))
	grad.AddColorStop(1, bg)
	dc.SetFillStyle(grad)
	dc.DrawRectangle(0, 0, fw, ground)
	dc.Fill()

	lightingStripes(dc, a.Lighting, fw, ground, rng)

	for _, feature := range a.Features {
		switch feature {
		case "crowd":
			crowd := crowdLayer(w, int(ground), bg, rng)
			dc.DrawImage(imaging.Blur(crowd, 1.5), 0, 0)
		case "jumbotron":
			jumbotron(dc, a.Name, fw)
		case "sponsor_banners":
			banners(dc, fw, ground, rng)
		case "ticker_wall":
			tickerWall(dc, fw, rng)
		case "rig_racks":
			rigRacks(dc, fw, ground, rng)
		case "heat_haze":
			dc.SetColor(color.RGBA{R: 255, G: 120, B: 40, A: 28})
			dc.DrawRectangle(0, ground-80, fw, 80)
			dc.Fill()
		}
	}

	// floor
	dc.SetColor(lighten(bg, 0.08))
	dc.DrawRectangle(0, ground, fw, fh-ground)
	dc.Fill()
	dc.SetColor(lighten(bg, 0.45))
	dc.SetLineWidth(3)
	dc.DrawLine(0, ground, fw, ground)
	dc.Stroke()

	return dc.Image()
}

func seedFor(id string) int64 {
	h := fnv.New64a()
	h.Write([]byte(id))
	return int64(h.Sum64() >> 1)
}

func lightingStripes(dc *gg.Context, lighting string, w, ground float64, rng *rand.Rand) {
	var c color.RGBA
	switch lighting {
	case "neon":
		c = color.RGBA{R: 255, G: 0, B: 200, A: 30}
	case "fluorescent":
		c = color.RGBA{R: 200, G: 255, B: 220, A: 22}
	case "dim":
		c = color.RGBA{R: 255, G: 160, B: 60, A: 14}
	default:
		return
	}
	dc.SetColor(c)
	for i := 0; i < 6; i++ {
		x := rng.Float64() * w
		dc.MoveTo(x, 0)
		dc.LineTo(x+60, 0)
		dc.LineTo(x+200, ground)
		dc.LineTo(x-80, ground)
		dc.ClosePath()
		dc.Fill()
	}
}

func crowdLayer(w, ground int, bg color.RGBA, rng *rand.Rand) image.Image {
	dc := gg.NewContext(w, ground)
	shade := lighten(bg, 0.25)
	for row := 0; row < 3; row++ {
		y := float64(ground) - 150 + float64(row)*40
		for x := 10.0; x < float64(w); x += 22 + rng.Float64()*10 {
			dc.SetColor(shade)
			dc.DrawCircle(x, y, 9)
			dc.Fill()
			dc.DrawRoundedRectangle(x-11, y+8, 22, 30, 6)
			dc.Fill()
		}
		shade = lighten(shade, 0.1)
	}
	return dc.Image()
}

func jumbotron(dc *gg.Context, name string, w float64) {
	dc.SetColor(color.RGBA{R: 10, G: 10, B: 14, A: 255})
	dc.DrawRoundedRectangle(w/2-170, 50, 340, 110, 8)
	dc.Fill()
	dc.SetColor(color.RGBA{R: 247, G: 147, B: 26, A: 255})
	dc.SetLineWidth(3)
	dc.DrawRoundedRectangle(w/2-170, 50, 340, 110, 8)
	dc.Stroke()
	dc.DrawStringAnchored(name, w/2, 105, 0.5, 0.5)
}

func banners(dc *gg.Context, w, ground float64, rng *rand.Rand) {
	labels := []string{"HODL", "WAGMI", "GM", "L2", "DeFi", "NFT"}
	for i := 0; i < 5; i++ {
		x := 40 + float64(i)*(w-80)/5
		dc.SetColor(color.RGBA{R: uint8(80 + rng.Intn(150)), G: uint8(40 + rng.Intn(100)), B: uint8(120 + rng.Intn(130)), A: 200})
		dc.DrawRectangle(x, ground-210, 120, 36)
		dc.Fill()
		dc.SetColor(color.White)
		dc.DrawStringAnchored(labels[rng.Intn(len(labels))], x+60, ground-192, 0.5, 0.5)
	}
}

func tickerWall(dc *gg.Context, w float64, rng *rand.Rand) {
	symbols := []string{"BTC", "ETH", "SOL", "DOGE", "ADA", "XRP"}
	for row := 0; row < 6; row++ {
		y := 40 + float64(row)*34
		for x := 20.0; x < w-60; x += 110 {
			if rng.Intn(2) == 0 {
				dc.SetColor(color.RGBA{R: 40, G: 220, B: 90, A: 220})
			} else {
				dc.SetColor(color.RGBA{R: 230, G: 60, B: 60, A: 220})
			}
			dc.DrawString(symbols[rng.Intn(len(symbols))], x, y)
		}
	}
}

func rigRacks(dc *gg.Context, w, ground float64, rng *rand.Rand) {
	for x := 30.0; x < w-80; x += 150 {
		dc.SetColor(color.RGBA{R: 40, G: 40, B: 46, A: 255})
		dc.DrawRectangle(x, ground-240, 90, 230)
		dc.Fill()
		for y := ground - 230; y < ground-20; y += 18 {
			if rng.Intn(3) == 0 {
				dc.SetColor(color.RGBA{R: 60, G: 255, B: 120, A: 255})
			} else {
				dc.SetColor(color.RGBA{R: 255, G: 120, B: 40, A: 255})
			}
			dc.DrawCircle(x+12, y, 2.5)
			dc.Fill()
		}
	}
}
