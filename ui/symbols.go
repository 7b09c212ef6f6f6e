package ui

import (
	"math/rand"

	cfg "github.com/automoto/cryptofighters/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// floatingSymbol is one ticker symbol drifting up the results screen.
type floatingSymbol struct {
	Text  string
	X, Y  float64
	Alpha float64

	rise     *gween.Tween
	duration float64
}

// symbolField keeps a fixed number of symbols rising and respawning at the bottom.
type symbolField struct {
	symbols []*floatingSymbol
	rng     *rand.Rand
	width   float64
	height  float64
}

func newSymbolField(seed int64, width, height float64) *symbolField {
	f := &symbolField{
		rng:    rand.New(rand.NewSource(seed)),
		width:  width,
		height: height,
	}
	for i := 0; i < cfg.Results.SymbolCount; i++ {
		s := &floatingSymbol{}
		f.respawn(s)
		// Stagger the first wave over the whole screen.
		y, _ := s.rise.Set(float32(f.rng.Float64() * s.duration))
		s.Y = float64(y)
		s.Alpha = fade(s.Y, f.height)
		f.symbols = append(f.symbols, s)
	}
	return f
}

func (f *symbolField) respawn(s *floatingSymbol) {
	s.Text = cfg.Results.Symbols[f.rng.Intn(len(cfg.Results.Symbols))]
	s.X = f.rng.Float64() * f.width
	s.duration = cfg.Results.SymbolRiseMS * (0.7 + 0.6*f.rng.Float64())
	s.rise = gween.New(float32(f.height+20), -20, float32(s.duration), ease.InOutSine)
	s.Y = f.height + 20
	s.Alpha = 0
}

// Update advances every symbol by dt milliseconds.
func (f *symbolField) Update(dt float64) {
	for _, s := range f.symbols {
		y, done := s.rise.Update(float32(dt))
		if done {
			f.respawn(s)
			continue
		}
		s.Y = float64(y)
		s.Alpha = fade(s.Y, f.height)
	}
}

// fade ramps alpha in near the bottom edge and out near the top.
func fade(y, height float64) float64 {
	edge := height * 0.2
	switch {
	case y > height-edge:
		return clamp01((height - y) / edge)
	case y < edge:
		return clamp01(y / edge)
	}
	return 1
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func (f *symbolField) Draw(screen *ebiten.Image, face text.Face) {
	for _, s := range f.symbols {
		op := &text.DrawOptions{}
		op.GeoM.Translate(s.X, s.Y)
		op.ColorScale.ScaleWithColor(cfg.Results.SymbolColor)
		op.ColorScale.ScaleAlpha(float32(s.Alpha))
		text.Draw(screen, s.Text, face, op)
	}
}
