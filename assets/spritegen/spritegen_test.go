package spritegen

import (
	"image"
	"image/color"
	"testing"

	"github.com/automoto/cryptofighters/shared/gamedata"
)

func testCharacter() *gamedata.Character {
	return &gamedata.Character{
		ID:      "hodl_master",
		Name:    "HODL Master",
		Palette: gamedata.Palette{Body: "#2e8b57", Accent: "#7df9ff", Trim: "#0b2a1b"},
	}
}

func opaquePixels(img image.Image, r image.Rectangle) int {
	n := 0
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if _, _, _, a := img.At(x, y).RGBA(); a > 0 {
				n++
			}
		}
	}
	return n
}

func TestSheetLayout(t *testing.T) {
	tests := []struct {
		clip   string
		frames int
	}{
		{ClipIdle, 4},
		{ClipWalking, 6},
		{ClipHurt, 2},
		{ClipBlocking, 1},
		{ClipAttackSpecial1, 5},
	}
	for _, tt := range tests {
		t.Run(tt.clip, func(t *testing.T) {
			sheet := Sheet(testCharacter(), tt.clip, tt.frames, 96, 96)
			if got := sheet.Bounds().Dx(); got != 96*tt.frames {
				t.Fatalf("sheet width = %d, want %d", got, 96*tt.frames)
			}
			if got := sheet.Bounds().Dy(); got != 96 {
				t.Fatalf("sheet height = %d, want 96", got)
			}
			for i := 0; i < tt.frames; i++ {
				cell := image.Rect(i*96, 0, (i+1)*96, 96)
				if opaquePixels(sheet, cell) == 0 {
					t.Errorf("frame %d is empty", i)
				}
			}
		})
	}
}

func TestPoseAttackPeaksMidClip(t *testing.T) {
	first := PoseFor(ClipAttackBasic, 0, 5)
	mid := PoseFor(ClipAttackBasic, 2, 5)
	last := PoseFor(ClipAttackBasic, 4, 5)
	if mid.Reach <= first.Reach || mid.Reach <= last.Reach {
		t.Errorf("reach should peak mid-swing: %v %v %v", first.Reach, mid.Reach, last.Reach)
	}
	if !PoseFor(ClipBlocking, 0, 1).Guard {
		t.Error("blocking pose should raise the guard")
	}
}

func TestPaletteFallback(t *testing.T) {
	ch := testCharacter()
	ch.Palette = gamedata.Palette{Body: "not a colour"}
	cs := paletteColors(ch.Palette)
	want, _ := gamedata.ParseHexColor(gamedata.DefaultPalette.Body)
	if cs.body != want {
		t.Errorf("body = %v, want default %v", cs.body, want)
	}
}

func TestProjectileSprites(t *testing.T) {
	c := color.RGBA{R: 200, G: 100, B: 50, A: 255}
	for _, kind := range []string{"bullet", "arrow", "magic", "fireball", "unknown"} {
		img := Projectile(kind, c, 24)
		if img.Bounds().Dx() != 24 || img.Bounds().Dy() != 24 {
			t.Errorf("%s: size %v", kind, img.Bounds())
		}
		if opaquePixels(img, img.Bounds()) == 0 {
			t.Errorf("%s: sprite is empty", kind)
		}
	}
}

func TestBackdropDeterministic(t *testing.T) {
	arena := &gamedata.Arena{
		ID:         "token2049_dubai",
		Name:       "Token2049 Dubai Arena",
		Background: "#1a0f2e",
		Lighting:   "neon",
		Features:   []string{"crowd", "jumbotron", "sponsor_banners"},
		Bounds:     gamedata.Bounds{Left: 0, Right: 320, Ground: 150},
	}
	a := Backdrop(arena, 320, 180)
	b := Backdrop(arena, 320, 180)
	for _, p := range []image.Point{{10, 10}, {160, 90}, {300, 120}, {50, 170}} {
		if a.At(p.X, p.Y) != b.At(p.X, p.Y) {
			t.Fatalf("backdrop differs at %v", p)
		}
	}
	// below the ground line is solid floor
	if _, _, _, alpha := a.At(5, 175).RGBA(); alpha == 0 {
		t.Error("floor should be opaque")
	}
}

func TestPortraitSize(t *testing.T) {
	img := Portrait(testCharacter(), 112)
	if img.Bounds().Dx() != 112 || img.Bounds().Dy() != 112 {
		t.Errorf("portrait size %v", img.Bounds())
	}
}
