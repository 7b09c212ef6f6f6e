// Package spritegen draws fighter sheets, projectiles and arena backdrops at
// runtime from the palettes in the game data. It returns plain images so it
// can be tested without a graphics context.
package spritegen

import (
	"image"
	"image/color"
	"math"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"

	"github.com/automoto/cryptofighters/shared/gamedata"
)

// Clip names shared with the animation table.
const (
	ClipIdle           = "idle"
	ClipWalking        = "walking"
	ClipJumping        = "jumping"
	ClipHurt           = "hurt"
	ClipBlocking       = "blocking"
	ClipAttackBasic    = "attack_basic"
	ClipAttackSpecial1 = "attack_special1"
	ClipAttackSpecial2 = "attack_special2"
)

// Pose is the skeleton of one frame. All offsets assume the fighter faces right.
type Pose struct {
	Bob       float64 // vertical body offset
	Lean      float64 // radians, positive leans forward
	Reach     float64 // 0..1 lead arm extension
	TwoHanded bool    // both arms follow Reach
	Guard     bool
	Stride    float64 // -1..1 leg swing
	Tuck      float64 // 0..1 knees pulled up
	Kick      float64 // 0..1 lead leg extension
	Glow      float64 // 0..1 energy at the hands
}

type colors struct {
	body, accent, trim, skin color.RGBA
}

func paletteColors(p gamedata.Palette) colors {
	parse := func(hex, fallback string) color.RGBA {
		c, err := gamedata.ParseHexColor(hex)
		if err != nil {
			c, _ = gamedata.ParseHexColor(fallback)
		}
		return c
	}
	body := parse(p.Body, gamedata.DefaultPalette.Body)
	return colors{
		body:   body,
		accent: parse(p.Accent, gamedata.DefaultPalette.Accent),
		trim:   parse(p.Trim, gamedata.DefaultPalette.Trim),
		skin:   lighten(body, 0.35),
	}
}

func lighten(c color.RGBA, amount float64) color.RGBA {
	mix := func(v uint8) uint8 { return uint8(float64(v) + (255-float64(v))*amount) }
	return color.RGBA{R: mix(c.R), G: mix(c.G), B: mix(c.B), A: c.A}
}

// PoseFor returns the pose of frame i out of n for a clip.
func PoseFor(clip string, i, n int) Pose {
	if n < 1 {
		n = 1
	}
	t := float64(i) / float64(n)
	// peak runs 0 -> 1 -> 0 across the clip
	peak := 1.0
	if n > 1 {
		peak = math.Sin(math.Pi * float64(i) / float64(n-1))
	}

	switch clip {
	case ClipWalking:
		return Pose{Stride: math.Sin(2 * math.Pi * t), Bob: math.Abs(math.Sin(2*math.Pi*t)) * -2, Lean: 0.06}
	case ClipJumping:
		return Pose{Tuck: 0.4 + 0.6*peak, Reach: 0.2}
	case ClipHurt:
		return Pose{Lean: -0.3, Bob: 2, Stride: -0.3}
	case ClipBlocking:
		return Pose{Guard: true, Lean: -0.05, Stride: 0.3}
	case ClipAttackBasic:
		return Pose{Reach: peak, Lean: 0.15 * peak, Stride: 0.4}
	case ClipAttackSpecial1:
		return Pose{Reach: peak, TwoHanded: true, Glow: peak, Lean: 0.1 * peak, Stride: 0.5}
	case ClipAttackSpecial2:
		return Pose{Kick: peak, Lean: -0.15 * peak, Reach: 0.3 * peak}
	}
	return Pose{Bob: math.Sin(2*math.Pi*t) * 1.5}
}

// Frame draws a single fighter frame of size w x h with the feet at the
// bottom edge.
func Frame(ch *gamedata.Character, pose Pose, w, h int) image.Image {
	cs := paletteColors(ch.Palette)
	dc := gg.NewContext(w, h)

	fw, fh := float64(w), float64(h)
	cx := fw / 2
	feet := fh - 2
	scale := fh / 96
	hipY := feet - 30*scale + pose.Bob - 8*scale*pose.Tuck
	shoulderY := hipY - 28*scale
	headY := shoulderY - 12*scale

	dc.SetLineCapRound()

	// legs
	dc.SetColor(cs.trim)
	dc.SetLineWidth(8 * scale)
	legLen := 30 * scale
	back := pose.Stride * 9 * scale
	kneeLift := pose.Tuck * 14 * scale
	dc.DrawLine(cx-3*scale, hipY, cx-3*scale-back, feet-kneeLift)
	dc.Stroke()
	if pose.Kick > 0 {
		dc.DrawLine(cx+3*scale, hipY, cx+3*scale+legLen*pose.Kick+6*scale, hipY+legLen*(1-pose.Kick)*0.8)
	} else {
		dc.DrawLine(cx+3*scale, hipY, cx+3*scale+back, feet-kneeLift)
	}
	dc.Stroke()

	// torso, leaned around the hips
	dc.Push()
	dc.RotateAbout(pose.Lean, cx, hipY)
	dc.SetColor(cs.body)
	dc.DrawRoundedRectangle(cx-12*scale, shoulderY, 24*scale, hipY-shoulderY+4*scale, 6*scale)
	dc.Fill()

	// emblem with the character's initial
	dc.SetColor(cs.accent)
	dc.DrawCircle(cx, shoulderY+12*scale, 6*scale)
	dc.Fill()
	dc.SetColor(cs.trim)
	dc.DrawStringAnchored(initial(ch.Name), cx, shoulderY+12*scale, 0.5, 0.35)

	// head with shades
	dc.SetColor(cs.skin)
	dc.DrawCircle(cx+2*scale, headY, 10*scale)
	dc.Fill()
	dc.SetColor(cs.trim)
	dc.DrawRectangle(cx-2*scale, headY-3*scale, 13*scale, 4*scale)
	dc.Fill()

	// arms
	dc.SetColor(cs.skin)
	dc.SetLineWidth(6 * scale)
	armLen := 22 * scale
	shoulderX := cx + 2*scale
	lead := armTip(shoulderX, shoulderY+4*scale, armLen, pose.Reach, pose.Guard, false)
	dc.DrawLine(shoulderX, shoulderY+4*scale, lead.X, lead.Y)
	dc.Stroke()
	rearReach := 0.0
	if pose.TwoHanded {
		rearReach = pose.Reach
	}
	rear := armTip(shoulderX-6*scale, shoulderY+4*scale, armLen, rearReach, pose.Guard, true)
	dc.DrawLine(shoulderX-6*scale, shoulderY+4*scale, rear.X, rear.Y)
	dc.Stroke()

	if pose.Glow > 0.05 {
		for r := 3.0; r >= 1; r-- {
			a := uint8(60 * pose.Glow * (4 - r))
			dc.SetColor(color.RGBA{R: cs.accent.R, G: cs.accent.G, B: cs.accent.B, A: a})
			dc.DrawCircle(lead.X+2*scale, lead.Y, r*4*scale)
			dc.Fill()
		}
	}
	dc.Pop()

	return dc.Image()
}

// armTip returns the hand position of an arm hanging from (x, y).
func armTip(x, y, length, reach float64, guard, rear bool) gg.Point {
	switch {
	case guard:
		return gg.Point{X: x + length*0.55, Y: y - length*0.45}
	case reach > 0:
		return gg.Point{X: x + length*(0.45+0.75*reach), Y: y - length*0.05}
	case rear:
		return gg.Point{X: x - length*0.2, Y: y + length*0.85}
	}
	return gg.Point{X: x + length*0.35, Y: y + length*0.7}
}

func initial(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "?"
	}
	return strings.ToUpper(name[:1])
}

// Sheet lays out n frames of a clip side by side.
func Sheet(ch *gamedata.Character, clip string, n, w, h int) *image.NRGBA {
	if n < 1 {
		n = 1
	}
	sheet := imaging.New(w*n, h, color.Transparent)
	for i := 0; i < n; i++ {
		frame := Frame(ch, PoseFor(clip, i, n), w, h)
		if clip == ClipHurt {
			frame = recoil(frame, w, h, i)
		}
		sheet = imaging.Paste(sheet, frame, image.Pt(i*w, 0))
	}
	return sheet
}

// recoil tilts and brightens hurt frames.
func recoil(frame image.Image, w, h, i int) image.Image {
	angle := 8.0
	if i%2 == 1 {
		angle = 4
	}
	tilted := imaging.Rotate(frame, angle, color.Transparent)
	tilted = imaging.CropCenter(tilted, w, h)
	return imaging.AdjustBrightness(tilted, 20)
}

// Portrait renders the idle pose scaled to a square for select screens.
func Portrait(ch *gamedata.Character, size int) image.Image {
	frame := Frame(ch, PoseFor(ClipIdle, 0, 1), 96, 96)
	cropped := imaging.Crop(frame, image.Rect(16, 8, 80, 72))
	return imaging.Sharpen(imaging.Resize(cropped, size, size, imaging.Lanczos), 0.5)
}
