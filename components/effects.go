package components

import "github.com/yohamta/donburi"

// ScreenShakeData tracks active screen shake effect on the camera
type ScreenShakeData struct {
	Intensity float64 // max offset in pixels
	Duration  int     // frames remaining
	Elapsed   int     // frames elapsed (for oscillation)
}

var ScreenShake = donburi.NewComponentType[ScreenShakeData]()

// FlashData drives the hurt flash shader on a fighter
type FlashData struct {
	RemainingMS float64
	TotalMS     float64
}

// Amount is the shader blend factor, fading from 1 to 0.
func (f *FlashData) Amount() float32 {
	if f.TotalMS <= 0 || f.RemainingMS <= 0 {
		return 0
	}
	return float32(f.RemainingMS / f.TotalMS)
}

var Flash = donburi.NewComponentType[FlashData]()

// SquashStretchData tracks sprite scale deformation for jump/land feel
type SquashStretchData struct {
	ScaleX, ScaleY   float64 // current scale
	TargetX, TargetY float64 // lerp target (usually 1.0, 1.0)
	LerpSpeed        float64 // how fast to return to normal
}

var SquashStretch = donburi.NewComponentType[SquashStretchData]()

// AutoDestroyData marks entities that should be destroyed after a duration
type AutoDestroyData struct {
	FramesRemaining int
}

var AutoDestroy = donburi.NewComponentType[AutoDestroyData]()
