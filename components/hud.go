package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// HealthTrail is the pale segment that lingers behind a health bar after a
// hit and then drains down to the real value.
type HealthTrail struct {
	Value   float64 // fraction of max health, 0..1
	Target  float64
	DelayMS float64
	Tween   *gween.Tween
}

// HUDData is the fight HUD singleton.
type HUDData struct {
	Trails [2]HealthTrail
}

var HUD = donburi.NewComponentType[HUDData]()

// BannerData is the centre-screen announcement: countdown digits, FIGHT!,
// round results and the match winner.
type BannerData struct {
	Text    string
	Sub     string
	Scale   float64
	Alpha   float64
	HoldMS  float64 // time left before the banner hides, <0 holds forever
	Visible bool
	Tween   *gween.Tween
}

var Banner = donburi.NewComponentType[BannerData]()

// FloatTextData is a short rising caption, used for battle cries.
type FloatTextData struct {
	Text  string
	X, Y  float64
	AgeMS float64
	Side  int
}

var FloatText = donburi.NewComponentType[FloatTextData]()
