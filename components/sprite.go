package components

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

type SpriteData struct {
	Image    *ebiten.Image
	Rotation float64
	Spin     float64 // radians per second, 0 for none
	PivotX   float64
	PivotY   float64
}

var Sprite = donburi.NewComponentType[SpriteData]()
