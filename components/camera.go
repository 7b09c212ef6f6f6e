package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CameraData offsets the whole fight scene. Arenas fit the screen, so the
// camera only moves while shaking.
type CameraData struct {
	Offset math.Vec2
}

var Camera = donburi.NewComponentType[CameraData]()
