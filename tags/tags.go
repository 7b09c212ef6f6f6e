package tags

import "github.com/yohamta/donburi"

var (
	Fighter    = donburi.NewTag().SetName("Fighter")
	Projectile = donburi.NewTag().SetName("Projectile")
	FloatText  = donburi.NewTag().SetName("FloatText")
)
