package components

import (
	"github.com/automoto/cryptofighters/shared/combat"
	"github.com/yohamta/donburi"
)

// ProjectileData links a rendered entity to a live projectile in the stage.
type ProjectileData struct {
	*combat.Projectile
}

var Projectile = donburi.NewComponentType[ProjectileData]()
