package factory

import (
	"github.com/automoto/cryptofighters/archetypes"
	"github.com/automoto/cryptofighters/assets"
	"github.com/automoto/cryptofighters/components"
	cfg "github.com/automoto/cryptofighters/config"
	"github.com/automoto/cryptofighters/shared/combat"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateProjectile spawns the visual for a projectile the stage just fired.
func CreateProjectile(ecs *ecs.ECS, p *combat.Projectile) *donburi.Entry {
	entry := archetypes.Projectile.Spawn(ecs)
	components.Projectile.SetValue(entry, components.ProjectileData{Projectile: p})

	img := assets.GetProjectile(p.Type)
	half := float64(cfg.ProjectileView.SpriteSize) / 2
	sprite := components.SpriteData{
		Image:  img,
		PivotX: half,
		PivotY: half,
	}
	switch p.Type {
	case "magic", "fireball":
		sprite.Spin = cfg.ProjectileView.SpinSpeed * p.Facing()
	}
	components.Sprite.SetValue(entry, sprite)
	return entry
}
