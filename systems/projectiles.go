package systems

import (
	"github.com/automoto/cryptofighters/components"
	cfg "github.com/automoto/cryptofighters/config"
	"github.com/automoto/cryptofighters/shared/combat"
	"github.com/automoto/cryptofighters/systems/factory"
	"github.com/automoto/cryptofighters/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateProjectiles mirrors the stage's live projectiles as entities. The
// stage owns the simulation; entities only carry the sprite.
func UpdateProjectiles(e *ecs.ECS) {
	stage, ok := getStage(e)
	if !ok {
		return
	}

	live := make(map[*combat.Projectile]bool)
	for _, p := range stage.ActiveProjectiles() {
		live[p] = true
	}

	var stale []*donburi.Entry
	tags.Projectile.Each(e.World, func(entry *donburi.Entry) {
		p := components.Projectile.Get(entry).Projectile
		if !live[p] || p.Dead {
			stale = append(stale, entry)
			return
		}
		delete(live, p)

		sprite := components.Sprite.Get(entry)
		sprite.Rotation += sprite.Spin * cfg.C.DeltaMS() / 1000
	})
	for _, entry := range stale {
		entry.Remove()
	}

	// Whatever is left was fired this tick
	for _, p := range stage.ActiveProjectiles() {
		if live[p] {
			factory.CreateProjectile(e, p)
		}
	}
}
