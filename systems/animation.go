package systems

import (
	"github.com/automoto/cryptofighters/components"
	cfg "github.com/automoto/cryptofighters/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateAnimations picks each fighter's clip from its status and attack kind
// and advances it one tick.
func UpdateAnimations(e *ecs.ECS) {
	components.Fighter.Each(e.World, func(entry *donburi.Entry) {
		f := components.Fighter.Get(entry)
		anim := components.Animation.Get(entry)

		anim.SetAnimation(cfg.ClipFor(f.Status, f.AttackKind))
		if anim.CurrentAnimation != nil {
			anim.CurrentAnimation.Update()
		}
	})
}
