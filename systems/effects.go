package systems

import (
	"math"

	"github.com/automoto/cryptofighters/components"
	"github.com/automoto/cryptofighters/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects processes visual effect components (flash, squash/stretch,
// floating captions, auto-destroy)
func UpdateEffects(ecs *ecs.ECS) {
	dt := config.C.DeltaMS()
	updateFlashEffects(ecs, dt)
	updateLandingSquash(ecs)
	updateSquashStretchEffects(ecs)
	updateFloatText(ecs, dt)
	updateAutoDestroy(ecs)
}

// updateFlashEffects counts hurt flashes down
func updateFlashEffects(ecs *ecs.ECS, dt float64) {
	components.Flash.Each(ecs.World, func(e *donburi.Entry) {
		flash := components.Flash.Get(e)
		if flash.RemainingMS > 0 {
			flash.RemainingMS = math.Max(0, flash.RemainingMS-dt)
		}
	})
}

// updateLandingSquash squashes a fighter on the tick it touches down
func updateLandingSquash(ecs *ecs.ECS) {
	components.Fighter.Each(ecs.World, func(e *donburi.Entry) {
		f := components.Fighter.Get(e)
		if f.Grounded && !f.WasGrounded {
			TriggerSquashStretch(e, config.SquashStretch.LandX, config.SquashStretch.LandY)
		}
		f.WasGrounded = f.Grounded
	})
}

// updateSquashStretchEffects lerps scale values toward target and removes when normalized
func updateSquashStretchEffects(ecs *ecs.ECS) {
	var toRemove []*donburi.Entry

	components.SquashStretch.Each(ecs.World, func(e *donburi.Entry) {
		ss := components.SquashStretch.Get(e)

		ss.ScaleX += (ss.TargetX - ss.ScaleX) * ss.LerpSpeed
		ss.ScaleY += (ss.TargetY - ss.ScaleY) * ss.LerpSpeed

		threshold := 0.01
		if math.Abs(ss.ScaleX-ss.TargetX) < threshold && math.Abs(ss.ScaleY-ss.TargetY) < threshold {
			toRemove = append(toRemove, e)
		}
	})

	for _, e := range toRemove {
		e.RemoveComponent(components.SquashStretch)
	}
}

func updateFloatText(ecs *ecs.ECS, dt float64) {
	components.FloatText.Each(ecs.World, func(e *donburi.Entry) {
		ft := components.FloatText.Get(e)
		ft.AgeMS += dt
		ft.Y -= config.FloatText.RiseSpeed * dt / 1000
	})
}

// updateAutoDestroy removes entities whose frame countdown ran out
func updateAutoDestroy(ecs *ecs.ECS) {
	var toDestroy []*donburi.Entry

	components.AutoDestroy.Each(ecs.World, func(e *donburi.Entry) {
		ad := components.AutoDestroy.Get(e)
		ad.FramesRemaining--
		if ad.FramesRemaining <= 0 {
			toDestroy = append(toDestroy, e)
		}
	})

	for _, e := range toDestroy {
		e.Remove()
	}
}

// TriggerSquashStretch adds a squash/stretch effect to an entity
func TriggerSquashStretch(entry *donburi.Entry, scaleX, scaleY float64) {
	if entry.HasComponent(components.SquashStretch) {
		ss := components.SquashStretch.Get(entry)
		ss.ScaleX = scaleX
		ss.ScaleY = scaleY
		ss.TargetX = 1.0
		ss.TargetY = 1.0
		ss.LerpSpeed = config.SquashStretch.LerpSpeed
	} else {
		entry.AddComponent(components.SquashStretch)
		components.SquashStretch.Set(entry, &components.SquashStretchData{
			ScaleX:    scaleX,
			ScaleY:    scaleY,
			TargetX:   1.0,
			TargetY:   1.0,
			LerpSpeed: config.SquashStretch.LerpSpeed,
		})
	}
}

// TriggerHurtFlash starts the white-hot flash on a fighter that took a hit.
func TriggerHurtFlash(entry *donburi.Entry) {
	if !entry.HasComponent(components.Flash) {
		return
	}
	flash := components.Flash.Get(entry)
	flash.TotalMS = config.FighterView.HurtFlashMS
	flash.RemainingMS = config.FighterView.HurtFlashMS
}
