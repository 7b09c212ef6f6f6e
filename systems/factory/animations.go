package factory

import (
	"github.com/automoto/cryptofighters/assets/animations"
	"github.com/automoto/cryptofighters/components"
	cfg "github.com/automoto/cryptofighters/config"
)

// GenerateAnimations builds one clip per entry in the shared fighter table.
// Every character uses the same table; only the generated sheets differ.
func GenerateAnimations() *components.AnimationData {
	animData := &components.AnimationData{
		Animations: make(map[string]*animations.Animation, len(cfg.FighterAnimations)),
	}

	for clip, def := range cfg.FighterAnimations {
		step := def.Step
		if step <= 0 {
			step = 1
		}
		animData.Animations[clip] = animations.NewAnimation(def.First, def.Last, step, def.Speed, def.Loop)
	}

	animData.SetAnimation(cfg.ClipIdle)
	return animData
}
