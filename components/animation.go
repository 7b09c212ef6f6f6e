package components

import (
	"github.com/automoto/cryptofighters/assets/animations"
	"github.com/yohamta/donburi"
)

// AnimationData holds one clip per name. Clips are shared across characters;
// the sheet is looked up from the owning fighter's definition.
type AnimationData struct {
	CurrentAnimation *animations.Animation
	CurrentClip      string
	Animations       map[string]*animations.Animation
}

// SetAnimation switches clips and restarts the new one. Re-selecting the
// current clip is a no-op so loops keep running.
func (a *AnimationData) SetAnimation(clip string) {
	if a.CurrentClip == clip && a.CurrentAnimation != nil {
		return
	}

	anim, ok := a.Animations[clip]
	if !ok {
		a.CurrentAnimation = nil
		a.CurrentClip = clip
		return
	}
	a.CurrentAnimation = anim
	a.CurrentClip = clip
	a.CurrentAnimation.Restart()
}

// Frame is the sheet index to draw, 0 when no clip is set.
func (a *AnimationData) Frame() int {
	if a.CurrentAnimation == nil {
		return 0
	}
	return a.CurrentAnimation.Frame()
}

var Animation = donburi.NewComponentType[AnimationData]()
