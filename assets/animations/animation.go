package animations

// Animation steps through a range of sheet frames at a fixed tick rate.
type Animation struct {
	First            int
	Last             int
	Step             int     // how many indices do we move per frame
	SpeedInTps       float32 // how many ticks before next frame
	frameCounter     float32
	frame            int
	Looped           bool
	FreezeOnComplete bool // If true, stay on last frame instead of looping
}

func (a *Animation) Update() {
	a.frameCounter -= 1.0
	if a.frameCounter >= 0.0 {
		return
	}
	a.frameCounter = a.SpeedInTps
	a.frame += a.Step
	if a.frame <= a.Last {
		return
	}
	a.Looped = true
	if a.FreezeOnComplete {
		a.frame = a.Last
	} else {
		a.frame = a.First
	}
}

func (a *Animation) Frame() int {
	return a.frame
}

// Done reports whether a non-looping clip has shown its last frame.
func (a *Animation) Done() bool {
	return a.FreezeOnComplete && a.Looped
}

func (a *Animation) Restart() {
	a.frame = a.First
	a.frameCounter = a.SpeedInTps
	a.Looped = false
}

// NewAnimation builds a clip. Clips that do not loop hold their last frame.
func NewAnimation(first, last, step int, speed float32, loop bool) *Animation {
	return &Animation{
		First:            first,
		Last:             last,
		Step:             step,
		SpeedInTps:       speed,
		frameCounter:     speed,
		frame:            first,
		FreezeOnComplete: !loop,
	}
}
