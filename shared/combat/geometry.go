// Package combat holds the engine-independent fight rules: the fighter status
// machine, projectiles and per-tick hit resolution. It has no dependency on
// ebiten so the headless simulator can drive it.
package combat

// Rect is an axis-aligned box with its origin at the top-left corner.
type Rect struct {
	X, Y, W, H float64
}

// Overlaps reports whether two boxes share any area. Touching edges do not count.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W && o.X < r.X+r.W &&
		r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

// Outside reports whether r lies entirely beyond view grown by margin.
func (r Rect) Outside(view Rect, margin float64) bool {
	return r.X+r.W < view.X-margin || r.X > view.X+view.W+margin ||
		r.Y+r.H < view.Y-margin || r.Y > view.Y+view.H+margin
}

// CueKind names a fire-and-forget event for audio and effects.
type CueKind int

const (
	CueJump CueKind = iota
	CueAttackBasic
	CueAttackSpecial
	CueProjectile
	CueHit
	CueBlocked
	CueKO
	CueBattleCry
)

// Cue is emitted by a fighter and drained by the presentation layer.
type Cue struct {
	Kind CueKind
	Side int
	Text string
}
