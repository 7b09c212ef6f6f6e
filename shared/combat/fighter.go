package combat

import (
	"math"

	"github.com/automoto/cryptofighters/shared/gamedata"
	"github.com/automoto/cryptofighters/shared/rules"
)

// Fighter is the live state of one combatant for the length of a fight.
type Fighter struct {
	Side  int
	Def   *gamedata.Character
	Moves [rules.AttackKindCount]*gamedata.Move

	Health    float64
	MaxHealth float64

	X, Y        float64 // Centre and feet
	VX, VY      float64
	FacingRight bool
	Grounded    bool

	Status     rules.Status
	AttackKind rules.AttackKind
	Blocking   bool

	attackTimer   float64
	hurtTimer     float64
	hitRegistered bool
	pendingShot   bool

	Projectiles []*Projectile
	cues        []Cue
}

// NewFighter creates a fighter standing on ground at x.
func NewFighter(side int, def *gamedata.Character, moves [rules.AttackKindCount]*gamedata.Move, x, ground float64) *Fighter {
	f := &Fighter{
		Side:      side,
		Def:       def,
		Moves:     moves,
		MaxHealth: def.Stats.Health,
	}
	f.Reset(x, ground, side == 0)
	return f
}

// Reset restores full health and places the fighter for a new round.
func (f *Fighter) Reset(x, ground float64, facingRight bool) {
	f.Health = f.MaxHealth
	f.X, f.Y = x, ground
	f.VX, f.VY = 0, 0
	f.FacingRight = facingRight
	f.Grounded = true
	f.Status = rules.Idle
	f.AttackKind = rules.Basic
	f.Blocking = false
	f.attackTimer = 0
	f.hurtTimer = 0
	f.hitRegistered = false
	f.pendingShot = false
	f.Projectiles = nil
	f.cues = f.cues[:0]
}

func (f *Fighter) speed() float64 {
	if f.Def.Stats.Speed > 0 {
		return f.Def.Stats.Speed
	}
	return rules.Fighter.DefaultSpeed
}

func (f *Fighter) busy() bool {
	return f.Status == rules.Attacking || f.Status == rules.Hurt
}

func (f *Fighter) MoveLeft() {
	f.move(-1)
}

func (f *Fighter) MoveRight() {
	f.move(1)
}

func (f *Fighter) move(dir float64) {
	if f.busy() || f.Blocking {
		return
	}
	f.VX = dir * f.speed()
	f.FacingRight = dir > 0
	if f.Grounded {
		f.Status = rules.Walking
	}
}

// StopMovement zeroes horizontal speed unless an attack or hit reaction is in
// progress.
func (f *Fighter) StopMovement() {
	if f.busy() {
		return
	}
	f.VX = 0
	if f.Status == rules.Walking {
		f.Status = rules.Idle
	}
}

// Halt freezes the fighter whatever its status. Used while a round counts down.
func (f *Fighter) Halt() {
	f.VX = 0
	f.Blocking = false
	if f.Grounded && f.Status != rules.Hurt {
		f.Status = rules.Idle
	}
}

func (f *Fighter) Jump() {
	if !f.Grounded || f.busy() {
		return
	}
	f.VY = rules.Fighter.JumpVelocity
	f.Grounded = false
	f.Blocking = false
	f.Status = rules.Jumping
	f.cue(CueJump, "")
}

// Attack starts a swing of the given kind. It is rejected while the previous
// swing's cooldown runs or while the fighter is hurt.
func (f *Fighter) Attack(kind rules.AttackKind) bool {
	if f.attackTimer > 0 || f.Status == rules.Hurt {
		return false
	}
	f.AttackKind = kind
	f.Status = rules.Attacking
	f.Blocking = false
	f.attackTimer = f.Cooldown(kind)
	f.hitRegistered = false

	if f.Moves[kind].Ranged() {
		// The projectile carries the damage for this swing.
		f.hitRegistered = true
		f.pendingShot = true
	}
	if kind == rules.Basic {
		f.cue(CueAttackBasic, "")
	} else {
		f.cue(CueAttackSpecial, "")
	}
	return true
}

// Block raises or lowers the guard. Ignored mid-swing or while hurt.
func (f *Fighter) Block(on bool) {
	if f.busy() {
		return
	}
	f.Blocking = on
	switch {
	case on:
		f.VX = 0
		f.Status = rules.Blocking
	case f.Status == rules.Blocking:
		f.Status = rules.Idle
	}
}

// TakeDamage applies a hit and reports whether the fighter was defeated.
// Blocking scales damage and knockback down.
func (f *Fighter) TakeDamage(amount, knockback float64) bool {
	blocked := f.Blocking
	if blocked {
		amount *= rules.Fighter.BlockDamageFactor
		knockback *= rules.Fighter.BlockKnockbackFactor
	}

	f.Health -= amount
	f.VX += knockback
	if blocked {
		f.cue(CueBlocked, "")
	} else {
		f.cue(CueHit, "")
	}

	if f.Health <= 0 {
		f.Health = 0
		f.cue(CueKO, "")
		return true
	}

	f.Status = rules.Hurt
	f.hurtTimer = rules.Fighter.HurtMS
	f.Blocking = false
	return false
}

// AttackDamage derives a swing's damage from the attack stat.
func (f *Fighter) AttackDamage(kind rules.AttackKind) float64 {
	attack := f.Def.Stats.Attack
	if attack <= 0 {
		return 0
	}
	// Nudge before flooring so 100 * 0.07 style products do not lose a point.
	dmg := math.Floor(attack*rules.Fighter.DamagePct[kind] + 1e-9)
	return math.Max(dmg, rules.Fighter.MinDamage)
}

// Cooldown is the move's own cooldown, or the default for its kind.
func (f *Fighter) Cooldown(kind rules.AttackKind) float64 {
	if m := f.Moves[kind]; m != nil && m.Cooldown > 0 {
		return m.Cooldown
	}
	return rules.Fighter.CooldownMS[kind]
}

// AttackRange is the reach of the current swing.
func (f *Fighter) AttackRange() float64 {
	if m := f.Moves[f.AttackKind]; m != nil && m.Range > 0 {
		return m.Range
	}
	return rules.Combat.DefaultReach
}

// AttackReady reports whether a new swing would be accepted.
func (f *Fighter) AttackReady() bool {
	return f.attackTimer <= 0 && f.Status != rules.Hurt
}

// Hurtbox is the box that receives damage, centred on the body.
func (f *Fighter) Hurtbox() Rect {
	w, h := rules.Fighter.HurtboxWidth, rules.Fighter.HurtboxHeight
	return Rect{X: f.X - w/2, Y: f.Y - h, W: w, H: h}
}

// Defeated reports a KO.
func (f *Fighter) Defeated() bool {
	return f.Health <= 0
}

// Update integrates physics and expires timers. dt is in milliseconds.
func (f *Fighter) Update(dt float64, b gamedata.Bounds) {
	secs := dt / 1000

	if !f.Grounded {
		f.VY += rules.Fighter.Gravity * secs
	}
	f.X += f.VX * secs
	f.Y += f.VY * secs

	if f.Y >= b.Ground {
		f.Y = b.Ground
		f.VY = 0
		if !f.Grounded {
			f.Grounded = true
			if f.Status == rules.Jumping {
				f.Status = rules.Idle
			}
		}
	}

	f.VX *= math.Pow(rules.Fighter.Friction, dt/rules.Fighter.FrictionFrameMS)
	if math.Abs(f.VX) < 0.5 && f.Status != rules.Walking {
		f.VX = 0
	}
	f.clamp(b)

	if f.attackTimer > 0 {
		f.attackTimer -= dt
		if f.attackTimer <= 0 {
			f.attackTimer = 0
			if f.Status == rules.Attacking {
				f.settle()
			}
		}
	}
	if f.hurtTimer > 0 {
		f.hurtTimer -= dt
		if f.hurtTimer <= 0 {
			f.hurtTimer = 0
			if f.Status == rules.Hurt {
				f.settle()
			}
		}
	}
}

func (f *Fighter) settle() {
	if f.Grounded {
		f.Status = rules.Idle
	} else {
		f.Status = rules.Jumping
	}
}

func (f *Fighter) clamp(b gamedata.Bounds) {
	lo, hi := b.Left+rules.Fighter.EdgeMargin, b.Right-rules.Fighter.EdgeMargin
	f.X = math.Max(lo, math.Min(hi, f.X))
}

func (f *Fighter) cue(kind CueKind, text string) {
	f.cues = append(f.cues, Cue{Kind: kind, Side: f.Side, Text: text})
}

// DrainCues returns and clears the pending cues.
func (f *Fighter) DrainCues() []Cue {
	if len(f.cues) == 0 {
		return nil
	}
	out := append([]Cue(nil), f.cues...)
	f.cues = f.cues[:0]
	return out
}

// FaceToward turns the fighter toward x unless it is mid-swing or hurt.
func (f *Fighter) FaceToward(x float64) {
	if f.busy() || x == f.X {
		return
	}
	f.FacingRight = x > f.X
}
