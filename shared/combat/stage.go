package combat

import (
	"math"

	"github.com/solarlune/resolv"

	"github.com/automoto/cryptofighters/shared/gamedata"
	"github.com/automoto/cryptofighters/shared/rules"
)

// Resolv tags for the stage's collision space.
const (
	TagHurtbox    = "hurtbox"
	TagProjectile = "projectile"
)

const spaceCellSize = 32

// Stage owns the two fighters of a fight, their projectiles and the collision
// space. It implements the per-tick hit resolution.
type Stage struct {
	Fighters [2]*Fighter
	Bounds   gamedata.Bounds
	View     Rect
	Spawns   [2]float64

	space     *resolv.Space
	hurtboxes [2]*resolv.Object
	cryIndex  int
	cues      []Cue
}

// NewStage places both fighters in an arena. A nil arena uses the fallback
// ring geometry.
func NewStage(p1, p2 *Fighter, arena *gamedata.Arena) *Stage {
	s := &Stage{Fighters: [2]*Fighter{p1, p2}}
	if arena != nil {
		s.Bounds = arena.Bounds
		s.View = Rect{W: arena.Width, H: arena.Height}
		s.Spawns = arena.Spawns
	} else {
		s.Bounds = gamedata.Bounds{Left: 0, Right: rules.Stage.Width, Ground: rules.Stage.GroundY}
		s.View = Rect{W: rules.Stage.Width, H: rules.Stage.Height}
		s.Spawns = [2]float64{rules.Stage.SpawnP1, rules.Stage.SpawnP2}
	}

	s.space = resolv.NewSpace(int(s.View.W), int(s.View.H), spaceCellSize, spaceCellSize)
	for i, f := range s.Fighters {
		box := f.Hurtbox()
		obj := resolv.NewObject(box.X, box.Y, box.W, box.H, TagHurtbox)
		obj.Data = f
		s.space.Add(obj)
		s.hurtboxes[i] = obj
	}
	s.ResetRound()
	return s
}

// ResetRound restores both fighters to their spawns and clears projectiles.
func (s *Stage) ResetRound() {
	for i, f := range s.Fighters {
		for _, p := range f.Projectiles {
			s.removeProjectile(p)
		}
		f.Reset(s.Spawns[i], s.Bounds.Ground, i == 0)
	}
	s.syncHurtboxes()
}

// Hold freezes both fighters in place.
func (s *Stage) Hold() {
	for _, f := range s.Fighters {
		f.Halt()
	}
}

// Healths returns both fighters' health.
func (s *Stage) Healths() [2]float64 {
	return [2]float64{s.Fighters[0].Health, s.Fighters[1].Health}
}

// Step advances one tick and returns the round outcome, if any. dt is in
// milliseconds.
func (s *Stage) Step(dt float64) rules.Outcome {
	for _, f := range s.Fighters {
		f.Update(dt, s.Bounds)
		if f.pendingShot {
			f.pendingShot = false
			s.spawnProjectile(f)
		}
	}

	for _, f := range s.Fighters {
		kept := f.Projectiles[:0]
		for _, p := range f.Projectiles {
			p.Update(dt)
			if p.Expired(s.View) {
				s.removeProjectile(p)
				continue
			}
			kept = append(kept, p)
		}
		f.Projectiles = kept
	}

	s.syncHurtboxes()
	return s.ResolveHits()
}

// ResolveHits applies separation, melee hits and projectile hits, then
// evaluates defeat. Both fighters down on the same tick is a draw.
func (s *Stage) ResolveHits() rules.Outcome {
	a, b := s.Fighters[0], s.Fighters[1]

	// Reach uses the distance before separation is applied.
	dist := math.Abs(a.X - b.X)
	if dist < rules.Combat.MinSeparation {
		step := rules.Combat.PushStep
		if a.X < b.X {
			a.X -= step
			b.X += step
		} else {
			a.X += step
			b.X -= step
		}
		a.clamp(s.Bounds)
		b.clamp(s.Bounds)
	}

	s.meleeHit(a, b, dist)
	s.meleeHit(b, a, dist)

	for _, f := range s.Fighters {
		if f.Status != rules.Attacking {
			f.hitRegistered = false
		}
	}

	s.syncHurtboxes()
	s.projectileHits(a, b)
	s.projectileHits(b, a)

	return s.Outcome()
}

func (s *Stage) meleeHit(att, def *Fighter, dist float64) {
	if att.Status != rules.Attacking || att.hitRegistered || dist >= att.AttackRange() {
		return
	}
	dir := 1.0
	if def.X < att.X || (def.X == att.X && !att.FacingRight) {
		dir = -1
	}
	def.TakeDamage(att.AttackDamage(att.AttackKind), dir*rules.Combat.Knockback)
	att.hitRegistered = true
	s.battleCry(att, att.AttackKind)
}

func (s *Stage) projectileHits(owner, foe *Fighter) {
	foeBox := foe.Hurtbox()
	kept := owner.Projectiles[:0]
	for _, p := range owner.Projectiles {
		if s.projectileTouches(p, foe, foeBox) {
			foe.TakeDamage(p.Damage, p.Facing()*rules.Combat.ProjectileKnockback)
			s.battleCry(owner, p.Kind)
			p.Dead = true
		}
		if p.Dead {
			s.removeProjectile(p)
			continue
		}
		kept = append(kept, p)
	}
	owner.Projectiles = kept
}

// projectileTouches narrows the cell-level broadphase down to an exact box
// overlap against the opposing hurtbox only.
func (s *Stage) projectileTouches(p *Projectile, foe *Fighter, foeBox Rect) bool {
	if p.Dead || p.obj == nil {
		return false
	}
	check := p.obj.Check(0, 0, TagHurtbox)
	if check == nil {
		return false
	}
	for _, obj := range check.Objects {
		if target, ok := obj.Data.(*Fighter); ok && target == foe {
			return p.Hitbox().Overlaps(foeBox)
		}
	}
	return false
}

// Outcome evaluates defeat without advancing time.
func (s *Stage) Outcome() rules.Outcome {
	aDown, bDown := s.Fighters[0].Defeated(), s.Fighters[1].Defeated()
	switch {
	case aDown && bDown:
		return rules.Draw
	case bDown:
		return rules.Player1
	case aDown:
		return rules.Player2
	}
	return rules.None
}

func (s *Stage) spawnProjectile(f *Fighter) {
	p := newProjectile(f)
	box := p.Hitbox()
	p.obj = resolv.NewObject(box.X, box.Y, box.W, box.H, TagProjectile)
	p.obj.Data = p
	s.space.Add(p.obj)
	f.Projectiles = append(f.Projectiles, p)
	f.cue(CueProjectile, p.Type)
}

func (s *Stage) removeProjectile(p *Projectile) {
	p.Dead = true
	if p.obj != nil {
		s.space.Remove(p.obj)
		p.obj = nil
	}
}

func (s *Stage) syncHurtboxes() {
	for i, f := range s.Fighters {
		box := f.Hurtbox()
		obj := s.hurtboxes[i]
		obj.X, obj.Y = box.X, box.Y
		obj.Update()
	}
}

func (s *Stage) battleCry(f *Fighter, kind rules.AttackKind) {
	if kind == rules.Basic {
		return
	}
	m := f.Moves[kind]
	if m == nil || len(m.BattleCries) == 0 {
		return
	}
	s.cues = append(s.cues, Cue{Kind: CueBattleCry, Side: f.Side, Text: m.BattleCries[s.cryIndex%len(m.BattleCries)]})
	s.cryIndex++
}

// DrainCues collects cues from both fighters and the stage.
func (s *Stage) DrainCues() []Cue {
	var out []Cue
	for _, f := range s.Fighters {
		out = append(out, f.DrainCues()...)
	}
	out = append(out, s.cues...)
	s.cues = s.cues[:0]
	return out
}

// ActiveProjectiles lists every live projectile.
func (s *Stage) ActiveProjectiles() []*Projectile {
	var out []*Projectile
	for _, f := range s.Fighters {
		out = append(out, f.Projectiles...)
	}
	return out
}
