// Package cpu is the single-player opponent: a reactive policy that picks an
// action from distance bands at random intervals and re-applies it every tick.
package cpu

import (
	"math"
	"math/rand"

	"github.com/automoto/cryptofighters/shared/combat"
	"github.com/automoto/cryptofighters/shared/rules"
)

// Action is the CPU's current intent.
type Action int

const (
	Idle Action = iota
	Approach
	Retreat
	Jump
	Attack
)

func (a Action) String() string {
	switch a {
	case Approach:
		return "approach"
	case Retreat:
		return "retreat"
	case Jump:
		return "jump"
	case Attack:
		return "attack"
	}
	return "idle"
}

// Brain drives one fighter. It has no lookahead and no memory of exchanges.
type Brain struct {
	Difficulty rules.Difficulty
	Action     Action
	Kind       rules.AttackKind

	rng           *rand.Rand
	decisionTimer float64
	actionTimer   float64
}

// New creates a brain with its own seeded random source so fights replay
// deterministically.
func New(seed int64, difficulty rules.Difficulty) *Brain {
	return &Brain{
		Difficulty: difficulty,
		rng:        rand.New(rand.NewSource(seed)),
	}
}

// Tick decides when the decision interval has elapsed, then applies the
// current action. dt is in milliseconds.
func (b *Brain) Tick(dt float64, self, foe *combat.Fighter) {
	b.decisionTimer -= dt
	if b.decisionTimer <= 0 {
		b.decide(self, foe)
		b.decisionTimer = b.interval()
	}
	b.apply(dt, self, foe)
}

func (b *Brain) interval() float64 {
	p := rules.CPU.Profile(b.Difficulty)
	return p.DecisionMinMS + b.rng.Float64()*(p.DecisionMaxMS-p.DecisionMinMS)
}

func (b *Brain) decide(self, foe *combat.Fighter) {
	p := rules.CPU.Profile(b.Difficulty)
	dist := math.Abs(foe.X - self.X)

	switch {
	case dist > rules.CPU.FarDistance:
		b.set(Approach, rules.CPU.MoveActionMS)
		return
	case dist < rules.CPU.NearDistance:
		if b.rng.Float64() < p.RetreatChance {
			b.set(Retreat, rules.CPU.MoveActionMS)
			return
		}
		b.attack(self, b.weightedKind())
		return
	case self.Y-foe.Y > rules.CPU.AboveThreshold:
		if b.rng.Float64() < p.JumpChance {
			b.set(Jump, rules.CPU.JumpActionMS)
			return
		}
	}

	if b.rng.Float64() < p.MediumAttackChance {
		b.attack(self, mediumKind(self))
		return
	}
	b.set(Approach, rules.CPU.MoveActionMS)
}

func (b *Brain) set(a Action, ms float64) {
	b.Action = a
	b.actionTimer = ms
}

func (b *Brain) attack(self *combat.Fighter, kind rules.AttackKind) {
	b.Kind = kind
	b.set(Attack, self.Cooldown(kind))
}

func (b *Brain) weightedKind() rules.AttackKind {
	w := rules.CPU.AttackWeights
	total := 0.0
	for _, v := range w {
		total += v
	}
	if total <= 0 {
		return rules.Basic
	}
	roll := b.rng.Float64() * total
	for k := rules.Basic; k < rules.AttackKindCount; k++ {
		if roll < w[k] {
			return k
		}
		roll -= w[k]
	}
	return rules.Special2
}

// mediumKind prefers a move that fires a projectile.
func mediumKind(self *combat.Fighter) rules.AttackKind {
	for _, k := range []rules.AttackKind{rules.Special1, rules.Special2, rules.Basic} {
		if self.Moves[k].Ranged() {
			return k
		}
	}
	return rules.Special2
}

func (b *Brain) apply(dt float64, self, foe *combat.Fighter) {
	if b.actionTimer <= 0 {
		b.Action = Idle
	}
	b.actionTimer -= dt

	switch b.Action {
	case Approach:
		if foe.X < self.X {
			self.MoveLeft()
		} else {
			self.MoveRight()
		}
	case Retreat:
		if foe.X < self.X {
			self.MoveRight()
		} else {
			self.MoveLeft()
		}
	case Jump:
		self.Jump()
	case Attack:
		if self.AttackReady() {
			self.StopMovement()
			self.FaceToward(foe.X)
			self.Attack(b.Kind)
		}
	default:
		self.StopMovement()
	}
}
