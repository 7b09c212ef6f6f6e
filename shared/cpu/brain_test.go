package cpu

import (
	"testing"

	"github.com/automoto/cryptofighters/shared/combat"
	"github.com/automoto/cryptofighters/shared/gamedata"
	"github.com/automoto/cryptofighters/shared/rules"
)

const tick = 1000.0 / 60.0

func fighters(selfX, foeX float64, moves [rules.AttackKindCount]*gamedata.Move) (*combat.Fighter, *combat.Fighter) {
	def := &gamedata.Character{ID: "cpu", Name: "CPU", Stats: gamedata.Stats{Health: 100, Attack: 20, Speed: 150}}
	var none [rules.AttackKindCount]*gamedata.Move
	self := combat.NewFighter(1, def, moves, selfX, 450)
	foe := combat.NewFighter(0, def, none, foeX, 450)
	return self, foe
}

func TestFarApproaches(t *testing.T) {
	var none [rules.AttackKindCount]*gamedata.Move
	self, foe := fighters(800, 200, none)
	b := New(1, rules.Normal)
	b.Tick(tick, self, foe)
	if b.Action != Approach {
		t.Fatalf("action = %v, want approach", b.Action)
	}
	if self.VX >= 0 || self.FacingRight {
		t.Errorf("should walk left toward the foe, vx %v", self.VX)
	}
}

func TestNearAttacksOrRetreats(t *testing.T) {
	t.Cleanup(rules.Defaults)
	var none [rules.AttackKindCount]*gamedata.Move

	rules.CPU.Normal.RetreatChance = 0
	self, foe := fighters(500, 420, none)
	b := New(7, rules.Normal)
	b.Tick(tick, self, foe)
	if b.Action != Attack || self.Status != rules.Attacking {
		t.Fatalf("action %v status %v, want an attack", b.Action, self.Status)
	}
	if self.FacingRight {
		t.Error("attacker should face the foe on its left")
	}

	rules.CPU.Normal.RetreatChance = 1
	self, foe = fighters(500, 420, none)
	b = New(7, rules.Normal)
	b.Tick(tick, self, foe)
	if b.Action != Retreat || self.VX <= 0 {
		t.Fatalf("action %v vx %v, want retreat to the right", b.Action, self.VX)
	}
}

func TestFoeAboveMayJump(t *testing.T) {
	t.Cleanup(rules.Defaults)
	rules.CPU.Normal.JumpChance = 1
	var none [rules.AttackKindCount]*gamedata.Move
	self, foe := fighters(500, 300, none)
	foe.Y = 350

	b := New(3, rules.Normal)
	b.Tick(tick, self, foe)
	if b.Action != Jump || self.Status != rules.Jumping {
		t.Fatalf("action %v status %v, want jump", b.Action, self.Status)
	}
}

func TestMediumRangePrefersProjectile(t *testing.T) {
	t.Cleanup(rules.Defaults)
	rules.CPU.Normal.MediumAttackChance = 1
	fire := &gamedata.Move{ID: "fb", Name: "Fireball", Kind: rules.Special2, ProjectileType: "fireball"}
	moves := [rules.AttackKindCount]*gamedata.Move{rules.Special2: fire}
	self, foe := fighters(500, 300, moves)

	b := New(5, rules.Normal)
	b.Tick(tick, self, foe)
	if b.Action != Attack || b.Kind != rules.Special2 {
		t.Fatalf("action %v kind %v, want special2 projectile", b.Action, b.Kind)
	}

	rules.CPU.Normal.MediumAttackChance = 0
	self, foe = fighters(500, 300, moves)
	b = New(5, rules.Normal)
	b.Tick(tick, self, foe)
	if b.Action != Approach {
		t.Fatalf("action %v, want approach", b.Action)
	}
}

func TestActionReappliedUntilExpiry(t *testing.T) {
	var none [rules.AttackKindCount]*gamedata.Move
	self, foe := fighters(900, 100, none)
	b := New(11, rules.Normal)
	// Keep the first decision alive for the whole test.
	b.Tick(tick, self, foe)
	b.decisionTimer = 10_000

	start := self.X
	for i := 0; i < 10; i++ {
		b.Tick(tick, self, foe)
		self.Update(tick, gamedata.Bounds{Left: 0, Right: 960, Ground: 450})
	}
	if self.X >= start {
		t.Fatalf("approach not re-applied, x %v -> %v", start, self.X)
	}

	// Movement actions last 250ms, after which the brain idles.
	for i := 0; i < 20; i++ {
		b.Tick(tick, self, foe)
	}
	if b.Action != Idle || self.Status != rules.Idle {
		t.Errorf("action %v status %v, want idle after the action expired", b.Action, self.Status)
	}
}

func TestDecisionIntervalWithinWindow(t *testing.T) {
	b := New(99, rules.Normal)
	for i := 0; i < 500; i++ {
		v := b.interval()
		if v < 300 || v > 800 {
			t.Fatalf("interval %v outside 300..800", v)
		}
	}
}

func TestWeightedKindCoversAllKinds(t *testing.T) {
	b := New(42, rules.Normal)
	seen := map[rules.AttackKind]int{}
	for i := 0; i < 1000; i++ {
		seen[b.weightedKind()]++
	}
	for k := rules.Basic; k < rules.AttackKindCount; k++ {
		if seen[k] == 0 {
			t.Errorf("kind %v never chosen", k)
		}
	}
	if seen[rules.Basic] < seen[rules.Special2] {
		t.Errorf("basic should dominate: %v", seen)
	}
}

func TestSameSeedSameChoices(t *testing.T) {
	var none [rules.AttackKindCount]*gamedata.Move
	run := func() []Action {
		self, foe := fighters(600, 400, none)
		b := New(1234, rules.Hard)
		var out []Action
		for i := 0; i < 300; i++ {
			b.Tick(tick, self, foe)
			out = append(out, b.Action)
		}
		return out
	}
	a, c := run(), run()
	for i := range a {
		if a[i] != c[i] {
			t.Fatalf("diverged at tick %d", i)
		}
	}
}
