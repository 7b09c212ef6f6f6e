package rules

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTuning(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tuning.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadOverridesOnlyTouchesNamedKeys(t *testing.T) {
	t.Cleanup(Defaults)
	path := writeTuning(t, `
[fighter]
gravity = 1200.0
cooldown_ms = [300.0, 700.0, 500.0]

[cpu.hard]
retreat_chance = 0.05
`)
	if err := LoadOverrides(path); err != nil {
		t.Fatalf("LoadOverrides: %v", err)
	}
	if Fighter.Gravity != 1200 {
		t.Errorf("gravity = %v, want 1200", Fighter.Gravity)
	}
	if Fighter.CooldownMS[Special1] != 700 {
		t.Errorf("special1 cooldown = %v, want 700", Fighter.CooldownMS[Special1])
	}
	if Fighter.JumpVelocity != -400 {
		t.Errorf("jump velocity changed to %v", Fighter.JumpVelocity)
	}
	if CPU.Hard.RetreatChance != 0.05 {
		t.Errorf("hard retreat = %v", CPU.Hard.RetreatChance)
	}
	if CPU.Hard.DecisionMinMS != 200 {
		t.Errorf("hard decision min changed to %v", CPU.Hard.DecisionMinMS)
	}
	if Round.ClockMS != 99_000 {
		t.Errorf("round clock changed to %v", Round.ClockMS)
	}
}

func TestLoadOverridesMissingFile(t *testing.T) {
	t.Cleanup(Defaults)
	if err := LoadOverrides(filepath.Join(t.TempDir(), "nope.toml")); err != nil {
		t.Fatalf("missing file should be ignored, got %v", err)
	}
	if err := LoadOverrides(""); err != nil {
		t.Fatalf("empty path should be ignored, got %v", err)
	}
}

func TestLoadOverridesRejectsInvalid(t *testing.T) {
	t.Cleanup(Defaults)
	path := writeTuning(t, `
[round]
wins_to_take_match = 0
`)
	if err := LoadOverrides(path); err == nil {
		t.Fatal("expected validation error")
	}
	if Round.WinsToTakeMatch != 2 {
		t.Errorf("failed load must not change globals, wins = %d", Round.WinsToTakeMatch)
	}
}

func TestLoadOverridesBadSyntax(t *testing.T) {
	t.Cleanup(Defaults)
	path := writeTuning(t, "[fighter\ngravity = ")
	if err := LoadOverrides(path); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestEnumNames(t *testing.T) {
	if Hurt.String() != "hurt" || Blocking.String() != "blocking" {
		t.Errorf("status names: %s %s", Hurt, Blocking)
	}
	for k := Basic; k < AttackKindCount; k++ {
		got, ok := ParseAttackKind(k.String())
		if !ok || got != k {
			t.Errorf("ParseAttackKind(%q) = %v, %v", k.String(), got, ok)
		}
	}
	if _, ok := ParseAttackKind("ultimate"); ok {
		t.Error("unknown kind parsed")
	}
	if AttackAction(Special2) != ActionAttackSpecial2 {
		t.Error("AttackAction mapping broken")
	}
	if Hard.Next() != Easy {
		t.Error("difficulty should wrap")
	}
	if OutcomeForSide(1) != Player2 || Player1.Side() != 0 || Draw.Side() != -1 {
		t.Error("outcome side mapping broken")
	}
}

func TestProjectileSpeedFallback(t *testing.T) {
	if Projectile.Speed("bullet") != 600 || Projectile.Speed("arrow") != 500 {
		t.Error("typed speeds wrong")
	}
	if Projectile.Speed("laser") != Projectile.DefaultSpeed {
		t.Error("unknown type should use default speed")
	}
}
