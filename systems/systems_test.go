package systems

import (
	"math"
	"testing"

	"github.com/automoto/cryptofighters/archetypes"
	"github.com/automoto/cryptofighters/components"
	cfg "github.com/automoto/cryptofighters/config"
	"github.com/automoto/cryptofighters/shared/combat"
	"github.com/automoto/cryptofighters/shared/gamedata"
	"github.com/automoto/cryptofighters/shared/match"
	"github.com/automoto/cryptofighters/shared/rules"
	"github.com/automoto/cryptofighters/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var noMoves [rules.AttackKindCount]*gamedata.Move

func testFighter(side int, x float64) *combat.Fighter {
	def := &gamedata.Character{
		ID:    "hodl_master",
		Name:  "HODL Master",
		Stats: gamedata.Stats{Health: 100, Attack: 25, Defense: 20, Speed: 150},
	}
	return combat.NewFighter(side, def, noMoves, x, 450)
}

func press(actions ...cfg.ActionID) *components.PlayerInputData {
	in := &components.PlayerInputData{}
	for _, a := range actions {
		in.CurrentInput[a] = true
	}
	return in
}

func TestApplyControls(t *testing.T) {
	tests := []struct {
		name   string
		input  *components.PlayerInputData
		status rules.Status
		check  func(t *testing.T, f *combat.Fighter)
	}{
		{
			name:   "walk right",
			input:  press(cfg.ActionMoveRight),
			status: rules.Walking,
			check: func(t *testing.T, f *combat.Fighter) {
				if f.VX <= 0 || !f.FacingRight {
					t.Errorf("vx = %v facing right = %v", f.VX, f.FacingRight)
				}
			},
		},
		{
			name:   "both directions cancel",
			input:  press(cfg.ActionMoveLeft, cfg.ActionMoveRight),
			status: rules.Idle,
		},
		{
			name:   "block holds the guard",
			input:  press(cfg.ActionBlock, cfg.ActionMoveLeft),
			status: rules.Blocking,
			check: func(t *testing.T, f *combat.Fighter) {
				if !f.Blocking || f.VX != 0 {
					t.Errorf("blocking = %v vx = %v", f.Blocking, f.VX)
				}
			},
		},
		{
			name:   "attack on press",
			input:  press(cfg.ActionAttackSpecial2),
			status: rules.Attacking,
			check: func(t *testing.T, f *combat.Fighter) {
				if f.AttackKind != rules.Special2 {
					t.Errorf("attack kind = %v", f.AttackKind)
				}
			},
		},
		{
			name:   "jump on press",
			input:  press(cfg.ActionJump),
			status: rules.Jumping,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			self, foe := testFighter(0, 300), testFighter(1, 600)
			applyControls(tt.input, self, foe)
			if self.Status != tt.status {
				t.Fatalf("status = %v, want %v", self.Status, tt.status)
			}
			if tt.check != nil {
				tt.check(t, self)
			}
		})
	}
}

func TestApplyControlsHeldAttackFiresOnce(t *testing.T) {
	self, foe := testFighter(0, 300), testFighter(1, 600)
	in := press(cfg.ActionAttackBasic)
	in.PreviousInput[cfg.ActionAttackBasic] = true
	applyControls(in, self, foe)
	if self.Status == rules.Attacking {
		t.Error("held button should not start a new attack")
	}
}

func TestIdleFighterFacesFoe(t *testing.T) {
	self, foe := testFighter(1, 600), testFighter(0, 300)
	self.FacingRight = true
	applyControls(press(), self, foe)
	if self.FacingRight {
		t.Error("idle fighter should turn toward the foe")
	}
}

func TestAdvanceTrail(t *testing.T) {
	tr := &components.HealthTrail{Value: 1, Target: 1}
	dt := cfg.C.DeltaMS()

	advanceTrail(tr, 0.6, dt)
	if tr.Value != 1 || tr.Target != 0.6 {
		t.Fatalf("after hit value = %v target = %v", tr.Value, tr.Target)
	}

	// Still held during the delay
	advanceTrail(tr, 0.6, cfg.HUD.TrailDelayMS/2)
	if tr.Value != 1 {
		t.Fatalf("trail moved during delay: %v", tr.Value)
	}

	elapsed := 0.0
	for elapsed < cfg.HUD.TrailDelayMS+cfg.HUD.TrailDrainMS+100 {
		advanceTrail(tr, 0.6, dt)
		elapsed += dt
	}
	if math.Abs(tr.Value-0.6) > 1e-6 || tr.Tween != nil {
		t.Errorf("trail did not settle: value = %v", tr.Value)
	}

	// New round heals instantly
	advanceTrail(tr, 1, dt)
	if tr.Value != 1 || tr.Target != 1 {
		t.Errorf("trail should snap up, got %v/%v", tr.Value, tr.Target)
	}
}

func TestBannerPopAndHold(t *testing.T) {
	b := &components.BannerData{}
	showBanner(b, "FIGHT!", "", 500)
	if b.Scale != cfg.Banner.StartScale || !b.Visible {
		t.Fatalf("banner not shown: %+v", b)
	}

	dt := cfg.C.DeltaMS()
	for i := 0; i < int(cfg.Banner.PopMS/dt)+2; i++ {
		advanceBanner(b, dt)
	}
	if b.Scale != 1 || b.Tween != nil {
		t.Errorf("pop should settle at 1, got %v", b.Scale)
	}
	for i := 0; i < 60; i++ {
		advanceBanner(b, dt)
	}
	if b.Visible {
		t.Error("banner should hide after its hold time")
	}

	showBanner(b, "K.O.", "DRAW", -1)
	for i := 0; i < 600; i++ {
		advanceBanner(b, dt)
	}
	if !b.Visible {
		t.Error("a held banner stays up")
	}
}

func TestVolumeSteps(t *testing.T) {
	tests := []struct {
		current float64
		dir     int
		want    float64
	}{
		{0.5, 1, 0.75},
		{0.5, -1, 0.25},
		{1.0, 1, 1.0},
		{0, -1, 0},
		{0.3, 1, 0.5},
	}
	for _, tt := range tests {
		if got := adjustVolumeStep(tt.current, tt.dir); got != tt.want {
			t.Errorf("adjustVolumeStep(%v, %d) = %v, want %v", tt.current, tt.dir, got, tt.want)
		}
	}
	if got := formatVolumeBar(0.5); got != "[|||||.....] 50%" {
		t.Errorf("formatVolumeBar(0.5) = %q", got)
	}
}

func TestHealthColor(t *testing.T) {
	if healthColor(1) != cfg.HUD.HealthHigh || healthColor(0.4) != cfg.HUD.HealthMid || healthColor(0.1) != cfg.HUD.HealthLow {
		t.Error("health colour bands")
	}
	if healthFraction(-5, 100) != 0 || healthFraction(5, 0) != 0 {
		t.Error("fraction clamps")
	}
}

// fightWorld builds a fight ECS without generated sprites.
func fightWorld(t *testing.T) (*ecs.ECS, *combat.Stage, *match.Match) {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	p1, p2 := testFighter(0, 300), testFighter(1, 600)
	stage := combat.NewStage(p1, p2, nil)
	m := match.New()

	factory.CreateStage(e, stage, nil)
	factory.CreateMatch(e, m)
	factory.CreateHUD(e)
	factory.CreateCamera(e)
	for _, f := range stage.Fighters {
		entry := archetypes.Fighter.Spawn(e, components.PlayerInput)
		components.Fighter.SetValue(entry, components.FighterData{Fighter: f, WasGrounded: true})
		components.Animation.Set(entry, factory.GenerateAnimations())
		components.PlayerInput.SetValue(entry, components.PlayerInputData{Side: f.Side})
	}
	return e, stage, m
}

func holdInput(e *ecs.ECS, side int, action cfg.ActionID) {
	components.PlayerInput.Each(e.World, func(entry *donburi.Entry) {
		in := components.PlayerInput.Get(entry)
		if in.Side == side {
			in.CurrentInput[action] = true
		}
	})
}

func TestControlsSuppressedDuringCountdown(t *testing.T) {
	e, stage, m := fightWorld(t)
	UpdateMatch(e) // first countdown tick places both fighters on their spawns
	startX := stage.Fighters[0].X

	holdInput(e, 0, cfg.ActionMoveRight)
	for i := 0; i < 30; i++ {
		UpdateControls(e)
		UpdateMatch(e)
	}
	if m.State != rules.Countdown {
		t.Fatalf("state = %v", m.State)
	}
	if stage.Fighters[0].X != startX {
		t.Errorf("fighter moved during countdown: %v -> %v", startX, stage.Fighters[0].X)
	}

	for m.State == rules.Countdown {
		UpdateMatch(e)
	}
	UpdateControls(e)
	UpdateMatch(e)
	if stage.Fighters[0].X <= startX {
		t.Errorf("fighter should walk once the round is live")
	}
}

func TestUpdateMatchDrivesBannerAndAnimations(t *testing.T) {
	e, stage, m := fightWorld(t)

	UpdateMatch(e)
	UpdateBanner(e)
	b, _ := getBanner(e)
	if b.Sub != "ROUND 1" || !b.Visible {
		t.Fatalf("countdown banner = %+v", b)
	}

	for m.State == rules.Countdown {
		UpdateMatch(e)
	}
	if b.Text != cfg.Banner.FightText {
		t.Errorf("banner after countdown = %q", b.Text)
	}

	stage.Fighters[1].Attack(rules.Special1)
	UpdateAnimations(e)
	entry, ok := fighterEntry(e, 1)
	if !ok {
		t.Fatal("no entity for side 1")
	}
	if got := components.Animation.Get(entry).CurrentClip; got != cfg.ClipAttackSpecial1 {
		t.Errorf("clip = %q", got)
	}
}

func TestJumpCueQueuesSoundAndSquash(t *testing.T) {
	e, stage, m := fightWorld(t)
	for m.State == rules.Countdown {
		UpdateMatch(e)
	}
	stage.Fighters[0].Jump()
	UpdateMatch(e)

	audio := GetOrCreateAudio(e)
	found := false
	for _, s := range audio.PendingSFX {
		if s == cfg.SoundJump {
			found = true
		}
	}
	if !found {
		t.Errorf("pending sfx = %v, want jump", audio.PendingSFX)
	}
	entry, _ := fighterEntry(e, 0)
	if !entry.HasComponent(components.SquashStretch) {
		t.Error("jump should stretch the sprite")
	}
}

func TestPauseStopsGameplay(t *testing.T) {
	e, _, m := fightWorld(t)
	GetOrCreatePause(e).IsPaused = true
	before := m.Timer
	WithGameplayChecks(UpdateMatch)(e)
	if m.Timer != before {
		t.Error("paused systems should not tick")
	}
}
