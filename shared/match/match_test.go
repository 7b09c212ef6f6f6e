package match

import (
	"testing"

	"github.com/automoto/cryptofighters/shared/combat"
	"github.com/automoto/cryptofighters/shared/gamedata"
	"github.com/automoto/cryptofighters/shared/rules"
)

const tick = 1000.0 / 60.0

type fakeRing struct {
	health  [2]float64
	pending rules.Outcome
	resets  int
	holds   int
	steps   int
}

func (r *fakeRing) Step(float64) rules.Outcome {
	r.steps++
	out := r.pending
	r.pending = rules.None
	return out
}

func (r *fakeRing) Hold() { r.holds++ }

func (r *fakeRing) Healths() [2]float64 { return r.health }

func (r *fakeRing) ResetRound() {
	r.resets++
	r.health = [2]float64{100, 100}
}

// runUntil ticks until the state is reached or a safety limit hits.
func runUntil(t *testing.T, m *Match, ring Ring, state rules.MatchState) {
	t.Helper()
	for i := 0; i < 20_000; i++ {
		if m.State == state {
			return
		}
		m.Tick(tick, ring)
	}
	t.Fatalf("never reached %v, stuck in %v", state, m.State)
}

// playRound runs a round from its countdown and ends it with outcome.
func playRound(t *testing.T, m *Match, ring *fakeRing, outcome rules.Outcome) {
	t.Helper()
	runUntil(t, m, ring, rules.RoundActive)
	ring.pending = outcome
	m.Tick(tick, ring)
}

func TestCountdownSuppressesAndResets(t *testing.T) {
	ring := &fakeRing{}
	m := New()

	m.Tick(tick, ring)
	if ring.resets != 1 {
		t.Fatalf("resets = %d, want 1 on countdown entry", ring.resets)
	}
	if m.InputEnabled() {
		t.Error("input enabled during countdown")
	}
	if m.CountdownValue != 3 {
		t.Errorf("countdown = %d, want 3", m.CountdownValue)
	}

	runUntil(t, m, ring, rules.RoundActive)
	if ring.resets != 1 {
		t.Errorf("reset repeated during countdown: %d", ring.resets)
	}
	if ring.holds != ring.steps {
		t.Errorf("every countdown step must be held: holds %d steps %d", ring.holds, ring.steps)
	}
	if !m.InputEnabled() || m.CountdownValue != 0 {
		t.Errorf("after countdown: input %v value %d", m.InputEnabled(), m.CountdownValue)
	}
	if m.ClockSeconds() != 99 {
		t.Errorf("clock = %d, want 99", m.ClockSeconds())
	}

	events := m.DrainEvents()
	if len(events) != 2 || events[0].Kind != EventRoundStart || events[1].Kind != EventFight {
		t.Errorf("events = %+v", events)
	}
}

func TestTwoStraightKOs(t *testing.T) {
	ring := &fakeRing{}
	m := New()

	playRound(t, m, ring, rules.Player1)
	if m.State != rules.RoundEnd || m.Wins != [2]int{1, 0} {
		t.Fatalf("after round 1: %v %v", m.State, m.Wins)
	}
	clock := m.ClockMS
	m.Tick(tick, ring)
	if m.ClockMS != clock {
		t.Error("clock should stop when the round ends")
	}

	playRound(t, m, ring, rules.Player1)
	if !m.Complete() || m.Result != rules.Player1Wins {
		t.Fatalf("after round 2: %v %v", m.State, m.Result)
	}
	if len(m.Rounds) != 2 || m.Rounds[1].Reason != rules.KO {
		t.Errorf("records = %+v", m.Rounds)
	}
	if ring.resets != 2 {
		t.Errorf("resets = %d, want one per round", ring.resets)
	}
}

func TestSplitRoundsForceDecider(t *testing.T) {
	ring := &fakeRing{}
	m := New()

	playRound(t, m, ring, rules.Player1)
	playRound(t, m, ring, rules.Player2)
	if m.State != rules.RoundEnd || m.Wins != [2]int{1, 1} {
		t.Fatalf("1-1 should go to a decider, got %v %v", m.State, m.Wins)
	}

	playRound(t, m, ring, rules.Player2)
	if m.Round != 3 || !m.Complete() || m.Result != rules.Player2Wins {
		t.Fatalf("decider: round %d state %v result %v", m.Round, m.State, m.Result)
	}
}

func TestDeciderTimeoutTieEndsInDraw(t *testing.T) {
	ring := &fakeRing{}
	m := New()

	playRound(t, m, ring, rules.Player1)
	playRound(t, m, ring, rules.Player2)
	runUntil(t, m, ring, rules.RoundActive)
	runUntil(t, m, ring, rules.MatchComplete)

	if m.Round != 3 || m.Result != rules.DrawResult || m.Wins != [2]int{1, 1} {
		t.Fatalf("round %d result %v wins %v", m.Round, m.Result, m.Wins)
	}
	last, _ := m.LastRound()
	if last.Reason != rules.TimeUp || last.Winner != rules.Draw {
		t.Errorf("last round = %+v", last)
	}
}

func TestTimeoutGoesToHealthier(t *testing.T) {
	ring := &fakeRing{}
	m := New()
	runUntil(t, m, ring, rules.RoundActive)
	ring.health = [2]float64{40, 55}

	runUntil(t, m, ring, rules.RoundEnd)
	last, _ := m.LastRound()
	if last.Winner != rules.Player2 || last.Reason != rules.TimeUp {
		t.Fatalf("last = %+v", last)
	}
	if m.Wins != [2]int{0, 1} {
		t.Errorf("wins = %v", m.Wins)
	}
	if last.Health != [2]float64{40, 55} || last.ClockLeftMS != 0 {
		t.Errorf("record = %+v", last)
	}
}

func TestDoubleKOCountsForNobody(t *testing.T) {
	ring := &fakeRing{}
	m := New()
	playRound(t, m, ring, rules.Draw)

	last, _ := m.LastRound()
	if last.Reason != rules.DoubleKO || m.Wins != [2]int{0, 0} {
		t.Fatalf("record %+v wins %v", last, m.Wins)
	}
	if m.State != rules.RoundEnd {
		t.Fatalf("state = %v", m.State)
	}
}

func TestDrawnSecondRoundWithLeaderEndsMatch(t *testing.T) {
	ring := &fakeRing{}
	m := New()
	playRound(t, m, ring, rules.Player2)
	playRound(t, m, ring, rules.Draw)
	if !m.Complete() || m.Result != rules.Player2Wins {
		t.Fatalf("state %v result %v", m.State, m.Result)
	}
}

func TestTwoDrawnRoundsGoToDecider(t *testing.T) {
	ring := &fakeRing{}
	m := New()
	playRound(t, m, ring, rules.Draw)
	playRound(t, m, ring, rules.Draw)
	if m.State != rules.RoundEnd {
		t.Fatalf("0-0 should extend, got %v", m.State)
	}
	playRound(t, m, ring, rules.Draw)
	if !m.Complete() || m.Result != rules.DrawResult {
		t.Fatalf("state %v result %v", m.State, m.Result)
	}
}

func TestCountersNeverExceedCeiling(t *testing.T) {
	m := New()
	m.Wins = [2]int{2, 0}
	m.endRound(rules.Player1, rules.KO, [2]float64{1, 0})
	if m.Wins[0] != 2 {
		t.Errorf("wins = %v", m.Wins)
	}
}

func TestResultsDelay(t *testing.T) {
	ring := &fakeRing{}
	m := New()
	playRound(t, m, ring, rules.Player1)
	playRound(t, m, ring, rules.Player1)
	if m.ReadyToLeave() {
		t.Fatal("ready before results delay")
	}
	steps := ring.steps
	for i := 0; i < 200; i++ {
		m.Tick(tick, ring)
	}
	if !m.ReadyToLeave() {
		t.Error("results delay never elapsed")
	}
	if ring.steps != steps {
		t.Error("ring stepped after match completion")
	}
}

// Full stack: two real fighters trading basic hits until a KO.
func TestMatchOnStage(t *testing.T) {
	t.Cleanup(rules.Defaults)
	rules.Combat.Knockback = 0

	strong := &gamedata.Character{ID: "strong", Name: "Strong", Stats: gamedata.Stats{Health: 100, Attack: 100, Speed: 150}}
	weak := &gamedata.Character{ID: "weak", Name: "Weak", Stats: gamedata.Stats{Health: 100, Attack: 10, Speed: 150}}
	arena := &gamedata.Arena{
		ID:     "ring",
		Name:   "Ring",
		Bounds: gamedata.Bounds{Left: 0, Right: 960, Ground: 450},
		Spawns: [2]float64{440, 530},
		Width:  960,
		Height: 540,
	}
	var none [rules.AttackKindCount]*gamedata.Move
	stage := combat.NewStage(combat.NewFighter(0, strong, none, 0, 0), combat.NewFighter(1, weak, none, 0, 0), arena)

	m := New()
	for i := 0; i < 100_000 && !m.Complete(); i++ {
		if m.InputEnabled() && stage.Fighters[0].AttackReady() {
			stage.Fighters[0].Attack(rules.Basic)
		}
		m.Tick(tick, stage)
	}
	if m.Result != rules.Player1Wins || m.Wins != [2]int{2, 0} {
		t.Fatalf("result %v wins %v", m.Result, m.Wins)
	}
	for _, r := range m.Rounds {
		if r.Reason != rules.KO || r.Health[1] != 0 {
			t.Errorf("round %+v", r)
		}
	}
}
