package main

import (
	"reflect"
	"testing"

	"github.com/automoto/cryptofighters/assets/gamefiles"
	"github.com/automoto/cryptofighters/shared/gamedata"
	"github.com/automoto/cryptofighters/shared/rules"
)

func loadCatalog(t *testing.T) *gamedata.Catalog {
	t.Helper()
	cat, err := gamefiles.LoadCatalog()
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	return cat
}

func TestBoutFinishesWithAResult(t *testing.T) {
	cat := loadCatalog(t)
	b, err := newBout(cat, picks{P1: "hodl_master", P2: "degen_ape", Difficulty: rules.Hard}, 42)
	if err != nil {
		t.Fatalf("newBout: %v", err)
	}
	b.run(maxBoutTicks)

	if b.result == nil {
		t.Fatal("bout did not finish")
	}
	if b.result.RoundsPlayed < 2 || b.result.RoundsPlayed > rules.Round.MaxRounds {
		t.Errorf("rounds played = %d", b.result.RoundsPlayed)
	}
	if b.result.Fighters != [2]string{"hodl_master", "degen_ape"} {
		t.Errorf("fighters = %v", b.result.Fighters)
	}
	if len(b.log) == 0 {
		t.Error("round log is empty")
	}
	if b.step() {
		t.Error("step after the match reported progress")
	}
}

func TestBoutIsDeterministicPerSeed(t *testing.T) {
	cat := loadCatalog(t)
	p := picks{Difficulty: rules.Normal}

	run := func() ([2]string, string, [2]int, int) {
		b, err := newBout(cat, p, 7)
		if err != nil {
			t.Fatalf("newBout: %v", err)
		}
		b.run(maxBoutTicks)
		if b.result == nil {
			t.Fatal("bout did not finish")
		}
		return b.result.Fighters, b.result.ArenaID, b.result.Wins, b.ticks
	}

	f1, a1, w1, t1 := run()
	f2, a2, w2, t2 := run()
	if !reflect.DeepEqual([]any{f1, a1, w1, t1}, []any{f2, a2, w2, t2}) {
		t.Errorf("same seed diverged: %v %s %v %d vs %v %s %v %d", f1, a1, w1, t1, f2, a2, w2, t2)
	}
}

func TestNewBoutRejectsUnknownIDs(t *testing.T) {
	cat := loadCatalog(t)
	tests := []struct {
		name string
		p    picks
	}{
		{"p1", picks{P1: "satoshi"}},
		{"p2", picks{P2: "satoshi"}},
		{"arena", picks{Arena: "moon_base"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := newBout(cat, tt.p, 1); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestRunBatchCountsEveryBout(t *testing.T) {
	cat := loadCatalog(t)
	s, err := runBatch(cat, picks{Difficulty: rules.Easy}, 100, 3)
	if err != nil {
		t.Fatalf("runBatch: %v", err)
	}
	total := 0
	for _, n := range s.Results {
		total += n
	}
	if s.Bouts != 3 || total != 3 {
		t.Errorf("bouts = %d, results = %d, want 3", s.Bouts, total)
	}
}

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		in      string
		want    rules.Difficulty
		wantErr bool
	}{
		{"easy", rules.Easy, false},
		{"HARD", rules.Hard, false},
		{"Normal", rules.Normal, false},
		{"nightmare", rules.Normal, true},
	}
	for _, tt := range tests {
		got, err := parseDifficulty(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("parseDifficulty(%q) = %v, %v", tt.in, got, err)
		}
	}
}

func TestLethalHitCountsOnce(t *testing.T) {
	cat := loadCatalog(t)
	b, err := newBout(cat, picks{P1: "hodl_master", P2: "degen_ape"}, 3)
	if err != nil {
		t.Fatalf("newBout: %v", err)
	}
	target := b.stage.Fighters[1]
	target.Health = 1
	if !target.TakeDamage(10, 0) {
		t.Fatal("expected the hit to be lethal")
	}
	for _, c := range target.DrainCues() {
		b.handleCue(c)
	}
	if b.hits != [2]int{1, 0} {
		t.Errorf("hits = %v, want [1 0]", b.hits)
	}
}
