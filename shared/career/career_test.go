package career

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/automoto/cryptofighters/shared/rules"
	"github.com/automoto/cryptofighters/shared/session"
)

func result(tag rules.MatchResult, p1, p2 string) *session.FightResult {
	return &session.FightResult{Result: tag, Fighters: [2]string{p1, p2}, ArenaID: "token2049_dubai"}
}

func TestAddTallies(t *testing.T) {
	tests := []struct {
		name  string
		res   *session.FightResult
		p1    Tally
		p2    Tally
		p2key string
	}{
		{"p1 wins", result(rules.Player1Wins, "hodl_master", "degen_ape"), Tally{Wins: 1}, Tally{Losses: 1}, "degen_ape"},
		{"p2 wins", result(rules.Player2Wins, "hodl_master", "degen_ape"), Tally{Losses: 1}, Tally{Wins: 1}, "degen_ape"},
		{"draw", result(rules.DrawResult, "hodl_master", "degen_ape"), Tally{Draws: 1}, Tally{Draws: 1}, "degen_ape"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New()
			r.Add(tt.res, time.Unix(0, 0))
			if got := r.Tally("hodl_master"); got != tt.p1 {
				t.Errorf("p1 tally = %+v, want %+v", got, tt.p1)
			}
			if got := r.Tally(tt.p2key); got != tt.p2 {
				t.Errorf("p2 tally = %+v, want %+v", got, tt.p2)
			}
		})
	}
}

func TestMirrorMatchCountsBothSides(t *testing.T) {
	r := New()
	r.Add(result(rules.Player1Wins, "whale_trader", "whale_trader"), time.Now())
	if got := r.Tally("whale_trader"); got.Wins != 1 || got.Losses != 1 {
		t.Errorf("mirror tally = %+v", got)
	}
}

func TestHistoryIsCappedNewestFirst(t *testing.T) {
	r := New()
	var last Entry
	for i := 0; i < HistoryLimit+5; i++ {
		last = r.Add(result(rules.Player1Wins, "a", "b"), time.Unix(int64(i), 0))
	}
	if len(r.History) != HistoryLimit {
		t.Fatalf("history len = %d, want %d", len(r.History), HistoryLimit)
	}
	if r.History[0].ID != last.ID {
		t.Error("newest entry should be first")
	}
	if _, err := uuid.Parse(last.ID); err != nil {
		t.Errorf("entry id %q is not a uuid: %v", last.ID, err)
	}
	if got := r.Tally("a").Played(); got != HistoryLimit+5 {
		t.Errorf("tallies should not be capped, played = %d", got)
	}
}

func TestRanked(t *testing.T) {
	r := &Records{Characters: map[string]Tally{
		"paper_hands": {Wins: 2, Losses: 3},
		"degen_ape":   {Wins: 2, Losses: 1},
		"hodl_master": {Wins: 5},
		"whale":       {},
	}}
	want := []string{"hodl_master", "degen_ape", "paper_hands", "whale"}
	got := r.Ranked()
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Ranked() = %v, want %v", got, want)
		}
	}
}
