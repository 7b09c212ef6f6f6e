package ui

import (
	"strings"
	"testing"

	"github.com/automoto/cryptofighters/assets/gamefiles"
	cfg "github.com/automoto/cryptofighters/config"
	"github.com/automoto/cryptofighters/shared/career"
	"github.com/automoto/cryptofighters/shared/match"
	"github.com/automoto/cryptofighters/shared/rules"
	"github.com/automoto/cryptofighters/shared/session"
)

func TestHealthLine(t *testing.T) {
	tests := []struct {
		name   string
		health float64
		want   string
	}{
		{"alive", 42, "HODL Master  42/100  ALIVE"},
		{"zero is rekt", 0, "HODL Master  0/100  REKT"},
		{"overkill is rekt", -3, "HODL Master  -3/100  REKT"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := healthLine("HODL Master", tt.health, 100); got != tt.want {
				t.Errorf("healthLine() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMovesTextListsOneMovePerKind(t *testing.T) {
	cat, err := gamefiles.LoadCatalog()
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	ch := cat.Character("hodl_master")
	if ch == nil {
		t.Fatal("hodl_master missing from catalog")
	}

	got := movesText(cat, ch)
	want := "[J] HODL Smash\n[K] Diamond Punch\n[L] Bull Rush"
	if got != want {
		t.Errorf("movesText() = %q, want %q", got, want)
	}
	if s := statsLine(ch); s != "HP 100  ATK 25  DEF 20  SPD 150" {
		t.Errorf("statsLine() = %q", s)
	}
}

func TestResultTitle(t *testing.T) {
	names := [2]string{"HODL Master", "Degen Ape"}
	tests := []struct {
		name   string
		result rules.MatchResult
		want   string
	}{
		{"p1", rules.Player1Wins, "HODL MASTER WINS"},
		{"p2", rules.Player2Wins, "DEGEN APE WINS"},
		{"draw", rules.DrawResult, cfg.Results.Titles["DRAW"]},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := &session.FightResult{Result: tt.result}
			if got := resultTitle(res, names); got != tt.want {
				t.Errorf("resultTitle() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRoundLines(t *testing.T) {
	res := &session.FightResult{
		Rounds: []match.RoundRecord{
			{Round: 1, Winner: rules.Player1, Reason: rules.KO, Health: [2]float64{55, 0}},
			{Round: 2, Winner: rules.Draw, Reason: rules.DoubleKO},
		},
	}
	lines := roundLines(res, [2]string{"HODL Master", "Degen Ape"})
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if lines[0] != "Round 1: HODL Master (K.O., 55 - 0)" {
		t.Errorf("line 0 = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "Round 2: Draw (DOUBLE K.O.") {
		t.Errorf("line 1 = %q", lines[1])
	}
}

func TestCareerLine(t *testing.T) {
	r := career.New()
	r.Characters["degen_ape"] = career.Tally{Wins: 3, Losses: 1}
	if got := careerLine(r, "Degen Ape", "degen_ape"); got != "Degen Ape career: 3W 1L 0D" {
		t.Errorf("careerLine() = %q", got)
	}
	if got := careerLine(r, "Paper Hands", "paper_hands"); got != "Paper Hands career: 0W 0L 0D" {
		t.Errorf("careerLine() for a new character = %q", got)
	}
}

func TestSideLabel(t *testing.T) {
	if got := sideLabel(session.SinglePlayer, 1); got != "CPU" {
		t.Errorf("single player side 2 = %q, want CPU", got)
	}
	if got := sideLabel(session.TwoPlayer, 1); got != "P2" {
		t.Errorf("two player side 2 = %q, want P2", got)
	}
}

func TestSymbolsRiseAndRespawn(t *testing.T) {
	f := newSymbolField(7, 960, 540)
	if len(f.symbols) != cfg.Results.SymbolCount {
		t.Fatalf("got %d symbols, want %d", len(f.symbols), cfg.Results.SymbolCount)
	}

	s := f.symbols[0]
	before := s.Y
	f.Update(100)
	if s.Y >= before && s.Y != 560 {
		t.Errorf("symbol did not rise: %v -> %v", before, s.Y)
	}

	// Long enough for any tween to finish.
	f.Update(cfg.Results.SymbolRiseMS * 2)
	for i, s := range f.symbols {
		if s.Y != 560 || s.Alpha != 0 {
			t.Errorf("symbol %d not respawned at the bottom: y=%v alpha=%v", i, s.Y, s.Alpha)
		}
	}
}

func TestFade(t *testing.T) {
	tests := []struct {
		y    float64
		want float64
	}{
		{540, 0},
		{270, 1},
		{0, 0},
		{54, 0.5},
	}
	for _, tt := range tests {
		if got := fade(tt.y, 540); got < tt.want-1e-9 || got > tt.want+1e-9 {
			t.Errorf("fade(%v) = %v, want %v", tt.y, got, tt.want)
		}
	}
}
