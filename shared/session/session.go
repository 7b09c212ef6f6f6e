// Package session carries selections and results between scenes. One Session
// lives for the whole program and is passed to each scene by pointer.
package session

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/automoto/cryptofighters/shared/gamedata"
	"github.com/automoto/cryptofighters/shared/match"
	"github.com/automoto/cryptofighters/shared/rules"
)

// Mode selects who controls player two.
type Mode int

const (
	SinglePlayer Mode = iota // Player two is the CPU
	TwoPlayer
)

func (m Mode) String() string {
	if m == TwoPlayer {
		return "two_player"
	}
	return "single_player"
}

var ErrNotReady = errors.New("fighters and arena must be selected")

// Rewards are the cosmetic prizes shown on the results screen.
type Rewards struct {
	Coins int
	XP    int
}

// FightResult is written once by the fight and read once by the results screen.
type FightResult struct {
	Result       rules.MatchResult
	Health       [2]float64
	MaxHealth    [2]float64
	Wins         [2]int
	RoundsPlayed int
	Rounds       []match.RoundRecord
	Fighters     [2]string
	ArenaID      string
	Mode         Mode
	Rewards      Rewards
}

// Winner is the winning side, or -1 for a draw.
func (r *FightResult) Winner() int {
	switch r.Result {
	case rules.Player1Wins:
		return 0
	case rules.Player2Wins:
		return 1
	}
	return -1
}

// Session is the handoff state shared by all scenes.
type Session struct {
	Mode       Mode
	Difficulty rules.Difficulty
	Catalog    *gamedata.Catalog
	Fighters   [2]string
	ArenaID    string
	Seed       int64
	Rand       *rand.Rand

	result *FightResult
}

// New creates a session over a loaded catalog.
func New(cat *gamedata.Catalog, seed int64) *Session {
	return &Session{
		Difficulty: rules.Normal,
		Catalog:    cat,
		Seed:       seed,
		Rand:       rand.New(rand.NewSource(seed)),
	}
}

// SelectFighter assigns a character to a side.
func (s *Session) SelectFighter(side int, id string) error {
	if side < 0 || side > 1 {
		return fmt.Errorf("invalid side %d", side)
	}
	if s.Catalog.Character(id) == nil {
		return fmt.Errorf("unknown character %q", id)
	}
	s.Fighters[side] = id
	return nil
}

// RandomFighter assigns a random character to a side.
func (s *Session) RandomFighter(side int) string {
	ch := s.Catalog.RandomCharacter(s.Rand)
	s.Fighters[side] = ch.ID
	return ch.ID
}

func (s *Session) SelectArena(id string) error {
	if s.Catalog.Arena(id) == nil {
		return fmt.Errorf("unknown arena %q", id)
	}
	s.ArenaID = id
	return nil
}

// RandomArena picks any arena.
func (s *Session) RandomArena() string {
	a := s.Catalog.RandomArena(s.Rand)
	s.ArenaID = a.ID
	return a.ID
}

// Ready reports whether a fight can start.
func (s *Session) Ready() bool {
	return s.Fighters[0] != "" && s.Fighters[1] != "" && s.ArenaID != ""
}

// FightSetup resolves the selections for the fight scene.
func (s *Session) FightSetup() (p1, p2 *gamedata.Character, arena *gamedata.Arena, err error) {
	if !s.Ready() {
		return nil, nil, nil, ErrNotReady
	}
	p1 = s.Catalog.Character(s.Fighters[0])
	p2 = s.Catalog.Character(s.Fighters[1])
	arena = s.Catalog.Arena(s.ArenaID)
	if p1 == nil || p2 == nil || arena == nil {
		return nil, nil, nil, ErrNotReady
	}
	return p1, p2, arena, nil
}

// NextSeed derives a seed for a fight's CPU brain.
func (s *Session) NextSeed() int64 {
	return s.Rand.Int63()
}

// RecordResult stores the outcome of a finished match and rolls rewards.
func (s *Session) RecordResult(m *match.Match, health, maxHealth [2]float64) *FightResult {
	r := &FightResult{
		Result:       m.Result,
		Health:       health,
		MaxHealth:    maxHealth,
		Wins:         m.Wins,
		RoundsPlayed: len(m.Rounds),
		Rounds:       append([]match.RoundRecord(nil), m.Rounds...),
		Fighters:     s.Fighters,
		ArenaID:      s.ArenaID,
		Mode:         s.Mode,
		Rewards: Rewards{
			Coins: between(s.Rand, rules.Rewards.CoinsMin, rules.Rewards.CoinsMax),
			XP:    between(s.Rand, rules.Rewards.XPMin, rules.Rewards.XPMax),
		},
	}
	s.result = r
	return r
}

// TakeResult returns the pending result and clears the slot.
func (s *Session) TakeResult() (*FightResult, bool) {
	r := s.result
	s.result = nil
	return r, r != nil
}

// Rematch keeps the selections and drops any unread result.
func (s *Session) Rematch() {
	s.result = nil
}

// ResetSelections clears fighters and arena for a fresh pick.
func (s *Session) ResetSelections() {
	s.Fighters = [2]string{}
	s.ArenaID = ""
	s.result = nil
}

func between(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}
