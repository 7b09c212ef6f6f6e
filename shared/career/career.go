// Package career keeps the lifetime win/loss/draw tallies per character and a
// short history of recent matches.
package career

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/automoto/cryptofighters/shared/rules"
	"github.com/automoto/cryptofighters/shared/session"
)

// HistoryLimit caps the number of matches kept in Records.History.
const HistoryLimit = 20

// Tally counts the outcomes of every match a character took part in.
type Tally struct {
	Wins   int `json:"wins"`
	Losses int `json:"losses"`
	Draws  int `json:"draws"`
}

func (t Tally) Played() int {
	return t.Wins + t.Losses + t.Draws
}

func (t Tally) String() string {
	return fmt.Sprintf("%dW %dL %dD", t.Wins, t.Losses, t.Draws)
}

// Entry is one finished match.
type Entry struct {
	ID       string            `json:"id"`
	PlayedAt time.Time         `json:"playedAt"`
	Result   rules.MatchResult `json:"result"`
	Fighters [2]string         `json:"fighters"`
	Wins     [2]int            `json:"wins"`
	Arena    string            `json:"arena"`
	Mode     string            `json:"mode"`
}

// Records is the persisted career.
type Records struct {
	Characters map[string]Tally `json:"characters"`
	History    []Entry          `json:"history"`
}

// New returns an empty career.
func New() *Records {
	return &Records{Characters: map[string]Tally{}}
}

// Add tallies a result for both fighters and prepends it to the history.
// A mirror match counts once per side.
func (r *Records) Add(res *session.FightResult, at time.Time) Entry {
	if r.Characters == nil {
		r.Characters = map[string]Tally{}
	}

	winner := res.Winner()
	for side, id := range res.Fighters {
		if id == "" {
			continue
		}
		t := r.Characters[id]
		switch {
		case winner < 0:
			t.Draws++
		case winner == side:
			t.Wins++
		default:
			t.Losses++
		}
		r.Characters[id] = t
	}

	e := Entry{
		ID:       uuid.NewString(),
		PlayedAt: at.UTC(),
		Result:   res.Result,
		Fighters: res.Fighters,
		Wins:     res.Wins,
		Arena:    res.ArenaID,
		Mode:     res.Mode.String(),
	}
	r.History = append([]Entry{e}, r.History...)
	if len(r.History) > HistoryLimit {
		r.History = r.History[:HistoryLimit]
	}
	return e
}

// Tally returns the record for one character.
func (r *Records) Tally(id string) Tally {
	return r.Characters[id]
}

// Ranked lists character ids by wins, then by fewest losses, then by id.
func (r *Records) Ranked() []string {
	ids := make([]string, 0, len(r.Characters))
	for id := range r.Characters {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		a, b := r.Characters[ids[i]], r.Characters[ids[j]]
		if a.Wins != b.Wins {
			return a.Wins > b.Wins
		}
		if a.Losses != b.Losses {
			return a.Losses < b.Losses
		}
		return ids[i] < ids[j]
	})
	return ids
}
