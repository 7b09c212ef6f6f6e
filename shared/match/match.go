// Package match runs the best-of-three round progression on top of any ring
// that can step a fight.
package match

import (
	"math"

	"github.com/automoto/cryptofighters/shared/rules"
)

// Ring is the fight the match drives. combat.Stage implements it.
type Ring interface {
	// Step advances one tick and reports a KO outcome, or None.
	Step(dt float64) rules.Outcome
	// Hold forces both fighters to a stopped state.
	Hold()
	Healths() [2]float64
	// ResetRound restores health and spawn positions.
	ResetRound()
}

// RoundRecord describes one finished round.
type RoundRecord struct {
	Round       int
	Winner      rules.Outcome
	Reason      rules.EndReason
	Health      [2]float64
	ClockLeftMS float64
}

// EventKind tags a match event for banners and audio.
type EventKind int

const (
	EventRoundStart EventKind = iota
	EventFight
	EventRoundOver
	EventMatchOver
)

// Event is emitted on state transitions.
type Event struct {
	Kind   EventKind
	Round  int
	Record RoundRecord
	Result rules.MatchResult
}

// Match is the round/match record.
type Match struct {
	State          rules.MatchState
	Round          int
	Wins           [2]int
	ClockMS        float64 // Round clock, only runs while RoundActive
	Timer          float64 // Phase timer for countdown, round end and results
	CountdownValue int     // 3, 2, 1, then 0 for "FIGHT"
	Rounds         []RoundRecord
	Result         rules.MatchResult

	needsReset bool
	events     []Event
}

// New starts a match at the countdown of round one.
func New() *Match {
	m := &Match{}
	m.startRound(1)
	return m
}

func (m *Match) startRound(round int) {
	m.Round = round
	m.State = rules.Countdown
	m.Timer = rules.Round.CountdownMS
	m.ClockMS = rules.Round.ClockMS
	m.CountdownValue = 3
	m.needsReset = true
}

// Tick advances the match by dt milliseconds.
func (m *Match) Tick(dt float64, ring Ring) {
	switch m.State {
	case rules.Countdown:
		m.updateCountdown(dt, ring)
	case rules.RoundActive:
		m.updatePlaying(dt, ring)
	case rules.RoundEnd:
		m.Timer -= dt
		if m.Timer <= 0 {
			m.startRound(m.Round + 1)
		}
	case rules.MatchComplete:
		if m.Timer > 0 {
			m.Timer = math.Max(0, m.Timer-dt)
		}
	}
}

func (m *Match) updateCountdown(dt float64, ring Ring) {
	if m.needsReset {
		m.needsReset = false
		ring.ResetRound()
		m.emit(Event{Kind: EventRoundStart, Round: m.Round})
	}

	ring.Hold()
	ring.Step(dt)

	m.Timer -= dt
	if m.Timer > 0 {
		perCount := rules.Round.CountdownMS / 3
		m.CountdownValue = int(math.Ceil(m.Timer / perCount))
		if m.CountdownValue > 3 {
			m.CountdownValue = 3
		}
		return
	}

	m.State = rules.RoundActive
	m.Timer = 0
	m.CountdownValue = 0
	m.emit(Event{Kind: EventFight, Round: m.Round})
}

func (m *Match) updatePlaying(dt float64, ring Ring) {
	m.ClockMS -= dt
	if outcome := ring.Step(dt); outcome != rules.None {
		reason := rules.KO
		if outcome == rules.Draw {
			reason = rules.DoubleKO
		}
		m.endRound(outcome, reason, ring.Healths())
		return
	}

	if m.ClockMS <= 0 {
		m.ClockMS = 0
		h := ring.Healths()
		outcome := rules.Draw
		switch {
		case h[0] > h[1]:
			outcome = rules.Player1
		case h[1] > h[0]:
			outcome = rules.Player2
		}
		m.endRound(outcome, rules.TimeUp, h)
	}
}

func (m *Match) endRound(outcome rules.Outcome, reason rules.EndReason, health [2]float64) {
	if side := outcome.Side(); side >= 0 && m.Wins[side] < rules.Round.WinsToTakeMatch {
		m.Wins[side]++
	}

	rec := RoundRecord{
		Round:       m.Round,
		Winner:      outcome,
		Reason:      reason,
		Health:      health,
		ClockLeftMS: m.ClockMS,
	}
	m.Rounds = append(m.Rounds, rec)
	m.emit(Event{Kind: EventRoundOver, Round: m.Round, Record: rec})

	need := rules.Round.WinsToTakeMatch
	switch {
	case m.Wins[0] >= need || m.Wins[1] >= need:
		m.complete()
	case m.Round >= rules.Round.MaxRounds:
		m.complete()
	case m.Round < rules.Round.ScheduledRounds:
		m.betweenRounds()
	case m.Wins[0] == m.Wins[1]:
		// Level after the scheduled rounds: play a decider.
		m.betweenRounds()
	default:
		m.complete()
	}
}

func (m *Match) betweenRounds() {
	m.State = rules.RoundEnd
	m.Timer = rules.Round.RoundEndMS
}

func (m *Match) complete() {
	m.State = rules.MatchComplete
	m.Timer = rules.Round.ResultsDelayMS
	switch {
	case m.Wins[0] > m.Wins[1]:
		m.Result = rules.Player1Wins
	case m.Wins[1] > m.Wins[0]:
		m.Result = rules.Player2Wins
	default:
		m.Result = rules.DrawResult
	}
	m.emit(Event{Kind: EventMatchOver, Round: m.Round, Result: m.Result})
}

// InputEnabled reports whether fighters may act.
func (m *Match) InputEnabled() bool {
	return m.State == rules.RoundActive
}

// Complete reports whether the match has a result.
func (m *Match) Complete() bool {
	return m.State == rules.MatchComplete
}

// ReadyToLeave reports whether the results delay has elapsed.
func (m *Match) ReadyToLeave() bool {
	return m.State == rules.MatchComplete && m.Timer <= 0
}

// ClockSeconds is the round clock as shown on the HUD.
func (m *Match) ClockSeconds() int {
	return int(math.Ceil(m.ClockMS / 1000))
}

// LastRound returns the most recent round record.
func (m *Match) LastRound() (RoundRecord, bool) {
	if len(m.Rounds) == 0 {
		return RoundRecord{}, false
	}
	return m.Rounds[len(m.Rounds)-1], true
}

func (m *Match) emit(e Event) {
	m.events = append(m.events, e)
}

// DrainEvents returns and clears pending events.
func (m *Match) DrainEvents() []Event {
	if len(m.events) == 0 {
		return nil
	}
	out := append([]Event(nil), m.events...)
	m.events = m.events[:0]
	return out
}
