package main

import (
	"fmt"

	"github.com/automoto/cryptofighters/shared/combat"
	"github.com/automoto/cryptofighters/shared/cpu"
	"github.com/automoto/cryptofighters/shared/gamedata"
	"github.com/automoto/cryptofighters/shared/match"
	"github.com/automoto/cryptofighters/shared/rules"
	"github.com/automoto/cryptofighters/shared/session"
)

// stepMS is one simulated tick, the same 60 TPS the game runs at.
const stepMS = 1000.0 / 60

// logLimit caps the round log kept for the view.
const logLimit = 12

// picks are the requested fighters and arena. Empty ids are randomised.
type picks struct {
	P1, P2     string
	Arena      string
	Difficulty rules.Difficulty
}

// bout is one CPU vs CPU match on the shared core.
type bout struct {
	stage  *combat.Stage
	match  *match.Match
	brains [2]*cpu.Brain
	arena  *gamedata.Arena
	names  [2]string
	seed   int64

	hits   [2]int
	blocks [2]int
	ticks  int
	log    []string
	result *session.FightResult
	sess   *session.Session
}

func newBout(cat *gamedata.Catalog, p picks, seed int64) (*bout, error) {
	sess := session.New(cat, seed)
	sess.Difficulty = p.Difficulty

	for side, id := range [2]string{p.P1, p.P2} {
		if id == "" {
			sess.RandomFighter(side)
			continue
		}
		if err := sess.SelectFighter(side, id); err != nil {
			return nil, fmt.Errorf("p%d: %w", side+1, err)
		}
	}
	if p.Arena == "" {
		sess.RandomArena()
	} else if err := sess.SelectArena(p.Arena); err != nil {
		return nil, fmt.Errorf("arena: %w", err)
	}

	c1, c2, arena, err := sess.FightSetup()
	if err != nil {
		return nil, err
	}

	f1 := combat.NewFighter(0, c1, cat.MoveSet(c1), arena.Spawns[0], arena.Bounds.Ground)
	f2 := combat.NewFighter(1, c2, cat.MoveSet(c2), arena.Spawns[1], arena.Bounds.Ground)
	b := &bout{
		stage: combat.NewStage(f1, f2, arena),
		match: match.New(),
		arena: arena,
		names: [2]string{c1.Name, c2.Name},
		seed:  seed,
		sess:  sess,
	}
	for i := range b.brains {
		b.brains[i] = cpu.New(sess.NextSeed(), p.Difficulty)
	}
	return b, nil
}

// handleCue counts landed and blocked hits. A lethal hit also emits CueKO,
// which is not a second hit.
func (b *bout) handleCue(c combat.Cue) {
	switch c.Kind {
	case combat.CueHit:
		b.hits[1-c.Side]++
	case combat.CueBlocked:
		b.blocks[c.Side]++
	case combat.CueBattleCry:
		b.addLog(fmt.Sprintf("  %s: %q", b.names[c.Side], c.Text))
	}
}

// step advances one tick. It reports false once the match can be left.
func (b *bout) step() bool {
	if b.match.ReadyToLeave() {
		return false
	}
	if b.match.InputEnabled() {
		f := b.stage.Fighters
		b.brains[0].Tick(stepMS, f[0], f[1])
		b.brains[1].Tick(stepMS, f[1], f[0])
	}

	b.match.Tick(stepMS, b.stage)
	b.ticks++

	for _, c := range b.stage.DrainCues() {
		b.handleCue(c)
	}
	for _, ev := range b.match.DrainEvents() {
		b.handleEvent(ev)
	}

	if b.match.ReadyToLeave() && b.result == nil {
		var maxHealth [2]float64
		for i, f := range b.stage.Fighters {
			maxHealth[i] = f.MaxHealth
		}
		b.result = b.sess.RecordResult(b.match, b.stage.Healths(), maxHealth)
	}
	return true
}

// run steps until the match is over or maxTicks have passed.
func (b *bout) run(maxTicks int) {
	for i := 0; i < maxTicks && b.step(); i++ {
	}
}

func (b *bout) handleEvent(ev match.Event) {
	switch ev.Kind {
	case match.EventFight:
		b.addLog(fmt.Sprintf("Round %d: FIGHT!", ev.Round))
	case match.EventRoundOver:
		r := ev.Record
		winner := "draw"
		if side := r.Winner.Side(); side >= 0 {
			winner = b.names[side] + " wins"
		}
		b.addLog(fmt.Sprintf("Round %d: %s by %s (%.0f - %.0f)", r.Round, winner, r.Reason, r.Health[0], r.Health[1]))
	case match.EventMatchOver:
		b.addLog(fmt.Sprintf("MATCH OVER: %s %d-%d", ev.Result, b.match.Wins[0], b.match.Wins[1]))
	}
}

func (b *bout) addLog(line string) {
	b.log = append(b.log, line)
	if len(b.log) > logLimit {
		b.log = b.log[len(b.log)-logLimit:]
	}
}

// healthFraction is a side's remaining health in [0, 1].
func (b *bout) healthFraction(side int) float64 {
	f := b.stage.Fighters[side]
	if f.MaxHealth <= 0 || f.Health <= 0 {
		return 0
	}
	return f.Health / f.MaxHealth
}
