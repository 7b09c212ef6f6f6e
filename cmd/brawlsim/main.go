// Command brawlsim runs CPU vs CPU matches on the game's core rules in the
// terminal, for balance checks without a window.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/automoto/cryptofighters/assets/gamefiles"
	"github.com/automoto/cryptofighters/shared/gamedata"
	"github.com/automoto/cryptofighters/shared/rules"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
)

// maxBoutTicks bounds a headless bout well past three full rounds.
const maxBoutTicks = 60 * 60 * 10

func main() {
	seed := flag.Int64("seed", 0, "rng seed (0 uses the clock)")
	p1 := flag.String("p1", "", "character id for side one (random when empty)")
	p2 := flag.String("p2", "", "character id for side two (random when empty)")
	arena := flag.String("arena", "", "arena id (random when empty)")
	speed := flag.Int("speed", 4, "simulated ticks per frame")
	difficulty := flag.String("difficulty", "normal", "cpu difficulty: easy, normal or hard")
	tuning := flag.String("config", "", "TOML file overriding gameplay tuning")
	batch := flag.Int("batch", 0, "run this many bouts without the terminal view and print a summary")
	flag.Parse()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	d, err := parseDifficulty(*difficulty)
	if err != nil {
		logrus.Fatal(err)
	}
	if err := rules.LoadOverrides(*tuning); err != nil {
		logrus.Fatalf("load tuning: %v", err)
	}
	p := picks{P1: *p1, P2: *p2, Arena: *arena, Difficulty: d}

	if *batch > 0 {
		cat, err := gamefiles.LoadCatalog()
		if err != nil {
			logrus.Fatalf("load game data: %v", err)
		}
		s, err := runBatch(cat, p, *seed, *batch)
		if err != nil {
			logrus.Fatal(err)
		}
		s.log()
		return
	}

	if _, err := tea.NewProgram(NewModel(p, *seed, *speed)).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "brawlsim: %v\n", err)
		os.Exit(1)
	}
}

func parseDifficulty(s string) (rules.Difficulty, error) {
	for d := rules.Easy; d < rules.DifficultyCount; d++ {
		if strings.EqualFold(d.String(), s) {
			return d, nil
		}
	}
	return rules.Normal, fmt.Errorf("unknown difficulty %q", s)
}

// summary counts outcomes over a batch of bouts.
type summary struct {
	Bouts   int
	Results map[rules.MatchResult]int
	// Wins per character id, counted once per side in mirror matches
	Wins   map[string]int
	Rounds int
	Ticks  int
}

func runBatch(cat *gamedata.Catalog, p picks, seed int64, n int) (*summary, error) {
	s := &summary{Results: map[rules.MatchResult]int{}, Wins: map[string]int{}}
	for i := 0; i < n; i++ {
		b, err := newBout(cat, p, seed+int64(i))
		if err != nil {
			return nil, err
		}
		b.run(maxBoutTicks)
		if b.result == nil {
			return nil, fmt.Errorf("bout %d (seed %d) did not finish", i, seed+int64(i))
		}
		s.Bouts++
		s.Results[b.result.Result]++
		if w := b.result.Winner(); w >= 0 {
			s.Wins[b.result.Fighters[w]]++
		}
		s.Rounds += b.result.RoundsPlayed
		s.Ticks += b.ticks
	}
	return s, nil
}

func (s *summary) log() {
	logrus.Infof("%d bouts: P1 %d  P2 %d  draws %d", s.Bouts,
		s.Results[rules.Player1Wins], s.Results[rules.Player2Wins], s.Results[rules.DrawResult])
	if s.Bouts > 0 {
		logrus.Infof("average %.2f rounds, %.1f s per bout",
			float64(s.Rounds)/float64(s.Bouts), float64(s.Ticks)*stepMS/1000/float64(s.Bouts))
	}
	for id, w := range s.Wins {
		logrus.WithField("character", id).Infof("%d wins", w)
	}
}
