package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/automoto/cryptofighters/assets/gamefiles"
	"github.com/automoto/cryptofighters/shared/gamedata"
	"github.com/automoto/cryptofighters/shared/rules"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// Model is the terminal spectator for CPU vs CPU bouts.
type Model struct {
	Catalog *gamedata.Catalog
	Picks   picks
	Seed    int64
	Speed   int

	Bout     *bout
	// Bumped per bout so ticks from an earlier bout's chain are dropped
	gen      int
	Loading  bool
	Paused   bool
	Quitting bool
	Err      error

	Spinner spinner.Model
	Bars    [2]progress.Model

	// Results of every finished bout this session
	Tally map[rules.MatchResult]int
}

type catalogLoadedMsg struct {
	Catalog *gamedata.Catalog
	Err     error
}

type tickMsg struct {
	gen int
	at  time.Time
}

func NewModel(p picks, seed int64, speed int) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot

	if speed < 1 {
		speed = 1
	}
	m := Model{
		Picks:   p,
		Seed:    seed,
		Speed:   speed,
		Loading: true,
		Spinner: s,
		Tally:   map[rules.MatchResult]int{},
	}
	for i := range m.Bars {
		m.Bars[i] = progress.New(progress.WithDefaultGradient(), progress.WithWidth(40), progress.WithoutPercentage())
	}
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.Spinner.Tick, loadCatalogCmd())
}

func loadCatalogCmd() tea.Cmd {
	return func() tea.Msg {
		cat, err := gamefiles.LoadCatalog()
		return catalogLoadedMsg{Catalog: cat, Err: err}
	}
}

func tickCmd(gen int) tea.Cmd {
	return tea.Tick(time.Second/60, func(t time.Time) tea.Msg {
		return tickMsg{gen: gen, at: t}
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.Quitting = true
			return m, tea.Quit
		case " ":
			m.Paused = !m.Paused
		case "r":
			if m.Catalog != nil {
				m.Seed++
				return m.startBout()
			}
		case "+":
			m.Speed *= 2
		case "-":
			if m.Speed > 1 {
				m.Speed /= 2
			}
		}

	case catalogLoadedMsg:
		m.Loading = false
		if msg.Err != nil {
			m.Err = msg.Err
			return m, nil
		}
		m.Catalog = msg.Catalog
		return m.startBout()

	case tickMsg:
		if msg.gen != m.gen || m.Bout == nil || m.Bout.result != nil {
			return m, nil
		}
		if !m.Paused {
			for i := 0; i < m.Speed; i++ {
				if !m.Bout.step() {
					break
				}
			}
			if r := m.Bout.result; r != nil {
				m.Tally[r.Result]++
				return m, nil
			}
		}
		return m, tickCmd(m.gen)

	case spinner.TickMsg:
		if m.Loading {
			var cmd tea.Cmd
			m.Spinner, cmd = m.Spinner.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

func (m Model) startBout() (tea.Model, tea.Cmd) {
	b, err := newBout(m.Catalog, m.Picks, m.Seed)
	if err != nil {
		m.Err = err
		return m, nil
	}
	m.Err = nil
	m.Bout = b
	m.gen++
	return m, tickCmd(m.gen)
}

func (m Model) View() string {
	if m.Quitting {
		return "Goodbye\n"
	}
	var sb strings.Builder
	sb.WriteString("-- Crypto Fighters brawlsim --\n")
	if m.Loading {
		fmt.Fprintf(&sb, "%s Loading fighters...\n", m.Spinner.View())
		return sb.String()
	}
	if m.Err != nil {
		fmt.Fprintf(&sb, "Error: %v\n", m.Err)
		return sb.String()
	}
	if m.Bout == nil {
		return sb.String()
	}

	b := m.Bout
	fmt.Fprintf(&sb, "Arena: %s   seed %d   speed x%d\n\n", b.arena.Name, b.seed, m.Speed)
	for side := 0; side < 2; side++ {
		f := b.stage.Fighters[side]
		fmt.Fprintf(&sb, "%-14s %s %4.0f/%-4.0f %s\n", b.names[side], m.Bars[side].ViewAs(b.healthFraction(side)),
			f.Health, f.MaxHealth, strings.Repeat("*", b.match.Wins[side]))
	}
	fmt.Fprintf(&sb, "\nRound %d   clock %2d   %s\n", b.match.Round, b.match.ClockSeconds(), b.match.State)
	fmt.Fprintf(&sb, "hits %d / %d   blocks %d / %d\n\n", b.hits[0], b.hits[1], b.blocks[0], b.blocks[1])

	for _, line := range b.log {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}

	if r := b.result; r != nil {
		fmt.Fprintf(&sb, "\n%s in %d rounds, +%d coins +%d XP\n", r.Result, r.RoundsPlayed, r.Rewards.Coins, r.Rewards.XP)
		fmt.Fprintf(&sb, "Session: P1 %d  P2 %d  draws %d\n",
			m.Tally[rules.Player1Wins], m.Tally[rules.Player2Wins], m.Tally[rules.DrawResult])
	}

	sb.WriteString("\n[space] pause  [+/-] speed  [r] next bout  [q] quit")
	if m.Paused {
		sb.WriteString("   PAUSED")
	}
	sb.WriteByte('\n')
	return sb.String()
}
