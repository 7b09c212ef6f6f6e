package ui

import (
	"fmt"
	"strings"

	cfg "github.com/automoto/cryptofighters/config"
	"github.com/automoto/cryptofighters/shared/career"
	"github.com/automoto/cryptofighters/shared/gamedata"
	"github.com/automoto/cryptofighters/shared/rules"
	"github.com/automoto/cryptofighters/shared/session"
)

var attackKeys = [rules.AttackKindCount]string{"J", "K", "L"}

func statsLine(ch *gamedata.Character) string {
	if ch == nil {
		return ""
	}
	s := ch.Stats
	return fmt.Sprintf("HP %.0f  ATK %.0f  DEF %.0f  SPD %.0f", s.Health, s.Attack, s.Defense, s.Speed)
}

// movesText lists one move per attack kind with the P1 key that fires it.
func movesText(cat *gamedata.Catalog, ch *gamedata.Character) string {
	if ch == nil {
		return ""
	}
	set := cat.MoveSet(ch)
	lines := make([]string, 0, len(set))
	for k, m := range set {
		name := "(default " + rules.AttackKind(k).String() + ")"
		if m != nil {
			name = m.Name
		}
		lines = append(lines, fmt.Sprintf("[%s] %s", attackKeys[k], name))
	}
	return strings.Join(lines, "\n")
}

func characterName(cat *gamedata.Catalog, id string) string {
	if ch := cat.Character(id); ch != nil {
		return ch.Name
	}
	if id == "" {
		return "?"
	}
	return id
}

func arenaLine(a *gamedata.Arena) string {
	if a == nil {
		return ""
	}
	return fmt.Sprintf("%s\n%s\nTheme: %s", a.Name, a.Description, a.Theme)
}

func healthStatus(health float64) string {
	if health > 0 {
		return "ALIVE"
	}
	return "REKT"
}

func healthLine(name string, health, maxHealth float64) string {
	return fmt.Sprintf("%s  %.0f/%.0f  %s", name, health, maxHealth, healthStatus(health))
}

func resultTitle(res *session.FightResult, names [2]string) string {
	switch w := res.Winner(); w {
	case 0, 1:
		return fmt.Sprintf(cfg.Banner.WinsFormat, strings.ToUpper(names[w]))
	}
	if t, ok := cfg.Results.Titles[string(res.Result)]; ok {
		return t
	}
	return string(res.Result)
}

func resultSubtitle(res *session.FightResult) string {
	if t, ok := cfg.Results.Titles[string(res.Result)]; ok && res.Winner() >= 0 {
		return fmt.Sprintf("%s  %d-%d", t, res.Wins[0], res.Wins[1])
	}
	return fmt.Sprintf("%d-%d after %d rounds", res.Wins[0], res.Wins[1], res.RoundsPlayed)
}

func roundLines(res *session.FightResult, names [2]string) []string {
	out := make([]string, 0, len(res.Rounds))
	for _, r := range res.Rounds {
		winner := "Draw"
		if side := r.Winner.Side(); side >= 0 {
			winner = names[side]
		}
		out = append(out, fmt.Sprintf("Round %d: %s (%s, %.0f - %.0f)", r.Round, winner, r.Reason, r.Health[0], r.Health[1]))
	}
	return out
}

func rewardsLine(r session.Rewards) string {
	return fmt.Sprintf("+%d coins   +%d XP", r.Coins, r.XP)
}

func careerLine(records *career.Records, name, id string) string {
	t := records.Tally(id)
	return fmt.Sprintf("%s career: %s", name, t)
}

func difficultyLabel(d rules.Difficulty) string {
	return "CPU: " + d.String()
}

func modeLabel(m session.Mode) string {
	if m == session.TwoPlayer {
		return "Two Player"
	}
	return "Single Player"
}

// sideLabel names who controls a side on the select screen.
func sideLabel(m session.Mode, side int) string {
	if side == 0 {
		return "P1"
	}
	if m == session.SinglePlayer {
		return "CPU"
	}
	return "P2"
}
