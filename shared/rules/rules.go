// Package rules defines the enums and tuning values shared by the fight core,
// the game client and the headless simulator. It must have zero dependencies
// on ebiten or any graphics library so the simulator stays headless.
package rules

// Status is a fighter's position in the combat status machine.
type Status int

const (
	Idle Status = iota
	Walking
	Jumping
	Attacking
	Hurt
	Blocking
)

var statusNames = map[Status]string{
	Idle:      "idle",
	Walking:   "walking",
	Jumping:   "jumping",
	Attacking: "attacking",
	Hurt:      "hurt",
	Blocking:  "blocking",
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "unknown"
}

// AttackKind selects one of a fighter's three moves.
type AttackKind int

const (
	Basic AttackKind = iota
	Special1
	Special2

	AttackKindCount
)

var attackKindNames = [AttackKindCount]string{"basic", "special1", "special2"}

func (k AttackKind) String() string {
	if k < 0 || k >= AttackKindCount {
		return "unknown"
	}
	return attackKindNames[k]
}

// ParseAttackKind maps a move type name back to its kind.
func ParseAttackKind(name string) (AttackKind, bool) {
	for i, n := range attackKindNames {
		if n == name {
			return AttackKind(i), true
		}
	}
	return 0, false
}

// MatchState is the round/match progression state.
type MatchState int

const (
	Countdown MatchState = iota // Pre-round countdown, inputs suppressed
	RoundActive
	RoundEnd      // Pause between rounds
	MatchComplete // Results pending
)

var matchStateNames = map[MatchState]string{
	Countdown:     "countdown",
	RoundActive:   "round_active",
	RoundEnd:      "round_end",
	MatchComplete: "match_complete",
}

func (s MatchState) String() string {
	if name, ok := matchStateNames[s]; ok {
		return name
	}
	return "unknown"
}

// Outcome names the winner of a round. None means the round is still running.
type Outcome int

const (
	None Outcome = iota
	Player1
	Player2
	Draw
)

// Side returns the winning side index, or -1 for None and Draw.
func (o Outcome) Side() int {
	switch o {
	case Player1:
		return 0
	case Player2:
		return 1
	}
	return -1
}

// OutcomeForSide is the inverse of Side.
func OutcomeForSide(side int) Outcome {
	if side == 0 {
		return Player1
	}
	return Player2
}

func (o Outcome) String() string {
	switch o {
	case Player1:
		return "player1"
	case Player2:
		return "player2"
	case Draw:
		return "draw"
	}
	return "none"
}

// EndReason records why a round finished.
type EndReason int

const (
	KO EndReason = iota
	TimeUp
	DoubleKO
)

func (r EndReason) String() string {
	switch r {
	case KO:
		return "K.O."
	case TimeUp:
		return "TIME UP"
	case DoubleKO:
		return "DOUBLE K.O."
	}
	return "?"
}

// MatchResult is the final tag handed to the results screen.
type MatchResult string

const (
	Player1Wins MatchResult = "PLAYER1_WINS"
	Player2Wins MatchResult = "PLAYER2_WINS"
	DrawResult  MatchResult = "DRAW"

	// TimeUpTag labels a round decided by the clock.
	TimeUpTag = "TIME_UP"
)

// ActionID identifies a logical input action.
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionJump
	ActionBlock
	ActionAttackBasic
	ActionAttackSpecial1
	ActionAttackSpecial2
	ActionPause
	ActionMenuUp
	ActionMenuDown
	ActionMenuLeft
	ActionMenuRight
	ActionMenuSelect
	ActionMenuBack

	ActionCount // Must be last, used for array sizing
)

// AttackAction maps an attack kind to the action that triggers it.
func AttackAction(k AttackKind) ActionID {
	return ActionAttackBasic + ActionID(k)
}

// Difficulty controls how the CPU opponent plays.
type Difficulty int

const (
	Easy Difficulty = iota
	Normal
	Hard

	DifficultyCount
)

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "Easy"
	case Hard:
		return "Hard"
	}
	return "Normal"
}

// Next cycles through the difficulties.
func (d Difficulty) Next() Difficulty {
	return (d + 1) % DifficultyCount
}
