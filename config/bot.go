package config

import "github.com/automoto/cryptofighters/shared/rules"

// BotDifficulty affects reaction time and decision quality
type BotDifficulty = rules.Difficulty

const (
	BotDifficultyEasy   = rules.Easy
	BotDifficultyNormal = rules.Normal
	BotDifficultyHard   = rules.Hard
)

// BotConfigData holds the CPU presentation values. Behaviour tuning lives in
// rules.CPU so the simulator shares it.
type BotConfigData struct {
	Side         int // the CPU always plays player two
	Descriptions map[BotDifficulty]string
}

// Bot holds bot AI configuration
var Bot BotConfigData

func init() {
	Bot = BotConfigData{
		Side: 1,
		Descriptions: map[BotDifficulty]string{
			BotDifficultyEasy:   "Slow to react, rarely retreats",
			BotDifficultyNormal: "A fair fight",
			BotDifficultyHard:   "Punishes every whiff",
		},
	}
}
