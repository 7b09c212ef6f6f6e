package config

import "github.com/automoto/cryptofighters/assets/spritegen"

// AnimationDef describes one clip on a generated fighter sheet.
type AnimationDef struct {
	First int
	Last  int
	Step  int
	Speed float32 // ticks per frame
	Loop  bool
}

// Clip names. Sheets are keyed "<characterID>_<clip>".
const (
	ClipIdle           = spritegen.ClipIdle
	ClipWalking        = spritegen.ClipWalking
	ClipJumping        = spritegen.ClipJumping
	ClipHurt           = spritegen.ClipHurt
	ClipBlocking       = spritegen.ClipBlocking
	ClipAttackBasic    = spritegen.ClipAttackBasic
	ClipAttackSpecial1 = spritegen.ClipAttackSpecial1
	ClipAttackSpecial2 = spritegen.ClipAttackSpecial2
)

// FighterAnimations is the single clip table shared by every character.
var FighterAnimations = map[string]AnimationDef{
	ClipIdle:           {First: 0, Last: 3, Step: 1, Speed: 10, Loop: true},
	ClipWalking:        {First: 0, Last: 5, Step: 1, Speed: 6, Loop: true},
	ClipJumping:        {First: 0, Last: 2, Step: 1, Speed: 8},
	ClipHurt:           {First: 0, Last: 1, Step: 1, Speed: 6},
	ClipBlocking:       {First: 0, Last: 0, Step: 1, Speed: 1},
	ClipAttackBasic:    {First: 0, Last: 3, Step: 1, Speed: 5},
	ClipAttackSpecial1: {First: 0, Last: 4, Step: 1, Speed: 6},
	ClipAttackSpecial2: {First: 0, Last: 4, Step: 1, Speed: 5},
}

// ClipOrder fixes the preload order so sheet generation is deterministic.
var ClipOrder = []string{
	ClipIdle, ClipWalking, ClipJumping, ClipHurt, ClipBlocking,
	ClipAttackBasic, ClipAttackSpecial1, ClipAttackSpecial2,
}
