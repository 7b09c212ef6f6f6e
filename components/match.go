package components

import (
	"github.com/automoto/cryptofighters/shared/match"
	"github.com/yohamta/donburi"
)

// MatchData is the singleton round/match record for the fight scene.
type MatchData struct {
	*match.Match
	Recorded bool // result handed to the session
}

var Match = donburi.NewComponentType[MatchData]()
