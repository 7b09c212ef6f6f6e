// Package gamedata loads the static fighter, move and arena definitions.
// It has no dependencies on ebitengine, donburi, or resolv so the simulator
// can share it.
package gamedata

import (
	"github.com/automoto/cryptofighters/shared/rules"
)

// Stats are a character's base attributes.
type Stats struct {
	Health  float64 `json:"health"`
	Attack  float64 `json:"attack"`
	Defense float64 `json:"defense"`
	Speed   float64 `json:"speed"`
	Mana    float64 `json:"mana"`
}

// Palette colours drive the generated sprites, as "#rrggbb".
type Palette struct {
	Body   string `json:"body"`
	Accent string `json:"accent"`
	Trim   string `json:"trim"`
}

// Character is a playable fighter definition.
type Character struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	Description        string   `json:"description"`
	Stats              Stats    `json:"stats"`
	Moves              []string `json:"moves"`
	SpecialProjectiles []string `json:"specialProjectiles"`
	Rarity             string   `json:"rarity"`
	Element            string   `json:"element"`
	Palette            Palette  `json:"palette"`
}

// Move is one attack definition. Cooldown and Range of zero fall back to the
// tuning defaults.
type Move struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	Type           string   `json:"type"`
	Cooldown       float64  `json:"cooldown"`
	Range          float64  `json:"range"`
	Effects        []string `json:"effects"`
	Animation      string   `json:"animation"`
	ProjectileType string   `json:"projectileType,omitempty"`
	BattleCries    []string `json:"battleCries,omitempty"`

	Kind rules.AttackKind `json:"-"`
}

// Ranged reports whether the move fires a projectile.
func (m *Move) Ranged() bool {
	return m != nil && m.ProjectileType != ""
}

// Bounds are the horizontal walls and floor of an arena.
type Bounds struct {
	Left, Right, Ground float64
}

// ArenaEffects are cosmetic arena flags.
type ArenaEffects struct {
	Particles bool
	Ambient   string
}

// Arena is a stage definition parsed from TMX.
type Arena struct {
	ID          string
	Name        string
	Description string
	Background  string
	Theme       string
	Music       string
	Lighting    string
	Effects     ArenaEffects
	Bounds      Bounds
	Spawns      [2]float64
	Features    []string
	Width       float64
	Height      float64
}

// CatalogStats summarises a loaded catalog.
type CatalogStats struct {
	Characters int
	Moves      int
	Arenas     int
	ByRarity   map[string]int
	ByElement  map[string]int
}
