package gamedata

import (
	"errors"
	"math/rand"

	"github.com/automoto/cryptofighters/shared/rules"
)

var (
	ErrNoCharacters = errors.New("no valid characters loaded")
	ErrNoArenas     = errors.New("no valid arenas loaded")
)

// Catalog is the validated, read-only set of game data.
type Catalog struct {
	characters []*Character
	moves      []*Move
	arenas     []*Arena

	characterByID map[string]*Character
	moveByID      map[string]*Move
	arenaByID     map[string]*Arena
}

func newCatalog() *Catalog {
	return &Catalog{
		characterByID: make(map[string]*Character),
		moveByID:      make(map[string]*Move),
		arenaByID:     make(map[string]*Arena),
	}
}

func (c *Catalog) addCharacter(ch *Character) {
	c.characters = append(c.characters, ch)
	c.characterByID[ch.ID] = ch
}

func (c *Catalog) addMove(m *Move) {
	c.moves = append(c.moves, m)
	c.moveByID[m.ID] = m
}

func (c *Catalog) addArena(a *Arena) {
	c.arenas = append(c.arenas, a)
	c.arenaByID[a.ID] = a
}

// Character returns the character with the given id, or nil.
func (c *Catalog) Character(id string) *Character {
	return c.characterByID[id]
}

// Characters returns all characters in file order.
func (c *Catalog) Characters() []*Character {
	return c.characters
}

func (c *Catalog) CharactersByRarity(rarity string) []*Character {
	var out []*Character
	for _, ch := range c.characters {
		if ch.Rarity == rarity {
			out = append(out, ch)
		}
	}
	return out
}

func (c *Catalog) CharactersByElement(element string) []*Character {
	var out []*Character
	for _, ch := range c.characters {
		if ch.Element == element {
			out = append(out, ch)
		}
	}
	return out
}

// RandomCharacter picks any character.
func (c *Catalog) RandomCharacter(rng *rand.Rand) *Character {
	if len(c.characters) == 0 {
		return nil
	}
	return c.characters[rng.Intn(len(c.characters))]
}

// Move returns the move with the given id, or nil.
func (c *Catalog) Move(id string) *Move {
	return c.moveByID[id]
}

func (c *Catalog) Moves() []*Move {
	return c.moves
}

func (c *Catalog) MovesByType(kind rules.AttackKind) []*Move {
	var out []*Move
	for _, m := range c.moves {
		if m.Kind == kind {
			out = append(out, m)
		}
	}
	return out
}

// CharacterMoves resolves a character's move list, in its declared order.
func (c *Catalog) CharacterMoves(id string) []*Move {
	ch := c.characterByID[id]
	if ch == nil {
		return nil
	}
	out := make([]*Move, 0, len(ch.Moves))
	for _, mid := range ch.Moves {
		if m := c.moveByID[mid]; m != nil {
			out = append(out, m)
		}
	}
	return out
}

// MoveFor returns the character's first move of the given kind, or nil when
// the character has none and the tuning defaults apply.
func (c *Catalog) MoveFor(ch *Character, kind rules.AttackKind) *Move {
	if ch == nil {
		return nil
	}
	for _, mid := range ch.Moves {
		if m := c.moveByID[mid]; m != nil && m.Kind == kind {
			return m
		}
	}
	return nil
}

// MoveSet resolves one move per attack kind.
func (c *Catalog) MoveSet(ch *Character) [rules.AttackKindCount]*Move {
	var set [rules.AttackKindCount]*Move
	for k := rules.Basic; k < rules.AttackKindCount; k++ {
		set[k] = c.MoveFor(ch, k)
	}
	return set
}

// Arena returns the arena with the given id, or nil.
func (c *Catalog) Arena(id string) *Arena {
	return c.arenaByID[id]
}

// Arenas returns all arenas sorted by id.
func (c *Catalog) Arenas() []*Arena {
	return c.arenas
}

func (c *Catalog) ArenasByTheme(theme string) []*Arena {
	var out []*Arena
	for _, a := range c.arenas {
		if a.Theme == theme {
			out = append(out, a)
		}
	}
	return out
}

func (c *Catalog) RandomArena(rng *rand.Rand) *Arena {
	if len(c.arenas) == 0 {
		return nil
	}
	return c.arenas[rng.Intn(len(c.arenas))]
}

// Stats counts the catalog contents.
func (c *Catalog) Stats() CatalogStats {
	s := CatalogStats{
		Characters: len(c.characters),
		Moves:      len(c.moves),
		Arenas:     len(c.arenas),
		ByRarity:   make(map[string]int),
		ByElement:  make(map[string]int),
	}
	for _, ch := range c.characters {
		s.ByRarity[ch.Rarity]++
		s.ByElement[ch.Element]++
	}
	return s
}
