package gamedata

import (
	"encoding/json"
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/automoto/cryptofighters/shared/rules"
)

const (
	CharactersPath = "data/characters.json"
	MovesPath      = "data/moves.json"
	ArenasDir      = "arenas"
)

var (
	validRarities    = map[string]bool{"common": true, "rare": true, "epic": true, "legendary": true}
	validProjectiles = map[string]bool{"bullet": true, "arrow": true, "magic": true, "fireball": true}

	// DefaultPalette is used when a character's colours are missing or malformed.
	DefaultPalette = Palette{Body: "#8a8a9a", Accent: "#f7931a", Trim: "#202030"}
)

// Load reads moves, characters and arenas from fsys. Malformed entries are
// skipped with a warning; an empty roster or arena list is an error.
func Load(fsys fs.FS) (*Catalog, error) {
	cat := newCatalog()

	if err := loadMoves(fsys, cat); err != nil {
		return nil, err
	}
	if err := loadCharacters(fsys, cat); err != nil {
		return nil, err
	}
	if len(cat.characters) == 0 {
		return nil, ErrNoCharacters
	}

	arenas, err := LoadAllArenas(fsys, ArenasDir)
	if err != nil {
		return nil, err
	}
	for _, a := range arenas {
		cat.addArena(a)
	}
	if len(cat.arenas) == 0 {
		return nil, ErrNoArenas
	}

	logrus.WithFields(logrus.Fields{
		"characters": len(cat.characters),
		"moves":      len(cat.moves),
		"arenas":     len(cat.arenas),
	}).Debug("game data loaded")
	return cat, nil
}

// readEntries splits a JSON array into raw entries so one bad entry does not
// poison the rest.
func readEntries(fsys fs.FS, path string) ([]json.RawMessage, error) {
	raw, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var entries []json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return entries, nil
}

func loadMoves(fsys fs.FS, cat *Catalog) error {
	entries, err := readEntries(fsys, MovesPath)
	if err != nil {
		return err
	}
	for i, entry := range entries {
		var m Move
		if err := json.Unmarshal(entry, &m); err != nil {
			logrus.WithFields(logrus.Fields{"file": MovesPath, "index": i}).WithError(err).Warn("skipping malformed move")
			continue
		}
		if err := validateMove(&m, cat); err != nil {
			logrus.WithFields(logrus.Fields{"file": MovesPath, "index": i, "id": m.ID}).WithError(err).Warn("skipping invalid move")
			continue
		}
		cat.addMove(&m)
	}
	return nil
}

func validateMove(m *Move, cat *Catalog) error {
	if m.ID == "" {
		return errors.New("missing id")
	}
	if cat.moveByID[m.ID] != nil {
		return errors.New("duplicate id")
	}
	if m.Name == "" {
		return errors.New("missing name")
	}
	kind, ok := rules.ParseAttackKind(m.Type)
	if !ok {
		return fmt.Errorf("unknown type %q", m.Type)
	}
	m.Kind = kind
	if m.Cooldown < 0 || m.Range < 0 {
		return errors.New("negative cooldown or range")
	}
	if m.ProjectileType != "" && !validProjectiles[m.ProjectileType] {
		return fmt.Errorf("unknown projectile type %q", m.ProjectileType)
	}
	return nil
}

func loadCharacters(fsys fs.FS, cat *Catalog) error {
	entries, err := readEntries(fsys, CharactersPath)
	if err != nil {
		return err
	}
	for i, entry := range entries {
		var ch Character
		if err := json.Unmarshal(entry, &ch); err != nil {
			logrus.WithFields(logrus.Fields{"file": CharactersPath, "index": i}).WithError(err).Warn("skipping malformed character")
			continue
		}
		if err := validateCharacter(&ch, cat); err != nil {
			logrus.WithFields(logrus.Fields{"file": CharactersPath, "index": i, "id": ch.ID}).WithError(err).Warn("skipping invalid character")
			continue
		}
		cat.addCharacter(&ch)
	}
	return nil
}

func validateCharacter(ch *Character, cat *Catalog) error {
	if ch.ID == "" {
		return errors.New("missing id")
	}
	if cat.characterByID[ch.ID] != nil {
		return errors.New("duplicate id")
	}
	if ch.Name == "" {
		return errors.New("missing name")
	}
	if ch.Stats.Health <= 0 {
		return errors.New("health must be positive")
	}
	if ch.Stats.Attack < 0 || ch.Stats.Defense < 0 || ch.Stats.Speed < 0 {
		return errors.New("negative stat")
	}
	if ch.Rarity != "" && !validRarities[ch.Rarity] {
		return fmt.Errorf("unknown rarity %q", ch.Rarity)
	}
	if ch.Stats.Speed == 0 {
		ch.Stats.Speed = rules.Fighter.DefaultSpeed
	}

	// Unknown move ids are dropped; missing kinds fall back to defaults.
	known := ch.Moves[:0]
	for _, mid := range ch.Moves {
		if cat.moveByID[mid] == nil {
			logrus.WithFields(logrus.Fields{"character": ch.ID, "move": mid}).Warn("dropping unknown move reference")
			continue
		}
		known = append(known, mid)
	}
	ch.Moves = known

	if _, err := ParseHexColor(ch.Palette.Body); err != nil {
		ch.Palette = DefaultPalette
	} else {
		if _, err := ParseHexColor(ch.Palette.Accent); err != nil {
			ch.Palette.Accent = DefaultPalette.Accent
		}
		if _, err := ParseHexColor(ch.Palette.Trim); err != nil {
			ch.Palette.Trim = DefaultPalette.Trim
		}
	}
	return nil
}

// ParseHexColor parses "#rrggbb" or "#rrggbbaa".
func ParseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("bad colour %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("bad colour %q: %w", s, err)
	}
	if len(hex) == 6 {
		v = v<<8 | 0xff
	}
	return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}
