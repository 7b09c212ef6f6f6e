package gamedata

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
	"github.com/sirupsen/logrus"

	"github.com/automoto/cryptofighters/shared/rules"
)

// Object group and object names used by arena TMX files.
const (
	groupArena    = "Arena"
	groupSpawns   = "PlayerSpawn"
	groupFeatures = "Features"
	objectMeta    = "meta"
	objectBounds  = "bounds"
)

// LoadArena parses one TMX arena. It takes an fs.FS so callers can pass
// embed.FS (client) or os.DirFS (tools).
func LoadArena(fsys fs.FS, tmxPath string) (*Arena, error) {
	arenaMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	a := &Arena{
		ID:     strings.TrimSuffix(path.Base(tmxPath), ".tmx"),
		Width:  float64(arenaMap.Width * arenaMap.TileWidth),
		Height: float64(arenaMap.Height * arenaMap.TileHeight),
	}

	var haveMeta, haveBounds bool
	spawns := make([]spawnPoint, 0, 2)
	for _, og := range arenaMap.ObjectGroups {
		switch og.Name {
		case groupArena:
			for _, o := range og.Objects {
				switch o.Name {
				case objectMeta:
					haveMeta = true
					a.Name = o.Properties.GetString("name")
					a.Description = o.Properties.GetString("description")
					a.Background = o.Properties.GetString("background")
					a.Theme = o.Properties.GetString("theme")
					a.Music = o.Properties.GetString("music")
					a.Lighting = o.Properties.GetString("lighting")
					a.Effects = ArenaEffects{
						Particles: o.Properties.GetBool("particles"),
						Ambient:   o.Properties.GetString("ambient"),
					}
				case objectBounds:
					haveBounds = true
					a.Bounds = Bounds{Left: o.X, Right: o.X + o.Width, Ground: o.Y + o.Height}
				}
			}
		case groupSpawns:
			for _, o := range og.Objects {
				spawns = append(spawns, spawnPoint{x: o.X, index: o.Properties.GetInt("spawnIndex")})
			}
		case groupFeatures:
			for _, o := range og.Objects {
				if o.Name != "" {
					a.Features = append(a.Features, o.Name)
				}
			}
		}
	}

	if !haveMeta || a.Name == "" {
		return nil, errors.New("missing meta object with a name")
	}
	if !haveBounds {
		a.Bounds = Bounds{Left: 0, Right: a.Width, Ground: rules.Stage.GroundY}
	}
	if a.Width == 0 || a.Height == 0 {
		a.Width, a.Height = rules.Stage.Width, rules.Stage.Height
	}
	if a.Bounds.Right-a.Bounds.Left <= 2*rules.Fighter.EdgeMargin {
		return nil, fmt.Errorf("bounds too narrow: %.0f..%.0f", a.Bounds.Left, a.Bounds.Right)
	}
	a.Spawns = resolveSpawns(spawns, a.Bounds)
	return a, nil
}

type spawnPoint struct {
	x     float64
	index int
}

// resolveSpawns orders spawns by spawnIndex and falls back to the thirds of
// the ring when fewer than two are authored.
func resolveSpawns(points []spawnPoint, b Bounds) [2]float64 {
	sort.Slice(points, func(i, j int) bool { return points[i].index < points[j].index })
	width := b.Right - b.Left
	out := [2]float64{b.Left + width/4, b.Right - width/4}
	for i := 0; i < len(points) && i < 2; i++ {
		out[i] = points[i].x
	}
	return out
}

// LoadAllArenas discovers every .tmx in dir and loads it. Arenas that fail to
// parse are skipped with a warning.
func LoadAllArenas(fsys fs.FS, dir string) ([]*Arena, error) {
	pattern := dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	sort.Strings(matches)

	arenas := make([]*Arena, 0, len(matches))
	for _, p := range matches {
		a, err := LoadArena(fsys, p)
		if err != nil {
			logrus.WithField("file", p).WithError(err).Warn("skipping invalid arena")
			continue
		}
		arenas = append(arenas, a)
	}
	return arenas, nil
}
