// Package gamefiles embeds the character, move and arena definitions. It does
// not import ebiten so the headless simulator can load the same data.
package gamefiles

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/automoto/cryptofighters/shared/gamedata"
)

//go:embed data/*.json arenas/*.tmx
var dataFS embed.FS

// FS exposes the embedded files.
func FS() fs.FS {
	return dataFS
}

// LoadCatalog parses the embedded game data.
func LoadCatalog() (*gamedata.Catalog, error) {
	cat, err := gamedata.Load(dataFS)
	if err != nil {
		return nil, fmt.Errorf("load game data: %w", err)
	}
	return cat, nil
}
