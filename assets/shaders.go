package assets

import (
	"embed"

	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed shaders/*.kage
var shaderFS embed.FS

var (
	// FlashShader blends a sprite toward a solid colour for hit flashes
	FlashShader *ebiten.Shader
)

// LoadShaders compiles and caches all shaders
func LoadShaders() error {
	if FlashShader != nil {
		return nil
	}

	src, err := shaderFS.ReadFile("shaders/flash.kage")
	if err != nil {
		return err
	}
	FlashShader, err = ebiten.NewShader(src)
	if err != nil {
		return err
	}

	return nil
}
