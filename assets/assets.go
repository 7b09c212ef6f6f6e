package assets

import (
	"fmt"
	"image"

	"github.com/automoto/cryptofighters/assets/gamefiles"
	"github.com/automoto/cryptofighters/assets/spritegen"
	"github.com/automoto/cryptofighters/config"
	"github.com/automoto/cryptofighters/shared/gamedata"
	"github.com/hajimehoshi/ebiten/v2"
)

// LoadCatalog parses the embedded characters, moves and arenas.
func LoadCatalog() (*gamedata.Catalog, error) {
	return gamefiles.LoadCatalog()
}

// SpriteLoader caches generated images. Sheets are generated once per
// character and clip, then sliced into cached frames.
type SpriteLoader struct {
	sheets      map[string]*ebiten.Image
	frameCache  map[string]*ebiten.Image
	portraits   map[string]*ebiten.Image
	projectiles map[string]*ebiten.Image
	backdrops   map[string]*ebiten.Image
}

func NewSpriteLoader() *SpriteLoader {
	return &SpriteLoader{
		sheets:      make(map[string]*ebiten.Image),
		frameCache:  make(map[string]*ebiten.Image),
		portraits:   make(map[string]*ebiten.Image),
		projectiles: make(map[string]*ebiten.Image),
		backdrops:   make(map[string]*ebiten.Image),
	}
}

var spriteLoader = NewSpriteLoader()

// GetSheet returns the sprite sheet for a character clip, generating it on
// first use.
func (l *SpriteLoader) GetSheet(ch *gamedata.Character, clip string) *ebiten.Image {
	key := config.SheetKey(ch.ID, clip)
	if img, ok := l.sheets[key]; ok {
		return img
	}
	def, ok := config.FighterAnimations[clip]
	if !ok {
		def = config.FighterAnimations[config.ClipIdle]
	}
	fw, fh := config.FighterView.FrameWidth, config.FighterView.FrameHeight
	img := ebiten.NewImageFromImage(spritegen.Sheet(ch, clip, def.Last+1, fw, fh))
	l.sheets[key] = img
	return img
}

// GetFrame returns a cached sub-image for a specific animation frame.
// This prevents creating thousands of duplicate *ebiten.Image structs for the same frame.
func (l *SpriteLoader) GetFrame(ch *gamedata.Character, clip string, frameIndex int) *ebiten.Image {
	key := fmt.Sprintf("%s/%d", config.SheetKey(ch.ID, clip), frameIndex)
	if img, ok := l.frameCache[key]; ok {
		return img
	}

	sheet := l.GetSheet(ch, clip)
	fw, fh := config.FighterView.FrameWidth, config.FighterView.FrameHeight
	frames := sheet.Bounds().Dx() / fw
	if frameIndex < 0 || frameIndex >= frames {
		frameIndex = 0
	}
	srcRect := image.Rect(frameIndex*fw, 0, (frameIndex+1)*fw, fh)
	frame := sheet.SubImage(srcRect).(*ebiten.Image)
	l.frameCache[key] = frame
	return frame
}

func (l *SpriteLoader) GetPortrait(ch *gamedata.Character) *ebiten.Image {
	if img, ok := l.portraits[ch.ID]; ok {
		return img
	}
	img := ebiten.NewImageFromImage(spritegen.Portrait(ch, config.Menu.PortraitSize))
	l.portraits[ch.ID] = img
	return img
}

func (l *SpriteLoader) GetProjectile(kind string) *ebiten.Image {
	if img, ok := l.projectiles[kind]; ok {
		return img
	}
	c, ok := config.ProjectileView.Colors[kind]
	if !ok {
		c = config.White
	}
	img := ebiten.NewImageFromImage(spritegen.Projectile(kind, c, config.ProjectileView.SpriteSize))
	l.projectiles[kind] = img
	return img
}

func (l *SpriteLoader) GetBackdrop(a *gamedata.Arena) *ebiten.Image {
	if img, ok := l.backdrops[a.ID]; ok {
		return img
	}
	img := ebiten.NewImageFromImage(spritegen.Backdrop(a, config.C.Width, config.C.Height))
	l.backdrops[a.ID] = img
	return img
}

func GetFrame(ch *gamedata.Character, clip string, frameIndex int) *ebiten.Image {
	return spriteLoader.GetFrame(ch, clip, frameIndex)
}

func GetPortrait(ch *gamedata.Character) *ebiten.Image {
	return spriteLoader.GetPortrait(ch)
}

func GetProjectile(kind string) *ebiten.Image {
	return spriteLoader.GetProjectile(kind)
}

func GetBackdrop(a *gamedata.Arena) *ebiten.Image {
	return spriteLoader.GetBackdrop(a)
}

// PreloadFighters generates every clip for the given characters so the first
// frames of a fight do not stall.
func PreloadFighters(chars ...*gamedata.Character) {
	for _, ch := range chars {
		if ch == nil {
			continue
		}
		for _, clip := range config.ClipOrder {
			spriteLoader.GetSheet(ch, clip)
		}
	}
}
