package fonts

import (
	"bytes"
	"fmt"

	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	Regular FontName = "regular"
	Bold    FontName = "bold"
	Title   FontName = "title"
	Small   FontName = "small"
	Banner  FontName = "banner"
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

var (
	fonts = map[FontName]font.Face{}
)

// LoadDefaults registers every face the game draws with, built from the Go
// fonts shipped in x/image.
func LoadDefaults() error {
	sizes := []struct {
		name FontName
		ttf  []byte
		size float64
	}{
		{Regular, goregular.TTF, 14},
		{Small, goregular.TTF, 11},
		{Bold, gobold.TTF, 20},
		{Title, gobold.TTF, 32},
		{Banner, gobold.TTF, 56},
	}
	for _, s := range sizes {
		if err := LoadFontWithSize(s.name, s.ttf, s.size); err != nil {
			return err
		}
	}
	return nil
}

func LoadFont(name FontName, ttf []byte) error {
	return LoadFontWithSize(name, ttf, 10)
}

func LoadFontWithSize(name FontName, ttf []byte, size float64) error {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("parse font %s: %w", name, err)
	}
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
	return nil
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}

var (
	regularSource *text.GoTextFaceSource
	boldSource    *text.GoTextFaceSource
)

// UIFace returns a text/v2 face for ebitenui widgets.
func UIFace(size float64, bold bool) (text.Face, error) {
	src, err := uiSource(bold)
	if err != nil {
		return nil, err
	}
	return &text.GoTextFace{Source: src, Size: size}, nil
}

func uiSource(bold bool) (*text.GoTextFaceSource, error) {
	var err error
	if bold {
		if boldSource == nil {
			boldSource, err = text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
		}
		return boldSource, err
	}
	if regularSource == nil {
		regularSource, err = text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	}
	return regularSource, err
}
