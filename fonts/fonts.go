package fonts

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	Regular FontName = "regular"
)

var (
	sources = map[FontName]*truetype.Font{}
	faces   = map[faceKey]font.Face{}
)

type faceKey struct {
	name FontName
	size int
}

// LoadFont parses a TrueType font and registers it under name
func LoadFont(name FontName, ttf []byte) error {
	f, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("parse font %s: %w", name, err)
	}
	sources[name] = f
	return nil
}

// Source returns the parsed font. The regular Go font is loaded on first use.
func Source(name FontName) (*truetype.Font, error) {
	f, ok := sources[name]
	if ok {
		return f, nil
	}
	if name == Regular {
		if err := LoadFont(Regular, goregular.TTF); err != nil {
			return nil, err
		}
		return Source(Regular)
	}
	return nil, fmt.Errorf("font %s not loaded", name)
}

// Face returns a face of the named font at a pixel size, cached per size
func Face(name FontName, size int) (font.Face, error) {
	key := faceKey{name: name, size: size}
	face, ok := faces[key]
	if ok {
		return face, nil
	}

	f, err := Source(name)
	if err != nil {
		return nil, err
	}
	face = truetype.NewFace(f, &truetype.Options{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	faces[key] = face
	return face, nil
}

// HasGlyph reports whether the named font can draw r
func HasGlyph(name FontName, r rune) bool {
	f, err := Source(name)
	if err != nil {
		return false
	}
	return f.Index(r) != 0
}
