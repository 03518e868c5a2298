package components

import (
	"image/color"

	"github.com/yohamta/donburi"
)

// GlyphData describes how an entity is drawn: one character at a pixel size, anchored
// on its center
type GlyphData struct {
	Rune  rune
	Size  int
	Color color.RGBA
}

var Glyph = donburi.NewComponentType[GlyphData]()
