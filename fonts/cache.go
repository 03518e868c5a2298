package fonts

import "github.com/hajimehoshi/ebiten/v2"

type glyphKey struct {
	r    rune
	size int
}

var glyphImages = map[glyphKey]*ebiten.Image{}

// GlyphImage returns the white glyph image for r at size, rasterized once and reused.
// Callers tint it with ColorScale.
func GlyphImage(r rune, size int) *ebiten.Image {
	key := glyphKey{r: r, size: size}
	if img, ok := glyphImages[key]; ok {
		return img
	}
	img := ebiten.NewImageFromImage(Rasterize(r, size))
	glyphImages[key] = img
	return img
}
