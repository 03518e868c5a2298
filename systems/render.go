package systems

import (
	"github.com/automoto/spiralstar/components"
	"github.com/automoto/spiralstar/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp = &ebiten.DrawImageOptions{}
)

// Screens handed to the renderers may be sub-images of the window, so every position
// is offset by the screen's origin.

// DrawBackground fills the scene with its background color
func DrawBackground(ecs *ecs.ECS, screen *ebiten.Image) {
	settings, ok := Settings(ecs)
	if !ok {
		return
	}
	screen.Fill(settings.Config.BackgroundColor)
}

// DrawTrails draws every enabled trail dot at its current alpha
func DrawTrails(ecs *ecs.ECS, screen *ebiten.Image) {
	components.Trail.Each(ecs.World, func(e *donburi.Entry) {
		dot := components.Trail.Get(e)
		if !dot.Enabled || dot.Alpha <= 0 {
			return
		}
		drawGlyph(screen, components.Glyph.Get(e), dot.Position.X, dot.Position.Y, 1, dot.Alpha)
	})
}

// DrawStars draws every live star
func DrawStars(ecs *ecs.ECS, screen *ebiten.Image) {
	components.Star.Each(ecs.World, func(e *donburi.Entry) {
		star := components.Star.Get(e)
		if star.Expired {
			return
		}
		drawGlyph(screen, components.Glyph.Get(e), star.Position.X, star.Position.Y, StarScale(e), 1)
	})
}

// drawGlyph draws a glyph centered on (x, y)
func drawGlyph(screen *ebiten.Image, g *components.GlyphData, x, y, scale, alpha float64) {
	if scale <= 0 {
		return
	}
	img := fonts.GlyphImage(g.Rune, g.Size)
	b := img.Bounds()
	origin := screen.Bounds().Min

	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	drawOp.GeoM.Translate(-float64(b.Dx())/2, -float64(b.Dy())/2)
	drawOp.GeoM.Scale(scale, scale)
	drawOp.GeoM.Translate(x+float64(origin.X), y+float64(origin.Y))
	drawOp.ColorScale.ScaleWithColor(g.Color)
	drawOp.ColorScale.ScaleAlpha(float32(alpha))
	screen.DrawImage(img, drawOp)
}
