package term

import (
	"image/color"
	"math"

	"github.com/automoto/spiralstar/components"
	"github.com/automoto/spiralstar/scenes"
	"github.com/automoto/spiralstar/shared/gamemath"
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Terminal cells are taller than wide; one cell stands for this many scene pixels so
// spirals keep the proportions they have on a canvas.
const (
	CellWidth  = 8
	CellHeight = 16
)

// ToCell maps a scene position to the cell it falls in
func ToCell(x, y float64) (int, int) {
	return int(math.Floor(x / CellWidth)), int(math.Floor(y / CellHeight))
}

// FromCell maps a cell to the scene position at its center
func FromCell(cx, cy int) (float64, float64) {
	return float64(cx*CellWidth) + CellWidth/2, float64(cy*CellHeight) + CellHeight/2
}

// SceneSize is the scene size in pixels covered by a terminal of cols x rows cells
func SceneSize(cols, rows int) (int, int) {
	return cols * CellWidth, rows * CellHeight
}

// Draw paints the scene onto the screen: background, then the trail, then the stars.
// Trail alpha is shown by blending the dot color toward the background.
func Draw(screen tcell.Screen, sc *scenes.SpiralScene) {
	bg := sc.Config().BackgroundColor
	base := tcell.StyleDefault.Background(rgb(bg))
	screen.SetStyle(base)
	screen.Clear()
	cols, rows := screen.Size()

	sc.EachTrail(func(dot *components.TrailData, glyph *components.GlyphData) {
		if !dot.Enabled || dot.Alpha <= 0 {
			return
		}
		cx, cy := ToCell(dot.Position.X, dot.Position.Y)
		if cx < 0 || cy < 0 || cx >= cols || cy >= rows {
			return
		}
		fg := blend(bg, glyph.Color, dot.Alpha)
		screen.SetContent(cx, cy, glyph.Rune, nil, base.Foreground(rgb(fg)))
	})

	sc.EachStar(func(star *components.StarData, glyph *components.GlyphData, scale float64) {
		if star.Expired || scale <= 0 {
			return
		}
		cx, cy := ToCell(star.Position.X, star.Position.Y)
		if cx < 0 || cy < 0 || cx >= cols || cy >= rows {
			return
		}
		screen.SetContent(cx, cy, glyph.Rune, nil, base.Foreground(rgb(glyph.Color)).Bold(true))
	})
}

// blend mixes fg over bg at the given alpha
func blend(bg, fg color.RGBA, alpha float64) color.RGBA {
	b, _ := colorful.MakeColor(bg)
	f, _ := colorful.MakeColor(fg)
	r, g, bl := b.BlendRgb(f, gamemath.Clamp01(alpha)).RGB255()
	return color.RGBA{R: r, G: g, B: bl, A: 0xff}
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
