package fonts

import (
	"image"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// Rasterize draws r in white at the given pixel size, cropped to its ink so the
// image center is the glyph center. Runes the font cannot draw fall back to a
// filled star for '★' and a filled circle for anything else.
func Rasterize(r rune, size int) *image.RGBA {
	if size < 1 {
		size = 1
	}
	if HasGlyph(Regular, r) {
		if img := rasterizeFont(r, size); img != nil {
			return img
		}
	}
	if r == '★' || r == '☆' {
		return rasterizeStar(size)
	}
	return rasterizeCircle(size)
}

func rasterizeFont(r rune, size int) *image.RGBA {
	face, err := Face(Regular, size)
	if err != nil {
		return nil
	}
	s := string(r)
	bounds, _ := font.BoundString(face, s)
	w := (bounds.Max.X - bounds.Min.X).Ceil()
	h := (bounds.Max.Y - bounds.Min.Y).Ceil()
	if w <= 0 || h <= 0 {
		return nil
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	d := font.Drawer{
		Dst:  img,
		Src:  image.White,
		Face: face,
		Dot:  fixed.Point26_6{X: -bounds.Min.X, Y: -bounds.Min.Y},
	}
	d.DrawString(s)
	return img
}

func rasterizeStar(size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	c := float64(size) / 2
	outer := c * 0.95
	inner := outer * 0.382

	z := vector.NewRasterizer(size, size)
	for i := 0; i < 10; i++ {
		radius := outer
		if i%2 == 1 {
			radius = inner
		}
		angle := -math.Pi/2 + float64(i)*math.Pi/5
		x := float32(c + radius*math.Cos(angle))
		y := float32(c + radius*math.Sin(angle))
		if i == 0 {
			z.MoveTo(x, y)
		} else {
			z.LineTo(x, y)
		}
	}
	z.ClosePath()
	z.Draw(img, img.Bounds(), image.White, image.Point{})
	return img
}

func rasterizeCircle(size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	c := float64(size) / 2
	radius := c * 0.6

	const segments = 48
	z := vector.NewRasterizer(size, size)
	for i := 0; i < segments; i++ {
		angle := 2 * math.Pi * float64(i) / segments
		x := float32(c + radius*math.Cos(angle))
		y := float32(c + radius*math.Sin(angle))
		if i == 0 {
			z.MoveTo(x, y)
		} else {
			z.LineTo(x, y)
		}
	}
	z.ClosePath()
	z.Draw(img, img.Bounds(), image.White, image.Point{})
	return img
}
