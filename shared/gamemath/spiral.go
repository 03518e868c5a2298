package gamemath

import "math"

// SpiralPoint returns the point of an Archimedean spiral after the given angle,
// relative to its center.
func SpiralPoint(speed, angle float64) (x, y float64) {
	radius := speed * angle
	return radius * math.Cos(angle), radius * math.Sin(angle)
}

// Rotate rotates (x, y) around the origin by angle radians.
func Rotate(x, y, angle float64) (float64, float64) {
	sin, cos := math.Sincos(angle)
	return x*cos - y*sin, x*sin + y*cos
}

// SpiralPosition is the world position of a star on its spiral, rotated around the
// spiral origin by skew.
func SpiralPosition(originX, originY, speed, angle, skew float64) (x, y float64) {
	sx, sy := SpiralPoint(speed, angle)
	rx, ry := Rotate(sx, sy, skew)
	return rx + originX, ry + originY
}

// ClusterSkews spreads n stars evenly around a full turn. The first star is offset by one
// full increment and the last lands on 2π.
func ClusterSkews(n int) []float64 {
	if n <= 0 {
		return nil
	}
	skews := make([]float64, n)
	step := 2 * math.Pi / float64(n)
	skew := 0.0
	for i := range skews {
		skew += step
		skews[i] = skew
	}
	return skews
}

// Clamp01 clamps v to [0, 1].
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
