package gamemath

import (
	"math"
	"math/rand/v2"
	"testing"
)

const epsilon = 1e-9

func newRand() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func TestRandomWithinRangeEqualBounds(t *testing.T) {
	r := newRand()
	for _, n := range []int{-3, 0, 1, 150} {
		if got := RandomWithinRange(r, n, n); got != n {
			t.Errorf("RandomWithinRange(%d, %d) = %d", n, n, got)
		}
	}
}

func TestRandomWithinRangeStaysInBounds(t *testing.T) {
	r := newRand()
	seen := map[int]bool{}
	for i := 0; i < 2000; i++ {
		v := RandomWithinRange(r, 3, 6)
		if v < 3 || v > 6 {
			t.Fatalf("RandomWithinRange(3, 6) = %d", v)
		}
		seen[v] = true
	}
	if len(seen) != 4 {
		t.Errorf("expected all of 3..6 to be drawn, got %v", seen)
	}

	for i := 0; i < 200; i++ {
		if v := RandomWithinRange(r, 10, 2); v < 2 || v > 10 {
			t.Fatalf("reversed bounds gave %d", v)
		}
	}
}

func TestRandomFloatStepsNeverExceedsMax(t *testing.T) {
	r := newRand()
	min, max := 2*math.Pi, 18*math.Pi
	for i := 0; i < 5000; i++ {
		v := RandomFloatSteps(r, min, max)
		if v < min || v > max {
			t.Fatalf("RandomFloatSteps = %v outside [%v, %v]", v, min, max)
		}
		whole := v - min
		if math.Abs(whole-math.Round(whole)) > epsilon {
			t.Fatalf("RandomFloatSteps = %v is not min plus whole units", v)
		}
	}
	if got := RandomFloatSteps(r, 4.5, 4.5); got != 4.5 {
		t.Errorf("equal bounds = %v", got)
	}
	if got := RandomFloatSteps(r, 1, 1.5); got != 1 {
		t.Errorf("sub-unit range = %v, want 1", got)
	}
}

func TestRandomCoordinate(t *testing.T) {
	r := newRand()
	if got := RandomCoordinate(r, 0); got != 0 {
		t.Errorf("empty extent = %v", got)
	}
	for i := 0; i < 500; i++ {
		v := RandomCoordinate(r, 640)
		if v < 0 || v >= 640 || v != math.Floor(v) {
			t.Fatalf("RandomCoordinate(640) = %v", v)
		}
	}
}

func TestSpiralPositionWithoutSkew(t *testing.T) {
	x, y := SpiralPosition(100, 50, 10, math.Pi, 0)
	// radius 10π pointing left
	if math.Abs(x-(100-10*math.Pi)) > epsilon || math.Abs(y-50) > epsilon {
		t.Errorf("SpiralPosition = (%v, %v)", x, y)
	}
}

func TestSpiralPositionSkewRotatesAroundOrigin(t *testing.T) {
	ox, oy := 20.0, -5.0
	x0, y0 := SpiralPosition(ox, oy, 7, 1.3, 0)
	x1, y1 := SpiralPosition(ox, oy, 7, 1.3, math.Pi/2)

	d0 := math.Hypot(x0-ox, y0-oy)
	d1 := math.Hypot(x1-ox, y1-oy)
	if math.Abs(d0-d1) > epsilon {
		t.Errorf("skew changed the radius: %v vs %v", d0, d1)
	}
	// a quarter turn maps (dx, dy) to (-dy, dx)
	if math.Abs((x1-ox)+(y0-oy)) > epsilon || math.Abs((y1-oy)-(x0-ox)) > epsilon {
		t.Errorf("quarter turn: (%v, %v) -> (%v, %v)", x0-ox, y0-oy, x1-ox, y1-oy)
	}
}

func TestClusterSkews(t *testing.T) {
	got := ClusterSkews(4)
	want := []float64{math.Pi / 2, math.Pi, 3 * math.Pi / 2, 2 * math.Pi}
	if len(got) != len(want) {
		t.Fatalf("len = %d", len(got))
	}
	for i := range want {
		if math.Abs(got[i]-want[i]) > epsilon {
			t.Errorf("skew[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	for n := 1; n <= 9; n++ {
		skews := ClusterSkews(n)
		step := 2 * math.Pi / float64(n)
		for i := 1; i < len(skews); i++ {
			if math.Abs(skews[i]-skews[i-1]-step) > epsilon {
				t.Errorf("n=%d: difference %v at %d, want %v", n, skews[i]-skews[i-1], i, step)
			}
		}
	}

	if ClusterSkews(0) != nil {
		t.Error("ClusterSkews(0) should be nil")
	}
}

func TestClamp01(t *testing.T) {
	tests := []struct{ in, want float64 }{{-0.3, 0}, {0, 0}, {0.4, 0.4}, {1.2, 1}}
	for _, tt := range tests {
		if got := Clamp01(tt.in); got != tt.want {
			t.Errorf("Clamp01(%v) = %v", tt.in, got)
		}
	}
}
