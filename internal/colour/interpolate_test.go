package colour

import (
	"fmt"
	"math"
	"testing"
)

// hueDistance returns the angular distance between two hues in radians.
func hueDistance(h1, h2 float64) float64 {
	d := math.Mod(math.Abs(h1-h2), 2*math.Pi)
	return math.Min(d, 2*math.Pi-d)
}

var interpolationPairs = []struct {
	name       string
	lch1, lch2 Vec3
}{
	{name: "narrow increasing", lch1: Vec3{0.3, 0.1, 0.5}, lch2: Vec3{0.8, 0.05, 1.0}},
	{name: "narrow decreasing", lch1: Vec3{0.8, 0.05, 1.0}, lch2: Vec3{0.3, 0.1, 0.5}},
	{name: "across zero", lch1: Vec3{0.25, 0.08, 0.1}, lch2: Vec3{0.5, 0.12, 6.0}},
	{name: "across zero reversed", lch1: Vec3{0.5, 0.12, 6.0}, lch2: Vec3{0.25, 0.08, 0.1}},
	{name: "wide", lch1: Vec3{0.4, 0.1, 0.2}, lch2: Vec3{0.7, 0.1, 2.9}},
	{name: "negative hue", lch1: Vec3{0.6, 0.15, -2.5}, lch2: Vec3{0.4, 0.1, 1.2}},
	{name: "same hue", lch1: Vec3{0.2, 0.05, 2.0}, lch2: Vec3{0.9, 0.1, 2.0}},
	{name: "opposite hues", lch1: Vec3{0.4, 0.1, 0}, lch2: Vec3{0.6, 0.1, math.Pi}},
}

var curvatures = []float64{-1, -0.5, 0, 0.5, 1}

func TestLerp(t *testing.T) {
	tests := []struct {
		a, b, t, want float64
	}{
		{a: 0, b: 10, t: 0, want: 0},
		{a: 0, b: 10, t: 1, want: 10},
		{a: 0, b: 10, t: 0.25, want: 2.5},
		{a: -1, b: 1, t: 0.5, want: 0},
	}
	for _, tt := range tests {
		if got := Lerp(tt.a, tt.b, tt.t); got != tt.want {
			t.Errorf("Lerp(%v, %v, %v) = %v, want %v", tt.a, tt.b, tt.t, got, tt.want)
		}
	}
}

func TestInterpolateEndpoints(t *testing.T) {
	for _, pair := range interpolationPairs {
		for _, k := range curvatures {
			t.Run(fmt.Sprintf("%s k=%v", pair.name, k), func(t *testing.T) {
				for _, end := range []struct {
					t    float64
					want Vec3
				}{{0, pair.lch1}, {1, pair.lch2}} {
					got := Interpolate(pair.lch1, pair.lch2, end.t, k)
					if !near(got[0], end.want[0], 1e-9) || !near(got[1], end.want[1], 1e-9) {
						t.Errorf("Interpolate(t=%v, k=%v) = %v, want %v", end.t, k, got, end.want)
					}
					if d := hueDistance(got[2], end.want[2]); d > 1e-9 {
						t.Errorf("Interpolate(t=%v, k=%v) hue = %v, want %v", end.t, k, got[2], end.want[2])
					}
				}
			})
		}
	}
}

func TestInterpolateLightnessMonotonic(t *testing.T) {
	for _, pair := range interpolationPairs {
		for _, k := range curvatures {
			prev := Interpolate(pair.lch1, pair.lch2, 0, k)[0]
			rising := pair.lch2[0] >= pair.lch1[0]
			for i := 1; i <= 50; i++ {
				l := Interpolate(pair.lch1, pair.lch2, float64(i)/50, k)[0]
				if rising && l < prev || !rising && l > prev {
					t.Errorf("%s k=%v: lightness not monotonic at step %d: %v after %v", pair.name, k, i, l, prev)
				}
				prev = l
			}
		}
	}
}

func TestInterpolateChromaFollowsArc(t *testing.T) {
	// At k = 1 the path runs along the hue circle, so chroma is a plain lerp.
	for _, pair := range interpolationPairs {
		for i := 0; i <= 10; i++ {
			tt := float64(i) / 10
			got := Interpolate(pair.lch1, pair.lch2, tt, 1)[1]
			want := Lerp(pair.lch1[1], pair.lch2[1], tt)
			if !near(got, want, 1e-12) {
				t.Errorf("%s t=%v: chroma = %v, want %v", pair.name, tt, got, want)
			}
		}
	}
}

func TestInterpolateMajorArc(t *testing.T) {
	lch1, lch2 := Vec3{0.5, 0.1, 0.2}, Vec3{0.5, 0.1, 2.2}
	got := Interpolate(lch1, lch2, 0.5, -1)
	if !near(got[1], 0.1, 1e-12) {
		t.Errorf("midpoint chroma = %v, want 0.1", got[1])
	}
	if want := 1.2 + math.Pi; !near(got[2], want, 1e-9) {
		t.Errorf("midpoint hue = %v, want %v", got[2], want)
	}
}

func TestInterpolatePinchesChroma(t *testing.T) {
	lch1, lch2 := Vec3{0.5, 0.1, 0.2}, Vec3{0.5, 0.1, 2.2}
	arc := Interpolate(lch1, lch2, 0.5, 1)[1]
	inner := Interpolate(lch1, lch2, 0.5, 0.5)[1]
	if inner >= arc {
		t.Errorf("midpoint chroma at k=0.5 = %v, want below %v", inner, arc)
	}
	if !near(arc, 0.1, 1e-12) {
		t.Errorf("midpoint chroma at k=1 = %v, want 0.1", arc)
	}
}

func TestInterpolateMinorArc(t *testing.T) {
	lch1, lch2 := Vec3{0.5, 0.1, 0.1}, Vec3{0.5, 0.1, 6.0}
	got := Interpolate(lch1, lch2, 0.5, 1)
	want := wrapHue((0.1+6.0)/2 + math.Pi)
	if !near(got[2], want, 1e-12) {
		t.Errorf("midpoint hue = %v, want %v", got[2], want)
	}
	if hueDistance(got[2], 0) > 0.1 {
		t.Errorf("midpoint hue %v is not on the arc through zero", got[2])
	}
}

func TestInterpolateOppositeHues(t *testing.T) {
	lch1, lch2 := Vec3{0.5, 0.1, 0}, Vec3{0.5, 0.1, math.Pi}

	tests := []struct {
		k        float64
		wantC    float64
		wantH    float64
		checkHue bool
	}{
		{k: 1, wantC: 0.1, wantH: math.Pi / 2, checkHue: true},
		{k: 0.5, wantC: 0.05, wantH: math.Pi / 2, checkHue: true},
		{k: 0, wantC: 0},
		{k: -1, wantC: 0.1, wantH: 3 * math.Pi / 2, checkHue: true},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("k=%v", tt.k), func(t *testing.T) {
			got := Interpolate(lch1, lch2, 0.5, tt.k)
			if !near(got[0], 0.5, 1e-12) {
				t.Errorf("midpoint lightness = %v, want 0.5", got[0])
			}
			if !near(got[1], tt.wantC, 1e-9) {
				t.Errorf("midpoint chroma = %v, want %v", got[1], tt.wantC)
			}
			if tt.checkHue && hueDistance(got[2], tt.wantH) > 1e-9 {
				t.Errorf("midpoint hue = %v, want %v", got[2], tt.wantH)
			}
			for _, x := range got {
				if math.IsNaN(x) || math.IsInf(x, 0) {
					t.Fatalf("Interpolate() = %v, want finite", got)
				}
			}
		})
	}
}

func TestInterpolateHueRange(t *testing.T) {
	for _, pair := range interpolationPairs {
		for _, k := range curvatures {
			for i := 0; i <= 20; i++ {
				h := Interpolate(pair.lch1, pair.lch2, float64(i)/20, k)[2]
				if h < 0 || h >= 2*math.Pi {
					t.Errorf("%s k=%v t=%v: hue %v outside [0, 2π)", pair.name, k, float64(i)/20, h)
				}
			}
		}
	}
}

func TestInterpolateZeroChroma(t *testing.T) {
	tests := []struct {
		name       string
		lch1, lch2 Vec3
		want       Vec3
	}{
		{
			name: "identical neutral",
			lch1: Vec3{0.5, 0, 0},
			lch2: Vec3{0.5, 0, 0},
			want: Vec3{0.5, 0, 0},
		},
		{
			name: "neutral start takes end hue",
			lch1: Vec3{0.2, 0, 1.0},
			lch2: Vec3{0.6, 0.1, 2.0},
			want: Vec3{0.4, 0.05, 2.0},
		},
		{
			name: "neutral end takes start hue",
			lch1: Vec3{0.2, 0.1, 1.0},
			lch2: Vec3{0.6, 0, 2.0},
			want: Vec3{0.4, 0.05, 1.0},
		},
		{
			name: "hue passed through unwrapped",
			lch1: Vec3{0.2, 0.1, -1.0},
			lch2: Vec3{0.6, 0, 2.0},
			want: Vec3{0.4, 0.05, -1.0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Interpolate(tt.lch1, tt.lch2, 0.5, 0)
			if !nearVec(got, tt.want, 1e-15) {
				t.Errorf("Interpolate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRamp(t *testing.T) {
	lch1, lch2 := Vec3{0.25, 0.1, 1.0}, Vec3{0.5, 0.1, 1.5}
	ts := []float64{0, 0.5, 1}
	got := Ramp(lch1, lch2, ts, 0)
	if len(got) != len(ts) {
		t.Fatalf("Ramp() len = %d, want %d", len(got), len(ts))
	}
	for i, tt := range ts {
		if want := Interpolate(lch1, lch2, tt, 0); got[i] != want {
			t.Errorf("Ramp()[%d] = %v, want %v", i, got[i], want)
		}
	}
}

func TestWrapHue(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{in: 0, want: 0},
		{in: 1, want: 1},
		{in: -math.Pi / 2, want: 3 * math.Pi / 2},
		{in: 2 * math.Pi, want: 0},
		{in: 5 * math.Pi, want: math.Pi},
	}
	for _, tt := range tests {
		if got := wrapHue(tt.in); !near(got, tt.want, 1e-12) {
			t.Errorf("wrapHue(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
