package colour

import "math"

// Lerp returns a·(1−t) + b·t.
func Lerp(a, b, t float64) float64 {
	return a*(1-t) + b*t
}

// Interpolate blends two Oklch colours.
//
// t in [0, 1] is the position along the path and k in [-1, 1] controls its
// curvature. Lightness is interpolated linearly. Chroma is interpolated
// linearly and then scaled by the curve. At k = 1 the path follows the
// minor arc of the hue circle, at k = -1 the major arc; values in between
// pull it inward through lower chroma. The threshold 2·cos(p) − 1, where p
// is half the minor arc, separates the two constructions. The result
// equals lch1 at t = 0 and lch2 at t = 1.
//
// If either endpoint has zero chroma its hue is undefined, so the other
// endpoint's hue is used unchanged. In every other case the returned hue
// lies in [0, 2π).
//
// Values of t and k outside their ranges extrapolate and are not checked.
func Interpolate(lch1, lch2 Vec3, t, k float64) Vec3 {
	l1, c1, h1 := lch1[0], lch1[1], lch1[2]
	l2, c2, h2 := lch2[0], lch2[1], lch2[2]
	l := Lerp(l1, l2, t)
	c := Lerp(c1, c2, t)

	if c1 == 0 || c2 == 0 {
		if c2 == 0 {
			return Vec3{l, c, h1}
		}
		return Vec3{l, c, h2}
	}

	angle := math.Abs(h2 - h1)
	smallAngle := math.Min(angle, 2*math.Pi-angle)
	direction := 1.0
	if (angle <= math.Pi) != (h1 <= h2) {
		direction = -1
	}
	h := (h1 + h2) / 2
	if angle > math.Pi {
		h += math.Pi
	}

	p := smallAngle / 2
	cosp := math.Cos(p)
	d1 := Lerp(-p, p, t)
	d2 := Lerp(2*math.Pi-p, p, t)

	if k >= 2*cosp-1 {
		if cosp != 1 {
			a := Lerp(2*cosp-math.Cos(d1), math.Cos(d1), (k+1-2*cosp)/(2-2*cosp))
			b := math.Sin(d1)
			c *= math.Hypot(a, b)
			h += math.Atan2(b, a) * direction
		} else {
			h = h1
		}
	} else {
		if cosp != 0 {
			w := -(k + 1 - 2*cosp) / (2 * cosp)
			a := Lerp(2*cosp-math.Cos(d1), math.Cos(d2), w)
			b := Lerp(math.Sin(d1), math.Sin(d2), w)
			c *= math.Hypot(a, b)
			h += math.Atan2(b, a) * direction
		} else {
			c = Lerp(c1, -c2, t)
			if c < 0 {
				c = -c
				h = h2
			} else {
				h = h1
			}
		}
	}

	return Vec3{l, c, wrapHue(h)}
}

// wrapHue maps h into [0, 2π).
func wrapHue(h float64) float64 {
	h = math.Mod(h, 2*math.Pi)
	if h < 0 {
		h += 2 * math.Pi
	}
	if h >= 2*math.Pi {
		h = 0
	}
	return h
}

// Ramp samples Interpolate at every position in ts.
func Ramp(lch1, lch2 Vec3, ts []float64, k float64) []Vec3 {
	out := make([]Vec3, len(ts))
	for i, t := range ts {
		out[i] = Interpolate(lch1, lch2, t, k)
	}
	return out
}
