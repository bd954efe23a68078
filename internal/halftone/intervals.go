// Package halftone samples an Oklch ramp between a dark and a light tone
// to build halftone sets.
package halftone

import "math"

// SampleIntervals returns n+2 blend positions in [0, 1]: i/(n+1) for i in
// 0..n+1. With useCos each x is remapped to cos(x·π/2), which runs from 1
// down to 0 and spaces the samples more tightly near the light end.
// Without it the evenly spaced list is reversed so both variants run from
// 1 to 0. A negative n yields nil.
func SampleIntervals(n int, useCos bool) []float64 {
	if n < 0 {
		return nil
	}
	out := make([]float64, n+2)
	for i := range out {
		x := float64(i) / float64(n+1)
		if useCos {
			out[i] = math.Cos(x * math.Pi / 2)
		} else {
			out[len(out)-1-i] = x
		}
	}
	return out
}

// shape raises every interval to e. An exponent of 1 is a no-op.
func shape(ts []float64, e float64) []float64 {
	if e == 1 {
		return ts
	}
	for i, t := range ts {
		ts[i] = math.Pow(t, e)
	}
	return ts
}
