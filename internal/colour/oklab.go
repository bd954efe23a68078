package colour

import (
	"fmt"
	"math"
	"sync"

	"github.com/jmylchreest/halftone/internal/linalg"
)

// Oklab constants for D65 XYZ input.
// https://bottosson.github.io/posts/oklab/
var (
	xyzToLMS = linalg.Mat{
		{0.8189330101, 0.3618667424, -0.1288597137},
		{0.0329845436, 0.9293118715, 0.0361456387},
		{0.0482003018, 0.2643662691, 0.6338517070},
	}
	lmsToLab = linalg.Mat{
		{0.2104542553, 0.7936177850, -0.0040720468},
		{1.9779984951, -2.4285922050, 0.4505937099},
		{0.0259040371, 0.7827717662, -0.8086757660},
	}
)

type oklabInverse struct {
	labToLMS linalg.Mat
	lmsToXYZ linalg.Mat
}

// oklabInverses inverts the two constant matrices once.
var oklabInverses = sync.OnceValues(func() (oklabInverse, error) {
	labToLMS, err := linalg.Invert(lmsToLab)
	if err != nil {
		return oklabInverse{}, fmt.Errorf("invert lms to lab: %w", err)
	}
	lmsToXYZ, err := linalg.Invert(xyzToLMS)
	if err != nil {
		return oklabInverse{}, fmt.Errorf("invert xyz to lms: %w", err)
	}
	return oklabInverse{labToLMS: labToLMS, lmsToXYZ: lmsToXYZ}, nil
})

// mulVec3 multiplies a 3×3 matrix by v.
func mulVec3(m linalg.Mat, v Vec3) (Vec3, error) {
	out, err := linalg.MulMatVec(m, v[:])
	if err != nil {
		return Vec3{}, err
	}
	return Vec3{out[0], out[1], out[2]}, nil
}

// XYZToOklab converts D65 XYZ to Oklab.
func XYZToOklab(xyz Vec3) (Vec3, error) {
	lms, err := mulVec3(xyzToLMS, xyz)
	if err != nil {
		return Vec3{}, fmt.Errorf("xyz to oklab: %w", err)
	}
	for i := range lms {
		lms[i] = math.Cbrt(lms[i])
	}
	lab, err := mulVec3(lmsToLab, lms)
	if err != nil {
		return Vec3{}, fmt.Errorf("xyz to oklab: %w", err)
	}
	return lab, nil
}

// OklabToXYZ converts Oklab to D65 XYZ.
func OklabToXYZ(lab Vec3) (Vec3, error) {
	inv, err := oklabInverses()
	if err != nil {
		return Vec3{}, err
	}
	lms, err := mulVec3(inv.labToLMS, lab)
	if err != nil {
		return Vec3{}, fmt.Errorf("oklab to xyz: %w", err)
	}
	for i := range lms {
		lms[i] = lms[i] * lms[i] * lms[i]
	}
	xyz, err := mulVec3(inv.lmsToXYZ, lms)
	if err != nil {
		return Vec3{}, fmt.Errorf("oklab to xyz: %w", err)
	}
	return xyz, nil
}

// OklabToOklch converts the (a, b) pair to chroma and hue. Hue is
// atan2(b, a) in (-π, π]; a neutral colour gets hue 0.
func OklabToOklch(lab Vec3) Vec3 {
	return Vec3{lab[0], math.Hypot(lab[1], lab[2]), math.Atan2(lab[2], lab[1])}
}

// OklchToOklab converts chroma and hue back to the (a, b) pair.
func OklchToOklab(lch Vec3) Vec3 {
	return Vec3{lch[0], lch[1] * math.Cos(lch[2]), lch[1] * math.Sin(lch[2])}
}
