package colour

import (
	"fmt"
	"strings"
	"sync"

	"github.com/jmylchreest/halftone/internal/linalg"
)

// Chromaticity is a CIE 1931 xy coordinate.
type Chromaticity struct {
	X float64 `json:"x" toml:"x"`
	Y float64 `json:"y" toml:"y"`
}

// xyz returns the coordinate with z = 1 - x - y.
func (c Chromaticity) xyz() linalg.Vec {
	return linalg.Vec{c.X, c.Y, 1 - c.X - c.Y}
}

// D65 is the CIE standard illuminant D65 white point.
var D65 = Chromaticity{X: 0.3127, Y: 0.3290}

// Primaries describes an RGB space by the chromaticities of its primaries
// and its white point.
type Primaries struct {
	Name  string
	Red   Chromaticity
	Green Chromaticity
	Blue  Chromaticity
	White Chromaticity
}

// Built-in primaries. Both use the sRGB transfer function.
var (
	SRGBPrimaries = Primaries{
		Name:  "srgb",
		Red:   Chromaticity{X: 0.64, Y: 0.33},
		Green: Chromaticity{X: 0.30, Y: 0.60},
		Blue:  Chromaticity{X: 0.15, Y: 0.06},
		White: D65,
	}
	DisplayP3Primaries = Primaries{
		Name:  "p3",
		Red:   Chromaticity{X: 0.680, Y: 0.320},
		Green: Chromaticity{X: 0.265, Y: 0.690},
		Blue:  Chromaticity{X: 0.150, Y: 0.060},
		White: D65,
	}
)

// PrimariesByName returns a built-in set of primaries ("srgb" or "p3").
func PrimariesByName(name string) (Primaries, error) {
	switch strings.ToLower(name) {
	case "", "srgb":
		return SRGBPrimaries, nil
	case "p3", "display-p3", "displayp3":
		return DisplayP3Primaries, nil
	}
	return Primaries{}, fmt.Errorf("unknown primaries %q (available: srgb, p3)", name)
}

// DeriveRGBToXYZ builds the linear RGB to XYZ matrix for p.
//
// The columns of M are the xyz coordinates of the three primaries. The
// coefficients s solve M·s = W, where W is the white point scaled to Y = 1,
// and the result is M with column i scaled by s[i], so RGB (1, 1, 1) maps
// to the white point.
func DeriveRGBToXYZ(p Primaries) (linalg.Mat, error) {
	r, g, b := p.Red.xyz(), p.Green.xyz(), p.Blue.xyz()
	m := linalg.Mat{
		{r[0], g[0], b[0]},
		{r[1], g[1], b[1]},
		{r[2], g[2], b[2]},
	}

	if p.White.Y == 0 {
		return nil, fmt.Errorf("derive %s: white point has y = 0: %w", p.Name, linalg.ErrSingular)
	}
	w := p.White.xyz()
	for i := range w {
		w[i] /= p.White.Y
	}

	inv, err := linalg.Invert(m)
	if err != nil {
		return nil, fmt.Errorf("derive %s: %w", p.Name, err)
	}
	s, err := linalg.MulMatVec(inv, w)
	if err != nil {
		return nil, fmt.Errorf("derive %s: %w", p.Name, err)
	}
	scaled, err := linalg.ScaleCols(m, s)
	if err != nil {
		return nil, fmt.Errorf("derive %s: %w", p.Name, err)
	}
	return scaled, nil
}

// rgbMatrices holds a derived RGB to XYZ matrix and its inverse.
type rgbMatrices struct {
	toXYZ   linalg.Mat
	fromXYZ linalg.Mat
}

func deriveRGBMatrices(p Primaries) (rgbMatrices, error) {
	toXYZ, err := DeriveRGBToXYZ(p)
	if err != nil {
		return rgbMatrices{}, err
	}
	fromXYZ, err := linalg.Invert(toXYZ)
	if err != nil {
		return rgbMatrices{}, fmt.Errorf("invert %s matrix: %w", p.Name, err)
	}
	return rgbMatrices{toXYZ: toXYZ, fromXYZ: fromXYZ}, nil
}

// srgbMatrices is derived once per process and never mutated.
var srgbMatrices = sync.OnceValues(func() (rgbMatrices, error) {
	return deriveRGBMatrices(SRGBPrimaries)
})

// matricesFor returns the cached pair for sRGB, or derives a fresh pair.
func matricesFor(p Primaries) (rgbMatrices, error) {
	if p == SRGBPrimaries {
		return srgbMatrices()
	}
	return deriveRGBMatrices(p)
}
