package image

import (
	"cmp"
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"
	"slices"

	"github.com/jmylchreest/halftone/internal/colour"
)

// MaxSamples bounds how many pixels SeedTones inspects.
const MaxSamples = 1 << 16

var (
	// ErrNoPixels is returned for an empty or fully transparent image.
	ErrNoPixels = errors.New("image has no opaque pixels")

	// ErrInvalidFraction is returned when fraction is outside (0, 0.5].
	ErrInvalidFraction = errors.New("fraction must be in (0, 0.5]")
)

// SeedTones picks a light and a dark Oklch tone from img.
//
// Up to MaxSamples pixels are sampled on a regular grid and converted to
// Oklab with conv. The lightest and the darkest fraction of the samples
// are each averaged in Oklab, and both averages are returned in Oklch.
// Fully transparent pixels are skipped.
func SeedTones(img image.Image, conv *colour.Converter, fraction float64) (light, dark colour.Vec3, err error) {
	if !(fraction > 0 && fraction <= 0.5) {
		return light, dark, fmt.Errorf("%v: %w", fraction, ErrInvalidFraction)
	}

	b := img.Bounds()
	step := 1
	if total := b.Dx() * b.Dy(); total > MaxSamples {
		step = int(math.Ceil(math.Sqrt(float64(total) / MaxSamples)))
	}

	var labs []colour.Vec3
	for y := b.Min.Y; y < b.Max.Y; y += step {
		for x := b.Min.X; x < b.Max.X; x += step {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			if c.A == 0 {
				continue
			}
			srgb := colour.Vec3{float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255}
			lab, err := conv.ConvertVec(srgb, colour.SRGB, colour.Oklab)
			if err != nil {
				return light, dark, err
			}
			labs = append(labs, lab)
		}
	}
	if len(labs) == 0 {
		return light, dark, ErrNoPixels
	}

	slices.SortStableFunc(labs, func(a, b colour.Vec3) int {
		return cmp.Compare(a[0], b[0])
	})

	n := max(1, int(math.Round(fraction*float64(len(labs)))))
	dark = colour.OklabToOklch(mean(labs[:n]))
	light = colour.OklabToOklch(mean(labs[len(labs)-n:]))
	return light, dark, nil
}

func mean(vs []colour.Vec3) colour.Vec3 {
	var sum colour.Vec3
	for _, v := range vs {
		for i := range sum {
			sum[i] += v[i]
		}
	}
	for i := range sum {
		sum[i] /= float64(len(vs))
	}
	return sum
}
