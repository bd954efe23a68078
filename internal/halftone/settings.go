package halftone

import (
	"errors"
	"fmt"
	"math"

	"github.com/jmylchreest/halftone/internal/colour"
)

// ErrInvalidSettings is returned when ramp settings are out of range.
var ErrInvalidSettings = errors.New("halftone: invalid settings")

// Default ramp settings.
const (
	DefaultK        = 1.0
	DefaultCount    = 5
	DefaultCos      = true
	DefaultExponent = 1.0
)

// MaxCount bounds the number of half tones in one set.
const MaxCount = 256

// Settings controls how a ramp is sampled. Light and Dark are Oklch.
type Settings struct {
	Light colour.Vec3 `json:"light" yaml:"light,flow" toml:"light"`
	Dark  colour.Vec3 `json:"dark" yaml:"dark,flow" toml:"dark"`
	// K is the curvature passed to colour.Interpolate, in [-1, 1].
	K float64 `json:"k" yaml:"k" toml:"k"`
	// Count is the number of half tones between Dark and Light.
	Count int `json:"count" yaml:"count" toml:"count"`
	// Cos selects cosine spacing of the samples.
	Cos bool `json:"cos" yaml:"cos" toml:"cos"`
	// Exponent reshapes every sample position t as t^Exponent.
	Exponent float64 `json:"exponent" yaml:"exponent" toml:"exponent"`
}

// DefaultSettings returns a neutral ramp from L 0.25 to L 0.5.
func DefaultSettings() Settings {
	return Settings{
		Light:    colour.Vec3{0.5, 0, 0},
		Dark:     colour.Vec3{0.25, 0, 0},
		K:        DefaultK,
		Count:    DefaultCount,
		Cos:      DefaultCos,
		Exponent: DefaultExponent,
	}
}

// Validate checks every field is in range.
func (s Settings) Validate() error {
	switch {
	case s.Count < 0 || s.Count > MaxCount:
		return fmt.Errorf("count %d outside [0, %d]: %w", s.Count, MaxCount, ErrInvalidSettings)
	case math.IsNaN(s.K) || s.K < -1 || s.K > 1:
		return fmt.Errorf("k %v outside [-1, 1]: %w", s.K, ErrInvalidSettings)
	case !(s.Exponent > 0) || math.IsInf(s.Exponent, 0):
		return fmt.Errorf("exponent %v must be positive: %w", s.Exponent, ErrInvalidSettings)
	}
	for _, tone := range []struct {
		name string
		v    colour.Vec3
	}{{"light", s.Light}, {"dark", s.Dark}} {
		name, v := tone.name, tone.v
		for _, x := range v {
			if math.IsNaN(x) || math.IsInf(x, 0) {
				return fmt.Errorf("%s %v is not finite: %w", name, v, ErrInvalidSettings)
			}
		}
		if v[1] < 0 {
			return fmt.Errorf("%s chroma %v is negative: %w", name, v[1], ErrInvalidSettings)
		}
	}
	return nil
}

// Intervals returns the blend positions for s, shaped by Exponent.
func (s Settings) Intervals() []float64 {
	return shape(SampleIntervals(s.Count, s.Cos), s.Exponent)
}

// HalfLight returns light with its lightness halved, the default shadow
// tone for a lit colour.
func HalfLight(light colour.Vec3) colour.Vec3 {
	return colour.Vec3{light[0] / 2, light[1], light[2]}
}
