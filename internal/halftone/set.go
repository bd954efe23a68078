package halftone

import (
	"fmt"

	"github.com/jmylchreest/halftone/internal/colour"
)

// Set is a named, ordered list of Oklch tones. Only the name can change
// after creation.
type Set struct {
	name  string
	tones []colour.Vec3
}

// NewSet copies tones into a new set.
func NewSet(name string, tones []colour.Vec3) *Set {
	return &Set{name: name, tones: append([]colour.Vec3(nil), tones...)}
}

// Name returns the display name.
func (s *Set) Name() string { return s.name }

// Rename sets the display name.
func (s *Set) Rename(name string) { s.name = name }

// Len returns the number of tones.
func (s *Set) Len() int { return len(s.tones) }

// Tones returns a copy of the tones.
func (s *Set) Tones() []colour.Vec3 {
	return append([]colour.Vec3(nil), s.tones...)
}

// At returns the tone at index i.
func (s *Set) At(i int) (colour.Vec3, error) {
	if i < 0 || i >= len(s.tones) {
		return colour.Vec3{}, fmt.Errorf("index %d out of range [0, %d)", i, len(s.tones))
	}
	return s.tones[i], nil
}

// All iterates over the tones in order.
func (s *Set) All() func(func(int, colour.Vec3) bool) {
	return func(yield func(int, colour.Vec3) bool) {
		for i, t := range s.tones {
			if !yield(i, t) {
				return
			}
		}
	}
}

// Generate samples the ramp described by s: one tone per interval,
// interpolated from Dark (t = 0) to Light (t = 1).
func Generate(s Settings) (*Set, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	ts := s.Intervals()
	return NewSet("", colour.Ramp(s.Dark, s.Light, ts, s.K)), nil
}

// FromHex builds a set from hex tones, converting each to Oklch with conv.
func FromHex(name string, hexes []string, conv *colour.Converter) (*Set, error) {
	tones := make([]colour.Vec3, len(hexes))
	for i, h := range hexes {
		v, err := conv.Convert(colour.HexValue(h), colour.Oklch)
		if err != nil {
			return nil, fmt.Errorf("tone %d: %w", i, err)
		}
		tones[i] = v.Vec
	}
	return NewSet(name, tones), nil
}
