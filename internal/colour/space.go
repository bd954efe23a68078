// Package colour converts colours between hex strings, sRGB, linear RGB,
// CIE XYZ, Oklab and Oklch, measures how far a colour lies outside the RGB
// gamut, and blends Oklch colours along a curvature-controlled hue path.
package colour

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Space names a colour space.
type Space string

// Supported colour spaces.
const (
	// StringRGB is a "#RRGGBB" hex string of gamma-encoded sRGB.
	StringRGB Space = "StringRGB"
	// SRGB is gamma-encoded RGB with channels in [0, 1].
	SRGB Space = "sRGB"
	// LinearRGB is RGB with the sRGB transfer function removed.
	LinearRGB Space = "LinearRGB"
	// XYZ is CIE 1931 XYZ relative to the D65 white (Y = 1 for white).
	XYZ Space = "XYZ"
	// Oklab is the perceptual L, a, b space.
	Oklab Space = "Oklab"
	// Oklch is Oklab in polar form: L, chroma and hue in radians.
	Oklch Space = "Oklch"
)

// Spaces lists every supported space in registration order.
func Spaces() []Space {
	return []Space{StringRGB, SRGB, LinearRGB, XYZ, Oklab, Oklch}
}

// keywords maps a space to the function-style name used by Parse and String.
var keywords = map[Space]string{
	StringRGB: "hex",
	SRGB:      "srgb",
	LinearRGB: "linear",
	XYZ:       "xyz",
	Oklab:     "oklab",
	Oklch:     "oklch",
}

var aliases = map[string]Space{
	"hex":         StringRGB,
	"stringrgb":   StringRGB,
	"srgb":        SRGB,
	"rgb":         SRGB,
	"linear":      LinearRGB,
	"linearrgb":   LinearRGB,
	"linear-rgb":  LinearRGB,
	"srgb-linear": LinearRGB,
	"xyz":         XYZ,
	"xyz-d65":     XYZ,
	"oklab":       Oklab,
	"oklch":       Oklch,
}

// ParseSpace resolves a space name or alias, case-insensitively.
func ParseSpace(name string) (Space, error) {
	if s, ok := aliases[strings.ToLower(strings.TrimSpace(name))]; ok {
		return s, nil
	}
	return "", fmt.Errorf("%q: %w", name, ErrUnknownSpace)
}

// Valid reports whether s is a supported space.
func (s Space) Valid() bool {
	_, ok := keywords[s]
	return ok
}

// Keyword returns the lower-case name used in colour expressions.
func (s Space) Keyword() string { return keywords[s] }

// Vec3 is an untagged triple. Which space it belongs to is up to the caller;
// use Value when the space should travel with the numbers.
type Vec3 [3]float64

// Value is a colour tagged with the space its numbers belong to.
// Hex is set only for StringRGB values, Vec for every other space.
type Value struct {
	Space Space  `json:"space" yaml:"space"`
	Vec   Vec3   `json:"vec" yaml:"vec,flow"`
	Hex   string `json:"hex,omitempty" yaml:"hex,omitempty"`
}

// encodedValue is the JSON and YAML form of a Value: hex values carry no
// vector and the others carry no hex.
type encodedValue struct {
	Space Space  `json:"space" yaml:"space"`
	Vec   *Vec3  `json:"vec,omitempty" yaml:"vec,omitempty,flow"`
	Hex   string `json:"hex,omitempty" yaml:"hex,omitempty"`
}

func (v Value) encoded() encodedValue {
	if v.Space == StringRGB {
		return encodedValue{Space: v.Space, Hex: v.Hex}
	}
	vec := v.Vec
	return encodedValue{Space: v.Space, Vec: &vec}
}

// MarshalJSON implements json.Marshaler.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.encoded())
}

// MarshalYAML implements yaml.Marshaler.
func (v Value) MarshalYAML() (any, error) {
	return v.encoded(), nil
}

// NewValue tags v with space s.
func NewValue(s Space, v Vec3) Value {
	return Value{Space: s, Vec: v}
}

// HexValue wraps a hex string as a StringRGB value. The string is validated
// when the value is converted.
func HexValue(hex string) Value {
	return Value{Space: StringRGB, Hex: hex}
}

// String formats the value as a colour expression that Parse accepts,
// e.g. "#1a2b3c" or "oklch(0.5 0.1 2.5)".
func (v Value) String() string {
	if v.Space == StringRGB {
		return v.Hex
	}
	return fmt.Sprintf("%s(%s %s %s)", v.Space.Keyword(),
		formatFloat(v.Vec[0]), formatFloat(v.Vec[1]), formatFloat(v.Vec[2]))
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
