package colour

import (
	"encoding/hex"
	"fmt"
	"math"
)

// ParseHex parses a "#RRGGBB" string into sRGB channels in [0, 1], dividing
// each byte by 255. Anything else, including the "#RGB" shorthand, is
// rejected with ErrMalformedHex.
func ParseHex(s string) (Vec3, error) {
	if len(s) != 7 || s[0] != '#' {
		return Vec3{}, fmt.Errorf("%q: want #RRGGBB: %w", s, ErrMalformedHex)
	}
	b, err := hex.DecodeString(s[1:])
	if err != nil {
		return Vec3{}, fmt.Errorf("%q: %w", s, ErrMalformedHex)
	}
	return Vec3{float64(b[0]) / 255, float64(b[1]) / 255, float64(b[2]) / 255}, nil
}

// FormatHex formats sRGB channels as a lower-case "#rrggbb" string.
// Channels are clamped to [0, 1] and rounded to the nearest byte.
func FormatHex(srgb Vec3) string {
	return fmt.Sprintf("#%02x%02x%02x", toByte(srgb[0]), toByte(srgb[1]), toByte(srgb[2]))
}

func toByte(x float64) uint8 {
	return uint8(math.Round(clamp01(x) * 255))
}

func clamp01(x float64) float64 {
	return math.Max(0, math.Min(1, x))
}
