package colour

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Parse reads a colour expression. Accepted forms:
//
//	#1a2b3c
//	srgb(0.1 0.2 0.3)
//	oklch(0.5, 0.1, 140deg)
//
// The function name is any space name accepted by ParseSpace. Components
// may be separated by spaces or commas. For Oklch the hue may carry a
// "deg" or "rad" suffix; without one it is read as radians.
func Parse(s string) (Value, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		if _, err := ParseHex(s); err != nil {
			return Value{}, err
		}
		return HexValue(strings.ToLower(s)), nil
	}

	open := strings.IndexByte(s, '(')
	if open <= 0 || !strings.HasSuffix(s, ")") {
		return Value{}, fmt.Errorf("%q: want #rrggbb or space(a b c): %w", s, ErrMalformedInput)
	}
	space, err := ParseSpace(s[:open])
	if err != nil {
		return Value{}, err
	}
	if space == StringRGB {
		return Parse(strings.TrimSpace(s[open+1 : len(s)-1]))
	}

	fields := strings.FieldsFunc(s[open+1:len(s)-1], func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(fields) != 3 {
		return Value{}, fmt.Errorf("%q: want 3 components, got %d: %w", s, len(fields), ErrMalformedInput)
	}

	var v Vec3
	for i, f := range fields {
		if space == Oklch && i == 2 {
			v[i], err = parseHue(f)
		} else {
			v[i], err = strconv.ParseFloat(f, 64)
		}
		if err != nil {
			return Value{}, fmt.Errorf("%q: component %d: %w", s, i+1, ErrMalformedInput)
		}
	}
	return NewValue(space, v), nil
}

func parseHue(s string) (float64, error) {
	scale := 1.0
	switch {
	case strings.HasSuffix(s, "deg"):
		s, scale = strings.TrimSuffix(s, "deg"), math.Pi/180
	case strings.HasSuffix(s, "rad"):
		s = strings.TrimSuffix(s, "rad")
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	return f * scale, nil
}
