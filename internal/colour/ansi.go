package colour

import (
	"strings"

	"github.com/muesli/termenv"
)

const defaultWidth = 8

// Swatch renders a solid block of an sRGB colour for the given terminal
// profile. A non-empty label is centred on the block in black or white,
// whichever contrasts more, and truncated to width. With the Ascii profile
// only the padded label is returned.
func Swatch(srgb Vec3, label string, width int, profile termenv.Profile) string {
	if width <= 0 {
		width = defaultWidth
	}

	text := label
	if len(text) > width {
		text = text[:width]
	} else if len(text) < width {
		padding := (width - len(text)) / 2
		text = strings.Repeat(" ", padding) + text + strings.Repeat(" ", width-len(text)-padding)
	}

	if profile == termenv.Ascii {
		return text
	}
	bg := profile.Color(FormatHex(srgb))
	fg := profile.Color(FormatHex(TextColour(srgb)))
	return profile.String(text).Background(bg).Foreground(fg).String()
}
