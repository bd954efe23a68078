package colour

// Luminance returns the WCAG 2.0 relative luminance of a gamma-encoded sRGB
// colour: the Y component of its XYZ coordinates, between 0 and 1.
// https://www.w3.org/TR/WCAG20/#relativeluminancedef.
func Luminance(srgb Vec3) float64 {
	xyz, err := ConvertVec(srgb, SRGB, XYZ)
	if err != nil {
		return 0
	}
	return xyz[1]
}

// ContrastRatio returns the WCAG 2.0 contrast ratio between two sRGB
// colours, from 1 (identical) to 21 (black on white).
// https://www.w3.org/TR/WCAG20/#contrast-ratiodef.
func ContrastRatio(c1, c2 Vec3) float64 {
	l1 := Luminance(c1)
	l2 := Luminance(c2)

	// Ensure l1 is the lighter colour.
	if l1 < l2 {
		l1, l2 = l2, l1
	}

	return (l1 + 0.05) / (l2 + 0.05)
}

// TextColour returns black or white, whichever contrasts more with bg.
func TextColour(bg Vec3) Vec3 {
	black, white := Vec3{0, 0, 0}, Vec3{1, 1, 1}
	if ContrastRatio(bg, black) >= ContrastRatio(bg, white) {
		return black
	}
	return white
}
