package colour

import "math"

// sRGB transfer function constants.
// https://bottosson.github.io/posts/colorwrong/
const (
	encodeThreshold = 0.0031308
	decodeThreshold = 0.04045
	linearSlope     = 12.92
	gammaOffset     = 0.055
	gamma           = 2.4
)

// EncodeChannel applies the sRGB transfer function to one linear channel.
func EncodeChannel(x float64) float64 {
	if x >= encodeThreshold {
		return (1+gammaOffset)*math.Pow(x, 1/gamma) - gammaOffset
	}
	return linearSlope * x
}

// DecodeChannel removes the sRGB transfer function from one channel.
func DecodeChannel(x float64) float64 {
	if x >= decodeThreshold {
		return math.Pow((x+gammaOffset)/(1+gammaOffset), gamma)
	}
	return x / linearSlope
}

// SRGBEncode converts linear RGB to gamma-encoded sRGB, channel by channel.
func SRGBEncode(linear Vec3) Vec3 {
	return Vec3{EncodeChannel(linear[0]), EncodeChannel(linear[1]), EncodeChannel(linear[2])}
}

// SRGBDecode converts gamma-encoded sRGB to linear RGB, channel by channel.
func SRGBDecode(srgb Vec3) Vec3 {
	return Vec3{DecodeChannel(srgb[0]), DecodeChannel(srgb[1]), DecodeChannel(srgb[2])}
}
