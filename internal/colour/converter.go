package colour

import (
	"fmt"
	"math"
	"sync"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/halftone/internal/compose"
	"github.com/jmylchreest/halftone/internal/linalg"
)

// Converter converts tagged colour values between any two supported spaces
// by composing the shortest chain of direct conversions. It is immutable
// once built and safe for concurrent use.
type Converter struct {
	primaries Primaries
	matrices  rgbMatrices
	graph     *compose.Graph[Space, Value]
	logger    hclog.Logger
}

// Option configures NewConverter.
type Option func(*converterOptions)

type converterOptions struct {
	logger    hclog.Logger
	primaries Primaries
}

// WithLogger sets the logger for graph construction and gamut checks.
func WithLogger(l hclog.Logger) Option {
	return func(o *converterOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithPrimaries selects the RGB primaries behind LinearRGB. The sRGB
// transfer function is used regardless.
func WithPrimaries(p Primaries) Option {
	return func(o *converterOptions) {
		o.primaries = p
	}
}

// NewConverter derives the RGB matrices and builds the conversion graph.
func NewConverter(opts ...Option) (*Converter, error) {
	o := converterOptions{
		logger:    hclog.NewNullLogger(),
		primaries: SRGBPrimaries,
	}
	for _, opt := range opts {
		opt(&o)
	}

	m, err := matricesFor(o.primaries)
	if err != nil {
		return nil, err
	}
	if _, err := oklabInverses(); err != nil {
		return nil, err
	}

	c := &Converter{
		primaries: o.primaries,
		matrices:  m,
		logger:    o.logger,
	}
	c.graph, err = compose.Build(c.edges(), compose.WithLogger(o.logger.Named("graph")))
	if err != nil {
		return nil, fmt.Errorf("build conversion graph: %w", err)
	}
	o.logger.Debug("converter ready", "primaries", o.primaries.Name, "spaces", len(c.graph.Nodes()))
	return c, nil
}

// edges lists the direct conversions. Only neighbouring spaces are joined;
// everything else is composed.
func (c *Converter) edges() []compose.Edge[Space, Value] {
	return []compose.Edge[Space, Value]{
		{Fn: hexToSRGB, Src: StringRGB, Dst: SRGB},
		{Fn: srgbToHex, Src: SRGB, Dst: StringRGB},
		{Fn: vecEdge(LinearRGB, SRGBDecode), Src: SRGB, Dst: LinearRGB},
		{Fn: vecEdge(SRGB, SRGBEncode), Src: LinearRGB, Dst: SRGB},
		{Fn: matEdge(LinearRGB, XYZ, c.matrices.toXYZ), Src: LinearRGB, Dst: XYZ},
		{Fn: matEdge(XYZ, LinearRGB, c.matrices.fromXYZ), Src: XYZ, Dst: LinearRGB},
		{Fn: errEdge(XYZ, Oklab, XYZToOklab), Src: XYZ, Dst: Oklab},
		{Fn: errEdge(Oklab, XYZ, OklabToXYZ), Src: Oklab, Dst: XYZ},
		{Fn: vecEdge(Oklch, OklabToOklch), Src: Oklab, Dst: Oklch},
		{Fn: vecEdge(Oklab, OklchToOklab), Src: Oklch, Dst: Oklab},
	}
}

func hexToSRGB(v Value) (Value, error) {
	rgb, err := ParseHex(v.Hex)
	if err != nil {
		return Value{}, err
	}
	return NewValue(SRGB, rgb), nil
}

func srgbToHex(v Value) (Value, error) {
	return HexValue(FormatHex(v.Vec)), nil
}

func vecEdge(dst Space, fn func(Vec3) Vec3) compose.Func[Value] {
	return func(v Value) (Value, error) {
		return NewValue(dst, fn(v.Vec)), nil
	}
}

func errEdge(src, dst Space, fn func(Vec3) (Vec3, error)) compose.Func[Value] {
	return func(v Value) (Value, error) {
		out, err := fn(v.Vec)
		if err != nil {
			return Value{}, fmt.Errorf("%s -> %s: %w", src, dst, err)
		}
		return NewValue(dst, out), nil
	}
}

func matEdge(src, dst Space, m linalg.Mat) compose.Func[Value] {
	return errEdge(src, dst, func(v Vec3) (Vec3, error) {
		return mulVec3(m, v)
	})
}

// Primaries returns the primaries the converter was built with.
func (c *Converter) Primaries() Primaries { return c.primaries }

// RGBToXYZ returns a copy of the derived linear RGB to XYZ matrix.
func (c *Converter) RGBToXYZ() linalg.Mat { return c.matrices.toXYZ.Clone() }

// XYZToRGB returns a copy of the inverse matrix.
func (c *Converter) XYZToRGB() linalg.Mat { return c.matrices.fromXYZ.Clone() }

// Convert converts v to space to. The result carries the new tag.
func (c *Converter) Convert(v Value, to Space) (Value, error) {
	if !v.Space.Valid() {
		return Value{}, fmt.Errorf("convert %q: %w", v.Space, ErrUnknownSpace)
	}
	if !to.Valid() {
		return Value{}, fmt.Errorf("convert to %q: %w", to, ErrUnknownSpace)
	}
	if v.Space == StringRGB {
		if _, err := ParseHex(v.Hex); err != nil {
			return Value{}, err
		}
	}
	out, err := c.graph.Convert(v, v.Space, to)
	if err != nil {
		return Value{}, fmt.Errorf("convert %s -> %s: %w", v.Space, to, err)
	}
	return out, nil
}

// ConvertVec converts an untagged triple from one numeric space to another.
// StringRGB has no triple form and is rejected with ErrSpaceMismatch.
func (c *Converter) ConvertVec(v Vec3, from, to Space) (Vec3, error) {
	if from == StringRGB || to == StringRGB {
		return Vec3{}, fmt.Errorf("convert %s -> %s: hex has no triple form: %w", from, to, ErrSpaceMismatch)
	}
	out, err := c.Convert(NewValue(from, v), to)
	if err != nil {
		return Vec3{}, err
	}
	return out.Vec, nil
}

// Expect converts v to space to only if it is already tagged with from.
func (c *Converter) Expect(v Value, from, to Space) (Value, error) {
	if v.Space != from {
		return Value{}, fmt.Errorf("got %s, want %s: %w", v.Space, from, ErrSpaceMismatch)
	}
	return c.Convert(v, to)
}

// Route returns the spaces a conversion passes through, both ends included.
func (c *Converter) Route(from, to Space) ([]Space, error) {
	return c.graph.Route(from, to)
}

// GamutError measures how far an Oklab colour lies outside the RGB gamut.
//
// The colour is converted to linear RGB, each channel is clamped to
// [0, 1], and the clamped colour is converted back. The result is the
// Euclidean distance between the original and the round trip. It is never
// negative and is exactly 0 when every channel lies within gamutTolerance
// of [0, 1].
func (c *Converter) GamutError(lab Vec3) (float64, error) {
	rgb, err := c.ConvertVec(lab, Oklab, LinearRGB)
	if err != nil {
		return 0, err
	}
	inside := true
	clamped := rgb
	for i := range clamped {
		if rgb[i] < -gamutTolerance || rgb[i] > 1+gamutTolerance {
			inside = false
		}
		clamped[i] = clamp01(clamped[i])
	}
	if inside {
		return 0, nil
	}
	back, err := c.ConvertVec(clamped, LinearRGB, Oklab)
	if err != nil {
		return 0, err
	}
	d := math.Sqrt(sq(lab[0]-back[0]) + sq(lab[1]-back[1]) + sq(lab[2]-back[2]))
	c.logger.Trace("out of gamut", "oklab", lab, "linear", rgb, "error", d)
	return d, nil
}

// InGamut reports whether an Oklab colour needs no clamping in RGB.
func (c *Converter) InGamut(lab Vec3) (bool, error) {
	e, err := c.GamutError(lab)
	return e == 0, err
}

// gamutTolerance absorbs the rounding left by the Oklab round trip, so
// colours on the gamut boundary such as #ffffff count as inside.
const gamutTolerance = 1e-12

func sq(x float64) float64 { return x * x }

// defaultConverter is the sRGB converter shared by the package functions.
var defaultConverter = sync.OnceValue(func() *Converter {
	c, err := NewConverter()
	if err != nil {
		panic(fmt.Sprintf("colour: sRGB converter: %v", err))
	}
	return c
})

// Default returns the shared sRGB converter. It panics if the built-in sRGB
// matrices cannot be derived, which would be a programming error.
func Default() *Converter { return defaultConverter() }

// Convert converts v with the default converter.
func Convert(v Value, to Space) (Value, error) { return Default().Convert(v, to) }

// ConvertVec converts a triple with the default converter.
func ConvertVec(v Vec3, from, to Space) (Vec3, error) { return Default().ConvertVec(v, from, to) }

// GamutError measures gamut error with the default converter.
func GamutError(lab Vec3) (float64, error) { return Default().GamutError(lab) }
